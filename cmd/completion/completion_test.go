package completion

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func testRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "sheetpick"}
	root.AddCommand(&cobra.Command{Use: "filter", Short: "Filter columns"})
	root.AddCommand(&cobra.Command{Use: "columns", Short: "List columns"})
	return root
}

func TestBashCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenBashCompletion(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "_sheetpick") {
		t.Error("bash completion should contain _sheetpick function")
	}
}

func TestZshCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenZshCompletion(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "compdef") {
		t.Error("zsh completion should contain compdef")
	}
}

func TestFishCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenFishCompletion(&buf, true); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "complete -c sheetpick") {
		t.Error("fish completion should contain 'complete -c sheetpick'")
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	cmd := NewCommand(testRootCmd())
	cmd.SetArgs([]string{"tcsh"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
