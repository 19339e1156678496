// Package output provides formatting helpers for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// JSON encodes a value as pretty-printed JSON on stdout.
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Errorf writes an error message to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// Successf writes a green success line to stdout.
func Successf(format string, args ...any) {
	color.New(color.FgGreen).Print("✓ ")
	fmt.Printf(format+"\n", args...)
}
