package preview

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/klytics/sheetpick/internal/table"
)

func TestColumnWidthsCountsDisplayCells(t *testing.T) {
	rows := [][]table.Cell{
		{table.Text("日本語"), table.Text("x")},
	}

	// "名前" is 6 bytes but 4 display cells; "日本語" is 9 bytes but 6 cells.
	widths := columnWidths([]string{"名前", "ID"}, rows)

	if widths[0] != 6 {
		t.Errorf("width[0] = %d, want 6 display cells", widths[0])
	}
	if widths[1] != 3 {
		t.Errorf("width[1] = %d, want minimum 3", widths[1])
	}
}

func TestColumnWidthsCapped(t *testing.T) {
	rows := [][]table.Cell{{table.Text(strings.Repeat("x", 100))}}
	widths := columnWidths([]string{"A"}, rows)
	if widths[0] != 40 {
		t.Errorf("width = %d, want cap of 40", widths[0])
	}
}

func TestFitCellPadsToWidth(t *testing.T) {
	got := fitCell("ab", 5)
	if got != "ab   " {
		t.Errorf("fitCell = %q", got)
	}
	if w := runewidth.StringWidth(fitCell("日本語", 6)); w != 6 {
		t.Errorf("wide text padded to %d cells, want 6", w)
	}
}

func TestFitCellTruncatesOnRuneBoundaries(t *testing.T) {
	got := fitCell("日本語データ", 5)

	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if w := runewidth.StringWidth(got); w != 5 {
		t.Errorf("result width = %d, want 5", w)
	}
	if !strings.Contains(got, "~") {
		t.Errorf("expected truncation marker in %q", got)
	}
}
