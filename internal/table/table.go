// Package table holds the in-memory spreadsheet representation and the
// column projection that powers sheetpick.
package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind classifies a cell value.
type Kind int

const (
	// KindEmpty is a blank cell.
	KindEmpty Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindTime is a date/time cell.
	KindTime
)

// Cell is a single typed spreadsheet value.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
	Time   time.Time
}

// Empty returns a blank cell.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// Text returns a string cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// Time returns a date/time cell.
func Time(t time.Time) Cell { return Cell{Kind: KindTime, Time: t} }

// Value returns the cell's native Go value for serialization.
// Empty cells return nil.
func (c Cell) Value() any {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return c.Number
	case KindBool:
		return c.Bool
	case KindTime:
		return c.Time
	default:
		return nil
	}
}

// String renders the cell for terminal display.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindBool:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindTime:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 {
			return c.Time.Format("2006-01-02")
		}
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// timeLayouts are the date formats Detect recognizes, most specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

// ParseTime attempts to parse a raw string as a date/time value.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Detect infers a cell from a raw string value. Used by readers whose
// underlying format carries no type information.
func Detect(raw string) Cell {
	if raw == "" {
		return Empty()
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(n)
	}
	if t, ok := ParseTime(raw); ok {
		return Time(t)
	}
	switch strings.ToLower(raw) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return Text(raw)
}

// HeaderNames turns a raw header row into usable column names: blank cells
// get positional names and repeated names get a numeric suffix, so every
// column is unique and addressable in the prompt.
func HeaderNames(row []string) []string {
	names := make([]string, len(row))
	seen := make(map[string]int, len(row))
	for i, h := range row {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s (%d)", name, n+1)
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// Table is an ordered set of named columns plus data rows. Every row holds
// exactly one cell per column. Tables are built once at load time and
// treated as immutable afterwards.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// New creates an empty table with the given column names.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// AppendRow adds a data row, padding or truncating it to the column count.
func (t *Table) AppendRow(cells []Cell) {
	row := make([]Cell, len(t.Columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = Empty()
		}
	}
	t.Rows = append(t.Rows, row)
}

// Normalize maps an arbitrary set of picked names onto the table's column
// order. Duplicates and names the table does not have are dropped, so the
// result is always a valid selection in original column order.
func (t *Table) Normalize(picked []string) []string {
	want := make(map[string]bool, len(picked))
	for _, name := range picked {
		want[name] = true
	}
	var selection []string
	for _, col := range t.Columns {
		if want[col] {
			selection = append(selection, col)
			want[col] = false
		}
	}
	return selection
}

// Project returns a new table containing only the selected columns, in the
// table's original column order, with all rows carried over unchanged.
func (t *Table) Project(selection []string) *Table {
	selection = t.Normalize(selection)

	// Index mapping from output column to source column.
	mapping := make([]int, len(selection))
	index := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		index[col] = i
	}
	for i, name := range selection {
		mapping[i] = index[name]
	}

	out := New(selection)
	for _, row := range t.Rows {
		cells := make([]Cell, len(mapping))
		for i, src := range mapping {
			cells[i] = row[src]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}
