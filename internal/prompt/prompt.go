// Package prompt implements the column selection strategies used by the
// filter pipeline. Every strategy satisfies Selector so the pipeline never
// talks to a terminal directly.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCanceled is returned when the user aborts a selection without
// confirming.
var ErrCanceled = errors.New("selection canceled")

// Selector picks a subset of the given column names.
type Selector interface {
	Select(columns []string) ([]string, error)
}

// Func adapts a plain function to the Selector interface.
type Func func(columns []string) ([]string, error)

// Select calls f.
func (f Func) Select(columns []string) ([]string, error) { return f(columns) }

// All returns a selector that keeps every column.
func All() Selector {
	return Func(func(columns []string) ([]string, error) {
		return columns, nil
	})
}

// Static selects a fixed set of column names without any interaction.
// Used by --columns, --profile, and watch mode.
type Static struct {
	Columns []string
}

// Select returns the intersection of the fixed set with the available
// columns, preserving the spreadsheet's column order. It is an error when
// none of the fixed names exist in the file.
func (s Static) Select(columns []string) ([]string, error) {
	want := make(map[string]bool, len(s.Columns))
	for _, name := range s.Columns {
		want[strings.ToLower(name)] = true
	}

	var picked []string
	for _, col := range columns {
		if want[strings.ToLower(col)] {
			picked = append(picked, col)
		}
	}

	if len(picked) == 0 {
		return nil, fmt.Errorf("none of the requested columns exist — available columns: %s",
			strings.Join(columns, ", "))
	}
	return picked, nil
}
