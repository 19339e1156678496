// Package preview implements the terminal table preview command.
package preview

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/klytics/sheetpick/internal/pipeline"
	"github.com/klytics/sheetpick/internal/table"
)

// NewCommand returns the preview command.
func NewCommand() *cobra.Command {
	var (
		sheet string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Pretty-print a spreadsheet in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pipeline.LoadTable(args[0], sheet)
			if err != nil {
				return err
			}
			printTable(t, limit)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	cmd.Flags().IntVar(&limit, "limit", 15, "Maximum number of rows to show (0 = all)")

	return cmd
}

func printTable(t *table.Table, limit int) {
	dim := color.New(color.FgHiBlack)

	shown := t.Rows
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	widths := columnWidths(t.Columns, shown)

	printRow(headerCells(t.Columns), widths, color.New(color.Bold))

	dim.Print("  ")
	for j, w := range widths {
		if j > 0 {
			dim.Print("+-")
		}
		dim.Print(strings.Repeat("-", w+1))
	}
	dim.Println()

	for _, row := range shown {
		printRow(row, widths, nil)
	}

	if hidden := t.NumRows() - len(shown); hidden > 0 {
		dim.Printf("  (%d rows, %d not shown)\n", t.NumRows(), hidden)
	} else {
		dim.Printf("  (%d rows)\n", t.NumRows())
	}
}

func headerCells(names []string) []table.Cell {
	cells := make([]table.Cell, len(names))
	for i, name := range names {
		cells[i] = table.Text(name)
	}
	return cells
}

// columnWidths sizes each column to its widest header or visible cell,
// measured in display cells so multibyte text aligns.
func columnWidths(columns []string, rows [][]table.Cell) []int {
	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = runewidth.StringWidth(name)
	}
	for _, row := range rows {
		for j, cell := range row {
			if n := runewidth.StringWidth(cell.String()); n > widths[j] {
				widths[j] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > 40 {
			widths[i] = 40
		}
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	return widths
}

// fitCell truncates on rune boundaries and pads to exactly w display cells.
func fitCell(s string, w int) string {
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "~")
	}
	return runewidth.FillRight(s, w)
}

func printRow(row []table.Cell, widths []int, style *color.Color) {
	fmt.Print("  ")
	for j := range widths {
		if j > 0 {
			fmt.Print("| ")
		}
		cell := ""
		if j < len(row) {
			cell = row[j].String()
		}
		padded := fitCell(cell, widths[j]) + " "
		if style != nil {
			style.Print(padded)
		} else {
			fmt.Print(padded)
		}
	}
	fmt.Println()
}
