// Package xlsx reads and writes modern Excel workbooks (.xlsx, .xlsm).
package xlsx

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetpick/internal/table"
)

// ReadFile reads one worksheet from an .xlsx file into a table. The first
// row is treated as the header row. An empty sheetName selects the first
// worksheet.
func ReadFile(path, sheetName string) (*table.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s — check that the path is correct", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s — is this a valid .xlsx file? %w", path, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q not found in %s — available sheets: %v",
			sheetName, path, f.GetSheetList())
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty — expected a header row", sheetName, path)
	}

	t := table.New(table.HeaderNames(rows[0]))

	for r := 1; r < len(rows); r++ {
		cells := make([]table.Cell, t.NumCols())
		for c := range cells {
			var raw string
			if c < len(rows[r]) {
				raw = rows[r][c]
			}
			cells[c] = classify(f, sheetName, c, r, raw)
		}
		t.AppendRow(cells)
	}

	return t, nil
}

// classify turns a formatted cell value into a typed cell. Strings carry an
// explicit type attribute in the xlsx format; numbers do not, so those fall
// back to value parsing.
func classify(f *excelize.File, sheet string, col, row int, raw string) table.Cell {
	if raw == "" {
		return table.Empty()
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return table.Text(raw)
	}

	ct, err := f.GetCellType(sheet, axis)
	if err == nil {
		switch ct {
		case excelize.CellTypeBool:
			return table.Bool(strings.EqualFold(raw, "TRUE"))
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			return table.Text(raw)
		case excelize.CellTypeDate:
			if t, ok := table.ParseTime(raw); ok {
				return table.Time(t)
			}
		}
	}

	return table.Detect(raw)
}
