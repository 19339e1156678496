// Package xls reads legacy binary Excel workbooks (.xls, BIFF format).
// Legacy files are read-only: filtered output is always written as .xlsx.
package xls

import (
	"fmt"
	"os"
	"strings"

	xlslib "github.com/extrame/xls"

	"github.com/klytics/sheetpick/internal/table"
)

// workbook is the slice of the BIFF library the reader needs. It exists so
// sheet lookup can be tested without a binary fixture.
type workbook interface {
	NumSheets() int
	GetSheet(i int) *xlslib.WorkSheet
}

// ReadFile reads one worksheet from a legacy .xls file into a table. The
// first row is treated as the header row. An empty sheetName selects the
// first worksheet. BIFF cells carry no usable type information here, so
// kinds are inferred from the raw values.
func ReadFile(path, sheetName string) (*table.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s — check that the path is correct", path)
	}

	wb, err := xlslib.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("could not open %s — is this a valid .xls file? %w", path, err)
	}

	sheet, err := findSheet(wb, sheetName)
	if err != nil {
		return nil, err
	}

	return buildTable(rawRows(sheet), sheet.Name, path)
}

// rawRows flattens a worksheet into string rows. Sparse rows come back nil
// so the builder can keep the row count intact.
func rawRows(sheet *xlslib.WorkSheet) [][]string {
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// LastCol is the index of the last used cell plus one.
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}
	return rows
}

// buildTable assembles a table from raw string rows: the first row becomes
// the (deduplicated) header, remaining rows are typed and padded to the
// column count.
func buildTable(rows [][]string, sheetName, path string) (*table.Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty — expected a header row", sheetName, path)
	}

	t := table.New(table.HeaderNames(rows[0]))

	for _, raw := range rows[1:] {
		cells := make([]table.Cell, t.NumCols())
		for c := range cells {
			var s string
			if c < len(raw) {
				s = raw[c]
			}
			cells[c] = table.Detect(strings.TrimSpace(s))
		}
		t.AppendRow(cells)
	}

	return t, nil
}

func findSheet(wb workbook, name string) (*xlslib.WorkSheet, error) {
	if name == "" {
		if sheet := wb.GetSheet(0); sheet != nil {
			return sheet, nil
		}
		return nil, fmt.Errorf("workbook has no sheets")
	}

	var available []string
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		if sheet.Name == name {
			return sheet, nil
		}
		available = append(available, sheet.Name)
	}
	return nil, fmt.Errorf("sheet %q not found — available sheets: %v", name, available)
}
