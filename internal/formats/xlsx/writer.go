package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetpick/internal/table"
)

// WriteFile serializes a table to a new single-sheet .xlsx workbook.
// Typed cell values are written as-is so numbers, booleans, and dates
// survive a round-trip.
func WriteFile(t *table.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for c, name := range t.Columns {
		axis, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, axis, name); err != nil {
			return fmt.Errorf("could not set header %s: %w", axis, err)
		}
	}

	for r, row := range t.Rows {
		for c, cell := range row {
			if cell.Kind == table.KindEmpty {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("invalid cell coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, axis, cell.Value()); err != nil {
				return fmt.Errorf("could not set cell %s: %w", axis, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}

	return nil
}
