// Package columns implements the column listing command.
package columns

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/sheetpick/internal/output"
	"github.com/klytics/sheetpick/internal/pipeline"
)

type columnsJSON struct {
	File    string   `json:"file"`
	Sheet   string   `json:"sheet,omitempty"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

// NewCommand returns the columns command.
func NewCommand() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "columns <file>",
		Short: "List a spreadsheet's column headers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			t, err := pipeline.LoadTable(args[0], sheet)
			if err != nil {
				return err
			}

			if jsonFlag {
				return output.JSON(columnsJSON{
					File:    args[0],
					Sheet:   sheet,
					Columns: t.Columns,
					Rows:    t.NumRows(),
				})
			}

			header := color.New(color.Bold, color.FgCyan)
			header.Printf("%s — %d columns, %d rows\n", args[0], t.NumCols(), t.NumRows())
			for i, name := range t.Columns {
				fmt.Printf("  %2d. %s\n", i+1, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")

	return cmd
}
