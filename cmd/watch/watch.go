// Package watch implements the re-filter-on-change command.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/klytics/sheetpick/internal/config"
	"github.com/klytics/sheetpick/internal/output"
	"github.com/klytics/sheetpick/internal/pipeline"
	"github.com/klytics/sheetpick/internal/profile"
	"github.com/klytics/sheetpick/internal/prompt"
	"github.com/klytics/sheetpick/internal/watch"
)

// NewCommand returns the watch command.
func NewCommand() *cobra.Command {
	var (
		sheet       string
		outputPath  string
		columns     []string
		profileName string
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-filter the file whenever it changes",
		Long: `Watches a spreadsheet and rewrites the filtered copy after every save.
The column selection must be fixed up front, either with --columns or a
saved profile. Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(columns) == 0 && profileName == "" {
				return fmt.Errorf("watch needs a fixed selection — pass --columns or --profile")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("could not load configuration: %w", err)
			}
			if sheet == "" {
				sheet = cfg.Sheet
			}

			sel := prompt.Selector(prompt.Static{Columns: columns})
			if profileName != "" {
				profiles, err := profile.Load(profile.DefaultPath())
				if err != nil {
					return err
				}
				p, err := profile.Get(profiles, profileName)
				if err != nil {
					return err
				}
				sel = prompt.Static{Columns: p.Columns}
			}

			opts := pipeline.Options{
				Sheet:      sheet,
				OutputPath: outputPath,
				Suffix:     cfg.Output.Suffix,
			}

			refilter := func(path string) error {
				res, err := pipeline.Run(path, sel, opts)
				if err != nil {
					return err
				}
				output.Successf("Wrote %s (%d columns, %d rows)",
					res.OutputPath, len(res.Columns), res.Rows)
				return nil
			}

			// Filter once up front so the output exists before the first change.
			if err := refilter(args[0]); err != nil {
				return err
			}

			w, err := watch.New(args[0], refilter)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return w.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <name>_filtered.xlsx)")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to keep")
	cmd.Flags().StringVar(&profileName, "profile", "", "Saved column selection to apply")

	return cmd
}
