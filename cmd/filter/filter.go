// Package filter implements the interactive column filter command.
package filter

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klytics/sheetpick/internal/config"
	"github.com/klytics/sheetpick/internal/output"
	"github.com/klytics/sheetpick/internal/pipeline"
	"github.com/klytics/sheetpick/internal/profile"
	"github.com/klytics/sheetpick/internal/prompt"
)

type options struct {
	sheet       string
	outputPath  string
	columns     []string
	profileName string
	saveProfile string
	plain       bool
	all         bool
}

// NewCommand returns the filter command.
func NewCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "filter <file>",
		Short: "Pick columns to keep and write a filtered copy",
		Long: `Loads a spreadsheet, prompts for the columns to keep, and writes a copy
containing only those columns next to the input file.

Non-interactive forms:
  sheetpick filter data.xlsx --columns Name,City
  sheetpick filter data.xlsx --profile contacts
  sheetpick filter data.xlsx --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")
			return run(args[0], opts, jsonFlag)
		},
	}

	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: <name>_filtered.xlsx)")
	cmd.Flags().StringSliceVar(&opts.columns, "columns", nil, "Keep these columns without prompting")
	cmd.Flags().StringVar(&opts.profileName, "profile", "", "Replay a saved column selection")
	cmd.Flags().StringVar(&opts.saveProfile, "save-profile", "", "Save the confirmed selection under this name")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Use the line-based prompt instead of the checkbox list")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Keep every column without prompting")

	return cmd
}

// RunDefault runs the interactive filter with configuration defaults. Used
// by the root command's bare `sheetpick <file>` form.
func RunDefault(path string, jsonOut bool) error {
	return run(path, options{}, jsonOut)
}

func run(path string, opts options, jsonOut bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	sheet := opts.sheet
	if sheet == "" {
		sheet = cfg.Sheet
	}

	sel, err := buildSelector(opts, cfg)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(path, sel, pipeline.Options{
		Sheet:      sheet,
		OutputPath: opts.outputPath,
		Suffix:     cfg.Output.Suffix,
	})
	if err != nil {
		return err
	}

	if opts.saveProfile != "" {
		if err := saveSelection(opts.saveProfile, res.Columns); err != nil {
			return err
		}
	}

	if jsonOut {
		return output.JSON(res)
	}

	output.Successf("Wrote %s (%d of %d columns, %d rows)",
		res.OutputPath, len(res.Columns), res.TotalColumns, res.Rows)
	return nil
}

func buildSelector(opts options, cfg *config.Config) (prompt.Selector, error) {
	switch {
	case len(opts.columns) > 0:
		return prompt.Static{Columns: opts.columns}, nil
	case opts.all:
		return prompt.All(), nil
	case opts.profileName != "":
		profiles, err := profile.Load(profile.DefaultPath())
		if err != nil {
			return nil, err
		}
		p, err := profile.Get(profiles, opts.profileName)
		if err != nil {
			return nil, err
		}
		return prompt.Static{Columns: p.Columns}, nil
	case opts.plain || cfg.Prompt.Plain:
		return prompt.Plain{}, nil
	default:
		return prompt.TUI{}, nil
	}
}

func saveSelection(name string, columns []string) error {
	path := profile.DefaultPath()
	profiles, err := profile.Load(path)
	if err != nil {
		return err
	}
	profiles = profile.Put(profiles, profile.Profile{Name: name, Columns: columns})
	if err := profile.Save(path, profiles); err != nil {
		return err
	}
	fmt.Printf("Saved profile %q (%s)\n", name, strings.Join(columns, ", "))
	return nil
}
