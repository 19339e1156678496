// Package cmd contains all CLI commands for the sheetpick binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/sheetpick/cmd/columns"
	"github.com/klytics/sheetpick/cmd/completion"
	cmdconfig "github.com/klytics/sheetpick/cmd/config"
	"github.com/klytics/sheetpick/cmd/filter"
	"github.com/klytics/sheetpick/cmd/preview"
	cmdprofile "github.com/klytics/sheetpick/cmd/profile"
	"github.com/klytics/sheetpick/cmd/version"
	cmdwatch "github.com/klytics/sheetpick/cmd/watch"
	"github.com/klytics/sheetpick/internal/config"
)

var (
	jsonOutput bool
	noColor    bool
)

// NewRootCommand creates and returns the root cobra command with all
// subcommands registered. The bare form `sheetpick <file>` runs the
// interactive filter directly.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetpick [file.xlsx]",
		Short: "Interactively filter spreadsheet columns",
		Long: `sheetpick — keep only the columns you care about.

Loads a spreadsheet (.xlsx, .xlsm, or legacy .xls), presents its column
headers as an interactive checkbox list, and writes a copy containing only
the columns you select, with '_filtered' appended to the file name.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				cfg = nil
			}
			applyColor(cfg, noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return filter.RunDefault(args[0], jsonOutput)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	rootCmd.AddCommand(filter.NewCommand())
	rootCmd.AddCommand(columns.NewCommand())
	rootCmd.AddCommand(preview.NewCommand())
	rootCmd.AddCommand(cmdprofile.NewCommand())
	rootCmd.AddCommand(cmdwatch.NewCommand())
	rootCmd.AddCommand(cmdconfig.NewCommand())
	rootCmd.AddCommand(completion.NewCommand(rootCmd))
	rootCmd.AddCommand(version.NewCommand())

	return rootCmd
}

// applyColor resolves the color preference: the --no-color flag wins,
// otherwise the output.color config key applies. Color is only ever
// disabled here, never force-enabled, so TTY detection stays in charge.
func applyColor(cfg *config.Config, noColorFlag bool) {
	if noColorFlag || (cfg != nil && !cfg.Output.Color) {
		color.NoColor = true
	}
}

// Execute runs the root command and handles any returned errors.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
