// Package profile implements the saved-selection management commands.
package profile

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/sheetpick/internal/output"
	"github.com/klytics/sheetpick/internal/profile"
)

// NewCommand returns the profile command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved column selections",
		Long: `Profiles are named column selections saved by 'filter --save-profile'.
They replay a selection without the interactive prompt:

  sheetpick filter data.xlsx --save-profile contacts
  sheetpick filter next-export.xlsx --profile contacts`,
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newDeleteCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			profiles, err := profile.Load(profile.DefaultPath())
			if err != nil {
				return err
			}

			if jsonFlag {
				return output.JSON(profiles)
			}

			if len(profiles) == 0 {
				fmt.Println("No profiles saved. Use 'sheetpick filter <file> --save-profile <name>'.")
				return nil
			}
			for _, p := range profiles {
				color.New(color.Bold).Printf("%s", p.Name)
				fmt.Printf("  (%d columns)\n", len(p.Columns))
			}
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a profile's columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			profiles, err := profile.Load(profile.DefaultPath())
			if err != nil {
				return err
			}
			p, err := profile.Get(profiles, args[0])
			if err != nil {
				return err
			}

			if jsonFlag {
				return output.JSON(p)
			}
			fmt.Printf("%s: %s\n", p.Name, strings.Join(p.Columns, ", "))
			return nil
		},
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := profile.DefaultPath()
			profiles, err := profile.Load(path)
			if err != nil {
				return err
			}
			profiles, err = profile.Delete(profiles, args[0])
			if err != nil {
				return err
			}
			if err := profile.Save(path, profiles); err != nil {
				return err
			}
			fmt.Printf("Deleted profile %q\n", args[0])
			return nil
		},
	}
}
