package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsawizard/dsawizard"
	"github.com/dsawizard/dsawizard/internal/adapters/cli"
)

// newDoctorCmd validates the config and docs, then runs a throwaway export
// so broken links surface without touching the real output directory. Links
// are checked even where the site policy ignores them.
func newDoctorCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the site config, docs, and links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := cli.NewWriterOutput(cmd.OutOrStdout())
			output.PrintHeader("DSA Wizard Doctor")

			app, err := state.newApp()
			if err != nil {
				output.PrintError("%v", err)
				return err
			}
			output.PrintSuccess("Config and docs load (%d routes)", len(app.Routes()))

			dir, err := os.MkdirTemp("", "dsawizard-doctor-*")
			if err != nil {
				return err
			}
			defer func() { _ = os.RemoveAll(dir) }()

			result, err := app.Export(cmd.Context(), dsawizard.ExportOptions{
				OutDir:         dir,
				Concurrency:    state.settings.Concurrency,
				ReportAllLinks: true,
			})
			if result != nil {
				for _, b := range result.BrokenLinks {
					output.PrintWarning("Broken link %s", b)
				}
			}
			if err != nil {
				output.PrintError("%v", err)
				return fmt.Errorf("doctor: %w", err)
			}

			if len(result.BrokenLinks) == 0 {
				output.PrintSuccess("Links resolve")
			}
			return nil
		},
	}
}
