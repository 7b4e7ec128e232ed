package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsawizard/dsawizard"
	"github.com/dsawizard/dsawizard/internal/adapters/cli"
)

func newExportCmd(state *cliState) *cobra.Command {
	var (
		ignoreLinks []string
		keep        bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			output := cli.NewWriterOutput(w)
			if w == os.Stdout {
				output = cli.NewOutput()
			}
			return state.export(cmd, output, w, ignoreLinks, !keep)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&state.settings.OutDir, "out", state.settings.OutDir, "Output directory (or DSAWIZARD_OUT_DIR)")
	flags.IntVar(&state.settings.Concurrency, "concurrency", state.settings.Concurrency, "Pages rendered in parallel")
	flags.StringSliceVar(&ignoreLinks, "ignore-link", nil, "Glob of link targets the link checker skips, e.g. '/blog/**'")
	flags.BoolVar(&keep, "keep", false, "Keep existing files in the output directory")

	return cmd
}

func (s *cliState) export(cmd *cobra.Command, output *cli.Output, w io.Writer, ignoreLinks []string, clean bool) error {
	output.PrintHeader("DSA Wizard Export")

	app, err := s.newApp()
	if err != nil {
		output.PrintError("%v", err)
		return err
	}

	report := cli.NewExportReport(output, w, s.settings.OutDir)
	_, err = app.Export(cmd.Context(), dsawizard.ExportOptions{
		OutDir:      s.settings.OutDir,
		Concurrency: s.settings.Concurrency,
		IgnoreLinks: ignoreLinks,
		Clean:       clean,
		Reporter:    report,
	})
	report.Render()

	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
