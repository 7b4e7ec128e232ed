package main

import (
	"github.com/spf13/cobra"

	"github.com/dsawizard/dsawizard/internal/adapters/cli"
)

func newRoutesCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every page route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := state.newApp()
			if err != nil {
				return err
			}

			rows := make([][]string, 0)
			for _, r := range app.Routes() {
				kind := "page"
				if r.Markdown {
					kind = "doc"
				}
				rows = append(rows, []string{r.Path, kind, r.Title})
			}

			cli.NewWriterOutput(cmd.OutOrStdout()).PrintTable([]string{"Path", "Kind", "Title"}, rows)
			return nil
		},
	}
}
