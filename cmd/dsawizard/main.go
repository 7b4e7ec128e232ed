package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dsawizard/dsawizard"
	"github.com/dsawizard/dsawizard/internal/config"
	"github.com/dsawizard/dsawizard/internal/logging"
)

type cliState struct {
	settings *config.Settings
	logger   *zap.Logger
	// now is fixed in tests
	now func() time.Time
}

func newRootCmd() *cobra.Command {
	state := &cliState{
		settings: config.LoadSettings(),
		now:      time.Now,
	}

	root := &cobra.Command{
		Use:   "dsawizard",
		Short: "DSA Wizard - data structures and algorithms study site",
		Long: `dsawizard serves and exports the DSA Wizard site: interview patterns,
complexity cheat sheets, DFS/BFS use cases, and the markdown pattern docs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(state.settings.LogLevel, state.settings.LogFormat, state.settings.Dev)
			if err != nil {
				return err
			}
			state.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&state.settings.ConfigFile, "config", state.settings.ConfigFile, "Site config YAML overlaid on the defaults (or DSAWIZARD_CONFIG)")
	flags.StringVar(&state.settings.LogLevel, "log-level", state.settings.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&state.settings.LogFormat, "log-format", state.settings.LogFormat, "Log format: console or json")
	flags.BoolVar(&state.settings.Dev, "dev", state.settings.Dev, "Dev mode: no caching, error details on error pages (or DSAWIZARD_DEV=1)")
	flags.StringVar(&state.settings.DocsDir, "docs", state.settings.DocsDir, "Markdown docs directory (default: embedded docs)")

	root.AddCommand(newServeCmd(state))
	root.AddCommand(newExportCmd(state))
	root.AddCommand(newRoutesCmd(state))
	root.AddCommand(newDoctorCmd(state))

	return root
}

// newApp loads the site config and docs named by the settings.
func (s *cliState) newApp() (*dsawizard.App, error) {
	site, err := config.LoadSite(s.settings.ConfigFile)
	if err != nil {
		return nil, err
	}

	opts := []dsawizard.Option{
		dsawizard.WithSite(site),
		dsawizard.WithDevMode(s.settings.Dev),
		dsawizard.WithLogger(s.logger),
		dsawizard.WithClock(s.now),
	}
	if s.settings.DocsDir != "" {
		if _, err := os.Stat(s.settings.DocsDir); err != nil {
			return nil, fmt.Errorf("docs directory: %w", err)
		}
		opts = append(opts, dsawizard.WithDocs(os.DirFS(s.settings.DocsDir)))
	}

	return dsawizard.New(opts...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
