package config

import (
	"runtime"

	"github.com/dsawizard/dsawizard/internal/adapters/env"
	"github.com/dsawizard/dsawizard/internal/core"
)

// Settings holds process-level options for the serve and export commands.
type Settings struct {
	ConfigFile string
	DocsDir    string

	// Server
	Addr string
	Dev  bool

	// Export
	OutDir      string
	Concurrency int

	// Logging
	LogLevel  string
	LogFormat string // "console" or "json"
}

func DefaultSettings() *Settings {
	return &Settings{
		Addr:        ":8080",
		OutDir:      "build",
		Concurrency: runtime.NumCPU(),
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// LoadSettings applies DSAWIZARD_* environment overrides to the defaults.
// Command-line flags are bound on top of the result.
func LoadSettings() *Settings {
	s := DefaultSettings()

	if v := env.String("CONFIG"); v != "" {
		s.ConfigFile = v
	}
	if v := env.String("DOCS_DIR"); v != "" {
		s.DocsDir = v
	}
	if v := env.String("ADDR"); v != "" {
		s.Addr = v
	}
	s.Dev = env.DetectMode() == core.ModeDev
	if v := env.String("OUT_DIR"); v != "" {
		s.OutDir = v
	}
	if n, ok := env.Int("CONCURRENCY"); ok {
		s.Concurrency = n
	}
	if v := env.String("LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := env.String("LOG_FORMAT"); v != "" {
		s.LogFormat = v
	}

	return s
}
