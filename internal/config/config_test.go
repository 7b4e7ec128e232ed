package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsawizard/dsawizard/internal/core"
)

func TestDefaultSite(t *testing.T) {
	site, err := DefaultSite()
	require.NoError(t, err)

	assert.Equal(t, "DSA Wizard", site.Title)
	assert.Equal(t, "Master LeetCode Patterns", site.Tagline)
	assert.Equal(t, "/", site.BaseURL)
	assert.Equal(t, "dark", site.ColorMode.DefaultMode)
	assert.True(t, site.ColorMode.RespectPrefersColorScheme)
	assert.Equal(t, "github", site.Prism.Theme)
	assert.Equal(t, "dracula", site.Prism.DarkTheme)
	require.Len(t, site.Footer.Links, 2)
	assert.Equal(t, "Learn", site.Footer.Links[0].Title)
	assert.Equal(t, "Patterns", site.Navbar.Items[0].Label)

	links, err := site.LinkPolicy()
	require.NoError(t, err)
	assert.Equal(t, core.LinkIgnore, links)

	md, err := site.MarkdownLinkPolicy()
	require.NoError(t, err)
	assert.Equal(t, core.LinkWarn, md)

	assert.NoError(t, site.Validate())
}

func TestLoadSiteOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Custom\ncolorMode:\n  defaultMode: light\n"), 0o644))

	site, err := LoadSite(path)
	require.NoError(t, err)

	assert.Equal(t, "Custom", site.Title)
	assert.Equal(t, "light", site.ColorMode.DefaultMode)
	// untouched fields keep their defaults
	assert.Equal(t, "Master LeetCode Patterns", site.Tagline)
	assert.True(t, site.ColorMode.RespectPrefersColorScheme)
}

func TestLoadSiteEnvOverrides(t *testing.T) {
	t.Setenv("DSAWIZARD_TITLE", "From Env")
	t.Setenv("DSAWIZARD_ON_BROKEN_LINKS", "throw")

	site, err := LoadSite("")
	require.NoError(t, err)

	assert.Equal(t, "From Env", site.Title)
	policy, err := site.LinkPolicy()
	require.NoError(t, err)
	assert.Equal(t, core.LinkThrow, policy)
}

func TestLoadSiteErrors(t *testing.T) {
	_, err := LoadSite(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("onBrokenLinks: explode\n"), 0o644))
	_, err = LoadSite(bad)
	assert.ErrorContains(t, err, "onBrokenLinks")

	badBase := filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(badBase, []byte("baseUrl: docs\n"), 0o644))
	_, err = LoadSite(badBase)
	assert.ErrorContains(t, err, "baseUrl")
}

func TestCopyright(t *testing.T) {
	site, err := DefaultSite()
	require.NoError(t, err)

	got := site.Copyright(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Copyright © 2026 DSA Wizard - Master Your Coding Interviews, Built By Harshan Nayak", got)
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("DSAWIZARD_ADDR", ":9090")
	t.Setenv("DSAWIZARD_DEV", "true")
	t.Setenv("DSAWIZARD_CONCURRENCY", "3")
	t.Setenv("DSAWIZARD_LOG_FORMAT", "json")

	s := LoadSettings()
	assert.Equal(t, ":9090", s.Addr)
	assert.True(t, s.Dev)
	assert.Equal(t, 3, s.Concurrency)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, "build", s.OutDir)
}

func TestLoadSettingsIgnoresBadConcurrency(t *testing.T) {
	t.Setenv("DSAWIZARD_CONCURRENCY", "zero")
	assert.Equal(t, DefaultSettings().Concurrency, LoadSettings().Concurrency)
}
