package dsawizard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/dsawizard/dsawizard/internal/config"
)

func fixedClock() time.Time {
	return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	base := []Option{WithDevMode(false), WithClock(fixedClock), WithLogger(zaptest.NewLogger(t))}
	app, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return app
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestHandler(t *testing.T) {
	h := newTestApp(t).Handler()

	code, body := get(t, h, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Master LeetCode Patterns")
	assert.Contains(t, body, "Copyright © 2025 DSA Wizard")

	code, body = get(t, h, "/docs/two-pointers")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `class="chroma"`)

	code, body = get(t, h, "/css/highlight.css")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, ".chroma")

	code, _ = get(t, h, "/img/logo.svg")
	assert.Equal(t, http.StatusOK, code)

	code, _ = get(t, h, "/unknown")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes(t *testing.T) {
	app := newTestApp(t)

	paths := make([]string, 0)
	for _, r := range app.Routes() {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/", "/complexity", "/traversal", "/docs/category/dsa-patterns"}, paths[:4])
	assert.Contains(t, paths, "/docs/bfs/dfs")
	assert.Contains(t, paths, "/docs/dynamic-programming")
	assert.False(t, app.IsDev())
}

func TestWrap(t *testing.T) {
	app := newTestApp(t)

	api := http.NewServeMux()
	api.HandleFunc("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	h := app.Wrap(api)

	code, body := get(t, h, "/api/ping")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body)

	code, body = get(t, h, "/complexity")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Complexity Cheat Sheet")

	code, _ = get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, code)

	// Unknown paths belong to the wrapped handler.
	code, _ = get(t, h, "/docs/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHandlerAndWrapUnderBaseURL(t *testing.T) {
	cfg, err := config.DefaultSite()
	require.NoError(t, err)
	cfg.BaseURL = "/dsa/"
	app := newTestApp(t, WithSite(cfg))

	code, body := get(t, app.Handler(), "/dsa/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `href="/dsa/css/custom.css"`)

	code, body = get(t, app.Handler(), "/dsa/docs/bfs/dfs")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `href="/dsa/traversal"`)

	code, _ = get(t, app.Handler(), "/dsa/css/highlight.css")
	assert.Equal(t, http.StatusOK, code)

	api := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("api"))
	})
	h := app.Wrap(api)

	code, body = get(t, h, "/dsa/complexity")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Complexity Cheat Sheet")

	code, _ = get(t, h, "/dsa/img/logo.svg")
	assert.Equal(t, http.StatusOK, code)

	// below the root, site paths belong to the wrapped handler
	_, body = get(t, h, "/complexity")
	assert.Equal(t, "api", body)
}

func TestWrapNilPanics(t *testing.T) {
	app := newTestApp(t)
	assert.Panics(t, func() { app.Wrap(nil) })
}

func TestNewRejectsInvalidSite(t *testing.T) {
	cfg, err := config.DefaultSite()
	require.NoError(t, err)
	cfg.BaseURL = "no-slash"

	_, err = New(WithSite(cfg))
	assert.Error(t, err)
}

func TestExportEmbeddedSiteHasNoBrokenLinks(t *testing.T) {
	cfg, err := config.DefaultSite()
	require.NoError(t, err)
	cfg.OnBrokenLinks = "throw"
	cfg.OnBrokenMarkdownLinks = "throw"

	app := newTestApp(t, WithSite(cfg))
	out := t.TempDir()

	result, err := app.Export(context.Background(), ExportOptions{OutDir: out, Concurrency: 4})
	require.NoError(t, err)
	assert.Empty(t, result.BrokenLinks)
	assert.Len(t, result.Manifest.Pages, len(app.Routes()))
	assert.Contains(t, result.Assets, "/css/highlight.css")
	assert.Contains(t, result.Assets, "/img/logo.svg")

	for _, r := range app.Routes() {
		page := result.Manifest.Pages[r.Path]
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(page.HTML)))
	}

	data, err := os.ReadFile(filepath.Join(out, "traversal", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "DFS and BFS Use Cases")
}

func TestExportEmbeddedSiteUnderBaseURL(t *testing.T) {
	cfg, err := config.DefaultSite()
	require.NoError(t, err)
	cfg.BaseURL = "/dsa/"
	cfg.OnBrokenLinks = "throw"
	cfg.OnBrokenMarkdownLinks = "throw"

	app := newTestApp(t, WithSite(cfg))
	out := t.TempDir()

	result, err := app.Export(context.Background(), ExportOptions{OutDir: out})
	require.NoError(t, err)
	assert.Empty(t, result.BrokenLinks)

	html, err := os.ReadFile(filepath.Join(out, "docs", "two-pointers", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `href="/dsa/docs/sliding-window"`)
}
