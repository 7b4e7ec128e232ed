package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/dsawizard/dsawizard/internal/config"
	"github.com/dsawizard/dsawizard/internal/docs"
	"github.com/dsawizard/dsawizard/internal/page"
	"github.com/dsawizard/dsawizard/internal/site"
	"github.com/dsawizard/dsawizard/internal/usecase"
)

func newTestRouter(t *testing.T, isDev bool) http.Handler {
	t.Helper()
	return newTestRouterAt(t, isDev, "/")
}

func newTestRouterAt(t *testing.T, isDev bool, base string) http.Handler {
	t.Helper()

	cfg, err := config.DefaultSite()
	require.NoError(t, err)
	cfg.BaseURL = base

	set, err := docs.NewLoader(nil).Load(fstest.MapFS{
		"two-pointers.md": {Data: []byte("---\ntitle: Two Pointers\n---\nbody\n")},
	})
	require.NoError(t, err)

	catalog, err := site.New(cfg, set)
	require.NoError(t, err)

	renderer, err := page.NewRenderer(cfg, page.WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	return NewRouter(RouterConfig{
		Pages: usecase.NewPageService(catalog, renderer, logger),
		Static: fstest.MapFS{
			"css/custom.css":  {Data: []byte("body{}")},
			"img/favicon.svg": {Data: []byte("<svg/>")},
		},
		Generated: map[string][]byte{"css/highlight.css": []byte(".chroma{}")},
		BaseURL:   base,
		Favicon:   "img/favicon.svg",
		IsDev:     isDev,
		Logger:    logger,
	})
}

func do(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPages(t *testing.T) {
	h := newTestRouter(t, false)

	for _, path := range []string{"/", "/complexity", "/traversal/", "/docs/category/dsa-patterns", "/docs/two-pointers"} {
		t.Run(path, func(t *testing.T) {
			rec := do(h, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.NotEmpty(t, rec.Header().Get("ETag"))
			assert.Contains(t, rec.Body.String(), "<!doctype html>")
		})
	}
}

func TestPageNotFound(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(h, http.MethodGet, "/docs/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
	assert.Empty(t, rec.Header().Get("ETag"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestPageETag(t *testing.T) {
	h := newTestRouter(t, false)

	first := do(h, http.MethodGet, "/complexity", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")

	second := do(h, http.MethodGet, "/complexity", http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())

	stale := do(h, http.MethodGet, "/complexity", http.Header{"If-None-Match": {`"0"`}})
	assert.Equal(t, http.StatusOK, stale.Code)
}

func TestHeadRequest(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(h, http.MethodHead, "/traversal", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(h, http.MethodPost, "/complexity", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAssets(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(h, http.MethodGet, "/css/custom.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "body{}", rec.Body.String())
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	rec = do(h, http.MethodGet, "/css/highlight.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".chroma{}", rec.Body.String())

	rec = do(h, http.MethodGet, "/favicon.ico", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))

	rec = do(h, http.MethodGet, "/img/missing.png", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodGet, "/img/../css/custom.css", nil)
	assert.NotEqual(t, http.StatusInternalServerError, rec.Code)
}

func TestAssetETag(t *testing.T) {
	h := newTestRouter(t, true)

	first := do(h, http.MethodGet, "/css/custom.css", nil)
	assert.Equal(t, "no-cache", first.Header().Get("Cache-Control"))

	second := do(h, http.MethodGet, "/css/custom.css", http.Header{"If-None-Match": {"W/" + first.Header().Get("ETag")}})
	assert.Equal(t, http.StatusNotModified, second.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMatchesETag(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, matchesETag(req, `"1"`))

	req.Header.Set("If-None-Match", `"2", "1"`)
	assert.True(t, matchesETag(req, `"1"`))

	req.Header.Set("If-None-Match", "*")
	assert.True(t, matchesETag(req, `"1"`))
}

func TestRouterUnderBaseURL(t *testing.T) {
	h := newTestRouterAt(t, false, "/dsa/")

	for _, target := range []string{"/dsa", "/dsa/", "/dsa/complexity", "/dsa/docs/two-pointers/"} {
		rec := do(h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	rec := do(h, http.MethodGet, "/dsa/", nil)
	assert.Contains(t, rec.Body.String(), `href="/dsa/css/custom.css"`)

	rec = do(h, http.MethodGet, "/dsa/css/custom.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	rec = do(h, http.MethodHead, "/dsa/complexity", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(h, http.MethodGet, "/dsa/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")

	// outside the base nothing is served, even paths that are routes below it
	for _, target := range []string{"/complexity", "/css/custom.css", "/dsanother"} {
		rec := do(h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "404", target)
	}

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/favicon.ico", nil).Code)
}
