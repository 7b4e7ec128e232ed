// Package http adapts the page and export services to net/http using chi.
package http

import (
	iofs "io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/dsawizard/dsawizard/internal/logging"
	"github.com/dsawizard/dsawizard/internal/usecase"
)

// AssetPrefixes are the URL prefixes served from static files.
var AssetPrefixes = []string{"/img/", "/css/"}

type RouterConfig struct {
	Pages     *usecase.PageService
	Static    iofs.FS
	Generated map[string][]byte
	// BaseURL is the path the site is mounted on, e.g. "/" or "/dsa/".
	BaseURL string
	// Favicon is the static path served at /favicon.ico, e.g. "img/favicon.svg".
	Favicon string
	IsDev   bool
	Logger  *zap.Logger
}

// NewRouter serves pages and assets under cfg.BaseURL. /healthz and
// /favicon.ico always answer at the root. Requests outside the base get the
// 404 page.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := logging.OrNop(cfg.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	assets := NewAssetHandler(cfg.Static, cfg.Generated, cfg.IsDev)
	pages := NewPageHandler(cfg.Pages, cfg.IsDev, logger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	var favicon http.Handler
	if cfg.Favicon != "" {
		favicon = FileHandler(assets, strings.TrimPrefix(cfg.Favicon, "/"))
		r.Handle("/favicon.ico", favicon)
	}

	siteRouter := chi.NewRouter()
	for _, prefix := range AssetPrefixes {
		siteRouter.Handle(prefix+"*", assets)
	}
	if favicon != nil {
		siteRouter.Handle("/favicon.ico", favicon)
	}
	siteRouter.Get("/*", pages.ServeHTTP)
	siteRouter.NotFound(pages.ServeHTTP)
	siteRouter.MethodNotAllowed(methodNotAllowed)

	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		r.Mount("/", siteRouter)
	} else {
		r.Mount(base, siteRouter)
		r.NotFound(pages.NotFound)
	}
	r.MethodNotAllowed(methodNotAllowed)

	return r
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// sitePath is the request path below the mount point. Handlers used outside
// a chi router see the raw URL path.
func sitePath(req *http.Request) string {
	if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePath != "" {
		return rctx.RoutePath
	}
	return req.URL.Path
}

// RequestLogger logs one line per request after the handler returns.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("HTTP request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("remote", r.RemoteAddr),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
