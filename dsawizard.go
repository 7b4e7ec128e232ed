// Package dsawizard serves and exports the DSA Wizard study site: the
// landing page, the complexity and traversal cheat sheets, and the markdown
// pattern docs.
package dsawizard

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dsawizard/dsawizard/internal/adapters/env"
	fsadapter "github.com/dsawizard/dsawizard/internal/adapters/fs"
	httpadapter "github.com/dsawizard/dsawizard/internal/adapters/http"
	"github.com/dsawizard/dsawizard/internal/config"
	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/docs"
	"github.com/dsawizard/dsawizard/internal/logging"
	"github.com/dsawizard/dsawizard/internal/page"
	"github.com/dsawizard/dsawizard/internal/site"
	"github.com/dsawizard/dsawizard/internal/usecase"
	"github.com/dsawizard/dsawizard/web"
)

const highlightCSSPath = "css/highlight.css"

type Manifest = core.Manifest

type BrokenLink = core.BrokenLink

type Route = site.Route

type ExportReporter = usecase.ExportReporter

type Option func(*App)

// WithSite replaces the embedded site configuration.
func WithSite(cfg *config.Site) Option {
	return func(a *App) { a.site = cfg }
}

// WithDocs replaces the embedded markdown docs.
func WithDocs(fsys fs.FS) Option {
	return func(a *App) { a.docsFS = fsys }
}

// WithStatic replaces the embedded static assets.
func WithStatic(fsys fs.FS) Option {
	return func(a *App) { a.static = fsys }
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithDevMode overrides the DSAWIZARD_DEV environment detection.
func WithDevMode(dev bool) Option {
	return func(a *App) { a.isDev = dev }
}

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

type App struct {
	site      *config.Site
	docsFS    fs.FS
	static    fs.FS
	logger    *zap.Logger
	isDev     bool
	now       func() time.Time
	catalog   *site.Catalog
	renderer  *page.Renderer
	pages     *usecase.PageService
	generated map[string][]byte
	router    http.Handler
}

// New loads the docs, builds the route catalog, and prepares the renderer.
// All of it is immutable once New returns.
func New(opts ...Option) (*App, error) {
	app := &App{
		isDev: env.DetectMode() == core.ModeDev,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}
	app.logger = logging.OrNop(app.logger)

	if app.site == nil {
		cfg, err := config.DefaultSite()
		if err != nil {
			return nil, err
		}
		app.site = cfg
	}
	if err := app.site.Validate(); err != nil {
		return nil, err
	}
	if app.docsFS == nil {
		app.docsFS = web.Docs()
	}
	if app.static == nil {
		app.static = web.Static()
	}

	set, err := docs.NewLoader(app.logger, docs.WithBaseURL(app.site.BaseURL)).Load(app.docsFS)
	if err != nil {
		return nil, fmt.Errorf("load docs: %w", err)
	}

	app.catalog, err = site.New(app.site, set)
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}

	app.renderer, err = page.NewRenderer(app.site, page.WithClock(app.now))
	if err != nil {
		return nil, err
	}

	css, err := docs.HighlightCSS(
		app.site.Prism.Theme,
		app.site.Prism.DarkTheme,
		app.site.ColorMode.DefaultMode,
		app.site.ColorMode.RespectPrefersColorScheme,
	)
	if err != nil {
		return nil, err
	}
	app.generated = map[string][]byte{highlightCSSPath: []byte(css)}

	app.pages = usecase.NewPageService(app.catalog, app.renderer, app.logger)
	app.router = httpadapter.NewRouter(httpadapter.RouterConfig{
		Pages:     app.pages,
		Static:    app.static,
		Generated: app.generated,
		BaseURL:   app.site.BaseURL,
		Favicon:   app.site.Favicon,
		IsDev:     app.isDev,
		Logger:    app.logger,
	})

	app.logger.Debug("Site ready",
		zap.Int("routes", app.catalog.Len()),
		zap.Int("docs", set.Len()),
		zap.Bool("dev", app.isDev),
	)

	return app, nil
}

// Handler serves the whole site. Unknown paths get the 404 page.
func (a *App) Handler() http.Handler {
	return a.router
}

// Wrap serves site routes and assets itself and passes every other request
// to api.
func (a *App) Wrap(api http.Handler) http.Handler {
	if api == nil {
		panic("dsawizard: nil handler passed to Wrap; use app.Handler()")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if a.owns(req.URL.Path) {
			a.router.ServeHTTP(w, req)
			return
		}
		api.ServeHTTP(w, req)
	})
}

func (a *App) owns(path string) bool {
	if path == "/healthz" || path == "/favicon.ico" {
		return true
	}
	path, ok := core.StripBase(a.site.BaseURL, path)
	if !ok {
		return false
	}
	for _, prefix := range httpadapter.AssetPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	_, ok = a.catalog.Lookup(path)
	return ok
}

func (a *App) Routes() []Route {
	return a.catalog.Routes()
}

func (a *App) IsDev() bool {
	return a.isDev
}

type ExportOptions struct {
	OutDir      string
	Concurrency int
	IgnoreLinks []string
	// Clean empties OutDir first so stale pages do not survive.
	Clean bool
	// ReportAllLinks raises ignore policies to warn, so every broken link
	// lands in the result without failing the export.
	ReportAllLinks bool
	Reporter       ExportReporter
}

type ExportResult struct {
	Manifest    *Manifest
	Assets      []string
	BrokenLinks []BrokenLink
}

// Export writes the static site to opts.OutDir. Broken links fail the
// export only under the throw policy; the result is still returned so
// callers can report them.
func (a *App) Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	linkPolicy, err := a.site.LinkPolicy()
	if err != nil {
		return nil, err
	}
	mdPolicy, err := a.site.MarkdownLinkPolicy()
	if err != nil {
		return nil, err
	}
	if opts.ReportAllLinks {
		linkPolicy, mdPolicy = atLeastWarn(linkPolicy), atLeastWarn(mdPolicy)
	}

	svc := usecase.NewExportService(a.catalog, a.renderer, fsadapter.NewOSFileSystem(), usecase.ExportConfig{
		BaseURL:            a.site.BaseURL,
		LinkPolicy:         linkPolicy,
		MarkdownLinkPolicy: mdPolicy,
		Static:             a.static,
		Generated:          a.generated,
		Now:                a.now,
	}, a.logger)

	out := svc.Export(ctx, usecase.ExportInput{
		OutDir:      opts.OutDir,
		Concurrency: opts.Concurrency,
		IgnoreLinks: opts.IgnoreLinks,
		Clean:       opts.Clean,
		Reporter:    opts.Reporter,
	})

	if out.Manifest == nil {
		return nil, out.Error
	}
	return &ExportResult{
		Manifest:    out.Manifest,
		Assets:      out.Assets,
		BrokenLinks: out.BrokenLinks,
	}, out.Error
}

func atLeastWarn(p core.LinkPolicy) core.LinkPolicy {
	if p == core.LinkIgnore {
		return core.LinkWarn
	}
	return p
}
