package usecase

import (
	"context"
	"fmt"
	iofs "io/fs"
	"net/http"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/logging"
	"github.com/dsawizard/dsawizard/internal/site"
)

const (
	manifestFile    = "manifest.json"
	notFoundFile    = "404.html"
	defaultParallel = 4
)

type ExportInput struct {
	OutDir      string
	Concurrency int
	// IgnoreLinks are doublestar globs matched against link targets.
	IgnoreLinks []string
	// Clean removes OutDir before anything is written.
	Clean    bool
	Reporter ExportReporter
}

type ExportOutput struct {
	Manifest    *core.Manifest
	Assets      []string
	BrokenLinks []core.BrokenLink
	Error       error
}

type ExportConfig struct {
	BaseURL            string
	LinkPolicy         core.LinkPolicy
	MarkdownLinkPolicy core.LinkPolicy
	// Static is copied verbatim into the output directory.
	Static iofs.FS
	// Generated assets keyed by slash path, e.g. "css/highlight.css".
	Generated map[string][]byte
	Now       func() time.Time
}

type ExportService struct {
	catalog  Catalog
	renderer PageRenderer
	fs       FileSystem
	config   ExportConfig
	logger   *zap.Logger
}

func NewExportService(catalog Catalog, renderer PageRenderer, fs FileSystem, config ExportConfig, logger *zap.Logger) *ExportService {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &ExportService{
		catalog:  catalog,
		renderer: renderer,
		fs:       fs,
		config:   config,
		logger:   logging.OrNop(logger),
	}
}

type renderedPage struct {
	route site.Route
	html  []byte
}

// Export writes every route to <out>/<route>/index.html, then the assets,
// 404.html and manifest.json, and finally checks internal links.
func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("missing output directory")}
	}
	report := input.Reporter
	if report == nil {
		report = nopReporter{}
	}

	if input.Clean {
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return ExportOutput{Error: fmt.Errorf("clean %s: %w", input.OutDir, err)}
		}
	}

	step := report.StartStep("Render pages")
	pages, err := s.renderPages(ctx, input)
	report.EndStep(step, err)
	if err != nil {
		return ExportOutput{Error: err}
	}

	manifest := core.NewManifest(s.config.Now())
	for _, p := range pages {
		manifest.Add(p.route.Path, p.html)
	}

	step = report.StartStep("Copy assets")
	assets, err := s.writeAssets(input.OutDir)
	report.EndStep(step, err)
	if err != nil {
		return ExportOutput{Error: err}
	}
	manifest.Assets = assets
	report.SetCounts(len(pages), len(assets))

	step = report.StartStep("Write manifest")
	err = s.writeExtras(input.OutDir, manifest)
	report.EndStep(step, err)
	if err != nil {
		return ExportOutput{Error: err}
	}

	step = report.StartStep("Check links")
	broken, err := s.checkLinks(pages, manifest, input.IgnoreLinks, report)
	report.EndStep(step, err)

	s.logger.Info("Export finished",
		zap.String("out", input.OutDir),
		zap.Int("pages", len(pages)),
		zap.Int("assets", len(assets)),
		zap.Int("broken_links", len(broken)),
	)

	return ExportOutput{
		Manifest:    manifest,
		Assets:      assets,
		BrokenLinks: broken,
		Error:       err,
	}
}

func (s *ExportService) renderPages(ctx context.Context, input ExportInput) ([]renderedPage, error) {
	routes := s.catalog.Routes()
	pages := make([]renderedPage, len(routes))

	limit := input.Concurrency
	if limit <= 0 {
		limit = defaultParallel
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, route := range routes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			html, err := s.renderer.Page(route.Page())
			if err != nil {
				return fmt.Errorf("render %s: %w", route.Path, err)
			}

			file := filepath.Join(input.OutDir, filepath.FromSlash(core.OutputFileForRoute(route.Path)))
			if err := s.write(file, []byte(html)); err != nil {
				return fmt.Errorf("write %s: %w", route.Path, err)
			}

			s.logger.Debug("Exported page", zap.String("route", route.Path), zap.String("file", file))
			pages[i] = renderedPage{route: route, html: []byte(html)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *ExportService) writeAssets(outDir string) ([]string, error) {
	var assets []string

	if s.config.Static != nil {
		err := iofs.WalkDir(s.config.Static, ".", func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, generated := s.config.Generated[p]; generated {
				return nil
			}

			if err := s.fs.CopyFrom(s.config.Static, p, filepath.Join(outDir, filepath.FromSlash(p))); err != nil {
				return fmt.Errorf("copy asset %s: %w", p, err)
			}
			assets = append(assets, "/"+p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for p, data := range s.config.Generated {
		if err := s.write(filepath.Join(outDir, filepath.FromSlash(p)), data); err != nil {
			return nil, fmt.Errorf("write asset %s: %w", p, err)
		}
		assets = append(assets, "/"+path.Clean(p))
	}

	sort.Strings(assets)
	return assets, nil
}

func (s *ExportService) writeExtras(outDir string, manifest *core.Manifest) error {
	notFound, err := s.renderer.Error(core.NewErrorData(http.StatusNotFound, core.ErrPageNotFound, false))
	if err != nil {
		return fmt.Errorf("render %s: %w", notFoundFile, err)
	}
	if err := s.write(filepath.Join(outDir, notFoundFile), []byte(notFound)); err != nil {
		return fmt.Errorf("write %s: %w", notFoundFile, err)
	}

	data, err := manifest.Marshal()
	if err != nil {
		return fmt.Errorf("encode %s: %w", manifestFile, err)
	}
	if err := s.write(filepath.Join(outDir, manifestFile), data); err != nil {
		return fmt.Errorf("write %s: %w", manifestFile, err)
	}
	return nil
}

// checkLinks applies the markdown policy to links written in doc sources and
// the page policy to everything else. Only throw produces an error.
func (s *ExportService) checkLinks(pages []renderedPage, manifest *core.Manifest, ignore []string, report ExportReporter) ([]core.BrokenLink, error) {
	if s.config.LinkPolicy == core.LinkIgnore && s.config.MarkdownLinkPolicy == core.LinkIgnore {
		return nil, nil
	}

	checker, err := NewLinkChecker(manifest, manifest.Assets, ignore, s.config.BaseURL)
	if err != nil {
		return nil, err
	}

	var reported []core.BrokenLink
	var fatal []string
	for _, p := range pages {
		var mdLinks []string
		if p.route.Markdown {
			mdLinks = p.route.Links
		}

		broken, err := checker.Check(p.route.Path, p.html, mdLinks)
		if err != nil {
			return nil, err
		}

		for _, b := range broken {
			policy := s.config.LinkPolicy
			if b.Markdown {
				policy = s.config.MarkdownLinkPolicy
			}

			switch policy {
			case core.LinkIgnore:
				continue
			case core.LinkWarn:
				s.logger.Warn("Broken link", zap.String("page", b.Source), zap.String("target", b.Target), zap.Bool("markdown", b.Markdown))
				report.AddWarning(b.Source, "Broken link", b.Target)
			case core.LinkThrow:
				report.AddError(b.Source, "Broken link", b.Target)
				fatal = append(fatal, b.String())
			}
			reported = append(reported, b)
		}
	}

	if len(fatal) > 0 {
		return reported, fmt.Errorf("%w: %d (%s)", core.ErrBrokenLinks, len(fatal), joinLimited(fatal, 5))
	}
	return reported, nil
}

func (s *ExportService) write(file string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	return s.fs.WriteFile(file, data, 0o644)
}

func joinLimited(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + fmt.Sprintf(", and %d more", len(items)-n)
}
