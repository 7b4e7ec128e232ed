package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/logging"
)

type ServePageInput struct {
	RequestPath string
	IsDev       bool
}

// ServePageOutput always carries a status. HTML is empty only when even the
// error page failed to render; Error then holds the cause.
type ServePageOutput struct {
	Status int
	HTML   string
	Error  error
}

type PageService struct {
	catalog  Catalog
	renderer PageRenderer
	logger   *zap.Logger

	// rendered pages by route, used outside dev mode
	cache sync.Map
}

func NewPageService(catalog Catalog, renderer PageRenderer, logger *zap.Logger) *PageService {
	return &PageService{
		catalog:  catalog,
		renderer: renderer,
		logger:   logging.OrNop(logger),
	}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if err := ctx.Err(); err != nil {
		return ServePageOutput{Status: http.StatusServiceUnavailable, Error: err}
	}

	route, ok := s.catalog.Lookup(input.RequestPath)
	if !ok {
		return s.renderError(http.StatusNotFound, fmt.Errorf("%w: %s", core.ErrPageNotFound, input.RequestPath), input.IsDev)
	}

	if !input.IsDev {
		if html, ok := s.cache.Load(route.Path); ok {
			return ServePageOutput{Status: http.StatusOK, HTML: html.(string)}
		}
	}

	html, err := s.renderer.Page(route.Page())
	if err != nil {
		s.logger.Error("Render page failed", zap.String("route", route.Path), zap.Error(err))
		return s.renderError(http.StatusInternalServerError, fmt.Errorf("render %s: %w", route.Path, err), input.IsDev)
	}

	if !input.IsDev {
		s.cache.Store(route.Path, html)
	}

	return ServePageOutput{Status: http.StatusOK, HTML: html}
}

// RenderError renders the error page for status. Only 404 and 500 pages
// are produced by the service itself; handlers use this for the rest.
func (s *PageService) RenderError(status int, cause error, isDev bool) ServePageOutput {
	return s.renderError(status, cause, isDev)
}

func (s *PageService) renderError(status int, cause error, isDev bool) ServePageOutput {
	html, err := s.renderer.Error(core.NewErrorData(status, cause, isDev))
	if err != nil {
		return ServePageOutput{
			Status: status,
			Error:  fmt.Errorf("render error page: %w (original: %v)", err, cause),
		}
	}

	out := ServePageOutput{Status: status, HTML: html}
	if status >= http.StatusInternalServerError {
		out.Error = cause
	}
	return out
}
