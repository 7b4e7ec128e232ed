package http

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/logging"
	"github.com/dsawizard/dsawizard/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	isDev   bool
	logger  *zap.Logger
}

func NewPageHandler(service *usecase.PageService, isDev bool, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		isDev:   isDev,
		logger:  logging.OrNop(logger),
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		RequestPath: sitePath(req),
		IsDev:       h.isDev,
	})
	h.write(w, req, output)
}

// NotFound answers with the 404 page without a route lookup.
func (h *PageHandler) NotFound(w http.ResponseWriter, req *http.Request) {
	output := h.service.RenderError(http.StatusNotFound, fmt.Errorf("%w: %s", core.ErrPageNotFound, req.URL.Path), h.isDev)
	h.write(w, req, output)
}

func (h *PageHandler) write(w http.ResponseWriter, req *http.Request, output usecase.ServePageOutput) {
	if output.Error != nil {
		h.logger.Error("Serve page failed",
			zap.String("path", req.URL.Path),
			zap.Int("status", output.Status),
			zap.Error(output.Error),
		)
	}

	if output.HTML == "" {
		http.Error(w, http.StatusText(output.Status), output.Status)
		return
	}

	h.serveHTML(w, req, output.Status, []byte(output.HTML))
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, req *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if status == http.StatusOK {
		etag := core.ETag(body)
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", cacheControl(h.isDev, false))
		if matchesETag(req, etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if req.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
}
