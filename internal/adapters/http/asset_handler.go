package http

import (
	iofs "io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/dsawizard/dsawizard/internal/core"
)

// AssetHandler serves files from the static FS plus generated assets, which
// take precedence. Paths map one to one: /css/custom.css -> css/custom.css.
type AssetHandler struct {
	static    iofs.FS
	generated map[string][]byte
	isDev     bool
}

func NewAssetHandler(static iofs.FS, generated map[string][]byte, isDev bool) *AssetHandler {
	return &AssetHandler{
		static:    static,
		generated: generated,
		isDev:     isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+sitePath(req)), "/")
	if name == "" {
		http.NotFound(w, req)
		return
	}

	data, ok := h.read(name)
	if !ok {
		http.NotFound(w, req)
		return
	}

	serveAsset(w, req, name, data, h.isDev)
}

func (h *AssetHandler) read(name string) ([]byte, bool) {
	if data, ok := h.generated[name]; ok {
		return data, true
	}
	if h.static == nil {
		return nil, false
	}

	info, err := iofs.Stat(h.static, name)
	if err != nil || info.IsDir() {
		return nil, false
	}
	data, err := iofs.ReadFile(h.static, name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// FileHandler always serves one asset, e.g. the favicon at /favicon.ico.
func FileHandler(assets *AssetHandler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		data, ok := assets.read(name)
		if !ok {
			http.NotFound(w, req)
			return
		}
		serveAsset(w, req, name, data, assets.isDev)
	})
}

func serveAsset(w http.ResponseWriter, req *http.Request, name string, data []byte, isDev bool) {
	etag := core.ETag(data)
	w.Header().Set("Content-Type", core.ContentType(name))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", cacheControl(isDev, true))

	if matchesETag(req, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(http.StatusOK)
	if req.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}

func cacheControl(isDev, asset bool) string {
	switch {
	case isDev:
		return "no-cache"
	case asset:
		return "public, max-age=3600"
	default:
		return "public, max-age=0, must-revalidate"
	}
}

// matchesETag reports whether If-None-Match lists etag or is "*".
func matchesETag(req *http.Request, etag string) bool {
	header := req.Header.Get("If-None-Match")
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
