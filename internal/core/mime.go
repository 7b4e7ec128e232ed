package core

import (
	"path"
	"strings"
)

// Text types are served with an explicit utf-8 charset.
var textTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".xml":  "application/xml",
	".json": "application/json",
	".js":   "text/javascript",
}

var binaryTypes = map[string]string{
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
}

// ContentType picks the Content-Type for an asset by extension.
func ContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := textTypes[ext]; ok {
		return ct + "; charset=utf-8"
	}
	if ct, ok := binaryTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

