// Package web embeds the site's static assets and default documentation.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFS embed.FS

//go:embed all:docs
var docsFS embed.FS

// Static is served at the site root: /css/custom.css, /img/logo.svg.
func Static() fs.FS {
	return mustSub(staticFS, "static")
}

// Docs holds the default markdown pages rendered under /docs/.
func Docs() fs.FS {
	return mustSub(docsFS, "docs")
}

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
