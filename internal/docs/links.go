package docs

import (
	"path"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/dsawizard/dsawizard/internal/core"
)

var resolverKey = parser.NewContextKey()

// linkTransformer rewrites link and image destinations through the
// linkResolver stored in the parser context. Without one it does nothing.
type linkTransformer struct{}

func (linkTransformer) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	links, _ := pc.Get(resolverKey).(*linkResolver)
	if links == nil {
		return
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = []byte(links.resolve(string(node.Destination)))
		case *ast.Image:
			node.Destination = []byte(links.resolve(string(node.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

// linkResolver maps destinations written in one doc to public URLs:
//
//	./two-pointers.md  -> route of that file
//	/traversal         -> base + /traversal
//	diagram.svg        -> base + route + /diagram.svg
type linkResolver struct {
	base  string
	route string
	// dir is the doc's directory inside the docs tree, slash separated.
	dir   string
	files map[string]string

	targets []string
}

func (r *linkResolver) resolve(dest string) string {
	if !core.IsLocalLink(dest) {
		return dest
	}
	p, suffix := core.SplitLinkSuffix(dest)
	if p == "" {
		return dest
	}

	var target string
	if isMarkdownFile(p) {
		target = r.docRoute(p)
	} else {
		target = core.ResolveLink(r.route, p)
	}

	r.targets = append(r.targets, target)
	return core.WithBase(r.base, target) + suffix
}

// docRoute finds the route of a linked .md file. Absolute file paths start
// at the docs root. Unknown files keep their path under /docs so the link
// checker reports them.
func (r *linkResolver) docRoute(p string) string {
	file := path.Join(r.dir, p)
	if strings.HasPrefix(p, "/") {
		file = strings.TrimPrefix(path.Clean(p), "/")
	}
	if route, ok := r.files[file]; ok {
		return route
	}
	return path.Join("/docs", file)
}

func isMarkdownFile(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".md" || ext == ".mdx"
}
