// Package site assembles the page view models and the route table that both
// the server and the static exporter walk.
package site

import (
	"fmt"

	"github.com/dsawizard/dsawizard/internal/config"
	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/docs"
)

// Route binds a normalized path to the page built for it.
type Route struct {
	Path  string
	Title string
	// Markdown is set for routes whose body came from a markdown doc.
	Markdown bool
	// Links lists the link targets written in the markdown source.
	Links []string
	page  core.Page
}

func (r Route) Page() core.Page {
	return r.page
}

// Catalog is the fixed, ordered set of routes. Built once at startup and
// read-only afterwards.
type Catalog struct {
	routes []Route
	index  map[string]int
}

func New(cfg *config.Site, set *docs.Set) (*Catalog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("missing site config")
	}
	if set == nil {
		set = &docs.Set{Category: docs.DefaultCategory()}
	}

	c := &Catalog{index: make(map[string]int)}

	pages := []core.Page{
		HomePage(cfg, set.Category.Route()),
		ComplexityPage(),
		TraversalPage(),
		CategoryPage(set),
	}
	for _, p := range pages {
		if err := c.add(Route{Path: p.Route, Title: p.Title, page: p}); err != nil {
			return nil, err
		}
	}

	for _, d := range set.Docs() {
		p := DocPage(d)
		r := Route{Path: p.Route, Title: p.Title, Markdown: true, Links: d.Links, page: p}
		if err := c.add(r); err != nil {
			return nil, fmt.Errorf("doc %s: %w", d.Source, err)
		}
	}

	return c, nil
}

func (c *Catalog) add(r Route) error {
	r.Path = core.NormalizePath(r.Path)
	if err := core.ValidateRoutePath(r.Path); err != nil {
		return fmt.Errorf("route %q: %w", r.Path, err)
	}
	if _, dup := c.index[r.Path]; dup {
		return fmt.Errorf("duplicate route %s", r.Path)
	}
	r.page.Route = r.Path
	c.index[r.Path] = len(c.routes)
	c.routes = append(c.routes, r)
	return nil
}

// Routes returns the routes in registration order.
func (c *Catalog) Routes() []Route {
	return append([]Route(nil), c.routes...)
}

func (c *Catalog) Lookup(path string) (Route, bool) {
	i, ok := c.index[core.NormalizePath(path)]
	if !ok {
		return Route{}, false
	}
	return c.routes[i], true
}

func (c *Catalog) Len() int {
	return len(c.routes)
}
