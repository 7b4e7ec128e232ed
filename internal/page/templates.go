package page

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dsawizard/dsawizard/internal/config"
	"github.com/dsawizard/dsawizard/internal/core"
)

// Renderer turns page view models into HTML documents using the embedded
// templates. It holds no mutable state after construction and is safe for
// concurrent use.
type Renderer struct {
	site *config.Site
	now  func() time.Time
	tmpl *template.Template
}

type Option func(*Renderer)

// WithClock fixes the time used for the footer copyright year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

func NewRenderer(site *config.Site, opts ...Option) (*Renderer, error) {
	if site == nil {
		return nil, fmt.Errorf("missing site config")
	}

	r := &Renderer{
		site: site,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := parseTemplates(template.FuncMap{
		"url":      r.url,
		"navHref":  r.navHref,
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"css":      func(s string) template.CSS { return template.CSS(s) },
	})
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

type layoutData struct {
	Site        *config.Site
	Lang        string
	Theme       string
	Title       string
	Description string
	Copyright   string
	Sections    []core.Section
	Error       *core.ErrorData
}

func (r *Renderer) Page(p core.Page) (string, error) {
	data := r.layout(p.Title, p.Description)
	data.Sections = p.Sections
	return r.execute("page", data)
}

func (r *Renderer) Error(e core.ErrorData) (string, error) {
	data := r.layout(e.Title, "")
	data.Error = &e
	return r.execute("page", data)
}

// Table renders a single table fragment.
func (r *Renderer) Table(t core.Table) (string, error) {
	return r.execute("table", t)
}

// CardGrid renders a single card-grid section fragment.
func (r *Renderer) CardGrid(g core.CardGrid) (string, error) {
	return r.execute("cards", g)
}

func (r *Renderer) layout(title, description string) layoutData {
	full := r.site.Title
	if title != "" && title != r.site.Title {
		full = title + " | " + r.site.Title
	}

	return layoutData{
		Site:        r.site,
		Lang:        r.site.Lang(),
		Theme:       r.site.ColorMode.DefaultMode,
		Title:       full,
		Description: description,
		Copyright:   r.site.Copyright(r.now()),
	}
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// url prefixes site-relative paths with the configured baseUrl. External
// and fragment links pass through unchanged.
func (r *Renderer) url(to string) string {
	return core.WithBase(r.site.BaseURL, to)
}

func (r *Renderer) navHref(item config.NavItem) string {
	if item.Href != "" {
		return item.Href
	}
	return r.url(item.To)
}
