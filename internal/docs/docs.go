// Package docs loads the markdown documentation pages: YAML front matter,
// goldmark rendering with chroma highlighting, and the category index.
package docs

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/logging"
)

const categoryFile = "_category_.yaml"

type Doc struct {
	Slug        string
	Route       string
	Title       string
	Description string
	Position    int
	HTML        string
	Source      string
	// Links holds the site path of every link and image in the body, before
	// the base URL is applied.
	Links []string
}

// Category is the generated index page listing every doc.
type Category struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Slug        string `yaml:"slug"`
}

func (c Category) Route() string {
	return core.NormalizePath("/docs/" + strings.Trim(c.Slug, "/"))
}

func DefaultCategory() Category {
	return Category{
		Label:       "DSA Patterns",
		Description: "Every pattern, with when to reach for it and a worked example.",
		Slug:        "category/dsa-patterns",
	}
}

// Set is an immutable, ordered collection of loaded docs.
type Set struct {
	Category Category
	docs     []Doc
	byRoute  map[string]int
}

// Docs returns the docs in sidebar order: position, then title.
func (s *Set) Docs() []Doc {
	if s == nil {
		return nil
	}
	return append([]Doc(nil), s.docs...)
}

func (s *Set) Lookup(route string) (Doc, bool) {
	if s == nil {
		return Doc{}, false
	}
	i, ok := s.byRoute[core.NormalizePath(route)]
	if !ok {
		return Doc{}, false
	}
	return s.docs[i], true
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}

type Loader struct {
	md     goldmark.Markdown
	logger *zap.Logger
	base   string
}

type LoaderOption func(*Loader)

// WithBaseURL prefixes site paths in rendered links and images.
func WithBaseURL(base string) LoaderOption {
	return func(l *Loader) {
		l.base = base
	}
}

// NewLoader configures goldmark with front matter, GFM tables, and chroma
// highlighting. Highlighted code uses CSS classes; see HighlightCSS.
func NewLoader(logger *zap.Logger, opts ...LoaderOption) *Loader {
	md := goldmark.New(
		goldmark.WithExtensions(
			meta.Meta,
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(linkTransformer{}, 999)),
		),
	)

	l := &Loader{
		md:     md,
		logger: logging.OrNop(logger),
		base:   "/",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type source struct {
	file string
	data []byte
	meta docMeta
}

// Load renders every .md file under fsys. A nil fsys yields an empty set.
// Front matter is read for every file first so links to other .md files
// can be rewritten to their routes.
func (l *Loader) Load(fsys fs.FS) (*Set, error) {
	set := &Set{
		Category: DefaultCategory(),
		byRoute:  make(map[string]int),
	}
	if fsys == nil {
		return set, nil
	}

	if data, err := fs.ReadFile(fsys, categoryFile); err == nil {
		if err := yaml.Unmarshal(data, &set.Category); err != nil {
			return nil, fmt.Errorf("parse %s: %w", categoryFile, err)
		}
	}

	var sources []source
	files := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		m, err := l.readMeta(p, data)
		if err != nil {
			return err
		}
		if m.route == set.Category.Route() {
			return fmt.Errorf("doc %s collides with the category page %s", p, m.route)
		}

		sources = append(sources, source{file: p, data: data, meta: m})
		files[p] = m.route
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, src := range sources {
		doc, err := l.render(src.meta, src.data, files)
		if err != nil {
			return nil, err
		}
		set.docs = append(set.docs, doc)
		l.logger.Debug("Loaded doc", zap.String("source", src.file), zap.String("route", doc.Route))
	}

	sort.SliceStable(set.docs, func(i, j int) bool {
		a, b := set.docs[i], set.docs[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Title < b.Title
	})

	for i, d := range set.docs {
		if prev, dup := set.byRoute[d.Route]; dup {
			return nil, fmt.Errorf("duplicate doc route %s (%s and %s)", d.Route, set.docs[prev].Source, d.Source)
		}
		set.byRoute[d.Route] = i
	}

	return set, nil
}

// Render converts one markdown source on its own. Links to other .md files
// cannot be resolved and keep their docs-relative path.
func (l *Loader) Render(file string, src []byte) (Doc, error) {
	m, err := l.readMeta(file, src)
	if err != nil {
		return Doc{}, err
	}
	return l.render(m, src, map[string]string{file: m.route})
}

type docMeta struct {
	source      string
	slug        string
	route       string
	title       string
	description string
	position    int
}

// readMeta parses the front matter. Keys: title, description, slug,
// sidebar_position.
func (l *Loader) readMeta(file string, src []byte) (docMeta, error) {
	ctx := parser.NewContext()
	l.md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	fm, err := meta.TryGet(ctx)
	if err != nil {
		return docMeta{}, fmt.Errorf("front matter in %s: %w", file, err)
	}

	slug := core.DocSlugForFile(file)
	if s := stringValue(fm["slug"]); s != "" {
		slug = strings.Trim(s, "/")
	}

	m := docMeta{
		source:      file,
		slug:        slug,
		route:       core.NormalizePath("/docs/" + slug),
		title:       stringValue(fm["title"]),
		description: stringValue(fm["description"]),
		position:    intValue(fm["sidebar_position"]),
	}
	if m.title == "" {
		m.title = titleFromSlug(slug)
	}
	return m, nil
}

func (l *Loader) render(m docMeta, src []byte, files map[string]string) (Doc, error) {
	links := &linkResolver{
		base:  l.base,
		route: m.route,
		dir:   path.Dir(m.source),
		files: files,
	}

	ctx := parser.NewContext()
	ctx.Set(resolverKey, links)
	root := l.md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	var buf bytes.Buffer
	if err := l.md.Renderer().Render(&buf, src, root); err != nil {
		return Doc{}, fmt.Errorf("render %s: %w", m.source, err)
	}

	return Doc{
		Slug:        m.slug,
		Route:       m.route,
		Title:       m.title,
		Description: m.description,
		Position:    m.position,
		HTML:        buf.String(),
		Source:      m.source,
		Links:       links.targets,
	}, nil
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func intValue(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case uint64:
		return int(t)
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		return n
	default:
		return 0
	}
}

func titleFromSlug(slug string) string {
	base := path.Base(slug)
	words := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
