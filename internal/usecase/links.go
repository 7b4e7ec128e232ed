package usecase

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"

	"github.com/dsawizard/dsawizard/internal/core"
)

// LinkChecker verifies that internal links in exported pages resolve to an
// exported route or asset.
type LinkChecker struct {
	manifest *core.Manifest
	assets   map[string]bool
	ignore   []string
	base     string
}

// NewLinkChecker validates the ignore globs up front. base is the site
// baseUrl. Targets must carry it and it is stripped before lookup.
func NewLinkChecker(manifest *core.Manifest, assets []string, ignore []string, base string) (*LinkChecker, error) {
	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid link ignore pattern %q", pattern)
		}
	}

	set := make(map[string]bool, len(assets))
	for _, a := range assets {
		set[core.NormalizePath(a)] = true
	}

	return &LinkChecker{
		manifest: manifest,
		assets:   set,
		ignore:   ignore,
		base:     base,
	}, nil
}

// Check parses one exported page and returns its unresolved internal links,
// sorted and deduplicated. Relative hrefs resolve against the page's public
// URL. Site-absolute targets outside the base are always broken. Targets
// listed in markdownLinks are site paths and are flagged as markdown links.
func (c *LinkChecker) Check(route string, page []byte, markdownLinks []string) ([]core.BrokenLink, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", route, err)
	}

	fromMarkdown := make(map[string]bool, len(markdownLinks))
	for _, l := range markdownLinks {
		if target, ok := core.StripLinkTarget(route, l); ok {
			fromMarkdown[target] = true
		}
	}

	pageURL := core.WithBase(c.base, route)
	seen := make(map[string]bool)
	var broken []core.BrokenLink
	for _, href := range collectTargets(doc) {
		target, ok := core.StripLinkTarget(pageURL, href)
		if !ok {
			continue
		}
		target, inBase := core.StripBase(c.base, target)
		if seen[target] || c.ignored(target) || (inBase && c.Resolves(target)) {
			continue
		}
		seen[target] = true
		broken = append(broken, core.BrokenLink{
			Source:   route,
			Target:   target,
			Markdown: fromMarkdown[target],
		})
	}

	sort.Slice(broken, func(i, j int) bool { return broken[i].Target < broken[j].Target })
	return broken, nil
}

func (c *LinkChecker) Resolves(target string) bool {
	target = core.NormalizePath(target)
	if c.manifest.HasRoute(target) || c.assets[target] {
		return true
	}
	if trimmed, ok := strings.CutSuffix(target, "/index.html"); ok {
		return c.manifest.HasRoute(trimmed)
	}
	return target == "/index.html" && c.manifest.HasRoute("/")
}

func (c *LinkChecker) ignored(target string) bool {
	for _, pattern := range c.ignore {
		if ok, _ := doublestar.Match(pattern, target); ok {
			return true
		}
	}
	return false
}

func collectTargets(root *html.Node) []string {
	var targets []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "href" || a.Key == "src" {
					targets = append(targets, a.Val)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return targets
}
