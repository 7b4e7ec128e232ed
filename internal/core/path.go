package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// OutputFileForRoute returns the slash-separated export file for a route,
// relative to the output directory: "/" -> "index.html",
// "/docs/x" -> "docs/x/index.html".
func OutputFileForRoute(route string) string {
	route = NormalizePath(route)
	if route == "/" {
		return "index.html"
	}
	return path.Join(strings.TrimPrefix(route, "/"), "index.html")
}

// IsLocalLink reports whether href points into the site: not empty, not a
// bare fragment, and without a scheme or host.
func IsLocalLink(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return false
	}
	if strings.Contains(href, "://") {
		return false
	}
	for _, scheme := range []string{"mailto:", "tel:", "data:", "javascript:"} {
		if strings.HasPrefix(href, scheme) {
			return false
		}
	}
	return true
}

// WithBase prefixes a site path with baseUrl. Links that are not local pass
// through unchanged.
func WithBase(base, to string) string {
	if !IsLocalLink(to) {
		return to
	}
	if base == "" {
		base = "/"
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(to, "/")
}

// StripBase removes baseUrl from an absolute path. ok is false when p is
// outside the base.
func StripBase(base, p string) (string, bool) {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return p, true
	}
	if p == base {
		return "/", true
	}
	if rest, ok := strings.CutPrefix(p, base+"/"); ok {
		return "/" + rest, true
	}
	return p, false
}

// SplitLinkSuffix separates the path of an href from its query and fragment.
func SplitLinkSuffix(href string) (p, suffix string) {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		return href[:i], href[i:]
	}
	return href, ""
}

// ResolveLink makes href absolute against the page at route. Every route is
// exported as <route>/index.html, so the page itself is the directory.
func ResolveLink(route, href string) string {
	if strings.HasPrefix(href, "/") {
		return path.Clean(href)
	}
	return path.Join(NormalizePath(route), href)
}

// StripLinkTarget drops the query and fragment from an href and resolves it
// against the page URL. ok is false for external, mailto, and fragment-only
// links.
func StripLinkTarget(page, href string) (target string, ok bool) {
	href = strings.TrimSpace(href)
	if !IsLocalLink(href) {
		return "", false
	}

	href, _ = SplitLinkSuffix(href)
	if href == "" {
		return "", false
	}

	return NormalizePath(ResolveLink(page, href)), true
}
