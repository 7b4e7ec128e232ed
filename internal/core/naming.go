package core

import (
	"strings"
)

// PatternSlug derives the docs path segment for a pattern name. Only the
// first space is replaced, so existing links such as /docs/bfs/dfs and
// /docs/dynamic-programming stay stable.
func PatternSlug(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "-", 1)
}

func PatternDocPath(name string) string {
	return "/docs/" + PatternSlug(name)
}

// DocSlugForFile maps a docs file path to its route slug:
// "patterns/two-pointers.md" -> "patterns/two-pointers".
func DocSlugForFile(path string) string {
	name := strings.TrimPrefix(path, "./")
	name = strings.TrimPrefix(name, "/")
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "."); i > strings.LastIndex(name, "/") {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, "/index")
	if name == "index" {
		return ""
	}
	return name
}
