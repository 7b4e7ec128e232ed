package core

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable(t *testing.T) {
	t.Run("keeps section and row order", func(t *testing.T) {
		table := BuildTable("t", []string{"A", "B"},
			TableSection{Title: "first", Rows: []Row{NewRow("1", "x"), NewRow("2", "y")}},
			TableSection{Title: "second", Rows: []Row{NewRow("3", "z")}},
		)

		require.Len(t, table.Sections, 2)
		assert.Equal(t, "first", table.Sections[0].Title)
		assert.Equal(t, []string{"1", "x"}, table.Sections[0].Rows[0].Cells)
		assert.Equal(t, []string{"2", "y"}, table.Sections[0].Rows[1].Cells)
		assert.Equal(t, []string{"3", "z"}, table.Sections[1].Rows[0].Cells)
		assert.Equal(t, 3, table.BodyRowCount())
	})

	t.Run("pads short rows and drops surplus cells", func(t *testing.T) {
		table := BuildTable("", []string{"A", "B", "C"},
			TableSection{Rows: []Row{NewRow("only"), NewRow("1", "2", "3", "4"), {}}},
		)

		rows := table.Sections[0].Rows
		assert.Equal(t, []string{"only", "", ""}, rows[0].Cells)
		assert.Equal(t, []string{"1", "2", "3"}, rows[1].Cells)
		assert.Equal(t, []string{"", "", ""}, rows[2].Cells)
	})

	t.Run("does not alias caller slices", func(t *testing.T) {
		headers := []string{"A"}
		row := NewRow("x")
		table := BuildTable("", headers, TableSection{Rows: []Row{row}})

		headers[0] = "changed"
		row.Cells[0] = "changed"

		assert.Equal(t, "A", table.Headers[0])
		assert.Equal(t, "x", table.Sections[0].Rows[0].Cells[0])
	})
}

func TestBuildCardGrid(t *testing.T) {
	grid := BuildCardGrid("Companies", []string{"B", "A", "C"}, map[string][]string{
		"A": {"a1", "a2"},
		"B": {"b1"},
	})

	require.Len(t, grid.Cards, 3)
	assert.Equal(t, "B", grid.Cards[0].Title)
	assert.Equal(t, "A", grid.Cards[1].Title)
	assert.Equal(t, []string{"a1", "a2"}, grid.Cards[1].Items)
	assert.Equal(t, "C", grid.Cards[2].Title)
	assert.Empty(t, grid.Cards[2].Items)
}

func TestPatternSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Two Pointers", "two-pointers"},
		{"Sliding Window", "sliding-window"},
		{"BFS/DFS", "bfs/dfs"},
		{"Dynamic Programming", "dynamic-programming"},
		{"Top K Elements", "top-k elements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatternSlug(tt.name))
		})
	}

	assert.Equal(t, "/docs/two-pointers", PatternDocPath("Two Pointers"))
}

func TestDocSlugForFile(t *testing.T) {
	assert.Equal(t, "two-pointers", DocSlugForFile("two-pointers.md"))
	assert.Equal(t, "patterns/bfs", DocSlugForFile("./patterns/bfs.md"))
	assert.Equal(t, "patterns", DocSlugForFile("patterns/index.md"))
	assert.Equal(t, "", DocSlugForFile("index.md"))
	assert.Equal(t, "v1.2/intro", DocSlugForFile("v1.2/intro.md"))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/", NormalizePath(""))
	assert.Equal(t, "/", NormalizePath("/"))
	assert.Equal(t, "/docs", NormalizePath("docs/"))
	assert.Equal(t, "/docs/a", NormalizePath("/docs/a/"))
}

func TestValidateRoutePath(t *testing.T) {
	assert.NoError(t, ValidateRoutePath("/complexity"))
	for _, bad := range []string{"", "docs", "/a?b", "/a#b", "/../x", "/a/*"} {
		assert.Error(t, ValidateRoutePath(bad), bad)
	}
}

func TestOutputFileForRoute(t *testing.T) {
	assert.Equal(t, "index.html", OutputFileForRoute("/"))
	assert.Equal(t, "complexity/index.html", OutputFileForRoute("/complexity"))
	assert.Equal(t, "docs/category/dsa-patterns/index.html", OutputFileForRoute("/docs/category/dsa-patterns/"))
}

func TestStripLinkTarget(t *testing.T) {
	tests := []struct {
		base, href string
		want       string
		ok         bool
	}{
		{"/", "/docs/x", "/docs/x", true},
		{"/", "/docs/x/?a=1#top", "/docs/x", true},
		{"/docs/two-pointers", "../sliding-window", "/docs/sliding-window", true},
		{"/docs/two-pointers", "./diagram.svg", "/docs/two-pointers/diagram.svg", true},
		{"/docs/a/", "../../img/logo.svg", "/img/logo.svg", true},
		{"/", "complexity", "/complexity", true},
		{"/", "#section", "", false},
		{"/", "https://example.com", "", false},
		{"/", "//cdn.example.com/x.js", "", false},
		{"/", "mailto:a@b.c", "", false},
		{"/", "", "", false},
	}

	for _, tt := range tests {
		got, ok := StripLinkTarget(tt.base, tt.href)
		assert.Equal(t, tt.ok, ok, tt.href)
		assert.Equal(t, tt.want, got, tt.href)
	}
}

func TestWithBase(t *testing.T) {
	assert.Equal(t, "/x", WithBase("/", "/x"))
	assert.Equal(t, "/site/x", WithBase("/site/", "x"))
	assert.Equal(t, "/site/", WithBase("/site/", "/"))
	assert.Equal(t, "https://example.com", WithBase("/site/", "https://example.com"))
	assert.Equal(t, "mailto:a@b.c", WithBase("/site/", "mailto:a@b.c"))
	assert.Equal(t, "#top", WithBase("/site/", "#top"))
	assert.Equal(t, "", WithBase("/site/", ""))
}

func TestStripBase(t *testing.T) {
	tests := []struct {
		base, path string
		want       string
		ok         bool
	}{
		{"/", "/docs/x", "/docs/x", true},
		{"/dsa/", "/dsa", "/", true},
		{"/dsa/", "/dsa/", "/", true},
		{"/dsa/", "/dsa/complexity", "/complexity", true},
		{"/dsa/", "/complexity", "/complexity", false},
		{"/dsa/", "/dsanother", "/dsanother", false},
	}

	for _, tt := range tests {
		got, ok := StripBase(tt.base, tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestManifest(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := NewManifest(now)
	m.Add("/complexity/", []byte("<html></html>"))
	m.Add("/", []byte("home"))

	assert.True(t, m.HasRoute("/complexity"))
	assert.False(t, m.HasRoute("/missing"))
	assert.Equal(t, []string{"/", "/complexity"}, m.Routes())
	assert.Equal(t, "complexity/index.html", m.Pages["/complexity"].HTML)
	assert.Equal(t, HashContent([]byte("home")), m.Pages["/"].Hash)

	data, err := m.Marshal()
	require.NoError(t, err)

	parsed, err := ParseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, ManifestVersion, parsed.Version)
	assert.True(t, parsed.GeneratedAt.Equal(now))
	assert.Equal(t, m.Pages, parsed.Pages)
}

func TestHashContent(t *testing.T) {
	assert.Equal(t, "0", HashContent(nil))
	assert.Equal(t, "96354", HashContent([]byte("abc")))
	// intermediate products exceed 32 bits
	assert.Equal(t, "283074949", HashContent(bytes.Repeat([]byte("sliding-window"), 8)))
	assert.Equal(t, HashContent([]byte("abc")), HashContent([]byte("abc")))
	assert.NotEqual(t, HashContent([]byte("abc")), HashContent([]byte("abd")))
	assert.Equal(t, `"`+HashContent([]byte("x"))+`"`, ETag([]byte("x")))
}

func TestParseLinkPolicy(t *testing.T) {
	for in, want := range map[string]LinkPolicy{
		"":       LinkIgnore,
		"ignore": LinkIgnore,
		"WARN":   LinkWarn,
		"log":    LinkWarn,
		"throw":  LinkThrow,
	} {
		got, err := ParseLinkPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLinkPolicy("explode")
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/svg+xml", ContentType("img/logo.svg"))
	assert.Equal(t, "text/css; charset=utf-8", ContentType("/css/custom.CSS"))
	assert.Equal(t, "text/javascript; charset=utf-8", ContentType("app.js"))
	assert.Equal(t, "application/octet-stream", ContentType("blob"))
}
