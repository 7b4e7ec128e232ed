package core

import (
	"encoding/json"
	"sort"
	"time"
)

const ManifestVersion = 1

type ManifestPage struct {
	HTML string `json:"html"`
	Hash string `json:"hash"`
}

// Manifest records every exported page keyed by normalized route.
type Manifest struct {
	Version     int                     `json:"version"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Pages       map[string]ManifestPage `json:"pages"`
	Assets      []string                `json:"assets,omitempty"`
}

func NewManifest(now time.Time) *Manifest {
	return &Manifest{
		Version:     ManifestVersion,
		GeneratedAt: now.UTC(),
		Pages:       make(map[string]ManifestPage),
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Pages == nil {
		m.Pages = make(map[string]ManifestPage)
	}
	return &m, nil
}

func (m *Manifest) Add(route string, html []byte) {
	route = NormalizePath(route)
	m.Pages[route] = ManifestPage{
		HTML: OutputFileForRoute(route),
		Hash: HashContent(html),
	}
}

func (m *Manifest) HasRoute(route string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Pages[NormalizePath(route)]
	return ok
}

func (m *Manifest) Routes() []string {
	routes := make([]string, 0, len(m.Pages))
	for r := range m.Pages {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	return routes
}

func (m *Manifest) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
