package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dsawizard/dsawizard/internal/adapters/env"
	"github.com/dsawizard/dsawizard/internal/core"
)

//go:embed site.yaml
var defaultSiteData []byte

// Site is the declarative site configuration: title, theme, navigation and
// footer chrome, and link-check policies.
type Site struct {
	Title                 string    `yaml:"title"`
	Tagline               string    `yaml:"tagline"`
	Favicon               string    `yaml:"favicon"`
	URL                   string    `yaml:"url"`
	BaseURL               string    `yaml:"baseUrl"`
	OnBrokenLinks         string    `yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks string    `yaml:"onBrokenMarkdownLinks"`
	I18n                  I18n      `yaml:"i18n"`
	ColorMode             ColorMode `yaml:"colorMode"`
	Navbar                Navbar    `yaml:"navbar"`
	Footer                Footer    `yaml:"footer"`
	Prism                 Prism     `yaml:"prism"`
}

type I18n struct {
	DefaultLocale string   `yaml:"defaultLocale"`
	Locales       []string `yaml:"locales"`
}

type ColorMode struct {
	DefaultMode               string `yaml:"defaultMode"`
	DisableSwitch             bool   `yaml:"disableSwitch"`
	RespectPrefersColorScheme bool   `yaml:"respectPrefersColorScheme"`
}

type Logo struct {
	Alt string `yaml:"alt"`
	Src string `yaml:"src"`
}

type NavItem struct {
	Label    string `yaml:"label"`
	To       string `yaml:"to"`
	Href     string `yaml:"href"`
	Position string `yaml:"position"`
}

type Navbar struct {
	Title string    `yaml:"title"`
	Logo  Logo      `yaml:"logo"`
	Items []NavItem `yaml:"items"`
}

type FooterColumn struct {
	Title string    `yaml:"title"`
	Items []NavItem `yaml:"items"`
}

type Footer struct {
	Style     string         `yaml:"style"`
	Links     []FooterColumn `yaml:"links"`
	Copyright string         `yaml:"copyright"`
}

type Prism struct {
	Theme               string   `yaml:"theme"`
	DarkTheme           string   `yaml:"darkTheme"`
	AdditionalLanguages []string `yaml:"additionalLanguages"`
}

// DefaultSite returns the embedded site configuration.
func DefaultSite() (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(defaultSiteData, &s); err != nil {
		return nil, fmt.Errorf("parse embedded site config: %w", err)
	}
	return &s, nil
}

// LoadSite reads the embedded defaults, overlays the YAML file at path when
// path is non-empty, then applies DSAWIZARD_* environment overrides.
func LoadSite(path string) (*Site, error) {
	site, err := DefaultSite()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read site config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, site); err != nil {
			return nil, fmt.Errorf("parse site config %s: %w", path, err)
		}
	}

	site.applyEnv()

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *Site) applyEnv() {
	if v := env.String("TITLE"); v != "" {
		s.Title = v
	}
	if v := env.String("BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := env.String("URL"); v != "" {
		s.URL = v
	}
	if v := env.String("COLOR_MODE"); v != "" {
		s.ColorMode.DefaultMode = strings.ToLower(v)
	}
	if v := env.String("ON_BROKEN_LINKS"); v != "" {
		s.OnBrokenLinks = v
	}
}

func (s *Site) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("site config: title is required")
	}
	if !strings.HasPrefix(s.BaseURL, "/") || !strings.HasSuffix(s.BaseURL, "/") {
		return fmt.Errorf("site config: baseUrl %q must start and end with /", s.BaseURL)
	}
	switch s.ColorMode.DefaultMode {
	case "light", "dark":
	default:
		return fmt.Errorf("site config: colorMode.defaultMode %q must be light or dark", s.ColorMode.DefaultMode)
	}
	if _, err := s.LinkPolicy(); err != nil {
		return fmt.Errorf("site config: onBrokenLinks: %w", err)
	}
	if _, err := s.MarkdownLinkPolicy(); err != nil {
		return fmt.Errorf("site config: onBrokenMarkdownLinks: %w", err)
	}
	return nil
}

func (s *Site) LinkPolicy() (core.LinkPolicy, error) {
	return core.ParseLinkPolicy(s.OnBrokenLinks)
}

func (s *Site) MarkdownLinkPolicy() (core.LinkPolicy, error) {
	return core.ParseLinkPolicy(s.OnBrokenMarkdownLinks)
}

// Copyright expands {year} in the footer copyright line.
func (s *Site) Copyright(now time.Time) string {
	return strings.ReplaceAll(s.Footer.Copyright, "{year}", strconv.Itoa(now.Year()))
}

// Lang is the html lang attribute.
func (s *Site) Lang() string {
	if s.I18n.DefaultLocale == "" {
		return "en"
	}
	return s.I18n.DefaultLocale
}
