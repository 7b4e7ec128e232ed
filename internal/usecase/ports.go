package usecase

import (
	"github.com/dsawizard/dsawizard/internal/adapters/cli"
	"github.com/dsawizard/dsawizard/internal/adapters/fs"
	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/site"
)

type PageRenderer interface {
	Page(p core.Page) (string, error)
	Error(e core.ErrorData) (string, error)
}

type Catalog interface {
	Routes() []site.Route
	Lookup(path string) (site.Route, bool)
}

// ExportReporter receives export progress. cli.ExportReport satisfies it.
type ExportReporter interface {
	StartStep(name string) *cli.ExportStep
	EndStep(step *cli.ExportStep, err error)
	AddWarning(page, message string, details ...string)
	AddError(page, message string, details ...string)
	SetCounts(pages, assets int)
}

type FileSystem = fs.FileSystem

type nopReporter struct{}

func (nopReporter) StartStep(name string) *cli.ExportStep { return &cli.ExportStep{Name: name} }
func (nopReporter) EndStep(*cli.ExportStep, error)        {}
func (nopReporter) AddWarning(string, string, ...string)  {}
func (nopReporter) AddError(string, string, ...string)    {}
func (nopReporter) SetCounts(int, int)                    {}
