package cli

import (
	"fmt"
	"io"
	"time"
)

type ExportStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type colorizer interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

// ReportEntry is a warning or error attached to one page.
type ReportEntry struct {
	Page    string
	Message string
	Details []string
}

// ExportReport collects the steps and findings of one static export and
// prints a summary once it finishes.
type ExportReport struct {
	colors      colorizer
	out         io.Writer
	steps       []*ExportStep
	warnings    []ReportEntry
	errors      []ReportEntry
	startTime   time.Time
	pageCount   int
	assetCount  int
	outputDir   string
	hasFailures bool
}

func NewExportReport(colors colorizer, out io.Writer, outputDir string) *ExportReport {
	return &ExportReport{
		colors:    colors,
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) SetCounts(pages, assets int) {
	r.pageCount = pages
	r.assetCount = assets
}

func (r *ExportReport) StartStep(name string) *ExportStep {
	step := &ExportStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return step
}

func (r *ExportReport) EndStep(step *ExportStep, err error) {
	step.EndTime = time.Now()
	step.Success = err == nil
	if err != nil {
		step.Error = err.Error()
		r.hasFailures = true
	}
}

func (r *ExportReport) AddWarning(page, message string, details ...string) {
	r.warnings = append(r.warnings, ReportEntry{Page: page, Message: message, Details: details})
}

func (r *ExportReport) AddError(page, message string, details ...string) {
	r.errors = append(r.errors, ReportEntry{Page: page, Message: message, Details: details})
	r.hasFailures = true
}

func (r *ExportReport) HasFailures() bool {
	return r.hasFailures
}

func (r *ExportReport) Render() {
	duration := time.Since(r.startTime)

	fmt.Fprintf(r.out, "  %s%d pages, %d assets\n", r.colors.Green("✓ "), r.pageCount, r.assetCount)

	if len(r.errors) > 0 || len(r.warnings) > 0 || r.hasFailures {
		fmt.Fprintln(r.out)
		for _, step := range r.steps {
			status := r.colors.Green("✓")
			if !step.Success {
				status = r.colors.Red("✗")
			}
			fmt.Fprintf(r.out, "  %s %s\n", status, step.Name)
			if step.Error != "" {
				fmt.Fprintf(r.out, "    %s\n", step.Error)
			}
		}
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  %sErrors (%d):\n", r.colors.Red("✗ "), len(r.errors))
		r.renderEntries(r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  %sWarnings (%d):\n", r.colors.Yellow("⚠ "), len(r.warnings))
		r.renderEntries(r.warnings)
	}

	if r.hasFailures {
		fmt.Fprintf(r.out, "\n  %s\n", r.colors.Red("Export failed after "+formatDuration(duration)))
	} else {
		fmt.Fprintf(r.out, "  %sExport complete in %s\n", r.colors.Green("✓ "), formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(r.out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *ExportReport) renderEntries(entries []ReportEntry) {
	for _, e := range entries {
		fmt.Fprintf(r.out, "  %s %s\n", r.colors.Red("✗"), e.Page)
		fmt.Fprintf(r.out, "    %s\n", e.Message)
		for _, detail := range deduplicateStrings(e.Details) {
			fmt.Fprintf(r.out, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings folds repeats into "item (n occurrences)", keeping
// first-seen order.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if n := counts[item]; n > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, n))
		} else {
			result = append(result, item)
		}
	}
	return result
}

