// Package cli holds the terminal output used by the dsawizard commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7a89"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

type Output struct {
	out          io.Writer
	errOut       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		out:          os.Stdout,
		errOut:       os.Stderr,
		enableColors: isTerminal(os.Stdout),
	}
}

// NewWriterOutput writes both streams to w without colors.
func NewWriterOutput(w io.Writer) *Output {
	return &Output{out: w, errOut: w}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) paint(s lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return s.Render(text)
}

func (o *Output) Green(text string) string  { return o.paint(greenStyle, text) }
func (o *Output) Yellow(text string) string { return o.paint(yellowStyle, text) }
func (o *Output) Red(text string) string    { return o.paint(redStyle, text) }
func (o *Output) Gray(text string) string   { return o.paint(grayStyle, text) }

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, o.paint(headerStyle, msg))
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(msg string, args ...any) {
	fmt.Fprintf(o.out, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	fmt.Fprintf(o.errOut, "  %s%s\n", o.Red("✗ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.out, "    %s\n", o.Gray(path))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out, msg)
}

// PrintTable writes rows under headers in padded columns separated by " | ".
func (o *Output) PrintTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string) string {
		var sb strings.Builder
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(cell)
			if i < len(widths)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			}
		}
		return sb.String()
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 3 * (len(widths) - 1)

	fmt.Fprintln(o.out, o.paint(headerStyle, line(headers)))
	fmt.Fprintln(o.out, o.Gray(strings.Repeat("-", total)))
	for _, row := range rows {
		fmt.Fprintln(o.out, line(row))
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
