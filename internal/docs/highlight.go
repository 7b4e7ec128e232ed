package docs

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightCSS emits the chroma class stylesheet for the default color mode
// and, when respectPrefers is set, a prefers-color-scheme override for the
// other mode. Unknown style names fall back to chroma's default style.
func HighlightCSS(lightStyle, darkStyle, defaultMode string, respectPrefers bool) (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	primary, secondary, otherMode := lightStyle, darkStyle, "dark"
	if defaultMode == "dark" {
		primary, secondary, otherMode = darkStyle, lightStyle, "light"
	}

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(primary)); err != nil {
		return "", fmt.Errorf("write %s highlight css: %w", primary, err)
	}

	if respectPrefers && secondary != "" && secondary != primary {
		fmt.Fprintf(&buf, "@media (prefers-color-scheme: %s) {\n", otherMode)
		if err := formatter.WriteCSS(&buf, styles.Get(secondary)); err != nil {
			return "", fmt.Errorf("write %s highlight css: %w", secondary, err)
		}
		buf.WriteString("}\n")
	}

	return buf.String(), nil
}
