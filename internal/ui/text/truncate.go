package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate cuts s to maxWidth cells, ending in "…" when anything was cut.
// Escape codes do not count toward the width and are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// PadRight pads s with spaces to width cells. Wider strings are returned
// unchanged.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Fit returns s at exactly width cells: truncated or padded.
func Fit(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}
