package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/studio/internal/ui/styles"
)

// Control is a clickable glyph on a panel's top border.
type Control int

const (
	ControlFullscreen Control = iota
	ControlMaximize
	ControlClose
)

func (c Control) Glyph() string {
	switch c {
	case ControlFullscreen:
		return "⛶"
	case ControlMaximize:
		return "□"
	default:
		return "×"
	}
}

func (c Control) String() string {
	switch c {
	case ControlFullscreen:
		return "fullscreen"
	case ControlMaximize:
		return "maximize"
	default:
		return "close"
	}
}

// controlsWidth is the width of " ⛶ □ ×" plus the trailing " ─", or 0.
func controlsWidth(controls []Control) int {
	if len(controls) == 0 {
		return 0
	}
	w := 2
	for _, c := range controls {
		w += 1 + ansi.StringWidth(c.Glyph())
	}
	return w
}

func renderControls(st styles.Styles, controls []Control) string {
	var b strings.Builder
	for _, c := range controls {
		b.WriteString(" ")
		style := st.TextSecondary
		if c == ControlClose {
			style = lipgloss.NewStyle().Foreground(st.Colors.StatusError)
		}
		b.WriteString(style.Render(c.Glyph()))
	}
	return b.String()
}

// ControlAt returns the control drawn at column x (relative to the panel's
// left edge) of a top border rendered with the same title, controls and
// width.
func ControlAt(title string, controls []Control, width, x int) (Control, bool) {
	if width < 2 {
		return 0, false
	}
	_, controls = titleLayout(title, controls, width)
	if len(controls) == 0 {
		return 0, false
	}
	// Controls end before " ─╮".
	pos := width - 1 - controlsWidth(controls)
	for _, c := range controls {
		pos++ // separating space
		w := ansi.StringWidth(c.Glyph())
		if x >= pos && x < pos+w {
			return c, true
		}
		pos += w
	}
	return 0, false
}
