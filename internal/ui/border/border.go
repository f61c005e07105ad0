package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/ui/styles"
	"github.com/justinpbarnett/studio/internal/ui/text"
)

// Border characters
const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

// State is the visual state of a bordered panel.
type State struct {
	Focused bool
	// Preview marks the panel as the current drop target.
	Preview bool
}

func borderStyle(st styles.Styles, s State) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(st.BorderColor(s.Focused, s.Preview))
}

// titleLayout decides what fits on the top border: the title, truncated if
// needed, and the controls, dropped entirely when even a one-cell title
// would not fit beside them.
func titleLayout(title string, controls []Control, width int) (string, []Control) {
	innerWidth := width - 2
	// "─ " + title + " " ... controls
	avail := innerWidth - 3 - controlsWidth(controls)
	if len(controls) > 0 && avail < 1 {
		controls = nil
		avail = innerWidth - 3
	}
	if title == "" {
		return "", controls
	}
	return text.Truncate(title, max(avail, 0)), controls
}

// RenderBorderTop renders: ╭─ Title ──────── ⛶ □ × ─╮
// Title is bold TitleText (focused) or TextSecondary (unfocused).
func RenderBorderTop(st styles.Styles, title string, controls []Control, width int, s State) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(st, s)

	var ts lipgloss.Style
	if s.Focused {
		ts = st.Title
	} else {
		ts = st.TextSecondary.Bold(true)
	}

	innerWidth := width - 2
	title, controls = titleLayout(title, controls, width)
	if title == "" && len(controls) == 0 {
		return bs.Render(cornerTL + strings.Repeat(horizBar, innerWidth) + cornerTR)
	}

	var left string
	usedWidth := 0
	if title != "" {
		titleRendered := ts.Render(title)
		left = bs.Render(cornerTL+horizBar+" ") + titleRendered + bs.Render(" ")
		usedWidth = 3 + lipgloss.Width(titleRendered)
	} else {
		left = bs.Render(cornerTL)
	}

	right := ""
	cw := controlsWidth(controls)
	if cw > 0 {
		right = renderControls(st, controls) + bs.Render(" "+horizBar)
	}
	fillWidth := innerWidth - usedWidth - cw
	if fillWidth < 0 {
		fillWidth = 0
	}
	return left + bs.Render(strings.Repeat(horizBar, fillWidth)) + right + bs.Render(cornerTR)
}

// RenderBorderBottom renders the bottom border.
// If focused and keybinds provided: ╰─ [x] close  [m] max ──╯
// Otherwise: ╰────────────────────╯
func RenderBorderBottom(st styles.Styles, keybinds []Keybind, width int, s State) string {
	if width < 2 {
		return ""
	}
	bs := borderStyle(st, s)

	innerWidth := width - 2

	if !s.Focused || len(keybinds) == 0 {
		return bs.Render(cornerBL + strings.Repeat(horizBar, innerWidth) + cornerBR)
	}

	// "─ " prefix (2) + keybinds + " " suffix pad (1) must fit within innerWidth.
	// Keybinds that overflow the panel are dropped.
	prefixWidth := 2
	suffixPadWidth := 1
	maxKbWidth := innerWidth - prefixWidth - suffixPadWidth
	if maxKbWidth < 0 {
		maxKbWidth = 0
	}

	var kbParts []string
	usedWidth := 0
	for _, kb := range keybinds {
		rendered := RenderKeybind(st, kb)
		kbW := lipgloss.Width(rendered)
		sepW := 0
		if len(kbParts) > 0 {
			sepW = 2 // "  " separator
		}
		if usedWidth+sepW+kbW > maxKbWidth {
			break
		}
		kbParts = append(kbParts, rendered)
		usedWidth += sepW + kbW
	}

	kbStr := strings.Join(kbParts, "  ")
	fillWidth := maxKbWidth - usedWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	return bs.Render(cornerBL+horizBar+" ") +
		kbStr +
		bs.Render(" "+strings.Repeat(horizBar, fillWidth)+cornerBR)
}

// RenderBorderSides wraps content lines with │ on each side.
// Each line is truncated/padded to innerWidth (width - 2), measured
// ANSI-aware so styled content is handled correctly.
func RenderBorderSides(st styles.Styles, content string, width int, s State) string {
	if width < 2 {
		return content
	}
	bs := borderStyle(st, s)
	truncator := lipgloss.NewStyle().MaxWidth(width - 2)

	innerWidth := width - 2
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > innerWidth {
			line = truncator.Render(line)
			w = lipgloss.Width(line)
		}
		if w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		result = append(result, bs.Render(vertBar)+line+bs.Render(vertBar))
	}
	return strings.Join(result, "\n")
}
