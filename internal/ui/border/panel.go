package border

import (
	"strings"

	"github.com/justinpbarnett/studio/internal/ui/styles"
)

// Frame describes the chrome drawn around a panel's content.
type Frame struct {
	Title    string
	Controls []Control
	Keybinds []Keybind
	State
}

// RenderPanel assembles a complete bordered panel:
//
//	top border (with title and controls)
//	content lines (with side borders)
//	bottom border (with keybinds if focused)
//
// Content is padded/cropped to exactly fill height-2 rows x width-2 cols.
func RenderPanel(st styles.Styles, f Frame, content string, width, height int) string {
	if height < 2 || width < 2 {
		return ""
	}

	innerHeight := height - 2
	innerWidth := width - 2

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, strings.Repeat(" ", innerWidth))
	}

	top := RenderBorderTop(st, f.Title, f.Controls, width, f.State)
	bottom := RenderBorderBottom(st, f.Keybinds, width, f.State)
	if innerHeight == 0 {
		return top + "\n" + bottom
	}
	middle := RenderBorderSides(st, strings.Join(lines, "\n"), width, f.State)

	return top + "\n" + middle + "\n" + bottom
}
