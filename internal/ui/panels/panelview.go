package panels

import (
	"strings"

	"github.com/justinpbarnett/studio/internal/ui/border"
	"github.com/justinpbarnett/studio/internal/ui/styles"
	"github.com/justinpbarnett/studio/internal/ui/text"
)

// PanelView describes one placed panel for rendering.
type PanelView struct {
	ID       string
	Title    string
	Index    int
	Where    string
	Controls []border.Control
	Keybinds []border.Keybind
	State    border.State
	// Dragged marks the panel currently being dragged.
	Dragged bool
}

// Render draws the panel as a bordered box of exactly w×h cells.
func (p PanelView) Render(st styles.Styles, w, h int) string {
	if w < 2 || h < 2 {
		return ""
	}
	innerW := w - 2

	var lines []string
	accent := st.Accent(p.Index)
	lines = append(lines, " "+accent.Render("■")+" "+st.TextPrimary.Render(text.Truncate(p.ID, innerW-3)))
	if p.Where != "" {
		lines = append(lines, " "+st.TextSecondary.Render(text.Truncate(p.Where, innerW-1)))
	}
	lines = append(lines, " "+st.TextDim.Render(text.FormatSize(w, h)))
	if p.Dragged {
		lines = append(lines, "", " "+st.Selected.Render(text.Truncate("moving…", innerW-1)))
	}

	f := border.Frame{
		Title:    p.Title,
		Controls: p.Controls,
		Keybinds: p.Keybinds,
		State:    p.State,
	}
	return border.RenderPanel(st, f, strings.Join(lines, "\n"), w, h)
}
