package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/footer"
	"github.com/justinpbarnett/studio/internal/ui/border"
	"github.com/justinpbarnett/studio/internal/ui/panels"
	"github.com/justinpbarnett/studio/internal/ui/text"
)

func (a App) renderGrid() string {
	r := a.layout.Grid
	if len(a.arrangement.Grid) == 0 {
		msg := a.styles.TextDim.Render("No panels · ctrl+r resets the layout")
		return lipgloss.Place(r.W, r.H, lipgloss.Center, lipgloss.Center, msg)
	}

	var rows []string
	var line []string
	row := a.arrangement.Grid[0].Row
	for _, b := range a.arrangement.Grid {
		if b.Row != row {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line = nil
			row = b.Row
		}
		line = append(line, a.renderBox(b))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a App) renderFooter() string {
	r := a.layout.Footer
	if len(a.arrangement.Footer) == 0 {
		msg := a.styles.TextDim.Render("Footer empty")
		return lipgloss.Place(r.W, r.H, lipgloss.Center, lipgloss.Center, msg)
	}

	var cols []string
	for s := 0; s < footer.NumSlots; s++ {
		if a.arrangement.FooterSlots[s].Empty() {
			continue
		}
		var stack []string
		for _, b := range a.arrangement.Footer {
			if b.Row == s {
				if v := a.renderBox(b); v != "" {
					stack = append(stack, v)
				}
			}
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, stack...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (a App) renderBox(b Box) string {
	w, h := b.Region.W, b.Region.H
	if h <= 0 || w <= 0 {
		return ""
	}
	// Too small for a border; keep the cells so neighbours line up.
	if w < 2 || h < 2 {
		return lipgloss.NewStyle().Width(w).Height(h).Render("")
	}

	focused := a.focused == b.ID
	pv := panels.PanelView{
		ID:       b.ID,
		Title:    a.title(b),
		Index:    b.Index,
		Where:    a.where(b),
		Controls: a.controls(b),
		State:    border.State{Focused: focused, Preview: a.isPreview(b)},
	}
	if focused {
		pv.Keybinds = a.keybinds(b)
	}
	if id, ok := a.gridCtl.Dragging(); ok && id == b.ID {
		pv.Dragged = true
	} else if id, ok := a.footerCtl.Dragging(); ok && id == b.ID {
		pv.Dragged = true
	}
	return pv.Render(a.styles, w, h)
}

func (a App) where(b Box) string {
	if b.Kind == KindGrid {
		if a.gridCtl.State().Maximized == b.ID {
			return "maximized"
		}
		return text.FormatPosition(b.Row, b.Col)
	}
	if a.footerCtl.State().Fullscreen == b.ID {
		return "fullscreen"
	}
	return fmt.Sprintf("slot %d · %d", b.Row+1, b.Col+1)
}

// isPreview reports whether b is highlighted as the current drop target.
// An append drop highlights the last panel of the row.
func (a App) isPreview(b Box) bool {
	if b.Kind == KindGrid {
		pos, ok := a.gridCtl.Preview()
		if !ok || pos.Row != b.Row {
			return false
		}
		n := 0
		for _, o := range a.arrangement.Grid {
			if o.Row == b.Row {
				n++
			}
		}
		return b.Col == min(pos.Col, n-1)
	}

	t, ok := a.footerCtl.Target()
	if !ok || t.Slot != b.Row {
		return false
	}
	if t.Half == footer.Top {
		return b.Col == 0
	}
	last := 0
	for _, o := range a.arrangement.Footer {
		if o.Row == b.Row {
			last = max(last, o.Col)
		}
	}
	return b.Col == last
}
