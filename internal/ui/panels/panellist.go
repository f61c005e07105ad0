package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/studio/internal/ui/border"
	"github.com/justinpbarnett/studio/internal/ui/styles"
	"github.com/justinpbarnett/studio/internal/ui/text"
)

// ListEntry is one row of a sidebar panel list.
type ListEntry struct {
	ID     string
	Title  string
	Where  string
	Shown  bool
	Accent int
}

// PanelList is a sidebar listing the panels of the grid or the footer,
// with where each one currently sits.
type PanelList struct {
	title    string
	entries  []ListEntry
	selected int
	offset   int
	width    int
	height   int
	focused  bool
	styles   styles.Styles
}

func NewPanelList(title string, st styles.Styles) PanelList {
	return PanelList{title: title, styles: st}
}

func (l PanelList) Update(msg tea.Msg) (PanelList, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch km.String() {
	case "j", "down":
		if l.selected < len(l.entries)-1 {
			l.selected++
			l.scrollToSelection()
		}
	case "k", "up":
		if l.selected > 0 {
			l.selected--
			l.scrollToSelection()
		}
	case "G":
		l.selected = max(len(l.entries)-1, 0)
		l.scrollToSelection()
	}
	return l, nil
}

func (l PanelList) View() string {
	st := l.styles
	innerW := l.width - 2

	var lines []string
	visibleRows := l.visibleRows()
	end := min(l.offset+visibleRows, len(l.entries))
	for i := l.offset; i < end; i++ {
		e := l.entries[i]
		icon := st.TextDim.Render("○")
		if e.Shown {
			icon = st.Accent(e.Accent).Render("●")
		}
		titleStyle := st.TextPrimary
		if !e.Shown {
			titleStyle = st.TextDim
		}
		where := st.TextSecondary.Render(e.Where)
		titleW := max(innerW-3-len([]rune(e.Where))-1, 1)
		row := " " + icon + " " + titleStyle.Render(text.Fit(e.Title, titleW)) + " " + where
		if l.focused && i == l.selected {
			row = st.Selected.Render("›") + row[1:]
		}
		lines = append(lines, row)
	}
	if len(l.entries) == 0 {
		lines = append(lines, " "+st.TextDim.Render("no panels"))
	}

	shown := 0
	for _, e := range l.entries {
		if e.Shown {
			shown++
		}
	}
	title := fmt.Sprintf("%s (%d/%d)", l.title, shown, len(l.entries))

	var kbs []border.Keybind
	if l.focused {
		kbs = []border.Keybind{{Key: "x", Label: " close"}, {Key: "j/k", Label: " move"}}
	}
	f := border.Frame{Title: title, Keybinds: kbs, State: border.State{Focused: l.focused}}
	return border.RenderPanel(st, f, strings.Join(lines, "\n"), l.width, l.height)
}

// SetEntries replaces the listed panels, keeping the selection on the same
// panel id when it is still listed.
func (l *PanelList) SetEntries(entries []ListEntry) {
	var selID string
	if e, ok := l.Selected(); ok {
		selID = e.ID
	}
	l.entries = entries
	l.selected = 0
	for i, e := range entries {
		if e.ID == selID {
			l.selected = i
			break
		}
	}
	l.scrollToSelection()
}

// Selected returns the highlighted entry.
func (l PanelList) Selected() (ListEntry, bool) {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return ListEntry{}, false
	}
	return l.entries[l.selected], true
}

func (l *PanelList) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.scrollToSelection()
}

func (l *PanelList) SetFocused(f bool) {
	l.focused = f
}

func (l *PanelList) SetStyles(st styles.Styles) {
	l.styles = st
}

func (l PanelList) visibleRows() int {
	return max(l.height-2, 0)
}

func (l *PanelList) scrollToSelection() {
	rows := l.visibleRows()
	if rows == 0 {
		l.offset = 0
		return
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+rows {
		l.offset = l.selected - rows + 1
	}
}
