package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/ui/border"
	"github.com/justinpbarnett/studio/internal/ui/styles"
)

type HelpOverlay struct {
	width  int
	height int
	keys   help.KeyMap
	help   help.Model
	styles styles.Styles
}

func NewHelpOverlay(st styles.Styles, keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "    "
	h.Styles.FullKey = st.KeybindKey
	h.Styles.FullDesc = st.TextPrimary
	h.Styles.FullSeparator = st.TextDim
	return &HelpOverlay{
		width:  64,
		height: 16,
		keys:   keys,
		help:   h,
		styles: st,
	}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

// SetMaxSize shrinks the overlay to fit a terminal of the given size.
func (h *HelpOverlay) SetMaxSize(w, height int) {
	h.width = min(64, w)
	h.height = min(16, height)
}

func (h HelpOverlay) View() string {
	h.help.Width = h.width - 4

	var b strings.Builder
	b.WriteString(h.styles.Title.Render("Layout") + "\n\n")
	for _, line := range strings.Split(h.help.FullHelpView(h.keys.FullHelp()), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + h.styles.TextSecondary.Render("Drag a title bar to move a panel."))

	content := lipgloss.NewStyle().MaxWidth(h.width - 2).Render(b.String())
	bottomKb := []border.Keybind{{Key: "?", Label: " close"}, {Key: "Esc", Label: " close"}}
	f := border.Frame{Title: "Keybinds", Keybinds: bottomKb, State: border.State{Focused: true}}
	return border.RenderPanel(h.styles, f, content, h.width, h.height)
}
