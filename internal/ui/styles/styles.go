package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/theme"
)

// Styles holds the reusable styles for one theme. Build it with New and
// pass it down; nothing here is global.
type Styles struct {
	Theme  theme.Theme
	Colors Colors

	TextPrimary   lipgloss.Style
	TextSecondary lipgloss.Style
	TextDim       lipgloss.Style
	Title         lipgloss.Style
	KeybindKey    lipgloss.Style
	KeybindLabel  lipgloss.Style
	Header        lipgloss.Style
	Selected      lipgloss.Style
}

func New(th theme.Theme) Styles {
	c := ColorsFor(th)
	return Styles{
		Theme:         th,
		Colors:        c,
		TextPrimary:   lipgloss.NewStyle().Foreground(c.TextPrimary),
		TextSecondary: lipgloss.NewStyle().Foreground(c.TextSecondary),
		TextDim:       lipgloss.NewStyle().Foreground(c.TextDim),
		Title:         lipgloss.NewStyle().Foreground(c.TitleText).Bold(true),
		KeybindKey:    lipgloss.NewStyle().Foreground(c.KeybindKey).Bold(true),
		KeybindLabel:  lipgloss.NewStyle().Foreground(c.KeybindLabel),
		Header:        lipgloss.NewStyle().Foreground(c.TitleText).Bold(true),
		Selected:      lipgloss.NewStyle().Foreground(c.BorderFocused).Bold(true),
	}
}

// BorderColor returns the border color for a panel in the given state.
// A drop preview wins over focus.
func (s Styles) BorderColor(focused, preview bool) lipgloss.Color {
	switch {
	case preview:
		return s.Colors.DropPreview
	case focused:
		return s.Colors.BorderFocused
	default:
		return s.Colors.BorderUnfocused
	}
}

// Accent styles text in the accent color of a panel display index.
func (s Styles) Accent(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Colors.Accent(index)).Bold(true)
}
