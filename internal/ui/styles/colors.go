// Package styles turns a theme palette into lipgloss colors and styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/theme"
)

// Colors are the palette's hex strings as lipgloss colors.
type Colors struct {
	Background      lipgloss.Color
	Panel           lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	DropPreview     lipgloss.Color
	TitleText       lipgloss.Color
	TextPrimary     lipgloss.Color
	TextSecondary   lipgloss.Color
	TextDim         lipgloss.Color
	KeybindKey      lipgloss.Color
	KeybindLabel    lipgloss.Color
	StatusSuccess   lipgloss.Color
	StatusWarning   lipgloss.Color
	StatusError     lipgloss.Color
	StatusInfo      lipgloss.Color

	palette theme.Palette
}

func ColorsFor(th theme.Theme) Colors {
	p := th.Palette()
	return Colors{
		Background:      lipgloss.Color(p.Background),
		Panel:           lipgloss.Color(p.Panel),
		BorderFocused:   lipgloss.Color(p.BorderFocused),
		BorderUnfocused: lipgloss.Color(p.BorderUnfocused),
		DropPreview:     lipgloss.Color(p.DropPreview),
		TitleText:       lipgloss.Color(p.Title),
		TextPrimary:     lipgloss.Color(p.TextPrimary),
		TextSecondary:   lipgloss.Color(p.TextSecondary),
		TextDim:         lipgloss.Color(p.TextDim),
		KeybindKey:      lipgloss.Color(p.KeybindKey),
		KeybindLabel:    lipgloss.Color(p.KeybindLabel),
		StatusSuccess:   lipgloss.Color(p.Success),
		StatusWarning:   lipgloss.Color(p.Warning),
		StatusError:     lipgloss.Color(p.Error),
		StatusInfo:      lipgloss.Color(p.Info),
		palette:         p,
	}
}

// Accent returns the accent color for a panel display index.
func (c Colors) Accent(index int) lipgloss.Color {
	return lipgloss.Color(c.palette.Accent(index))
}
