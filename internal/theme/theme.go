// Package theme carries the light/dark theme as an explicit value. Anything
// that renders takes a Theme argument; there is no process-wide mode.
package theme

// Theme selects the light or dark palette.
type Theme struct {
	Dark bool
}

func Light() Theme { return Theme{} }
func Dark() Theme  { return Theme{Dark: true} }

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	return Theme{Dark: !t.Dark}
}

// Name is "dark" or "light".
func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// Palette is a set of hex colors for one theme.
type Palette struct {
	Background      string
	Panel           string
	BorderFocused   string
	BorderUnfocused string
	DropPreview     string
	Title           string
	TextPrimary     string
	TextSecondary   string
	TextDim         string
	KeybindKey      string
	KeybindLabel    string
	Success         string
	Warning         string
	Error           string
	Info            string
	// Accents color panels by their display index.
	Accents []string
}

var lightPalette = Palette{
	Background:      "#e2e8f0",
	Panel:           "#f8fafc",
	BorderFocused:   "#2e5cb8",
	BorderUnfocused: "#c0c0c0",
	DropPreview:     "#4080c0",
	Title:           "#1a1b26",
	TextPrimary:     "#1a1b26",
	TextSecondary:   "#8890a8",
	TextDim:         "#b0b0b0",
	KeybindKey:      "#8a6200",
	KeybindLabel:    "#8890a8",
	Success:         "#1a7f37",
	Warning:         "#8a6200",
	Error:           "#cf222e",
	Info:            "#0969da",
	Accents: []string{
		"#2563eb", "#7c3aed", "#db2777", "#ea580c", "#16a34a",
		"#0891b2", "#ca8a04", "#4f46e5", "#dc2626",
	},
}

var darkPalette = Palette{
	Background:      "#0f172a",
	Panel:           "#1e293b",
	BorderFocused:   "#7aa2f7",
	BorderUnfocused: "#3b4261",
	DropPreview:     "#4080c0",
	Title:           "#c0caf5",
	TextPrimary:     "#c0caf5",
	TextSecondary:   "#565f89",
	TextDim:         "#3b4261",
	KeybindKey:      "#e0af68",
	KeybindLabel:    "#565f89",
	Success:         "#9ece6a",
	Warning:         "#e0af68",
	Error:           "#f7768e",
	Info:            "#7dcfff",
	Accents: []string{
		"#7aa2f7", "#bb9af7", "#f7768e", "#ff9e64", "#9ece6a",
		"#7dcfff", "#e0af68", "#2ac3de", "#db4b4b",
	},
}

// Palette returns the colors for t.
func (t Theme) Palette() Palette {
	if t.Dark {
		return darkPalette
	}
	return lightPalette
}

// Accent returns the accent color for a display index.
func (p Palette) Accent(index int) string {
	if len(p.Accents) == 0 {
		return p.TextPrimary
	}
	if index < 0 {
		index = -index
	}
	return p.Accents[index%len(p.Accents)]
}
