package border

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/studio/internal/ui/styles"
)

// Keybind represents a single keybind hint: [x] close, [m]aximize, etc.
type Keybind struct {
	Key   string // The key, e.g. "x"
	Label string // The label after the key, e.g. " close"
}

// RenderKeybind renders a single keybind: [x] close with Key in KeybindKey color (bold), label in KeybindLabel.
func RenderKeybind(st styles.Styles, kb Keybind) string {
	return st.KeybindKey.Render("["+kb.Key+"]") + st.KeybindLabel.Render(kb.Label)
}

// KeybindWidth returns the display width of a rendered keybind (without ANSI).
// Format is [key]label, so width = 2 + width(key) + width(label)
func KeybindWidth(kb Keybind) int {
	return 2 + ansi.StringWidth(kb.Key) + ansi.StringWidth(kb.Label)
}
