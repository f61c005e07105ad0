// Package clipboard copies layout snapshots out of the terminal.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Copier writes text to the native clipboard, falling back to an OSC 52
// escape sequence on Fallback when the native clipboard is unavailable
// (SSH, tmux, headless sessions).
type Copier struct {
	Native   func(string) error
	Fallback io.Writer
}

// Default uses the system clipboard tools (wl-copy, xclip, pbcopy, etc.)
// and stderr for OSC 52.
func Default() Copier {
	return Copier{Native: clipboard.WriteAll, Fallback: os.Stderr}
}

// Write copies text, reporting whether the OSC 52 fallback was used.
func (c Copier) Write(text string) (osc52 bool, err error) {
	if c.Native != nil {
		if err := c.Native(text); err == nil {
			return false, nil
		}
	}
	if c.Fallback == nil {
		return false, fmt.Errorf("clipboard unavailable")
	}
	if err := writeOSC52(c.Fallback, text); err != nil {
		return true, fmt.Errorf("writing OSC52 sequence: %w", err)
	}
	return true, nil
}

// writeOSC52 writes text to the clipboard using the OSC 52 escape sequence.
func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded)
	return err
}
