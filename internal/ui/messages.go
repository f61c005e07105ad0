package ui

import "github.com/justinpbarnett/studio/internal/ui/panels"

// Type aliases to panels message types, single source of truth.

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// SavedMsg reports the result of a preferences save.
type SavedMsg struct {
	Err error
	// Data is the encoded record that was written.
	Data string
}

// PrefsChangedMsg is sent when the preferences file changed on disk.
type PrefsChangedMsg struct{}

// WatchErrorMsg carries a preferences watcher error.
type WatchErrorMsg struct {
	Err error
}
