package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/studio/internal/footer"
	"github.com/justinpbarnett/studio/internal/persistence"
	"github.com/justinpbarnett/studio/internal/theme"
	"github.com/justinpbarnett/studio/internal/ui/panels"
)

// requestSave schedules a save of the current state. Saves never overlap:
// while one is in flight the next is queued and runs with the state as it
// is when the first finishes.
func (a *App) requestSave() tea.Cmd {
	if a.store == nil {
		return nil
	}
	if a.saving {
		a.saveQueued = true
		return nil
	}
	a.saving = true
	return saveCmd(a.store, a.Snapshot())
}

func saveCmd(store persistence.Store, p persistence.Preferences) tea.Cmd {
	return func() tea.Msg {
		data, err := persistence.Encode(p)
		if err != nil {
			return SavedMsg{Err: err}
		}
		if err := store.Save(p); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Data: string(data)}
	}
}

func (a *App) handleSaved(msg SavedMsg) tea.Cmd {
	a.saving = false

	var cmds []tea.Cmd
	if msg.Err != nil {
		log.Printf("warning: save preferences: %v", msg.Err)
		cmds = append(cmds, a.flash("Could not save layout: "+msg.Err.Error(), panels.FlashError))
	} else {
		a.lastWritten = msg.Data
		a.lastSaved = time.Now()
	}

	switch {
	case a.saveQueued:
		a.saveQueued = false
		cmds = append(cmds, a.requestSave())
	case a.quitting:
		cmds = append(cmds, tea.Quit)
	}
	a.refresh()
	return tea.Batch(cmds...)
}

// quit writes the final state, then exits.
func (a *App) quit() tea.Cmd {
	a.cancelDrag()
	a.quitting = true
	if a.store == nil {
		return tea.Quit
	}
	if a.saving {
		a.saveQueued = true
		return nil
	}
	return a.requestSave()
}

// reloadPreferences applies an external edit of the preferences file and
// reports whether anything changed. Events caused by our own saves are
// recognized by content and ignored.
func (a *App) reloadPreferences() bool {
	if a.store == nil || a.saving || a.saveQueued {
		return false
	}
	p := a.store.Load()
	if data, err := persistence.Encode(p); err == nil && string(data) == a.lastWritten {
		return false
	}

	changed := false
	if g := p.GridState(a.defaultGrid()); !g.Equal(a.gridCtl.State()) {
		a.gridCtl.SetState(g)
		changed = true
	}
	if f := p.FooterState(footer.DefaultState(a.cfg.Footer.Panels)); !f.Equal(a.footerCtl.State()) {
		a.footerCtl.SetState(f)
		changed = true
	}
	if hasSaved(p) && p.DarkMode != a.theme.Dark {
		a.setTheme(theme.Theme{Dark: p.DarkMode})
		changed = true
	}
	if sp := p.Splitters(a.defaultSplitters()); sp != a.splitters {
		a.splitters = sp
		changed = true
	}

	// Applying the file must not write it back.
	*a.dirty = false
	if changed {
		a.pending = pendingDrag{}
		a.relayout()
		a.refresh()
	}
	return changed
}

// listenForPrefs waits for the next watcher event.
func (a App) listenForPrefs() tea.Cmd {
	w := a.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return PrefsChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}

func (a *App) copySnapshot() tea.Cmd {
	data, err := persistence.Encode(a.Snapshot())
	if err != nil {
		log.Printf("warning: encode snapshot: %v", err)
		return a.flash("Could not encode snapshot", panels.FlashError)
	}
	osc52, err := a.copier.Write(string(data))
	if err != nil {
		log.Printf("warning: copy snapshot: %v", err)
		return a.flash("Copy failed", panels.FlashError)
	}
	if osc52 {
		return a.flash("Snapshot sent to terminal clipboard", panels.FlashSuccess)
	}
	return a.flash("Snapshot copied", panels.FlashSuccess)
}
