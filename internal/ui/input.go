package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/studio/internal/config"
	"github.com/justinpbarnett/studio/internal/geom"
	"github.com/justinpbarnett/studio/internal/panel"
	"github.com/justinpbarnett/studio/internal/ui/border"
	"github.com/justinpbarnett/studio/internal/ui/layout"
	"github.com/justinpbarnett/studio/internal/ui/panels"
)

// pendingDrag is a press on a title bar. It becomes a controller drag once
// the pointer has moved at least the drag threshold.
type pendingDrag struct {
	armed   bool
	started bool
	id      string
	kind    BoxKind
	x, y    int
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Help):
		a.cancelDrag()
		a.helpOverlay = panels.NewHelpOverlay(a.styles, a.keys)
		a.helpOverlay.SetMaxSize(a.width, a.height)
		return nil
	case key.Matches(msg, a.keys.Cancel):
		a.cancelDrag()
		return nil
	case key.Matches(msg, a.keys.FocusNext):
		a.moveFocus(1)
		return nil
	case key.Matches(msg, a.keys.FocusPrev):
		a.moveFocus(-1)
		return nil
	case key.Matches(msg, a.keys.Close):
		a.closeFocused()
		return nil
	case key.Matches(msg, a.keys.Maximize):
		if b, ok := a.focusedBox(); ok && b.Kind == KindGrid && a.canMaximize(b.ID) {
			a.gridCtl.ToggleMaximize(b.ID)
		}
		return nil
	case key.Matches(msg, a.keys.Fullscreen):
		if b, ok := a.focusedBox(); ok && b.Kind == KindFooter && a.footerDef(b.ID).Fullscreenable {
			a.footerCtl.ToggleFullscreen(b.ID)
		}
		return nil
	case key.Matches(msg, a.keys.CycleMode):
		mode := a.gridCtl.State().Mode.Next()
		a.gridCtl.SetMode(mode)
		return a.flash("Layout mode: "+mode.Name(), panels.FlashInfo)
	case key.Matches(msg, a.keys.Theme):
		a.setTheme(a.theme.Toggle())
		*a.dirty = true
		return nil
	case key.Matches(msg, a.keys.FooterGrow):
		a.resizeFooter(1)
		return nil
	case key.Matches(msg, a.keys.FooterShrink):
		a.resizeFooter(-1)
		return nil
	case key.Matches(msg, a.keys.Reset):
		a.resetLayout()
		return a.flash("Layout reset", panels.FlashSuccess)
	case key.Matches(msg, a.keys.Copy):
		return a.copySnapshot()
	}

	switch a.focused {
	case focusLeft:
		var cmd tea.Cmd
		a.leftList, cmd = a.leftList.Update(msg)
		return cmd
	case focusRight:
		var cmd tea.Cmd
		a.rightList, cmd = a.rightList.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.helpOverlay != nil || a.layout.TooSmall {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return a.press(msg.X, msg.Y)
	case tea.MouseActionMotion:
		a.motion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		a.release(msg.X, msg.Y)
	}
	return nil
}

func (a *App) press(x, y int) tea.Cmd {
	a.cancelDrag()

	b, ok := a.arrangement.At(x, y)
	if !ok {
		switch {
		case a.layout.Left.Contains(x, y):
			a.focused = focusLeft
		case a.layout.Right.Contains(x, y):
			a.focused = focusRight
		}
		return nil
	}
	a.focused = b.ID

	// Only the top border row is a title bar.
	if y != b.Region.Y {
		return nil
	}
	if c, ok := border.ControlAt(a.title(b), a.controls(b), b.Region.W, x-b.Region.X); ok {
		a.runControl(b, c)
		return nil
	}
	if a.canDrag(b) {
		a.pending = pendingDrag{armed: true, id: b.ID, kind: b.Kind, x: x, y: y}
	}
	return nil
}

func (a *App) motion(x, y int) {
	p := &a.pending
	if !p.armed {
		return
	}
	if !p.started {
		if max(abs(x-p.x), abs(y-p.y)) < a.cfg.Grid.DragThreshold {
			return
		}
		if p.kind == KindGrid {
			p.started = a.gridCtl.StartDrag(p.id)
		} else {
			p.started = a.footerCtl.StartDrag(p.id)
		}
		if !p.started {
			a.pending = pendingDrag{}
			return
		}
	}

	pt := geom.Pt(x, y)
	if p.kind == KindGrid {
		a.gridCtl.Hover(pt)
	} else {
		a.footerCtl.Hover(pt)
	}
}

// release ends any drag; the controllers return to idle whatever happens.
func (a *App) release(x, y int) {
	p := a.pending
	a.pending = pendingDrag{}
	if !p.started {
		return
	}
	pt := geom.Pt(x, y)
	if p.kind == KindGrid {
		a.gridCtl.Drop(pt)
	} else {
		a.footerCtl.DropAt(pt)
	}
}

func (a *App) cancelDrag() {
	a.pending = pendingDrag{}
	a.gridCtl.Cancel()
	a.footerCtl.Cancel()
}

func (a *App) runControl(b Box, c border.Control) {
	switch c {
	case border.ControlClose:
		a.closeBox(b)
	case border.ControlMaximize:
		a.gridCtl.ToggleMaximize(b.ID)
	case border.ControlFullscreen:
		a.footerCtl.ToggleFullscreen(b.ID)
	}
}

func (a *App) closeFocused() {
	switch a.focused {
	case focusLeft:
		if e, ok := a.leftList.Selected(); ok && a.canClose(e.ID) {
			a.gridCtl.Close(e.ID)
		}
	case focusRight:
		if e, ok := a.rightList.Selected(); ok && a.footerDef(e.ID).Closable {
			a.footerCtl.Close(e.ID)
		}
	default:
		if b, ok := a.focusedBox(); ok {
			a.closeBox(b)
		}
	}
}

func (a *App) closeBox(b Box) {
	if b.Kind == KindGrid {
		if a.canClose(b.ID) {
			a.gridCtl.Close(b.ID)
		}
		return
	}
	if a.footerDef(b.ID).Closable {
		a.footerCtl.Close(b.ID)
	}
}

func (a *App) resizeFooter(delta int) {
	showHeader := config.On(a.cfg.Shell.ShowHeader)
	h := a.splitters.Footer + delta
	h = max(layout.MinFooterHeight, min(h, layout.MaxFooterHeight(a.height, showHeader)))
	if h == a.splitters.Footer {
		return
	}
	a.splitters.Footer = h
	*a.dirty = true
}

// resetLayout restores both grids and the splitters. The theme is kept.
func (a *App) resetLayout() {
	a.cancelDrag()
	a.gridCtl.SetState(a.defaultGrid())
	a.footerCtl.Reset(a.cfg.Footer.Panels)
	a.splitters = a.defaultSplitters()
	*a.dirty = true
}

// focusRing lists focus targets in tab order: grid panels, footer panels,
// then the sidebars.
func (a App) focusRing() []string {
	var ring []string
	for _, b := range a.arrangement.Boxes() {
		ring = append(ring, b.ID)
	}
	if !a.layout.Left.Empty() {
		ring = append(ring, focusLeft)
	}
	if !a.layout.Right.Empty() {
		ring = append(ring, focusRight)
	}
	return ring
}

func (a *App) moveFocus(delta int) {
	ring := a.focusRing()
	if len(ring) == 0 {
		a.focused = ""
		return
	}
	i := 0
	for j, id := range ring {
		if id == a.focused {
			i = (j + delta + len(ring)) % len(ring)
			break
		}
	}
	a.focused = ring[i]
}

// ensureFocus moves focus to the first target when the focused panel is
// no longer on screen.
func (a *App) ensureFocus() {
	ring := a.focusRing()
	for _, id := range ring {
		if id == a.focused {
			return
		}
	}
	a.focused = ""
	if len(ring) > 0 {
		a.focused = ring[0]
	}
}

func (a App) focusedBox() (Box, bool) {
	if a.focused == "" {
		return Box{}, false
	}
	return a.arrangement.Find(a.focused)
}

func (a App) gridDef(id string) panel.Definition {
	if d, ok := a.gridReg.Get(id); ok {
		return d
	}
	return panel.New(id, id)
}

func (a App) footerDef(id string) panel.Definition {
	if d, ok := a.footerReg.Get(id); ok {
		return d
	}
	return panel.Footer(id, id)
}

func (a App) canClose(id string) bool {
	return config.On(a.cfg.Grid.EnableClose) && a.gridDef(id).Closable
}

func (a App) canMaximize(id string) bool {
	return config.On(a.cfg.Grid.EnableMaximize) && a.gridDef(id).Maximizable
}

// canDrag reports whether b's title bar starts a drag. A maximized grid
// and a fullscreen footer have nowhere to drop.
func (a App) canDrag(b Box) bool {
	if b.Kind == KindGrid {
		return config.On(a.cfg.Grid.EnableDrag) && a.gridCtl.State().Maximized == ""
	}
	return a.footerCtl.State().Fullscreen == ""
}

func (a App) title(b Box) string {
	if b.Kind == KindGrid {
		return a.gridDef(b.ID).Title
	}
	return a.footerDef(b.ID).Title
}

// controls returns the title bar controls of b in drawing order.
func (a App) controls(b Box) []border.Control {
	var out []border.Control
	if b.Kind == KindGrid {
		if a.canMaximize(b.ID) {
			out = append(out, border.ControlMaximize)
		}
		if a.canClose(b.ID) {
			out = append(out, border.ControlClose)
		}
		return out
	}
	def := a.footerDef(b.ID)
	if def.Fullscreenable {
		out = append(out, border.ControlFullscreen)
	}
	if def.Closable {
		out = append(out, border.ControlClose)
	}
	return out
}

func (a App) keybinds(b Box) []border.Keybind {
	var kbs []border.Keybind
	if b.Kind == KindGrid {
		if a.canClose(b.ID) {
			kbs = append(kbs, border.Keybind{Key: "x", Label: " close"})
		}
		if a.canMaximize(b.ID) {
			kbs = append(kbs, border.Keybind{Key: "m", Label: "ax"})
		}
		return kbs
	}
	def := a.footerDef(b.ID)
	if def.Closable {
		kbs = append(kbs, border.Keybind{Key: "x", Label: " close"})
	}
	if def.Fullscreenable {
		kbs = append(kbs, border.Keybind{Key: "f", Label: "ull"})
	}
	return kbs
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
