package footer

import (
	"github.com/justinpbarnett/studio/internal/geom"
	"github.com/justinpbarnett/studio/internal/theme"
)

// Target is a footer drop target.
type Target struct {
	Slot int
	Half Half
	// Preview is the half of the slot rectangle the panel would land in.
	Preview geom.Rect
}

// Controller owns a footer State and runs the same Idle/Dragging protocol
// as the grid controller, addressed by (slot, half).
type Controller struct {
	state       State
	rects       [NumSlots]geom.Rect
	dragging    string
	target      Target
	hasTarget   bool
	subscribers []func(State)
	handlers    []func(Event)
}

// NewController builds a controller from an optional initial state. A nil
// initial state starts with defaultPanels panels.
func NewController(initial *State, defaultPanels int) *Controller {
	c := &Controller{}
	if initial != nil {
		c.state = initial.Normalize()
	} else {
		c.state = DefaultState(defaultPanels)
	}
	return c
}

func (c *Controller) State() State {
	return c.state.Clone()
}

// SetState replaces the footer wholesale and cancels any drag.
func (c *Controller) SetState(s State) {
	c.Cancel()
	c.state = s.Normalize()
	c.notify(Event{Kind: FooterReplaced})
}

// Reset restores DefaultState(n).
func (c *Controller) Reset(n int) {
	c.SetState(DefaultState(n))
}

// SetSlotRects records the on-screen rectangle of every slot. Hidden slots
// should get an empty rectangle.
func (c *Controller) SetSlotRects(rects [NumSlots]geom.Rect) {
	c.rects = rects
}

func (c *Controller) SlotRect(slot int) geom.Rect {
	if slot < 0 || slot >= NumSlots {
		return geom.Rect{}
	}
	return c.rects[slot]
}

func (c *Controller) Subscribe(fn func(State)) {
	c.subscribers = append(c.subscribers, fn)
}

// OnEvent registers fn to receive a typed Event for every change.
func (c *Controller) OnEvent(fn func(Event)) {
	c.handlers = append(c.handlers, fn)
}

func (c *Controller) notify(ev Event) {
	for _, fn := range c.subscribers {
		fn(c.state.Clone())
	}
	for _, fn := range c.handlers {
		fn(ev)
	}
}

// StartDrag begins dragging a footer panel.
func (c *Controller) StartDrag(id string) bool {
	if _, _, ok := c.state.FindPanel(id); !ok {
		return false
	}
	c.dragging = id
	c.hasTarget = false
	return true
}

func (c *Controller) Dragging() (string, bool) {
	return c.dragging, c.dragging != ""
}

// Hover picks the first visible slot containing cursor, skipping the slot
// that already holds the dragged panel.
func (c *Controller) Hover(cursor geom.Point) {
	if c.dragging == "" {
		return
	}
	c.target, c.hasTarget = c.targetAt(cursor)
}

// Target returns the current hover target.
func (c *Controller) Target() (Target, bool) {
	return c.target, c.hasTarget
}

// Drop finishes the drag onto the last hover target and always returns to
// idle. It reports whether the footer changed.
func (c *Controller) Drop() bool {
	id, target, ok := c.dragging, c.target, c.hasTarget
	c.Cancel()
	if id == "" || !ok {
		return false
	}
	if !c.state.Drop(id, target.Slot, target.Half) {
		return false
	}
	slot, pos, _ := c.state.FindPanel(id)
	c.notify(Event{Kind: PanelDropped, Panel: id, Slot: slot, Pos: pos})
	return true
}

// DropAt hovers at cursor and drops in one step.
func (c *Controller) DropAt(cursor geom.Point) bool {
	c.Hover(cursor)
	return c.Drop()
}

func (c *Controller) Cancel() {
	c.dragging = ""
	c.target = Target{}
	c.hasTarget = false
}

func (c *Controller) Close(id string) bool {
	if !c.state.Close(id) {
		return false
	}
	if c.dragging == id {
		c.Cancel()
	}
	c.notify(Event{Kind: PanelClosed, Panel: id})
	return true
}

func (c *Controller) ToggleFullscreen(id string) bool {
	if !c.state.ToggleFullscreen(id) {
		return false
	}
	kind := FullscreenExited
	if c.state.Fullscreen == id {
		kind = FullscreenEntered
	}
	c.notify(Event{Kind: kind, Panel: id})
	return true
}

func (c *Controller) Directive(th theme.Theme) Directive {
	return Compute(c.state, th)
}

func (c *Controller) targetAt(cursor geom.Point) (Target, bool) {
	src, _, _ := c.state.FindPanel(c.dragging)
	for i, st := range c.state.Slots {
		if i >= NumSlots {
			break
		}
		if !st.Visible || len(st.Panels) == 0 || i == src {
			continue
		}
		r := c.rects[i]
		if !r.Contains(cursor) {
			continue
		}
		if cursor.Y > r.MidY() {
			return Target{Slot: i, Half: Bottom, Preview: r.BottomHalf()}, true
		}
		return Target{Slot: i, Half: Top, Preview: r.TopHalf()}, true
	}
	return Target{}, false
}
