package grid

import (
	"github.com/justinpbarnett/studio/internal/geom"
	"github.com/justinpbarnett/studio/internal/theme"
)

// Controller owns a LayoutState and runs the drag lifecycle over it:
// Idle -> StartDrag -> Hover* -> Drop -> Idle. It is driven from a single
// event loop and does no locking.
type Controller struct {
	state       LayoutState
	container   geom.Rect
	dragging    string
	preview     DropPosition
	hasPreview  bool
	subscribers []func(LayoutState)
	handlers    []func(Event)
}

// NewController builds a controller from an optional initial state. A nil
// initial state starts from DefaultLayoutState.
func NewController(initial *LayoutState) *Controller {
	c := &Controller{}
	if initial != nil {
		c.state = initial.Normalize()
	} else {
		c.state = DefaultLayoutState()
	}
	return c
}

// State returns a copy of the current layout.
func (c *Controller) State() LayoutState {
	return c.state.Clone()
}

// SetState replaces the layout wholesale, e.g. after loading preferences.
// Any drag in progress is cancelled.
func (c *Controller) SetState(s LayoutState) {
	c.Cancel()
	c.state = s.Normalize()
	c.notify(Event{Kind: LayoutReplaced})
}

// Reset restores the default layout.
func (c *Controller) Reset() {
	c.SetState(DefaultLayoutState())
}

// SetContainer records the on-screen rectangle of the grid container.
func (c *Controller) SetContainer(r geom.Rect) {
	c.container = r
}

func (c *Controller) Container() geom.Rect {
	return c.container
}

// Subscribe registers fn to receive a copy of the state after every change.
func (c *Controller) Subscribe(fn func(LayoutState)) {
	c.subscribers = append(c.subscribers, fn)
}

// OnEvent registers fn to receive a typed Event for every change, after
// the state subscribers have run.
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

// StartDrag begins dragging id. The caller has already applied its move
// threshold. Unknown panels are ignored.
func (c *Controller) StartDrag(id string) bool {
	if _, _, ok := c.state.FindPanel(id); !ok || !c.state.IsVisible(id) {
		return false
	}
	c.dragging = id
	c.hasPreview = false
	return true
}

// Dragging returns the panel being dragged.
func (c *Controller) Dragging() (string, bool) {
	return c.dragging, c.dragging != ""
}

// Hover updates the drop preview for cursor. It never changes the layout.
func (c *Controller) Hover(cursor geom.Point) {
	if c.dragging == "" {
		return
	}
	c.preview, c.hasPreview = c.dropAt(c.dragging, cursor)
}

// Preview returns the current drop target, if any.
func (c *Controller) Preview() (DropPosition, bool) {
	return c.preview, c.hasPreview
}

// Drop finishes the drag at cursor and always returns to idle. It reports
// whether the layout changed.
func (c *Controller) Drop(cursor geom.Point) bool {
	id := c.dragging
	c.Cancel()
	if id == "" {
		return false
	}
	pos, ok := c.dropAt(id, cursor)
	if !ok {
		return false
	}
	if !c.state.MovePanel(id, pos.Row, pos.Col) {
		return false
	}
	row, col, _ := c.state.FindPanel(id)
	c.notify(Event{Kind: PanelMoved, Panel: id, Row: row, Col: col})
	return true
}

// Cancel abandons any drag in progress.
func (c *Controller) Cancel() {
	c.dragging = ""
	c.preview = DropPosition{}
	c.hasPreview = false
}

// Close removes id from the layout.
func (c *Controller) Close(id string) bool {
	if !c.state.ClosePanel(id) {
		return false
	}
	if c.dragging == id {
		c.Cancel()
	}
	c.notify(Event{Kind: PanelClosed, Panel: id})
	return true
}

// ToggleMaximize maximizes or restores id.
func (c *Controller) ToggleMaximize(id string) bool {
	if !c.state.ToggleMaximize(id) {
		return false
	}
	kind := PanelRestored
	if c.state.Maximized == id {
		kind = PanelMaximized
	}
	c.notify(Event{Kind: kind, Panel: id})
	return true
}

// SetMode changes the layout mode.
func (c *Controller) SetMode(m LayoutMode) bool {
	if _, ok := modeNames[m]; !ok || c.state.Mode == m {
		return false
	}
	c.state.Mode = m
	c.notify(Event{Kind: ModeChanged, Mode: m})
	return true
}

// Directive derives the current slot directive.
func (c *Controller) Directive(th theme.Theme) Directive {
	return Compute(c.state, th)
}

// dropAt resolves cursor for dragging id. A full row only accepts panels
// it already holds.
func (c *Controller) dropAt(id string, cursor geom.Point) (DropPosition, bool) {
	pos, ok := ComputeDrop(cursor, c.container, VisibleRowCounts(c.state))
	if !ok {
		return pos, false
	}
	if row, _, found := c.state.FindPanel(id); c.state.RowFull(pos.Row) && (!found || row != pos.Row) {
		return DropPosition{}, false
	}
	return pos, true
}
