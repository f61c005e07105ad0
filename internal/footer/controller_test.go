package footer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinpbarnett/studio/internal/geom"
)

// Seven 10x10 slots laid out left to right from the origin.
func newTestController(t *testing.T, panels int) *Controller {
	t.Helper()
	c := NewController(nil, panels)
	var rects [NumSlots]geom.Rect
	for i := 0; i < panels && i < NumSlots; i++ {
		rects[i] = geom.R(i*10, 0, 10, 10)
	}
	c.SetSlotRects(rects)
	return c
}

func TestHoverPicksHalf(t *testing.T) {
	c := newTestController(t, 3)
	require.True(t, c.StartDrag("footer_panel_0"))

	c.Hover(geom.Pt(25, 2))
	tgt, ok := c.Target()
	require.True(t, ok)
	assert.Equal(t, 2, tgt.Slot)
	assert.Equal(t, Top, tgt.Half)
	assert.Equal(t, geom.R(20, 0, 10, 5), tgt.Preview)

	c.Hover(geom.Pt(25, 7))
	tgt, ok = c.Target()
	require.True(t, ok)
	assert.Equal(t, Bottom, tgt.Half)
	assert.Equal(t, geom.R(20, 5, 10, 5), tgt.Preview)

	// Exactly on the midline counts as the top half.
	c.Hover(geom.Pt(25, 5))
	tgt, _ = c.Target()
	assert.Equal(t, Top, tgt.Half)
}

func TestHoverSkipsSourceSlot(t *testing.T) {
	c := newTestController(t, 3)
	c.StartDrag("footer_panel_1")
	c.Hover(geom.Pt(15, 2))
	_, ok := c.Target()
	assert.False(t, ok)
}

func TestHoverOutsideAnySlot(t *testing.T) {
	c := newTestController(t, 3)
	c.StartDrag("footer_panel_1")
	c.Hover(geom.Pt(55, 2))
	_, ok := c.Target()
	assert.False(t, ok, "slot 5 is hidden")
}

func TestDropUsesHoverTarget(t *testing.T) {
	c := newTestController(t, 3)
	var got []State
	c.Subscribe(func(s State) { got = append(got, s) })

	c.StartDrag("footer_panel_0")
	c.Hover(geom.Pt(15, 8))
	require.True(t, c.Drop())

	_, dragging := c.Dragging()
	assert.False(t, dragging)
	_, ok := c.Target()
	assert.False(t, ok)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"footer_panel_1", "footer_panel_0"}, got[0].Slots[0].Panels)
	assert.Equal(t, []string{"footer_panel_2"}, got[0].Slots[1].Panels)
}

func TestDropWithoutTargetReturnsToIdle(t *testing.T) {
	c := newTestController(t, 3)
	c.StartDrag("footer_panel_0")
	assert.False(t, c.Drop())
	_, dragging := c.Dragging()
	assert.False(t, dragging)
	assert.True(t, c.State().Equal(DefaultState(3)))
}

func TestDropAt(t *testing.T) {
	c := newTestController(t, 3)
	c.StartDrag("footer_panel_2")
	require.True(t, c.DropAt(geom.Pt(5, 1)))
	assert.Equal(t, []string{"footer_panel_2", "footer_panel_0"}, c.State().Slots[0].Panels)
}

func TestStartDragUnknown(t *testing.T) {
	c := newTestController(t, 3)
	assert.False(t, c.StartDrag("ghost"))
	c.Hover(geom.Pt(5, 5))
	_, ok := c.Target()
	assert.False(t, ok)
}

func TestCloseDraggedPanelCancels(t *testing.T) {
	c := newTestController(t, 3)
	c.StartDrag("footer_panel_1")
	require.True(t, c.Close("footer_panel_1"))
	_, dragging := c.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, 2, c.State().VisibleSlots())
}

func TestControllerFullscreenAndReset(t *testing.T) {
	c := newTestController(t, 4)
	changes := 0
	c.Subscribe(func(State) { changes++ })

	require.True(t, c.ToggleFullscreen("footer_panel_3"))
	assert.False(t, c.ToggleFullscreen("ghost"))
	assert.Equal(t, "footer_panel_3", c.State().Fullscreen)

	c.Reset(2)
	assert.Empty(t, c.State().Fullscreen)
	assert.Equal(t, 2, c.State().VisibleSlots())
	assert.Equal(t, 2, changes)
}

func TestNewControllerNormalizesInitial(t *testing.T) {
	initial := State{Slots: []SlotState{
		{Panels: []string{}},
		{Visible: true, Panels: []string{"x"}},
	}}
	c := NewController(&initial, 5)
	s := c.State()
	require.Len(t, s.Slots, NumSlots)
	assert.Equal(t, []string{"x"}, s.Slots[0].Panels)
}

func TestEventsReportWhereThingsLanded(t *testing.T) {
	c := newTestController(t, 3)
	var events []Event
	c.OnEvent(func(e Event) { events = append(events, e) })

	c.StartDrag("footer_panel_0")
	c.Hover(geom.Pt(15, 8))
	require.True(t, c.Drop())
	require.True(t, c.ToggleFullscreen("footer_panel_2"))
	require.True(t, c.ToggleFullscreen("footer_panel_2"))
	require.True(t, c.Close("footer_panel_1"))
	c.Reset(3)

	assert.Equal(t, []Event{
		{Kind: PanelDropped, Panel: "footer_panel_0", Slot: 0, Pos: 1},
		{Kind: FullscreenEntered, Panel: "footer_panel_2"},
		{Kind: FullscreenExited, Panel: "footer_panel_2"},
		{Kind: PanelClosed, Panel: "footer_panel_1"},
		{Kind: FooterReplaced},
	}, events)
	assert.Equal(t, "footer_panel_0 dropped into slot 0 at 1", events[0].String())
}
