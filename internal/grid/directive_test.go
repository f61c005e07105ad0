package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinpbarnett/studio/internal/geom"
	"github.com/justinpbarnett/studio/internal/theme"
)

func visibleSlots(d Directive) []SlotAddress {
	var out []SlotAddress
	for r := range d.Slots {
		for c, s := range d.Slots[r] {
			if s.Visible {
				out = append(out, SlotAddress{Row: r, Col: c})
			}
		}
	}
	return out
}

func TestComputeNormal(t *testing.T) {
	s := DefaultLayoutState()
	s.ClosePanel("panel_4")

	d := Compute(s, theme.Dark())
	assert.Equal(t, ViewNormal, d.Mode)
	assert.True(t, d.Theme.Dark)
	for r := 0; r < NumRows; r++ {
		assert.True(t, d.Rows[r].Visible)
		assert.Equal(t, geom.SizeFill, d.Rows[r].Height)
	}
	assert.Equal(t, 2, d.VisibleCount(1))
	assert.Equal(t, "panel_3", d.Slots[1][0].Panel)
	assert.Equal(t, "panel_5", d.Slots[1][1].Panel)
	assert.False(t, d.Slots[1][2].Visible)
	assert.Equal(t, geom.SizeZero, d.Slots[1][2].Width)
	assert.Equal(t, 5, d.Slots[1][1].Index)
	assert.Len(t, visibleSlots(d), 8)
}

func TestComputeCollapsesEmptyRows(t *testing.T) {
	s := DefaultLayoutState()
	for _, id := range []string{"panel_0", "panel_1", "panel_2"} {
		s.ClosePanel(id)
	}

	d := Compute(s, theme.Light())
	assert.False(t, d.Rows[0].Visible)
	assert.Equal(t, geom.SizeZero, d.Rows[0].Height)
	assert.Zero(t, d.VisibleCount(0))
	assert.True(t, d.Rows[1].Visible)
}

func TestComputeMaximized(t *testing.T) {
	s := DefaultLayoutState()
	s.ToggleMaximize("panel_7")

	d := Compute(s, theme.Light())
	assert.Equal(t, ViewMaximized, d.Mode)
	require.Equal(t, []SlotAddress{{Row: 2, Col: 0}}, visibleSlots(d))
	slot := d.Slots[2][0]
	assert.Equal(t, "panel_7", slot.Panel)
	assert.True(t, slot.Maximized)
	assert.False(t, d.Rows[0].Visible)
	assert.False(t, d.Rows[1].Visible)
	assert.True(t, d.Rows[2].Visible)
}

func TestComputeAutoMaximizesLastPanel(t *testing.T) {
	s := DefaultLayoutState()
	for i := 0; i < 9; i++ {
		if i == 5 {
			continue
		}
		s.ClosePanel("panel_" + string(rune('0'+i)))
	}
	require.Empty(t, s.Maximized)

	d := Compute(s, theme.Light())
	assert.Equal(t, ViewSingle, d.Mode)
	require.Equal(t, []SlotAddress{{Row: 1, Col: 0}}, visibleSlots(d))
	assert.Equal(t, "panel_5", d.Slots[1][0].Panel)
	assert.False(t, d.Slots[1][0].Maximized)
	assert.Empty(t, s.Maximized, "Compute must not mutate the state")
}

func TestComputeEmpty(t *testing.T) {
	d := Compute(WithPanelCount(0), theme.Light())
	assert.Equal(t, ViewEmpty, d.Mode)
	assert.Empty(t, visibleSlots(d))
}

func TestComputeCapsSlotsPerRow(t *testing.T) {
	// Hand-built, bypassing Normalize: a row holding more ids than cells.
	s := WithPanelCount(12)
	s.Rows[0] = append(s.Rows[0], s.Rows[1]...)
	s.Rows[0] = append(s.Rows[0], s.Rows[2][:2]...)
	s.Rows[1] = []string{}
	s.Rows[2] = s.Rows[2][2:]
	require.Len(t, s.Rows[0], 10)

	d := Compute(s, theme.Light())
	assert.Equal(t, SlotsPerRow, d.VisibleCount(0))

	n := s.Normalize()
	assert.Len(t, n.Rows[0], SlotsPerRow)
	assert.Equal(t, 12, n.VisibleCount())
	for _, id := range n.Visible {
		_, ok := Compute(n, theme.Light()).Find(id)
		assert.True(t, ok, "%s has no slot", id)
	}
}

func TestDirectiveFindAndSlot(t *testing.T) {
	d := Compute(DefaultLayoutState(), theme.Light())

	addr, ok := d.Find("panel_5")
	require.True(t, ok)
	assert.Equal(t, SlotAddress{Row: 1, Col: 2}, addr)
	assert.Equal(t, 11, addr.Index())

	_, ok = d.Find("ghost")
	assert.False(t, ok)

	assert.False(t, d.Slot(SlotAddress{Row: 5, Col: 0}).Visible)
	assert.Equal(t, "panel_0", d.Slot(SlotAddress{}).Panel)
}
