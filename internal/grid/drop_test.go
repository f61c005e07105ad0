package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinpbarnett/studio/internal/geom"
)

func TestComputeDropOutsideContainer(t *testing.T) {
	rows := []RowCount{{Row: 0, Count: 3}}
	_, ok := ComputeDrop(geom.Pt(100, 5), geom.R(0, 0, 90, 30), rows)
	assert.False(t, ok)
}

func TestComputeDropNoRows(t *testing.T) {
	_, ok := ComputeDrop(geom.Pt(5, 5), geom.R(0, 0, 90, 30), nil)
	assert.False(t, ok)
}

func TestComputeDropRowAndColumn(t *testing.T) {
	rows := []RowCount{{Row: 0, Count: 3}, {Row: 1, Count: 3}, {Row: 2, Count: 3}}
	container := geom.R(10, 20, 90, 30)

	pos, ok := ComputeDrop(geom.Pt(75, 35), container, rows)
	require.True(t, ok)
	assert.Equal(t, 1, pos.Row)
	assert.Equal(t, 2, pos.Col)
	assert.Equal(t, geom.R(70, 30, 30, 10), pos.Preview)
}

func TestComputeDropSkipsHiddenRows(t *testing.T) {
	// Row 1 is empty, so the two visible rows split the height and the
	// lower half maps back to actual row 2.
	rows := []RowCount{{Row: 0, Count: 2}, {Row: 2, Count: 4}}
	container := geom.R(0, 0, 80, 40)

	pos, ok := ComputeDrop(geom.Pt(5, 30), container, rows)
	require.True(t, ok)
	assert.Equal(t, 2, pos.Row)
	assert.Equal(t, 0, pos.Col)
	assert.Equal(t, geom.R(0, 20, 20, 20), pos.Preview)

	pos, ok = ComputeDrop(geom.Pt(79, 0), container, rows)
	require.True(t, ok)
	assert.Equal(t, 0, pos.Row)
	assert.Equal(t, 1, pos.Col)
}

func TestComputeDropEmptyRowCountUsesOneColumn(t *testing.T) {
	rows := []RowCount{{Row: 1, Count: 0}}
	pos, ok := ComputeDrop(geom.Pt(50, 5), geom.R(0, 0, 60, 10), rows)
	require.True(t, ok)
	assert.Equal(t, 1, pos.Row)
	assert.Equal(t, 0, pos.Col)
	assert.Equal(t, geom.R(0, 0, 60, 10), pos.Preview)
}

func TestComputeDropIsPure(t *testing.T) {
	rows := []RowCount{{Row: 0, Count: 3}, {Row: 1, Count: 1}}
	container := geom.R(0, 0, 90, 20)
	snapshot := append([]RowCount(nil), rows...)

	first, ok1 := ComputeDrop(geom.Pt(40, 15), container, rows)
	second, ok2 := ComputeDrop(geom.Pt(40, 15), container, rows)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, rows)
}

func TestVisibleRowCounts(t *testing.T) {
	s := DefaultLayoutState()
	s.ClosePanel("panel_3")
	s.ClosePanel("panel_4")
	s.ClosePanel("panel_5")

	got := VisibleRowCounts(s)
	assert.Equal(t, []RowCount{{Row: 0, Count: 3}, {Row: 2, Count: 3}}, got)
}

func TestVisibleRowCountsCapsAtSlotsPerRow(t *testing.T) {
	s := WithPanelCount(12)
	s.Rows[0] = append(s.Rows[0], s.Rows[1]...)
	s.Rows[0] = append(s.Rows[0], s.Rows[2][:2]...)
	s.Rows[1] = []string{}
	s.Rows[2] = s.Rows[2][2:]

	got := VisibleRowCounts(s)
	assert.Equal(t, []RowCount{{Row: 0, Count: SlotsPerRow}, {Row: 2, Count: 2}}, got)
}
