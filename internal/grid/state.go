// Package grid implements the main panel grid: a three-row layout model,
// the drop-position calculator, the drag controller and the slot
// directive handed to the renderer.
package grid

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/justinpbarnett/studio/internal/panel"
)

const (
	NumRows     = 3
	SlotsPerRow = 9
)

// LayoutMode is the arrangement style of the grid. Only AutoGrid drives
// the slot directive; the mode is carried and persisted unchanged.
type LayoutMode int

const (
	AutoGrid LayoutMode = iota
	HStack
	VStack
	Tabbed
)

var modeNames = map[LayoutMode]string{
	AutoGrid: "AutoGrid",
	HStack:   "HStack",
	VStack:   "VStack",
	Tabbed:   "Tabbed",
}

func (m LayoutMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("LayoutMode(%d)", int(m))
}

// Name returns the human-readable label shown in menus.
func (m LayoutMode) Name() string {
	switch m {
	case HStack:
		return "Horizontal"
	case VStack:
		return "Vertical"
	case Tabbed:
		return "Tabbed"
	default:
		return "Auto Grid"
	}
}

// Next cycles AutoGrid -> HStack -> VStack -> Tabbed -> AutoGrid.
func (m LayoutMode) Next() LayoutMode {
	return (m + 1) % LayoutMode(len(modeNames))
}

func (m LayoutMode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("unknown layout mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts the mode names; unknown names decode as AutoGrid.
func (m *LayoutMode) UnmarshalText(b []byte) error {
	for mode, name := range modeNames {
		if name == string(b) {
			*m = mode
			return nil
		}
	}
	*m = AutoGrid
	return nil
}

// UnmarshalJSON accepts a mode name or its number. Anything else decodes
// as AutoGrid so one bad field does not discard the whole layout.
func (m *LayoutMode) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		return m.UnmarshalText([]byte(name))
	}
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		if _, ok := modeNames[LayoutMode(n)]; ok {
			*m = LayoutMode(n)
			return nil
		}
	}
	*m = AutoGrid
	return nil
}

// LayoutState is the authoritative main grid model. It is a value object:
// use Clone before handing it to anything that may keep it.
type LayoutState struct {
	Rows        [][]string
	Visible     []string
	Maximized   string
	Mode        LayoutMode
	SelectedTab int
}

// DefaultLayoutState is nine panels in three rows of three.
func DefaultLayoutState() LayoutState {
	return WithPanelCount(SlotsPerRow)
}

// WithPanelCount distributes count panels over the rows, ceil(count/3)
// per row.
func WithPanelCount(count int) LayoutState {
	s := LayoutState{Rows: make([][]string, NumRows)}
	for r := range s.Rows {
		s.Rows[r] = []string{}
	}
	if count <= 0 {
		s.Visible = []string{}
		return s
	}
	perRow := (count + NumRows - 1) / NumRows
	for i := 0; i < count; i++ {
		id := panel.MainID(i)
		s.Rows[i/perRow] = append(s.Rows[i/perRow], id)
		s.Visible = append(s.Visible, id)
	}
	return s
}

func (s LayoutState) Clone() LayoutState {
	c := s
	c.Rows = make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		c.Rows[i] = slices.Clone(row)
		if c.Rows[i] == nil {
			c.Rows[i] = []string{}
		}
	}
	c.Visible = slices.Clone(s.Visible)
	if c.Visible == nil {
		c.Visible = []string{}
	}
	return c
}

// Equal reports whether two states are identical, including order.
func (s LayoutState) Equal(o LayoutState) bool {
	if s.Maximized != o.Maximized || s.Mode != o.Mode || s.SelectedTab != o.SelectedTab {
		return false
	}
	if len(s.Rows) != len(o.Rows) || !slices.Equal(s.Visible, o.Visible) {
		return false
	}
	for i := range s.Rows {
		if !slices.Equal(s.Rows[i], o.Rows[i]) {
			return false
		}
	}
	return true
}

func (s LayoutState) VisibleCount() int {
	return len(s.Visible)
}

func (s LayoutState) IsVisible(id string) bool {
	return slices.Contains(s.Visible, id)
}

// RowFull reports whether row already shows SlotsPerRow panels.
func (s LayoutState) RowFull(row int) bool {
	return len(s.VisibleInRow(row)) >= SlotsPerRow
}

// FindPanel returns the row and column holding id.
func (s LayoutState) FindPanel(id string) (row, col int, ok bool) {
	for r, ids := range s.Rows {
		if c := slices.Index(ids, id); c >= 0 {
			return r, c, true
		}
	}
	return 0, 0, false
}

// VisibleInRow returns the visible panels of row in display order.
func (s LayoutState) VisibleInRow(row int) []string {
	if row < 0 || row >= len(s.Rows) {
		return nil
	}
	var out []string
	for _, id := range s.Rows[row] {
		if s.IsVisible(id) {
			out = append(out, id)
		}
	}
	return out
}

// ClosePanel removes id from visible and from every row, and leaves
// maximize mode if id was maximized. Returns false if id was unknown.
func (s *LayoutState) ClosePanel(id string) bool {
	changed := false
	if i := slices.Index(s.Visible, id); i >= 0 {
		s.Visible = slices.Delete(s.Visible, i, i+1)
		changed = true
	}
	for r := range s.Rows {
		if c := slices.Index(s.Rows[r], id); c >= 0 {
			s.Rows[r] = slices.Delete(s.Rows[r], c, c+1)
			changed = true
		}
	}
	if s.Maximized == id {
		s.Maximized = ""
		changed = true
	}
	return changed
}

// MovePanel moves id to (row, col). col may equal the target row's
// length to append. Returns false when nothing moved: unknown panel,
// row out of range, a full target row or the same position.
func (s *LayoutState) MovePanel(id string, row, col int) bool {
	if row < 0 || row >= NumRows {
		return false
	}
	srcRow, srcCol, ok := s.FindPanel(id)
	if !ok {
		return false
	}
	if col < 0 {
		col = 0
	}
	if srcRow == row && srcCol == col {
		return false
	}
	if srcRow != row && s.RowFull(row) {
		return false
	}
	for len(s.Rows) <= row {
		s.Rows = append(s.Rows, []string{})
	}

	s.Rows[srcRow] = slices.Delete(s.Rows[srcRow], srcCol, srcCol+1)

	insertCol := min(col, len(s.VisibleInRow(row)))
	// The removal above shifted everything right of the source one
	// place left.
	if srcRow == row && col > srcCol {
		insertCol = max(insertCol-1, 0)
	}
	insertCol = min(insertCol, len(s.Rows[row]))

	s.Rows[row] = slices.Insert(s.Rows[row], insertCol, id)
	return true
}

// ToggleMaximize maximizes id, or restores the grid if id is already
// maximized. Only visible panels can be maximized.
func (s *LayoutState) ToggleMaximize(id string) bool {
	if s.Maximized == id && id != "" {
		s.Maximized = ""
		return true
	}
	if !s.IsVisible(id) {
		return false
	}
	s.Maximized = id
	return true
}

// Normalize returns a copy of s that satisfies every layout invariant:
// exactly NumRows rows of at most SlotsPerRow panels, no id in more than
// one place, rows holding only visible panels, visible holding only placed
// panels and maximized pointing at a visible panel. Panels that overflow a
// full row move to the next row with room; with every row full they are
// dropped.
func (s LayoutState) Normalize() LayoutState {
	out := LayoutState{
		Rows:        make([][]string, NumRows),
		Mode:        s.Mode,
		SelectedTab: max(s.SelectedTab, 0),
	}
	if _, ok := modeNames[out.Mode]; !ok {
		out.Mode = AutoGrid
	}

	visible := make(map[string]bool, len(s.Visible))
	for _, id := range s.Visible {
		visible[id] = true
	}

	placed := make(map[string]bool)
	for r := range out.Rows {
		out.Rows[r] = []string{}
	}
	for r, ids := range s.Rows {
		target := min(r, NumRows-1)
		for _, id := range ids {
			if id == "" || placed[id] || !visible[id] {
				continue
			}
			dst := -1
			for k := 0; k < NumRows; k++ {
				if rr := (target + k) % NumRows; len(out.Rows[rr]) < SlotsPerRow {
					dst = rr
					break
				}
			}
			if dst < 0 {
				continue
			}
			placed[id] = true
			out.Rows[dst] = append(out.Rows[dst], id)
		}
	}

	out.Visible = []string{}
	seen := make(map[string]bool)
	for _, id := range s.Visible {
		if placed[id] && !seen[id] {
			seen[id] = true
			out.Visible = append(out.Visible, id)
		}
	}

	if placed[s.Maximized] {
		out.Maximized = s.Maximized
	}
	return out
}
