package grid

import (
	"github.com/justinpbarnett/studio/internal/geom"
	"github.com/justinpbarnett/studio/internal/panel"
	"github.com/justinpbarnett/studio/internal/theme"
)

// SlotAddress addresses one of the fixed display slots.
type SlotAddress struct {
	Row int
	Col int
}

// Index flattens the address into 0..NumRows*SlotsPerRow-1.
func (a SlotAddress) Index() int {
	return a.Row*SlotsPerRow + a.Col
}

// ViewMode explains why the directive looks the way it does.
type ViewMode int

const (
	ViewNormal ViewMode = iota
	// ViewMaximized shows the explicitly maximized panel.
	ViewMaximized
	// ViewSingle shows the only remaining panel full size.
	ViewSingle
	// ViewEmpty has nothing to show.
	ViewEmpty
)

type RowDirective struct {
	Visible bool
	Height  geom.SizePolicy
}

type SlotDirective struct {
	Visible bool
	Width   geom.SizePolicy
	Height  geom.SizePolicy
	// Panel is the bound panel id, empty for hidden slots.
	Panel string
	// Index is the panel's display index, for numbering and accents.
	Index     int
	Maximized bool
}

// Directive is the complete visibility and binding instruction for the
// main grid's fixed slot pool.
type Directive struct {
	Mode  ViewMode
	Theme theme.Theme
	Rows  [NumRows]RowDirective
	Slots [NumRows][SlotsPerRow]SlotDirective
}

// Slot returns the directive for addr; out of range addresses are hidden.
func (d Directive) Slot(addr SlotAddress) SlotDirective {
	if addr.Row < 0 || addr.Row >= NumRows || addr.Col < 0 || addr.Col >= SlotsPerRow {
		return SlotDirective{}
	}
	return d.Slots[addr.Row][addr.Col]
}

// Find returns the slot bound to id.
func (d Directive) Find(id string) (SlotAddress, bool) {
	for r := range d.Slots {
		for c, s := range d.Slots[r] {
			if s.Visible && s.Panel == id {
				return SlotAddress{Row: r, Col: c}, true
			}
		}
	}
	return SlotAddress{}, false
}

// VisibleCount returns the number of visible slots in row.
func (d Directive) VisibleCount(row int) int {
	if row < 0 || row >= NumRows {
		return 0
	}
	n := 0
	for _, s := range d.Slots[row] {
		if s.Visible {
			n++
		}
	}
	return n
}

// Compute derives the slot directive from s. It never mutates s.
func Compute(s LayoutState, th theme.Theme) Directive {
	d := Directive{Theme: th}

	if s.Maximized != "" {
		if row, _, ok := s.FindPanel(s.Maximized); ok && s.IsVisible(s.Maximized) {
			d.Mode = ViewMaximized
			d.showSingle(row, s.Maximized, true)
			return d
		}
	}

	var perRow [NumRows][]string
	total := 0
	for r := 0; r < NumRows; r++ {
		perRow[r] = s.VisibleInRow(r)
		total += len(perRow[r])
	}

	switch total {
	case 0:
		d.Mode = ViewEmpty
		return d
	case 1:
		for r := 0; r < NumRows; r++ {
			if len(perRow[r]) > 0 {
				d.Mode = ViewSingle
				d.showSingle(r, perRow[r][0], false)
				break
			}
		}
		return d
	}

	d.Mode = ViewNormal
	for r := 0; r < NumRows; r++ {
		if len(perRow[r]) == 0 {
			continue
		}
		d.Rows[r] = RowDirective{Visible: true, Height: geom.SizeFill}
		for c, id := range perRow[r] {
			if c >= SlotsPerRow {
				break
			}
			d.Slots[r][c] = bind(id, false)
		}
	}
	return d
}

func (d *Directive) showSingle(row int, id string, maximized bool) {
	d.Rows[row] = RowDirective{Visible: true, Height: geom.SizeFill}
	d.Slots[row][0] = bind(id, maximized)
}

func bind(id string, maximized bool) SlotDirective {
	return SlotDirective{
		Visible:   true,
		Width:     geom.SizeFill,
		Height:    geom.SizeFill,
		Panel:     id,
		Index:     panel.IndexOf(id, SlotsPerRow),
		Maximized: maximized,
	}
}
