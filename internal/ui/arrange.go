package ui

import (
	"github.com/justinpbarnett/studio/internal/footer"
	"github.com/justinpbarnett/studio/internal/geom"
	"github.com/justinpbarnett/studio/internal/grid"
	"github.com/justinpbarnett/studio/internal/ui/layout"
)

type BoxKind int

const (
	KindGrid BoxKind = iota
	KindFooter
)

// Box is a panel placed on screen.
type Box struct {
	ID     string
	Kind   BoxKind
	Region layout.Region
	// Row/Col are the grid row and column, or the footer slot and stack
	// position.
	Row   int
	Col   int
	Index int
}

// Arrangement is the on-screen placement of every shown panel.
type Arrangement struct {
	Grid        []Box
	Footer      []Box
	FooterSlots [footer.NumSlots]layout.Region
}

// Arrange lays the two directives out over the shell regions. Rows, slots
// and stacks split their space with layout.Split.
func Arrange(l layout.Layout, gd grid.Directive, fd footer.Directive) Arrangement {
	var a Arrangement
	if l.TooSmall {
		return a
	}

	if !l.Grid.Empty() {
		var rows []int
		for r, rd := range gd.Rows {
			if rd.Visible && gd.VisibleCount(r) > 0 {
				rows = append(rows, r)
			}
		}
		heights := layout.Split(l.Grid.H, len(rows))
		ys := layout.Offsets(l.Grid.Y, l.Grid.H, len(rows))
		for i, r := range rows {
			n := gd.VisibleCount(r)
			widths := layout.Split(l.Grid.W, n)
			xs := layout.Offsets(l.Grid.X, l.Grid.W, n)
			for c := 0; c < n; c++ {
				sd := gd.Slots[r][c]
				a.Grid = append(a.Grid, Box{
					ID:     sd.Panel,
					Kind:   KindGrid,
					Region: layout.Region{X: xs[c], Y: ys[i], W: widths[c], H: heights[i]},
					Row:    r,
					Col:    c,
					Index:  sd.Index,
				})
			}
		}
	}

	if !l.Footer.Empty() {
		slots := fd.VisibleSlots()
		widths := layout.Split(l.Footer.W, len(slots))
		xs := layout.Offsets(l.Footer.X, l.Footer.W, len(slots))
		for i, s := range slots {
			slot := layout.Region{X: xs[i], Y: l.Footer.Y, W: widths[i], H: l.Footer.H}
			a.FooterSlots[s] = slot

			sd := fd.Slots[s]
			n := sd.StackSize()
			heights := layout.Split(slot.H, n)
			ys := layout.Offsets(slot.Y, slot.H, n)
			for j := 0; j < n; j++ {
				sub := sd.Stack[j]
				a.Footer = append(a.Footer, Box{
					ID:     sub.Panel,
					Kind:   KindFooter,
					Region: layout.Region{X: slot.X, Y: ys[j], W: slot.W, H: heights[j]},
					Row:    s,
					Col:    j,
					Index:  sub.Index,
				})
			}
		}
	}

	return a
}

// Boxes returns the grid boxes followed by the footer boxes.
func (a Arrangement) Boxes() []Box {
	out := make([]Box, 0, len(a.Grid)+len(a.Footer))
	out = append(out, a.Grid...)
	return append(out, a.Footer...)
}

// At returns the box under the cell (x, y).
func (a Arrangement) At(x, y int) (Box, bool) {
	for _, b := range a.Boxes() {
		if b.Region.Contains(x, y) {
			return b, true
		}
	}
	return Box{}, false
}

// Find returns the box showing id.
func (a Arrangement) Find(id string) (Box, bool) {
	for _, b := range a.Boxes() {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}

// FooterRects converts the footer slot regions for the footer controller.
// Hidden slots get an empty rectangle.
func (a Arrangement) FooterRects() [footer.NumSlots]geom.Rect {
	var out [footer.NumSlots]geom.Rect
	for i, r := range a.FooterSlots {
		if !r.Empty() {
			out[i] = r.Rect()
		}
	}
	return out
}
