package layout

import "github.com/justinpbarnett/studio/internal/geom"

// Region is a rectangle of terminal cells.
type Region struct {
	X, Y int
	W, H int
}

func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Rect converts r to engine coordinates.
func (r Region) Rect() geom.Rect {
	return geom.R(r.X, r.Y, r.W, r.H)
}

// Options are the shell's configurable region sizes.
type Options struct {
	ShowHeader   bool
	ShowFooter   bool
	ShowLeft     bool
	ShowRight    bool
	LeftWidth    int
	RightWidth   int
	FooterHeight int
}

// Layout holds the computed cell regions of the shell.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	Header    Region
	Left      Region
	Right     Region
	Grid      Region
	Footer    Region
	StatusBar Region
}

const (
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight    = 1
	StatusBarHeight = 1

	// The grid container never shrinks below this; sidebars and the
	// footer strip give way first.
	MinGridWidth  = 24
	MinGridHeight = 6

	MinFooterHeight = 3
)

// Calculate computes the shell regions from terminal size.
// Returns Layout with TooSmall=true if under minimum.
func Calculate(termWidth, termHeight int, opts Options) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	top := 0
	if opts.ShowHeader {
		l.Header = Region{X: 0, Y: 0, W: termWidth, H: HeaderHeight}
		top = HeaderHeight
	}
	l.StatusBar = Region{X: 0, Y: termHeight - StatusBarHeight, W: termWidth, H: StatusBarHeight}

	bodyHeight := termHeight - top - StatusBarHeight

	footerHeight := 0
	if opts.ShowFooter {
		footerHeight = min(opts.FooterHeight, bodyHeight-MinGridHeight)
		if footerHeight < MinFooterHeight {
			footerHeight = 0
		}
	}
	mainHeight := bodyHeight - footerHeight

	left, right := 0, 0
	if opts.ShowLeft {
		left = max(opts.LeftWidth, 0)
	}
	if opts.ShowRight {
		right = max(opts.RightWidth, 0)
	}
	spare := termWidth - MinGridWidth
	if left+right > spare {
		right = 0
	}
	if left > spare {
		left = 0
	}

	if left > 0 {
		l.Left = Region{X: 0, Y: top, W: left, H: mainHeight}
	}
	if right > 0 {
		l.Right = Region{X: termWidth - right, Y: top, W: right, H: mainHeight}
	}
	l.Grid = Region{X: left, Y: top, W: termWidth - left - right, H: mainHeight}
	if footerHeight > 0 {
		l.Footer = Region{X: 0, Y: top + mainHeight, W: termWidth, H: footerHeight}
	}

	return l
}

// MaxFooterHeight is the tallest footer strip that still leaves the grid
// its minimum height.
func MaxFooterHeight(termHeight int, showHeader bool) int {
	h := termHeight - StatusBarHeight - MinGridHeight
	if showHeader {
		h -= HeaderHeight
	}
	return max(h, MinFooterHeight)
}

// Split divides total into n near-even parts. Part i starts at cell
// ceil(i*total/n), which is the cell where a fractional total/n partition
// (the drop calculator's) first assigns index i.
func Split(total, n int) []int {
	if n <= 0 {
		return nil
	}
	parts := make([]int, n)
	for i := range parts {
		parts[i] = boundary(i+1, total, n) - boundary(i, total, n)
	}
	return parts
}

func boundary(i, total, n int) int {
	return (i*total + n - 1) / n
}

// Offsets returns the starting offset of each part of Split(total, n),
// beginning at start.
func Offsets(start, total, n int) []int {
	parts := Split(total, n)
	offs := make([]int, len(parts))
	pos := start
	for i, p := range parts {
		offs[i] = pos
		pos += p
	}
	return offs
}
