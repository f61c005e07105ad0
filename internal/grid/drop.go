package grid

import "github.com/justinpbarnett/studio/internal/geom"

// DropPosition is a drop target in the main grid.
type DropPosition struct {
	// Row is the actual row index (0..NumRows-1), not the visual one.
	Row int
	// Col may equal the row's panel count, meaning "append".
	Col int
	// Preview is the cell rectangle used only for drop feedback.
	Preview geom.Rect
}

// RowCount pairs an actual row index with the number of panels shown in it.
type RowCount struct {
	Row   int
	Count int
}

// VisibleRowCounts returns the non-empty rows of s in display order. Counts
// never exceed SlotsPerRow, the number of cells a row can draw.
func VisibleRowCounts(s LayoutState) []RowCount {
	var out []RowCount
	for r := 0; r < NumRows; r++ {
		if n := len(s.VisibleInRow(r)); n > 0 {
			out = append(out, RowCount{Row: r, Count: min(n, SlotsPerRow)})
		}
	}
	return out
}

// ComputeDrop maps cursor to a drop target inside container. rows lists
// only the visible rows, in display order. The container height is split
// evenly across them and each row's width evenly across its panels.
// Returns false when the cursor is outside the container or no row is
// visible. Pure: it never mutates anything.
func ComputeDrop(cursor geom.Point, container geom.Rect, rows []RowCount) (DropPosition, bool) {
	numRows := len(rows)
	if numRows == 0 || !container.Contains(cursor) {
		return DropPosition{}, false
	}

	rowHeight := container.H / float64(numRows)
	visualRow := int((cursor.Y - container.Y) / rowHeight)
	visualRow = clamp(visualRow, 0, numRows-1)

	count := rows[visualRow].Count
	cols := max(count, 1)
	colWidth := container.W / float64(cols)
	col := int((cursor.X - container.X) / colWidth)
	col = clamp(col, 0, cols)

	previewCol := min(col, cols-1)
	preview := geom.Rect{
		X: container.X + float64(previewCol)*colWidth,
		Y: container.Y + float64(visualRow)*rowHeight,
		W: colWidth,
		H: rowHeight,
	}

	return DropPosition{Row: rows[visualRow].Row, Col: col, Preview: preview}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
