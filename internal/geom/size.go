package geom

// SizePolicy tells a renderer how to size a row, column or slot.
type SizePolicy int

const (
	// SizeZero collapses the element.
	SizeZero SizePolicy = iota
	// SizeFill shares the remaining space evenly with its siblings.
	SizeFill
)
