package grid

import "fmt"

// EventKind says what a layout change did.
type EventKind int

const (
	PanelClosed EventKind = iota
	PanelMaximized
	PanelRestored
	PanelMoved
	ModeChanged
	LayoutReplaced
)

// Event describes one change made through a Controller.
type Event struct {
	Kind  EventKind
	Panel string
	// Row and Col are where a moved panel ended up.
	Row, Col int
	Mode     LayoutMode
}

func (e Event) String() string {
	switch e.Kind {
	case PanelClosed:
		return e.Panel + " closed"
	case PanelMaximized:
		return e.Panel + " maximized"
	case PanelRestored:
		return e.Panel + " restored"
	case PanelMoved:
		return fmt.Sprintf("%s moved to row %d col %d", e.Panel, e.Row, e.Col)
	case ModeChanged:
		return "mode " + e.Mode.String()
	default:
		return "layout replaced"
	}
}
