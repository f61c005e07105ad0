package footer

import "fmt"

type EventKind int

const (
	PanelClosed EventKind = iota
	PanelDropped
	FullscreenEntered
	FullscreenExited
	FooterReplaced
)

// Event describes one change made through a Controller. Slot and Pos are
// where a dropped panel ended up.
type Event struct {
	Kind  EventKind
	Panel string
	Slot  int
	Pos   int
}

func (e Event) String() string {
	switch e.Kind {
	case PanelClosed:
		return e.Panel + " closed"
	case PanelDropped:
		return fmt.Sprintf("%s dropped into slot %d at %d", e.Panel, e.Slot, e.Pos)
	case FullscreenEntered:
		return e.Panel + " fullscreen"
	case FullscreenExited:
		return e.Panel + " left fullscreen"
	default:
		return "footer replaced"
	}
}
