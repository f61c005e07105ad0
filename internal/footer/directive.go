package footer

import (
	"github.com/justinpbarnett/studio/internal/geom"
	"github.com/justinpbarnett/studio/internal/panel"
	"github.com/justinpbarnett/studio/internal/theme"
)

type SubSlotDirective struct {
	Visible bool
	Height  geom.SizePolicy
	Panel   string
	Index   int
}

type SlotDirective struct {
	Visible bool
	Width   geom.SizePolicy
	// Stack holds the vertical sub-slots, top first.
	Stack [MaxStack]SubSlotDirective
}

// Directive binds the footer's fixed 7x5 sub-slot pool.
type Directive struct {
	Theme      theme.Theme
	Fullscreen bool
	Slots      [NumSlots]SlotDirective
}

// VisibleSlots returns the indexes of the shown slots.
func (d Directive) VisibleSlots() []int {
	var out []int
	for i, s := range d.Slots {
		if s.Visible {
			out = append(out, i)
		}
	}
	return out
}

// StackSize returns the number of visible sub-slots in slot.
func (s SlotDirective) StackSize() int {
	n := 0
	for _, sub := range s.Stack {
		if sub.Visible {
			n++
		}
	}
	return n
}

// Compute derives the footer directive from s. In fullscreen only the slot
// holding the fullscreen panel is shown, with that panel alone.
func Compute(s State, th theme.Theme) Directive {
	d := Directive{Theme: th}

	if s.Fullscreen != "" {
		if slot, _, ok := s.FindPanel(s.Fullscreen); ok && slot < NumSlots {
			d.Fullscreen = true
			d.Slots[slot].Visible = true
			d.Slots[slot].Width = geom.SizeFill
			d.Slots[slot].Stack[0] = bind(s.Fullscreen)
			return d
		}
	}

	for i, st := range s.Slots {
		if i >= NumSlots {
			break
		}
		if !st.Visible || len(st.Panels) == 0 {
			continue
		}
		d.Slots[i].Visible = true
		d.Slots[i].Width = geom.SizeFill
		for j, id := range st.Panels {
			if j >= MaxStack {
				break
			}
			d.Slots[i].Stack[j] = bind(id)
		}
	}
	return d
}

func bind(id string) SubSlotDirective {
	return SubSlotDirective{
		Visible: true,
		Height:  geom.SizeFill,
		Panel:   id,
		Index:   panel.IndexOf(id, NumSlots*MaxStack),
	}
}
