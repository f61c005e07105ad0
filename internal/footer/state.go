// Package footer implements the footer strip: a row of slots, each holding
// a vertical stack of panels, with fullscreen-one-panel mode and
// top/bottom half drop targets.
package footer

import (
	"slices"

	"github.com/justinpbarnett/studio/internal/panel"
)

const (
	NumSlots = 7
	// MaxStack is the most panels one slot can stack.
	MaxStack = 5
)

// Half selects where in a slot's stack a drop lands.
type Half int

const (
	Top Half = iota
	Bottom
)

func (h Half) String() string {
	if h == Bottom {
		return "bottom"
	}
	return "top"
}

type SlotState struct {
	Visible bool
	Panels  []string
}

// State is the footer model. Slots are always left-compacted: every
// non-empty slot comes before every empty one.
type State struct {
	Slots      []SlotState
	Fullscreen string
}

// DefaultState puts one footer panel in each of the first count slots.
func DefaultState(count int) State {
	count = max(0, min(count, NumSlots))
	s := State{Slots: make([]SlotState, NumSlots)}
	for i := range s.Slots {
		if i < count {
			s.Slots[i] = SlotState{Visible: true, Panels: []string{panel.FooterID(i)}}
		} else {
			s.Slots[i] = SlotState{Panels: []string{}}
		}
	}
	return s
}

func (s State) Clone() State {
	c := State{Fullscreen: s.Fullscreen, Slots: make([]SlotState, len(s.Slots))}
	for i, slot := range s.Slots {
		c.Slots[i] = SlotState{Visible: slot.Visible, Panels: slices.Clone(slot.Panels)}
		if c.Slots[i].Panels == nil {
			c.Slots[i].Panels = []string{}
		}
	}
	return c
}

func (s State) Equal(o State) bool {
	if s.Fullscreen != o.Fullscreen || len(s.Slots) != len(o.Slots) {
		return false
	}
	for i := range s.Slots {
		if s.Slots[i].Visible != o.Slots[i].Visible || !slices.Equal(s.Slots[i].Panels, o.Slots[i].Panels) {
			return false
		}
	}
	return true
}

// FindPanel returns the slot and stack position holding id.
func (s State) FindPanel(id string) (slot, pos int, ok bool) {
	for i, st := range s.Slots {
		if p := slices.Index(st.Panels, id); p >= 0 {
			return i, p, true
		}
	}
	return 0, 0, false
}

// Panels returns every footer panel in slot order, top to bottom.
func (s State) Panels() []string {
	var out []string
	for _, st := range s.Slots {
		if st.Visible {
			out = append(out, st.Panels...)
		}
	}
	return out
}

// VisibleSlots returns the number of shown slots.
func (s State) VisibleSlots() int {
	n := 0
	for _, st := range s.Slots {
		if st.Visible && len(st.Panels) > 0 {
			n++
		}
	}
	return n
}

// Close removes id from its slot, leaves fullscreen if id was fullscreen
// and compacts. Returns false for unknown panels.
func (s *State) Close(id string) bool {
	slot, pos, ok := s.FindPanel(id)
	if !ok {
		return false
	}
	if s.Fullscreen == id {
		s.Fullscreen = ""
	}
	s.removeAt(slot, pos)
	s.Compact()
	return true
}

// Drop moves id into the stack of slot target: to the top for Top, to
// the bottom for Bottom. Drops into the panel's own slot, onto a hidden
// or out-of-range slot, or onto a full slot change nothing.
func (s *State) Drop(id string, target int, half Half) bool {
	if target < 0 || target >= len(s.Slots) {
		return false
	}
	dst := s.Slots[target]
	if !dst.Visible || len(dst.Panels) == 0 {
		return false
	}
	src, pos, ok := s.FindPanel(id)
	if !ok || src == target {
		return false
	}
	if len(dst.Panels) >= MaxStack {
		return false
	}

	s.removeAt(src, pos)
	if half == Top {
		s.Slots[target].Panels = slices.Insert(s.Slots[target].Panels, 0, id)
	} else {
		s.Slots[target].Panels = append(s.Slots[target].Panels, id)
	}
	s.Compact()
	return true
}

// ToggleFullscreen shows id alone, or restores the strip if id is already
// fullscreen.
func (s *State) ToggleFullscreen(id string) bool {
	if id != "" && s.Fullscreen == id {
		s.Fullscreen = ""
		return true
	}
	if _, _, ok := s.FindPanel(id); !ok {
		return false
	}
	s.Fullscreen = id
	return true
}

// Compact shifts every visible, non-empty slot left, keeping relative
// order, and clears the rest.
func (s *State) Compact() {
	kept := make([]SlotState, 0, NumSlots)
	for _, st := range s.Slots {
		if st.Visible && len(st.Panels) > 0 {
			kept = append(kept, st)
		}
	}
	n := max(len(s.Slots), NumSlots)
	slots := make([]SlotState, n)
	for i := range slots {
		if i < len(kept) {
			slots[i] = kept[i]
		} else {
			slots[i] = SlotState{Panels: []string{}}
		}
	}
	s.Slots = slots
}

// Normalize returns a copy of s that satisfies every footer invariant:
// exactly NumSlots slots, no duplicate ids, at most MaxStack panels per
// slot, compacted, and fullscreen pointing at a present panel.
func (s State) Normalize() State {
	seen := make(map[string]bool)
	var kept []SlotState
	for _, st := range s.Slots {
		if !st.Visible {
			continue
		}
		var ids []string
		for _, id := range st.Panels {
			if id == "" || seen[id] || len(ids) == MaxStack {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		if len(ids) > 0 {
			kept = append(kept, SlotState{Visible: true, Panels: ids})
		}
	}
	if len(kept) > NumSlots {
		kept = kept[:NumSlots]
	}

	out := State{Slots: kept}
	out.Compact()
	if _, _, ok := out.FindPanel(s.Fullscreen); ok {
		out.Fullscreen = s.Fullscreen
	}
	return out
}

func (s *State) removeAt(slot, pos int) {
	st := &s.Slots[slot]
	st.Panels = slices.Delete(st.Panels, pos, pos+1)
	if len(st.Panels) == 0 {
		st.Visible = false
	}
}
