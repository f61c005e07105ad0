// Package persistence saves and restores shell preferences: dark mode, the
// main grid layout, the footer strip and the splitter positions.
package persistence

import (
	"github.com/justinpbarnett/studio/internal/footer"
	"github.com/justinpbarnett/studio/internal/grid"
)

// Preferences is the on-disk record. Every section is optional; a missing
// section falls back to the caller's defaults on load.
type Preferences struct {
	DarkMode          bool               `json:"dark_mode"`
	Layout            *LayoutSnapshot    `json:"layout,omitempty"`
	Footer            *FooterSnapshot    `json:"footer,omitempty"`
	SplitterPositions *SplitterPositions `json:"splitter_positions,omitempty"`
}

type LayoutSnapshot struct {
	Rows        [][]string      `json:"rows"`
	Visible     []string        `json:"visible"`
	Maximized   *string         `json:"maximized"`
	Mode        grid.LayoutMode `json:"mode"`
	SelectedTab int             `json:"selected_tab"`
}

type FooterSnapshot struct {
	Slots      []SlotSnapshot `json:"slots"`
	Fullscreen *string        `json:"fullscreen"`
}

type SlotSnapshot struct {
	Visible  bool     `json:"visible"`
	PanelIDs []string `json:"panel_ids"`
}

// SplitterPositions are region sizes in terminal cells.
type SplitterPositions struct {
	LeftSidebar  int `json:"left_sidebar"`
	RightSidebar int `json:"right_sidebar"`
	Footer       int `json:"footer"`
}

func DefaultSplitters() SplitterPositions {
	return SplitterPositions{LeftSidebar: 28, RightSidebar: 30, Footer: 10}
}

// Snapshot builds the record for the given live state.
func Snapshot(g grid.LayoutState, f footer.State, dark bool, sp SplitterPositions) Preferences {
	return Preferences{
		DarkMode:          dark,
		Layout:            NewLayoutSnapshot(g),
		Footer:            NewFooterSnapshot(f),
		SplitterPositions: &sp,
	}
}

func NewLayoutSnapshot(s grid.LayoutState) *LayoutSnapshot {
	s = s.Clone()
	ls := &LayoutSnapshot{
		Rows:        s.Rows,
		Visible:     s.Visible,
		Mode:        s.Mode,
		SelectedTab: s.SelectedTab,
	}
	if ls.Visible == nil {
		ls.Visible = []string{}
	}
	if s.Maximized != "" {
		m := s.Maximized
		ls.Maximized = &m
	}
	return ls
}

func NewFooterSnapshot(s footer.State) *FooterSnapshot {
	s = s.Clone()
	fs := &FooterSnapshot{Slots: make([]SlotSnapshot, len(s.Slots))}
	for i, st := range s.Slots {
		fs.Slots[i] = SlotSnapshot{Visible: st.Visible, PanelIDs: st.Panels}
	}
	if s.Fullscreen != "" {
		id := s.Fullscreen
		fs.Fullscreen = &id
	}
	return fs
}

// GridState returns the saved grid layout, or def when none was saved.
// Absent rows fall back to def's rows; an absent visible set means every
// placed panel is visible. The result is normalized.
func (p Preferences) GridState(def grid.LayoutState) grid.LayoutState {
	if p.Layout == nil {
		return def.Normalize()
	}
	ls := p.Layout
	s := grid.LayoutState{
		Rows:        ls.Rows,
		Visible:     ls.Visible,
		Mode:        ls.Mode,
		SelectedTab: ls.SelectedTab,
	}
	if s.Rows == nil {
		s.Rows = def.Clone().Rows
	}
	if s.Visible == nil {
		for _, row := range s.Rows {
			s.Visible = append(s.Visible, row...)
		}
	}
	if ls.Maximized != nil {
		s.Maximized = *ls.Maximized
	}
	return s.Normalize()
}

// FooterState returns the saved footer, or def when none was saved.
func (p Preferences) FooterState(def footer.State) footer.State {
	if p.Footer == nil || p.Footer.Slots == nil {
		return def.Normalize()
	}
	s := footer.State{Slots: make([]footer.SlotState, len(p.Footer.Slots))}
	for i, st := range p.Footer.Slots {
		s.Slots[i] = footer.SlotState{Visible: st.Visible, Panels: st.PanelIDs}
	}
	if p.Footer.Fullscreen != nil {
		s.Fullscreen = *p.Footer.Fullscreen
	}
	return s.Normalize()
}

// Splitters returns the saved splitter positions, falling back per field
// to def for missing or negative values.
func (p Preferences) Splitters(def SplitterPositions) SplitterPositions {
	if p.SplitterPositions == nil {
		return def
	}
	sp := *p.SplitterPositions
	if sp.LeftSidebar < 0 {
		sp.LeftSidebar = def.LeftSidebar
	}
	if sp.RightSidebar < 0 {
		sp.RightSidebar = def.RightSidebar
	}
	if sp.Footer <= 0 {
		sp.Footer = def.Footer
	}
	return sp
}
