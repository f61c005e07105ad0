package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	FocusNext    key.Binding
	FocusPrev    key.Binding
	Close        key.Binding
	Maximize     key.Binding
	Fullscreen   key.Binding
	CycleMode    key.Binding
	Theme        key.Binding
	FooterGrow   key.Binding
	FooterShrink key.Binding
	Reset        key.Binding
	Copy         key.Binding
	Cancel       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev panel"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close panel"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "maximize"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "footer fullscreen"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "layout mode"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "dark/light"),
		),
		FooterGrow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "taller footer"),
		),
		FooterShrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter footer"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset layout"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy snapshot"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Close, k.Maximize, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.Close, k.Maximize, k.Fullscreen},
		{k.CycleMode, k.Theme, k.FooterGrow, k.FooterShrink},
		{k.Reset, k.Copy, k.Cancel, k.Help, k.Quit},
	}
}
