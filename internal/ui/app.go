package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/config"
	"github.com/justinpbarnett/studio/internal/footer"
	"github.com/justinpbarnett/studio/internal/grid"
	"github.com/justinpbarnett/studio/internal/panel"
	"github.com/justinpbarnett/studio/internal/persistence"
	"github.com/justinpbarnett/studio/internal/theme"
	"github.com/justinpbarnett/studio/internal/ui/clipboard"
	"github.com/justinpbarnett/studio/internal/ui/layout"
	"github.com/justinpbarnett/studio/internal/ui/panels"
	"github.com/justinpbarnett/studio/internal/ui/styles"
	"github.com/justinpbarnett/studio/internal/ui/text"
)

// Focus targets besides panel ids.
const (
	focusLeft  = "#left"
	focusRight = "#right"
)

// Options configures NewApp.
type Options struct {
	Config config.Config
	// Store persists preferences; nil runs without persistence.
	Store   persistence.Store
	Watcher *persistence.Watcher
	// Dark forces the theme over saved preferences and config.
	Dark   *bool
	Copier clipboard.Copier
}

type App struct {
	cfg       config.Config
	gridCtl   *grid.Controller
	footerCtl *footer.Controller
	gridReg   *panel.Registry
	footerReg *panel.Registry
	theme     theme.Theme
	styles    styles.Styles
	splitters persistence.SplitterPositions

	store   persistence.Store
	watcher *persistence.Watcher
	copier  clipboard.Copier
	// dirty is set by the controller subscriptions.
	dirty       *bool
	saving      bool
	saveQueued  bool
	quitting    bool
	lastWritten string
	lastSaved   time.Time

	width       int
	height      int
	layout      layout.Layout
	arrangement Arrangement
	focused     string
	pending     pendingDrag

	leftList    panels.PanelList
	rightList   panels.PanelList
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	shortHelp   help.Model
	keys        KeyMap
	ready       bool
}

func NewApp(opts Options) App {
	cfg := opts.Config

	a := App{
		cfg:       cfg,
		gridReg:   panel.DefaultRegistry(cfg.Grid.Panels),
		footerReg: panel.DefaultFooterRegistry(cfg.Footer.Panels),
		store:     opts.Store,
		watcher:   opts.Watcher,
		copier:    opts.Copier,
		dirty:     new(bool),
		keys:      DefaultKeyMap(),
		shortHelp: help.New(),
	}
	if a.copier.Native == nil && a.copier.Fallback == nil {
		a.copier = clipboard.Default()
	}

	var prefs persistence.Preferences
	if a.store != nil {
		prefs = a.store.Load()
	}
	th := theme.Theme{Dark: config.On(cfg.Theme.Dark)}
	if hasSaved(prefs) {
		th.Dark = prefs.DarkMode
	}
	if opts.Dark != nil {
		th.Dark = *opts.Dark
	}
	a.splitters = prefs.Splitters(a.defaultSplitters())

	gs := prefs.GridState(a.defaultGrid())
	fs := prefs.FooterState(footer.DefaultState(cfg.Footer.Panels))
	a.gridCtl = grid.NewController(&gs)
	a.footerCtl = footer.NewController(&fs, cfg.Footer.Panels)
	dirty := a.dirty
	a.gridCtl.Subscribe(func(grid.LayoutState) { *dirty = true })
	a.footerCtl.Subscribe(func(footer.State) { *dirty = true })
	a.gridCtl.OnEvent(func(e grid.Event) { log.Printf("grid: %s", e) })
	a.footerCtl.OnEvent(func(e footer.Event) { log.Printf("footer: %s", e) })

	a.statusBar = panels.NewStatusBar(styles.Styles{})
	a.leftList = panels.NewPanelList("Panels", styles.Styles{})
	a.rightList = panels.NewPanelList("Footer", styles.Styles{})
	a.setTheme(th)
	a.refresh()
	return a
}

func (a App) Init() tea.Cmd {
	return a.listenForPrefs()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.relayout()
		a.refresh()
		if a.helpOverlay != nil {
			a.helpOverlay.SetMaxSize(a.width, a.height)
		}
		return a, nil

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case SavedMsg:
		return a, a.handleSaved(msg)

	case PrefsChangedMsg:
		cmds := []tea.Cmd{a.listenForPrefs()}
		if a.reloadPreferences() {
			cmds = append(cmds, a.flash("Preferences reloaded", panels.FlashInfo))
		}
		return a, tea.Batch(cmds...)

	case WatchErrorMsg:
		log.Printf("warning: watch preferences: %v", msg.Err)
		return a, a.listenForPrefs()

	case tea.MouseMsg:
		cmd := a.handleMouse(msg)
		return a, a.commit(cmd)

	case tea.KeyMsg:
		if a.helpOverlay != nil {
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}
		cmd := a.handleKey(msg)
		return a, a.commit(cmd)
	}
	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%s)\nMinimum: %s",
			text.FormatSize(a.width, a.height), text.FormatSize(layout.MinWidth, layout.MinHeight))
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	var sections []string
	if !a.layout.Header.Empty() {
		sections = append(sections, a.renderHeader())
	}

	middle := a.renderGrid()
	if !a.layout.Left.Empty() {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, a.leftList.View(), middle)
	}
	if !a.layout.Right.Empty() {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, middle, a.rightList.View())
	}
	sections = append(sections, middle)

	if !a.layout.Footer.Empty() {
		sections = append(sections, a.renderFooter())
	}
	sections = append(sections, a.statusBar.View())

	fullLayout := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if a.helpOverlay != nil {
		fullLayout = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(a.styles.Colors.TextDim),
		)
	}

	return fullLayout
}

// GridState returns a copy of the main grid layout.
func (a App) GridState() grid.LayoutState {
	return a.gridCtl.State()
}

// FooterState returns a copy of the footer layout.
func (a App) FooterState() footer.State {
	return a.footerCtl.State()
}

func (a App) Theme() theme.Theme {
	return a.theme
}

func (a App) Focused() string {
	return a.focused
}

func (a App) Splitters() persistence.SplitterPositions {
	return a.splitters
}

func (a App) Layout() layout.Layout {
	return a.layout
}

func (a App) Arrangement() Arrangement {
	return a.arrangement
}

// Snapshot is the preferences record for the current state.
func (a App) Snapshot() persistence.Preferences {
	return persistence.Snapshot(a.gridCtl.State(), a.footerCtl.State(), a.theme.Dark, a.splitters)
}

// commit finishes an input event: a layout change re-arranges the screen
// and schedules a save.
func (a *App) commit(cmds ...tea.Cmd) tea.Cmd {
	if *a.dirty {
		*a.dirty = false
		a.relayout()
		cmds = append(cmds, a.requestSave())
	}
	a.refresh()
	return tea.Batch(cmds...)
}

func (a *App) relayout() {
	a.layout = layout.Calculate(a.width, a.height, a.layoutOptions())
	a.gridCtl.SetContainer(a.layout.Grid.Rect())
	a.arrangement = Arrange(a.layout, a.gridCtl.Directive(a.theme), a.footerCtl.Directive(a.theme))
	a.footerCtl.SetSlotRects(a.arrangement.FooterRects())

	a.leftList.SetSize(a.layout.Left.W, a.layout.Left.H)
	a.rightList.SetSize(a.layout.Right.W, a.layout.Right.H)
	a.statusBar.SetSize(a.layout.StatusBar.W)
	a.ensureFocus()
}

func (a *App) setTheme(th theme.Theme) {
	a.theme = th
	a.styles = styles.New(th)
	a.statusBar.SetStyles(a.styles)
	a.leftList.SetStyles(a.styles)
	a.rightList.SetStyles(a.styles)
	a.shortHelp.Styles.ShortKey = a.styles.KeybindKey
	a.shortHelp.Styles.ShortDesc = a.styles.TextSecondary
	a.shortHelp.Styles.ShortSeparator = a.styles.TextDim
	if a.helpOverlay != nil {
		a.helpOverlay = panels.NewHelpOverlay(a.styles, a.keys)
		a.helpOverlay.SetMaxSize(a.width, a.height)
	}
}

func (a App) layoutOptions() layout.Options {
	sh := a.cfg.Shell
	return layout.Options{
		ShowHeader:   config.On(sh.ShowHeader),
		ShowFooter:   config.On(sh.ShowFooter),
		ShowLeft:     config.On(sh.ShowLeftSidebar),
		ShowRight:    config.On(sh.ShowRightSidebar),
		LeftWidth:    a.splitters.LeftSidebar,
		RightWidth:   a.splitters.RightSidebar,
		FooterHeight: a.splitters.Footer,
	}
}

func (a App) defaultGrid() grid.LayoutState {
	return grid.WithPanelCount(a.cfg.Grid.Panels)
}

func (a App) defaultSplitters() persistence.SplitterPositions {
	return persistence.SplitterPositions{
		LeftSidebar:  a.cfg.Shell.LeftSidebarWidth,
		RightSidebar: a.cfg.Shell.RightSidebarWidth,
		Footer:       a.cfg.Shell.FooterHeight,
	}
}

// hasSaved reports whether p came from a saved record rather than an
// empty or unreadable file.
func hasSaved(p persistence.Preferences) bool {
	return p.DarkMode || p.Layout != nil || p.Footer != nil || p.SplitterPositions != nil
}

func (a *App) flash(msg string, level panels.FlashLevel) tea.Cmd {
	a.statusBar.SetFlashWithLevel(msg, level)
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

// refresh pushes the current state into the sidebars and status bar.
func (a *App) refresh() {
	gs := a.gridCtl.State()
	fs := a.footerCtl.State()

	a.leftList.SetEntries(a.gridEntries(gs))
	a.rightList.SetEntries(a.footerEntries(fs))
	a.leftList.SetFocused(a.focused == focusLeft)
	a.rightList.SetFocused(a.focused == focusRight)

	sum := panels.LayoutSummary{
		Mode:         gs.Mode.Name(),
		Visible:      gs.VisibleCount(),
		Total:        len(a.gridEntries(gs)),
		FooterPanels: len(fs.Panels()),
	}
	if gs.Maximized != "" {
		sum.Maximized = a.gridReg.Title(gs.Maximized)
	}
	if fs.Fullscreen != "" {
		sum.Fullscreen = a.footerReg.Title(fs.Fullscreen)
	}
	if id, ok := a.gridCtl.Dragging(); ok {
		sum.Dragging = a.gridReg.Title(id)
		if pos, ok := a.gridCtl.Preview(); ok {
			sum.DropTarget = text.FormatPosition(pos.Row, pos.Col)
		}
	} else if id, ok := a.footerCtl.Dragging(); ok {
		sum.Dragging = a.footerReg.Title(id)
		if t, ok := a.footerCtl.Target(); ok {
			sum.DropTarget = fmt.Sprintf("slot %d %s", t.Slot+1, t.Half)
		}
	}
	switch {
	case a.store == nil:
		sum.PersistStatus = "not saved"
	case !a.lastSaved.IsZero():
		sum.PersistStatus = "saved " + text.RelativeTime(a.lastSaved)
	}
	a.statusBar.SetSummary(sum)
}

// gridEntries lists registered panels first, then any placed panel the
// registry does not know.
func (a App) gridEntries(gs grid.LayoutState) []panels.ListEntry {
	ids := a.gridReg.IDs()
	for _, row := range gs.Rows {
		for _, id := range row {
			if _, ok := a.gridReg.Get(id); !ok {
				ids = append(ids, id)
			}
		}
	}
	entries := make([]panels.ListEntry, 0, len(ids))
	for _, id := range ids {
		e := panels.ListEntry{ID: id, Title: a.gridReg.Title(id), Where: "closed", Accent: panel.IndexOf(id, grid.SlotsPerRow)}
		if row, col, ok := gs.FindPanel(id); ok && gs.IsVisible(id) {
			e.Shown = true
			e.Where = text.FormatPosition(row, col)
			if gs.Maximized == id {
				e.Where = "max"
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func (a App) footerEntries(fs footer.State) []panels.ListEntry {
	ids := a.footerReg.IDs()
	for _, id := range fs.Panels() {
		if _, ok := a.footerReg.Get(id); !ok {
			ids = append(ids, id)
		}
	}
	entries := make([]panels.ListEntry, 0, len(ids))
	for _, id := range ids {
		e := panels.ListEntry{ID: id, Title: a.footerReg.Title(id), Where: "closed", Accent: panel.IndexOf(id, footer.NumSlots*footer.MaxStack)}
		if slot, pos, ok := fs.FindPanel(id); ok {
			e.Shown = true
			e.Where = fmt.Sprintf("s%d·%d", slot+1, pos+1)
			if fs.Fullscreen == id {
				e.Where = "full"
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func (a App) renderHeader() string {
	st := a.styles
	w := a.layout.Header.W

	icon := "☀"
	if a.theme.Dark {
		icon = "☾"
	}
	left := " " + st.Header.Render(a.cfg.App.Title) + "  " + st.TextSecondary.Render(icon+" "+a.theme.Name())

	a.shortHelp.Width = max(w-lipgloss.Width(left)-2, 0)
	right := a.shortHelp.ShortHelpView(a.keys.ShortHelp()) + " "

	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return text.Fit(left, w)
	}
	return left + strings.Repeat(" ", gap) + right
}
