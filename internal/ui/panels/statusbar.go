package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/ui/styles"
	"github.com/justinpbarnett/studio/internal/ui/text"
)

const flashDurationVal = 5 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

// LayoutSummary is what the status bar reports about the layout.
type LayoutSummary struct {
	Mode          string
	Visible       int
	Total         int
	FooterPanels  int
	Maximized     string
	Fullscreen    string
	Dragging      string
	DropTarget    string
	PersistStatus string
}

type StatusBar struct {
	width      int
	styles     styles.Styles
	summary    LayoutSummary
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
}

func NewStatusBar(st styles.Styles) StatusBar {
	return StatusBar{styles: st}
}

func (s StatusBar) View() string {
	st := s.styles
	sep := st.TextDim.Render(" │ ")
	sum := s.summary

	version := st.TextSecondary.Render("studio " + Version)

	counts := fmt.Sprintf("%s %s",
		st.TextPrimary.Render(fmt.Sprintf("%d/%d visible", sum.Visible, sum.Total)),
		st.TextSecondary.Render(text.Plural(sum.FooterPanels, "footer panel")),
	)

	left := " " + version + sep + counts
	if sum.Mode != "" {
		left += sep + st.TextSecondary.Render(sum.Mode)
	}
	left += sep + st.TextSecondary.Render(st.Theme.Name())

	switch {
	case sum.Dragging != "":
		drag := "dragging " + sum.Dragging
		if sum.DropTarget != "" {
			drag += " → " + sum.DropTarget
		}
		left += sep + lipgloss.NewStyle().Foreground(st.Colors.DropPreview).Bold(true).Render(drag)
	case sum.Maximized != "":
		left += sep + st.Selected.Render("□ "+sum.Maximized)
	case sum.Fullscreen != "":
		left += sep + st.Selected.Render("⛶ "+sum.Fullscreen)
	}

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", st.Colors.StatusSuccess
		case FlashError:
			icon, color = "✗", st.Colors.StatusError
		case FlashWarning:
			icon, color = "⚠", st.Colors.StatusWarning
		default: // FlashInfo
			icon, color = "●", st.Colors.StatusInfo
		}
		flashStr := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + s.flash)
		left += sep + flashStr
	}

	right := st.TextSecondary.Render("?:help") + " "
	if sum.PersistStatus != "" {
		right = st.TextDim.Render(sum.PersistStatus) + sep + right
	}

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := s.width - leftWidth - rightWidth
	if gap < 1 {
		// Keep the bar on one line; the left side gives way.
		left = text.Truncate(left, max(s.width-rightWidth-1, 0))
		gap = max(s.width-lipgloss.Width(left)-rightWidth, 1)
	}

	return left + strings.Repeat(" ", gap) + right
}

func (s *StatusBar) SetSummary(sum LayoutSummary) {
	s.summary = sum
}

func (s *StatusBar) SetStyles(st styles.Styles) {
	s.styles = st
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

// Flash returns the active flash message, if any.
func (s StatusBar) Flash() (string, FlashLevel, bool) {
	if s.flash == "" || !time.Now().Before(s.flashUntil) {
		return "", FlashInfo, false
	}
	return s.flash, s.flashLevel, true
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}
