package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/studio/internal/theme"
	"github.com/justinpbarnett/studio/internal/ui/styles"
)

var testStyles = styles.New(theme.Light())

func testStatusBar(width int) StatusBar {
	sb := NewStatusBar(testStyles)
	sb.SetSize(width)
	sb.SetSummary(LayoutSummary{Mode: "Auto Grid", Visible: 7, Total: 9, FooterPanels: 4})
	return sb
}

func TestStatusBarCounts(t *testing.T) {
	view := testStatusBar(120).View()
	if !strings.Contains(view, "7/9 visible") {
		t.Errorf("expected visible count in status bar, got %q", view)
	}
	if !strings.Contains(view, "4 footer panels") {
		t.Errorf("expected footer count in status bar, got %q", view)
	}
	if !strings.Contains(view, "Auto Grid") {
		t.Error("expected layout mode in status bar")
	}
	if !strings.Contains(view, "light") {
		t.Error("expected theme name in status bar")
	}
}

func TestStatusBarHelpHint(t *testing.T) {
	view := testStatusBar(80).View()
	if !strings.Contains(view, "?:help") {
		t.Error("expected '?:help' hint in status bar")
	}
}

func TestStatusBarVersion(t *testing.T) {
	view := testStatusBar(80).View()
	if !strings.Contains(view, "studio") {
		t.Error("expected 'studio' in status bar")
	}
}

func TestStatusBarWidth(t *testing.T) {
	for _, w := range []int{60, 80, 120} {
		if got := lipgloss.Width(testStatusBar(w).View()); got != w {
			t.Errorf("width %d: status bar rendered %d wide", w, got)
		}
	}
}

func TestStatusBarDragging(t *testing.T) {
	sb := testStatusBar(120)
	sb.SetSummary(LayoutSummary{Visible: 9, Total: 9, Dragging: "Panel 3", DropTarget: "r2 c1"})
	view := sb.View()
	if !strings.Contains(view, "dragging Panel 3 → r2 c1") {
		t.Errorf("expected drag status, got %q", view)
	}
}

func TestStatusBarMaximized(t *testing.T) {
	sb := testStatusBar(120)
	sb.SetSummary(LayoutSummary{Visible: 9, Total: 9, Maximized: "Panel 5"})
	if !strings.Contains(sb.View(), "Panel 5") {
		t.Error("expected maximized panel in status bar")
	}
}

func TestStatusBarFlash(t *testing.T) {
	sb := testStatusBar(120)
	sb.SetFlashWithLevel("save failed", FlashError)

	view := sb.View()
	if !strings.Contains(view, "✗ save failed") {
		t.Errorf("expected error flash, got %q", view)
	}
	msg, level, ok := sb.Flash()
	if !ok || msg != "save failed" || level != FlashError {
		t.Errorf("Flash() = %q, %v, %v", msg, level, ok)
	}

	sb.ClearFlash()
	if strings.Contains(sb.View(), "save failed") {
		t.Error("expected flash cleared")
	}
	if _, _, ok := sb.Flash(); ok {
		t.Error("expected no flash after ClearFlash")
	}
}

func TestStatusBarThemeSwitch(t *testing.T) {
	sb := testStatusBar(120)
	sb.SetStyles(styles.New(theme.Dark()))
	if !strings.Contains(sb.View(), "dark") {
		t.Error("expected dark theme name after SetStyles")
	}
}
