package text

import (
	"fmt"
	"time"
)

// RelativeTime formats a time as relative: "3m ago", "1h ago", or "Jan 02 15:04" if > 24h.
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "<1m ago"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 02 15:04")
	}
}

// Plural formats a count with its noun: 1 -> "1 panel", 3 -> "3 panels".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatSize formats cell dimensions: 90, 30 -> "90×30"
func FormatSize(w, h int) string {
	return fmt.Sprintf("%d×%d", w, h)
}

// FormatPosition formats a zero-based row/column as one-based "r2 c1".
func FormatPosition(row, col int) string {
	return fmt.Sprintf("r%d c%d", row+1, col+1)
}
