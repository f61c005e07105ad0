package text

import (
	"testing"
	"time"
)

func TestRelativeTimeSeconds(t *testing.T) {
	got := RelativeTime(time.Now().Add(-30 * time.Second))
	if got != "<1m ago" {
		t.Errorf("RelativeTime seconds: got %q, want %q", got, "<1m ago")
	}
}

func TestRelativeTimeMinutes(t *testing.T) {
	got := RelativeTime(time.Now().Add(-5 * time.Minute))
	if got != "5m ago" {
		t.Errorf("RelativeTime minutes: got %q, want %q", got, "5m ago")
	}
}

func TestRelativeTimeHours(t *testing.T) {
	got := RelativeTime(time.Now().Add(-3 * time.Hour))
	if got != "3h ago" {
		t.Errorf("RelativeTime hours: got %q, want %q", got, "3h ago")
	}
}

func TestRelativeTimeOld(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	got := RelativeTime(old)
	expected := old.Format("Jan 02 15:04")
	if got != expected {
		t.Errorf("RelativeTime old: got %q, want %q", got, expected)
	}
}

func TestRelativeTimeFuture(t *testing.T) {
	if got := RelativeTime(time.Now().Add(time.Hour)); got != "<1m ago" {
		t.Errorf("RelativeTime future: got %q, want %q", got, "<1m ago")
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 panels"},
		{1, "1 panel"},
		{9, "9 panels"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "panel"); got != tt.want {
			t.Errorf("Plural(%d): got %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	if got := FormatSize(90, 30); got != "90×30" {
		t.Errorf("FormatSize: got %q", got)
	}
}

func TestFormatPosition(t *testing.T) {
	if got := FormatPosition(0, 2); got != "r1 c3" {
		t.Errorf("FormatPosition: got %q, want %q", got, "r1 c3")
	}
}
