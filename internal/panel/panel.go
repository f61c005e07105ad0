// Package panel defines panel identity and the registry of panel
// definitions shown by the main grid and the footer strip.
package panel

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefixes of the generated default ids.
const (
	MainPrefix   = "panel_"
	FooterPrefix = "footer_panel_"
)

// MainID returns the default id of the i-th main grid panel.
func MainID(i int) string {
	return fmt.Sprintf("%s%d", MainPrefix, i)
}

// FooterID returns the default id of the i-th footer panel.
func FooterID(i int) string {
	return fmt.Sprintf("%s%d", FooterPrefix, i)
}

// IndexOf derives a display index for id, used only for numbering and
// accent colors. Ids of the form "panel_N" or "footer_panel_N" map to N;
// anything else hashes into [0, buckets). Never use it for lookups.
func IndexOf(id string, buckets int) int {
	if buckets <= 0 {
		buckets = 1
	}
	for _, prefix := range []string{FooterPrefix, MainPrefix} {
		if suffix, ok := strings.CutPrefix(id, prefix); ok {
			if n, err := strconv.Atoi(suffix); err == nil && n >= 0 {
				return n
			}
		}
	}
	var h uint
	for i := 0; i < len(id); i++ {
		h = h*31 + uint(id[i])
	}
	return int(h % uint(buckets))
}
