package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := validate(&cfg); err != nil {
		t.Fatalf("DefaultConfig() should pass validation, got: %v", err)
	}
}

func TestValidateAppID(t *testing.T) {
	for _, id := range []string{"", "  ", "..", "a/b", `a\b`} {
		cfg := DefaultConfig()
		cfg.App.ID = id

		err := validate(&cfg)
		if err == nil {
			t.Fatalf("expected validation error for app id %q", id)
		}
		if !strings.Contains(err.Error(), "app.id") {
			t.Errorf("expected error about app.id, got: %v", err)
		}
	}
}

func TestValidatePanelCounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"no grid panels", func(c *Config) { c.Grid.Panels = 0 }, "grid.panels"},
		{"too many grid panels", func(c *Config) { c.Grid.Panels = MaxGridPanels + 1 }, "grid.panels"},
		{"negative footer panels", func(c *Config) { c.Footer.Panels = -1 }, "footer.panels"},
		{"too many footer panels", func(c *Config) { c.Footer.Panels = MaxFooterPanels + 1 }, "footer.panels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := validate(&cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error about %s, got: %v", tt.field, err)
			}
		})
	}
}

func TestValidateBoundaryPanelCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Panels = MaxGridPanels
	cfg.Footer.Panels = 0
	if err := validate(&cfg); err != nil {
		t.Fatalf("boundary values should pass, got: %v", err)
	}
}

func TestValidateSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.DragThreshold = 0
	cfg.Shell.FooterHeight = 2
	cfg.Shell.LeftSidebarWidth = -1

	err := validate(&cfg)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{"drag_threshold", "footer_height", "left_sidebar_width"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected error about %s, got: %v", field, err)
		}
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.App.ID = ""
	cfg.Grid.Panels = 0
	cfg.Shell.RightSidebarWidth = -5

	err := validate(&cfg)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}
