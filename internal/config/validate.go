package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run and errors are collected,
// not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	// The app id becomes a directory name under the user config dir
	switch {
	case strings.TrimSpace(cfg.App.ID) == "":
		errs = append(errs, "app.id must not be empty")
	case cfg.App.ID == "." || cfg.App.ID == ".." || strings.ContainsAny(cfg.App.ID, `/\`):
		errs = append(errs, fmt.Sprintf("app.id %q must be a plain directory name", cfg.App.ID))
	}

	if cfg.Grid.Panels < 1 || cfg.Grid.Panels > MaxGridPanels {
		errs = append(errs, fmt.Sprintf("grid.panels must be between 1 and %d, got %d", MaxGridPanels, cfg.Grid.Panels))
	}
	if cfg.Footer.Panels < 0 || cfg.Footer.Panels > MaxFooterPanels {
		errs = append(errs, fmt.Sprintf("footer.panels must be between 0 and %d, got %d", MaxFooterPanels, cfg.Footer.Panels))
	}
	if cfg.Grid.DragThreshold < 1 {
		errs = append(errs, "grid.drag_threshold must be positive")
	}
	if cfg.Shell.FooterHeight < 3 {
		errs = append(errs, "shell.footer_height must be at least 3")
	}
	if cfg.Shell.LeftSidebarWidth < 0 {
		errs = append(errs, "shell.left_sidebar_width must not be negative")
	}
	if cfg.Shell.RightSidebarWidth < 0 {
		errs = append(errs, "shell.right_sidebar_width must not be negative")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
