package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir for local file discovery. Load calls it
// with the working directory.
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := discoverConfigPath(dir)
	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns the first config file of the discovery chain
// that exists, or "" for defaults-only mode.
func discoverConfigPath(dir string) string {
	candidates := []string{
		filepath.Join(dir, "studio.yaml"),
		filepath.Join(dir, "studio.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "studio", "config.yaml"),
			filepath.Join(home, ".config", "studio", "config.toml"),
		)
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadFromFile reads a YAML or TOML config file, chosen by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	return &cfg, nil
}

// merge deep-merges override onto base. Scalar fields override when non-zero.
// Pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	// App
	if override.App.ID != "" {
		base.App.ID = override.App.ID
	}
	if override.App.Title != "" {
		base.App.Title = override.App.Title
	}

	// Shell
	mergeBool(&base.Shell.ShowHeader, override.Shell.ShowHeader)
	mergeBool(&base.Shell.ShowFooter, override.Shell.ShowFooter)
	mergeBool(&base.Shell.ShowLeftSidebar, override.Shell.ShowLeftSidebar)
	mergeBool(&base.Shell.ShowRightSidebar, override.Shell.ShowRightSidebar)
	if override.Shell.LeftSidebarWidth != 0 {
		base.Shell.LeftSidebarWidth = override.Shell.LeftSidebarWidth
	}
	if override.Shell.RightSidebarWidth != 0 {
		base.Shell.RightSidebarWidth = override.Shell.RightSidebarWidth
	}
	if override.Shell.FooterHeight != 0 {
		base.Shell.FooterHeight = override.Shell.FooterHeight
	}

	// Grid
	if override.Grid.Panels != 0 {
		base.Grid.Panels = override.Grid.Panels
	}
	mergeBool(&base.Grid.EnableClose, override.Grid.EnableClose)
	mergeBool(&base.Grid.EnableMaximize, override.Grid.EnableMaximize)
	mergeBool(&base.Grid.EnableDrag, override.Grid.EnableDrag)
	if override.Grid.DragThreshold != 0 {
		base.Grid.DragThreshold = override.Grid.DragThreshold
	}

	// Footer
	if override.Footer.Panels != 0 {
		base.Footer.Panels = override.Footer.Panels
	}

	// Persistence
	mergeBool(&base.Persistence.Enabled, override.Persistence.Enabled)
	if override.Persistence.Path != "" {
		base.Persistence.Path = override.Persistence.Path
	}

	// Theme
	mergeBool(&base.Theme.Dark, override.Theme.Dark)
}

func mergeBool(base **bool, override *bool) {
	if override != nil {
		*base = override
	}
}

// applyEnvOverrides applies STUDIO_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STUDIO_APP_ID"); v != "" {
		cfg.App.ID = v
	}
	if v := os.Getenv("STUDIO_DARK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Theme.Dark = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: STUDIO_DARK=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("STUDIO_PERSIST"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Persistence.Enabled = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: STUDIO_PERSIST=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("STUDIO_GRID_PANELS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Grid.Panels = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: STUDIO_GRID_PANELS=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("STUDIO_FOOTER_PANELS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Footer.Panels = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: STUDIO_FOOTER_PANELS=%q is not a valid integer, ignoring\n", v)
		}
	}
}
