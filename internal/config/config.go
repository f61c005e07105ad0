package config

type Config struct {
	App         AppConfig         `yaml:"app" toml:"app"`
	Shell       ShellConfig       `yaml:"shell" toml:"shell"`
	Grid        GridConfig        `yaml:"grid" toml:"grid"`
	Footer      FooterConfig      `yaml:"footer" toml:"footer"`
	Persistence PersistenceConfig `yaml:"persistence" toml:"persistence"`
	Theme       ThemeConfig       `yaml:"theme" toml:"theme"`
}

type AppConfig struct {
	// ID scopes the preferences directory.
	ID    string `yaml:"id" toml:"id"`
	Title string `yaml:"title" toml:"title"`
}

// ShellConfig sizes are terminal cells.
type ShellConfig struct {
	ShowHeader        *bool `yaml:"show_header" toml:"show_header"`
	ShowFooter        *bool `yaml:"show_footer" toml:"show_footer"`
	ShowLeftSidebar   *bool `yaml:"show_left_sidebar" toml:"show_left_sidebar"`
	ShowRightSidebar  *bool `yaml:"show_right_sidebar" toml:"show_right_sidebar"`
	LeftSidebarWidth  int   `yaml:"left_sidebar_width" toml:"left_sidebar_width"`
	RightSidebarWidth int   `yaml:"right_sidebar_width" toml:"right_sidebar_width"`
	FooterHeight      int   `yaml:"footer_height" toml:"footer_height"`
}

type GridConfig struct {
	Panels         int   `yaml:"panels" toml:"panels"`
	EnableClose    *bool `yaml:"enable_close" toml:"enable_close"`
	EnableMaximize *bool `yaml:"enable_maximize" toml:"enable_maximize"`
	EnableDrag     *bool `yaml:"enable_drag" toml:"enable_drag"`
	// DragThreshold is how far, in cells, the pointer must travel before a
	// press on a title bar becomes a drag.
	DragThreshold int `yaml:"drag_threshold" toml:"drag_threshold"`
}

type FooterConfig struct {
	Panels int `yaml:"panels" toml:"panels"`
}

type PersistenceConfig struct {
	Enabled *bool `yaml:"enabled" toml:"enabled"`
	// Path overrides the preferences file location.
	Path string `yaml:"path" toml:"path"`
}

type ThemeConfig struct {
	Dark *bool `yaml:"dark" toml:"dark"`
}

// On dereferences an optional flag, treating nil as false.
func On(b *bool) bool {
	return b != nil && *b
}
