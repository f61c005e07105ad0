package config

func boolPtr(b bool) *bool { return &b }

const (
	MaxGridPanels   = 27
	MaxFooterPanels = 7
)

func DefaultConfig() Config {
	return Config{
		App: AppConfig{
			ID:    "studio",
			Title: "Studio",
		},
		Shell: ShellConfig{
			ShowHeader:        boolPtr(true),
			ShowFooter:        boolPtr(true),
			ShowLeftSidebar:   boolPtr(true),
			ShowRightSidebar:  boolPtr(true),
			LeftSidebarWidth:  28,
			RightSidebarWidth: 30,
			FooterHeight:      10,
		},
		Grid: GridConfig{
			Panels:         9,
			EnableClose:    boolPtr(true),
			EnableMaximize: boolPtr(true),
			EnableDrag:     boolPtr(true),
			DragThreshold:  2,
		},
		Footer: FooterConfig{
			Panels: 4,
		},
		Persistence: PersistenceConfig{
			Enabled: boolPtr(true),
		},
		Theme: ThemeConfig{
			Dark: boolPtr(false),
		},
	}
}
