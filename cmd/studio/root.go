package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/studio/internal/config"
	"github.com/justinpbarnett/studio/internal/persistence"
	"github.com/justinpbarnett/studio/internal/ui"
	"github.com/spf13/cobra"
)

const repo = "justinpbarnett/studio"

var (
	configDir string
	noPersist bool
	darkFlag  bool
	lightFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "A terminal studio shell with a draggable panel grid",
	Long: `studio opens a shell with a header, two sidebars, a main panel grid and a
footer strip. Panels can be dragged by their title bars, closed, maximized
and stacked; the layout is saved between sessions.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory searched for studio.yaml / studio.toml (default: working directory)")
	rootCmd.Flags().BoolVar(&noPersist, "no-persist", false, "do not load or save the layout")
	rootCmd.Flags().BoolVar(&darkFlag, "dark", false, "start in dark mode")
	rootCmd.Flags().BoolVar(&lightFlag, "light", false, "start in light mode")
	rootCmd.MarkFlagsMutuallyExclusive("dark", "light")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configDir != "" {
		return config.LoadFrom(configDir)
	}
	return config.Load()
}

// openStore returns nil when persistence is off.
func openStore(cfg *config.Config) persistence.Store {
	if noPersist || !config.On(cfg.Persistence.Enabled) {
		return nil
	}
	if cfg.Persistence.Path != "" {
		return persistence.NewFileStoreAt(cfg.Persistence.Path)
	}
	return persistence.NewFileStore(cfg.App.ID)
}

func runShell() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile := setupLogging(cfg.App.ID)
	if logFile != nil {
		defer logFile.Close()
	}

	opts := ui.Options{Config: *cfg}
	switch {
	case darkFlag:
		opts.Dark = &darkFlag
	case lightFlag:
		dark := false
		opts.Dark = &dark
	}

	if store := openStore(cfg); store != nil {
		opts.Store = store
		if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
			log.Printf("warning: create preferences dir: %v", err)
		} else if w, err := persistence.Watch(store.Path()); err != nil {
			log.Printf("warning: %v (external edits will not be picked up)", err)
		} else {
			opts.Watcher = w
			defer w.Close()
		}
	}

	p := tea.NewProgram(ui.NewApp(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to a file so warnings never draw
// over the screen. $STUDIO_LOG overrides the location.
func setupLogging(appID string) io.Closer {
	path := os.Getenv("STUDIO_LOG")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
		path = filepath.Join(dir, appID, appID+".log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(path, appID)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	return f
}
