package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/justinpbarnett/studio/internal/config"
	"github.com/justinpbarnett/studio/internal/footer"
	"github.com/justinpbarnett/studio/internal/grid"
	"github.com/justinpbarnett/studio/internal/persistence"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect or reset the saved layout",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved layout, or the defaults when nothing is saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := defaultPreferences(cfg)
		if store := openStore(cfg); store != nil {
			if saved := store.Load(); saved.Layout != nil || saved.Footer != nil || saved.DarkMode {
				p = saved
			}
		}
		data, err := persistence.Encode(p)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default layout, keeping the theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := openStore(cfg)
		if store == nil {
			return errors.New("persistence is disabled")
		}
		p := defaultPreferences(cfg)
		p.DarkMode = store.Load().DarkMode
		if err := store.Save(p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", store.Path())
		return nil
	},
}

var layoutPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := openStore(cfg)
		if store == nil {
			return errors.New("persistence is disabled")
		}
		path := store.Path()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path += " (not yet written)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func defaultPreferences(cfg *config.Config) persistence.Preferences {
	sh := cfg.Shell
	return persistence.Snapshot(
		grid.WithPanelCount(cfg.Grid.Panels),
		footer.DefaultState(cfg.Footer.Panels),
		config.On(cfg.Theme.Dark),
		persistence.SplitterPositions{
			LeftSidebar:  sh.LeftSidebarWidth,
			RightSidebar: sh.RightSidebarWidth,
			Footer:       sh.FooterHeight,
		},
	)
}

func init() {
	layoutCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "ignore the saved layout")
	layoutCmd.AddCommand(layoutShowCmd, layoutResetCmd, layoutPathCmd)
	rootCmd.AddCommand(layoutCmd)
}
