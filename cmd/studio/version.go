package main

import (
	"fmt"

	"github.com/justinpbarnett/studio/internal/ui/panels"
	"github.com/justinpbarnett/studio/internal/update"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for a newer release",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studio version %s\n", panels.Version)

		if panels.Version == "dev" {
			fmt.Println("Development build, update check skipped.")
			return
		}

		rel, err := update.CheckForUpdate(panels.Version, repo)
		if err != nil {
			fmt.Printf("Update check failed: %v\n", err)
			return
		}

		if rel != nil {
			fmt.Printf("Update available: v%s. Run \"studio update\" to install.\n", rel.Version)
		} else {
			fmt.Println("You are up to date.")
		}
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rel, err := update.Apply(panels.Version, repo)
		if err != nil {
			return err
		}
		fmt.Printf("Updated to v%s\n", rel.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, updateCmd)
}
