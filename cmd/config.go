package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kpv/internal/ui"
	"github.com/PolarWolf314/kpv/internal/workflows"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing preferences file")

	configCmd.AddCommand(configInitCmd)
}

func resetConfigCommandState() {
	configInitForce = false
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show where kpv keeps its files and the active preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config command")

		result, err := workflows.ShowConfig(context.Background(), workflows.ConfigOptions{})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %w", err)
		}

		prefsPath := ui.Path.Sprint(result.Settings.PreferencesPath)
		if !result.PreferencesFileExists {
			prefsPath += " " + ui.Muted.Sprint("not created, using defaults")
		}

		fmt.Printf("Vault:        %s\n", ui.Path.Sprint(result.Settings.VaultPath))
		fmt.Printf("Preferences:  %s\n", prefsPath)
		fmt.Printf("Audit log:    %s\n", ui.Path.Sprint(result.Settings.AuditLogPath))
		fmt.Println()
		fmt.Printf("delete.confirm = %t\n", result.Preferences.Delete.Confirm)
		fmt.Printf("audit.disabled = %t\n", result.Preferences.Audit.Disabled)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		result, err := workflows.InitConfig(context.Background(), workflows.ConfigOptions{Force: configInitForce})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to write preferences: %w", err)
		}

		fmt.Printf("%s Wrote %s\n", ui.Success.Sprint(ui.CheckMark), ui.Path.Sprint(result.Settings.PreferencesPath))
		return nil
	},
}
