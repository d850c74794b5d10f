package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kpv/internal/ui"
	"github.com/PolarWolf314/kpv/internal/vault"
	"github.com/PolarWolf314/kpv/internal/workflows"
)

var saveCmd = &cobra.Command{
	Use:     "save [key]",
	Aliases: []string{"sv"},
	Short:   "Save ./.env under a key",
	Long: `Copies ./.env to ~/.config/kpv/<key>/.env, overwriting any previous save.

When no key is given, the name of the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting save command")

		opts := workflows.SaveOptions{Source: vault.EnvFileName}
		if len(args) == 1 {
			opts.Key = args[0]
		}

		spinner, cleanup := startSpinner("Saving .env...", verbose)
		defer cleanup()

		result, err := workflows.Save(context.Background(), opts)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to save: %w", err)
		}
		warnAudit(result.AuditErr)

		if result.KeyDerived {
			Logger.Infof("Using current directory name as key: %s", result.Key)
		}
		Logger.Debugf("Stored file: %s", result.StoredPath)

		message := fmt.Sprintf("%s Saved: %s -> %s", ui.Success.Sprint(ui.CheckMark),
			ui.Path.Sprint(displayPath(opts.Source)), ui.Key.Sprint(result.Key))
		if result.Unchanged {
			message += " " + ui.Muted.Sprint("already linked to this key, nothing copied")
		}
		spinner.FinalMSG = message
		return nil
	},
}
