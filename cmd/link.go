package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kpv/internal/ui"
	"github.com/PolarWolf314/kpv/internal/vault"
	"github.com/PolarWolf314/kpv/internal/workflows"
)

var linkCmd = &cobra.Command{
	Use:     "link [key]",
	Aliases: []string{"ln"},
	Short:   "Link a saved .env into the current directory",
	Long: `Creates ./.env as a symbolic link to ~/.config/kpv/<key>/.env.

An existing ./.env is never replaced. When no key is given, the name of the
current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting link command")

		opts := workflows.LinkOptions{Dest: vault.EnvFileName}
		if len(args) == 1 {
			opts.Key = args[0]
		}

		spinner, cleanup := startSpinner("Linking .env...", verbose)
		defer cleanup()

		result, err := workflows.Link(context.Background(), opts)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to link: %w", err)
		}
		warnAudit(result.AuditErr)

		Logger.Debugf("Link target: %s", result.TargetPath)

		spinner.FinalMSG = fmt.Sprintf("%s Linked: %s -> %s", ui.Success.Sprint(ui.CheckMark),
			ui.Key.Sprint(result.Key), ui.Path.Sprint(displayPath(result.LinkPath)))
		return nil
	},
}
