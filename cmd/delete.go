package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
	"github.com/PolarWolf314/kpv/internal/ui"
	"github.com/PolarWolf314/kpv/internal/utils"
	"github.com/PolarWolf314/kpv/internal/workflows"
)

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip the confirmation prompt")
}

func resetDeleteCommandState() {
	deleteForce = false
}

// confirmDelete is swapped out in tests.
var confirmDelete workflows.ConfirmFunc = promptDelete

func promptDelete(key string) (bool, error) {
	if !utils.IsTerminal() {
		return false, kerrors.ErrConfirmationRequired
	}
	return utils.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Delete %s and its saved .env?", ui.Key.Sprint(key)))
}

var deleteCmd = &cobra.Command{
	Use:     "delete <key>",
	Aliases: []string{"d"},
	Short:   "Delete a saved key",
	Long: `Removes ~/.config/kpv/<key> and the .env saved in it.

Links created with 'kpv link' that point at the key are left dangling.
Set 'confirm = true' under [delete] in ~/.config/kpv.toml to be asked first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command")

		result, err := workflows.Delete(context.Background(), workflows.DeleteOptions{
			Key:     args[0],
			Force:   deleteForce,
			Confirm: confirmDelete,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to delete: %w", err)
		}
		warnAudit(result.AuditErr)

		if result.Aborted {
			fmt.Println("Aborted.")
			return nil
		}

		Logger.Debugf("Removed %s", result.RemovedPath)
		fmt.Printf("%s Deleted: %s\n", ui.Success.Sprint(ui.CheckMark), ui.Key.Sprint(result.Key))
		return nil
	},
}
