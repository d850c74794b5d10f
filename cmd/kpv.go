package cmd

import (
	"errors"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	kerrors "github.com/PolarWolf314/kpv/internal/errors"
	logger "github.com/PolarWolf314/kpv/internal/logging"
	"github.com/PolarWolf314/kpv/internal/ui"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	KpvCmd = &cobra.Command{
		Use:   "kpv",
		Short: "Key-Pair Vault: manage .env files across projects",
		Long: `kpv keeps a copy of each project's .env file under ~/.config/kpv/<key>/
and links it back into any working directory.

Usage:
  kpv save [key]     Save ./.env under key (default: current directory name)
  kpv link [key]     Symlink a saved .env to ./.env
  kpv list           List saved keys
  kpv delete <key>   Remove a saved key`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("kpv", "standard", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run " + ui.Code.Sprint("kpv --help") + " to see available commands.")
		},
	}
)

func init() {
	KpvCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	KpvCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	KpvCmd.AddCommand(saveCmd)
	KpvCmd.AddCommand(linkCmd)
	KpvCmd.AddCommand(listCmd)
	KpvCmd.AddCommand(deleteCmd)
	KpvCmd.AddCommand(logCmd)
	KpvCmd.AddCommand(configCmd)
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	return KpvCmd.Execute()
}

// ErrorHint suggests a next step for errors the user can fix, or returns "".
func ErrorHint(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrSourceNotFound):
		return "Create a .env file in this directory, or " + ui.Code.Sprint("cd") + " into the project first"
	case errors.Is(err, kerrors.ErrStoredFileNotFound), errors.Is(err, kerrors.ErrKeyNotFound):
		return "Run " + ui.Code.Sprint("kpv list") + " to see saved keys"
	case errors.Is(err, kerrors.ErrDestinationExists):
		return "Save it first with " + ui.Code.Sprint("kpv save") + ", or remove ./.env"
	case errors.Is(err, kerrors.ErrHomeNotFound):
		return "Set the " + ui.Code.Sprint("HOME") + " environment variable"
	case errors.Is(err, kerrors.ErrConfirmationRequired):
		return "Re-run with " + ui.Code.Sprint("--force") + " to delete without prompting"
	case errors.Is(err, kerrors.ErrInvalidKey):
		return "Keys are single names without path separators"
	}
	return ""
}

// ResetGlobalState resets all flag variables to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetListCommandState()
	resetDeleteCommandState()
	resetLogCommandState()
	resetConfigCommandState()
}
