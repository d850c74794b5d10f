package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kpv/internal/audit"
	"github.com/PolarWolf314/kpv/internal/ui"
	"github.com/PolarWolf314/kpv/internal/workflows"
)

var (
	logLimit   int
	logReverse bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 0, "show only the most recent n entries")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show the most recent entries first")
}

func resetLogCommandState() {
	logLimit = 0
	logReverse = false
}

var logCmd = &cobra.Command{
	Use:   "log [key]",
	Short: "Show the history of saves, links and deletes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		opts := workflows.LogOptions{Limit: logLimit, Reverse: logReverse}
		if len(args) == 1 {
			opts.Key = args[0]
		}

		result, err := workflows.Log(context.Background(), opts)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %w", err)
		}
		warnPreferences(result.PreferencesErr)
		Logger.Debugf("Read %d entries from %s", len(result.Entries), result.LogPath)

		if len(result.Entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}

		for _, entry := range result.Entries {
			fmt.Println(formatLogEntry(entry))
		}
		return nil
	},
}

func formatLogEntry(entry audit.Entry) string {
	ts := entry.Timestamp
	if parsed := entry.Time(); !parsed.IsZero() {
		ts = parsed.Local().Format("2006-01-02 15:04:05")
	}

	line := fmt.Sprintf("%s  %-6s  %s", ts, entry.Operation, ui.Key.Sprint(entry.Key))

	switch {
	case entry.Source != "":
		line += " " + ui.Muted.Sprint("from "+displayPath(entry.Source))
	case entry.Destination != "":
		line += " " + ui.Muted.Sprint("to "+displayPath(entry.Destination))
	}

	if entry.User != "" {
		who := entry.User
		if entry.Host != "" {
			who += "@" + entry.Host
		}
		line += "  " + who
	}

	return line
}
