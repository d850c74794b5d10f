package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/kpv/internal/ui"
	"github.com/PolarWolf314/kpv/internal/vault"
	"github.com/PolarWolf314/kpv/internal/workflows"
)

var (
	listMatch string
	listLong  bool
)

func init() {
	listCmd.Flags().StringVarP(&listMatch, "match", "m", "", "only list keys matching a glob pattern")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "show size and modification time of each saved .env")
}

func resetListCommandState() {
	listMatch = ""
	listLong = false
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved keys",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		result, err := workflows.List(context.Background(), workflows.ListOptions{
			Pattern: listMatch,
			Details: listLong,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list keys: %w", err)
		}
		warnPreferences(result.PreferencesErr)
		Logger.Debugf("Found %d key(s) in %s", len(result.Keys), result.VaultPath)

		fmt.Println("Saved keys:")
		if len(result.Keys) == 0 {
			fmt.Println(ui.Muted.Sprint("none"))
			return nil
		}

		if listLong {
			fmt.Println(renderKeyTable(result.Details))
			return nil
		}

		for _, key := range result.Keys {
			fmt.Printf("- %s\n", key)
		}
		return nil
	},
}

func renderKeyTable(details []vault.KeyInfo) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Size", "Modified"})

	for _, info := range details {
		if info.Missing {
			t.AppendRow(table.Row{info.Key, "-", ui.Warning.Sprint("no .env stored")})
			continue
		}
		t.AppendRow(table.Row{
			info.Key,
			strconv.FormatInt(info.Size, 10) + " B",
			info.ModTime.Local().Format("2006-01-02 15:04"),
		})
	}

	return t.Render()
}
