package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

var itemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"item"},
	Short:   "Manage found items",
	Long:    `List, inspect, register, edit and delete found items. Requires an authenticated session (ilfc login).`,
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}

func statusString(s core.ItemStatus) string {
	switch s {
	case core.ItemStored:
		return color.BlueString(string(s))
	case core.ItemReserved:
		return color.YellowString(string(s))
	case core.ItemFound:
		return color.GreenString(string(s))
	}
	return string(s)
}

func itemRow(i core.Item) table.Row {
	return table.Row{
		bold(i.ID),
		truncate(i.Location, 30),
		statusString(i.Status),
		truncate(strings.Join(i.TagNames(), ", "), 30),
		formatTime(i.RegisteredAt.Time),
	}
}
