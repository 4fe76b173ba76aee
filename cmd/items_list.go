package cmd

import (
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/filter"
)

var (
	itemsListStatus string
	itemsListSearch string
	itemsListWhere  string
	itemsListOldest bool
)

var itemsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List found items",
	Example: `  ilfc items list --status 보관 --search library
  ilfc items list --where 'status == "보관" && age > duration("168h")'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status := core.ItemStatus(itemsListStatus)
		if status != "" && !status.Valid() {
			return fmt.Errorf("unknown status '%s' (one of %v)", itemsListStatus, core.ItemStatuses)
		}

		var where *filter.Filter[core.Item]
		if itemsListWhere != "" {
			var err error
			if where, err = filter.CompileItems(itemsListWhere); err != nil {
				return err
			}
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}

		log.Debug().Msg("Retrieving items...")
		items, err := cli.ListItems(cmd.Context())
		if err != nil {
			return logError(err, "failed to list items")
		}

		items = core.SearchItems(items, status, itemsListSearch)
		if items, err = where.Apply(items); err != nil {
			return err
		}
		items = core.RecentItems(items, -1)
		if itemsListOldest {
			slices.Reverse(items)
		}

		t := newTable(table.Row{"ID", "Location", "Status", "Tags", "Registered"})
		for _, i := range items {
			t.AppendRow(itemRow(i))
		}
		stats := core.CountByStatus(items)
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d items", stats.Total),
			fmt.Sprintf("%s %d / %s %d / %s %d",
				core.ItemStored, stats.Stored, core.ItemReserved, stats.Reserved, core.ItemFound, stats.Found),
			"", ""})
		t.Render()
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)

	itemsListCmd.Flags().StringVarP(&itemsListStatus, "status", "s", "", "Only items with this status (보관, 예약, 찾음)")
	itemsListCmd.Flags().StringVarP(&itemsListSearch, "search", "q", "", "Search location and tag names")
	bindWhereFlag(itemsListCmd.Flags(), &itemsListWhere, "id, location, status, description, tags, registered_at, age")
	itemsListCmd.Flags().BoolVar(&itemsListOldest, "oldest-first", false, "Sort by registration date ascending")
}
