package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

var dashboardRecent int

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Overview of stored items, tags and pickups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}

		var (
			items   []core.Item
			tags    []core.Tag
			pickups []core.PickupLog
		)
		log.Debug().Msg("Fetching dashboard data...")
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() (err error) {
			items, err = cli.ListItems(ctx)
			return err
		})
		g.Go(func() (err error) {
			tags, err = cli.ListTags(ctx)
			return err
		})
		g.Go(func() (err error) {
			pickups, err = cli.PickupLogs(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return logError(err, "failed to load dashboard")
		}

		stats := core.CountByStatus(items)
		pending := 0
		now := time.Now()
		for _, p := range pickups {
			if p.State(now) == "pending" {
				pending++
			}
		}

		fmt.Println(bold("\n── ILFC Dashboard ──"))
		fmt.Printf("  %s:        %d\n", faint("Items"), stats.Total)
		fmt.Printf("  %s:       %s\n", faint("Stored"), color.BlueString("%d", stats.Stored))
		fmt.Printf("  %s:     %s\n", faint("Reserved"), color.YellowString("%d", stats.Reserved))
		fmt.Printf("  %s:        %s\n", faint("Found"), color.GreenString("%d", stats.Found))
		fmt.Printf("  %s:         %d\n", faint("Tags"), len(tags))
		fmt.Printf("  %s:  %d\n\n", faint("Open pickups"), pending)

		recent := core.RecentItems(items, dashboardRecent)
		if len(recent) == 0 {
			log.Info().Msg("no items registered yet")
			return nil
		}
		t := newTable(table.Row{"ID", "Location", "Status", "Tags", "Registered"})
		for _, i := range recent {
			t.AppendRow(itemRow(i))
		}
		t.SetTitle("Recently registered")
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().IntVarP(&dashboardRecent, "recent", "n", 10, "Number of recent items to show")
}
