package cmd

import (
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/filter"
)

var pickupsWhere string

var pickupsCmd = &cobra.Command{
	Use:     "pickups",
	Aliases: []string{"pickup"},
	Short:   "Inspect item pickups",
}

var pickupsLogsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "List pickup codes and their state",
	Example: `  ilfc pickups logs --where 'state == "pending"'`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var where *filter.Filter[core.PickupLog]
		if pickupsWhere != "" {
			var err error
			if where, err = filter.CompilePickups(pickupsWhere); err != nil {
				return err
			}
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		logs, err := cli.PickupLogs(cmd.Context())
		if err != nil {
			return logError(err, "failed to list pickup logs")
		}
		if logs, err = where.Apply(logs); err != nil {
			return err
		}
		slices.SortStableFunc(logs, func(a, b core.PickupLog) int {
			return b.GeneratedAt.Compare(a.GeneratedAt.Time)
		})
		log.Debug().Msgf("Retrieved %d pickup logs", len(logs))

		now := time.Now()
		t := newTable(table.Row{"ID", "Code", "State", "User", "Item", "Generated", "Expires", "Cancel Reason"})
		for _, p := range logs {
			t.AppendRow(table.Row{
				p.ID,
				bold(p.Code),
				pickupState(p.State(now)),
				p.UserEmail,
				truncate(p.ItemDescription, 30),
				formatTime(p.GeneratedAt.Time),
				formatTime(p.ExpiresAt.Time),
				orDash(derefString(p.CancelReason)),
			})
		}
		t.Render()
		return nil
	},
}

func pickupState(s string) string {
	switch s {
	case "used":
		return color.GreenString(s)
	case "pending":
		return color.BlueString(s)
	case "cancelled":
		return color.RedString(s)
	}
	return faint(s)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func init() {
	rootCmd.AddCommand(pickupsCmd)
	pickupsCmd.AddCommand(pickupsLogsCmd)
	bindWhereFlag(pickupsLogsCmd.Flags(), &pickupsWhere, "id, code, used, cancelled, state, user_email, item_id, item_description, generated_at, expires_at")
}
