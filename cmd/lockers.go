package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/pkg/client"
)

var (
	lockerCode string

	lockerLogsID     string
	lockerLogsSince  time.Duration
	lockerLogsResult string
	lockerLogsPage   int
	lockerLogsSize   int
)

var lockersCmd = &cobra.Command{
	Use:     "lockers",
	Aliases: []string{"locker"},
	Short:   "Control storage lockers",
}

var lockersStatusCmd = &cobra.Command{
	Use:   "status <locker-id>",
	Short: "Show the door and sensor status of a locker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		st, err := cli.LockerStatus(cmd.Context(), args[0])
		if err != nil {
			return logError(err, fmt.Sprintf("failed to get status of locker %s", args[0]))
		}

		door := color.GreenString(string(st.Door))
		if st.Door == core.DoorOpen {
			door = color.YellowString(string(st.Door))
		}
		fmt.Println(bold("\n── Locker " + args[0] + " ──"))
		fmt.Printf("  %s:         %s\n", faint("Door"), door)
		fmt.Printf("  %s:  %s\n", faint("Last opened"), formatTimePtr(st.LastOpenedAt))
		if st.Battery != nil {
			fmt.Printf("  %s:      %.0f%%\n", faint("Battery"), *st.Battery)
		}
		if st.Temperature != nil {
			fmt.Printf("  %s:  %.1f°C\n", faint("Temperature"), *st.Temperature)
		}
		return nil
	},
}

var lockersOpenCmd = &cobra.Command{
	Use:   "open <locker-id>",
	Short: "Open a locker with a pickup code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := cli.OpenLocker(cmd.Context(), args[0], lockerCode)
		if err != nil {
			return logError(err, fmt.Sprintf("failed to open locker %s", args[0]))
		}
		if res.Result != core.OpenResultOpened {
			log.Error().Msgf("%s locker %s did not open: %s", redCross, args[0], res.Result)
			return BeQuietError{}
		}
		logSuccess("locker %s opened at %s", bold(args[0]), formatTimePtr(res.OpenedAt))
		return nil
	},
}

var lockersValidateCmd = &cobra.Command{
	Use:   "validate <locker-id>",
	Short: "Check a pickup code without opening the locker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := cli.ValidateLockerCode(cmd.Context(), args[0], lockerCode)
		if err != nil {
			return logError(err, fmt.Sprintf("failed to validate code for locker %s", args[0]))
		}
		if !res.Valid {
			log.Warn().Msgf("%s code is not valid for locker %s", redCross, args[0])
			return nil
		}
		logSuccess("code is valid for item %s (expires %s)", orDash(res.ItemID), formatTimePtr(res.ExpiresAt))
		return nil
	},
}

var lockersLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List locker open attempts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := client.LockerLogsOpts{
			LockerID: lockerLogsID,
			Result:   core.OpenResult(lockerLogsResult),
			Page:     lockerLogsPage,
			Size:     lockerLogsSize,
		}
		if lockerLogsSince > 0 {
			opts.From = time.Now().Add(-lockerLogsSince)
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		logs, err := cli.LockerOpenLogs(cmd.Context(), opts)
		if err != nil {
			return logError(err, "failed to list locker logs")
		}

		t := newTable(table.Row{"Time", "Locker", "Result", "Actor", "IP"})
		for _, l := range logs {
			result := color.RedString(string(l.Result))
			if l.Result == core.OpenResultOpened {
				result = color.GreenString(string(l.Result))
			}
			t.AppendRow(table.Row{
				formatTime(l.OccurredAt.Time),
				l.LockerID,
				result,
				orDash(l.ActorID),
				orDash(l.IP),
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lockersCmd)
	lockersCmd.AddCommand(lockersStatusCmd, lockersOpenCmd, lockersValidateCmd, lockersLogsCmd)

	for _, c := range []*cobra.Command{lockersOpenCmd, lockersValidateCmd} {
		c.Flags().StringVarP(&lockerCode, "code", "c", "", "Pickup code")
		_ = c.MarkFlagRequired("code")
	}

	lockersLogsCmd.Flags().StringVar(&lockerLogsID, "locker", "", "Only logs of this locker")
	lockersLogsCmd.Flags().DurationVar(&lockerLogsSince, "since", 0, "Only logs newer than this, e.g. 24h")
	lockersLogsCmd.Flags().StringVar(&lockerLogsResult, "result", "", "Only this result (OPENED, INVALID_CODE, LOCKED, HARDWARE_ERROR)")
	lockersLogsCmd.Flags().IntVar(&lockerLogsPage, "page", 0, "Page number")
	lockersLogsCmd.Flags().IntVarP(&lockerLogsSize, "limit", "n", 50, "Page size")
}
