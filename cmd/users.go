package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/pkg/client"
)

var usersListOpts struct {
	query  string
	role   string
	status string
	page   int
	size   int
	sort   string
}

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user"},
	Short:   "Manage admin and staff accounts",
}

var usersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List user accounts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		users, err := cli.ListUsers(cmd.Context(), client.ListUsersOpts{
			Query:  usersListOpts.query,
			Role:   core.Role(usersListOpts.role),
			Status: usersListOpts.status,
			Page:   usersListOpts.page,
			Size:   usersListOpts.size,
			Sort:   usersListOpts.sort,
		})
		if err != nil {
			return logError(err, "failed to list users")
		}

		log.Debug().Msgf("Retrieved %d users", len(users))
		t := newTable(table.Row{"ID", "Email", "Name", "Role", "Active", "Created", "Last Login"})
		for _, u := range users {
			t.AppendRow(userRow(u))
		}
		t.Render()
		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		u, err := cli.GetUser(cmd.Context(), args[0])
		if err != nil {
			return logError(err, fmt.Sprintf("failed to get user %s", args[0]))
		}
		t := newTable(table.Row{"ID", "Email", "Name", "Role", "Active", "Created", "Last Login"})
		t.AppendRow(userRow(*u))
		t.Render()
		return nil
	},
}

func userRow(u core.AdminUser) table.Row {
	active := color.GreenString("yes")
	if !u.IsActive {
		active = color.RedString("no")
	}
	return table.Row{
		u.ID,
		bold(u.Email),
		u.Name,
		u.Role,
		active,
		formatTime(u.CreatedAt.Time),
		formatTimePtr(u.LastLoginAt),
	}
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersGetCmd)

	usersListCmd.Flags().StringVarP(&usersListOpts.query, "query", "q", "", "Search by email or name")
	usersListCmd.Flags().StringVar(&usersListOpts.role, "role", "", "Only users with this role (ADMIN, STAFF, USER)")
	usersListCmd.Flags().StringVar(&usersListOpts.status, "status", "", "Only users with this status")
	usersListCmd.Flags().IntVar(&usersListOpts.page, "page", 0, "Page number")
	usersListCmd.Flags().IntVar(&usersListOpts.size, "size", 0, "Page size")
	usersListCmd.Flags().StringVar(&usersListOpts.sort, "sort", "", "Sort order, e.g. createdAt,desc")
}
