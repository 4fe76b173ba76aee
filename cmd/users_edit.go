package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

var (
	usersCreateFile   string
	usersCreate       core.UserCreate
	usersCreateRole   string
	usersCreateActive bool

	usersUpdateEmail  string
	usersUpdateName   string
	usersUpdatePhone  string
	usersUpdateRole   string
	usersUpdateActive bool
)

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Example: `  ilfc users create --email staff@ilfc.example.com --name Kim --role STAFF --password ...
  ilfc users create -f user.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := usersCreate
		payload.Role = core.Role(usersCreateRole)
		if cmd.Flags().Changed("active") {
			payload.IsActive = &usersCreateActive
		}
		if usersCreateFile != "" {
			if err := readPayloadFile(usersCreateFile, &payload); err != nil {
				return err
			}
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		u, err := cli.CreateUser(cmd.Context(), payload)
		if err != nil {
			return logError(err, "failed to create user")
		}
		logSuccess("created user %s (id %s)", bold(u.Email), u.ID)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch core.UserUpdate
		flags := cmd.Flags()
		if flags.Changed("email") {
			patch.Email = &usersUpdateEmail
		}
		if flags.Changed("name") {
			patch.Name = &usersUpdateName
		}
		if flags.Changed("phone") {
			patch.Phone = &usersUpdatePhone
		}
		if flags.Changed("role") {
			r := core.Role(usersUpdateRole)
			patch.Role = &r
		}
		if flags.Changed("active") {
			patch.IsActive = &usersUpdateActive
		}
		if patch == (core.UserUpdate{}) {
			return fmt.Errorf("nothing to update")
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		u, err := cli.UpdateUser(cmd.Context(), args[0], patch)
		if err != nil {
			return logError(err, fmt.Sprintf("failed to update user %s", args[0]))
		}
		logSuccess("user %s updated", bold(u.Email))
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a user account",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := cli.DeleteUser(cmd.Context(), args[0]); err != nil {
			return logError(err, fmt.Sprintf("failed to delete user %s", args[0]))
		}
		logSuccess("user %s deleted", args[0])
		return nil
	},
}

var usersResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <id>",
	Short: "Reset the password of a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := cli.ResetPassword(cmd.Context(), args[0])
		if err != nil {
			return logError(err, fmt.Sprintf("failed to reset password of user %s", args[0]))
		}
		logSuccess("password of user %s reset", args[0])
		if res.TempPassword != "" {
			fmt.Printf("  %s:  %s\n", faint("Temporary password"), bold(res.TempPassword))
		}
		if res.ResetToken != "" {
			fmt.Printf("  %s:         %s\n", faint("Reset token"), res.ResetToken)
		}
		if res.ExpiresAt != nil {
			fmt.Printf("  %s:             %s\n", faint("Expires"), formatTime(res.ExpiresAt.Time))
		}
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersCreateCmd, usersUpdateCmd, usersDeleteCmd, usersResetPasswordCmd)

	usersCreateCmd.Flags().StringVarP(&usersCreateFile, "file", "f", "", "YAML payload file")
	usersCreateCmd.Flags().StringVar(&usersCreate.Email, "email", "", "Email")
	usersCreateCmd.Flags().StringVar(&usersCreate.Password, "password", "", "Initial password")
	usersCreateCmd.Flags().StringVar(&usersCreate.Name, "name", "", "Display name")
	usersCreateCmd.Flags().StringVar(&usersCreate.Phone, "phone", "", "Phone number")
	usersCreateCmd.Flags().StringVar(&usersCreateRole, "role", string(core.RoleStaff), "Role (ADMIN, STAFF, USER)")
	usersCreateCmd.Flags().BoolVar(&usersCreateActive, "active", true, "Whether the account is active")

	usersUpdateCmd.Flags().StringVar(&usersUpdateEmail, "email", "", "Email")
	usersUpdateCmd.Flags().StringVar(&usersUpdateName, "name", "", "Display name")
	usersUpdateCmd.Flags().StringVar(&usersUpdatePhone, "phone", "", "Phone number")
	usersUpdateCmd.Flags().StringVar(&usersUpdateRole, "role", "", "Role (ADMIN, STAFF, USER)")
	usersUpdateCmd.Flags().BoolVar(&usersUpdateActive, "active", true, "Whether the account is active")
}
