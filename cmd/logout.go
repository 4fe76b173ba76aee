package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and remove the saved credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient(cmd.Context())
		if err != nil {
			return err
		}
		if !cli.Session().Authenticated() {
			log.Info().Msg("not logged in")
			return nil
		}
		if err := cli.Logout(cmd.Context()); err != nil {
			log.Warn().Err(err).Msg("server-side logout failed")
		}
		logSuccess("logged out from %s", bold(cli.BaseURL()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
