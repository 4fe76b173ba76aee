package cmd

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var whoamiRaw bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Shows whether a session is stored for the configured server and, if the
access token is a JWT, decodes its claims. The token is not verified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient(cmd.Context())
		if err != nil {
			return err
		}
		cred := cli.Session().Credential()
		if cred == nil {
			log.Info().Msgf("%s not logged in to %s", redCross, cli.BaseURL())
			return nil
		}

		fmt.Println(bold("\n── ILFC Session ──"))
		fmt.Printf("  %s:         %s\n", faint("Server"), cli.BaseURL())
		fmt.Printf("  %s:   %s\n", faint("Access token"), truncate(cred.AccessToken, 24))
		refresh := "no (session ends on expiry)"
		if cred.RefreshToken != "" {
			refresh = "yes"
		}
		fmt.Printf("  %s:  %s\n", faint("Refreshable"), refresh)

		token, _, err := jwt.NewParser().ParseUnverified(cred.AccessToken, jwt.MapClaims{})
		if err != nil {
			log.Debug().Err(err).Msg("access token is not a JWT")
			return nil
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return nil
		}

		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			fmt.Printf("  %s:        %s\n", faint("Subject"), sub)
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			remaining := time.Until(exp.Time).Round(time.Second)
			state := fmt.Sprintf("in %v", remaining)
			if remaining <= 0 {
				state = "expired"
			}
			fmt.Printf("  %s:        %s (%s)\n", faint("Expires"), formatTime(exp.Time), state)
		}

		if whoamiRaw {
			log.Info().Msg("Token Claims:")
			log.Info().Msg(spew.Sdump(claims))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolVar(&whoamiRaw, "raw", false, "Dump all token claims")
}
