package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail         string
	loginPassword      string
	loginPasswordStdin bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the ILFC API",
	Long: `Logs in with an admin account. The session token is saved locally
(~/.ilfc/config.json, one entry per server) so later commands stay authenticated.`,
	Example: `  ilfc login --email admin@ilfc.example.com
  echo "$PASSWORD" | ilfc login --email admin@ilfc.example.com --password-stdin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginEmail == "" {
			return fmt.Errorf("must provide --email")
		}
		password, err := readPassword()
		if err != nil {
			return err
		}

		cli, err := f.GetClient(cmd.Context())
		if err != nil {
			return err
		}

		log.Info().Msgf("Logging in to %s...", cli.BaseURL())
		cred, err := cli.Login(cmd.Context(), loginEmail, password)
		if err != nil {
			if cred != nil {
				return logError(err, "login succeeded but could not save credentials")
			}
			return logError(err, "failed to log in")
		}

		if cred.RefreshToken == "" {
			log.Debug().Msg("server issued no refresh token, session ends when the access token expires")
		}
		logSuccess("logged in as %s", bold(loginEmail))
		return nil
	},
}

func readPassword() (string, error) {
	if loginPassword != "" {
		return loginPassword, nil
	}
	if loginPasswordStdin {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no terminal to prompt for the password, use --password-stdin")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prefer the prompt or --password-stdin)")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")

	_ = loginCmd.MarkFlagRequired("email")
}
