package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/buildinfo"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/config"
	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/logging"
)

// global flags
var userConfig string

var f = NewFactory()

const (
	LogLevelKey   = "log.level"
	LogFormatKey  = "log.format"
	LogNoColorKey = "log.no_color"

	BaseURLKey        = "base_url"
	UseCredentialsKey = "use_credentials"
	TimeoutKey        = "timeout"
	AuthModeKey       = "auth.mode"
	LoginPathKey      = "auth.login_path"
	RefreshPathKey    = "auth.refresh_path"
)

var rootCmd = &cobra.Command{
	Use:   "ilfc",
	Short: fmt.Sprintf("ILFC Admin (version: %s, commit: %s)", buildinfo.Version, buildinfo.CommitHash),
	Long: `ilfc is the administration tool of the ILFC lost-and-found center.
	Staff can review and register found items, manage tags and users,
	control storage lockers and inspect pickup logs.`,
	Version: buildinfo.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, configErr := initConfig()
		logging.Init(logging.Options{
			Level:   viper.GetString(LogLevelKey),
			Format:  viper.GetString(LogFormatKey),
			NoColor: viper.GetBool(LogNoColorKey),
		})
		if configErr != nil { // handle error after logging is initialized
			return configErr
		}
		if configPath != "" {
			log.Debug().Msgf("using config file: %s", configPath)
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		var quiet BeQuietError
		if !errors.As(err, &quiet) {
			log.Error().Err(err).Msg("execution failed")
		}
		os.Exit(1)
	}
}

func init() {
	// setup pre-flag logger
	logging.InitDefault()

	defaults := config.Default()
	viper.SetDefault(TimeoutKey, defaults.Timeout)
	viper.SetDefault(AuthModeKey, defaults.Auth.Mode)
	viper.SetDefault(LoginPathKey, defaults.Auth.LoginPath)
	viper.SetDefault(RefreshPathKey, defaults.Auth.RefreshPath)

	rootCmd.PersistentFlags().StringVar(&userConfig, "user-config", "",
		"User configuration file for default values (default is $HOME/.ilfc.yaml)")

	rootCmd.PersistentFlags().String("log-level", defaults.Log.Level, "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(LogLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("log-format", defaults.Log.Format, "Log format (console, json)")
	_ = viper.BindPFlag(LogFormatKey, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	_ = viper.BindPFlag(LogNoColorKey, rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.PersistentFlags().String("server", defaults.BaseURL, "Base URL of the ILFC API")
	_ = viper.BindPFlag(BaseURLKey, rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.PersistentFlags().Bool("use-credentials", false, "Keep and resend cookies set by the API")
	_ = viper.BindPFlag(UseCredentialsKey, rootCmd.PersistentFlags().Lookup("use-credentials"))

	rootCmd.PersistentFlags().String("auth-mode", defaults.Auth.Mode,
		"Reaction to expired sessions: refresh (silent renewal) or terminal (log in again)")
	_ = viper.BindPFlag(AuthModeKey, rootCmd.PersistentFlags().Lookup("auth-mode"))

	rootCmd.PersistentFlags().Duration("timeout", defaults.Timeout, "HTTP timeout per request")
	_ = viper.BindPFlag(TimeoutKey, rootCmd.PersistentFlags().Lookup("timeout"))

	viper.SetEnvPrefix("ILFC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))

	viper.AutomaticEnv()

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func initConfig() (string, error) {
	// reads in config file and ENV variables if set.
	if userConfig != "" {
		viper.SetConfigFile(userConfig)
	} else {
		// search order: current dir, $HOME, XDG config
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}

		cfgDir, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(cfgDir + "/ilfc")
		}

		viper.SetConfigType("yaml")
		viper.SetConfigName(".ilfc")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundError) {
			return "", err
		}
	} else {
		return viper.ConfigFileUsed(), nil
	}

	return "", nil
}
