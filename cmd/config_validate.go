package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/config"
)

var configValidateFile string

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate and print the effective configuration",
	Long: `Without --file the effective configuration (flags, ILFC_* environment,
.ilfc.yaml and defaults) is validated. With --file only that file is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg *config.Config
			err error
		)
		if configValidateFile != "" {
			cfg, err = config.Load(configValidateFile)
			if err == nil {
				err = cfg.Validate()
			}
		} else {
			cfg, err = f.Config()
		}
		if err != nil {
			return fmt.Errorf("%s %w", redCross, err)
		}

		out, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		logSuccess("configuration is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configValidateCmd.Flags().StringVarP(&configValidateFile, "file", "f", "", "Config file to validate")
}
