package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/buildinfo"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about the ILFC Admin installation",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Msg("Showing local build info...")
		info := buildinfo.GetBuildInfo()
		printInfo(&info)

		cfg, err := f.Config()
		if err != nil {
			return err
		}
		fmt.Printf("  %s:     %s\n", faint("Server"), cfg.BaseURL)
		fmt.Printf("  %s:  %s\n", faint("Auth mode"), cfg.Auth.Mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(info *buildinfo.Info) {
	fmt.Println(bold("\n── " + info.Service + " Build Information ──"))
	fmt.Printf("  %s:    %s\n", faint("Version"), info.Version)
	fmt.Printf("  %s:     %s\n", faint("Commit"), info.CommitHash)
}
