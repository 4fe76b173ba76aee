package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

var (
	itemsRegisterFile string
	itemsRegister     core.ItemRegistration
	itemsCreate       core.ItemCreate
	itemsCreateFile   string
	itemsCreateStatus string
)

var itemsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a found item (admin)",
	Example: `  ilfc items register --photo https://cdn/x.jpg --location "Library 2F" --tag 1 --tag 4
  ilfc items register -f item.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := itemsRegister
		if itemsRegisterFile != "" {
			if err := readPayloadFile(itemsRegisterFile, &payload); err != nil {
				return err
			}
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		item, err := cli.RegisterItem(cmd.Context(), payload)
		if err != nil {
			return logError(err, "failed to register item")
		}
		logSuccess("registered item %s", bold(fmt.Sprint(item.ID)))
		return nil
	},
}

var itemsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an item through the public items endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := itemsCreate
		payload.Status = core.ItemStatus(itemsCreateStatus)
		if itemsCreateFile != "" {
			if err := readPayloadFile(itemsCreateFile, &payload); err != nil {
				return err
			}
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		item, err := cli.CreateItem(cmd.Context(), payload)
		if err != nil {
			return logError(err, "failed to create item")
		}
		log.Debug().Msgf("created item %+v", item)
		logSuccess("created item %s", bold(fmt.Sprint(item.ID)))
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsRegisterCmd)
	itemsCmd.AddCommand(itemsCreateCmd)

	itemsRegisterCmd.Flags().StringVarP(&itemsRegisterFile, "file", "f", "", "YAML payload file")
	itemsRegisterCmd.Flags().StringVar(&itemsRegister.PhotoURL, "photo", "", "Photo URL")
	itemsRegisterCmd.Flags().StringVar(&itemsRegister.Location, "location", "", "Storage location")
	itemsRegisterCmd.Flags().StringVar(&itemsRegister.Description, "description", "", "Description")
	itemsRegisterCmd.Flags().StringVar(&itemsRegister.DeviceName, "device", core.ManualRegisterDevice, "Registering device name")
	itemsRegisterCmd.Flags().IntSliceVar(&itemsRegister.Tags, "tag", nil, "Tag ID (repeatable, at least one)")

	itemsCreateCmd.Flags().StringVarP(&itemsCreateFile, "file", "f", "", "YAML payload file")
	itemsCreateCmd.Flags().StringVar(&itemsCreate.PhotoURL, "photo", "", "Photo URL")
	itemsCreateCmd.Flags().StringVar(&itemsCreate.Location, "location", "", "Storage location")
	itemsCreateCmd.Flags().StringVar(&itemsCreate.Description, "description", "", "Description")
	itemsCreateCmd.Flags().StringVar(&itemsCreateStatus, "status", string(core.ItemStored), "Initial status")
	itemsCreateCmd.Flags().IntSliceVar(&itemsCreate.Tags, "tag", nil, "Tag ID (repeatable)")
}
