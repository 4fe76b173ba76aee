package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

var (
	itemsUpdateLocation    string
	itemsUpdateStatus      string
	itemsUpdateDescription string
	itemsUpdatePhoto       string
	itemsUpdateTags        []int
)

var itemsUpdateCmd = &cobra.Command{
	Use:     "update <id>",
	Aliases: []string{"edit"},
	Short:   "Change fields of an item",
	Example: `  ilfc items update 12 --status 찾음`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var patch core.ItemUpdate
		flags := cmd.Flags()
		if !anyChanged(flags, "location", "status", "description", "photo", "tag") {
			return fmt.Errorf("nothing to update")
		}
		if flags.Changed("location") {
			patch.Location = &itemsUpdateLocation
		}
		if flags.Changed("status") {
			s := core.ItemStatus(itemsUpdateStatus)
			patch.Status = &s
		}
		if flags.Changed("description") {
			patch.Description = &itemsUpdateDescription
		}
		if flags.Changed("photo") {
			patch.PhotoURL = &itemsUpdatePhoto
		}
		if flags.Changed("tag") {
			patch.Tags = itemsUpdateTags
		}

		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		item, err := cli.UpdateItem(cmd.Context(), id, patch)
		if err != nil {
			return logError(err, fmt.Sprintf("failed to update item %d", id))
		}
		printItem(item)
		logSuccess("item %d updated", id)
		return nil
	},
}

var itemsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := cli.DeleteItem(cmd.Context(), id); err != nil {
			return logError(err, fmt.Sprintf("failed to delete item %d", id))
		}
		logSuccess("item %d deleted", id)
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsUpdateCmd)
	itemsCmd.AddCommand(itemsDeleteCmd)

	itemsUpdateCmd.Flags().StringVar(&itemsUpdateLocation, "location", "", "Storage location")
	itemsUpdateCmd.Flags().StringVar(&itemsUpdateStatus, "status", "", "Status (보관, 예약, 찾음)")
	itemsUpdateCmd.Flags().StringVar(&itemsUpdateDescription, "description", "", "Description")
	itemsUpdateCmd.Flags().StringVar(&itemsUpdatePhoto, "photo", "", "Photo URL")
	itemsUpdateCmd.Flags().IntSliceVar(&itemsUpdateTags, "tag", nil, "Replace tags with these tag IDs (repeatable)")
}
