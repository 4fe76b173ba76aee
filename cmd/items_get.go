package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

var itemsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show the details of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		item, err := cli.GetItem(cmd.Context(), id)
		if err != nil {
			return logError(err, fmt.Sprintf("failed to get item %d", id))
		}
		printItem(item)
		return nil
	},
}

func printItem(i *core.Item) {
	fmt.Println(bold(fmt.Sprintf("\n── Item #%d ──", i.ID)))
	fmt.Printf("  %s:       %s\n", faint("Status"), statusString(i.Status))
	fmt.Printf("  %s:     %s\n", faint("Location"), orDash(i.Location))
	fmt.Printf("  %s:  %s\n", faint("Description"), orDash(i.Description))
	fmt.Printf("  %s:         %s\n", faint("Tags"), orDash(strings.Join(i.TagNames(), ", ")))
	fmt.Printf("  %s:        %s\n", faint("Photo"), orDash(i.PhotoURL))
	fmt.Printf("  %s:   %s\n", faint("Registered"), formatTime(i.RegisteredAt.Time))
}

func init() {
	itemsCmd.AddCommand(itemsGetCmd)
}
