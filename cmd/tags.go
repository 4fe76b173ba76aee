package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

var tagsCmd = &cobra.Command{
	Use:     "tags",
	Aliases: []string{"tag"},
	Short:   "Manage item tags",
}

var tagsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all tags",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		tags, err := cli.ListTags(cmd.Context())
		if err != nil {
			return logError(err, "failed to list tags")
		}
		slices.SortFunc(tags, func(a, b core.Tag) int {
			return strings.Compare(a.Name, b.Name)
		})

		t := newTable(table.Row{"ID", "Name"})
		for _, tag := range tags {
			t.AppendRow(table.Row{tag.ID, bold(tag.Name)})
		}
		t.Render()
		return nil
	},
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		tag, err := cli.CreateTag(cmd.Context(), args[0])
		if err != nil {
			return logError(err, "failed to create tag")
		}
		logSuccess("created tag %s (id %d)", bold(tag.Name), tag.ID)
		return nil
	},
}

var tagsRenameCmd = &cobra.Command{
	Use:     "rename <id> <name>",
	Aliases: []string{"update"},
	Short:   "Rename a tag",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cli, err := f.GetAuthedClient(cmd.Context())
		if err != nil {
			return err
		}
		tag, err := cli.UpdateTag(cmd.Context(), id, args[1])
		if err != nil {
			return logError(err, fmt.Sprintf("failed to rename tag %d", id))
		}
		logSuccess("tag %d is now %s", tag.ID, bold(tag.Name))
		return nil
	},
}

var tagsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a tag",
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
		if err := cli.DeleteTag(cmd.Context(), id); err != nil {
			return logError(err, fmt.Sprintf("failed to delete tag %d", id))
		}
		logSuccess("tag %d deleted", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd, tagsCreateCmd, tagsRenameCmd, tagsDeleteCmd)
}
