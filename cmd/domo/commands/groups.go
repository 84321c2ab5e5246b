package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewGroupsCommand creates the groups command group
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage Domo groups",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsMembersCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			groups, err := client.Groups().List(context.Background(),
				listOptions(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			handled, err := renderJSONOrYAML(groups, viper.GetString("output"))
			if handled {
				return err
			}

			if len(groups) == 0 {
				fmt.Println("No groups found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Active", "Members")

			for _, group := range groups {
				_ = table.Append(strconv.FormatInt(group.ID, 10), group.Name,
					strconv.FormatBool(group.Active),
					strconv.Itoa(group.MemberCount))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "page size (max 50)")
	cmd.Flags().IntVar(&offset, "offset", 0, "items to skip")

	return cmd
}

func newGroupsMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "members GROUP_ID",
		Short: "List a group's member user IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid group ID '%s'", args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			userIDs, err := client.Groups().ListUsers(context.Background(), groupID, nil)
			if err != nil {
				return fmt.Errorf("failed to list group members: %w", err)
			}

			handled, err := renderJSONOrYAML(userIDs, viper.GetString("output"))
			if handled {
				return err
			}

			if len(userIDs) == 0 {
				fmt.Println("No members found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("User ID")

			for _, userID := range userIDs {
				_ = table.Append(strconv.FormatInt(userID, 10))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
