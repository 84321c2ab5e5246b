package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/domo-community/domo-go/pkg/domo"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage Domo users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		limit    int
		offset   int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var users []domo.User
			if allPages {
				users, err = client.Users().ListAll(ctx, nil)
			} else {
				users, err = client.Users().List(ctx, listOptions(limit, offset))
			}

			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			handled, err := renderJSONOrYAML(users, viper.GetString("output"))
			if handled {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Email", "Role")

			for _, user := range users {
				_ = table.Append(strconv.FormatInt(user.ID, 10),
					user.Name, user.Email, user.Role)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "page size (max 50)")
	cmd.Flags().IntVar(&offset, "offset", 0, "items to skip")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID '%s'", args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			handled, err := renderJSONOrYAML(user, viper.GetString("output"))
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", strconv.FormatInt(user.ID, 10))
			_ = table.Append("Name", user.Name)
			_ = table.Append("Email", user.Email)
			_ = table.Append("Role", user.Role)
			_ = table.Append("Title", user.Title)
			_ = table.Append("Created", user.CreatedAt)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newUsersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID '%s'", args[0])
			}

			if !force {
				fmt.Printf("Really delete user %d? (y/N): ", userID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Users().Delete(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Printf("Successfully deleted user %d\n", userID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
