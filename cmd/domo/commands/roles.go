package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRolesCommand creates the roles command group
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Manage Domo roles",
	}

	cmd.AddCommand(newRolesListCommand())
	cmd.AddCommand(newRolesAuthoritiesCommand())

	return cmd
}

func newRolesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			roles, err := client.Roles().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list roles: %w", err)
			}

			handled, err := renderJSONOrYAML(roles, viper.GetString("output"))
			if handled {
				return err
			}

			if len(roles) == 0 {
				fmt.Println("No roles found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Description")

			for _, role := range roles {
				_ = table.Append(strconv.FormatInt(role.ID, 10),
					role.Name, role.Description)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newRolesAuthoritiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "authorities ROLE_ID",
		Short: "List a role's authorities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roleID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid role ID '%s'", args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			authorities, err := client.Roles().ListAuthorities(context.Background(), roleID)
			if err != nil {
				return fmt.Errorf("failed to list authorities: %w", err)
			}

			handled, err := renderJSONOrYAML(authorities, viper.GetString("output"))
			if handled {
				return err
			}

			if len(authorities) == 0 {
				fmt.Println("No authorities found")

				return nil
			}

			names := make([]string, 0, len(authorities))
			for _, authority := range authorities {
				names = append(names, authority.Name)
			}

			fmt.Println(strings.Join(names, "\n"))

			return nil
		},
	}
}
