package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var (
		count  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search datasets by name",
		Long: `Search datasets matching a query string.

With a developer token the search runs server-side against the instance's
internal search endpoint. With OAuth credentials it falls back to the
public dataset listing filtered by name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			results, err := client.Search().SearchDatasets(context.Background(),
				args[0], count, offset)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			handled, err := renderJSONOrYAML(results, viper.GetString("output"))
			if handled {
				return err
			}

			if len(results) == 0 {
				fmt.Println("No results found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name")

			for _, result := range results {
				_ = table.Append(fmt.Sprintf("%v", result["id"]),
					fmt.Sprintf("%v", result["name"]))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 50, "maximum results")
	cmd.Flags().IntVar(&offset, "offset", 0, "results to skip")

	return cmd
}
