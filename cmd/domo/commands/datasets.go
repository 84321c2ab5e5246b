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

// NewDatasetsCommand creates the datasets command group
func NewDatasetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "datasets",
		Aliases: []string{"dataset", "ds"},
		Short:   "Manage Domo datasets",
		Long:    "List, inspect, query, import, and export Domo datasets",
	}

	cmd.AddCommand(newDatasetsListCommand())
	cmd.AddCommand(newDatasetsGetCommand())
	cmd.AddCommand(newDatasetsQueryCommand())
	cmd.AddCommand(newDatasetsExportCommand())
	cmd.AddCommand(newDatasetsImportCommand())
	cmd.AddCommand(newDatasetsDeleteCommand())

	return cmd
}

func newDatasetsListCommand() *cobra.Command {
	var (
		limit    int
		offset   int
		nameLike string
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		Long:  "List datasets visible to the authenticated principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := &domo.ListOptions{Limit: limit, Offset: offset, NameLike: nameLike}

			var datasets []domo.Dataset
			if allPages {
				datasets, err = client.Datasets().ListAll(ctx, nil)
			} else {
				datasets, err = client.Datasets().List(ctx, opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list datasets: %w", err)
			}

			handled, err := renderJSONOrYAML(datasets, viper.GetString("output"))
			if handled {
				return err
			}

			if len(datasets) == 0 {
				fmt.Println("No datasets found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Rows", "Columns", "Updated")

			for _, dataset := range datasets {
				_ = table.Append(dataset.ID, dataset.Name,
					strconv.FormatInt(dataset.Rows, 10),
					strconv.Itoa(dataset.Columns), dataset.UpdatedAt)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "page size (max 50)")
	cmd.Flags().IntVar(&offset, "offset", 0, "items to skip")
	cmd.Flags().StringVar(&nameLike, "name-like", "", "filter by name substring")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newDatasetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DATASET_ID",
		Short: "Get a dataset",
		Long:  "Display a dataset's metadata and schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			dataset, err := client.Datasets().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get dataset: %w", err)
			}

			handled, err := renderJSONOrYAML(dataset, viper.GetString("output"))
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", dataset.ID)
			_ = table.Append("Name", dataset.Name)
			_ = table.Append("Description", dataset.Description)
			_ = table.Append("Rows", strconv.FormatInt(dataset.Rows, 10))
			_ = table.Append("Columns", strconv.Itoa(dataset.Columns))

			if dataset.Owner != nil {
				_ = table.Append("Owner", dataset.Owner.Name)
			}

			_ = table.Append("Created", dataset.CreatedAt)
			_ = table.Append("Updated", dataset.UpdatedAt)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newDatasetsQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query DATASET_ID SQL",
		Short: "Run SQL against a dataset",
		Long:  "Execute a SQL query against a dataset and display the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Datasets().Query(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to query dataset: %w", err)
			}

			handled, err := renderJSONOrYAML(result, viper.GetString("output"))
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)

			header := make([]any, len(result.Columns))
			for i, column := range result.Columns {
				header[i] = column
			}

			table.Header(header...)

			for _, row := range result.Rows {
				cells := make([]string, len(row))
				for i, cell := range row {
					cells[i] = fmt.Sprintf("%v", cell)
				}

				_ = table.Append(cells)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newDatasetsExportCommand() *cobra.Command {
	var (
		outputFile    string
		includeHeader bool
	)

	cmd := &cobra.Command{
		Use:   "export DATASET_ID",
		Short: "Export dataset data as CSV",
		Long:  "Export a dataset's data as CSV to stdout or a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if outputFile != "" {
				path, err := client.Datasets().ExportDataToFile(ctx, args[0], outputFile, includeHeader)
				if err != nil {
					return fmt.Errorf("failed to export dataset: %w", err)
				}

				fmt.Printf("Exported dataset to %s\n", path)

				return nil
			}

			data, err := client.Datasets().ExportData(ctx, args[0], includeHeader)
			if err != nil {
				return fmt.Errorf("failed to export dataset: %w", err)
			}

			fmt.Print(data)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "write CSV to file instead of stdout")
	cmd.Flags().BoolVar(&includeHeader, "header", true, "include the header row")

	return cmd
}

func newDatasetsImportCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "import DATASET_ID CSV_FILE",
		Short: "Import CSV data into a dataset",
		Long:  "Import a CSV file (without header row) into a dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			updateMethod := domo.UpdateMethod(method)

			err = client.Datasets().ImportDataFromFile(context.Background(), args[0], args[1], updateMethod)
			if err != nil {
				return fmt.Errorf("failed to import data: %w", err)
			}

			fmt.Printf("Imported %s into dataset %s\n", args[1], args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "REPLACE", "update method (REPLACE or APPEND)")

	return cmd
}

func newDatasetsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete DATASET_ID",
		Short: "Delete a dataset",
		Long:  "Permanently delete a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete dataset '%s'? (y/N): ", args[0])

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

			err = client.Datasets().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete dataset: %w", err)
			}

			fmt.Printf("Successfully deleted dataset '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
