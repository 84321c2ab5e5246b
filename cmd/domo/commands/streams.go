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

// NewStreamsCommand creates the streams command group
func NewStreamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "streams",
		Aliases: []string{"stream"},
		Short:   "Manage Domo streams",
		Long:    "List and inspect streams for high-volume dataset uploads",
	}

	cmd.AddCommand(newStreamsListCommand())
	cmd.AddCommand(newStreamsGetCommand())
	cmd.AddCommand(newStreamsExecutionsCommand())
	cmd.AddCommand(newStreamsDeleteCommand())

	return cmd
}

func newStreamsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			streams, err := client.Streams().List(context.Background(),
				listOptions(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list streams: %w", err)
			}

			handled, err := renderJSONOrYAML(streams, viper.GetString("output"))
			if handled {
				return err
			}

			if len(streams) == 0 {
				fmt.Println("No streams found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Dataset", "Update Method", "Last Execution")

			for _, stream := range streams {
				datasetName := ""
				if stream.Dataset != nil {
					datasetName = stream.Dataset.Name
				}

				lastState := ""
				if stream.LastExecution != nil {
					lastState = stream.LastExecution.CurrentState
				}

				_ = table.Append(strconv.FormatInt(stream.ID, 10),
					datasetName, stream.UpdateMethod, lastState)
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

func newStreamsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get STREAM_ID",
		Short: "Get a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			streamID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stream ID '%s'", args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			stream, err := client.Streams().Get(context.Background(), streamID)
			if err != nil {
				return fmt.Errorf("failed to get stream: %w", err)
			}

			handled, err := renderJSONOrYAML(stream, viper.GetString("output"))
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", strconv.FormatInt(stream.ID, 10))

			if stream.Dataset != nil {
				_ = table.Append("Dataset ID", stream.Dataset.ID)
				_ = table.Append("Dataset Name", stream.Dataset.Name)
			}

			_ = table.Append("Update Method", stream.UpdateMethod)
			_ = table.Append("Created", stream.CreatedAt)
			_ = table.Append("Modified", stream.ModifiedAt)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newStreamsExecutionsCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "executions STREAM_ID",
		Short: "List a stream's executions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			streamID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stream ID '%s'", args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			executions, err := client.Streams().ListExecutions(context.Background(),
				streamID, listOptions(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list executions: %w", err)
			}

			handled, err := renderJSONOrYAML(executions, viper.GetString("output"))
			if handled {
				return err
			}

			if len(executions) == 0 {
				fmt.Println("No executions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "State", "Started", "Ended")

			for _, execution := range executions {
				_ = table.Append(strconv.FormatInt(execution.ID, 10),
					execution.CurrentState, execution.StartedAt, execution.EndedAt)
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

func newStreamsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete STREAM_ID",
		Short: "Delete a stream",
		Long:  "Delete a stream definition, leaving its dataset in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			streamID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stream ID '%s'", args[0])
			}

			if !force {
				fmt.Printf("Really delete stream %d? (y/N): ", streamID)

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

			err = client.Streams().Delete(context.Background(), streamID)
			if err != nil {
				return fmt.Errorf("failed to delete stream: %w", err)
			}

			fmt.Printf("Successfully deleted stream %d\n", streamID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
