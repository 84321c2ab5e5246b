package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// DataflowsClient implements domo.DataflowsClient.
type DataflowsClient struct {
	httpClient *internalhttp.Client
}

// NewDataflowsClient creates a new dataflows client.
func NewDataflowsClient(httpClient *internalhttp.Client) *DataflowsClient {
	return &DataflowsClient{httpClient: httpClient}
}

// List implements domo.DataflowsClient.List.
func (c *DataflowsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Dataflow, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/dataflows", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing dataflows: %w", err)
	}

	var dataflows []domo.Dataflow
	if err := decodeJSON(resp, &dataflows); err != nil {
		return nil, fmt.Errorf("parsing dataflows list response: %w", err)
	}

	return dataflows, nil
}

// Get implements domo.DataflowsClient.Get.
func (c *DataflowsClient) Get(ctx context.Context, dataflowID int64) (*domo.Dataflow, error) {
	path := fmt.Sprintf("/v1/dataflows/%d", dataflowID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting dataflow: %w", err)
	}

	var dataflow domo.Dataflow
	if err := decodeJSON(resp, &dataflow); err != nil {
		return nil, fmt.Errorf("parsing dataflow response: %w", err)
	}

	return &dataflow, nil
}

// Execute implements domo.DataflowsClient.Execute.
func (c *DataflowsClient) Execute(ctx context.Context, dataflowID int64) (*domo.DataflowExecution, error) {
	path := fmt.Sprintf("/v1/dataflows/%d/executions", dataflowID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("executing dataflow: %w", err)
	}

	var execution domo.DataflowExecution
	if err := decodeJSON(resp, &execution); err != nil {
		return nil, fmt.Errorf("parsing dataflow execution response: %w", err)
	}

	return &execution, nil
}

// GetExecution implements domo.DataflowsClient.GetExecution.
func (c *DataflowsClient) GetExecution(ctx context.Context, dataflowID, executionID int64) (*domo.DataflowExecution, error) {
	path := fmt.Sprintf("/v1/dataflows/%d/executions/%d", dataflowID, executionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting dataflow execution: %w", err)
	}

	var execution domo.DataflowExecution
	if err := decodeJSON(resp, &execution); err != nil {
		return nil, fmt.Errorf("parsing dataflow execution response: %w", err)
	}

	return &execution, nil
}
