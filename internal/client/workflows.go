package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// WorkflowsClient implements domo.WorkflowsClient.
type WorkflowsClient struct {
	httpClient *internalhttp.Client
}

// NewWorkflowsClient creates a new workflows client.
func NewWorkflowsClient(httpClient *internalhttp.Client) *WorkflowsClient {
	return &WorkflowsClient{httpClient: httpClient}
}

// Start implements domo.WorkflowsClient.Start. The message names the
// workflow model and carries its start parameters.
func (c *WorkflowsClient) Start(ctx context.Context, message map[string]interface{}) (*domo.WorkflowInstance, error) {
	resp, err := c.httpClient.Post(ctx, "/workflow/v1/instances/message", message)
	if err != nil {
		return nil, fmt.Errorf("starting workflow: %w", err)
	}

	var instance domo.WorkflowInstance
	if err := decodeJSON(resp, &instance); err != nil {
		return nil, fmt.Errorf("parsing workflow instance response: %w", err)
	}

	return &instance, nil
}

// GetInstance implements domo.WorkflowsClient.GetInstance.
func (c *WorkflowsClient) GetInstance(ctx context.Context, instanceID string) (*domo.WorkflowInstance, error) {
	path := "/workflow/v1/instances/" + instanceID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting workflow instance: %w", err)
	}

	var instance domo.WorkflowInstance
	if err := decodeJSON(resp, &instance); err != nil {
		return nil, fmt.Errorf("parsing workflow instance response: %w", err)
	}

	return &instance, nil
}

// Cancel implements domo.WorkflowsClient.Cancel.
func (c *WorkflowsClient) Cancel(ctx context.Context, instanceID string) error {
	path := "/workflow/v1/instances/" + instanceID + "/cancel"

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("cancelling workflow instance: %w", err)
	}

	return nil
}

// GetPermissions implements domo.WorkflowsClient.GetPermissions.
func (c *WorkflowsClient) GetPermissions(ctx context.Context, modelID int64) ([]map[string]interface{}, error) {
	path := fmt.Sprintf("/workflow/v1/models/%d/permissions", modelID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting workflow permissions: %w", err)
	}

	var permissions []map[string]interface{}
	if err := decodeJSON(resp, &permissions); err != nil {
		return nil, fmt.Errorf("parsing workflow permissions response: %w", err)
	}

	return permissions, nil
}

// SetPermissions implements domo.WorkflowsClient.SetPermissions.
func (c *WorkflowsClient) SetPermissions(ctx context.Context, modelID int64, permissions []map[string]interface{}) error {
	path := fmt.Sprintf("/workflow/v1/models/%d/permissions", modelID)

	_, err := c.httpClient.Put(ctx, path, permissions)
	if err != nil {
		return fmt.Errorf("setting workflow permissions: %w", err)
	}

	return nil
}
