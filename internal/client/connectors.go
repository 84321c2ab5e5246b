package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// ConnectorsClient implements domo.ConnectorsClient. Connector runs are
// triggered through the internal data API rather than the public streams
// endpoint.
type ConnectorsClient struct {
	httpClient *internalhttp.Client
}

// NewConnectorsClient creates a new connectors client.
func NewConnectorsClient(httpClient *internalhttp.Client) *ConnectorsClient {
	return &ConnectorsClient{httpClient: httpClient}
}

// Run implements domo.ConnectorsClient.Run, kicking off an execution of
// the connector behind the given stream.
func (c *ConnectorsClient) Run(ctx context.Context, streamID int64) (*domo.StreamExecution, error) {
	path := fmt.Sprintf("/data/v1/streams/%d/executions", streamID)

	resp, err := c.httpClient.Post(ctx, path, map[string]string{"runType": "MANUAL"})
	if err != nil {
		return nil, fmt.Errorf("running connector: %w", err)
	}

	var execution domo.StreamExecution
	if err := decodeJSON(resp, &execution); err != nil {
		return nil, fmt.Errorf("parsing connector execution response: %w", err)
	}

	return &execution, nil
}
