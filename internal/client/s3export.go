package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// S3ExportClient implements domo.S3ExportClient.
type S3ExportClient struct {
	httpClient *internalhttp.Client
}

// NewS3ExportClient creates a new S3 export client.
func NewS3ExportClient(httpClient *internalhttp.Client) *S3ExportClient {
	return &S3ExportClient{httpClient: httpClient}
}

// StartExport implements domo.S3ExportClient.StartExport. The config
// carries the S3 bucket, credentials reference, and output format.
func (c *S3ExportClient) StartExport(ctx context.Context, datasetID string, config map[string]interface{}) (*domo.ExportStatus, error) {
	path := "/query/v1/export/" + datasetID

	resp, err := c.httpClient.Post(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("starting S3 export: %w", err)
	}

	var status domo.ExportStatus
	if err := decodeJSON(resp, &status); err != nil {
		return nil, fmt.Errorf("parsing export status response: %w", err)
	}

	return &status, nil
}

// GetExportStatus implements domo.S3ExportClient.GetExportStatus.
func (c *S3ExportClient) GetExportStatus(ctx context.Context, datasetID string) (*domo.ExportStatus, error) {
	path := "/query/v1/export/" + datasetID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting S3 export status: %w", err)
	}

	var status domo.ExportStatus
	if err := decodeJSON(resp, &status); err != nil {
		return nil, fmt.Errorf("parsing export status response: %w", err)
	}

	return &status, nil
}
