package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// FilesClient implements domo.FilesClient against the data files API.
type FilesClient struct {
	httpClient *internalhttp.Client
}

// NewFilesClient creates a new files client.
func NewFilesClient(httpClient *internalhttp.Client) *FilesClient {
	return &FilesClient{httpClient: httpClient}
}

// Upload implements domo.FilesClient.Upload, registering a new data file.
func (c *FilesClient) Upload(ctx context.Context, name, description string) (*domo.DataFile, error) {
	query := url.Values{"name": []string{name}}
	if description != "" {
		query.Set("description", description)
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "/data/v1/data-files",
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading data file: %w", err)
	}

	var file domo.DataFile
	if err := decodeJSON(resp, &file); err != nil {
		return nil, fmt.Errorf("parsing data file response: %w", err)
	}

	return &file, nil
}

// Update implements domo.FilesClient.Update, pushing a new revision.
func (c *FilesClient) Update(ctx context.Context, fileID int64, data []byte) (*domo.DataFile, error) {
	path := fmt.Sprintf("/data/v1/data-files/%d", fileID)

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:      http.MethodPut,
		Path:        path,
		RawBody:     data,
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return nil, fmt.Errorf("updating data file: %w", err)
	}

	var file domo.DataFile
	if err := decodeJSON(resp, &file); err != nil {
		return nil, fmt.Errorf("parsing data file response: %w", err)
	}

	return &file, nil
}

// GetDetails implements domo.FilesClient.GetDetails.
func (c *FilesClient) GetDetails(ctx context.Context, fileID int64) (*domo.DataFile, error) {
	path := fmt.Sprintf("/data/v1/data-files/%d/details", fileID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting data file details: %w", err)
	}

	var file domo.DataFile
	if err := decodeJSON(resp, &file); err != nil {
		return nil, fmt.Errorf("parsing data file response: %w", err)
	}

	return &file, nil
}

// Download implements domo.FilesClient.Download. A zero revisionID
// downloads the current revision.
func (c *FilesClient) Download(ctx context.Context, fileID, revisionID int64) ([]byte, error) {
	path := fmt.Sprintf("/data/v1/data-files/%d", fileID)
	if revisionID > 0 {
		path = fmt.Sprintf("/data/v1/data-files/%d/revisions/%d", fileID, revisionID)
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   path,
		Accept: "application/octet-stream",
	})
	if err != nil {
		return nil, fmt.Errorf("downloading data file: %w", err)
	}

	return resp.Body, nil
}

// SetPermissions implements domo.FilesClient.SetPermissions.
func (c *FilesClient) SetPermissions(ctx context.Context, fileID int64, permissions []map[string]interface{}) error {
	path := fmt.Sprintf("/data/v1/data-files/%d/permissions", fileID)

	_, err := c.httpClient.Put(ctx, path, permissions)
	if err != nil {
		return fmt.Errorf("setting data file permissions: %w", err)
	}

	return nil
}
