package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// StreamsClient implements domo.StreamsClient.
type StreamsClient struct {
	httpClient *internalhttp.Client
}

// NewStreamsClient creates a new streams client.
func NewStreamsClient(httpClient *internalhttp.Client) *StreamsClient {
	return &StreamsClient{httpClient: httpClient}
}

// Create implements domo.StreamsClient.Create.
func (c *StreamsClient) Create(ctx context.Context, request *domo.StreamRequest) (*domo.Stream, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/streams", request)
	if err != nil {
		return nil, fmt.Errorf("creating stream: %w", err)
	}

	var stream domo.Stream
	if err := decodeJSON(resp, &stream); err != nil {
		return nil, fmt.Errorf("parsing stream response: %w", err)
	}

	return &stream, nil
}

// Get implements domo.StreamsClient.Get.
func (c *StreamsClient) Get(ctx context.Context, streamID int64) (*domo.Stream, error) {
	path := fmt.Sprintf("/v1/streams/%d", streamID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting stream: %w", err)
	}

	var stream domo.Stream
	if err := decodeJSON(resp, &stream); err != nil {
		return nil, fmt.Errorf("parsing stream response: %w", err)
	}

	return &stream, nil
}

// List implements domo.StreamsClient.List.
func (c *StreamsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Stream, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/streams", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing streams: %w", err)
	}

	var streams []domo.Stream
	if err := decodeJSON(resp, &streams); err != nil {
		return nil, fmt.Errorf("parsing streams list response: %w", err)
	}

	return streams, nil
}

// ListAll implements domo.StreamsClient.ListAll.
func (c *StreamsClient) ListAll(ctx context.Context, opts *domo.ListOptions) ([]domo.Stream, error) {
	maxItems := 0
	if opts != nil {
		maxItems = opts.Limit
	}

	return domo.CollectAll(ctx, func(ctx context.Context, limit, offset int) ([]domo.Stream, error) {
		return c.List(ctx, &domo.ListOptions{Limit: limit, Offset: offset})
	}, 0, maxItems)
}

// Update implements domo.StreamsClient.Update.
func (c *StreamsClient) Update(ctx context.Context, streamID int64, request *domo.StreamRequest) (*domo.Stream, error) {
	path := fmt.Sprintf("/v1/streams/%d", streamID)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating stream: %w", err)
	}

	var stream domo.Stream
	if err := decodeJSON(resp, &stream); err != nil {
		return nil, fmt.Errorf("parsing stream response: %w", err)
	}

	return &stream, nil
}

// Delete implements domo.StreamsClient.Delete.
func (c *StreamsClient) Delete(ctx context.Context, streamID int64) error {
	path := fmt.Sprintf("/v1/streams/%d", streamID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting stream: %w", err)
	}

	return nil
}

// CreateExecution implements domo.StreamsClient.CreateExecution.
func (c *StreamsClient) CreateExecution(ctx context.Context, streamID int64) (*domo.StreamExecution, error) {
	path := fmt.Sprintf("/v1/streams/%d/executions", streamID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating stream execution: %w", err)
	}

	var execution domo.StreamExecution
	if err := decodeJSON(resp, &execution); err != nil {
		return nil, fmt.Errorf("parsing stream execution response: %w", err)
	}

	return &execution, nil
}

// ListExecutions implements domo.StreamsClient.ListExecutions.
func (c *StreamsClient) ListExecutions(ctx context.Context, streamID int64, opts *domo.ListOptions) ([]domo.StreamExecution, error) {
	path := fmt.Sprintf("/v1/streams/%d/executions", streamID)

	resp, err := c.httpClient.Get(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing stream executions: %w", err)
	}

	var executions []domo.StreamExecution
	if err := decodeJSON(resp, &executions); err != nil {
		return nil, fmt.Errorf("parsing stream executions response: %w", err)
	}

	return executions, nil
}

// UploadPart implements domo.StreamsClient.UploadPart. Parts are
// gzip-compressed on the wire.
func (c *StreamsClient) UploadPart(ctx context.Context, streamID, executionID int64, partNum int, csvData []byte) error {
	path := fmt.Sprintf("/v1/streams/%d/executions/%d/part/%d", streamID, executionID, partNum)

	_, err := c.httpClient.PutGzipCSV(ctx, path, csvData)
	if err != nil {
		return fmt.Errorf("uploading stream part: %w", err)
	}

	return nil
}

// CommitExecution implements domo.StreamsClient.CommitExecution.
func (c *StreamsClient) CommitExecution(ctx context.Context, streamID, executionID int64) (*domo.StreamExecution, error) {
	path := fmt.Sprintf("/v1/streams/%d/executions/%d/commit", streamID, executionID)

	resp, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("committing stream execution: %w", err)
	}

	var execution domo.StreamExecution
	if err := decodeJSON(resp, &execution); err != nil {
		return nil, fmt.Errorf("parsing stream execution response: %w", err)
	}

	return &execution, nil
}

// AbortExecution implements domo.StreamsClient.AbortExecution.
func (c *StreamsClient) AbortExecution(ctx context.Context, streamID, executionID int64) error {
	path := fmt.Sprintf("/v1/streams/%d/executions/%d/abort", streamID, executionID)

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("aborting stream execution: %w", err)
	}

	return nil
}
