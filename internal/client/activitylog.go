package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// ActivityLogClient implements domo.ActivityLogClient.
type ActivityLogClient struct {
	httpClient *internalhttp.Client
}

// NewActivityLogClient creates a new activity log client.
func NewActivityLogClient(httpClient *internalhttp.Client) *ActivityLogClient {
	return &ActivityLogClient{httpClient: httpClient}
}

// Query implements domo.ActivityLogClient.Query.
func (c *ActivityLogClient) Query(ctx context.Context, query *domo.ActivityLogQuery) ([]domo.ActivityEntry, error) {
	if query == nil || query.Start <= 0 {
		return nil, &domo.ValidationError{Field: "start", Message: "start time is required"}
	}

	end := query.End
	if end <= 0 {
		end = time.Now().UnixMilli()
	}

	values := url.Values{
		"start": []string{strconv.FormatInt(query.Start, 10)},
		"end":   []string{strconv.FormatInt(end, 10)},
	}

	if query.UserID > 0 {
		values.Set("user", strconv.FormatInt(query.UserID, 10))
	}

	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}

	if query.Offset > 0 {
		values.Set("offset", strconv.Itoa(query.Offset))
	}

	resp, err := c.httpClient.Get(ctx, "/v1/audit", values)
	if err != nil {
		return nil, fmt.Errorf("querying activity log: %w", err)
	}

	var entries []domo.ActivityEntry
	if err := decodeJSON(resp, &entries); err != nil {
		return nil, fmt.Errorf("parsing activity log response: %w", err)
	}

	return entries, nil
}
