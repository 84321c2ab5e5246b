package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/domo-community/domo-go/internal/constants"
	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// SearchClient implements domo.SearchClient. The reachable endpoints
// depend on the authentication mode: the UI search endpoints only accept
// developer tokens, so OAuth clients fall back to public listing with
// name filtering.
type SearchClient struct {
	httpClient *internalhttp.Client
	authMode   string
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *internalhttp.Client, authMode string) *SearchClient {
	return &SearchClient{httpClient: httpClient, authMode: authMode}
}

// Query implements domo.SearchClient.Query.
func (c *SearchClient) Query(ctx context.Context, query *domo.SearchQuery) (*domo.SearchResult, error) {
	resp, err := c.httpClient.Post(ctx, "/search/v1/query", query)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	var result domo.SearchResult
	if err := decodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return &result, nil
}

// SearchDatasets implements domo.SearchClient.SearchDatasets.
func (c *SearchClient) SearchDatasets(ctx context.Context, query string, count, offset int) ([]map[string]interface{}, error) {
	if c.authMode == constants.AuthModeDeveloperToken {
		return c.searchDatasourcesInternal(ctx, query, count, offset)
	}

	return c.searchDatasetsPublic(ctx, query, count, offset)
}

// searchDatasourcesInternal uses the UI datasource search, which ranks by
// relevance and returns richer metadata.
func (c *SearchClient) searchDatasourcesInternal(ctx context.Context, query string, count, offset int) ([]map[string]interface{}, error) {
	body := map[string]interface{}{
		"entities": []string{"DATASET"},
		"filters": []map[string]interface{}{
			{"field": "name_sort", "filterType": "wildcard", "query": "*" + query + "*"},
		},
		"count":  count,
		"offset": offset,
	}

	resp, err := c.httpClient.Post(ctx, "/data/ui/v3/datasources/search", body)
	if err != nil {
		return nil, fmt.Errorf("searching datasources: %w", err)
	}

	var result struct {
		DataSources []map[string]interface{} `json:"dataSources"`
	}

	if err := decodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing datasource search response: %w", err)
	}

	return result.DataSources, nil
}

// searchDatasetsPublic filters the public dataset listing by name.
func (c *SearchClient) searchDatasetsPublic(ctx context.Context, query string, count, offset int) ([]map[string]interface{}, error) {
	values := url.Values{
		"nameLike": []string{query},
		"limit":    []string{strconv.Itoa(count)},
		"offset":   []string{strconv.Itoa(offset)},
	}

	resp, err := c.httpClient.Get(ctx, "/v1/datasets", values)
	if err != nil {
		return nil, fmt.Errorf("searching datasets: %w", err)
	}

	var datasets []map[string]interface{}
	if err := decodeJSON(resp, &datasets); err != nil {
		return nil, fmt.Errorf("parsing dataset search response: %w", err)
	}

	return datasets, nil
}
