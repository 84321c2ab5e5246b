package client

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// DatasetsClient implements domo.DatasetsClient.
type DatasetsClient struct {
	httpClient *internalhttp.Client
}

// NewDatasetsClient creates a new datasets client.
func NewDatasetsClient(httpClient *internalhttp.Client) *DatasetsClient {
	return &DatasetsClient{httpClient: httpClient}
}

// Create implements domo.DatasetsClient.Create.
func (c *DatasetsClient) Create(ctx context.Context, request *domo.DatasetRequest) (*domo.Dataset, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/datasets", request)
	if err != nil {
		return nil, fmt.Errorf("creating dataset: %w", err)
	}

	var dataset domo.Dataset
	if err := decodeJSON(resp, &dataset); err != nil {
		return nil, fmt.Errorf("parsing dataset response: %w", err)
	}

	return &dataset, nil
}

// Get implements domo.DatasetsClient.Get.
func (c *DatasetsClient) Get(ctx context.Context, datasetID string) (*domo.Dataset, error) {
	path := "/v1/datasets/" + datasetID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting dataset: %w", err)
	}

	var dataset domo.Dataset
	if err := decodeJSON(resp, &dataset); err != nil {
		return nil, fmt.Errorf("parsing dataset response: %w", err)
	}

	return &dataset, nil
}

// List implements domo.DatasetsClient.List.
func (c *DatasetsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Dataset, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/datasets", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}

	var datasets []domo.Dataset
	if err := decodeJSON(resp, &datasets); err != nil {
		return nil, fmt.Errorf("parsing datasets list response: %w", err)
	}

	return datasets, nil
}

// ListAll implements domo.DatasetsClient.ListAll, walking every page.
// opts.Limit caps the total number of results when set.
func (c *DatasetsClient) ListAll(ctx context.Context, opts *domo.ListOptions) ([]domo.Dataset, error) {
	maxItems := 0
	if opts != nil {
		maxItems = opts.Limit
	}

	return domo.CollectAll(ctx, func(ctx context.Context, limit, offset int) ([]domo.Dataset, error) {
		return c.List(ctx, &domo.ListOptions{Limit: limit, Offset: offset})
	}, 0, maxItems)
}

// Update implements domo.DatasetsClient.Update.
func (c *DatasetsClient) Update(ctx context.Context, datasetID string, request *domo.DatasetRequest) (*domo.Dataset, error) {
	path := "/v1/datasets/" + datasetID

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating dataset: %w", err)
	}

	var dataset domo.Dataset
	if err := decodeJSON(resp, &dataset); err != nil {
		return nil, fmt.Errorf("parsing dataset response: %w", err)
	}

	return &dataset, nil
}

// Delete implements domo.DatasetsClient.Delete.
func (c *DatasetsClient) Delete(ctx context.Context, datasetID string) error {
	path := "/v1/datasets/" + datasetID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}

	return nil
}

// ImportData implements domo.DatasetsClient.ImportData. The CSV must not
// include a header row.
func (c *DatasetsClient) ImportData(ctx context.Context, datasetID string, csvData []byte, method domo.UpdateMethod) error {
	if method == "" {
		method = domo.UpdateMethodReplace
	}

	path := "/v1/datasets/" + datasetID + "/data?updateMethod=" + string(method)

	_, err := c.httpClient.PutCSV(ctx, path, csvData)
	if err != nil {
		return fmt.Errorf("importing dataset data: %w", err)
	}

	return nil
}

// ImportDataFromFile implements domo.DatasetsClient.ImportDataFromFile.
func (c *DatasetsClient) ImportDataFromFile(ctx context.Context, datasetID, path string, method domo.UpdateMethod) error {
	csvData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading CSV file: %w", err)
	}

	return c.ImportData(ctx, datasetID, csvData, method)
}

// ExportData implements domo.DatasetsClient.ExportData.
func (c *DatasetsClient) ExportData(ctx context.Context, datasetID string, includeHeader bool) (string, error) {
	path := "/v1/datasets/" + datasetID + "/data"
	query := url.Values{"includeHeader": []string{strconv.FormatBool(includeHeader)}}

	resp, err := c.httpClient.GetCSV(ctx, path, query)
	if err != nil {
		return "", fmt.Errorf("exporting dataset data: %w", err)
	}

	return string(resp.Body), nil
}

// ExportDataToFile implements domo.DatasetsClient.ExportDataToFile. It
// returns the path written.
func (c *DatasetsClient) ExportDataToFile(ctx context.Context, datasetID, path string, includeHeader bool) (string, error) {
	data, err := c.ExportData(ctx, datasetID, includeHeader)
	if err != nil {
		return "", err
	}

	err = os.WriteFile(path, []byte(data), 0o600)
	if err != nil {
		return "", fmt.Errorf("writing CSV file: %w", err)
	}

	return path, nil
}

// Query implements domo.DatasetsClient.Query, running SQL against the
// dataset.
func (c *DatasetsClient) Query(ctx context.Context, datasetID, sql string) (*domo.QueryResult, error) {
	path := "/v1/datasets/query/execute/" + datasetID

	resp, err := c.httpClient.Post(ctx, path, map[string]string{"sql": sql})
	if err != nil {
		return nil, fmt.Errorf("querying dataset: %w", err)
	}

	var result domo.QueryResult
	if err := decodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}

	return &result, nil
}

// GetSchema implements domo.DatasetsClient.GetSchema using the internal
// v2 endpoint, which returns the latest schema revision.
func (c *DatasetsClient) GetSchema(ctx context.Context, datasetID string) (*domo.Schema, error) {
	path := "/data/v2/datasources/" + datasetID + "/schemas/latest"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting dataset schema: %w", err)
	}

	var schema domo.Schema
	if err := decodeJSON(resp, &schema); err != nil {
		return nil, fmt.Errorf("parsing dataset schema response: %w", err)
	}

	return &schema, nil
}

// AlterSchema implements domo.DatasetsClient.AlterSchema, posting a new
// schema revision.
func (c *DatasetsClient) AlterSchema(ctx context.Context, datasetID string, schema *domo.Schema) (*domo.Schema, error) {
	path := "/data/v2/datasources/" + datasetID + "/schemas"

	resp, err := c.httpClient.Post(ctx, path, schema)
	if err != nil {
		return nil, fmt.Errorf("altering dataset schema: %w", err)
	}

	var updated domo.Schema
	if err := decodeJSON(resp, &updated); err != nil {
		return nil, fmt.Errorf("parsing dataset schema response: %w", err)
	}

	return &updated, nil
}

// GetMetadata implements domo.DatasetsClient.GetMetadata using the
// internal v3 endpoint, which carries fields the public API omits.
func (c *DatasetsClient) GetMetadata(ctx context.Context, datasetID string) (map[string]interface{}, error) {
	path := "/data/v3/datasources/" + datasetID

	resp, err := c.httpClient.Get(ctx, path, url.Values{"part": []string{"core"}})
	if err != nil {
		return nil, fmt.Errorf("getting dataset metadata: %w", err)
	}

	var metadata map[string]interface{}
	if err := decodeJSON(resp, &metadata); err != nil {
		return nil, fmt.Errorf("parsing dataset metadata response: %w", err)
	}

	return metadata, nil
}

// GetPermissions implements domo.DatasetsClient.GetPermissions.
func (c *DatasetsClient) GetPermissions(ctx context.Context, datasetID string) ([]domo.DatasetPermission, error) {
	path := "/data/v3/datasources/" + datasetID + "/permissions"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting dataset permissions: %w", err)
	}

	var permissions []domo.DatasetPermission
	if err := decodeJSON(resp, &permissions); err != nil {
		return nil, fmt.Errorf("parsing dataset permissions response: %w", err)
	}

	return permissions, nil
}

// SetPermissions implements domo.DatasetsClient.SetPermissions.
func (c *DatasetsClient) SetPermissions(ctx context.Context, datasetID string, permissions []domo.DatasetPermission) error {
	path := "/data/v3/datasources/" + datasetID + "/permissions"

	_, err := c.httpClient.Put(ctx, path, permissions)
	if err != nil {
		return fmt.Errorf("setting dataset permissions: %w", err)
	}

	return nil
}

// ListVersions implements domo.DatasetsClient.ListVersions.
func (c *DatasetsClient) ListVersions(ctx context.Context, datasetID string) ([]domo.DataVersion, error) {
	path := "/data/v3/datasources/" + datasetID + "/dataversions/details"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing dataset versions: %w", err)
	}

	var versions []domo.DataVersion
	if err := decodeJSON(resp, &versions); err != nil {
		return nil, fmt.Errorf("parsing dataset versions response: %w", err)
	}

	return versions, nil
}

// CreateIndex implements domo.DatasetsClient.CreateIndex.
func (c *DatasetsClient) CreateIndex(ctx context.Context, datasetID string, columns []string) (map[string]interface{}, error) {
	path := "/data/v3/datasources/" + datasetID + "/indexes"

	resp, err := c.httpClient.Post(ctx, path, columns)
	if err != nil {
		return nil, fmt.Errorf("creating dataset index: %w", err)
	}

	var result map[string]interface{}
	if err := decodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing dataset index response: %w", err)
	}

	return result, nil
}

// CreatePolicy implements domo.DatasetsClient.CreatePolicy.
func (c *DatasetsClient) CreatePolicy(ctx context.Context, datasetID string, policy *domo.Policy) (*domo.Policy, error) {
	path := "/v1/datasets/" + datasetID + "/policies"

	resp, err := c.httpClient.Post(ctx, path, policy)
	if err != nil {
		return nil, fmt.Errorf("creating PDP policy: %w", err)
	}

	var created domo.Policy
	if err := decodeJSON(resp, &created); err != nil {
		return nil, fmt.Errorf("parsing PDP policy response: %w", err)
	}

	return &created, nil
}

// GetPolicy implements domo.DatasetsClient.GetPolicy.
func (c *DatasetsClient) GetPolicy(ctx context.Context, datasetID string, policyID int) (*domo.Policy, error) {
	path := fmt.Sprintf("/v1/datasets/%s/policies/%d", datasetID, policyID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting PDP policy: %w", err)
	}

	var policy domo.Policy
	if err := decodeJSON(resp, &policy); err != nil {
		return nil, fmt.Errorf("parsing PDP policy response: %w", err)
	}

	return &policy, nil
}

// ListPolicies implements domo.DatasetsClient.ListPolicies.
func (c *DatasetsClient) ListPolicies(ctx context.Context, datasetID string) ([]domo.Policy, error) {
	path := "/v1/datasets/" + datasetID + "/policies"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing PDP policies: %w", err)
	}

	var policies []domo.Policy
	if err := decodeJSON(resp, &policies); err != nil {
		return nil, fmt.Errorf("parsing PDP policies response: %w", err)
	}

	return policies, nil
}

// UpdatePolicy implements domo.DatasetsClient.UpdatePolicy.
func (c *DatasetsClient) UpdatePolicy(ctx context.Context, datasetID string, policyID int, policy *domo.Policy) (*domo.Policy, error) {
	path := fmt.Sprintf("/v1/datasets/%s/policies/%d", datasetID, policyID)

	resp, err := c.httpClient.Put(ctx, path, policy)
	if err != nil {
		return nil, fmt.Errorf("updating PDP policy: %w", err)
	}

	var updated domo.Policy
	if err := decodeJSON(resp, &updated); err != nil {
		return nil, fmt.Errorf("parsing PDP policy response: %w", err)
	}

	return &updated, nil
}

// DeletePolicy implements domo.DatasetsClient.DeletePolicy.
func (c *DatasetsClient) DeletePolicy(ctx context.Context, datasetID string, policyID int) error {
	path := fmt.Sprintf("/v1/datasets/%s/policies/%d", datasetID, policyID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting PDP policy: %w", err)
	}

	return nil
}
