package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domo-community/domo-go/pkg/domo"
)

func TestDatasetsCreate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var request domo.DatasetRequest

		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		assert.Equal(t, "sales", request.Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domo.Dataset{
			ID:   "abc-123",
			Name: request.Name,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	dataset, err := client.Datasets().Create(context.Background(), &domo.DatasetRequest{
		Name: "sales",
		Schema: &domo.Schema{Columns: []domo.Column{
			{Type: "STRING", Name: "region"},
			{Type: "DOUBLE", Name: "amount"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc-123", dataset.ID)
	assert.Equal(t, "sales", dataset.Name)
}

func TestDatasetsGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets/abc-123", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domo.Dataset{ID: "abc-123", Name: "sales", Rows: 42})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	dataset, err := client.Datasets().Get(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), dataset.Rows)
}

func TestDatasetsGet_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not Found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Datasets().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domo.IsNotFound(err))
}

func TestDatasetsList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domo.Dataset{{ID: "a"}, {ID: "b"}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	datasets, err := client.Datasets().List(context.Background(), &domo.ListOptions{Limit: 10, Offset: 20})
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	assert.Equal(t, "a", datasets[0].ID)
}

func TestDatasetsListAll_Pagination(t *testing.T) {
	t.Parallel()

	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		w.Header().Set("Content-Type", "application/json")

		// Full first page, short second page.
		if r.URL.Query().Get("offset") == "0" {
			page := make([]domo.Dataset, 50)
			for i := range page {
				page[i] = domo.Dataset{ID: "first"}
			}

			_ = json.NewEncoder(w).Encode(page)

			return
		}

		_ = json.NewEncoder(w).Encode([]domo.Dataset{{ID: "last"}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	datasets, err := client.Datasets().ListAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, datasets, 51)
	assert.Equal(t, 2, requests)
	assert.Equal(t, "last", datasets[50].ID)
}

func TestDatasetsDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets/abc-123", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.Datasets().Delete(context.Background(), "abc-123")
	require.NoError(t, err)
}

func TestDatasetsImportData(t *testing.T) {
	t.Parallel()

	csvData := "east,100\nwest,200\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets/abc-123/data", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "APPEND", r.URL.Query().Get("updateMethod"))
		assert.Equal(t, "text/csv", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, csvData, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.Datasets().ImportData(context.Background(), "abc-123", []byte(csvData), domo.UpdateMethodAppend)
	require.NoError(t, err)
}

func TestDatasetsImportData_DefaultsToReplace(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "REPLACE", r.URL.Query().Get("updateMethod"))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.Datasets().ImportData(context.Background(), "abc-123", []byte("a,1\n"), "")
	require.NoError(t, err)
}

func TestDatasetsExportData(t *testing.T) {
	t.Parallel()

	csvData := "region,amount\neast,100\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets/abc-123/data", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("includeHeader"))
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvData))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	data, err := client.Datasets().ExportData(context.Background(), "abc-123", true)
	require.NoError(t, err)
	assert.Equal(t, csvData, data)
}

func TestDatasetsExportDataToFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("a,1\n"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	path := filepath.Join(t.TempDir(), "export.csv")

	written, err := client.Datasets().ExportDataToFile(context.Background(), "abc-123", path, false)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,1\n", string(content))
}

func TestDatasetsQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets/query/execute/abc-123", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "SELECT region FROM table", body["sql"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domo.QueryResult{
			Columns: []string{"region"},
			Rows:    [][]interface{}{{"east"}, {"west"}},
			NumRows: 2,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Datasets().Query(context.Background(), "abc-123", "SELECT region FROM table")
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.NumRows)
	require.Len(t, result.Rows, 2)
}

func TestDatasetsGetMetadata(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v3/datasources/abc-123", r.URL.Path)
		assert.Equal(t, "core", r.URL.Query().Get("part"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc-123","rowCount":42}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	metadata, err := client.Datasets().GetMetadata(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.InEpsilon(t, float64(42), metadata["rowCount"], 0.001)
}

func TestDatasetsGetSchema(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v2/datasources/abc-123/schemas/latest", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domo.Schema{Columns: []domo.Column{
			{Type: "STRING", Name: "region"},
			{Type: "LONG", Name: "amount"},
		}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	schema, err := client.Datasets().GetSchema(context.Background(), "abc-123")
	require.NoError(t, err)
	require.Len(t, schema.Columns, 2)
	assert.Equal(t, "region", schema.Columns[0].Name)
}

func TestDatasetsAlterSchema(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v2/datasources/abc-123/schemas", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var schema domo.Schema

		require.NoError(t, json.NewDecoder(r.Body).Decode(&schema))
		require.Len(t, schema.Columns, 1)
		assert.Equal(t, "region", schema.Columns[0].Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(schema)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	schema, err := client.Datasets().AlterSchema(context.Background(), "abc-123",
		&domo.Schema{Columns: []domo.Column{{Type: "STRING", Name: "region"}}})
	require.NoError(t, err)
	require.Len(t, schema.Columns, 1)
}

func TestDatasetsListVersions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v3/datasources/abc-123/dataversions/details", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domo.DataVersion{{VersionID: 3, RecordCount: 42}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	versions, err := client.Datasets().ListVersions(context.Background(), "abc-123")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, int64(3), versions[0].VersionID)
}

func TestDatasetsPolicies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost:
			assert.Equal(t, "/v1/datasets/abc-123/policies", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":7,"name":"east only"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/datasets/abc-123/policies":
			_, _ = w.Write([]byte(`[{"id":7}]`))
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/v1/datasets/abc-123/policies/7", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			assert.Equal(t, "/v1/datasets/abc-123/policies/7", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":7,"name":"east only"}`))
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	created, err := client.Datasets().CreatePolicy(context.Background(), "abc-123", &domo.Policy{Name: "east only"})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)

	policies, err := client.Datasets().ListPolicies(context.Background(), "abc-123")
	require.NoError(t, err)
	require.Len(t, policies, 1)

	policy, err := client.Datasets().GetPolicy(context.Background(), "abc-123", 7)
	require.NoError(t, err)
	assert.Equal(t, "east only", policy.Name)

	err = client.Datasets().DeletePolicy(context.Background(), "abc-123", 7)
	require.NoError(t, err)
}
