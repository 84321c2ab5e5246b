package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domo-community/domo-go/pkg/domo"
)

func TestSearchQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/v1/query", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var query domo.SearchQuery

		err := json.NewDecoder(r.Body).Decode(&query)
		require.NoError(t, err)
		assert.Equal(t, "sales", query.Query)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalResultCount":1,"searchObjects":[{"entityType":"dataset"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Search().Query(context.Background(), &domo.SearchQuery{
		Query:       "sales",
		EntityTypes: []string{"dataset"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TotalResultCount)
	require.Len(t, result.SearchObjects, 1)
}

func TestSearchDatasets_DeveloperToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/ui/v3/datasources/search", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)

		filters, ok := body["filters"].([]interface{})
		require.True(t, ok)
		require.Len(t, filters, 1)

		filter, ok := filters[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "*sales*", filter["query"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dataSources":[{"id":"abc-123","name":"sales"}]}`))
	}))
	defer server.Close()

	client := newTestClientDevToken(server.URL)

	results, err := client.Search().SearchDatasets(context.Background(), "sales", 10, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc-123", results[0]["id"])
}

func TestSearchDatasets_OAuthFallsBackToPublicListing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/datasets", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "sales", r.URL.Query().Get("nameLike"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"abc-123","name":"sales"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	results, err := client.Search().SearchDatasets(context.Background(), "sales", 10, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "sales", results[0]["name"])
}
