package client

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domo-community/domo-go/pkg/domo"
)

func TestStreamsCreate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/streams", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var request domo.StreamRequest

		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		assert.Equal(t, domo.UpdateMethodAppend, request.UpdateMethod)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domo.Stream{
			ID:           5,
			UpdateMethod: "APPEND",
			Dataset:      &domo.Dataset{ID: "abc-123"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	stream, err := client.Streams().Create(context.Background(), &domo.StreamRequest{
		Dataset:      &domo.DatasetRequest{Name: "sales"},
		UpdateMethod: domo.UpdateMethodAppend,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), stream.ID)
	assert.Equal(t, "abc-123", stream.Dataset.ID)
}

func TestStreamsUpdate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/streams/5", r.URL.Path)
		assert.Equal(t, http.MethodPatch, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"updateMethod":"REPLACE"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	stream, err := client.Streams().Update(context.Background(), 5, &domo.StreamRequest{
		UpdateMethod: domo.UpdateMethodReplace,
	})
	require.NoError(t, err)
	assert.Equal(t, "REPLACE", stream.UpdateMethod)
}

func TestStreamsUploadPart_Gzip(t *testing.T) {
	t.Parallel()

	csvData := "east,100\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/streams/5/executions/9/part/1", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "gzip", r.Header.Get("Content-Encoding"))

		gzReader, err := gzip.NewReader(r.Body)
		require.NoError(t, err)

		body, err := io.ReadAll(gzReader)
		require.NoError(t, err)
		assert.Equal(t, csvData, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.Streams().UploadPart(context.Background(), 5, 9, 1, []byte(csvData))
	require.NoError(t, err)
}

func TestStreamsExecutionLifecycle(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/streams/5/executions":
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"id":9,"currentState":"ACTIVE"}`))
		case "/v1/streams/5/executions/9/commit":
			assert.Equal(t, http.MethodPut, r.Method)
			_, _ = w.Write([]byte(`{"id":9,"currentState":"SUCCESS"}`))
		case "/v1/streams/5/executions/9/abort":
			assert.Equal(t, http.MethodPut, r.Method)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	execution, err := client.Streams().CreateExecution(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(9), execution.ID)
	assert.Equal(t, "ACTIVE", execution.CurrentState)

	committed, err := client.Streams().CommitExecution(context.Background(), 5, 9)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", committed.CurrentState)

	err = client.Streams().AbortExecution(context.Background(), 5, 9)
	require.NoError(t, err)
}
