package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domo-community/domo-go/pkg/domo"
)

func TestNewDatasetsCommand(t *testing.T) {
	cmd := NewDatasetsCommand()
	assert.Equal(t, "datasets", cmd.Use)
	assert.Equal(t, []string{"dataset", "ds"}, cmd.Aliases)
	assert.Equal(t, "Manage Domo datasets", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 6)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "query")
	assert.Contains(t, commandNames, "export")
	assert.Contains(t, commandNames, "import")
	assert.Contains(t, commandNames, "delete")
}

func TestDatasetsListCommandFlags(t *testing.T) {
	cmd := newDatasetsListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("limit"))
	assert.NotNil(t, cmd.Flags().Lookup("offset"))
	assert.NotNil(t, cmd.Flags().Lookup("name-like"))
	assert.NotNil(t, cmd.Flags().Lookup("all"))
}

func TestDatasetsExportCommandFlags(t *testing.T) {
	cmd := newDatasetsExportCommand()
	assert.Equal(t, "export DATASET_ID", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	assert.NotNil(t, cmd.Flags().Lookup("file"))
	assert.NotNil(t, cmd.Flags().Lookup("header"))
}

func TestDatasetsListCommandRendersJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/oauth/token" {
			_, _ = w.Write([]byte(`{"access_token":"test-token","expires_in":3600}`))

			return
		}

		assert.Equal(t, "/v1/datasets", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domo.Dataset{
			{ID: "abc-123", Name: "Sales", Rows: 42, Columns: 3},
		})
	}))
	defer server.Close()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("client_id", "test-client")
	viper.Set("client_secret", "test-secret")
	viper.Set("host", server.URL)
	viper.Set("output", "json")

	listCmd := findSubcommand(NewDatasetsCommand(), "list")
	require.NotNil(t, listCmd)

	out, err := captureStdout(t, func() error {
		return listCmd.RunE(listCmd, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "abc-123"`)
	assert.Contains(t, out, `"name": "Sales"`)
}
