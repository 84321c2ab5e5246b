package commands

import (
	"io"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domo-community/domo-go/pkg/domo"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what was written.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	original := os.Stdout

	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = writer

	defer func() { os.Stdout = original }()

	fnErr := fn()

	require.NoError(t, writer.Close())

	out, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(out), fnErr
}

func TestCreateClient(t *testing.T) {
	t.Run("developer token wins over OAuth credentials", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		viper.Set("client_id", "test-client")
		viper.Set("client_secret", "test-secret")
		viper.Set("developer_token", "test-token")
		viper.Set("host", "acme.domo.com")

		client, err := CreateClient()
		require.NoError(t, err)
		assert.Equal(t, "developer_token", client.AuthMode())
	})

	t.Run("OAuth credentials", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		viper.Set("client_id", "test-client")
		viper.Set("client_secret", "test-secret")

		client, err := CreateClient()
		require.NoError(t, err)
		assert.Equal(t, "oauth", client.AuthMode())
	})

	t.Run("no credentials", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		_, err := CreateClient()
		require.Error(t, err)
		assert.ErrorIs(t, err, domo.ErrMissingCredentials)
	})
}

func TestRenderJSONOrYAML(t *testing.T) {
	data := map[string]string{"name": "sales"}

	t.Run("json", func(t *testing.T) {
		var handled bool

		out, err := captureStdout(t, func() error {
			var renderErr error

			handled, renderErr = renderJSONOrYAML(data, OutputFormatJSON)

			return renderErr
		})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, out, `"name": "sales"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var handled bool

		out, err := captureStdout(t, func() error {
			var renderErr error

			handled, renderErr = renderJSONOrYAML(data, OutputFormatYAML)

			return renderErr
		})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, out, "name: sales")
	})

	t.Run("table falls through", func(t *testing.T) {
		var handled bool

		out, err := captureStdout(t, func() error {
			var renderErr error

			handled, renderErr = renderJSONOrYAML(data, "table")

			return renderErr
		})
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Empty(t, out)
	})
}
