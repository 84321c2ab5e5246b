package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domo-community/domo-go/internal/constants"
	"github.com/domo-community/domo-go/pkg/domo"
)

func TestNew_ModeResolution(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, domo.ErrConfigRequired)
	})

	t.Run("no credentials", func(t *testing.T) {
		t.Parallel()

		_, err := New(&domo.Config{})
		require.ErrorIs(t, err, domo.ErrMissingCredentials)
	})

	t.Run("oauth mode", func(t *testing.T) {
		t.Parallel()

		client, err := New(&domo.Config{
			ClientID:     "id",
			ClientSecret: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, constants.AuthModeOAuth, client.AuthMode())
	})

	t.Run("developer token mode", func(t *testing.T) {
		t.Parallel()

		client, err := New(&domo.Config{
			DeveloperToken: "dev-token",
			InstanceDomain: "acme.domo.com",
		})
		require.NoError(t, err)
		assert.Equal(t, constants.AuthModeDeveloperToken, client.AuthMode())
	})

	t.Run("developer token without instance domain", func(t *testing.T) {
		t.Parallel()

		_, err := New(&domo.Config{DeveloperToken: "dev-token"})
		require.ErrorIs(t, err, domo.ErrInstanceDomainMissing)
	})

	t.Run("developer token wins over oauth", func(t *testing.T) {
		t.Parallel()

		client, err := New(&domo.Config{
			ClientID:       "id",
			ClientSecret:   "secret",
			DeveloperToken: "dev-token",
			InstanceDomain: "acme.domo.com",
		})
		require.NoError(t, err)
		assert.Equal(t, constants.AuthModeDeveloperToken, client.AuthMode())
	})
}

func TestBaseURLs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://acme.domo.com/api", instanceBaseURL("acme.domo.com"))
	assert.Equal(t, "https://acme.domo.com/api", instanceBaseURL("https://acme.domo.com/"))
	assert.Equal(t, "https://api.domo.com", hostBaseURL("api.domo.com"))
	assert.Equal(t, "http://localhost:8080", hostBaseURL("http://localhost:8080/"))
}

func TestClient_ResourceAccessors(t *testing.T) {
	t.Parallel()

	client, err := New(&domo.Config{
		ClientID:     "id",
		ClientSecret: "secret",
	})
	require.NoError(t, err)

	assert.NotNil(t, client.Datasets())
	assert.NotNil(t, client.Users())
	assert.NotNil(t, client.Groups())
	assert.NotNil(t, client.Roles())
	assert.NotNil(t, client.Pages())
	assert.NotNil(t, client.Streams())
	assert.NotNil(t, client.Accounts())
	assert.NotNil(t, client.Search())
	assert.NotNil(t, client.Cards())
	assert.NotNil(t, client.ActivityLog())
	assert.NotNil(t, client.Alerts())
	assert.NotNil(t, client.Projects())
	assert.NotNil(t, client.Workflows())
	assert.NotNil(t, client.Dataflows())
	assert.NotNil(t, client.Connectors())
	assert.NotNil(t, client.Embed())
	assert.NotNil(t, client.Files())
	assert.NotNil(t, client.S3Export())
	assert.NotNil(t, client.AI())
}
