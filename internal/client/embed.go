package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// EmbedClient implements domo.EmbedClient.
type EmbedClient struct {
	httpClient *internalhttp.Client
}

// NewEmbedClient creates a new embed client.
func NewEmbedClient(httpClient *internalhttp.Client) *EmbedClient {
	return &EmbedClient{httpClient: httpClient}
}

// CreateCardToken implements domo.EmbedClient.CreateCardToken.
func (c *EmbedClient) CreateCardToken(ctx context.Context, cardID int64, options map[string]interface{}) (*domo.EmbedToken, error) {
	return c.createToken(ctx, "cards", cardID, options)
}

// CreateDashboardToken implements domo.EmbedClient.CreateDashboardToken.
func (c *EmbedClient) CreateDashboardToken(ctx context.Context, dashboardID int64, options map[string]interface{}) (*domo.EmbedToken, error) {
	return c.createToken(ctx, "pages", dashboardID, options)
}

func (c *EmbedClient) createToken(ctx context.Context, kind string, id int64, options map[string]interface{}) (*domo.EmbedToken, error) {
	path := fmt.Sprintf("/v1/%s/embed/auth", kind)

	body := map[string]interface{}{
		"sessionLength": 1440,
		"authorizations": []map[string]interface{}{
			{"token": id, "permissions": []string{"READ", "FILTER", "EXPORT"}},
		},
	}

	for key, value := range options {
		body[key] = value
	}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating embed token: %w", err)
	}

	var token domo.EmbedToken
	if err := decodeJSON(resp, &token); err != nil {
		return nil, fmt.Errorf("parsing embed token response: %w", err)
	}

	return &token, nil
}
