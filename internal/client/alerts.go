package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// AlertsClient implements domo.AlertsClient against the social API.
type AlertsClient struct {
	httpClient *internalhttp.Client
}

// NewAlertsClient creates a new alerts client.
func NewAlertsClient(httpClient *internalhttp.Client) *AlertsClient {
	return &AlertsClient{httpClient: httpClient}
}

// Query implements domo.AlertsClient.Query.
func (c *AlertsClient) Query(ctx context.Context, opts *domo.ListOptions) ([]domo.Alert, error) {
	resp, err := c.httpClient.Get(ctx, "/social/v4/alerts", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}

	var alerts []domo.Alert
	if err := decodeJSON(resp, &alerts); err != nil {
		return nil, fmt.Errorf("parsing alerts response: %w", err)
	}

	return alerts, nil
}

// Get implements domo.AlertsClient.Get.
func (c *AlertsClient) Get(ctx context.Context, alertID int64) (*domo.Alert, error) {
	path := fmt.Sprintf("/social/v4/alerts/%d", alertID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting alert: %w", err)
	}

	var alert domo.Alert
	if err := decodeJSON(resp, &alert); err != nil {
		return nil, fmt.Errorf("parsing alert response: %w", err)
	}

	return &alert, nil
}

// Subscribe implements domo.AlertsClient.Subscribe.
func (c *AlertsClient) Subscribe(ctx context.Context, alertID int64) error {
	path := fmt.Sprintf("/social/v4/alerts/%d/subscriptions", alertID)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("subscribing to alert: %w", err)
	}

	return nil
}

// Unsubscribe implements domo.AlertsClient.Unsubscribe.
func (c *AlertsClient) Unsubscribe(ctx context.Context, alertID int64) error {
	path := fmt.Sprintf("/social/v4/alerts/%d/subscriptions", alertID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("unsubscribing from alert: %w", err)
	}

	return nil
}

// Share implements domo.AlertsClient.Share.
func (c *AlertsClient) Share(ctx context.Context, alertID int64, share map[string]interface{}) error {
	path := fmt.Sprintf("/social/v4/alerts/%d/share", alertID)

	_, err := c.httpClient.Post(ctx, path, share)
	if err != nil {
		return fmt.Errorf("sharing alert: %w", err)
	}

	return nil
}
