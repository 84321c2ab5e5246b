package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// CardsClient implements domo.CardsClient.
type CardsClient struct {
	httpClient *internalhttp.Client
}

// NewCardsClient creates a new cards client.
func NewCardsClient(httpClient *internalhttp.Client) *CardsClient {
	return &CardsClient{httpClient: httpClient}
}

// Create implements domo.CardsClient.Create.
func (c *CardsClient) Create(ctx context.Context, request map[string]interface{}) (*domo.Card, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/cards", request)
	if err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}

	var card domo.Card
	if err := decodeJSON(resp, &card); err != nil {
		return nil, fmt.Errorf("parsing card response: %w", err)
	}

	return &card, nil
}

// Get implements domo.CardsClient.Get.
func (c *CardsClient) Get(ctx context.Context, cardID int64) (*domo.Card, error) {
	path := fmt.Sprintf("/v1/cards/%d", cardID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting card: %w", err)
	}

	var card domo.Card
	if err := decodeJSON(resp, &card); err != nil {
		return nil, fmt.Errorf("parsing card response: %w", err)
	}

	return &card, nil
}

// List implements domo.CardsClient.List.
func (c *CardsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Card, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/cards", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	var cards []domo.Card
	if err := decodeJSON(resp, &cards); err != nil {
		return nil, fmt.Errorf("parsing cards list response: %w", err)
	}

	return cards, nil
}

// Update implements domo.CardsClient.Update.
func (c *CardsClient) Update(ctx context.Context, cardID int64, update map[string]interface{}) (*domo.Card, error) {
	path := fmt.Sprintf("/v1/cards/%d", cardID)

	resp, err := c.httpClient.Put(ctx, path, update)
	if err != nil {
		return nil, fmt.Errorf("updating card: %w", err)
	}

	var card domo.Card
	if err := decodeJSON(resp, &card); err != nil {
		return nil, fmt.Errorf("parsing card response: %w", err)
	}

	return &card, nil
}

// Delete implements domo.CardsClient.Delete.
func (c *CardsClient) Delete(ctx context.Context, cardID int64) error {
	path := fmt.Sprintf("/v1/cards/%d", cardID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}

	return nil
}
