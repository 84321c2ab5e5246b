package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// PagesClient implements domo.PagesClient.
type PagesClient struct {
	httpClient *internalhttp.Client
}

// NewPagesClient creates a new pages client.
func NewPagesClient(httpClient *internalhttp.Client) *PagesClient {
	return &PagesClient{httpClient: httpClient}
}

// Create implements domo.PagesClient.Create.
func (c *PagesClient) Create(ctx context.Context, request *domo.PageRequest) (*domo.Page, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/pages", request)
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	var page domo.Page
	if err := decodeJSON(resp, &page); err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}

// Get implements domo.PagesClient.Get.
func (c *PagesClient) Get(ctx context.Context, pageID int64) (*domo.Page, error) {
	path := fmt.Sprintf("/v1/pages/%d", pageID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting page: %w", err)
	}

	var page domo.Page
	if err := decodeJSON(resp, &page); err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}

// List implements domo.PagesClient.List.
func (c *PagesClient) List(ctx context.Context) ([]domo.Page, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/pages", nil)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	var pages []domo.Page
	if err := decodeJSON(resp, &pages); err != nil {
		return nil, fmt.Errorf("parsing pages list response: %w", err)
	}

	return pages, nil
}

// Update implements domo.PagesClient.Update.
func (c *PagesClient) Update(ctx context.Context, pageID int64, request *domo.PageRequest) (*domo.Page, error) {
	path := fmt.Sprintf("/v1/pages/%d", pageID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating page: %w", err)
	}

	var page domo.Page
	if err := decodeJSON(resp, &page); err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}

// Delete implements domo.PagesClient.Delete.
func (c *PagesClient) Delete(ctx context.Context, pageID int64) error {
	path := fmt.Sprintf("/v1/pages/%d", pageID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting page: %w", err)
	}

	return nil
}

// ListCollections implements domo.PagesClient.ListCollections.
func (c *PagesClient) ListCollections(ctx context.Context, pageID int64) ([]domo.PageCollection, error) {
	path := fmt.Sprintf("/v1/pages/%d/collections", pageID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing page collections: %w", err)
	}

	var collections []domo.PageCollection
	if err := decodeJSON(resp, &collections); err != nil {
		return nil, fmt.Errorf("parsing page collections response: %w", err)
	}

	return collections, nil
}

// CreateCollection implements domo.PagesClient.CreateCollection.
func (c *PagesClient) CreateCollection(ctx context.Context, pageID int64, request *domo.PageCollectionRequest) (*domo.PageCollection, error) {
	path := fmt.Sprintf("/v1/pages/%d/collections", pageID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating page collection: %w", err)
	}

	var collection domo.PageCollection
	if err := decodeJSON(resp, &collection); err != nil {
		return nil, fmt.Errorf("parsing page collection response: %w", err)
	}

	return &collection, nil
}

// UpdateCollection implements domo.PagesClient.UpdateCollection.
func (c *PagesClient) UpdateCollection(ctx context.Context, pageID, collectionID int64, request *domo.PageCollectionRequest) (*domo.PageCollection, error) {
	path := fmt.Sprintf("/v1/pages/%d/collections/%d", pageID, collectionID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating page collection: %w", err)
	}

	var collection domo.PageCollection
	if err := decodeJSON(resp, &collection); err != nil {
		return nil, fmt.Errorf("parsing page collection response: %w", err)
	}

	return &collection, nil
}

// DeleteCollection implements domo.PagesClient.DeleteCollection.
func (c *PagesClient) DeleteCollection(ctx context.Context, pageID, collectionID int64) error {
	path := fmt.Sprintf("/v1/pages/%d/collections/%d", pageID, collectionID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting page collection: %w", err)
	}

	return nil
}
