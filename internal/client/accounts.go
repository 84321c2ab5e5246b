package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// AccountsClient implements domo.AccountsClient.
type AccountsClient struct {
	httpClient *internalhttp.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *internalhttp.Client) *AccountsClient {
	return &AccountsClient{httpClient: httpClient}
}

// Create implements domo.AccountsClient.Create. The request shape depends
// on the connector type, so it stays an open map.
func (c *AccountsClient) Create(ctx context.Context, request map[string]interface{}) (*domo.Account, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/accounts", request)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	var account domo.Account
	if err := decodeJSON(resp, &account); err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}

// Get implements domo.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*domo.Account, error) {
	path := "/v1/accounts/" + accountID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account domo.Account
	if err := decodeJSON(resp, &account); err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}

// List implements domo.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Account, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/accounts", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	var accounts []domo.Account
	if err := decodeJSON(resp, &accounts); err != nil {
		return nil, fmt.Errorf("parsing accounts list response: %w", err)
	}

	return accounts, nil
}

// ListAll implements domo.AccountsClient.ListAll.
func (c *AccountsClient) ListAll(ctx context.Context, opts *domo.ListOptions) ([]domo.Account, error) {
	maxItems := 0
	if opts != nil {
		maxItems = opts.Limit
	}

	return domo.CollectAll(ctx, func(ctx context.Context, limit, offset int) ([]domo.Account, error) {
		return c.List(ctx, &domo.ListOptions{Limit: limit, Offset: offset})
	}, 0, maxItems)
}

// Update implements domo.AccountsClient.Update.
func (c *AccountsClient) Update(ctx context.Context, accountID string, update map[string]interface{}) (*domo.Account, error) {
	path := "/v1/accounts/" + accountID

	resp, err := c.httpClient.Patch(ctx, path, update)
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	var account domo.Account
	if err := decodeJSON(resp, &account); err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}

// Delete implements domo.AccountsClient.Delete.
func (c *AccountsClient) Delete(ctx context.Context, accountID string) error {
	path := "/v1/accounts/" + accountID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}
