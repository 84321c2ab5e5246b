package client

import (
	"context"
	"fmt"
	"strconv"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// UsersClient implements domo.UsersClient.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Create implements domo.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *domo.CreateUserRequest, sendInvite bool) (*domo.User, error) {
	path := "/v1/users?sendInvite=" + strconv.FormatBool(sendInvite)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user domo.User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Get implements domo.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int64) (*domo.User, error) {
	path := fmt.Sprintf("/v1/users/%d", userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user domo.User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// List implements domo.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.User, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/users", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []domo.User
	if err := decodeJSON(resp, &users); err != nil {
		return nil, fmt.Errorf("parsing users list response: %w", err)
	}

	return users, nil
}

// ListAll implements domo.UsersClient.ListAll.
func (c *UsersClient) ListAll(ctx context.Context, opts *domo.ListOptions) ([]domo.User, error) {
	maxItems := 0
	if opts != nil {
		maxItems = opts.Limit
	}

	return domo.CollectAll(ctx, func(ctx context.Context, limit, offset int) ([]domo.User, error) {
		return c.List(ctx, &domo.ListOptions{Limit: limit, Offset: offset})
	}, 0, maxItems)
}

// Update implements domo.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, userID int64, request *domo.CreateUserRequest) (*domo.User, error) {
	path := fmt.Sprintf("/v1/users/%d", userID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user domo.User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Delete implements domo.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/v1/users/%d", userID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}
