package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// GroupsClient implements domo.GroupsClient.
type GroupsClient struct {
	httpClient *internalhttp.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *internalhttp.Client) *GroupsClient {
	return &GroupsClient{httpClient: httpClient}
}

// Create implements domo.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, request *domo.CreateGroupRequest) (*domo.Group, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/groups", request)
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	var group domo.Group
	if err := decodeJSON(resp, &group); err != nil {
		return nil, fmt.Errorf("parsing group response: %w", err)
	}

	return &group, nil
}

// Get implements domo.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, groupID int64) (*domo.Group, error) {
	path := fmt.Sprintf("/v1/groups/%d", groupID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	var group domo.Group
	if err := decodeJSON(resp, &group); err != nil {
		return nil, fmt.Errorf("parsing group response: %w", err)
	}

	return &group, nil
}

// List implements domo.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Group, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/groups", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var groups []domo.Group
	if err := decodeJSON(resp, &groups); err != nil {
		return nil, fmt.Errorf("parsing groups list response: %w", err)
	}

	return groups, nil
}

// Update implements domo.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, groupID int64, request *domo.CreateGroupRequest) (*domo.Group, error) {
	path := fmt.Sprintf("/v1/groups/%d", groupID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}

	var group domo.Group
	if err := decodeJSON(resp, &group); err != nil {
		return nil, fmt.Errorf("parsing group response: %w", err)
	}

	return &group, nil
}

// Delete implements domo.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID int64) error {
	path := fmt.Sprintf("/v1/groups/%d", groupID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return nil
}

// AddUser implements domo.GroupsClient.AddUser.
func (c *GroupsClient) AddUser(ctx context.Context, groupID, userID int64) error {
	path := fmt.Sprintf("/v1/groups/%d/users/%d", groupID, userID)

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("adding user to group: %w", err)
	}

	return nil
}

// RemoveUser implements domo.GroupsClient.RemoveUser.
func (c *GroupsClient) RemoveUser(ctx context.Context, groupID, userID int64) error {
	path := fmt.Sprintf("/v1/groups/%d/users/%d", groupID, userID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("removing user from group: %w", err)
	}

	return nil
}

// ListUsers implements domo.GroupsClient.ListUsers, returning member user
// IDs.
func (c *GroupsClient) ListUsers(ctx context.Context, groupID int64, opts *domo.ListOptions) ([]int64, error) {
	path := fmt.Sprintf("/v1/groups/%d/users", groupID)

	resp, err := c.httpClient.Get(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing group users: %w", err)
	}

	var userIDs []int64
	if err := decodeJSON(resp, &userIDs); err != nil {
		return nil, fmt.Errorf("parsing group users response: %w", err)
	}

	return userIDs, nil
}
