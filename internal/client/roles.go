package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// RolesClient implements domo.RolesClient against the authorization API.
type RolesClient struct {
	httpClient *internalhttp.Client
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *internalhttp.Client) *RolesClient {
	return &RolesClient{httpClient: httpClient}
}

// List implements domo.RolesClient.List.
func (c *RolesClient) List(ctx context.Context) ([]domo.Role, error) {
	resp, err := c.httpClient.Get(ctx, "/authorization/v1/roles", nil)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	var roles []domo.Role
	if err := decodeJSON(resp, &roles); err != nil {
		return nil, fmt.Errorf("parsing roles list response: %w", err)
	}

	return roles, nil
}

// Create implements domo.RolesClient.Create.
func (c *RolesClient) Create(ctx context.Context, request *domo.CreateRoleRequest) (*domo.Role, error) {
	resp, err := c.httpClient.Post(ctx, "/authorization/v1/roles", request)
	if err != nil {
		return nil, fmt.Errorf("creating role: %w", err)
	}

	var role domo.Role
	if err := decodeJSON(resp, &role); err != nil {
		return nil, fmt.Errorf("parsing role response: %w", err)
	}

	return &role, nil
}

// Get implements domo.RolesClient.Get.
func (c *RolesClient) Get(ctx context.Context, roleID int64) (*domo.Role, error) {
	path := fmt.Sprintf("/authorization/v1/roles/%d", roleID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting role: %w", err)
	}

	var role domo.Role
	if err := decodeJSON(resp, &role); err != nil {
		return nil, fmt.Errorf("parsing role response: %w", err)
	}

	return &role, nil
}

// Delete implements domo.RolesClient.Delete.
func (c *RolesClient) Delete(ctx context.Context, roleID int64) error {
	path := fmt.Sprintf("/authorization/v1/roles/%d", roleID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}

	return nil
}

// ListAuthorities implements domo.RolesClient.ListAuthorities.
func (c *RolesClient) ListAuthorities(ctx context.Context, roleID int64) ([]domo.Authority, error) {
	path := fmt.Sprintf("/authorization/v1/roles/%d/authorities", roleID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing role authorities: %w", err)
	}

	var authorities []domo.Authority
	if err := decodeJSON(resp, &authorities); err != nil {
		return nil, fmt.Errorf("parsing role authorities response: %w", err)
	}

	return authorities, nil
}

// UpdateAuthorities implements domo.RolesClient.UpdateAuthorities.
func (c *RolesClient) UpdateAuthorities(ctx context.Context, roleID int64, authorities []domo.Authority) ([]domo.Authority, error) {
	path := fmt.Sprintf("/authorization/v1/roles/%d/authorities", roleID)

	resp, err := c.httpClient.Patch(ctx, path, authorities)
	if err != nil {
		return nil, fmt.Errorf("updating role authorities: %w", err)
	}

	var updated []domo.Authority
	if err := decodeJSON(resp, &updated); err != nil {
		return nil, fmt.Errorf("parsing role authorities response: %w", err)
	}

	return updated, nil
}
