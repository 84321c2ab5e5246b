// Package domoclient provides the main entry point for creating Domo API clients
package domoclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/domo-community/domo-go/internal/client"
	"github.com/domo-community/domo-go/pkg/domo"
)

// New creates a new Domo API client from config. Exactly one authentication
// mode must be configured: ClientID/ClientSecret for OAuth against the
// public API, or DeveloperToken/InstanceDomain for the instance API.
// Developer-token mode wins when both are present.
func New(config *domo.Config) (domo.Client, error) {
	if config == nil {
		return nil, domo.ErrConfigRequired
	}

	if config.InstanceDomain != "" {
		config.InstanceDomain = normalizeDomain(config.InstanceDomain)
	}

	domoClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return domoClient, nil
}

// normalizeDomain strips scheme and trailing slash from an instance domain,
// accepting both "acme.domo.com" and "https://acme.domo.com/".
func normalizeDomain(domain string) string {
	domain = strings.TrimSuffix(domain, "/")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")

	return domain
}

// NewFromEnv creates a client from environment variables: DOMO_CLIENT_ID
// and DOMO_CLIENT_SECRET for OAuth mode, or DOMO_DEVELOPER_TOKEN and
// DOMO_HOST for developer-token mode. Developer-token mode wins when both
// sets are present.
func NewFromEnv() (domo.Client, error) {
	config := &domo.Config{
		ClientID:     os.Getenv("DOMO_CLIENT_ID"),
		ClientSecret: os.Getenv("DOMO_CLIENT_SECRET"),
	}

	if token := os.Getenv("DOMO_DEVELOPER_TOKEN"); token != "" {
		config.DeveloperToken = token
		config.InstanceDomain = os.Getenv("DOMO_HOST")
	} else if host := os.Getenv("DOMO_HOST"); host != "" {
		config.APIHost = host
	}

	if scope := os.Getenv("DOMO_SCOPE"); scope != "" {
		config.Scope = strings.Fields(scope)
	}

	return New(config)
}

// NewWithClientCredentials creates a client using the OAuth2
// client_credentials grant against the public API.
func NewWithClientCredentials(clientID, clientSecret string, scopes ...string) (domo.Client, error) {
	return New(&domo.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        scopes,
	})
}

// NewWithDeveloperToken creates a client using a long-lived developer token
// against the instance API.
func NewWithDeveloperToken(instanceDomain, token string) (domo.Client, error) {
	return New(&domo.Config{
		DeveloperToken: token,
		InstanceDomain: instanceDomain,
	})
}
