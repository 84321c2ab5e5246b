// Package client wires the transport, token manager, and per-resource
// clients into the full Domo API client.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/domo-community/domo-go/internal/auth"
	"github.com/domo-community/domo-go/internal/constants"
	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// Client implements domo.Client.
type Client struct {
	httpClient   *internalhttp.Client
	tokenManager auth.TokenManager
	authMode     string

	datasets    *DatasetsClient
	users       *UsersClient
	groups      *GroupsClient
	roles       *RolesClient
	pages       *PagesClient
	streams     *StreamsClient
	accounts    *AccountsClient
	search      *SearchClient
	cards       *CardsClient
	activityLog *ActivityLogClient
	alerts      *AlertsClient
	projects    *ProjectsClient
	workflows   *WorkflowsClient
	dataflows   *DataflowsClient
	connectors  *ConnectorsClient
	embed       *EmbedClient
	files       *FilesClient
	s3export    *S3ExportClient
	ai          *AIClient
}

// New builds a client from config. Exactly one authentication mode must
// be configured; developer-token mode wins when both are present.
func New(config *domo.Config) (*Client, error) {
	if config == nil {
		return nil, domo.ErrConfigRequired
	}

	authMode, baseURL, err := resolveMode(config)
	if err != nil {
		return nil, err
	}

	tokenManager := createTokenManager(config, authMode, baseURL)

	opts := buildTransportOptions(config, authMode)

	return newWithTransport(internalhttp.NewClient(baseURL, tokenManager, opts...), tokenManager, authMode), nil
}

func newWithTransport(httpClient *internalhttp.Client, tokenManager auth.TokenManager, authMode string) *Client {
	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		authMode:     authMode,
	}

	client.datasets = NewDatasetsClient(client.httpClient)
	client.users = NewUsersClient(client.httpClient)
	client.groups = NewGroupsClient(client.httpClient)
	client.roles = NewRolesClient(client.httpClient)
	client.pages = NewPagesClient(client.httpClient)
	client.streams = NewStreamsClient(client.httpClient)
	client.accounts = NewAccountsClient(client.httpClient)
	client.search = NewSearchClient(client.httpClient, authMode)
	client.cards = NewCardsClient(client.httpClient)
	client.activityLog = NewActivityLogClient(client.httpClient)
	client.alerts = NewAlertsClient(client.httpClient)
	client.projects = NewProjectsClient(client.httpClient)
	client.workflows = NewWorkflowsClient(client.httpClient)
	client.dataflows = NewDataflowsClient(client.httpClient)
	client.connectors = NewConnectorsClient(client.httpClient)
	client.embed = NewEmbedClient(client.httpClient)
	client.files = NewFilesClient(client.httpClient)
	client.s3export = NewS3ExportClient(client.httpClient)
	client.ai = NewAIClient(client.httpClient)

	return client
}

func resolveMode(config *domo.Config) (string, string, error) {
	if config.DeveloperToken != "" {
		if config.InstanceDomain == "" {
			return "", "", domo.ErrInstanceDomainMissing
		}

		return constants.AuthModeDeveloperToken, instanceBaseURL(config.InstanceDomain), nil
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		host := config.APIHost
		if host == "" {
			host = constants.DefaultAPIHost
		}

		return constants.AuthModeOAuth, hostBaseURL(host), nil
	}

	return "", "", domo.ErrMissingCredentials
}

// instanceBaseURL turns "acme.domo.com" into "https://acme.domo.com/api".
func instanceBaseURL(domain string) string {
	domain = strings.TrimSuffix(domain, "/")
	if !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}

	return domain + "/api"
}

func hostBaseURL(host string) string {
	host = strings.TrimSuffix(host, "/")
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	return host
}

func createTokenManager(config *domo.Config, authMode, baseURL string) auth.TokenManager {
	if authMode == constants.AuthModeDeveloperToken {
		return auth.NewStaticTokenManager(config.DeveloperToken)
	}

	return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		TokenURL:     baseURL + constants.OAuthTokenPath,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Scopes:       config.Scope,
	})
}

func buildTransportOptions(config *domo.Config, authMode string) []internalhttp.Option {
	var opts []internalhttp.Option

	if authMode == constants.AuthModeDeveloperToken {
		opts = append(opts, internalhttp.WithDeveloperToken())
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithHTTPTimeout(config.HTTPTimeout))
	}

	retryMax := config.RetryMax
	if retryMax == 0 {
		retryMax = constants.DefaultRetryMax
	}

	waitMin := config.RetryWaitMin
	if waitMin == 0 {
		waitMin = constants.DefaultRetryWaitMin
	}

	waitMax := config.RetryWaitMax
	if waitMax == 0 {
		waitMax = constants.DefaultRetryWaitMax
	}

	opts = append(opts, internalhttp.WithRetryConfig(retryMax, waitMin, waitMax))

	if config.Cache != nil {
		cache, err := domo.NewCacheFromConfig(config.Cache)
		if err == nil {
			manager := domo.NewCacheManager(cache, config.Cache.Options)
			opts = append(opts, internalhttp.WithCache(manager, config.Cache.Policy))
		}
	}

	return opts
}

// AuthMode implements domo.Client.AuthMode.
func (c *Client) AuthMode() string {
	return c.authMode
}

// GetToken implements domo.Client.GetToken.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", domo.ErrNoTokenManager
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}

	return token, nil
}

// Datasets implements domo.Client.Datasets.
func (c *Client) Datasets() domo.DatasetsClient { return c.datasets }

// Users implements domo.Client.Users.
func (c *Client) Users() domo.UsersClient { return c.users }

// Groups implements domo.Client.Groups.
func (c *Client) Groups() domo.GroupsClient { return c.groups }

// Roles implements domo.Client.Roles.
func (c *Client) Roles() domo.RolesClient { return c.roles }

// Pages implements domo.Client.Pages.
func (c *Client) Pages() domo.PagesClient { return c.pages }

// Streams implements domo.Client.Streams.
func (c *Client) Streams() domo.StreamsClient { return c.streams }

// Accounts implements domo.Client.Accounts.
func (c *Client) Accounts() domo.AccountsClient { return c.accounts }

// Search implements domo.Client.Search.
func (c *Client) Search() domo.SearchClient { return c.search }

// Cards implements domo.Client.Cards.
func (c *Client) Cards() domo.CardsClient { return c.cards }

// ActivityLog implements domo.Client.ActivityLog.
func (c *Client) ActivityLog() domo.ActivityLogClient { return c.activityLog }

// Alerts implements domo.Client.Alerts.
func (c *Client) Alerts() domo.AlertsClient { return c.alerts }

// Projects implements domo.Client.Projects.
func (c *Client) Projects() domo.ProjectsClient { return c.projects }

// Workflows implements domo.Client.Workflows.
func (c *Client) Workflows() domo.WorkflowsClient { return c.workflows }

// Dataflows implements domo.Client.Dataflows.
func (c *Client) Dataflows() domo.DataflowsClient { return c.dataflows }

// Connectors implements domo.Client.Connectors.
func (c *Client) Connectors() domo.ConnectorsClient { return c.connectors }

// Embed implements domo.Client.Embed.
func (c *Client) Embed() domo.EmbedClient { return c.embed }

// Files implements domo.Client.Files.
func (c *Client) Files() domo.FilesClient { return c.files }

// S3Export implements domo.Client.S3Export.
func (c *Client) S3Export() domo.S3ExportClient { return c.s3export }

// AI implements domo.Client.AI.
func (c *Client) AI() domo.AIClient { return c.ai }
