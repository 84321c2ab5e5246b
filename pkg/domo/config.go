package domo

import (
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a domo.Client.
//
// # Authentication modes
//
// Exactly one mode must be configured:
//
//  1. ClientID/ClientSecret: OAuth2 client_credentials grant against the
//     public API (api.domo.com). Access tokens are exchanged and refreshed
//     automatically before expiry.
//  2. DeveloperToken + InstanceDomain: long-lived developer token sent on
//     every request against the instance domain
//     (https://<instance>.domo.com/api). No token exchange is performed.
//     Developer tokens grant access to internal UI endpoints (search,
//     extended dataset operations) that OAuth tokens cannot reach.
//
// When both are present, developer-token mode wins.
//
// # Timeouts and retries
//
// Per-request deadlines are controlled by the context passed to client
// methods; HTTPTimeout is the outer transport default. Transient failures
// (network errors, 5xx) are retried with exponential backoff, tunable via
// RetryMax/RetryWaitMin/RetryWaitMax. Rate limits (429) are never retried
// internally; they surface as *RateLimitError carrying the server's
// Retry-After hint.
type Config struct {
	// ClientID: OAuth2 client ID for the client_credentials grant.
	ClientID string
	// ClientSecret: OAuth2 client secret used with ClientID.
	ClientSecret string
	// Scope: optional OAuth2 scopes requested during the token exchange
	// (e.g. "data", "user", "audit").
	Scope []string
	// APIHost: host for the public API in OAuth mode. Defaults to
	// api.domo.com.
	APIHost string

	// DeveloperToken: long-lived developer token. Requires InstanceDomain.
	DeveloperToken string
	// InstanceDomain: instance-specific domain, e.g. "acme.domo.com".
	InstanceDomain string

	// HTTPTimeout: default transport timeout. Zero means 60s.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. Zero
	// means the default (3); negative disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Cache: optional response cache configuration for GET requests.
	Cache *CacheConfig
}
