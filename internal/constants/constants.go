package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 60 * time.Second

	// ShortHTTPTimeout is used for quick operations such as token exchanges.
	ShortHTTPTimeout = 30 * time.Second

	// SlowRequestThreshold marks requests worth a warning log.
	SlowRequestThreshold = 5 * time.Second
)

// Retry limits and backoff bounds.
const (
	// DefaultRetryMax is the default maximum number of retries for
	// transient failures (network errors and 5xx responses).
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Token lifecycle.
const (
	// TokenExpirationMargin is the safety margin before token expiration at
	// which a cached token is treated as expired and refreshed.
	TokenExpirationMargin = 60 * time.Second

	// JWTPartsCount is the number of dot-separated segments in a JWT.
	JWTPartsCount = 3
)

// Pagination limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 50

	// MaxPageSize is the page-size ceiling enforced by most Domo list
	// endpoints.
	MaxPageSize = 50
)

// Response handling.
const (
	// MaxResponseSize caps decoded response bodies (10MB).
	MaxResponseSize = 10 * 1024 * 1024
)

// Cache defaults.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Output formats.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// Authentication modes.
const (
	// AuthModeOAuth identifies OAuth2 client-credentials authentication.
	AuthModeOAuth = "oauth"

	// AuthModeDeveloperToken identifies developer-token authentication.
	AuthModeDeveloperToken = "developer_token"
)

// API hosts and paths.
const (
	// DefaultAPIHost is the public Domo API host used in OAuth mode.
	DefaultAPIHost = "api.domo.com"

	// OAuthTokenPath is the token exchange endpoint, relative to the base URL.
	OAuthTokenPath = "/oauth/token"
)
