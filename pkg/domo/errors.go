package domo

import (
	"errors"
	"fmt"
	"time"
)

// AuthError indicates an authentication or authorization failure, either
// during the OAuth token exchange or on a resource request (HTTP 401/403).
type AuthError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("authentication failed (HTTP %d): %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("authentication failed (HTTP %d)", e.StatusCode)
}

// NotFoundError indicates the requested resource does not exist (HTTP 404).
type NotFoundError struct {
	URL string `json:"url" yaml:"url"`
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "not found: " + e.URL
}

// RateLimitError indicates the request was rejected with HTTP 429.
// RetryAfter carries the server-suggested wait, zero when the header was
// absent. The client never waits on the caller's behalf; deciding whether
// to honor RetryAfter is up to the caller.
type RateLimitError struct {
	RetryAfter time.Duration `json:"retry_after" yaml:"retry_after"`
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
	}

	return "rate limit exceeded"
}

// APIError is the catch-all for API failures that have no dedicated type:
// any remaining 4xx, 5xx responses that exhausted retries, and 2xx
// responses whose body could not be decoded.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("API error (HTTP %d)", e.StatusCode)
}

// TimeoutError indicates the request exceeded its deadline.
type TimeoutError struct {
	URL     string        `json:"url"     yaml:"url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("request to %s timed out after %s", e.URL, e.Timeout)
	}

	return "request to " + e.URL + " timed out"
}

// ConnectionError indicates a network-level failure reaching the API.
type ConnectionError struct {
	URL string `json:"url" yaml:"url"`
	Err error  `json:"-"   yaml:"-"`
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connection error for %s: %v", e.URL, e.Err)
	}

	return "connection error for " + e.URL
}

// Unwrap exposes the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a client-side validation failure before any
// request was sent, such as missing credentials or an out-of-range page
// size.
type ValidationError struct {
	Field   string `json:"field"   yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %q: %s", e.Field, e.Message)
	}

	return "validation error: " + e.Message
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrMissingCredentials    = errors.New("missing credentials: provide either (developer token + instance domain) or (client ID + client secret)")
	ErrInstanceDomainMissing = errors.New("instance domain is required for developer-token authentication")
	ErrNoTokenManager        = errors.New("no token manager configured")
	ErrStaticTokenRefresh    = errors.New("developer token cannot be refreshed")
	ErrNoCredentialsForGrant = errors.New("no valid credentials available for token exchange")
	ErrResponseTooLarge      = errors.New("response body exceeds maximum size")
	ErrNoMoreItems           = errors.New("no more items")
)

// IsAuthError checks whether err is an authentication failure.
func IsAuthError(err error) bool {
	authErr := &AuthError{}

	return errors.As(err, &authErr)
}

// IsNotFound checks whether err is a not-found error.
func IsNotFound(err error) bool {
	nfErr := &NotFoundError{}

	return errors.As(err, &nfErr)
}

// IsRateLimit checks whether err is a rate-limit error, returning the
// server-suggested wait when it is.
func IsRateLimit(err error) (time.Duration, bool) {
	rlErr := &RateLimitError{}
	if errors.As(err, &rlErr) {
		return rlErr.RetryAfter, true
	}

	return 0, false
}

// IsTimeout checks whether err is a timeout error.
func IsTimeout(err error) bool {
	toErr := &TimeoutError{}

	return errors.As(err, &toErr)
}

// IsConnectionError checks whether err is a network-level failure.
func IsConnectionError(err error) bool {
	connErr := &ConnectionError{}

	return errors.As(err, &connErr)
}
