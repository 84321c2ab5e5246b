package domo

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "auth error with body",
			err:      &AuthError{StatusCode: 401, Body: "invalid_client"},
			expected: "authentication failed (HTTP 401): invalid_client",
		},
		{
			name:     "auth error without body",
			err:      &AuthError{StatusCode: 403},
			expected: "authentication failed (HTTP 403)",
		},
		{
			name:     "not found",
			err:      &NotFoundError{URL: "https://api.domo.com/v1/datasets/missing"},
			expected: "not found: https://api.domo.com/v1/datasets/missing",
		},
		{
			name:     "rate limit with retry-after",
			err:      &RateLimitError{RetryAfter: 5 * time.Second},
			expected: "rate limit exceeded, retry after 5s",
		},
		{
			name:     "rate limit without retry-after",
			err:      &RateLimitError{},
			expected: "rate limit exceeded",
		},
		{
			name:     "API error",
			err:      &APIError{StatusCode: 500, Body: "oops"},
			expected: "API error (HTTP 500): oops",
		},
		{
			name:     "validation error with field",
			err:      &ValidationError{Field: "start", Message: "is required"},
			expected: `validation error on "start": is required`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	authErr := fmt.Errorf("getting dataset: %w", &AuthError{StatusCode: 401})
	assert.True(t, IsAuthError(authErr))
	assert.False(t, IsAuthError(ErrConfigRequired))

	nfErr := fmt.Errorf("getting dataset: %w", &NotFoundError{URL: "/v1/datasets/x"})
	assert.True(t, IsNotFound(nfErr))
	assert.False(t, IsNotFound(authErr))

	rlErr := fmt.Errorf("listing users: %w", &RateLimitError{RetryAfter: 3 * time.Second})

	wait, ok := IsRateLimit(rlErr)
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, wait)

	_, ok = IsRateLimit(nfErr)
	assert.False(t, ok)

	toErr := fmt.Errorf("querying: %w", &TimeoutError{URL: "/v1/datasets"})
	assert.True(t, IsTimeout(toErr))

	connErr := fmt.Errorf("querying: %w", &ConnectionError{URL: "/v1/datasets"})
	assert.True(t, IsConnectionError(connErr))
	assert.False(t, IsConnectionError(toErr))
}

func TestConnectionErrorUnwrap(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("dial tcp: connection refused")
	err := &ConnectionError{URL: "https://api.domo.com", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "connection refused")
}
