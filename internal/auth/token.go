// Package auth implements token acquisition and lifecycle for the Domo
// API: the OAuth2 client-credentials flow with single-flight refresh, and
// the static developer-token mode.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/domo-community/domo-go/internal/constants"
)

// TokenManager supplies access credentials to the HTTP transport.
type TokenManager interface {
	// GetToken returns a valid credential, refreshing first when needed.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a refresh regardless of the cached token's state.
	RefreshToken(ctx context.Context) error

	// SetToken installs a token obtained out of band.
	SetToken(token string, expiresAt time.Time)
}

// Token is an OAuth2 access token with its metadata.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresIn   int64     `json:"expires_in,omitempty"`
	Scope       string    `json:"scope,omitempty"`
	CustomerID  string    `json:"customer,omitempty"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token can still be used. Tokens within the
// expiration margin of their expiry count as invalid so a refresh happens
// before the server rejects them.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationMargin).Before(t.ExpiresAt)
}

// TokenStore holds the current token behind a mutex.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token, nil when none is set.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear drops the current token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
