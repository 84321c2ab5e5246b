package auth

import (
	"context"
	"time"

	"github.com/domo-community/domo-go/pkg/domo"
)

// StaticTokenManager serves a fixed credential, used for Domo developer
// tokens which are long-lived and never exchanged. GetToken never touches
// the network.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the fixed token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", domo.ErrMissingCredentials
	}

	return m.token, nil
}

// RefreshToken fails: developer tokens cannot be refreshed.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return domo.ErrStaticTokenRefresh
}

// SetToken replaces the fixed token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}
