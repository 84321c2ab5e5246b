package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/domo-community/domo-go/internal/constants"
	"github.com/domo-community/domo-go/pkg/domo"
)

// OAuth2Config configures the client-credentials token manager.
type OAuth2Config struct {
	// TokenURL is the full token endpoint, e.g.
	// https://api.domo.com/oauth/token.
	TokenURL string

	// ClientID and ClientSecret authenticate the token exchange via HTTP
	// basic auth.
	ClientID     string
	ClientSecret string

	// Scopes are requested during the exchange (e.g. "data", "user").
	Scopes []string

	// AccessToken pre-seeds the store for clients that already hold a
	// token.
	AccessToken string

	// HTTPClient overrides the exchange transport, mainly for tests.
	HTTPClient *http.Client
}

// OAuth2TokenManager exchanges client credentials for access tokens and
// refreshes them before expiry. Concurrent refreshes are collapsed into a
// single exchange; waiters that cancel their context stop waiting without
// aborting the exchange for everyone else.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
	group      singleflight.Group
}

// NewOAuth2TokenManager creates a token manager from config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   "bearer",
		})
	}

	return manager
}

// GetToken returns a valid access token, performing the exchange when the
// cached one is absent or inside the expiration margin.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	token = m.store.Get()
	if token == nil {
		return "", domo.ErrNoCredentialsForGrant
	}

	return token.AccessToken, nil
}

// RefreshToken forces a token exchange. Concurrent callers share one
// in-flight exchange.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	resultCh := m.group.DoChan("refresh", func() (interface{}, error) {
		// The exchange runs on its own deadline, detached from the
		// initiating caller, so cancelling one waiter cannot fail the
		// refresh for the others.
		exchangeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.ShortHTTPTimeout)
		defer cancel()

		token, err := m.exchange(exchangeCtx)
		if err != nil {
			return nil, err
		}

		m.store.Set(token)

		return nil, nil
	})

	select {
	case result := <-resultCh:
		if result.Err != nil {
			return result.Err
		}

		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetToken installs a token obtained out of band.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// exchange performs the client_credentials grant. One extra attempt is
// made for connection-class failures; HTTP error responses are never
// retried here.
func (m *OAuth2TokenManager) exchange(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, domo.ErrNoCredentialsForGrant
	}

	token, err := m.exchangeOnce(ctx)
	if err != nil && isTransientNetworkError(err) {
		token, err = m.exchangeOnce(ctx)
	}

	if err != nil {
		return nil, err
	}

	return token, nil
}

func (m *OAuth2TokenManager) exchangeOnce(ctx context.Context) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	if len(m.config.Scopes) > 0 {
		form.Set("scope", strings.Join(m.config.Scopes, " "))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domo.AuthError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, &domo.AuthError{
			StatusCode: resp.StatusCode,
			Body:       "token response contained no access_token",
		}
	}

	token.ExpiresAt = tokenExpiry(&token)

	return &token, nil
}

// tokenExpiry determines when a token expires: the JWT exp claim when the
// token is a decodable JWT, otherwise now plus expires_in. Tokens with
// neither never expire locally.
func tokenExpiry(token *Token) time.Time {
	if exp, ok := jwtExpiry(token.AccessToken); ok {
		return exp
	}

	if token.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return time.Time{}
}

func jwtExpiry(raw string) (time.Time, bool) {
	parts := strings.Split(raw, ".")
	if len(parts) != constants.JWTPartsCount {
		return time.Time{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}

	err = json.Unmarshal(payload, &claims)
	if err != nil || claims.Exp == 0 {
		return time.Time{}, false
	}

	return time.Unix(claims.Exp, 0), true
}

func isTransientNetworkError(err error) bool {
	var authErr *domo.AuthError
	if errors.As(err, &authErr) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
