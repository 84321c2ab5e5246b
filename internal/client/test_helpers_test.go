package client

import (
	"github.com/domo-community/domo-go/internal/constants"
	internalhttp "github.com/domo-community/domo-go/internal/http"
)

// newTestClient builds a client pointed at a test server, without
// credentials.
func newTestClient(serverURL string) *Client {
	return newWithTransport(internalhttp.NewClient(serverURL, nil), nil, constants.AuthModeOAuth)
}

// newTestClientDevToken builds a developer-token-mode client pointed at a
// test server.
func newTestClientDevToken(serverURL string) *Client {
	return newWithTransport(internalhttp.NewClient(serverURL, nil), nil, constants.AuthModeDeveloperToken)
}
