package client

import (
	"encoding/json"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// decodeJSON unmarshals a successful response body. A body the server
// claimed was JSON but is not decodable counts as an API failure, not a
// client bug.
func decodeJSON(resp *internalhttp.Response, target interface{}) error {
	err := json.Unmarshal(resp.Body, target)
	if err != nil {
		return &domo.APIError{
			StatusCode: resp.StatusCode,
			Body:       "malformed response body: " + err.Error(),
		}
	}

	return nil
}
