package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/domo-community/domo-go/pkg/domo"
)

// mapStatusError converts an HTTP status into the typed error taxonomy.
// It is total: every status maps to nil or exactly one error type.
func mapStatusError(statusCode int, url string, body []byte, headers http.Header) error {
	switch {
	case statusCode < http.StatusBadRequest:
		return nil

	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &domo.AuthError{
			StatusCode: statusCode,
			Body:       trimBody(body),
		}

	case statusCode == http.StatusNotFound:
		return &domo.NotFoundError{URL: url}

	case statusCode == http.StatusTooManyRequests:
		return &domo.RateLimitError{
			RetryAfter: parseRetryAfter(headers.Get("Retry-After")),
		}

	default:
		return &domo.APIError{
			StatusCode: statusCode,
			Body:       trimBody(body),
		}
	}
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms. Absent
// or unparseable values yield zero.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}

		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		wait := time.Until(at)
		if wait > 0 {
			return wait
		}
	}

	return 0
}

func trimBody(body []byte) string {
	const maxErrorBody = 2048

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}

	return text
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
