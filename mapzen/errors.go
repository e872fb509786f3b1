package mapzen

import (
	"fmt"
	"net/http"
)

// ValidationError reports a missing or empty required input. It is returned
// before any network interaction takes place.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError represents a failed request against one of the upstream APIs.
// StatusCode is zero when the failure happened before an HTTP status was
// received (transport errors, malformed response bodies).
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport or decode failure, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// IsClientError reports whether the error carries a 4xx status.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the error carries a 5xx status.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// KeyError indicates the API rejected the configured key (HTTP 403).
type KeyError struct {
	APIError
}

// RateLimitError indicates the caller exceeded the API rate limit
// (HTTP 429). No retry is performed internally; backing off is up to the
// caller.
type RateLimitError struct {
	APIError
}

// transportError wraps a failure that occurred before a status code was
// available.
func transportError(message, requestURL string, cause error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("%s: %v", message, cause),
		URL:     requestURL,
		cause:   cause,
	}
}

// classifyStatus maps a non-2xx response to the error taxonomy: 403 becomes
// a KeyError, 429 a RateLimitError, everything else a plain APIError.
func classifyStatus(statusCode int, requestURL string) error {
	reason := http.StatusText(statusCode)

	switch statusCode {
	case http.StatusForbidden:
		return &KeyError{APIError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("%d Forbidden: %s for url: %s", statusCode, reason, requestURL),
			URL:        requestURL,
		}}
	case http.StatusTooManyRequests:
		return &RateLimitError{APIError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("%d Too Many Requests: %s for url: %s", statusCode, reason, requestURL),
			URL:        requestURL,
		}}
	}

	label := "Server Error"
	if statusCode >= 400 && statusCode < 500 {
		label = "Client Error"
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%d %s: %s for url: %s", statusCode, label, reason, requestURL),
		URL:        requestURL,
	}
}
