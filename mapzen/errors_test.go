package mapzen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	const requestURL = "https://search.example.com/v1/search?text=x"

	t.Run("forbidden", func(t *testing.T) {
		err := classifyStatus(403, requestURL)

		var keyErr *KeyError
		require.ErrorAs(t, err, &keyErr)
		assert.Equal(t, "403 Forbidden: Forbidden for url: "+requestURL, keyErr.Error())
		assert.Equal(t, requestURL, keyErr.URL)
	})

	t.Run("rate limited", func(t *testing.T) {
		err := classifyStatus(429, requestURL)

		var rateErr *RateLimitError
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, 429, rateErr.StatusCode)
	})

	t.Run("other client error", func(t *testing.T) {
		err := classifyStatus(400, requestURL)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsClientError())
		assert.False(t, apiErr.IsServerError())
	})

	t.Run("server error", func(t *testing.T) {
		err := classifyStatus(503, requestURL)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsServerError())
	})

	t.Run("specialized errors do not match plain APIError", func(t *testing.T) {
		err := classifyStatus(403, requestURL)

		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := transportError("request failed", "https://example.com", cause)

	assert.Zero(t, err.StatusCode)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Message: "search text must not be empty"}
	assert.Equal(t, "search text must not be empty", err.Error())
}
