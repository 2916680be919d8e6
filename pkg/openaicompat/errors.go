package openaicompat

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("openaicompat: api key is required")
	ErrUnknownVendor = errors.New("openaicompat: unknown vendor")
	ErrNoChoices     = errors.New("openaicompat: response has no choices")
)

// APIError is a non-200 answer from the endpoint.
type APIError struct {
	Vendor     string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openaicompat: %s returned %d: %s", e.Vendor, e.StatusCode, e.Message)
}

// Retryable reports whether the status suggests a transient failure.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}
