package oaiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error variables
var (
	// ErrNoAPIKey indicates the API key is missing
	ErrNoAPIKey = errors.New("API key is required")

	// ErrEmptyResponse indicates the API returned an empty response
	ErrEmptyResponse = errors.New("empty response from API")
)

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	Code       string
	Param      string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error is retryable.
func (e *APIError) IsRetryable() bool {
	if e.StatusCode >= 500 && e.StatusCode < 600 {
		return true
	}
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	switch e.Code {
	case "timeout", "connection_error", "server_error":
		return true
	}
	return false
}

// IsRateLimit returns true if this is a rate limit error.
func (e *APIError) IsRateLimit() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.Code == "rate_limit_exceeded"
}

// IsAuthError returns true if this is an authentication error.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.Code == "invalid_api_key"
}
