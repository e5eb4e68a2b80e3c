package direct

import (
	"errors"
	"fmt"
)

// Common errors returned by the Direct client.
var (
	// ErrMissingLogin indicates the client was created without an advertiser login.
	ErrMissingLogin = errors.New("direct: login is required")

	// ErrMissingToken indicates the client was created without an OAuth token.
	ErrMissingToken = errors.New("direct: OAuth token is required")
)

// APIError is the error object of the v5 response envelope.
type APIError struct {
	RequestID string `json:"request_id"`
	Code      int    `json:"error_code"`
	Message   string `json:"error_string"`
	Detail    string `json:"error_detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("direct API error %d: %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("direct API error %d: %s", e.Code, e.Message)
}

// IsAuthError checks if the error indicates an authorization failure
// (invalid login, missing or expired token).
func (e *APIError) IsAuthError() bool {
	return e.Code >= 52 && e.Code <= 58
}

// IsUnitsExhausted checks if the error indicates the daily API units
// limit has been reached.
func (e *APIError) IsUnitsExhausted() bool {
	return e.Code == 152
}

// HTTPError represents a non-200 response from the API endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("direct API request failed with status %d: %s", e.StatusCode, e.Body)
}
