package directv4

import (
	"errors"
	"fmt"
)

// Common errors returned by the v4 client.
var (
	// ErrMissingLogin indicates the client was created without a login.
	ErrMissingLogin = errors.New("directv4: login is required")

	// ErrMissingToken indicates the client was created without an OAuth token.
	ErrMissingToken = errors.New("directv4: OAuth token is required")
)

// APIError is a v4 error response (error_code envelope).
type APIError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_str"`
	Detail  string `json:"error_detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("direct API v4 error %d: %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("direct API v4 error %d: %s", e.Code, e.Message)
}

// HTTPError represents a non-200 response from the API endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("direct API v4 request failed with status %d: %s", e.StatusCode, e.Body)
}
