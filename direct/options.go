package direct

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithEndpoint overrides the API endpoint, e.g. to point at the sandbox.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			if endpoint[len(endpoint)-1] != '/' {
				endpoint += "/"
			}
			c.endpoint = endpoint
		}
	}
}

// WithAcceptLanguage sets the Accept-Language header sent with every
// request, which controls the language of API messages.
func WithAcceptLanguage(language string) Option {
	return func(c *Client) {
		if language != "" {
			c.language = language
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
