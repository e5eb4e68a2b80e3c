package directv4

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the Yandex Direct API v4 sandbox endpoint; v4 is
// only reachable in the sandbox for new applications.
const DefaultEndpoint = "https://api-sandbox.direct.yandex.ru/v4/json/"

const defaultLocale = "ru"

// Client wraps the Yandex Direct API v4.
type Client struct {
	login        string
	token        string
	endpoint     string
	locale       string
	pollInterval time.Duration
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewClient creates a new Direct v4 client.
func NewClient(login, token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if login == "" {
		return nil, ErrMissingLogin
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	client := &Client{
		login:        login,
		token:        token,
		endpoint:     DefaultEndpoint,
		locale:       defaultLocale,
		pollInterval: time.Second,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// apiRequest is the v4 request body: the method name and token travel
// alongside the method parameter.
type apiRequest struct {
	Method string `json:"method"`
	Token  string `json:"token"`
	Locale string `json:"locale,omitempty"`
	Param  any    `json:"param,omitempty"`
}

type apiResponse struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode int             `json:"error_code"`
	ErrorStr  string          `json:"error_str"`
	ErrorDet  string          `json:"error_detail"`
}

// call performs one v4 request and returns the raw data object.
func (c *Client) call(ctx context.Context, method string, param any) (json.RawMessage, error) {
	payload, err := json.Marshal(apiRequest{
		Method: method,
		Token:  c.token,
		Locale: c.locale,
		Param:  param,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	c.logger.Debug().Str("method", method).Msg("Making Direct API v4 request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if envelope.ErrorCode != 0 {
		return nil, &APIError{Code: envelope.ErrorCode, Message: envelope.ErrorStr, Detail: envelope.ErrorDet}
	}

	return envelope.Data, nil
}

// ClientInfo returns account information for the configured login,
// including the balance and discount.
func (c *Client) ClientInfo(ctx context.Context) ([]ClientInfo, error) {
	raw, err := c.call(ctx, "GetClientInfo", []string{c.login})
	if err != nil {
		return nil, fmt.Errorf("failed to get client info: %w", err)
	}

	var infos []ClientInfo
	if err := json.Unmarshal(raw, &infos); err != nil {
		return nil, fmt.Errorf("failed to parse client info: %w", err)
	}
	return infos, nil
}
