package direct

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultEndpoint is the production Yandex Direct API v5 endpoint.
const DefaultEndpoint = "https://api.direct.yandex.com/json/v5/"

// SandboxEndpoint is the Yandex Direct API v5 sandbox endpoint.
const SandboxEndpoint = "https://api-sandbox.direct.yandex.com/json/v5/"

// DefaultMaxClients bounds concurrent API requests when the caller
// passes a non-positive value to NewClient.
const DefaultMaxClients = 10

// Services of the Yandex Direct API v5 used by this client.
const (
	ServiceCampaigns = "campaigns"
	ServiceAdGroups  = "adgroups"
	ServiceAds       = "ads"
	ServiceBids      = "bids"
)

// Client wraps the Yandex Direct API v5.
type Client struct {
	login      string
	token      string
	maxClients int
	endpoint   string
	language   string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger

	mu    sync.Mutex
	units string
}

// NewClient creates a new Direct v5 client. login is the advertiser
// login, token an OAuth token, maxClients the number of requests the
// client may have in flight at once.
func NewClient(login, token string, maxClients int, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if login == "" {
		return nil, ErrMissingLogin
	}
	if token == "" {
		return nil, ErrMissingToken
	}
	if maxClients <= 0 {
		maxClients = DefaultMaxClients
	}

	client := &Client{
		login:      login,
		token:      token,
		maxClients: maxClients,
		endpoint:   DefaultEndpoint,
		language:   "ru",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// TestConnection verifies credentials with a minimal campaigns request.
func (c *Client) TestConnection(ctx context.Context) error {
	params := CampaignsGetParams{
		FieldNames: []string{"Id"},
	}
	if _, err := c.call(ctx, ServiceCampaigns, "get", &params); err != nil {
		return fmt.Errorf("failed to connect to Direct API: %w", err)
	}
	return nil
}

// Units returns the value of the Units header from the most recent
// response ("spent/remaining/daily limit"), empty before the first call.
func (c *Client) Units() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.units
}

func (c *Client) setUnits(units string) {
	c.mu.Lock()
	c.units = units
	c.mu.Unlock()
}

// apiRequest is the JSON envelope sent to every v5 service.
type apiRequest struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// apiResponse is the JSON envelope of every v5 response.
type apiResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *APIError       `json:"error"`
}

// call performs one authenticated request against a v5 service and
// returns the raw result object.
func (c *Client) call(ctx context.Context, service, method string, params any) (json.RawMessage, error) {
	payload, err := json.Marshal(apiRequest{Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+service, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Client-Login", c.login)
	req.Header.Set("Accept-Language", c.language)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestID := uuid.NewString()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("service", service).
		Str("method", method).
		Msg("Making Direct API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if units := resp.Header.Get("Units"); units != "" {
		c.setUnits(units)
		c.logger.Debug().
			Str("request_id", requestID).
			Str("units", units).
			Msg("API units")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if envelope.Error != nil {
		return nil, envelope.Error
	}

	return envelope.Result, nil
}
