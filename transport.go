package northlight

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/northlight/northlight-go/deviceinfo"
	"github.com/northlight/northlight-go/internal/logging"
)

const (
	// DefaultRequestTimeout bounds the wait for response headers
	DefaultRequestTimeout = 30 * time.Second

	// DefaultResourceTimeout bounds the whole request including body transfer
	DefaultResourceTimeout = 60 * time.Second

	// HeaderAPIKey carries the project API key on every request
	HeaderAPIKey = "X-API-Key"

	// HeaderPlatform marks the client platform on every request
	HeaderPlatform = "X-Platform"

	// PlatformValue is the fixed platform marker this SDK sends
	PlatformValue = "go"
)

// Client talks to the Northlight API on behalf of one Config. It is the sole
// network boundary of the SDK: every domain operation builds a payload and
// hands it to the client's request pipeline, which attaches authentication,
// executes with bounded timeouts, decodes the typed response, and classifies
// failures into the error taxonomy.
//
// Client instances are safe for concurrent use. Concurrent operations are
// independent: no ordering is guaranteed between them and identical requests
// are not coalesced.
type Client struct {
	config     *Config
	httpClient *http.Client
	device     deviceinfo.Provider
}

// NewClient creates a client bound to the given config, using the default
// timeouts and the host device provider.
func NewClient(cfg *Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: DefaultResourceTimeout,
			Transport: &http.Transport{
				ResponseHeaderTimeout: DefaultRequestTimeout,
			},
		},
		device: deviceinfo.HostProvider{},
	}
}

// Config returns the config this client was created with
func (c *Client) Config() *Config {
	return c.config
}

// SetHTTPClient replaces the underlying HTTP client. Useful for tests and
// for hosts that need custom transports or proxies.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// SetTimeout sets the overall request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// SetDeviceProvider replaces the provider used to build device snapshots
// for submissions
func (c *Client) SetDeviceProvider(p deviceinfo.Provider) {
	c.device = p
}

// do executes one authenticated request and returns the status code and raw
// response body. body is JSON-encoded when non-nil. Any failure before a
// status code is obtained comes back as a network error.
func (c *Client) do(ctx context.Context, method string, path string, body any) (int, []byte, error) {
	apiKey, err := c.config.APIKey()
	if err != nil {
		return 0, nil, err
	}

	target := c.config.Endpoint() + path
	if _, err := url.ParseRequestURI(target); err != nil {
		return 0, nil, NewInvalidInputError("Invalid URL")
	}

	var reader io.Reader
	bodyLen := 0
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, NewInvalidInputError("Invalid request body")
		}
		reader = bytes.NewReader(encoded)
		bodyLen = len(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, NewInvalidInputError("Invalid URL")
	}

	req.Header.Set(HeaderAPIKey, apiKey)
	req.Header.Set(HeaderPlatform, PlatformValue)
	req.Header.Set("Content-Type", "application/json")

	logging.LogHTTPRequest(method, target, bodyLen)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, NewNetworkError(err)
	}

	logging.LogHTTPResponse(method, target, resp.StatusCode, time.Since(start))

	return resp.StatusCode, data, nil
}

// send executes a request and decodes a 2xx response body into T.
// Non-2xx statuses are classified into the error taxonomy; a 2xx body that
// fails to decode is a decoding error wrapping the cause.
func send[T any](ctx context.Context, c *Client, method string, path string, body any) (T, error) {
	var result T

	status, data, err := c.do(ctx, method, path, body)
	if err != nil {
		return result, err
	}

	if status < 200 || status > 299 {
		return result, classifyStatus(status, data)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, NewDecodingError(err)
	}
	return result, nil
}

// sendNoContent executes a request where no response body is expected.
// Classification is identical to send, without the decode step.
func (c *Client) sendNoContent(ctx context.Context, method string, path string, body any) error {
	status, data, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return classifyStatus(status, data)
	}
	return nil
}
