package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mailtm/client-go/internal/apierrors"
)

var errNoContent = errors.New("204 No Content carries no record")

const (
	// DefaultBaseURL is the public mail.tm API origin.
	DefaultBaseURL = "https://api.mail.tm"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "mailtm-client-go"

	requestIDHeader = "X-Request-ID"
)

// Config holds the configuration for creating a new Client.
type Config struct {
	// BaseURL is the API origin. Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient is the underlying HTTP client. When nil a client with its
	// own transport and no timeout is created; deadlines come from the
	// caller's context.
	HTTPClient *http.Client
	// Timeout, when positive, overrides HTTPClient.Timeout.
	Timeout time.Duration
	// Logger receives debug records for failed exchanges.
	Logger zerolog.Logger
	// Debug installs a transport that dumps every request and response.
	Debug bool
	// UserAgent is sent on every request.
	UserAgent string
}

// Client is the HTTP API client. It holds no per-account state and is
// safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string
}

// NewClient creates a new API client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must be http or https, got %q", baseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: newTransport()}
	}
	if cfg.Timeout > 0 || cfg.Debug {
		// Copy so options never mutate a caller-owned client.
		cp := *httpClient
		httpClient = &cp
	}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	if cfg.Debug {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		httpClient.Transport = &debugTransport{base: base, logger: cfg.Logger}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
		userAgent:  userAgent,
	}, nil
}

// newTransport returns a transport owned by one client, so closing it never
// touches http.DefaultTransport.
func newTransport() http.RoundTripper {
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		return t.Clone()
	}
	return &http.Transport{Proxy: http.ProxyFromEnvironment}
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// CloseIdleConnections releases the pooled connections of the underlying
// transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// call describes one request/response exchange.
type call struct {
	method string
	// endpoint is the path template used for metrics labels.
	endpoint string
	path     string
	query    url.Values
	token    string
	body     interface{}
	result   interface{}
	// noContentOK accepts 204 where result is set; otherwise a 204 on a
	// record endpoint is an *apierrors.DecodeError.
	noContentOK bool
}

// do sends the request described by cl and returns the response status.
// Statuses 200 and 201 decode the body into cl.result when it is non-nil.
// 204 never decodes, and fails when a record was expected unless
// cl.noContentOK is set. Every other status is an *apierrors.APIError.
func (c *Client) do(ctx context.Context, cl call) (int, error) {
	var bodyReader io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	fullURL := c.baseURL + cl.path
	if len(cl.query) > 0 {
		fullURL += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, fullURL, bodyReader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observeRequest(cl.endpoint, cl.method, "error", time.Since(start))
		c.logger.Debug().
			Err(err).
			Str("method", cl.method).
			Str("url", fullURL).
			Str("request_id", requestID).
			Msg("request failed")
		return 0, &apierrors.NetworkError{Err: err, Method: cl.method, URL: fullURL}
	}
	defer resp.Body.Close()
	observeRequest(cl.endpoint, cl.method, strconv.Itoa(resp.StatusCode), time.Since(start))

	if !isSuccess(resp.StatusCode) {
		// Drain so the connection can return to the pool.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug().
			Str("method", cl.method).
			Str("url", fullURL).
			Int("status_code", resp.StatusCode).
			Str("request_id", requestID).
			Msg("invalid response")
		return resp.StatusCode, &apierrors.APIError{
			StatusCode: resp.StatusCode,
			Method:     cl.method,
			URL:        fullURL,
			RequestID:  requestID,
		}
	}

	if resp.StatusCode == http.StatusNoContent || cl.result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		if resp.StatusCode == http.StatusNoContent && cl.result != nil && !cl.noContentOK {
			c.logger.Debug().
				Str("method", cl.method).
				Str("url", fullURL).
				Str("request_id", requestID).
				Msg("no content where a record was expected")
			return resp.StatusCode, &apierrors.DecodeError{Err: errNoContent, URL: fullURL}
		}
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(cl.result); err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", cl.method).
			Str("url", fullURL).
			Int("status_code", resp.StatusCode).
			Str("request_id", requestID).
			Msg("undecodable response")
		return resp.StatusCode, &apierrors.DecodeError{Err: err, URL: fullURL}
	}

	return resp.StatusCode, nil
}

// isSuccess reports whether status is one of the statuses the API uses
// for success.
func isSuccess(status int) bool {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	default:
		return false
	}
}
