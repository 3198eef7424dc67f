// Package blockfrost implements the ledger data provider and submission
// transport on top of the Blockfrost HTTP API.
package blockfrost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"go.uber.org/ratelimit"
)

const (
	pageSize         = 100
	maxErrorBodySize = 4096
	projectIDHeader  = "project_id"
)

var (
	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("blockfrost: invalid response")
	// ErrConfig indicates missing client configuration.
	ErrConfig = errors.New("blockfrost: invalid config")
)

type (
	// Metrics records metrics for provider calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Config configures a Client.
	Config struct {
		BaseURL   string
		ProjectID string
		Timeout   time.Duration
		// RPS caps outgoing requests per second; zero disables limiting.
		RPS int
	}
)

// BaseURL returns the public endpoint for network.
func BaseURL(network model.Network) (string, error) {
	switch network {
	case model.Mainnet, model.Preprod, model.Preview:
		return "https://cardano-" + string(network) + ".blockfrost.io/api/v0", nil
	default:
		return "", fmt.Errorf("%w: unknown network %q", ErrConfig, network)
	}
}

// Client talks to one Blockfrost project.
type Client struct {
	baseURL   string
	projectID string
	network   model.Network
	http      *http.Client
	limiter   ratelimit.Limiter
	metrics   Metrics
}

// New constructs an instrumented client.
func New(cfg Config, network model.Network, metrics Metrics) (*Client, error) {
	if cfg.BaseURL == "" {
		u, err := BaseURL(network)
		if err != nil {
			return nil, err
		}
		cfg.BaseURL = u
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("%w: project id is required", ErrConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		projectID: cfg.ProjectID,
		network:   network,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		limiter: limiter,
		metrics: metrics,
	}, nil
}

type apiError struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// do sends one request and decodes a JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("blockfrost: create request: %w", err)
	}
	req.Header.Set(projectIDHeader, c.projectID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.limiter.Take()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", model.ErrNetworkTransient, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classify(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, path, err)
	}
	return nil
}

// classify maps a non-2xx response to the payroll error taxonomy.
func classify(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	var apiErr apiError
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}
	code := resp.StatusCode

	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s: %s", model.ErrNotFound, method, path, msg)
	case code == http.StatusTooManyRequests, code == http.StatusTooEarly, code >= 500:
		return fmt.Errorf("%w: %s %s: HTTP %d: %s", model.ErrNetworkTransient, method, path, code, msg)
	case code == http.StatusBadRequest && isAlreadyKnown(msg):
		return fmt.Errorf("%w: %s", model.ErrAlreadyKnown, msg)
	default:
		return fmt.Errorf("%w: %s %s: HTTP %d: %s", model.ErrNetworkRejected, method, path, code, msg)
	}
}

func isAlreadyKnown(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "already")
}

func (c *Client) postCBOR(ctx context.Context, path string, payload []byte, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/cbor", out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}
