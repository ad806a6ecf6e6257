package lesson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

var errNullBody = errors.New("response body is null")

// Generator produces a lesson result for a request. The controller depends
// on this interface so tests can swap the network out.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Client posts lesson requests to the backend over HTTP.
type Client struct {
	endpoint string
	http     *resty.Client
}

var _ Generator = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the client send through hc instead of a default
// http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// NewClient creates a Client for cfg.Endpoint.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		endpoint: cfg.Endpoint,
		http:     resty.New(),
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.Timeout > 0 {
		c.http.SetTimeout(cfg.Timeout)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate sends exactly one POST and decodes the response. Every error it
// returns matches errors.Is(err, ErrRequestFailed).
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &ErrTransport{Err: fmt.Errorf("encode request: %w", err)}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return nil, &ErrTransport{Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &ErrServer{
			StatusCode: resp.StatusCode(),
			Reason:     reasonPhrase(resp.StatusCode(), resp.Status()),
		}
	}

	if bytes.Equal(bytes.TrimSpace(resp.Body()), []byte("null")) {
		return nil, &ErrMalformedResponse{Body: resp.Body(), Err: errNullBody}
	}
	var result Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &ErrMalformedResponse{Body: resp.Body(), Err: err}
	}
	return &result, nil
}

// reasonPhrase extracts "Not Found" from a status line like "404 Not Found",
// falling back to the standard text for the code.
func reasonPhrase(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if reason != "" {
		return reason
	}
	return http.StatusText(code)
}
