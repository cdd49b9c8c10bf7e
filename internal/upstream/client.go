package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Timeouts applied to outbound calls. List and search calls are heavier
// than single-entity lookups and get a longer allowance.
const (
	SingleTimeout = 15 * time.Second
	ListTimeout   = 20 * time.Second
)

// Request describes one outbound GET to a market-data provider.
//
// Fields:
//   - BaseURL: scheme+host of the provider (e.g., "https://pro-api.coinmarketcap.com").
//   - Path: endpoint path joined onto BaseURL (e.g., "/v1/global-metrics/quotes/latest").
//   - Header: header names to values, used to carry the provider API key.
//   - Query: query parameter names to values.
//   - Timeout: per-call deadline; SingleTimeout when zero.
type Request struct {
	BaseURL string
	Path    string
	Header  map[string]string
	Query   map[string]string
	Timeout time.Duration
}

// Response is the transport-level result of a Fetch.
//
// A non-2xx status is NOT an error at this layer: the call succeeded at the
// transport level and the caller decides how to surface the upstream's own
// status code and body.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the response body into out.
func (r *Response) Decode(out any) error {
	return json.Unmarshal(r.Body, out)
}

// Fetcher defines the contract for outbound provider calls.
// Services depend on this interface so tests can substitute fakes.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*Response, error)
}

// Client is the production Fetcher backed by net/http.
//
// One failed attempt surfaces immediately as a *NetworkError; no retries are
// performed. Retrying against rate-limited market-data APIs multiplies quota
// usage, so failures propagate to the caller instead.
type Client struct {
	httpClient *http.Client
}

// NewClient constructs a Client. Per-call deadlines come from Request.Timeout,
// so the underlying http.Client carries no global timeout of its own.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// CloseIdleConnections releases kept-alive connections to the providers.
// Called from the application cleanup hook on shutdown.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Fetch issues a single GET and returns the raw status code and body.
//
// Behavior:
//   - Applies Request.Timeout via context, composed with the caller's ctx so
//     a client disconnect cancels the in-flight call.
//   - Returns *NetworkError on any transport failure (DNS, refused, timeout).
//   - Returns the Response untouched for any HTTP status, 2xx or not.
func (c *Client) Fetch(ctx context.Context, req Request) (*Response, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = SingleTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u, err := url.Parse(req.BaseURL)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	u.Path = req.Path
	q := u.Query()
	for k, v := range req.Query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
