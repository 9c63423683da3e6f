// Package httpx is a thin JSON API client used when a remote content
// service is configured.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout             = 30 * time.Second
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90 * time.Second
)

// Param is a single query parameter. Params are serialized in the order
// given; ordering is preserved but not semantically significant.
type Param struct {
	Key   string
	Value string
}

// RequestOpts carries the optional parts of a request.
type RequestOpts struct {
	Params  []Param
	Headers map[string]string
	Body    any
}

// APIError is returned for any failed request. Status is the HTTP status
// code, or 0 when the request never reached a server.
type APIError struct {
	Status  int
	Message string
	Body    map[string]any
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client talks JSON to a single API base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL with a tuned transport.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
	}
}

// NewWithHTTPClient creates a Client using the supplied http.Client.
// Tests use this to point at an httptest server with no timeout tuning.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, params []Param, out any) error {
	return c.Do(ctx, http.MethodGet, path, RequestOpts{Params: params}, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, RequestOpts{Body: body}, out)
}

// Do issues a request against path (a route relative to the base URL).
// The response body is decoded into out as received, with no validation.
// Non-2xx responses and transport failures return an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOpts, out any) error {
	u := c.baseURL + path
	if len(opts.Params) > 0 {
		var qs strings.Builder
		for i, p := range opts.Params {
			if i > 0 {
				qs.WriteByte('&')
			}
			qs.WriteString(url.QueryEscape(p.Key))
			qs.WriteByte('=')
			qs.WriteString(url.QueryEscape(p.Value))
		}
		u += "?" + qs.String()
	}

	var reqBody io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// newAPIError builds an APIError from an error response. Body parsing is
// best-effort: an unparseable body degrades to an empty one, never a panic.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: "API request failed"}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}
	apiErr.Body = body
	if msg, ok := body["error"].(string); ok && msg != "" {
		apiErr.Message = msg
	} else if msg, ok := body["message"].(string); ok && msg != "" {
		apiErr.Message = msg
	}
	return apiErr
}
