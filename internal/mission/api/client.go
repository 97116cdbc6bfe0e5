// Package api provides the REST client used by every page renderer to talk
// to the Mission Control backend.
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
	"strings"
)

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues JSON requests against the backend API. It performs no
// retries and no caching; every call hits the network fresh.
type Client struct {
	base   *url.URL
	client HTTPClient
}

// NewClient constructs a Client for the given base URL.
func NewClient(baseURL string, client HTTPClient) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("api: base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(trimmed, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{base: parsed, client: client}, nil
}

// Get issues a GET request. Query values that are empty strings are omitted
// so callers can pass optional filters unconditionally.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	req, err := c.newJSONRequest(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) (*http.Request, error) {
	ref := &url.URL{Path: strings.TrimPrefix(endpoint, "/")}
	target := c.base.ResolveReference(ref)

	if len(query) > 0 {
		filtered := url.Values{}
		for key, values := range query {
			for _, v := range values {
				if strings.TrimSpace(v) != "" {
					filtered.Add(key, v)
				}
			}
		}
		target.RawQuery = filtered.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, endpoint string, payload any) (*http.Request, error) {
	var buf bytes.Buffer
	if payload != nil {
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("api: encode payload: %w", err)
		}
	}
	req, err := c.newRequest(ctx, method, endpoint, nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
