// Package backend is the typed client for the remote shop API. Every response
// shape is decoded once here; handlers and services above it only see Go types
// and the error taxonomy in errors.go.
package backend

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

// RequestContext carries the per-call credential. It is threaded explicitly to
// each call instead of living in process-wide default state, so concurrent
// sessions never cross-contaminate.
type RequestContext struct {
	Token string
}

// Anonymous is the request context for unauthenticated calls.
var Anonymous = RequestContext{}

// Client talks to the shop backend. All calls share one fixed timeout; a
// timeout surfaces as a transient error like any other network failure.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do issues one request and decodes the JSON response into out (when non-nil).
// Non-2xx responses become *APIError; transport failures are wrapped so
// callers can tell them apart from backend verdicts.
func (c *Client) do(ctx context.Context, rc RequestContext, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rc.Token != "" {
		req.Header.Set("Authorization", "Bearer "+rc.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

func pathID(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
