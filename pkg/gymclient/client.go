package gymclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SYD090303/GymFlow/pkg/activity"
)

const defaultTimeout = 15 * time.Second

// Client talks to the GymFlow API. It attaches the session's bearer token
// to every request and reports in-flight activity on the shared counter.
// There is no retry logic anywhere: callers decide what to do on failure.
type Client struct {
	baseURL  string
	http     *http.Client
	session  *Session
	activity *activity.Counter
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithActivity attaches an in-flight counter shared with the caller's UI.
func WithActivity(counter *activity.Counter) Option {
	return func(c *Client) { c.activity = counter }
}

// New creates a Client for baseURL using session for auth state.
func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: defaultTimeout},
		session:  session,
		activity: activity.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the client's session.
func (c *Client) Session() *Session {
	return c.session
}

// Activity returns the client's in-flight counter.
func (c *Client) Activity() *activity.Counter {
	return c.activity
}

// do runs one request. The activity counter is incremented before dispatch
// and decremented when the request settles, on every path including errors
// and cancellation. A non-2xx response becomes an *APIError; out is
// decoded from the body when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.activity.Inc()
	defer c.activity.Dec()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fallback := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		return newAPIError(resp.StatusCode, respBody, fallback)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
