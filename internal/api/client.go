// Package api implements the HTTP client for the Aura backend. Every call
// is a POST with a JSON body; failures of any kind (transport, non-2xx,
// malformed body) collapse into a single *Error carrying a display message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 8 << 20
)

// Error is the single failure type returned by Client calls. Message is the
// human-readable diagnostic extracted from the response body's "detail"
// field, falling back to the transport status text.
type Error struct {
	StatusCode int // zero for transport failures
	Message    string
}

func (e *Error) Error() string { return e.Message }

// DecodeError reports a response that decoded but is missing a field the
// client cannot work without. It is distinct from *Error so callers can
// tell a broken contract from a backend-reported failure.
type DecodeError struct {
	Path  string
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response from %s is missing %q", e.Path, e.Field)
}

// Client posts JSON requests against one base address.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithRateLimit throttles outgoing requests to perMinute, matching the
// backend's per-user limit from the consumer side.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
		}
	}
}

// WithLogger attaches a logger; requests are logged at debug level.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a client for the given base address.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post executes one POST against path, serializing body as JSON and, when
// out is non-nil, decoding the response into it. No schema validation
// happens here beyond what out's type expresses; endpoint wrappers check
// their own required fields.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Message: err.Error()}
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Message: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Error{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithField("path", path).WithError(err).Debug("request failed")
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	c.log.WithFields(logrus.Fields{
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("malformed response body: %v", err)}
	}
	return nil
}

// errorMessage extracts the backend's "detail" string from an error body,
// falling back to the transport status text when the body is unparsable or
// the field is absent.
func errorMessage(raw []byte, resp *http.Response) string {
	if detail := gjson.GetBytes(raw, "detail"); detail.Type == gjson.String && detail.Str != "" {
		return detail.Str
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
