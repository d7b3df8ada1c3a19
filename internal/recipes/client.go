package recipes

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

	"github.com/google/uuid"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
)

// Client talks to the recipe backend over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	timeout   time.Duration
	fields    FieldMapping
}

const (
	defaultBaseURL   = "http://127.0.0.1:8000"
	defaultUserAgent = "recipe-finder/0.1"
	// DefaultTimeout bounds a single request when neither the request nor the
	// client overrides it.
	DefaultTimeout = 20 * time.Second
	maxBodyBytes   = 8 << 20
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the client-wide default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithFieldMapping overrides the normalization field candidates.
func WithFieldMapping(m FieldMapping) Option {
	return func(c *Client) {
		c.fields = DefaultFieldMapping().Merge(m)
	}
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient builds a Client for the given base URL. A bare host:port is
// treated as http.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		timeout:   DefaultTimeout,
		fields:    DefaultFieldMapping(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// Fields returns the field mapping used for normalization.
func (c *Client) Fields() FieldMapping {
	return c.fields
}

// Request is a single HTTP call against the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
	Timeout time.Duration
}

func (r Request) String() string {
	rel := r.Path
	if len(r.Query) > 0 {
		rel += "?" + r.Query.Encode()
	}
	return r.Method + " " + rel
}

// Response is a decoded API response. JSON is nil when the body was empty
// or not valid JSON, in which case Text holds the raw body.
type Response struct {
	Status int
	JSON   any
	Text   string
}

// Do issues req with the session's bearer token attached. Non-2xx responses
// return *APIError; exceeding the timeout returns ErrTimeout.
func (c *Client) Do(ctx context.Context, sess session.Session, req Request) (Response, error) {
	if c == nil {
		return Response{}, fmt.Errorf("client is nil")
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return Response{}, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, method, c.resolve(req.Path, req.Query), body)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if sess.SignedIn() {
		httpReq.Header.Set("Authorization", "Bearer "+strings.TrimSpace(sess.Token))
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, classify(ctx, reqCtx, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return Response{}, classify(ctx, reqCtx, fmt.Errorf("read response: %w", err))
	}
	if int64(len(raw)) > maxBodyBytes {
		return Response{Status: resp.StatusCode}, fmt.Errorf("%w: %s exceeds %d bytes", ErrResponseTooLarge, req.Path, maxBodyBytes)
	}

	out := Response{Status: resp.StatusCode, Text: string(raw)}
	out.JSON = decodeBody(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, &APIError{
			Status:  resp.StatusCode,
			Message: serverMessage(out.JSON, out.Text),
			Path:    req.Path,
		}
	}
	return out, nil
}

// classify maps a deadline hit on the per-request context to ErrTimeout. A
// cancelled parent context is reported as-is.
func classify(parent, reqCtx context.Context, err error) error {
	if parent.Err() != nil {
		return fmt.Errorf("%w: %w", parent.Err(), err)
	}
	if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

func decodeBody(raw []byte) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil
	}
	return payload
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	// path arrives with its segments already escaped.
	escaped := strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimPrefix(path, "/")
	if unescaped, err := url.PathUnescape(escaped); err == nil {
		u.Path = unescaped
		u.RawPath = escaped
	} else {
		u.Path = escaped
		u.RawPath = ""
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
