// Package upstream is the HTTP client for the listing, sitter and blog
// services. Every call is a single round trip: no retries and no caching.
package upstream

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "CubHub-Web/1.0"

	// Upper bound on a response body read into memory.
	maxBodyBytes = 8 << 20
)

// Service names used in errors, logs and metrics.
const (
	ServiceListings = "listings"
	ServiceSitters  = "sitters"
	ServiceBlog     = "blog"
)

// Observer receives the outcome of every call.
type Observer interface {
	ObserveUpstream(service, op string, err error, elapsed time.Duration)
}

// Config locates the services.
type Config struct {
	BaseURL      string
	ListingsPath string
	SubmitPath   string
	SittersPath  string
	BlogPath     string
	ManagePath   string
	Timeout      time.Duration
}

// Client talks to the upstream JSON services.
type Client struct {
	http     *http.Client
	cfg      Config
	logger   *slog.Logger
	observer Observer
}

// New creates a client. observer may be nil.
func New(cfg Config, logger *slog.Logger, observer Observer) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		cfg:      cfg,
		logger:   logger,
		observer: observer,
	}
}

// call describes one request.
type call struct {
	service string
	op      string
	method  string
	path    string
	query   url.Values
	payload any
}

// do executes c and returns the body of a 2xx response. Non-2xx responses
// become *Error values carrying the body text.
func (c *Client) do(ctx context.Context, cl call) (body []byte, err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveUpstream(cl.service, cl.op, err, time.Since(start))
		}
	}()

	u := c.cfg.BaseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var reader io.Reader
	if cl.payload != nil {
		data, mErr := json.Marshal(cl.payload)
		if mErr != nil {
			return nil, wrapError(cl.service, cl.op, 0, "", fmt.Errorf("encode payload: %w", mErr))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, reader)
	if err != nil {
		return nil, wrapError(cl.service, cl.op, 0, "", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("upstream request",
		"service", cl.service,
		"op", cl.op,
		"method", cl.method,
		"path", cl.path,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapError(cl.service, cl.op, 0, "", fmt.Errorf("%w: %w", ErrTransport, err))
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, wrapError(cl.service, cl.op, resp.StatusCode, "", fmt.Errorf("%w: read body: %w", ErrTransport, err))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, wrapError(cl.service, cl.op, resp.StatusCode, string(body), ErrNotFound)
	default:
		return nil, wrapError(cl.service, cl.op, resp.StatusCode, string(body), ErrStatus)
	}
}

// decode unmarshals a success body into v.
func decode(service, op string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return wrapError(service, op, http.StatusOK, "", fmt.Errorf("%w: %w", ErrDecode, err))
	}
	return nil
}
