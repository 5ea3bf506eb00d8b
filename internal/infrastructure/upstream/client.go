// Package upstream holds the HTTP clients for the dashboard's third-party
// services. Every call shares one bounded http.Client.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/semaphore"
)

const (
	defaultTimeout     = 20 * time.Second
	defaultMaxInFlight = 32
	maxResponseBytes   = 10 << 20
)

var (
	// ErrNotConfigured is returned by clients whose API key is missing.
	ErrNotConfigured = errors.New("upstream not configured")
	// ErrResponseTooLarge is returned when a body exceeds the response limit.
	ErrResponseTooLarge = errors.New("upstream response too large")
)

// StatusError reports a non-2xx answer from a third party.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream http error: status=%d", e.StatusCode)
}

// Observer is notified once per outbound call. result is "success" or "error".
type Observer func(feature, result string, elapsed time.Duration)

type Options struct {
	Timeout          time.Duration
	MaxInFlight      int64
	// MaxResponseBytes caps a response body; larger bodies fail the call.
	MaxResponseBytes int64
	HTTPClient       *http.Client
	Observer         Observer
	Logger           zerolog.Logger
}

// Client bounds concurrency and duration of outbound calls.
type Client struct {
	http    *http.Client
	sem     *semaphore.Weighted
	timeout time.Duration
	maxBody int64
	observe Observer
	log     zerolog.Logger
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = defaultMaxInFlight
	}
	if opts.MaxResponseBytes <= 0 {
		opts.MaxResponseBytes = maxResponseBytes
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	if opts.Observer == nil {
		opts.Observer = func(string, string, time.Duration) {}
	}
	return &Client{
		http:    opts.HTTPClient,
		sem:     semaphore.NewWeighted(opts.MaxInFlight),
		timeout: opts.Timeout,
		maxBody: opts.MaxResponseBytes,
		observe: opts.Observer,
		log:     opts.Logger,
	}
}

type requestFunc func(ctx context.Context) (*http.Request, error)

// do runs one call under the in-flight limit and the per-call timeout and
// returns the response body and content type.
func (c *Client) do(ctx context.Context, feature string, build requestFunc) (body []byte, contentType string, err error) {
	start := time.Now()
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		c.observe(feature, result, time.Since(start))
	}()

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, "", fmt.Errorf("%s: acquire slot: %w", feature, err)
	}
	defer c.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := build(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%s: create request: %w", feature, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%s: do request: %w", feature, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, "", fmt.Errorf("%s: read response: %w", feature, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, "", fmt.Errorf("%s: %w (limit %d bytes)", feature, ErrResponseTooLarge, c.maxBody)
	}

	if resp.StatusCode >= 400 {
		c.log.Warn().
			Str("feature", feature).
			Int("status", resp.StatusCode).
			Str("body", truncate(string(body), 512)).
			Msg("upstream error status")
		return nil, "", fmt.Errorf("%s: %w", feature, &StatusError{StatusCode: resp.StatusCode, Body: string(body)})
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) postJSON(ctx context.Context, feature, url string, header http.Header, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", feature, err)
	}

	body, _, err := c.do(ctx, feature, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		for k, v := range header {
			req.Header[k] = v
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}
	return decode(feature, body, out)
}

func (c *Client) getJSON(ctx context.Context, feature, url string, out any) error {
	body, _, err := c.do(ctx, feature, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}
	return decode(feature, body, out)
}

func decode(feature string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: unmarshal response: %w", feature, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
