// Package fetch performs single bounded-time HTTP GETs for candidate pages.
// Every failure is folded into an *Error; nothing escapes as a panic.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CompanyProfiler/1.0)"

// MaxBodyBytes caps how much of a response body is read.
const MaxBodyBytes = 5 * 1024 * 1024

// Result holds the raw content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents a failed page fetch. Timeouts, DNS and TLS failures and
// non-2xx statuses all surface as this one type.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// Transport overrides the HTTP transport; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client fetches pages with a fixed timeout.
type Client struct {
	http    *http.Client
	options *Options
}

// NewClient creates a Client. Zero-valued options fall back to defaults.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	resolved := *opts
	if resolved.Timeout <= 0 {
		resolved.Timeout = DefaultTimeout
	}
	if resolved.UserAgent == "" {
		resolved.UserAgent = DefaultUserAgent
	}
	return &Client{
		http: &http.Client{
			Timeout:   resolved.Timeout,
			Transport: resolved.Transport,
		},
		options: &resolved,
	}
}

// Fetch returns the body of urlStr, or an *Error. Exactly one of the two is set.
func (c *Client) Fetch(ctx context.Context, urlStr string) (string, error) {
	result, err := c.Get(ctx, urlStr)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// Get retrieves urlStr and returns the full Result.
// On a non-2xx status the Result is returned alongside the error.
func (c *Client) Get(ctx context.Context, urlStr string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &Error{
				URL:     urlStr,
				Message: fmt.Sprintf("unexpected failure: %v", r),
			}
		}
	}()

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", c.options.UserAgent)
	for key, value := range c.options.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result = &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// URL retrieves urlStr with a one-off Client built from opts.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	return NewClient(opts).Get(ctx, urlStr)
}
