// Package http provides HTTP-based implementations of pagemark.Fetcher and
// pagemark.TranscriptRelay: a direct fetcher for endpoints that allow
// cross-origin access, a proxy fetcher that forwards requests through a
// relay, a rate-limited decorator, and the delegated transcript relay client.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pagemark/pagemark"
)

// DefaultFetchTimeout bounds each individual network call. Expiry is a
// transport failure for that attempt only; fallback chains proceed to the
// next strategy.
const DefaultFetchTimeout = 15 * time.Second

// defaultUserAgent mimics a desktop browser. The video platform serves a
// reduced page without the embedded player configuration to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements pagemark.Fetcher at compile time.
var _ pagemark.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs with plain HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-call timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new direct HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagemark.Errorf(pagemark.EFETCH, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagemark.Errorf(pagemark.EFETCH, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pagemark.Errorf(pagemark.EFETCH, "fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pagemark.Errorf(pagemark.EFETCH, "read %s: %v", url, err)
	}

	if strings.TrimSpace(string(body)) == "" {
		return "", pagemark.Errorf(pagemark.EFETCH, "fetch %s: empty response body", url)
	}

	return string(body), nil
}
