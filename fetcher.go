package pagemark

import "context"

// Fetcher retrieves the raw body of a URL.
//
// The primary implementation forwards requests through a relay (the proxy
// channel) to work around cross-origin and bot-detection restrictions;
// a direct implementation exists for endpoints that allow it. Fetchers are
// stateless and reentrant: concurrent calls from independent conversions
// must not interfere.
type Fetcher interface {
	// Fetch returns the response body for url.
	// Returns EFETCH on non-success status, empty body, or transport failure.
	// The context bounds the call; expiry is a transport failure.
	Fetch(ctx context.Context, url string) (string, error)
}
