package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/pagemark/pagemark"
)

// Ensure ProxyFetcher implements pagemark.Fetcher at compile time.
var _ pagemark.Fetcher = (*ProxyFetcher)(nil)

// ProxyFetcher forwards requests through a relay using the
// "GET <relay-base>?<percent-encoded target URL>" contract. The relay
// returns the target's raw body and mirrors its status where obtainable.
//
// The relay is stateless and reentrant; concurrent calls from independent
// conversions do not interfere.
type ProxyFetcher struct {
	relayBase string
	next      pagemark.Fetcher
}

// NewProxyFetcher creates a ProxyFetcher that routes every fetch through the
// relay at relayBase. The underlying transport is a direct Fetcher built
// from opts.
func NewProxyFetcher(relayBase string, opts ...Option) *ProxyFetcher {
	return &ProxyFetcher{
		relayBase: strings.TrimRight(relayBase, "/?"),
		next:      NewFetcher(opts...),
	}
}

// Fetch retrieves the body of target via the relay.
func (f *ProxyFetcher) Fetch(ctx context.Context, target string) (string, error) {
	return f.next.Fetch(ctx, f.relayBase+"/?"+url.QueryEscape(target))
}
