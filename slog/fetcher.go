// Package slog provides logging decorators for pagemark services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagemark/pagemark"
)

// Ensure LoggingFetcher implements pagemark.Fetcher.
var _ pagemark.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of every fetch.
type LoggingFetcher struct {
	next   pagemark.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagemark.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}

	f.logger.Info("fetch",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, nil
}
