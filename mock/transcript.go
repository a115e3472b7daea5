package mock

import (
	"context"

	"github.com/pagemark/pagemark"
)

var _ pagemark.TimedTextParser = (*TimedTextParser)(nil)

// TimedTextParser is a mock implementation of pagemark.TimedTextParser.
type TimedTextParser struct {
	ParseFn func(xml string) ([]pagemark.TranscriptItem, error)
}

func (p *TimedTextParser) Parse(xml string) ([]pagemark.TranscriptItem, error) {
	return p.ParseFn(xml)
}

var _ pagemark.TranscriptRelay = (*TranscriptRelay)(nil)

// TranscriptRelay is a mock implementation of pagemark.TranscriptRelay.
type TranscriptRelay struct {
	FetchTranscriptFn func(ctx context.Context, videoID string) (*pagemark.RelayTranscript, error)
}

func (r *TranscriptRelay) FetchTranscript(ctx context.Context, videoID string) (*pagemark.RelayTranscript, error) {
	return r.FetchTranscriptFn(ctx, videoID)
}
