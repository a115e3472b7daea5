package mock

import (
	"context"

	"github.com/pagemark/pagemark"
)

var _ pagemark.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemark.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*pagemark.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*pagemark.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}

var _ pagemark.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of pagemark.DocumentExtractor.
type DocumentExtractor struct {
	ExtractDocumentFn func(ctx context.Context, url string) (*pagemark.ArticleContent, error)
}

func (e *DocumentExtractor) ExtractDocument(ctx context.Context, url string) (*pagemark.ArticleContent, error) {
	return e.ExtractDocumentFn(ctx, url)
}

var _ pagemark.TranscriptExtractor = (*TranscriptExtractor)(nil)

// TranscriptExtractor is a mock implementation of pagemark.TranscriptExtractor.
type TranscriptExtractor struct {
	ExtractTranscriptFn func(ctx context.Context, videoID string) (*pagemark.Transcript, error)
}

func (e *TranscriptExtractor) ExtractTranscript(ctx context.Context, videoID string) (*pagemark.Transcript, error) {
	return e.ExtractTranscriptFn(ctx, videoID)
}
