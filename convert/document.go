package convert

import (
	"context"

	"github.com/pagemark/pagemark"
)

// Ensure DocumentPipeline implements pagemark.DocumentExtractor.
var _ pagemark.DocumentExtractor = (*DocumentPipeline)(nil)

// DocumentPipeline turns an article page URL into extracted content:
// proxy fetch, base-directive injection, boilerplate-stripping
// simplification, and markdown conversion.
type DocumentPipeline struct {
	Fetcher   pagemark.Fetcher
	Preparer  pagemark.Preparer
	Extractor pagemark.Extractor
	Converter pagemark.Converter
}

// ExtractDocument fetches and simplifies the page at url.
func (p *DocumentPipeline) ExtractDocument(ctx context.Context, url string) (*pagemark.ArticleContent, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if p.Preparer != nil {
		html, err = p.Preparer.Prepare(html, url)
		if err != nil {
			return nil, err
		}
	}

	result, err := p.Extractor.Extract(html, url)
	if err != nil {
		return nil, err
	}

	body, err := p.Converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &pagemark.ArticleContent{
		Title:        result.Title,
		Byline:       result.Byline,
		MarkdownBody: body,
	}, nil
}
