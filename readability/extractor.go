// Package readability provides the primary boilerplate-stripping extractor,
// built on go-shiori/go-readability (a port of Mozilla's Readability).
package readability

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/pagemark/pagemark"
)

// Ensure Extractor implements pagemark.Extractor at compile time.
var _ pagemark.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// The readability pass is destructive, so it runs on its own parse of the
// input; the caller's HTML is never mutated.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, pageURL string) (*pagemark.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "readability failed to parse the article content: %v", err)
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "no article content found")
	}

	return &pagemark.ExtractResult{
		Title:       article.Title,
		Byline:      article.Byline,
		ContentHTML: article.Content,
	}, nil
}
