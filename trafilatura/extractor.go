// Package trafilatura provides a secondary content extractor built on
// markusmobius/go-trafilatura. It is wired behind the readability extractor
// for pages whose shape defeats the primary pass.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pagemark/pagemark"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemark.Extractor at compile time.
var _ pagemark.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(contentHTML) == "" {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "no article content found")
	}

	return &pagemark.ExtractResult{
		Title:       result.Metadata.Title,
		Byline:      result.Metadata.Author,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
