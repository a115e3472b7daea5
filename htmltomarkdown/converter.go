// Package htmltomarkdown converts clean HTML to Markdown using
// JohannesKaufmann/html-to-markdown. The output dialect is ATX headings,
// fenced code blocks, "-" bullet markers and "---" horizontal rules.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/pagemark/pagemark"
)

// Ensure Converter implements pagemark.Converter at compile time.
var _ pagemark.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHorizontalRule("---"),
				commonmark.WithBulletListMarker("-"),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Script, style and noscript
// subtrees are dropped before conversion, not rendered as text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}

	stripped, err := stripNonContent(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(stripped)
	if err != nil {
		return "", pagemark.Errorf(pagemark.EEXTRACTION, "markdown conversion: %v", err)
	}

	return result, nil
}

// stripNonContent removes script, style and noscript subtrees.
func stripNonContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", pagemark.Errorf(pagemark.EEXTRACTION, "parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	stripped, err := doc.Html()
	if err != nil {
		return "", pagemark.Errorf(pagemark.EEXTRACTION, "render HTML: %v", err)
	}
	return stripped, nil
}
