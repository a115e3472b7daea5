// Package goquery provides DOM utilities built on PuerkitoBio/goquery:
// pre-extraction document preparation and page metadata helpers.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemark/pagemark"
)

// Ensure Preparer implements pagemark.Preparer at compile time.
var _ pagemark.Preparer = (*Preparer)(nil)

// Preparer normalizes raw HTML before extraction by injecting a
// <base href> directive so relative links and images resolve against the
// address the page was fetched from.
type Preparer struct{}

// NewPreparer creates a new Preparer.
func NewPreparer() *Preparer {
	return &Preparer{}
}

// Prepare parses html and injects a base directive pointing at pageURL.
// An existing base directive is left untouched.
func (p *Preparer) Prepare(html, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", pagemark.Errorf(pagemark.EEXTRACTION, "parse HTML: %v", err)
	}

	head := doc.Find("head").First()
	if head.Length() > 0 && head.Find("base[href]").Length() == 0 {
		head.PrependHtml(`<base href="` + pageURL + `">`)
	}

	prepared, err := doc.Html()
	if err != nil {
		return "", pagemark.Errorf(pagemark.EEXTRACTION, "render HTML: %v", err)
	}

	return prepared, nil
}

// Title returns the text of the page's <title> element, trimmed of
// surrounding whitespace. Returns an empty string when the page has none.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
