// Package etree parses timed-text XML caption payloads into transcript
// items using beevik/etree.
package etree

import (
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/pagemark/pagemark"
)

// Ensure Parser implements pagemark.TimedTextParser at compile time.
var _ pagemark.TimedTextParser = (*Parser)(nil)

// Parser decodes the caption-delivery XML dialects into transcript items.
//
// Two shapes are tolerated:
//
//	<transcript><text start="1.5" dur="2.1">...</text></transcript>
//	<timedtext><body><p t="1500" d="2100">...</p></body></timedtext>
//
// The first carries seconds (with "d" accepted as an alternate duration
// attribute); the second carries milliseconds. All times are normalized to
// seconds.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes timed-text XML into transcript items sorted by start time
// non-decreasing. Segments sharing a start time keep document order.
func (p *Parser) Parse(xml string) ([]pagemark.TranscriptItem, error) {
	if strings.TrimSpace(xml) == "" {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "empty timed-text payload")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "malformed timed-text XML: %v", err)
	}

	var items []pagemark.TranscriptItem

	for _, el := range doc.FindElements("//text") {
		items = append(items, pagemark.TranscriptItem{
			Text:     decodeText(el),
			Start:    parseSeconds(el.SelectAttrValue("start", "0")),
			Duration: parseSeconds(firstAttr(el, "dur", "d")),
		})
	}

	// Millisecond-based variant: <p t="..." d="...">.
	if len(items) == 0 {
		for _, el := range doc.FindElements("//p") {
			if el.SelectAttr("t") == nil {
				continue
			}
			items = append(items, pagemark.TranscriptItem{
				Text:     decodeText(el),
				Start:    parseSeconds(el.SelectAttrValue("t", "0")) / 1000,
				Duration: parseSeconds(el.SelectAttrValue("d", "0")) / 1000,
			})
		}
	}

	if len(items) == 0 {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "timed-text payload contains no text elements")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start < items[j].Start
	})

	return items, nil
}

// decodeText returns the element's full text with HTML entities decoded.
// The XML layer already decodes XML entities; caption payloads are often
// double-encoded (&amp;#39; and friends), so a second HTML pass is applied.
func decodeText(el *etree.Element) string {
	var b strings.Builder
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			b.WriteString(node.Data)
		case *etree.Element:
			b.WriteString(node.Text())
		}
	}
	return html.UnescapeString(b.String())
}

// firstAttr returns the first present attribute value among names,
// or "0" when none is set.
func firstAttr(el *etree.Element, names ...string) string {
	for _, name := range names {
		if attr := el.SelectAttr(name); attr != nil {
			return attr.Value
		}
	}
	return "0"
}

// parseSeconds converts an attribute value to a float, treating garbage
// as zero the way the upstream players do.
func parseSeconds(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}
