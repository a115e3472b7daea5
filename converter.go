package pagemark

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. from an Extractor) into Markdown:
	// ATX headings, fenced code blocks, "-" bullets, "---" horizontal rules.
	// Script, style and noscript content is dropped, not converted.
	Convert(html string) (string, error)
}
