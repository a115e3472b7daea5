package pagemark

// ArticleContent is the output of the document pipeline: the simplified
// article converted to Markdown, plus the metadata recovered alongside it.
type ArticleContent struct {
	// Title is the article title. Never empty; DefaultDocumentTitle is used
	// when the page withholds one.
	Title string

	// Byline is the author attribution, or empty when the page carries none.
	Byline string

	// MarkdownBody is the simplified article body as Markdown.
	MarkdownBody string
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Byline is the author attribution from metadata, if any.
	Byline string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// The simplification pass must not mutate its input: implementations work on
// their own parsed copy of the page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content. pageURL is
	// the address the HTML was fetched from, used to resolve relative links.
	// Returns EEXTRACTION when the page yields no usable body.
	Extract(html, pageURL string) (*ExtractResult, error)
}

// Preparer normalizes raw HTML before extraction, e.g. by injecting a base
// directive so relative links and images resolve against the original URL.
type Preparer interface {
	Prepare(html, pageURL string) (string, error)
}

// FallbackExtractor tries each extractor in order and returns the first
// usable result. An extractor that errors or produces an empty body is
// skipped; when all are exhausted the last error is returned.
type FallbackExtractor []Extractor

var _ Extractor = (FallbackExtractor)(nil)

// Extract implements Extractor.
func (fe FallbackExtractor) Extract(html, pageURL string) (*ExtractResult, error) {
	var lastErr error
	for _, e := range fe {
		result, err := e.Extract(html, pageURL)
		if err != nil {
			lastErr = err
			continue
		}
		if result == nil || result.ContentHTML == "" {
			lastErr = Errorf(EEXTRACTION, "no article content found")
			continue
		}
		return result, nil
	}
	if lastErr == nil {
		lastErr = Errorf(EEXTRACTION, "no extractors configured")
	}
	return nil, lastErr
}
