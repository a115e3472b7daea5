package pagemark

// Renderer produces the canonical Markdown document for an extraction
// result: a frontmatter block, a title heading, and the body. Rendering is
// deterministic apart from the capture timestamp, which is taken once per
// conversion.
type Renderer interface {
	// RenderArticle renders a document extraction for the given source URL.
	RenderArticle(article *ArticleContent, url string) (*ConversionResult, error)

	// RenderTranscript renders a video transcript for the given video ID.
	RenderTranscript(transcript *Transcript, videoID string) (*ConversionResult, error)
}
