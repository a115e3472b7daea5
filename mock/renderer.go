package mock

import "github.com/pagemark/pagemark"

var _ pagemark.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pagemark.Renderer.
type Renderer struct {
	RenderArticleFn    func(article *pagemark.ArticleContent, url string) (*pagemark.ConversionResult, error)
	RenderTranscriptFn func(transcript *pagemark.Transcript, videoID string) (*pagemark.ConversionResult, error)
}

func (r *Renderer) RenderArticle(article *pagemark.ArticleContent, url string) (*pagemark.ConversionResult, error) {
	return r.RenderArticleFn(article, url)
}

func (r *Renderer) RenderTranscript(transcript *pagemark.Transcript, videoID string) (*pagemark.ConversionResult, error) {
	return r.RenderTranscriptFn(transcript, videoID)
}
