// Package markdown renders extraction results into the canonical Markdown
// document: a YAML frontmatter block, a title heading, and the body.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/pagemark/pagemark"
)

// Ensure Renderer implements pagemark.Renderer at compile time.
var _ pagemark.Renderer = (*Renderer)(nil)

// Renderer produces ConversionResults. Rendering is pure apart from the
// capture timestamp, taken once per conversion from Now.
type Renderer struct {
	// Now supplies the capture time. Defaults to time.Now.
	Now func() time.Time
}

// NewRenderer creates a Renderer using the wall clock.
func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

func (r *Renderer) timestamp() string {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(pagemark.TimestampLayout)
}

// RenderArticle renders a document extraction for the given source URL.
func (r *Renderer) RenderArticle(article *pagemark.ArticleContent, url string) (*pagemark.ConversionResult, error) {
	if article == nil {
		return nil, pagemark.Errorf(pagemark.EINVALID, "nil article")
	}

	title := article.Title
	if strings.TrimSpace(title) == "" {
		title = pagemark.DefaultDocumentTitle
	}
	author := article.Byline
	if strings.TrimSpace(author) == "" {
		author = "Unknown"
	}

	ts := r.timestamp()

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "source: %s\n", url)
	fmt.Fprintf(&b, "author: %s\n", author)
	fmt.Fprintf(&b, "date: %s\n", ts)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString(article.MarkdownBody)

	return &pagemark.ConversionResult{
		Markdown:  b.String(),
		Title:     title,
		URL:       url,
		Timestamp: ts,
	}, nil
}

// RenderTranscript renders a video transcript for the given video ID.
// Each segment becomes one paragraph: a bold [MM:SS] (or [HH:MM:SS])
// timestamp followed by the text, items in their given order.
func (r *Renderer) RenderTranscript(transcript *pagemark.Transcript, videoID string) (*pagemark.ConversionResult, error) {
	if transcript == nil {
		return nil, pagemark.Errorf(pagemark.EINVALID, "nil transcript")
	}

	title := transcript.Title
	if strings.TrimSpace(title) == "" {
		title = pagemark.DefaultVideoTitle
	}

	ts := r.timestamp()
	videoURL := "https://www.youtube.com/watch?v=" + videoID

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "source: %s\n", videoURL)
	fmt.Fprintf(&b, "video_id: %s\n", videoID)
	fmt.Fprintf(&b, "date: %s\n", ts)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Video:** [%s](%s)\n\n---\n\n", videoURL, videoURL)

	for _, item := range transcript.Items {
		fmt.Fprintf(&b, "**[%s]** %s\n\n", pagemark.FormatTimestamp(item.Start), item.Text)
	}

	return &pagemark.ConversionResult{
		Markdown:  b.String(),
		Title:     title,
		URL:       videoURL,
		Timestamp: ts,
	}, nil
}
