package pagemark

import (
	"context"
	"time"
)

// Title placeholders used when no title can be recovered from the source.
const (
	DefaultDocumentTitle = "Untitled Document"
	DefaultVideoTitle    = "YouTube Video Transcript"
)

// TimestampLayout is the fixed format of ConversionResult.Timestamp,
// second-precision local time captured once per conversion.
const TimestampLayout = "2006-01-02 15:04:05"

// ConversionResult is the outcome of a successful conversion. It is produced
// exactly once per conversion and immutable thereafter. Markdown always
// begins with a YAML frontmatter block followed by a title heading and body.
type ConversionResult struct {
	Markdown  string `json:"markdown"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
}

// LinkStatus describes the lifecycle state of a ProcessedLink.
type LinkStatus string

// A link is created in processing and transitions exactly once to completed
// or errored; it never transitions again.
const (
	LinkProcessing LinkStatus = "processing"
	LinkCompleted  LinkStatus = "completed"
	LinkError      LinkStatus = "error"
)

// ProcessedLink records the outcome of one conversion request. Entries are
// independent: concurrent conversions each own their entry exclusively until
// it reaches a terminal state.
//
// The link journal is not a cache. Conversions never consult it before
// fetching; it only records what happened.
type ProcessedLink struct {
	ID        string            `json:"id"`
	URL       string            `json:"url"`
	Status    LinkStatus        `json:"status"`
	Result    *ConversionResult `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Validate returns an error if the link contains invalid fields.
func (l *ProcessedLink) Validate() error {
	if l.URL == "" {
		return Errorf(EINVALID, "link URL required")
	}
	switch l.Status {
	case LinkProcessing, LinkCompleted, LinkError:
	default:
		return Errorf(EINVALID, "invalid link status %q", l.Status)
	}
	return nil
}

// LinkFilter represents a filter for FindLinks.
type LinkFilter struct {
	ID     *string     `json:"id"`
	URL    *string     `json:"url"`
	Status *LinkStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// LinkService manages the journal of processed links.
type LinkService interface {
	// CreateLink records a new link in processing state and assigns its ID.
	CreateLink(ctx context.Context, link *ProcessedLink) error

	// CompleteLink transitions a processing link to completed with its result.
	// Returns ENOTFOUND if the link does not exist, EINVALID if the link is
	// already terminal.
	CompleteLink(ctx context.Context, id string, result *ConversionResult) error

	// FailLink transitions a processing link to errored with a human-readable
	// message. Returns ENOTFOUND if the link does not exist, EINVALID if the
	// link is already terminal.
	FailLink(ctx context.Context, id string, message string) error

	// FindLinkByID retrieves a link by ID. Returns ENOTFOUND if it does not
	// exist.
	FindLinkByID(ctx context.Context, id string) (*ProcessedLink, error)

	// FindLinks retrieves links matching the filter, newest first.
	FindLinks(ctx context.Context, filter LinkFilter) ([]*ProcessedLink, error)

	// DeleteLink permanently removes a link. Returns ENOTFOUND if it does
	// not exist.
	DeleteLink(ctx context.Context, id string) error

	// DeleteAllLinks removes every link.
	DeleteAllLinks(ctx context.Context) error
}

// DocumentExtractor turns an article page URL into extracted content.
// Implementations hide fetching, DOM preparation, boilerplate removal and
// markdown conversion.
type DocumentExtractor interface {
	// ExtractDocument fetches and simplifies the page at url.
	// Returns EFETCH when the page cannot be retrieved and EEXTRACTION when
	// it yields no article-shaped body.
	ExtractDocument(ctx context.Context, url string) (*ArticleContent, error)
}

// TranscriptExtractor resolves a video ID into a timed transcript.
type TranscriptExtractor interface {
	// ExtractTranscript tries an ordered chain of discovery strategies and
	// returns the first non-empty transcript. Returns ENOCAPTIONS when every
	// strategy is exhausted.
	ExtractTranscript(ctx context.Context, videoID string) (*Transcript, error)
}
