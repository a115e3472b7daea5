package pagemark

import "regexp"

// ResourceKind identifies which extraction pipeline applies to a URL.
type ResourceKind string

// Resource kinds.
const (
	KindDocument ResourceKind = "document"
	KindVideo    ResourceKind = "video"
)

// Classification is the outcome of classifying a URL. VideoID is set only
// when Kind is KindVideo.
type Classification struct {
	Kind    ResourceKind
	VideoID string
}

var (
	// videoPageRE recognizes watch-page, short-link and embed-link shapes.
	videoPageRE = regexp.MustCompile(`(?:youtube\.com/watch|youtu\.be/|youtube\.com/embed/)`)

	// videoIDPatterns extract the video identifier; the first capturing
	// group of the first matching pattern wins.
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
		regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
	}

	// bareVideoIDRE matches a bare 11-character identifier token.
	bareVideoIDRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// Classify inspects a URL and decides which extraction pipeline applies.
// It is pure: repeated calls with the same URL yield the same result.
//
// A URL is a video if it matches a known video-platform shape or is itself a
// bare 11-character identifier; everything else is a document. Document
// classification never fails; a fetch or parse failure of a non-article URL
// is reported by the document pipeline itself. Classification fails with
// ECLASSIFICATION only when a video shape matched but no identifier could be
// extracted.
func Classify(url string) (Classification, error) {
	if !videoPageRE.MatchString(url) && !bareVideoIDRE.MatchString(url) {
		return Classification{Kind: KindDocument}, nil
	}

	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return Classification{Kind: KindVideo, VideoID: m[1]}, nil
		}
	}

	return Classification{}, Errorf(ECLASSIFICATION, "could not extract video ID from %q", url)
}
