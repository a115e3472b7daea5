package pagemark

import "context"

// TranscriptItem is one timed text segment of a video transcript.
type TranscriptItem struct {
	Text     string  `json:"text"`
	Start    float64 `json:"startSeconds"`
	Duration float64 `json:"durationSeconds"`
}

// Transcript is an ordered collection of timed text segments. Items are
// sorted by start time ascending; segments sharing a start time keep their
// discovery order.
type Transcript struct {
	// Title is the video title when any strategy could discover it,
	// otherwise DefaultVideoTitle.
	Title string

	Items []TranscriptItem
}

// TrackKind distinguishes how a caption track was authored.
type TrackKind string

// Track kinds. The platform marks speech-recognition tracks with "asr" and
// leaves manually-authored tracks unmarked.
const (
	TrackManual  TrackKind = ""
	TrackAuto    TrackKind = "asr"
	TrackUnknown TrackKind = "unknown"
)

// CaptionTrack is a language-tagged timed-text source discovered for a
// video. It exists only during transcript discovery.
type CaptionTrack struct {
	LanguageCode string    `json:"languageCode"`
	Kind         TrackKind `json:"kind"`
	BaseURL      string    `json:"baseUrl"`
}

// SelectTrack picks the best caption track for the primary language:
// a manually-authored track first, then a speech-recognition track, then the
// first available track. Returns false when tracks is empty.
func SelectTrack(tracks []CaptionTrack, primaryLang string) (CaptionTrack, bool) {
	if len(tracks) == 0 {
		return CaptionTrack{}, false
	}
	for _, t := range tracks {
		if t.LanguageCode == primaryLang && t.Kind == TrackManual {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == primaryLang && t.Kind == TrackAuto {
			return t, true
		}
	}
	return tracks[0], true
}

// TimedTextParser parses timed-text XML into transcript items.
type TimedTextParser interface {
	// Parse decodes <text start dur> elements, tolerating the d= duration
	// variant and the millisecond-based <p t= d=> variant, normalizing all
	// times to seconds and decoding HTML entities in the payload.
	// Returns EEXTRACTION for input that contains no timed text.
	Parse(xml string) ([]TranscriptItem, error)
}

// RelayTranscript is the response of the delegated extraction relay.
type RelayTranscript struct {
	Success    bool   `json:"success"`
	Title      string `json:"title"`
	Transcript string `json:"transcript"` // raw timed-text XML
	Language   string `json:"language"`
}

// TranscriptRelay is an external collaborator that performs page-scrape and
// caption-track discovery server-side.
type TranscriptRelay interface {
	// FetchTranscript asks the relay for the video's transcript XML.
	FetchTranscript(ctx context.Context, videoID string) (*RelayTranscript, error)
}
