// Package youtube resolves a video ID into a timed transcript through an
// ordered chain of independently-fallible discovery strategies: the caption
// delivery endpoint, a delegated extraction relay, and a proxied scrape of
// the watch page's embedded player configuration.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/goquery"
)

const (
	watchPageURL = "https://www.youtube.com/watch?v=%s"
	timedTextURL = "https://www.youtube.com/api/timedtext?v=%s&lang=%s"

	// playerResponseMarker precedes the embedded player configuration JSON
	// on the watch page.
	playerResponseMarker = "var ytInitialPlayerResponse = "

	// titleSuffix is the platform suffix trimmed from page titles.
	titleSuffix = " - YouTube"
)

// captionTracksRE is the last-chance lazy match for the caption track list,
// used only when the brace scan could not isolate the player configuration.
var captionTracksRE = regexp.MustCompile(`"captionTracks":\s*(\[.*?\])`)

// DefaultLanguages is the preference-ordered list tried against the caption
// delivery endpoint: primary UI language first, then a broad default set.
func DefaultLanguages() []string {
	return []string{"en", "ru", "es", "fr", "de"}
}

// Ensure Extractor implements pagemark.TranscriptExtractor at compile time.
var _ pagemark.TranscriptExtractor = (*Extractor)(nil)

// Extractor discovers caption tracks for a video and yields ordered timed
// text segments. Strategies run strictly in priority order and the chain
// short-circuits on the first strategy that produces at least one item.
// A failure inside one strategy is logged and swallowed, never propagated,
// as long as another strategy remains.
type Extractor struct {
	// Direct fetches the caption delivery endpoint without a relay.
	Direct pagemark.Fetcher

	// Proxy fetches the watch page and caption locators through the proxy
	// channel.
	Proxy pagemark.Fetcher

	// Relay is the delegated extraction relay. Optional; the strategy is
	// skipped when nil.
	Relay pagemark.TranscriptRelay

	// TimedText parses caption XML payloads.
	TimedText pagemark.TimedTextParser

	// Languages overrides DefaultLanguages when non-empty. The first entry
	// is the primary language used for caption-track selection.
	Languages []string

	// Logger receives diagnostics for swallowed strategy failures.
	// Optional; defaults to slog.Default().
	Logger *slog.Logger
}

type strategy struct {
	name  string
	fetch func(ctx context.Context, videoID string) (*pagemark.Transcript, error)
}

// ExtractTranscript tries each strategy in order until one yields items.
// Returns ENOCAPTIONS when every strategy is exhausted.
func (e *Extractor) ExtractTranscript(ctx context.Context, videoID string) (*pagemark.Transcript, error) {
	strategies := []strategy{
		{name: "timedtext", fetch: e.directTimedText},
		{name: "relay", fetch: e.relayTranscript},
		{name: "pagescrape", fetch: e.scrapeWatchPage},
	}

	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return nil, pagemark.Errorf(pagemark.EFETCH, "transcript extraction aborted: %v", err)
		}

		transcript, err := s.fetch(ctx, videoID)
		if err != nil {
			e.logger().Warn("transcript strategy failed",
				"strategy", s.name,
				"videoID", videoID,
				"error", err,
			)
			continue
		}
		if transcript == nil || len(transcript.Items) == 0 {
			continue
		}

		e.logger().Debug("transcript strategy succeeded",
			"strategy", s.name,
			"videoID", videoID,
			"segments", len(transcript.Items),
		)
		if transcript.Title == "" {
			transcript.Title = pagemark.DefaultVideoTitle
		}
		return transcript, nil
	}

	return nil, pagemark.Errorf(pagemark.ENOCAPTIONS,
		"No captions found for this video. The video may not have subtitles enabled.")
}

// directTimedText requests the caption delivery endpoint for each preferred
// language, accepting the first non-empty timed-text body. Absence of
// captions is an empty or non-XML body, not a transport error.
func (e *Extractor) directTimedText(ctx context.Context, videoID string) (*pagemark.Transcript, error) {
	var lastErr error
	for _, lang := range e.languages() {
		body, err := e.Direct.Fetch(ctx, fmt.Sprintf(timedTextURL, url.QueryEscape(videoID), url.QueryEscape(lang)))
		if err != nil {
			lastErr = err
			continue
		}
		if !strings.Contains(body, "<text") {
			lastErr = pagemark.Errorf(pagemark.EFETCH, "no timed text for language %q", lang)
			continue
		}

		items, err := e.TimedText.Parse(body)
		if err != nil {
			lastErr = err
			continue
		}
		return &pagemark.Transcript{Items: items}, nil
	}
	if lastErr == nil {
		lastErr = pagemark.Errorf(pagemark.EFETCH, "no languages configured")
	}
	return nil, lastErr
}

// relayTranscript delegates discovery to the extraction relay, using its
// returned title and track XML directly.
func (e *Extractor) relayTranscript(ctx context.Context, videoID string) (*pagemark.Transcript, error) {
	if e.Relay == nil {
		return nil, pagemark.Errorf(pagemark.EFETCH, "no transcript relay configured")
	}

	rt, err := e.Relay.FetchTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !rt.Success || rt.Transcript == "" {
		return nil, pagemark.Errorf(pagemark.EFETCH, "relay reported no transcript")
	}

	items, err := e.TimedText.Parse(rt.Transcript)
	if err != nil {
		return nil, err
	}

	return &pagemark.Transcript{Title: rt.Title, Items: items}, nil
}

// scrapeWatchPage fetches the watch page through the proxy channel, isolates
// the embedded player configuration, selects the best caption track, and
// fetches its timed text.
func (e *Extractor) scrapeWatchPage(ctx context.Context, videoID string) (*pagemark.Transcript, error) {
	page, err := e.Proxy.Fetch(ctx, fmt.Sprintf(watchPageURL, url.QueryEscape(videoID)))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(strings.TrimSuffix(goquery.Title(page), titleSuffix))

	tracks := captionTracks(page)
	track, ok := pagemark.SelectTrack(tracks, e.languages()[0])
	if !ok || track.BaseURL == "" {
		return nil, pagemark.Errorf(pagemark.EEXTRACTION, "no caption tracks in player configuration")
	}

	captionXML, err := e.Proxy.Fetch(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	items, err := e.TimedText.Parse(captionXML)
	if err != nil {
		return nil, err
	}

	return &pagemark.Transcript{Title: title, Items: items}, nil
}

// playerResponse is the fixed structured path to the caption track list
// inside the embedded player configuration.
type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// captionTracks reads the caption-track list from the page, first via the
// brace scan of the player configuration, then via a lazy regex as a last
// chance on pages where the scan fails.
func captionTracks(page string) []pagemark.CaptionTrack {
	if jsonStr, err := ExtractJSONObject(page, playerResponseMarker); err == nil {
		var pr playerResponse
		if err := json.Unmarshal([]byte(jsonStr), &pr); err == nil {
			if tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks; len(tracks) > 0 {
				return toDomainTracks(tracks)
			}
		}
	}

	if m := captionTracksRE.FindStringSubmatch(page); m != nil {
		var tracks []captionTrack
		if err := json.Unmarshal([]byte(m[1]), &tracks); err == nil {
			return toDomainTracks(tracks)
		}
	}

	return nil
}

func toDomainTracks(tracks []captionTrack) []pagemark.CaptionTrack {
	out := make([]pagemark.CaptionTrack, 0, len(tracks))
	for _, t := range tracks {
		kind := pagemark.TrackKind(t.Kind)
		switch kind {
		case pagemark.TrackManual, pagemark.TrackAuto:
		default:
			kind = pagemark.TrackUnknown
		}
		out = append(out, pagemark.CaptionTrack{
			LanguageCode: t.LanguageCode,
			Kind:         kind,
			BaseURL:      t.BaseURL,
		})
	}
	return out
}

func (e *Extractor) languages() []string {
	if len(e.Languages) > 0 {
		return e.Languages
	}
	return DefaultLanguages()
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
