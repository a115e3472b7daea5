package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pagemark/pagemark"
)

// Ensure TranscriptRelay implements pagemark.TranscriptRelay at compile time.
var _ pagemark.TranscriptRelay = (*TranscriptRelay)(nil)

// TranscriptRelay talks to the delegated extraction relay, an external
// collaborator that performs page-scrape and caption-track discovery
// server-side and returns the raw timed-text XML as JSON.
//
// Contract: GET <relay>?videoId=<id> -> {success, title?, transcript?}.
type TranscriptRelay struct {
	baseURL string
	client  *http.Client
}

// NewTranscriptRelay creates a relay client for the given base URL.
func NewTranscriptRelay(baseURL string, timeout time.Duration) *TranscriptRelay {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &TranscriptRelay{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchTranscript asks the relay for the video's transcript XML.
func (r *TranscriptRelay) FetchTranscript(ctx context.Context, videoID string) (*pagemark.RelayTranscript, error) {
	reqURL := r.baseURL + "?videoId=" + url.QueryEscape(videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EFETCH, "invalid relay request: %v", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EFETCH, "relay %s: %v", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pagemark.Errorf(pagemark.EFETCH, "relay %s: status %d", reqURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EFETCH, "relay read: %v", err)
	}

	var rt pagemark.RelayTranscript
	if err := json.Unmarshal(body, &rt); err != nil {
		return nil, pagemark.Errorf(pagemark.EFETCH, "relay response is not JSON: %v", err)
	}

	return &rt, nil
}
