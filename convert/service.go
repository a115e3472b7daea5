// Package convert provides the conversion orchestrator: it classifies a
// submitted URL, routes it to the matching extractor, and renders the result
// as canonical Markdown. A batch service runs many conversions concurrently,
// each owning an independent ProcessedLink entry.
package convert

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pagemark/pagemark"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds concurrent conversions in ConvertAll.
const DefaultConcurrency = 4

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Service is the single entry point for conversions. Each invocation is
// independent and carries no state across calls; concurrent use is safe.
type Service struct {
	Documents   pagemark.DocumentExtractor
	Transcripts pagemark.TranscriptExtractor
	Renderer    pagemark.Renderer

	// Links, when set, journals every conversion's lifecycle. It is never
	// consulted before converting; it only records outcomes. A journal write
	// failure never fails the conversion; it is logged and the in-memory
	// link stays authoritative for this batch.
	Links pagemark.LinkService

	// Concurrency bounds ConvertAll. Defaults to DefaultConcurrency.
	Concurrency int

	// Logger receives diagnostics for failed journal writes. Optional;
	// defaults to slog.Default().
	Logger *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Convert converts a single URL, propagating the first unrecovered failure
// unchanged. Retries live inside the transcript extractor's strategy chain,
// never at this layer.
func (s *Service) Convert(ctx context.Context, url string) (*pagemark.ConversionResult, error) {
	c, err := pagemark.Classify(url)
	if err != nil {
		return nil, err
	}

	switch c.Kind {
	case pagemark.KindVideo:
		transcript, err := s.Transcripts.ExtractTranscript(ctx, c.VideoID)
		if err != nil {
			return nil, err
		}
		return s.Renderer.RenderTranscript(transcript, c.VideoID)
	default:
		article, err := s.Documents.ExtractDocument(ctx, url)
		if err != nil {
			return nil, err
		}
		return s.Renderer.RenderArticle(article, url)
	}
}

// ConvertAll converts every URL as an independent concurrent task. A failed
// conversion leaves its link in error state and never disturbs the others.
// Links are returned in input order.
func (s *Service) ConvertAll(ctx context.Context, urls []string, progress ProgressFunc) []*pagemark.ProcessedLink {
	links := make([]*pagemark.ProcessedLink, len(urls))

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		g.Go(func() error {
			link := s.convertOne(gctx, url)
			links[i] = link

			if progress != nil {
				done := int(completed.Add(1))
				event := ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, URL: url}
				if link.Status == pagemark.LinkError {
					event.Type = ProgressFailed
					event.Error = pagemark.Errorf(pagemark.EINTERNAL, "%s", link.Error)
				}
				progress(event)
			}
			return nil
		})
	}
	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return links
}

// convertOne runs one conversion and drives its link through the lifecycle:
// processing, then exactly one transition to completed or error.
func (s *Service) convertOne(ctx context.Context, url string) *pagemark.ProcessedLink {
	link := &pagemark.ProcessedLink{
		URL:    url,
		Status: pagemark.LinkProcessing,
	}

	if s.Links != nil {
		// Journal assigns the authoritative ID.
		if err := s.Links.CreateLink(ctx, link); err != nil {
			s.logger().Warn("journal create failed",
				"url", url,
				"error", err,
			)
		}
	}
	if link.ID == "" {
		// No journal, or the journal write failed: the link still needs a
		// distinct ID within this batch.
		link.ID = uuid.New().String()
	}

	result, err := s.Convert(ctx, url)
	if err != nil {
		link.Status = pagemark.LinkError
		link.Error = pagemark.ErrorMessage(err)
		if s.Links != nil {
			if jerr := s.Links.FailLink(ctx, link.ID, link.Error); jerr != nil {
				s.logger().Warn("journal error-transition failed",
					"url", url,
					"id", link.ID,
					"error", jerr,
				)
			}
		}
		return link
	}

	link.Status = pagemark.LinkCompleted
	link.Result = result
	if s.Links != nil {
		if jerr := s.Links.CompleteLink(ctx, link.ID, result); jerr != nil {
			s.logger().Warn("journal completion failed",
				"url", url,
				"id", link.ID,
				"error", jerr,
			)
		}
	}
	return link
}
