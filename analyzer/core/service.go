package core

import (
	"context"
	"errors"
	"fmt"
	"keyword-service/words/words"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Concurrency bounds how many documents of a comparison are resolved at once.
	Concurrency int
	// AnalyzeCorrected ranks keywords of the proofread text instead of the original.
	AnalyzeCorrected bool
	// CacheTTL is how long a cached transcript stays valid. Zero keeps entries forever.
	CacheTTL time.Duration
}

type Service struct {
	log         *slog.Logger
	words       Words
	transcripts Transcripts
	titles      Titles
	proofreader Proofreader
	cache       Cache
	publisher   Publisher
	opts        Options
	maintenance atomic.Bool
	now         func() time.Time
}

func NewService(
	log *slog.Logger,
	words Words,
	transcripts Transcripts,
	titles Titles,
	proofreader Proofreader,
	cache Cache,
	publisher Publisher,
	opts Options,
) (*Service, error) {
	if opts.Concurrency < 1 {
		return nil, fmt.Errorf("wrong concurrency specified: %d", opts.Concurrency)
	}
	if opts.CacheTTL < 0 {
		return nil, fmt.Errorf("wrong cache ttl specified: %s", opts.CacheTTL)
	}
	if words == nil || transcripts == nil || titles == nil || proofreader == nil || cache == nil || publisher == nil {
		return nil, errors.New("all service dependencies must be set")
	}
	return &Service{
		log:         log,
		words:       words,
		transcripts: transcripts,
		titles:      titles,
		proofreader: proofreader,
		cache:       cache,
		publisher:   publisher,
		opts:        opts,
		now:         time.Now,
	}, nil
}

func (s *Service) AnalyzeVideo(ctx context.Context, rawURL string, minOccurrences int) (Report, error) {
	if minOccurrences < 1 {
		return Report{}, fmt.Errorf("%w: min occurrences %d", ErrBadArguments, minOccurrences)
	}
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		s.log.Debug("rejected video url", "url", rawURL, "error", err)
		return Report{}, err
	}

	doc, err := s.fetchVideo(ctx, rawURL, videoID)
	if err != nil {
		return Report{
			ID:             uuid.NewString(),
			Message:        MsgTranscriptFailed,
			URL:            rawURL,
			MinOccurrences: minOccurrences,
		}, nil
	}
	return s.analyze(ctx, doc, minOccurrences)
}

func (s *Service) AnalyzeText(ctx context.Context, label, text string, minOccurrences int) (Report, error) {
	if minOccurrences < 1 {
		return Report{}, fmt.Errorf("%w: min occurrences %d", ErrBadArguments, minOccurrences)
	}
	if label == "" {
		label = "Pasted text"
	}
	return s.analyze(ctx, Document{Label: label, Text: text}, minOccurrences)
}

// Compare resolves every source in parallel and returns the keywords they
// have in common. Sources whose transcript cannot be fetched are reported
// as failed and left out of the commonality ranking.
func (s *Service) Compare(ctx context.Context, sources []Source, minOccurrences, minDocuments int) (Comparison, error) {
	if len(sources) == 0 {
		return Comparison{}, fmt.Errorf("%w: no documents to compare", ErrBadArguments)
	}
	if minOccurrences < 1 || minDocuments < 1 {
		return Comparison{}, fmt.Errorf(
			"%w: min occurrences %d, min documents %d", ErrBadArguments, minOccurrences, minDocuments,
		)
	}
	videoIDs := make([]string, len(sources))
	for i, src := range sources {
		switch {
		case src.URL != "" && src.Text != "":
			return Comparison{}, fmt.Errorf("%w: document %d has both url and text", ErrBadArguments, i+1)
		case src.URL != "":
			id, err := ExtractVideoID(src.URL)
			if err != nil {
				return Comparison{}, fmt.Errorf("document %d: %w", i+1, err)
			}
			videoIDs[i] = id
		case src.Text == "":
			return Comparison{}, fmt.Errorf("%w: document %d is empty", ErrBadArguments, i+1)
		}
	}

	summaries := make([]DocumentSummary, len(sources))
	counts := make([]words.TokenCount, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			doc := Document{Label: src.Label, Text: src.Text}
			if src.URL != "" {
				fetched, err := s.fetchVideo(gctx, src.URL, videoIDs[i])
				if err != nil {
					summaries[i] = DocumentSummary{
						Label:   cmpLabel(src.Label, src.URL),
						URL:     src.URL,
						Message: MsgTranscriptFailed,
					}
					return nil
				}
				doc = fetched
				if src.Label != "" {
					doc.Label = src.Label
				}
			}
			if doc.Label == "" {
				doc.Label = fmt.Sprintf("Document %d", i+1)
			}

			tc, err := s.words.Count(gctx, doc.Text)
			if err != nil {
				return fmt.Errorf("failed to count words of %q: %w", doc.Label, err)
			}
			ranked, err := words.Rank(tc, minOccurrences)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBadArguments, err)
			}
			counts[i] = tc
			summaries[i] = DocumentSummary{
				Label:      doc.Label,
				URL:        doc.URL,
				Success:    true,
				TotalWords: words.WordCount(doc.Text),
				Keywords:   ranked,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("failed to compare documents", "error", err)
		return Comparison{}, err
	}

	analyzed := make([]words.TokenCount, 0, len(sources))
	for i := range summaries {
		if summaries[i].Success {
			analyzed = append(analyzed, counts[i])
		}
	}
	common, err := words.Common(analyzed, minOccurrences, minDocuments)
	if err != nil {
		return Comparison{}, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}
	s.log.Debug("documents compared",
		"documents", len(sources), "analyzed", len(analyzed), "common", len(common))

	comparison := Comparison{
		ID:             uuid.NewString(),
		Documents:      summaries,
		Common:         common,
		MinOccurrences: minOccurrences,
		MinDocuments:   minDocuments,
	}
	s.publish(Event{Type: EventCompared, ReportID: comparison.ID, Keywords: len(common)})
	return comparison, nil
}

func (s *Service) DropCache(ctx context.Context) error {
	if !s.maintenance.CompareAndSwap(false, true) {
		return ErrAlreadyExists
	}
	defer s.maintenance.Store(false)

	if err := s.cache.Drop(ctx); err != nil {
		s.log.Error("failed to drop transcript cache", "error", err)
		return fmt.Errorf("failed to drop transcript cache: %w", err)
	}
	s.log.Info("transcript cache dropped")
	s.publish(Event{Type: EventCacheDropped})
	return nil
}

// PruneCache removes transcripts older than the configured TTL.
func (s *Service) PruneCache(ctx context.Context) error {
	if s.opts.CacheTTL == 0 {
		return nil
	}
	if !s.maintenance.CompareAndSwap(false, true) {
		return ErrAlreadyExists
	}
	defer s.maintenance.Store(false)

	removed, err := s.cache.Prune(ctx, s.now().Add(-s.opts.CacheTTL))
	if err != nil {
		s.log.Error("failed to prune transcript cache", "error", err)
		return fmt.Errorf("failed to prune transcript cache: %w", err)
	}
	s.log.Debug("transcript cache pruned", "removed", removed)
	return nil
}

func (s *Service) analyze(ctx context.Context, doc Document, minOccurrences int) (Report, error) {
	proofread := s.proofread(ctx, doc.Text)
	text := proofread.Original
	if s.opts.AnalyzeCorrected {
		text = proofread.Corrected
	}

	counts, err := s.words.Count(ctx, text)
	if err != nil {
		s.log.Error("failed to count words", "label", doc.Label, "error", err)
		return Report{}, fmt.Errorf("failed to count words: %w", err)
	}
	ranked, err := words.Rank(counts, minOccurrences)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}

	report := Report{
		ID:             uuid.NewString(),
		Success:        true,
		Title:          doc.Label,
		URL:            doc.URL,
		Transcript:     &proofread,
		Keywords:       ranked,
		TotalWords:     words.WordCount(text),
		MinOccurrences: minOccurrences,
	}
	s.log.Debug("document analyzed",
		"report_id", report.ID, "label", doc.Label, "words", report.TotalWords, "keywords", len(ranked))
	s.publish(Event{Type: EventAnalyzed, ReportID: report.ID, Keywords: len(ranked)})
	return report, nil
}

// fetchVideo returns the transcript of a video as a document, reading
// through the cache. The title falls back to UnknownTitle.
func (s *Service) fetchVideo(ctx context.Context, rawURL, videoID string) (Document, error) {
	cached, err := s.cache.Get(ctx, videoID)
	switch {
	case err == nil:
		s.log.Debug("transcript cache hit", "video_id", videoID)
		return Document{Label: cached.Title, URL: rawURL, Text: cached.Text()}, nil
	case !errors.Is(err, ErrNotFound):
		s.log.Warn("failed to read transcript cache", "video_id", videoID, "error", err)
	}

	segments, err := s.transcripts.Transcript(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Warn("transcript not found", "video_id", videoID)
		} else {
			s.log.Error("failed to get transcript", "video_id", videoID, "error", err)
		}
		return Document{}, fmt.Errorf("failed to get transcript of %s: %w", videoID, err)
	}
	transcript := Transcript{
		VideoID:   videoID,
		Segments:  segments,
		FetchedAt: s.now(),
	}
	if strings.TrimSpace(transcript.Text()) == "" {
		s.log.Warn("transcript is empty", "video_id", videoID)
		return Document{}, fmt.Errorf("empty transcript of %s: %w", videoID, ErrNotFound)
	}
	transcript.Title = s.title(ctx, videoID)

	if err := s.cache.Put(ctx, transcript); err != nil {
		s.log.Warn("failed to cache transcript", "video_id", videoID, "error", err)
	}
	return Document{Label: transcript.Title, URL: rawURL, Text: transcript.Text()}, nil
}

func (s *Service) title(ctx context.Context, videoID string) string {
	title, err := s.titles.Title(ctx, videoID)
	if err != nil {
		s.log.Warn("failed to get video title", "video_id", videoID, "error", err)
		return UnknownTitle
	}
	if strings.TrimSpace(title) == "" {
		return UnknownTitle
	}
	return title
}

func (s *Service) proofread(ctx context.Context, text string) Proofread {
	result, err := s.proofreader.Proofread(ctx, text)
	if err != nil {
		s.log.Warn("failed to proofread text", "error", err)
		return Proofread{Original: text, Corrected: text}
	}
	return result
}

func (s *Service) publish(event Event) {
	event.ID = uuid.NewString()
	event.Time = s.now()
	if err := s.publisher.Publish(event); err != nil {
		s.log.Error("failed to publish", "type", event.Type, "error", err)
	}
}

func cmpLabel(label, rawURL string) string {
	if label != "" {
		return label
	}
	return rawURL
}
