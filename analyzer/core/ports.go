package core

import (
	"context"
	"keyword-service/words/words"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mocks.go -package=core

type Analyzer interface {
	AnalyzeVideo(ctx context.Context, rawURL string, minOccurrences int) (Report, error)
	AnalyzeText(ctx context.Context, label, text string, minOccurrences int) (Report, error)
	Compare(ctx context.Context, sources []Source, minOccurrences, minDocuments int) (Comparison, error)
}

type CacheManager interface {
	DropCache(ctx context.Context) error
	PruneCache(ctx context.Context) error
}

type Words interface {
	Count(ctx context.Context, text string) (words.TokenCount, error)
}

type Transcripts interface {
	Transcript(ctx context.Context, videoID string) ([]string, error)
}

type Titles interface {
	Title(ctx context.Context, videoID string) (string, error)
}

type Proofreader interface {
	Proofread(ctx context.Context, text string) (Proofread, error)
}

type Cache interface {
	Get(ctx context.Context, videoID string) (Transcript, error)
	Put(ctx context.Context, transcript Transcript) error
	Drop(ctx context.Context) error
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type Publisher interface {
	Publish(event Event) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Authenticator interface {
	CreateToken(name, password string) (string, error)
	ValidateToken(tokenString string) error
}
