package core

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks.go -package=core

type Pinger interface {
	Ping(ctx context.Context) (PingResponse, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (Report, error)
	Compare(ctx context.Context, req CompareRequest) (Comparison, error)
}

type CacheAdmin interface {
	DropCache(ctx context.Context) error
	PruneCache(ctx context.Context) error
}

type Authenticator interface {
	Login(ctx context.Context, name, password string) (string, error)
}
