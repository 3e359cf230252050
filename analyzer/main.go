package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"keyword-service/analyzer/adapters/db"
	"keyword-service/analyzer/adapters/proofread"
	"keyword-service/analyzer/adapters/publisher"
	"keyword-service/analyzer/adapters/rest"
	"keyword-service/analyzer/adapters/rest/middleware"
	"keyword-service/analyzer/adapters/scheduler"
	"keyword-service/analyzer/adapters/words"
	"keyword-service/analyzer/adapters/youtube"
	"keyword-service/analyzer/config"
	"keyword-service/analyzer/core"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	var cfg config.Config
	config.MustLoad(configPath, &cfg)

	// Logger
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting analyzer server")
	log.Debug("debug messages are enabled")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pingers := map[string]core.Pinger{}

	// Words adapter
	var counter core.Words = words.Local{}
	if cfg.WordsAddress != "" {
		client, err := words.NewClient(cfg.WordsAddress, log)
		if err != nil {
			return fmt.Errorf("cannot init Words adapter: %w", err)
		}
		defer client.Close()
		counter = client
		pingers["words"] = client
	}

	// YouTube adapter
	yt, err := youtube.NewClient(cfg.Youtube.URL, cfg.Youtube.Language, cfg.Youtube.Timeout, log)
	if err != nil {
		return fmt.Errorf("cannot init YouTube adapter: %w", err)
	}

	// Proofreading adapter
	var proofreader core.Proofreader = proofread.Noop{}
	if cfg.Proofread.URL != "" {
		lt, err := proofread.NewLanguageTool(cfg.Proofread.URL, cfg.Proofread.Language, cfg.Proofread.MaxLength, cfg.Proofread.Timeout, log)
		if err != nil {
			return fmt.Errorf("cannot init LanguageTool adapter: %w", err)
		}
		proofreader = lt
	}

	// Transcript cache
	var cache core.Cache = db.Nop{}
	if cfg.Cache.DBAddress != "" {
		storage, err := db.New(log, cfg.Cache.DBAddress)
		if err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		defer storage.Close()
		if err := storage.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate db: %w", err)
		}
		cache = storage
		pingers["db"] = storage
	}

	// Event publisher
	var events core.Publisher = publisher.Nop{}
	if cfg.Broker.Address != "" {
		pub, err := publisher.NewNatsPublisher(cfg.Broker.Address, cfg.Broker.Subject, log)
		if err != nil {
			return fmt.Errorf("cannot init publisher: %w", err)
		}
		defer pub.Close()
		events = pub
		pingers["broker"] = pub
	}

	service, err := core.NewService(log, counter, yt, yt, proofreader, cache, events, core.Options{
		Concurrency:      cfg.Limits.DocumentConcurrency,
		AnalyzeCorrected: cfg.Proofread.AnalyzeCorrected,
		CacheTTL:         cfg.Cache.TTL,
	})
	if err != nil {
		return fmt.Errorf("cannot init analyzer: %w", err)
	}

	if cfg.Cache.DBAddress != "" && cfg.Cache.TTL > 0 {
		if err := scheduler.NewPruneScheduler(log, service, cfg.Cache.PruneInterval).Start(ctx); err != nil {
			return fmt.Errorf("failed to start prune scheduler: %w", err)
		}
	}

	// Limiters
	analyzeConcLimiter := middleware.NewConcurrencyLimiter(cfg.Limits.AnalyzeConcurrency)
	compareRateLimiter := middleware.NewRateLimiter(cfg.Limits.CompareRate)

	// JWT authenticator
	jwtAth, err := middleware.NewJwtAuthenticator(cfg.Auth.AdminUser, cfg.Auth.AdminPassword, cfg.Auth.JwtSecret, cfg.Auth.TokenTtl)
	if err != nil {
		return fmt.Errorf("cannot init jwt authenticator: %w", err)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	mux := http.NewServeMux()

	// API endpoints
	mux.Handle("POST /api/login", rest.NewLoginHandler(log, jwtAth))
	mux.Handle("POST /api/analyze", analyzeConcLimiter.Limit(rest.NewAnalyzeHandler(log, service)))
	mux.Handle("POST /api/compare", compareRateLimiter.Limit(rest.NewCompareHandler(log, service)))
	mux.Handle("GET /api/ping", rest.NewPingHandler(log, pingers))
	mux.Handle("GET /metrics", metrics.Handler())

	// API admin endpoints (requires JWT)
	mux.Handle("DELETE /api/cache", jwtAth.CheckToken(rest.NewDropCacheHandler(log, service)))
	mux.Handle("POST /api/cache/prune", jwtAth.CheckToken(rest.NewPruneCacheHandler(log, service)))

	handler := metrics.Instrument(mux)
	handler = middleware.Logging(handler, log)
	handler = middleware.PanicRecovery(handler, log)

	server := http.Server{
		Addr:        cfg.ApiConfig.Address,
		ReadTimeout: cfg.ApiConfig.Timeout,
		Handler:     handler,
	}

	go func() {
		<-ctx.Done()
		log.Debug("shutting down analyzer server...")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxTimeout); err != nil {
			log.Error("erroneous shutdown", "error", err)
			return
		}
		log.Debug("analyzer server stopped gracefully")
	}()

	log.Info("Running analyzer server", "address", cfg.ApiConfig.Address)
	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server closed unexpectedly: %w", err)
		}
	}
	return nil
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	return slog.New(handler)
}
