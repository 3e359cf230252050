package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"keyword-service/frontend/adapters/api"
	"keyword-service/frontend/adapters/web"
	"keyword-service/frontend/adapters/web/middleware"
	"keyword-service/frontend/config"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
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
	log.Info("starting Web server")
	log.Debug("debug messages are enabled")

	// API adapter
	api := api.NewClient(cfg.Api.ApiAddress, cfg.Api.Timeout, log)

	pages, err := web.NewPages(log)
	if err != nil {
		return fmt.Errorf("cannot load pages: %w", err)
	}

	mux := http.NewServeMux()

	// HTML pages
	mux.Handle("GET /{$}", pages.Page("index.html"))
	mux.Handle("POST /analyze", pages.NewAnalyzeHandler(api))
	mux.Handle("GET /compare", pages.Page("compare.html"))
	mux.Handle("POST /compare", pages.NewCompareHandler(api))
	mux.Handle("GET /login", pages.Page("login.html"))
	mux.Handle("POST /login", pages.NewLoginHandler(api, cfg.Auth.TokenTtl))
	mux.Handle("POST /logout", pages.NewLogoutHandler())

	// Admin pages (requires session cookie)
	mux.Handle("GET /admin", middleware.RequireToken(pages.NewAdminHandler()))
	mux.Handle("POST /admin/cache/drop", middleware.RequireToken(pages.NewDropCacheHandler(api)))
	mux.Handle("POST /admin/cache/prune", middleware.RequireToken(pages.NewPruneCacheHandler(api)))

	mux.Handle("GET /api/ping", web.NewPingHandler(log, api))

	handler := middleware.Logging(mux, log)
	handler = middleware.PanicRecovery(handler, log)

	server := http.Server{
		Addr:        cfg.Web.Address,
		ReadTimeout: cfg.Web.Timeout,
		Handler:     handler,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down Web server...")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxTimeout); err != nil {
			log.Error("erroneous shutdown", "error", err)
			return
		}
		log.Debug("Web server stopped gracefully")
	}()

	log.Info("Running Web server", "address", cfg.Web.Address)
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
