package main

import (
	"fmt"
	"keyword-service/analyzer/adapters/db"
	"keyword-service/analyzer/adapters/proofread"
	"keyword-service/analyzer/adapters/publisher"
	"keyword-service/analyzer/adapters/words"
	"keyword-service/analyzer/adapters/youtube"
	"keyword-service/analyzer/core"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// settings configure the in-process analyzer. Flags override the environment.
type settings struct {
	YoutubeURL       string        `env:"YOUTUBE_URL" env-default:"https://www.youtube.com"`
	Language         string        `env:"YOUTUBE_LANGUAGE" env-default:"en"`
	LanguageToolURL  string        `env:"LANGUAGETOOL_URL"`
	ProofreadLang    string        `env:"LANGUAGETOOL_LANGUAGE" env-default:"en-US"`
	ProofreadMaxLen  int           `env:"LANGUAGETOOL_MAX_LENGTH" env-default:"20000"`
	WordsAddress     string        `env:"WORDS_ADDRESS"`
	AnalyzeCorrected bool          `env:"ANALYZE_CORRECTED" env-default:"false"`
	Timeout          time.Duration `env:"KEYWORDS_TIMEOUT" env-default:"1m"`
	Concurrency      int           `env:"DOCUMENT_CONCURRENCY" env-default:"4"`
	LogLevel         string        `env:"LOG_LEVEL" env-default:"ERROR"`
}

func loadSettings() (settings, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return settings{}, fmt.Errorf("cannot read .env: %w", err)
	}
	var s settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		return settings{}, fmt.Errorf("cannot read environment: %w", err)
	}
	return s, nil
}

// serviceFactory builds the analyzer for one command run. The returned
// function releases its connections.
type serviceFactory func(s settings, log *slog.Logger) (core.Analyzer, func(), error)

func newService(s settings, log *slog.Logger) (core.Analyzer, func(), error) {
	closers := []func(){}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	var counter core.Words = words.Local{}
	if s.WordsAddress != "" {
		client, err := words.NewClient(s.WordsAddress, log)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot init Words adapter: %w", err)
		}
		closers = append(closers, client.Close)
		counter = client
	}

	yt, err := youtube.NewClient(s.YoutubeURL, s.Language, s.Timeout, log)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("cannot init YouTube adapter: %w", err)
	}

	var proofreader core.Proofreader = proofread.Noop{}
	if s.LanguageToolURL != "" {
		lt, err := proofread.NewLanguageTool(s.LanguageToolURL, s.ProofreadLang, s.ProofreadMaxLen, s.Timeout, log)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("cannot init LanguageTool adapter: %w", err)
		}
		proofreader = lt
	}

	service, err := core.NewService(log, counter, yt, yt, proofreader, db.Nop{}, publisher.Nop{}, core.Options{
		Concurrency:      s.Concurrency,
		AnalyzeCorrected: s.AnalyzeCorrected,
	})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("cannot init analyzer: %w", err)
	}
	return service, closeAll, nil
}

func makeLogger(logLevel string) (*slog.Logger, error) {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s", logLevel)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	return slog.New(handler), nil
}
