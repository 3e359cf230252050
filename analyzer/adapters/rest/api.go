package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"keyword-service/analyzer/adapters/export"
	"keyword-service/analyzer/core"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	paramFormat = "format"
	paramTop    = "top"

	maxBodySize = 4 << 20
)

func encodeReply(w io.Writer, reply any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reply); err != nil {
		return fmt.Errorf("could not encode reply: %v", err)
	}
	return nil
}

func decodeRequest(r *http.Request, v any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", core.ErrBadArguments, err)
	}
	return nil
}

func writeError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, core.ErrBadArguments):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrServiceUnavailable):
		log.Debug("service unavailable", "operation", op)
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
	case errors.Is(err, core.ErrAlreadyExists):
		log.Debug("operation already running", "operation", op)
		http.Error(w, http.StatusText(http.StatusAccepted), http.StatusAccepted)
	default:
		log.Warn("operation failed", "operation", op, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// outputOptions reads the export format and keyword limit from the query.
// JSON is the default format.
func outputOptions(r *http.Request) (export.Format, export.Options, error) {
	format := export.FormatJSON
	if f := r.URL.Query().Get(paramFormat); f != "" {
		var err error
		if format, err = export.ParseFormat(f); err != nil {
			return "", export.Options{}, err
		}
	}
	var opts export.Options
	if top := r.URL.Query().Get(paramTop); top != "" {
		n, err := strconv.Atoi(top)
		if err != nil || n < 0 {
			return "", export.Options{}, fmt.Errorf("%w: wrong top %q", core.ErrBadArguments, top)
		}
		opts.Top = n
	}
	return format, opts, nil
}

func setContentType(w http.ResponseWriter, format export.Format, name string) {
	switch format {
	case export.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	case export.FormatCSV:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
}

func NewPingHandler(log *slog.Logger, pingers map[string]core.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := core.PingResponse{
			Replies: make(map[string]core.PingStatus, len(pingers)),
		}
		for name, pinger := range pingers {
			err := pinger.Ping(r.Context())
			if err == nil {
				reply.Replies[name] = core.StatusPingOK
				continue
			}
			if errors.Is(err, core.ErrServiceUnavailable) {
				log.Debug("service unavailable", "service", name)
			} else {
				log.Warn("service ping failed", "service", name, "error", err)
			}
			reply.Replies[name] = core.StatusPingUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		if err := encodeReply(w, reply); err != nil {
			log.Error("cannot encode reply", "error", err)
		}
	}
}

func NewLoginHandler(log *slog.Logger, auth core.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var login core.LoginRequest
		if err := decodeRequest(r, &login); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if err := login.Validate(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		tokenString, err := auth.CreateToken(login.Name, login.Password)
		if err != nil {
			if errors.Is(err, core.ErrInvalidCredentials) {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			} else {
				log.Error("failed to create token", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(tokenString))
	}
}

// NewAnalyzeHandler analyzes a single video or pasted text. A video whose
// transcript cannot be retrieved yields a report with success set to false.
func NewAnalyzeHandler(log *slog.Logger, analyzer core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, opts, err := outputOptions(r)
		if err != nil {
			writeError(w, log, "analyze", err)
			return
		}
		var req core.AnalyzeRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, log, "analyze", err)
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, log, "analyze", fmt.Errorf("%w: %w", core.ErrBadArguments, err))
			return
		}

		var report core.Report
		if req.URL != "" {
			report, err = analyzer.AnalyzeVideo(r.Context(), req.URL, *req.MinOccurrences)
		} else {
			report, err = analyzer.AnalyzeText(r.Context(), req.Label, req.Text, *req.MinOccurrences)
		}
		if err != nil {
			writeError(w, log, "analyze", err)
			return
		}

		setContentType(w, format, "keywords")
		if err := export.WriteReport(w, report, format, opts); err != nil {
			log.Error("failed to encode", "error", err)
		}
	}
}

func NewCompareHandler(log *slog.Logger, analyzer core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, opts, err := outputOptions(r)
		if err != nil {
			writeError(w, log, "compare", err)
			return
		}
		var req core.CompareRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, log, "compare", err)
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, log, "compare", fmt.Errorf("%w: %w", core.ErrBadArguments, err))
			return
		}

		comparison, err := analyzer.Compare(r.Context(), req.Sources, *req.MinOccurrences, *req.MinDocuments)
		if err != nil {
			writeError(w, log, "compare", err)
			return
		}

		setContentType(w, format, "common-keywords")
		if err := export.WriteComparison(w, comparison, format, opts); err != nil {
			log.Error("failed to encode", "error", err)
		}
	}
}

func NewDropCacheHandler(log *slog.Logger, cache core.CacheManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := cache.DropCache(r.Context()); err != nil {
			writeError(w, log, "drop cache", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func NewPruneCacheHandler(log *slog.Logger, cache core.CacheManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := cache.PruneCache(r.Context()); err != nil {
			writeError(w, log, "prune cache", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
