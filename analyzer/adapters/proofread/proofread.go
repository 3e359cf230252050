package proofread

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"keyword-service/analyzer/core"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
	"unicode/utf16"
)

const checkEndpoint = "v2/check"

// Noop leaves text untouched.
type Noop struct{}

func (Noop) Proofread(_ context.Context, text string) (core.Proofread, error) {
	return core.Proofread{Original: text, Corrected: text}, nil
}

// LanguageTool proofreads text with a LanguageTool server. Any failure of
// the server leaves the text unchanged with zero corrections.
type LanguageTool struct {
	log      *slog.Logger
	client   http.Client
	url      string
	language string
	maxLen   int
}

func NewLanguageTool(url, language string, maxLen int, timeout time.Duration, log *slog.Logger) (*LanguageTool, error) {
	if url == "" {
		return nil, fmt.Errorf("empty base url specified")
	}
	if language == "" {
		language = "en-US"
	}
	return &LanguageTool{
		log:      log,
		client:   http.Client{Timeout: timeout},
		url:      url,
		language: language,
		maxLen:   maxLen,
	}, nil
}

type checkReply struct {
	Matches []match `json:"matches"`
}

type match struct {
	Message      string        `json:"message"`
	Offset       int           `json:"offset"`
	Length       int           `json:"length"`
	Replacements []replacement `json:"replacements"`
}

type replacement struct {
	Value string `json:"value"`
}

func (lt *LanguageTool) Proofread(ctx context.Context, text string) (core.Proofread, error) {
	unchanged := core.Proofread{Original: text, Corrected: text}
	if strings.TrimSpace(text) == "" {
		return unchanged, nil
	}
	if lt.maxLen > 0 && len(text) > lt.maxLen {
		lt.log.Warn("text too long to proofread", "bytes", len(text), "max", lt.maxLen)
		return unchanged, nil
	}

	matches, err := lt.check(ctx, text)
	if err != nil {
		lt.log.Warn("failed to proofread text", "error", err)
		return unchanged, nil
	}
	return core.Proofread{
		Original:        text,
		Corrected:       apply(text, matches),
		CorrectionCount: len(matches),
	}, nil
}

func (lt *LanguageTool) check(ctx context.Context, text string) ([]match, error) {
	endpoint, err := url.JoinPath(lt.url, checkEndpoint)
	if err != nil {
		return nil, fmt.Errorf("cannot join url path: %w", err)
	}
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("cannot create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot get response: %w", err)
	}
	defer lt.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var reply checkReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("cannot decode reply: %w", err)
	}
	return reply.Matches, nil
}

// apply replaces every matched span with its first suggested replacement.
// Offsets are in UTF-16 code units and refer to the original text; a match
// overlapping an already replaced span is skipped.
func apply(text string, matches []match) string {
	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b match) int {
		return a.Offset - b.Offset
	})

	units := utf16.Encode([]rune(text))
	out := make([]uint16, 0, len(units))
	pos := 0
	for _, m := range sorted {
		if len(m.Replacements) == 0 {
			continue
		}
		start, end := m.Offset, m.Offset+m.Length
		if start < pos || m.Length < 0 || end > len(units) {
			continue
		}
		out = append(out, units[pos:start]...)
		out = append(out, utf16.Encode([]rune(m.Replacements[0].Value))...)
		pos = end
	}
	out = append(out, units[pos:]...)
	return string(utf16.Decode(out))
}

func (lt *LanguageTool) closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		lt.log.Warn("failed to close response body", "error", err)
	}
}
