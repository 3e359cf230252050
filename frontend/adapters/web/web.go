package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"keyword-service/analyzer/adapters/export"
	"keyword-service/frontend/adapters/web/middleware"
	"keyword-service/frontend/core"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	fieldURL            = "url"
	fieldText           = "text"
	fieldLabel          = "label"
	fieldURLs           = "urls"
	fieldMinOccurrences = "min_occurrences"
	fieldMinDocuments   = "min_documents"
	fieldTop            = "top"
	fieldFormat         = "format"
)

//go:embed templates
var templateFiles embed.FS

func encodeReply(w io.Writer, reply any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reply); err != nil {
		return fmt.Errorf("could not encode reply: %v", err)
	}
	return nil
}

// Pages renders the HTML pages of the analyzer.
type Pages struct {
	log       *slog.Logger
	templates map[string]*template.Template
}

func NewPages(log *slog.Logger) (*Pages, error) {
	funcs := template.FuncMap{
		"percent": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
	}
	pages := []string{"index.html", "compare.html", "report.html", "comparison.html", "login.html", "admin.html"}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFiles, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("cannot parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Pages{log: log, templates: templates}, nil
}

func (p *Pages) render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := p.templates[page]
	if !ok {
		p.log.Error("unknown page", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		p.log.Error("cannot render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, buf.String())
}

// Page returns a handler that renders a page with its empty form.
func (p *Pages) Page(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data any
		switch page {
		case "index.html":
			data = analyzeForm{MinOccurrences: core.DefaultMinOccurrences, SliderMin: core.SliderMin, SliderMax: core.SliderMax}
		case "compare.html":
			data = compareForm{
				MinOccurrences: core.DefaultMinOccurrences,
				MinDocuments:   core.DefaultMinDocuments,
				SliderMin:      core.SliderMin,
				SliderMax:      core.SliderMax,
			}
		default:
			data = adminPage{}
		}
		p.render(w, http.StatusOK, page, data)
	}
}

type bar struct {
	Word    string
	Count   int
	Percent float64
	Width   float64
}

// bars scales keyword counts for the chart, the most frequent keyword
// taking the full width.
func bars(keywords []core.Keyword, total int) []bar {
	out := make([]bar, 0, len(keywords))
	var top int
	for _, kw := range keywords {
		top = max(top, kw.Count)
	}
	for _, kw := range keywords {
		b := bar{Word: kw.Word, Count: kw.Count, Percent: export.Percent(kw.Count, total)}
		if top > 0 {
			b.Width = float64(kw.Count) * 100 / float64(top)
		}
		out = append(out, b)
	}
	return out
}

type analyzeForm struct {
	URL            string
	Text           string
	Label          string
	MinOccurrences int
	Top            int
	SliderMin      int
	SliderMax      int
	Error          string
}

type reportPage struct {
	Form   analyzeForm
	Report core.Report
	Bars   []bar
}

func parseInt(r *http.Request, field string, def int) (int, error) {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: wrong %s %q", core.ErrBadArguments, strings.ReplaceAll(field, "_", " "), raw)
	}
	return n, nil
}

func parseAnalyzeForm(r *http.Request) (analyzeForm, error) {
	form := analyzeForm{
		URL:       strings.TrimSpace(r.PostFormValue(fieldURL)),
		Text:      r.PostFormValue(fieldText),
		Label:     strings.TrimSpace(r.PostFormValue(fieldLabel)),
		SliderMin: core.SliderMin,
		SliderMax: core.SliderMax,
	}
	var err error
	if form.MinOccurrences, err = parseInt(r, fieldMinOccurrences, core.DefaultMinOccurrences); err != nil {
		return form, err
	}
	if form.Top, err = parseInt(r, fieldTop, 0); err != nil {
		return form, err
	}
	switch {
	case form.URL == "" && strings.TrimSpace(form.Text) == "":
		return form, fmt.Errorf("%w: enter a video URL or paste some text", core.ErrBadArguments)
	case form.URL != "" && strings.TrimSpace(form.Text) != "":
		return form, fmt.Errorf("%w: enter either a video URL or text, not both", core.ErrBadArguments)
	case form.MinOccurrences < 1:
		return form, fmt.Errorf("%w: minimum occurrences must be at least 1", core.ErrBadArguments)
	}
	if form.URL != "" {
		form.Text = ""
	}
	return form, nil
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrBadArguments):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrBadArguments):
		msg := err.Error()
		if i := strings.LastIndex(msg, core.ErrBadArguments.Error()+": "); i >= 0 {
			msg = msg[i+len(core.ErrBadArguments.Error())+2:]
		}
		return msg
	case errors.Is(err, core.ErrServiceUnavailable):
		return "The analyzer is busy or unavailable, try again later."
	default:
		return "Something went wrong, try again later."
	}
}

func (p *Pages) NewAnalyzeHandler(analyzer core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseAnalyzeForm(r)
		if err != nil {
			form.Error = errorMessage(err)
			p.render(w, http.StatusBadRequest, "index.html", form)
			return
		}

		report, err := analyzer.Analyze(r.Context(), core.AnalyzeRequest{
			URL:            form.URL,
			Text:           form.Text,
			Label:          form.Label,
			MinOccurrences: core.Threshold(form.MinOccurrences),
		})
		if err != nil {
			if errorStatus(err) == http.StatusInternalServerError {
				p.log.Warn("analyze failed", "error", err)
			}
			form.Error = errorMessage(err)
			p.render(w, errorStatus(err), "index.html", form)
			return
		}

		if r.PostFormValue(fieldFormat) == string(export.FormatCSV) {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="keywords.csv"`)
			if err := export.WriteReport(w, report, export.FormatCSV, export.Options{Top: form.Top}); err != nil {
				p.log.Error("cannot write csv", "error", err)
			}
			return
		}

		if form.Top > 0 && len(report.Keywords) > form.Top {
			report.Keywords = report.Keywords[:form.Top]
		}
		p.render(w, http.StatusOK, "report.html", reportPage{
			Form:   form,
			Report: report,
			Bars:   bars(report.Keywords, report.TotalWords),
		})
	}
}

type compareForm struct {
	URLs           string
	Texts          []string
	MinOccurrences int
	MinDocuments   int
	SliderMin      int
	SliderMax      int
	Error          string
}

type comparisonPage struct {
	Form       compareForm
	Comparison core.Comparison
	Bars       []bar
}

// parseCompareForm collects one source per non-blank URL line and one per
// non-blank text field, URLs first.
func parseCompareForm(r *http.Request) (compareForm, []core.Source, error) {
	if err := r.ParseForm(); err != nil {
		return compareForm{}, nil, fmt.Errorf("%w: %w", core.ErrBadArguments, err)
	}
	form := compareForm{
		URLs:      r.PostFormValue(fieldURLs),
		Texts:     r.PostForm[fieldText],
		SliderMin: core.SliderMin,
		SliderMax: core.SliderMax,
	}
	var err error
	if form.MinOccurrences, err = parseInt(r, fieldMinOccurrences, core.DefaultMinOccurrences); err != nil {
		return form, nil, err
	}
	if form.MinDocuments, err = parseInt(r, fieldMinDocuments, core.DefaultMinDocuments); err != nil {
		return form, nil, err
	}

	var sources []core.Source
	for line := range strings.Lines(form.URLs) {
		if u := strings.TrimSpace(line); u != "" {
			sources = append(sources, core.Source{URL: u})
		}
	}
	for _, text := range form.Texts {
		if strings.TrimSpace(text) != "" {
			sources = append(sources, core.Source{Text: text})
		}
	}
	switch {
	case len(sources) == 0:
		return form, nil, fmt.Errorf("%w: add at least one video URL or text", core.ErrBadArguments)
	case form.MinOccurrences < 1 || form.MinDocuments < 1:
		return form, nil, fmt.Errorf("%w: thresholds must be at least 1", core.ErrBadArguments)
	}
	return form, sources, nil
}

func (p *Pages) NewCompareHandler(analyzer core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, sources, err := parseCompareForm(r)
		if err != nil {
			form.Error = errorMessage(err)
			form.SliderMin, form.SliderMax = core.SliderMin, core.SliderMax
			p.render(w, http.StatusBadRequest, "compare.html", form)
			return
		}

		comparison, err := analyzer.Compare(r.Context(), core.CompareRequest{
			Sources:        sources,
			MinOccurrences: core.Threshold(form.MinOccurrences),
			MinDocuments:   core.Threshold(form.MinDocuments),
		})
		if err != nil {
			if errorStatus(err) == http.StatusInternalServerError {
				p.log.Warn("compare failed", "error", err)
			}
			form.Error = errorMessage(err)
			p.render(w, errorStatus(err), "compare.html", form)
			return
		}

		if r.PostFormValue(fieldFormat) == string(export.FormatCSV) {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="common-keywords.csv"`)
			if err := export.WriteComparison(w, comparison, export.FormatCSV, export.Options{}); err != nil {
				p.log.Error("cannot write csv", "error", err)
			}
			return
		}

		var total int
		for _, doc := range comparison.Documents {
			if doc.Success {
				total += doc.TotalWords
			}
		}
		p.render(w, http.StatusOK, "comparison.html", comparisonPage{
			Form:       form,
			Comparison: comparison,
			Bars:       bars(comparison.Common, total),
		})
	}
}

func NewPingHandler(log *slog.Logger, pinger core.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply, err := pinger.Ping(r.Context())
		if err != nil {
			if errors.Is(err, core.ErrServiceUnavailable) {
				log.Debug("ping endpoint unavailable")
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			} else {
				log.Warn("ping endpoint failed", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := encodeReply(w, reply); err != nil {
			log.Error("cannot encode reply", "error", err)
		}
	}
}

type adminPage struct {
	Message string
	Error   string
}

func (p *Pages) NewLoginHandler(auth core.Authenticator, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.Login(r.Context(), r.PostFormValue("name"), r.PostFormValue("password"))
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Wrong name or password."
			if !errors.Is(err, core.ErrInvalidCredentials) && !errors.Is(err, core.ErrBadArguments) {
				p.log.Error("failed to login", "error", err)
				status, msg = http.StatusServiceUnavailable, errorMessage(core.ErrServiceUnavailable)
			}
			p.render(w, status, "login.html", adminPage{Error: msg})
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(tokenTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

func (p *Pages) NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: middleware.CookieName, Value: "", Path: "/", MaxAge: -1})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (p *Pages) NewAdminHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.render(w, http.StatusOK, "admin.html", adminPage{})
	}
}

func (p *Pages) NewDropCacheHandler(cache core.CacheAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.cacheResult(w, r, cache.DropCache(r.Context()), "Cache dropped.")
	}
}

func (p *Pages) NewPruneCacheHandler(cache core.CacheAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.cacheResult(w, r, cache.PruneCache(r.Context()), "Expired transcripts pruned.")
	}
}

// cacheResult reports the outcome of a cache task on the admin page.
// An expired session leads back to the login page.
func (p *Pages) cacheResult(w http.ResponseWriter, r *http.Request, err error, done string) {
	switch {
	case err == nil:
		p.render(w, http.StatusOK, "admin.html", adminPage{Message: done})
	case errors.Is(err, core.ErrInvalidCredentials):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, core.ErrAlreadyExists):
		p.render(w, http.StatusAccepted, "admin.html", adminPage{Message: "Cache maintenance is already running."})
	default:
		p.log.Warn("cache task failed", "error", err)
		p.render(w, errorStatus(err), "admin.html", adminPage{Error: errorMessage(err)})
	}
}
