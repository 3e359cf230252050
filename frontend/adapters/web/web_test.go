package web_test

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"keyword-service/frontend/adapters/web"
	"keyword-service/frontend/adapters/web/middleware"
	"keyword-service/frontend/core"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const statusPingOK core.PingStatus = "ok"

func newPages(t *testing.T) *web.Pages {
	t.Helper()
	pages, err := web.NewPages(slog.Default())
	require.NoError(t, err)
	return pages
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPingHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		prepare        func(*core.MockPinger)
		expectedStatus int
		wantBody       bool
		expectedBody   core.PingResponse
	}{
		{
			desc: "success - ping ok",
			prepare: func(p *core.MockPinger) {
				p.EXPECT().Ping(gomock.Any()).Return(core.PingResponse{
					Replies: map[string]core.PingStatus{"words": statusPingOK},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			wantBody:       true,
			expectedBody: core.PingResponse{
				Replies: map[string]core.PingStatus{"words": statusPingOK},
			},
		},
		{
			desc: "error - service unavailable",
			prepare: func(p *core.MockPinger) {
				p.EXPECT().Ping(gomock.Any()).Return(core.PingResponse{}, core.ErrServiceUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			desc: "error - internal error",
			prepare: func(p *core.MockPinger) {
				p.EXPECT().Ping(gomock.Any()).Return(core.PingResponse{}, errors.New("internal"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockPinger := core.NewMockPinger(ctrl)
			tc.prepare(mockPinger)

			handler := web.NewPingHandler(slog.Default(), mockPinger)
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.wantBody {
				require.Equal(t, "application/json", w.Header().Get("Content-Type"))
				var response core.PingResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				require.Equal(t, tc.expectedBody, response)
			}
		})
	}
}

func TestPages(t *testing.T) {
	pages := newPages(t)
	for _, tc := range []struct {
		page     string
		contains []string
	}{
		{page: "index.html", contains: []string{`name="min_occurrences" min="2" max="10" value="3"`, `action="/analyze"`}},
		{page: "compare.html", contains: []string{`name="urls"`, `name="min_documents" min="1" value="2"`}},
		{page: "login.html", contains: []string{`action="/login"`}},
		{page: "admin.html", contains: []string{`action="/admin/cache/prune"`, `action="/admin/cache/drop"`}},
	} {
		t.Run(tc.page, func(t *testing.T) {
			w := httptest.NewRecorder()
			pages.Page(tc.page)(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			for _, s := range tc.contains {
				require.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestAnalyzeHandler(t *testing.T) {
	report := core.Report{
		ID:      "r1",
		Success: true,
		Title:   "Gophers at work",
		URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Transcript: &core.Proofread{
			Original:        "teh gopher",
			Corrected:       "the gopher",
			CorrectionCount: 1,
		},
		Keywords:       []core.Keyword{{Word: "gopher", Count: 4}, {Word: "channel", Count: 2}, {Word: "mutex", Count: 1}},
		TotalWords:     10,
		MinOccurrences: 1,
	}

	testCases := []struct {
		desc           string
		form           url.Values
		prepare        func(*core.MockAnalyzer)
		expectedStatus int
		contains       []string
		notContains    []string
	}{
		{
			desc: "success - video report",
			form: url.Values{"url": {report.URL}, "min_occurrences": {"1"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), core.AnalyzeRequest{URL: report.URL, MinOccurrences: core.Threshold(1)}).Return(report, nil)
			},
			expectedStatus: http.StatusOK,
			contains: []string{
				"Gophers at work",
				`<span class="word">gopher</span><div class="bar" style="width: 100.0%">4</div>`,
				`<span class="word">channel</span><div class="bar" style="width: 50.0%">2</div>`,
				"<td>gopher</td><td>4</td><td>40.0%</td>",
				"Corrections made: 1",
				"the gopher",
			},
		},
		{
			desc: "success - top limits keywords",
			form: url.Values{"url": {report.URL}, "min_occurrences": {"1"}, "top": {"1"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(report, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"<td>gopher</td>"},
			notContains:    []string{"<td>channel</td>"},
		},
		{
			desc: "success - text uses default threshold",
			form: url.Values{"text": {"cats and cats"}, "label": {"Notes"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), core.AnalyzeRequest{Text: "cats and cats", Label: "Notes", MinOccurrences: core.Threshold(3)}).
					Return(core.Report{Success: true, Title: "Notes", MinOccurrences: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"No keywords found that meet the minimum occurrence threshold."},
		},
		{
			desc: "success - failed transcript",
			form: url.Values{"url": {report.URL}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(core.Report{Message: "Failed to retrieve transcript", URL: report.URL}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"Analysis failed", "Failed to retrieve transcript"},
		},
		{
			desc:           "error - nothing to analyze",
			form:           url.Values{"url": {"  "}},
			prepare:        func(a *core.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			contains:       []string{"enter a video URL or paste some text"},
		},
		{
			desc:           "error - url and text",
			form:           url.Values{"url": {report.URL}, "text": {"words"}},
			prepare:        func(a *core.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			contains:       []string{"not both"},
		},
		{
			desc:           "error - wrong threshold",
			form:           url.Values{"text": {"words"}, "min_occurrences": {"many"}},
			prepare:        func(a *core.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			contains:       []string{"wrong min occurrences"},
		},
		{
			desc: "error - rejected by analyzer",
			form: url.Values{"url": {"https://vimeo.com/1"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(core.Report{}, fmt.Errorf("failed to analyze: %w: unsupported video url", core.ErrBadArguments))
			},
			expectedStatus: http.StatusBadRequest,
			contains:       []string{"unsupported video url"},
			notContains:    []string{"failed to analyze"},
		},
		{
			desc: "error - analyzer busy",
			form: url.Values{"text": {"words"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(core.Report{}, core.ErrServiceUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			contains:       []string{"busy or unavailable"},
		},
		{
			desc: "error - analyzer failed",
			form: url.Values{"text": {"words"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(core.Report{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			contains:       []string{"Something went wrong"},
		},
	}

	pages := newPages(t)
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAnalyzer := core.NewMockAnalyzer(ctrl)
			tc.prepare(mockAnalyzer)

			w := httptest.NewRecorder()
			pages.NewAnalyzeHandler(mockAnalyzer)(w, postForm("/analyze", tc.form))

			require.Equal(t, tc.expectedStatus, w.Code)
			for _, s := range tc.contains {
				require.Contains(t, w.Body.String(), s)
			}
			for _, s := range tc.notContains {
				require.NotContains(t, w.Body.String(), s)
			}
		})
	}
}

func TestAnalyzeHandlerCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAnalyzer := core.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(core.Report{
		Success:    true,
		Keywords:   []core.Keyword{{Word: "go", Count: 3}, {Word: "gopher", Count: 2}},
		TotalWords: 5,
	}, nil)

	w := httptest.NewRecorder()
	form := url.Values{"text": {"go go go gopher gopher"}, "format": {"csv"}}
	newPages(t).NewAnalyzeHandler(mockAnalyzer)(w, postForm("/analyze", form))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="keywords.csv"`, w.Header().Get("Content-Disposition"))
	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"go", "3", "60.00"}, records[1])
	require.Equal(t, []string{"gopher", "2", "40.00"}, records[2])
}

func TestCompareHandler(t *testing.T) {
	comparison := core.Comparison{
		ID: "c1",
		Documents: []core.DocumentSummary{
			{Label: "Document 1", Success: true, TotalWords: 6, Keywords: []core.Keyword{{Word: "cat", Count: 3}}},
			{Label: "Video 2", URL: "https://youtu.be/dQw4w9WgXcQ", Message: "Failed to retrieve transcript"},
			{Label: "Document 3", Success: true, TotalWords: 4, Keywords: []core.Keyword{{Word: "cat", Count: 2}}},
		},
		Common:         []core.Keyword{{Word: "cat", Count: 5}},
		MinOccurrences: 2,
		MinDocuments:   2,
	}

	testCases := []struct {
		desc           string
		form           url.Values
		prepare        func(*core.MockAnalyzer)
		expectedStatus int
		contains       []string
	}{
		{
			desc: "success - urls and texts",
			form: url.Values{
				"urls":            {"https://youtu.be/dQw4w9WgXcQ\n\n  https://youtu.be/aaaaaaaaaaa \n"},
				"text":            {"cat cat cat", "", "cat cat"},
				"min_occurrences": {"2"},
				"min_documents":   {"2"},
			},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Compare(gomock.Any(), core.CompareRequest{
					Sources: []core.Source{
						{URL: "https://youtu.be/dQw4w9WgXcQ"},
						{URL: "https://youtu.be/aaaaaaaaaaa"},
						{Text: "cat cat cat"},
						{Text: "cat cat"},
					},
					MinOccurrences: core.Threshold(2),
					MinDocuments:   core.Threshold(2),
				}).Return(comparison, nil)
			},
			expectedStatus: http.StatusOK,
			contains: []string{
				"Documents analyzed: 2 of 3",
				"<td>6</td><td>1</td>",
				`<td colspan="2" class="error">Failed to retrieve transcript</td>`,
				`<span class="word">cat</span><div class="bar" style="width: 100.0%">5</div>`,
			},
		},
		{
			desc: "success - no common keywords",
			form: url.Values{"text": {"a", "b"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Compare(gomock.Any(), core.CompareRequest{
					Sources:        []core.Source{{Text: "a"}, {Text: "b"}},
					MinOccurrences: core.Threshold(3),
					MinDocuments:   core.Threshold(2),
				}).Return(core.Comparison{MinOccurrences: 3, MinDocuments: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"No common keywords found that meet the criteria."},
		},
		{
			desc:           "error - no sources",
			form:           url.Values{"urls": {"\n \n"}, "text": {" "}},
			prepare:        func(a *core.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			contains:       []string{"add at least one video URL or text"},
		},
		{
			desc:           "error - zero documents",
			form:           url.Values{"text": {"a"}, "min_documents": {"0"}},
			prepare:        func(a *core.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			contains:       []string{"thresholds must be at least 1"},
		},
		{
			desc: "error - analyzer busy",
			form: url.Values{"text": {"a"}},
			prepare: func(a *core.MockAnalyzer) {
				a.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(core.Comparison{}, core.ErrServiceUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			contains:       []string{"busy or unavailable"},
		},
	}

	pages := newPages(t)
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAnalyzer := core.NewMockAnalyzer(ctrl)
			tc.prepare(mockAnalyzer)

			w := httptest.NewRecorder()
			pages.NewCompareHandler(mockAnalyzer)(w, postForm("/compare", tc.form))

			require.Equal(t, tc.expectedStatus, w.Code)
			for _, s := range tc.contains {
				require.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestCompareHandlerCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAnalyzer := core.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(core.Comparison{
		Documents: []core.DocumentSummary{
			{Label: "Document 1", Success: true, TotalWords: 2},
			{Label: "Document 2", Success: true, TotalWords: 4},
		},
		Common: []core.Keyword{{Word: "cat", Count: 4}},
	}, nil)

	w := httptest.NewRecorder()
	form := url.Values{"text": {"cat cat", "cat cat dog dog"}, "format": {"csv"}}
	newPages(t).NewCompareHandler(mockAnalyzer)(w, postForm("/compare", form))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `attachment; filename="common-keywords.csv"`, w.Header().Get("Content-Disposition"))
	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, []string{"cat", "4", "66.67"}, records[1])
}

func TestLoginHandler(t *testing.T) {
	testCases := []struct {
		desc           string
		prepare        func(*core.MockAuthenticator)
		expectedStatus int
		expectCookie   bool
		contains       string
	}{
		{
			desc: "success - cookie set",
			prepare: func(a *core.MockAuthenticator) {
				a.EXPECT().Login(gomock.Any(), "admin", "password").Return("token123", nil)
			},
			expectedStatus: http.StatusSeeOther,
			expectCookie:   true,
		},
		{
			desc: "error - wrong credentials",
			prepare: func(a *core.MockAuthenticator) {
				a.EXPECT().Login(gomock.Any(), "admin", "password").Return("", core.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			contains:       "Wrong name or password.",
		},
		{
			desc: "error - analyzer down",
			prepare: func(a *core.MockAuthenticator) {
				a.EXPECT().Login(gomock.Any(), "admin", "password").Return("", errors.New("connection refused"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			contains:       "busy or unavailable",
		},
	}

	pages := newPages(t)
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAuth := core.NewMockAuthenticator(ctrl)
			tc.prepare(mockAuth)

			w := httptest.NewRecorder()
			form := url.Values{"name": {"admin"}, "password": {"password"}}
			pages.NewLoginHandler(mockAuth, time.Minute)(w, postForm("/login", form))

			require.Equal(t, tc.expectedStatus, w.Code)
			cookies := w.Result().Cookies()
			if !tc.expectCookie {
				require.Empty(t, cookies)
				require.Contains(t, w.Body.String(), tc.contains)
				return
			}
			require.Equal(t, "/admin", w.Header().Get("Location"))
			require.Len(t, cookies, 1)
			require.Equal(t, middleware.CookieName, cookies[0].Name)
			require.Equal(t, "token123", cookies[0].Value)
			require.Equal(t, 60, cookies[0].MaxAge)
			require.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	w := httptest.NewRecorder()
	newPages(t).NewLogoutHandler()(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.CookieName, cookies[0].Name)
	require.Negative(t, cookies[0].MaxAge)
}

func TestCacheHandlers(t *testing.T) {
	testCases := []struct {
		desc           string
		err            error
		expectedStatus int
		contains       string
	}{
		{desc: "success", expectedStatus: http.StatusOK, contains: `class="message"`},
		{desc: "already running", err: core.ErrAlreadyExists, expectedStatus: http.StatusAccepted, contains: "already running"},
		{desc: "session expired", err: core.ErrInvalidCredentials, expectedStatus: http.StatusSeeOther},
		{desc: "analyzer busy", err: core.ErrServiceUnavailable, expectedStatus: http.StatusServiceUnavailable, contains: "busy or unavailable"},
	}

	pages := newPages(t)
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := core.NewMockCacheAdmin(ctrl)
			mockCache.EXPECT().DropCache(gomock.Any()).Return(tc.err)
			mockCache.EXPECT().PruneCache(gomock.Any()).Return(tc.err)

			for _, handler := range []http.HandlerFunc{
				pages.NewDropCacheHandler(mockCache),
				pages.NewPruneCacheHandler(mockCache),
			} {
				w := httptest.NewRecorder()
				handler(w, httptest.NewRequest(http.MethodPost, "/admin/cache", nil))

				require.Equal(t, tc.expectedStatus, w.Code)
				if tc.expectedStatus == http.StatusSeeOther {
					require.Equal(t, "/login", w.Header().Get("Location"))
					continue
				}
				require.Contains(t, w.Body.String(), tc.contains)
			}
		})
	}
}

func TestRequireToken(t *testing.T) {
	var token any
	handler := middleware.RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = r.Context().Value(core.JwtTokenContextKey)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
	require.Nil(t, token)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "token123"})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "token123", token)
}
