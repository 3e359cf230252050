package api_test

import (
	"context"
	"encoding/json"
	"io"
	"keyword-service/frontend/adapters/api"
	"keyword-service/frontend/core"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	testCases := []struct {
		desc         string
		serverStatus int
		serverReply  core.PingResponse
		expectedErr  error
	}{
		{
			desc:         "success - ping ok",
			serverStatus: http.StatusOK,
			serverReply:  core.PingResponse{Replies: map[string]core.PingStatus{"words": "ok"}},
		},
		{
			desc:         "error - service unavailable",
			serverStatus: http.StatusServiceUnavailable,
			expectedErr:  core.ErrServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/ping", r.URL.Path)
				w.WriteHeader(tc.serverStatus)
				if tc.serverStatus == http.StatusOK {
					_ = json.NewEncoder(w).Encode(tc.serverReply)
				}
			}))
			defer server.Close()

			client := api.NewClient(server.URL, time.Second, slog.Default())
			result, err := client.Ping(context.Background())
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.serverReply, result)
		})
	}
}

func TestAnalyze(t *testing.T) {
	testCases := []struct {
		desc         string
		req          core.AnalyzeRequest
		serverStatus int
		serverReply  core.Report
		expectedErr  error
	}{
		{
			desc:         "success - report",
			req:          core.AnalyzeRequest{URL: "https://youtu.be/abc", MinOccurrences: core.Threshold(3)},
			serverStatus: http.StatusOK,
			serverReply: core.Report{
				ID:       "r1",
				Success:  true,
				Title:    "Gophers",
				Keywords: []core.Keyword{{Word: "go", Count: 4}},
			},
		},
		{
			desc:         "error - rejected",
			req:          core.AnalyzeRequest{URL: "https://vimeo.com/1", MinOccurrences: core.Threshold(3)},
			serverStatus: http.StatusBadRequest,
			expectedErr:  core.ErrBadArguments,
		},
		{
			desc:         "error - rate limited",
			req:          core.AnalyzeRequest{Text: "hi", MinOccurrences: core.Threshold(3)},
			serverStatus: http.StatusTooManyRequests,
			expectedErr:  core.ErrServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/analyze", r.URL.Path)
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))
				var got core.AnalyzeRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				require.Equal(t, tc.req, got)

				w.WriteHeader(tc.serverStatus)
				if tc.serverStatus == http.StatusOK {
					_ = json.NewEncoder(w).Encode(tc.serverReply)
				} else {
					_, _ = io.WriteString(w, "unsupported video url\n")
				}
			}))
			defer server.Close()

			client := api.NewClient(server.URL, time.Second, slog.Default())
			result, err := client.Analyze(context.Background(), tc.req)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.serverReply, result)
		})
	}
}

func TestCompare(t *testing.T) {
	req := core.CompareRequest{
		Sources:        []core.Source{{Text: "cat cat"}, {URL: "https://youtu.be/abc"}},
		MinOccurrences: core.Threshold(2),
		MinDocuments:   core.Threshold(2),
	}
	reply := core.Comparison{
		ID:             "c1",
		Common:         []core.Keyword{{Word: "cat", Count: 4}},
		MinOccurrences: 2,
		MinDocuments:   2,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/compare", r.URL.Path)
		var got core.CompareRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, req, got)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	defer server.Close()

	client := api.NewClient(server.URL, time.Second, slog.Default())
	result, err := client.Compare(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, reply, result)
}

func TestLogin(t *testing.T) {
	testCases := []struct {
		desc         string
		serverStatus int
		expected     string
		expectedErr  error
	}{
		{desc: "success", serverStatus: http.StatusOK, expected: "token123"},
		{desc: "error - wrong credentials", serverStatus: http.StatusUnauthorized, expectedErr: core.ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/login", r.URL.Path)
				var login map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&login))
				require.Equal(t, map[string]string{"name": "admin", "password": "secret"}, login)
				w.WriteHeader(tc.serverStatus)
				if tc.serverStatus == http.StatusOK {
					_, _ = io.WriteString(w, "token123")
				}
			}))
			defer server.Close()

			client := api.NewClient(server.URL, time.Second, slog.Default())
			token, err := client.Login(context.Background(), "admin", "secret")
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Empty(t, token)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, token)
		})
	}
}

func TestCacheAdmin(t *testing.T) {
	testCases := []struct {
		desc         string
		serverStatus int
		token        string
		expectedErr  error
	}{
		{desc: "success", serverStatus: http.StatusNoContent, token: "token123"},
		{desc: "already running", serverStatus: http.StatusAccepted, token: "token123", expectedErr: core.ErrAlreadyExists},
		{desc: "unauthorized", serverStatus: http.StatusUnauthorized, expectedErr: core.ErrInvalidCredentials},
		{desc: "unexpected status", serverStatus: http.StatusTeapot, token: "token123"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			var calls []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, r.Method+" "+r.URL.Path)
				if tc.token != "" {
					require.Equal(t, "Token "+tc.token, r.Header.Get("Authorization"))
				} else {
					require.Empty(t, r.Header.Get("Authorization"))
				}
				w.WriteHeader(tc.serverStatus)
			}))
			defer server.Close()

			ctx := context.Background()
			if tc.token != "" {
				ctx = context.WithValue(ctx, core.JwtTokenContextKey, tc.token)
			}
			client := api.NewClient(server.URL, time.Second, slog.Default())
			dropErr := client.DropCache(ctx)
			pruneErr := client.PruneCache(ctx)

			require.Equal(t, []string{"DELETE /api/cache", "POST /api/cache/prune"}, calls)
			switch {
			case tc.serverStatus == http.StatusTeapot:
				require.Error(t, dropErr)
				require.Error(t, pruneErr)
			case tc.expectedErr != nil:
				require.ErrorIs(t, dropErr, tc.expectedErr)
				require.ErrorIs(t, pruneErr, tc.expectedErr)
			default:
				require.NoError(t, dropErr)
				require.NoError(t, pruneErr)
			}
		})
	}
}

func TestUnreachable(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1", time.Second, slog.Default())
	_, err := client.Ping(context.Background())
	require.Error(t, err)
}
