package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/httperror"
	"github.com/park285/leetcode-profile-go/internal/leetcode"
	"github.com/park285/leetcode-profile-go/internal/metrics"
	"github.com/park285/leetcode-profile-go/internal/middleware"
	"github.com/park285/leetcode-profile-go/internal/profile"
)

type stubFetcher struct {
	calls   atomic.Int32
	payload leetcode.RawPayload
	err     error
}

func (f *stubFetcher) FetchRaw(_ context.Context, _ string) (leetcode.RawPayload, error) {
	f.calls.Add(1)
	return f.payload, f.err
}

func supremeSolverPayload() leetcode.RawPayload {
	return leetcode.RawPayload{
		"matchedUser": map[string]any{
			"username": "supreme-solver",
			"profile":  map[string]any{"ranking": float64(12345), "aboutMe": ""},
			"submitStats": map[string]any{"acSubmissionNum": []any{
				map[string]any{"difficulty": "Hard", "count": 10, "submissions": 20},
				map[string]any{"difficulty": "All", "count": 120, "submissions": 150},
			}},
		},
		"recentAcSubmissionList": []any{
			map[string]any{"id": "1", "title": "Two Sum", "titleSlug": "two-sum", "lang": "golang", "timestamp": "100"},
			map[string]any{"id": "2", "title": "3Sum", "titleSlug": "3sum", "lang": "golang", "timestamp": "200"},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		LeetCode: config.LeetCodeConfig{
			GraphQLURL:       config.DefaultGraphQLURL,
			TimeoutSeconds:   10,
			RecentLimit:      20,
			MaxResponseBytes: 1024,
		},
		HTTP:      config.HTTPConfig{Host: "127.0.0.1", Port: 8080},
		CORS:      config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
		Telemetry: config.TelemetryConfig{SampleRate: 1},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, fetcher *stubFetcher) (*gin.Engine, *metrics.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := metrics.NewStore()
	service := profile.NewService(fetcher, logger)
	router := NewRouter(cfg, logger, store, NewProfileHandler(service, store, logger))
	gin.SetMode(gin.TestMode)
	return router, store
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "req-test")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) httperror.ErrorResponse {
	t.Helper()

	var payload httperror.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode error response: %v (%s)", err, resp.Body.String())
	}
	return payload
}

func TestProfileLookupSuccess(t *testing.T) {
	fetcher := &stubFetcher{payload: supremeSolverPayload()}
	router, store := newTestRouter(t, testConfig(), fetcher)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/profile", `{"username":"supreme-solver"}`},
		{http.MethodGet, "/api/profile/supreme-solver", ""},
	} {
		resp := doRequest(router, tc.method, tc.path, tc.body)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d (%s)", tc.method, tc.path, resp.Code, resp.Body.String())
		}

		var payload ProfileResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		got := payload.Profile
		if got == nil || got.Username != "supreme-solver" || got.Ranking == nil || *got.Ranking != 12345 {
			t.Fatalf("unexpected profile: %+v", got)
		}
		if got.SubmitStats[0].Difficulty != profile.DifficultyAll || got.RecentSubmissions[0].Timestamp != 200 {
			t.Fatalf("unexpected ordering: %+v", got)
		}
		if !strings.Contains(resp.Body.String(), `"aboutMe":null`) {
			t.Fatalf("expected explicit null aboutMe: %s", resp.Body.String())
		}
	}

	if store.Snapshot()["total_lookups"] != 2 {
		t.Fatalf("expected 2 recorded lookups, got %v", store.Snapshot()["total_lookups"])
	}
}

func TestProfileLookupErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		fetcher *stubFetcher
		status  int
		code    httperror.ErrorCode
		message string
	}{
		{
			name:    "blank username",
			body:    `{"username":"   "}`,
			fetcher: &stubFetcher{},
			status:  http.StatusBadRequest,
			code:    httperror.ErrorCodeInvalidInput,
			message: profile.MessageInput,
		},
		{
			name:    "empty body",
			body:    "",
			fetcher: &stubFetcher{},
			status:  http.StatusBadRequest,
			code:    httperror.ErrorCodeInvalidInput,
			message: profile.MessageInput,
		},
		{
			name:    "not found",
			body:    `{"username":"ghost"}`,
			fetcher: &stubFetcher{err: &leetcode.UpstreamError{Kind: leetcode.KindNotFound}},
			status:  http.StatusNotFound,
			code:    httperror.ErrorCodeProfileNotFound,
			message: profile.MessageProfileNotFound,
		},
		{
			name:    "unavailable",
			body:    `{"username":"someone"}`,
			fetcher: &stubFetcher{err: &leetcode.UpstreamError{Kind: leetcode.KindRateLimited, StatusCode: 429}},
			status:  http.StatusServiceUnavailable,
			code:    httperror.ErrorCodeUpstreamUnavailable,
			message: profile.MessageUpstreamUnavailable,
		},
		{
			name:    "unexpected shape",
			body:    `{"username":"someone"}`,
			fetcher: &stubFetcher{payload: leetcode.RawPayload{"matchedUser": "nope"}},
			status:  http.StatusBadGateway,
			code:    httperror.ErrorCodeUpstreamResponse,
			message: profile.MessageUnexpectedUpstreamShape,
		},
		{
			name:    "malformed json",
			body:    `{"username":`,
			fetcher: &stubFetcher{},
			status:  http.StatusBadRequest,
			code:    httperror.ErrorCodeInvalidInput,
			message: msgInvalidBody,
		},
		{
			name:    "username too long",
			body:    `{"username":"` + strings.Repeat("a", 257) + `"}`,
			fetcher: &stubFetcher{},
			status:  http.StatusUnprocessableEntity,
			code:    httperror.ErrorCodeValidation,
			message: "Input validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, testConfig(), tt.fetcher)
			resp := doRequest(router, http.MethodPost, "/api/profile", tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d (%s)", tt.status, resp.Code, resp.Body.String())
			}

			payload := decodeError(t, resp)
			if payload.ErrorCode != string(tt.code) || payload.Message != tt.message {
				t.Fatalf("unexpected error payload: %+v", payload)
			}
			if payload.RequestID == nil || *payload.RequestID != "req-test" {
				t.Fatalf("expected request id in payload")
			}
		})
	}
}

func TestProfileLookupBlankSkipsUpstream(t *testing.T) {
	fetcher := &stubFetcher{payload: supremeSolverPayload()}
	router, store := newTestRouter(t, testConfig(), fetcher)

	resp := doRequest(router, http.MethodPost, "/api/profile", `{"username":""}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if fetcher.calls.Load() != 0 {
		t.Fatalf("expected no upstream calls, got %d", fetcher.calls.Load())
	}
	if store.Snapshot()["total_errors"] != 1 {
		t.Fatalf("expected recorded error")
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), &stubFetcher{})

	resp := doRequest(router, http.MethodGet, "/api/unknown", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if payload := decodeError(t, resp); payload.ErrorCode != string(httperror.ErrorCodeNotFound) {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), &stubFetcher{})

	req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestGzipCompression(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(), &stubFetcher{payload: supremeSolverPayload()})

	req := httptest.NewRequest(http.MethodGet, "/api/profile/supreme-solver", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding")
	}
}
