package leetcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// 기본 설정값
const (
	DefaultEndpoint         = "https://leetcode.com/graphql"
	DefaultUserAgent        = "Mozilla/5.0 (compatible; leetcode-profile-go/1.0)"
	DefaultTimeout          = 10 * time.Second
	DefaultRecentLimit      = 20
	DefaultMaxResponseBytes = 4 << 20
)

var (
	errUserMissing      = errors.New("matchedUser is null")
	errResponseTooLarge = errors.New("response body exceeds limit")
	errNoData           = errors.New("response has no data")
)

// RawPayload: LeetCode 에서 받은 검증되지 않은 응답 데이터
// 키: matchedUser, recentAcSubmissionList
type RawPayload map[string]any

// Config: LeetCode GraphQL 통신 설정입니다.
type Config struct {
	Endpoint         string
	Timeout          time.Duration
	RecentLimit      int
	UserAgent        string
	MaxResponseBytes int64
}

// Client: LeetCode GraphQL API 클라이언트입니다.
// 재시도하지 않으며, 요청마다 한 번만 시도한다.
type Client struct {
	httpClient       *http.Client
	endpoint         string
	siteURL          string
	timeout          time.Duration
	recentLimit      int
	userAgent        string
	maxResponseBytes int64
	logger           *slog.Logger
}

// New: 새로운 Client 인스턴스를 생성합니다.
func New(cfg Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse leetcode endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported leetcode endpoint scheme: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("leetcode endpoint host is empty: %q", endpoint)
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	recentLimit := cfg.RecentLimit
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	maxResponseBytes := cfg.MaxResponseBytes
	if maxResponseBytes <= 0 {
		maxResponseBytes = DefaultMaxResponseBytes
	}

	return &Client{
		httpClient:       httpClient,
		endpoint:         endpoint,
		siteURL:          parsed.Scheme + "://" + parsed.Host,
		timeout:          timeout,
		recentLimit:      recentLimit,
		userAgent:        userAgent,
		maxResponseBytes: maxResponseBytes,
		logger:           logger,
	}, nil
}

// FetchRaw: 사용자 프로필과 최근 AC 제출 목록을 동시에 조회해 하나의 RawPayload 로 합친다.
// 어느 한 쪽이라도 실패하면 나머지 요청을 취소하고 UpstreamError 를 반환한다.
func (c *Client) FetchRaw(ctx context.Context, username string) (RawPayload, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	var (
		matchedUser any
		recent      any
		profileErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := c.execute(gctx, opUserPublicProfile, userPublicProfileQuery, map[string]any{
			"username": username,
		}, username)
		if err != nil {
			profileErr = err
			return err
		}
		user, ok := data["matchedUser"]
		if !ok || user == nil {
			profileErr = newUpstreamError(KindNotFound, opUserPublicProfile, http.StatusOK, errUserMissing)
			return profileErr
		}
		matchedUser = user
		return nil
	})
	g.Go(func() error {
		data, err := c.execute(gctx, opRecentAcSubmissions, recentAcSubmissionsQuery, map[string]any{
			"username": username,
			"limit":    c.recentLimit,
		}, username)
		if err != nil {
			return err
		}
		recent = data["recentAcSubmissionList"]
		return nil
	})

	if err := g.Wait(); err != nil {
		// 존재하지 않는 사용자는 형제 요청의 실패보다 우선한다
		if IsKind(profileErr, KindNotFound) {
			return nil, profileErr
		}
		return nil, err
	}

	return RawPayload{
		"matchedUser":            matchedUser,
		"recentAcSubmissionList": recent,
	}, nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) execute(ctx context.Context, operation, query string, variables map[string]any, username string) (map[string]any, error) {
	body, err := json.Marshal(graphQLRequest{
		OperationName: operation,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return nil, newUpstreamError(KindProtocol, operation, 0, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newUpstreamError(KindProtocol, operation, 0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", c.refererFor(username))
	req.Header.Set("User-Agent", c.userAgent)

	startedAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newUpstreamError(transportErrorKind(err), operation, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := c.readBody(resp.Body)
	if err != nil {
		kind := transportErrorKind(err)
		if errors.Is(err, errResponseTooLarge) {
			kind = KindProtocol
		}
		return nil, newUpstreamError(kind, operation, resp.StatusCode, err)
	}

	c.logger.Debug("leetcode_query",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(startedAt)),
		slog.Int("bytes", len(payload)),
	)

	if kind, failed := statusErrorKind(resp.StatusCode); failed {
		return nil, newUpstreamError(kind, operation, resp.StatusCode, fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, newUpstreamError(KindProtocol, operation, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	if len(decoded.Errors) > 0 {
		message := joinErrorMessages(decoded.Errors)
		if userMissing(decoded.Errors) {
			return nil, newUpstreamError(KindNotFound, operation, resp.StatusCode, errors.New(message))
		}
		return nil, newUpstreamError(KindProtocol, operation, resp.StatusCode, fmt.Errorf("graphql errors: %s", message))
	}

	if decoded.Data == nil {
		return nil, newUpstreamError(KindProtocol, operation, resp.StatusCode, errNoData)
	}

	return decoded.Data, nil
}

func (c *Client) readBody(body io.Reader) ([]byte, error) {
	payload, err := io.ReadAll(io.LimitReader(body, c.maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(payload)) > c.maxResponseBytes {
		return nil, errResponseTooLarge
	}
	return payload, nil
}

func (c *Client) refererFor(username string) string {
	return c.siteURL + "/u/" + url.PathEscape(username) + "/"
}

func transportErrorKind(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindNetworkFailure
}

func statusErrorKind(status int) (ErrorKind, bool) {
	switch {
	case status == http.StatusTooManyRequests || status == http.StatusForbidden:
		return KindRateLimited, true
	case status == http.StatusNotFound:
		return KindNotFound, true
	case status >= http.StatusInternalServerError:
		return KindNetworkFailure, true
	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		return KindProtocol, true
	default:
		return "", false
	}
}

func userMissing(errs []graphQLError) bool {
	for _, e := range errs {
		message := strings.ToLower(e.Message)
		for _, marker := range userMissingMarkers {
			if strings.Contains(message, marker) {
				return true
			}
		}
	}
	return false
}

func joinErrorMessages(errs []graphQLError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		if text := strings.TrimSpace(e.Message); text != "" {
			messages = append(messages, text)
		}
	}
	if len(messages) == 0 {
		return "unknown graphql error"
	}
	return strings.Join(messages, "; ")
}
