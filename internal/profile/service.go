package profile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/park285/leetcode-profile-go/internal/leetcode"
)

// Fetcher: 사용자명으로 업스트림 원본 응답을 조회하는 인터페이스입니다.
type Fetcher interface {
	FetchRaw(ctx context.Context, username string) (leetcode.RawPayload, error)
}

// Service: 프로필 조회(업스트림 호출, 정규화, 에러 분류)를 하나로 묶은 구현체입니다.
// 호출 간 공유하는 가변 상태가 없어 동시 호출에 안전하다.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewService: 프로필 Service 인스턴스를 생성합니다.
func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetcher: fetcher, logger: logger}
}

// FetchProfile: 사용자 프로필을 조회합니다.
// 성공 시 완전한 Profile 을, 실패 시 항상 *Error 하나를 반환한다.
// 공백 사용자명은 업스트림 호출 없이 KindInput 으로 실패한다.
func (s *Service) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return nil, newError(KindInput, errBlankUsername)
	}

	startedAt := time.Now()
	raw, err := s.fetcher.FetchRaw(ctx, trimmed)
	if err != nil {
		return nil, s.fail(trimmed, err, startedAt)
	}

	result, err := Normalize(raw)
	if err != nil {
		return nil, s.fail(trimmed, err, startedAt)
	}

	s.logger.Debug("profile_fetched",
		slog.String("username", trimmed),
		slog.Int("submit_stats", len(result.SubmitStats)),
		slog.Int("recent_submissions", len(result.RecentSubmissions)),
		slog.Duration("latency", time.Since(startedAt)),
	)
	return result, nil
}

func (s *Service) fail(username string, err error, startedAt time.Time) *Error {
	classified := Classify(err)
	s.logger.Warn("profile_fetch_failed",
		slog.String("username", username),
		slog.String("kind", string(classified.Kind)),
		slog.Duration("latency", time.Since(startedAt)),
		slog.Any("error", err),
	)
	return classified
}
