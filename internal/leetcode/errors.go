package leetcode

import (
	"errors"
	"fmt"
)

// ErrEmptyUsername: 빈 사용자명으로 FetchRaw 를 호출했을 때 반환된다.
var ErrEmptyUsername = errors.New("leetcode: username is required")

// ErrorKind: 업스트림 실패 유형입니다.
type ErrorKind string

// ErrorKind 상수 목록.
const (
	// KindNotFound: 사용자가 존재하지 않음
	KindNotFound ErrorKind = "NotFound"
	// KindRateLimited: 요청 제한(429/403)
	KindRateLimited ErrorKind = "RateLimited"
	// KindNetworkFailure: 전송 실패 또는 5xx
	KindNetworkFailure ErrorKind = "NetworkFailure"
	// KindTimeout: 응답 대기 시간 초과
	KindTimeout ErrorKind = "Timeout"
	// KindProtocol: 예상하지 못한 응답 형식
	KindProtocol ErrorKind = "UpstreamProtocolError"
)

// UpstreamError: LeetCode 호출 중 발생한 에러
type UpstreamError struct {
	Kind       ErrorKind
	Operation  string // GraphQL operationName
	StatusCode int    // HTTP 상태 코드 (0이면 전송 단계 오류)
	Err        error  // 원인 에러
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("leetcode error kind=%s operation=%s status=%d", e.Kind, e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("leetcode error kind=%s operation=%s status=%d: %v", e.Kind, e.Operation, e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func newUpstreamError(kind ErrorKind, operation string, status int, cause error) *UpstreamError {
	return &UpstreamError{
		Kind:       kind,
		Operation:  operation,
		StatusCode: status,
		Err:        cause,
	}
}

// KindOf: 에러 체인에서 UpstreamError 를 찾아 유형을 반환한다.
func KindOf(err error) (ErrorKind, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Kind, true
	}
	return "", false
}

// IsKind: 에러가 주어진 유형의 UpstreamError 인지 확인한다.
func IsKind(err error, kind ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
