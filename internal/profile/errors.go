package profile

import (
	"context"
	"errors"

	"github.com/park285/leetcode-profile-go/internal/leetcode"
)

// ErrorKind: 호출자에게 노출되는 실패 유형입니다.
type ErrorKind string

// ErrorKind 상수 목록.
const (
	KindInput                   ErrorKind = "InputError"
	KindProfileNotFound         ErrorKind = "ProfileNotFound"
	KindUpstreamUnavailable     ErrorKind = "UpstreamUnavailable"
	KindUnexpectedUpstreamShape ErrorKind = "UnexpectedUpstreamShape"
)

// 유형별 사용자 메시지. 내부 원인은 포함하지 않는다.
const (
	MessageInput                   = "Please provide a LeetCode username."
	MessageProfileNotFound         = "LeetCode user not found."
	MessageUpstreamUnavailable     = "LeetCode is unavailable right now. Please try again later."
	MessageUnexpectedUpstreamShape = "LeetCode returned an unexpected response."
)

var errBlankUsername = errors.New("username is blank")

// Error: 분류된 조회 실패입니다.
// Error() 는 고정 메시지만 반환하고, 원인은 Unwrap 으로만 접근할 수 있다.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Message: messageFor(kind), cause: cause}
}

func messageFor(kind ErrorKind) string {
	switch kind {
	case KindInput:
		return MessageInput
	case KindProfileNotFound:
		return MessageProfileNotFound
	case KindUpstreamUnavailable:
		return MessageUpstreamUnavailable
	default:
		return MessageUnexpectedUpstreamShape
	}
}

// Classify: 내부 에러를 호출자용 ErrorKind 로 분류합니다.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, errBlankUsername) || errors.Is(err, leetcode.ErrEmptyUsername) {
		return newError(KindInput, err)
	}

	if kind, ok := leetcode.KindOf(err); ok {
		switch kind {
		case leetcode.KindNotFound:
			return newError(KindProfileNotFound, err)
		case leetcode.KindRateLimited, leetcode.KindNetworkFailure, leetcode.KindTimeout:
			return newError(KindUpstreamUnavailable, err)
		default:
			return newError(KindUnexpectedUpstreamShape, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newError(KindUpstreamUnavailable, err)
	}

	return newError(KindUnexpectedUpstreamShape, err)
}

// KindOf: 에러 체인에서 분류된 ErrorKind 를 찾습니다.
func KindOf(err error) (ErrorKind, bool) {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind, true
	}
	return "", false
}
