package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/park285/leetcode-profile-go/internal/leetcode"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "blank username", err: errBlankUsername, want: KindInput},
		{name: "client empty username", err: leetcode.ErrEmptyUsername, want: KindInput},
		{name: "not found", err: &leetcode.UpstreamError{Kind: leetcode.KindNotFound}, want: KindProfileNotFound},
		{name: "rate limited", err: &leetcode.UpstreamError{Kind: leetcode.KindRateLimited, StatusCode: 429}, want: KindUpstreamUnavailable},
		{name: "network failure", err: &leetcode.UpstreamError{Kind: leetcode.KindNetworkFailure}, want: KindUpstreamUnavailable},
		{name: "timeout", err: &leetcode.UpstreamError{Kind: leetcode.KindTimeout}, want: KindUpstreamUnavailable},
		{name: "protocol", err: &leetcode.UpstreamError{Kind: leetcode.KindProtocol}, want: KindUnexpectedUpstreamShape},
		{name: "malformed", err: fmt.Errorf("%w: username is missing", ErrMalformedResponse), want: KindUnexpectedUpstreamShape},
		{name: "deadline", err: context.DeadlineExceeded, want: KindUpstreamUnavailable},
		{name: "canceled", err: fmt.Errorf("wrapped: %w", context.Canceled), want: KindUpstreamUnavailable},
		{name: "unknown", err: errors.New("boom"), want: KindUnexpectedUpstreamShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got == nil {
				t.Fatalf("expected classified error")
			}
			if got.Kind != tt.want {
				t.Fatalf("expected %s, got: %s", tt.want, got.Kind)
			}
			if got.Error() != messageFor(tt.want) {
				t.Fatalf("unexpected message: %s", got.Error())
			}
			if !errors.Is(got, tt.err) {
				t.Fatalf("expected cause to be reachable via Unwrap")
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if Classify(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestClassifyKeepsClassifiedError(t *testing.T) {
	original := newError(KindProfileNotFound, errors.New("cause"))
	wrapped := fmt.Errorf("handler: %w", original)
	if got := Classify(wrapped); got != original {
		t.Fatalf("expected the same classified error, got: %#v", got)
	}
}

func TestErrorMessageDoesNotLeakCause(t *testing.T) {
	cause := &leetcode.UpstreamError{
		Kind:      leetcode.KindProtocol,
		Operation: "userPublicProfile",
		Err:       errors.New("graphql errors: internal stack trace"),
	}
	got := Classify(cause)
	if strings.Contains(got.Error(), "stack trace") || strings.Contains(got.Error(), "userPublicProfile") {
		t.Fatalf("message leaks internal detail: %s", got.Error())
	}
}

func TestKindMessagesAreDistinct(t *testing.T) {
	seen := map[string]ErrorKind{}
	for _, kind := range []ErrorKind{KindInput, KindProfileNotFound, KindUpstreamUnavailable, KindUnexpectedUpstreamShape} {
		message := messageFor(kind)
		if other, ok := seen[message]; ok {
			t.Fatalf("kinds %s and %s share message %q", kind, other, message)
		}
		seen[message] = kind
	}
}
