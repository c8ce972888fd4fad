package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/park285/leetcode-profile-go/internal/config"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), config.TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.IsEnabled() {
		t.Fatalf("expected disabled provider")
	}
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown on disabled provider: %v", err)
	}

	var nilProvider *Provider
	if nilProvider.IsEnabled() || nilProvider.Shutdown(context.Background()) != nil {
		t.Fatalf("nil provider must be a no-op")
	}
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{rate: 1, want: "AlwaysOnSampler"},
		{rate: 2, want: "AlwaysOnSampler"},
		{rate: 0, want: "AlwaysOffSampler"},
		{rate: -1, want: "AlwaysOffSampler"},
		{rate: 0.25, want: "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		desc := newSampler(tt.rate).Description()
		if !strings.HasPrefix(desc, "ParentBased{root:"+tt.want) {
			t.Fatalf("rate %v: unexpected sampler %s", tt.rate, desc)
		}
	}
}
