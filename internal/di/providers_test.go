package di

import (
	"net/http"
	"testing"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/logging"
	"github.com/park285/leetcode-profile-go/internal/telemetry"
)

func TestProvideHTTPClientWithoutTelemetry(t *testing.T) {
	client := ProvideHTTPClient(&telemetry.Provider{})
	if _, ok := client.Transport.(*http.Transport); !ok {
		t.Fatalf("expected plain transport, got: %T", client.Transport)
	}
	if client.Transport == http.DefaultTransport {
		t.Fatalf("expected cloned transport")
	}
}

func TestProvideLeetCodeClient(t *testing.T) {
	cfg := &config.Config{LeetCode: config.LeetCodeConfig{
		GraphQLURL:       "https://leetcode.com/graphql",
		TimeoutSeconds:   5,
		RecentLimit:      10,
		MaxResponseBytes: 1 << 20,
	}}
	if _, err := ProvideLeetCodeClient(cfg, http.DefaultClient, logging.NewDiscard()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.LeetCode.GraphQLURL = "ftp://leetcode.com/graphql"
	if _, err := ProvideLeetCodeClient(cfg, http.DefaultClient, logging.NewDiscard()); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}

func TestProvideTelemetryDisabled(t *testing.T) {
	provider, err := ProvideTelemetry(&config.Config{}, logging.NewDiscard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.IsEnabled() {
		t.Fatalf("expected disabled provider")
	}

	app := NewApp(nil, logging.NewDiscard(), &config.Config{}, provider)
	app.Close()
}
