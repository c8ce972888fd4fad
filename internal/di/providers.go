package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/leetcode"
	"github.com/park285/leetcode-profile-go/internal/logging"
	"github.com/park285/leetcode-profile-go/internal/telemetry"
)

// ProvideLogger: 로거를 구성해 반환합니다.
// OTel이 켜져 있으면 로그에 trace_id/span_id가 붙습니다.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewLoggerWithOTel(cfg.Logging, cfg.Telemetry.Enabled)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// ProvideTelemetry: 설정에 따라 TracerProvider 를 초기화합니다.
func ProvideTelemetry(cfg *config.Config, logger *slog.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	if provider.IsEnabled() {
		logger.Info("otel_initialized",
			slog.String("endpoint", cfg.Telemetry.OTLPEndpoint),
			slog.String("service", cfg.Telemetry.ServiceName),
			slog.Float64("sample_rate", cfg.Telemetry.SampleRate),
		)
	}
	return provider, nil
}

// ProvideHTTPClient: LeetCode 호출에 쓸 HTTP 클라이언트를 만듭니다.
// 추적이 켜져 있으면 업스트림 요청마다 client span 을 남깁니다.
func ProvideHTTPClient(provider *telemetry.Provider) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !provider.IsEnabled() {
		return &http.Client{Transport: transport}
	}
	return &http.Client{Transport: otelhttp.NewTransport(transport)}
}

// ProvideLeetCodeClient: 설정으로 LeetCode GraphQL 클라이언트를 생성합니다.
func ProvideLeetCodeClient(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (*leetcode.Client, error) {
	client, err := leetcode.New(leetcode.Config{
		Endpoint:         cfg.LeetCode.GraphQLURL,
		Timeout:          cfg.LeetCode.Timeout(),
		RecentLimit:      cfg.LeetCode.RecentLimit,
		UserAgent:        cfg.LeetCode.UserAgent,
		MaxResponseBytes: cfg.LeetCode.MaxResponseBytes,
	}, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("leetcode client: %w", err)
	}
	return client, nil
}
