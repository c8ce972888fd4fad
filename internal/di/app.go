package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/profile"
	"github.com/park285/leetcode-profile-go/internal/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

// App: HTTP 서버 실행에 필요한 구성 요소를 묶는다.
type App struct {
	Server    *http.Server
	Logger    *slog.Logger
	Config    *config.Config
	Telemetry *telemetry.Provider
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(server *http.Server, logger *slog.Logger, cfg *config.Config, provider *telemetry.Provider) *App {
	return &App{
		Server:    server,
		Logger:    logger,
		Config:    cfg,
		Telemetry: provider,
	}
}

// Close: 남은 span 을 내보내고 리소스를 정리합니다.
func (a *App) Close() {
	shutdownTelemetry(a.Telemetry, a.Logger)
}

// Tool: HTTP 서버 없이 프로필 조회만 하는 CLI 도구용 구성입니다.
type Tool struct {
	Service   *profile.Service
	Logger    *slog.Logger
	Config    *config.Config
	Telemetry *telemetry.Provider
}

// NewTool: Tool 인스턴스를 생성합니다.
func NewTool(service *profile.Service, logger *slog.Logger, cfg *config.Config, provider *telemetry.Provider) *Tool {
	return &Tool{
		Service:   service,
		Logger:    logger,
		Config:    cfg,
		Telemetry: provider,
	}
}

// Close: 남은 span 을 내보냅니다.
func (t *Tool) Close() {
	shutdownTelemetry(t.Telemetry, t.Logger)
}

func shutdownTelemetry(provider *telemetry.Provider, logger *slog.Logger) {
	if !provider.IsEnabled() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil && logger != nil {
		logger.Warn("otel_shutdown_failed", "err", err)
	}
}
