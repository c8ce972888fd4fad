package di

import (
	"fmt"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/handler"
	"github.com/park285/leetcode-profile-go/internal/metrics"
	"github.com/park285/leetcode-profile-go/internal/profile"
	"github.com/park285/leetcode-profile-go/internal/server"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	provider, err := ProvideTelemetry(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	httpClient := ProvideHTTPClient(provider)
	leetcodeClient, err := ProvideLeetCodeClient(cfg, httpClient, logger)
	if err != nil {
		return nil, err
	}

	metricsStore := metrics.NewStore()
	profileService := profile.NewService(leetcodeClient, logger)
	profileHandler := handler.NewProfileHandler(profileService, metricsStore, logger)

	router := handler.NewRouter(cfg, logger, metricsStore, profileHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, provider), nil
}

// InitializeTool 은 HTTP 서버를 띄우지 않고 프로필 조회 서비스만 구성한다.
func InitializeTool() (*Tool, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	provider, err := ProvideTelemetry(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	leetcodeClient, err := ProvideLeetCodeClient(cfg, ProvideHTTPClient(provider), logger)
	if err != nil {
		return nil, err
	}

	return NewTool(profile.NewService(leetcodeClient, logger), logger, cfg, provider), nil
}
