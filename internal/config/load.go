package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/joho/godotenv"
)

// 기본값
const (
	DefaultGraphQLURL       = "https://leetcode.com/graphql"
	DefaultUserAgent        = "Mozilla/5.0 (compatible; leetcode-profile-go/1.0)"
	DefaultTimeoutSeconds   = 10
	DefaultRecentLimit      = 20
	MaxRecentLimit          = 100
	DefaultMaxResponseBytes = 4 << 20
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	parsed, err := url.Parse(c.LeetCode.GraphQLURL)
	if err != nil {
		return fmt.Errorf("invalid LEETCODE_GRAPHQL_URL: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid LEETCODE_GRAPHQL_URL: %s", c.LeetCode.GraphQLURL)
	}
	if c.LeetCode.TimeoutSeconds <= 0 {
		return fmt.Errorf("LEETCODE_TIMEOUT must be positive: %d", c.LeetCode.TimeoutSeconds)
	}
	if c.LeetCode.RecentLimit < 1 || c.LeetCode.RecentLimit > MaxRecentLimit {
		return fmt.Errorf("LEETCODE_RECENT_LIMIT out of range [1,%d]: %d", MaxRecentLimit, c.LeetCode.RecentLimit)
	}
	if c.LeetCode.MaxResponseBytes <= 0 {
		return fmt.Errorf("LEETCODE_MAX_RESPONSE_BYTES must be positive: %d", c.LeetCode.MaxResponseBytes)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTP.Port)
	}
	if c.Telemetry.SampleRate < 0 || c.Telemetry.SampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE out of range [0,1]: %v", c.Telemetry.SampleRate)
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"leetcode_url", cfg.LeetCode.GraphQLURL,
		"timeout", cfg.LeetCode.TimeoutSeconds,
		"recent_limit", cfg.LeetCode.RecentLimit,
		"http_addr", cfg.HTTP.Addr(),
		"http2", cfg.HTTP.HTTP2Enabled,
		"cors_origins", len(cfg.CORS.AllowOrigins),
		"otel", cfg.Telemetry.Enabled,
	)

	if cfg.LeetCode.GraphQLURL != DefaultGraphQLURL {
		logger.Warn("env_custom_leetcode_url", "url", cfg.LeetCode.GraphQLURL)
	}
}

func buildConfig() *Config {
	return &Config{
		LeetCode: LeetCodeConfig{
			GraphQLURL:       getEnvString("LEETCODE_GRAPHQL_URL", DefaultGraphQLURL),
			TimeoutSeconds:   getEnvInt("LEETCODE_TIMEOUT", DefaultTimeoutSeconds),
			RecentLimit:      getEnvInt("LEETCODE_RECENT_LIMIT", DefaultRecentLimit),
			UserAgent:        getEnvString("LEETCODE_USER_AGENT", DefaultUserAgent),
			MaxResponseBytes: getEnvInt64("LEETCODE_MAX_RESPONSE_BYTES", DefaultMaxResponseBytes),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 8080),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		},
		Telemetry: readTelemetryConfig(),
	}
}
