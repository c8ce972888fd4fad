package config

import (
	"net"
	"strconv"
	"time"
)

// LeetCodeConfig: LeetCode GraphQL 업스트림 설정입니다.
type LeetCodeConfig struct {
	GraphQLURL       string
	TimeoutSeconds   int
	RecentLimit      int
	UserAgent        string
	MaxResponseBytes int64
}

// Timeout: 요청 타임아웃을 time.Duration 으로 반환합니다.
func (l LeetCodeConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// Addr: host:port 형식의 리슨 주소를 반환합니다.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// CORSConfig: 브라우저 접근 허용 설정입니다.
type CORSConfig struct {
	AllowOrigins []string
}

// TelemetryConfig: OpenTelemetry 설정입니다.
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPInsecure   bool
	SampleRate     float64
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	LeetCode  LeetCodeConfig
	Logging   LoggingConfig
	HTTP      HTTPConfig
	CORS      CORSConfig
	Telemetry TelemetryConfig
}
