package config

import (
	"os"
	"strconv"
	"strings"
)

// lookupEnv 는 공백을 제거한 값을 돌려주며, 비어 있으면 설정되지 않은 것으로 본다.
func lookupEnv(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

// getEnvParsed 는 값이 없거나 parse 에 실패하면 def 를 돌려준다.
func getEnvParsed[T any](key string, def T, parse func(string) (T, error)) T {
	value, ok := lookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := parse(value)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvString(key string, def string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return def
}

func getEnvInt(key string, def int) int {
	return getEnvParsed(key, def, strconv.Atoi)
}

func getEnvInt64(key string, def int64) int64 {
	return getEnvParsed(key, def, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func getEnvFloat(key string, def float64) float64 {
	return getEnvParsed(key, def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// getEnvBool: true/1/yes/y 만 참으로 읽는다.
func getEnvBool(key string, def bool) bool {
	value, ok := lookupEnv(key)
	if !ok {
		return def
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

func getEnvList(key string, def []string) []string {
	if value, ok := lookupEnv(key); ok {
		return splitList(value)
	}
	return def
}

// splitList 는 쉼표나 공백으로 구분된 목록을 나눈다.
func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:        getEnvBool("OTEL_ENABLED", false),
		ServiceName:    getEnvString("OTEL_SERVICE_NAME", "leetcode-profile"),
		ServiceVersion: getEnvString("OTEL_SERVICE_VERSION", "1.0.0"),
		Environment:    getEnvString("OTEL_ENVIRONMENT", "production"),
		OTLPEndpoint:   getEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", "jaeger:4317"),
		OTLPInsecure:   getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		SampleRate:     getEnvFloat("OTEL_SAMPLE_RATE", 1.0),
	}
}
