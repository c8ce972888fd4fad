package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/park285/leetcode-profile-go/internal/profile"
)

// RequestLogger 는 HTTP 요청 로그 미들웨어다.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return func(c *gin.Context) {
		startedAt := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		defer func() {
			status := c.Writer.Status()
			if status < http.StatusBadRequest && len(c.Errors) == 0 && isQuietPath(path) {
				return
			}

			fields := []any{
				"request_id", GetRequestID(c),
				"method", method,
				"path", path,
				"route", c.FullPath(),
				"status", status,
				"latency", time.Since(startedAt),
				"bytes", c.Writer.Size(),
				"client_ip", c.ClientIP(),
			}
			if len(c.Errors) > 0 {
				fields = append(fields, "errors", c.Errors.String())
				if kind, ok := lookupErrorKind(c.Errors); ok {
					fields = append(fields, "error_kind", string(kind))
				}
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("http_request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("http_request", fields...)
			default:
				logger.Info("http_request", fields...)
			}
		}()

		c.Next()
	}
}

// lookupErrorKind 는 핸들러가 남긴 에러 중 마지막으로 분류된 조회 실패 유형을 찾는다.
func lookupErrorKind(errs []*gin.Error) (profile.ErrorKind, bool) {
	for i := len(errs) - 1; i >= 0; i-- {
		if kind, ok := profile.KindOf(errs[i].Err); ok {
			return kind, true
		}
	}
	return "", false
}

func isQuietPath(path string) bool {
	switch path {
	case "/health", "/health/ready", "/metrics":
		return true
	default:
		return false
	}
}
