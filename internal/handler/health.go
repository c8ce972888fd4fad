package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/health"
	"github.com/park285/leetcode-profile-go/internal/metrics"
)

// RegisterHealthRoutes: 상태 확인 라우트를 등록합니다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, store *metrics.Store) {
	router.GET("/health", func(c *gin.Context) {
		// Liveness: 설정 상태와 무관하게 프로세스가 살아 있으면 200
		c.JSON(http.StatusOK, health.Collect(cfg, store))
	})

	router.GET("/health/ready", func(c *gin.Context) {
		payload := health.Collect(cfg, store)
		status := http.StatusOK
		if payload.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	})

	if store != nil {
		router.GET("/metrics", gin.WrapH(store.Handler()))
	}
}
