package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/park285/leetcode-profile-go/internal/metrics"
	"github.com/park285/leetcode-profile-go/internal/profile"
)

// ProfileService 는 프로필 조회 인터페이스다.
type ProfileService interface {
	FetchProfile(ctx context.Context, username string) (*profile.Profile, error)
}

// ProfileRequest 는 프로필 조회 요청 본문이다.
type ProfileRequest struct {
	Username string `json:"username" binding:"max=256"`
}

// ProfileResponse 는 프로필 조회 응답 본문이다.
type ProfileResponse struct {
	Profile *profile.Profile `json:"profile"`
}

// ProfileHandler 는 프로필 API 핸들러다.
type ProfileHandler struct {
	service ProfileService
	metrics *metrics.Store
	logger  *slog.Logger
}

// NewProfileHandler 는 프로필 핸들러를 생성한다.
func NewProfileHandler(service ProfileService, metricsStore *metrics.Store, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileHandler{
		service: service,
		metrics: metricsStore,
		logger:  logger,
	}
}

// RegisterRoutes 는 프로필 라우트를 등록한다.
func (h *ProfileHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/profile")
	group.POST("", h.handleLookup)
	group.GET("/:username", h.handleGet)
}

func (h *ProfileHandler) handleLookup(c *gin.Context) {
	var req ProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c, req.Username)
}

func (h *ProfileHandler) handleGet(c *gin.Context) {
	h.respond(c, c.Param("username"))
}

func (h *ProfileHandler) respond(c *gin.Context, username string) {
	startedAt := time.Now()
	result, err := h.service.FetchProfile(c.Request.Context(), username)
	elapsed := time.Since(startedAt)

	if err != nil {
		h.recordError(err, elapsed)
		_ = c.Error(err)
		writeError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordSuccess(elapsed)
	}
	c.JSON(http.StatusOK, ProfileResponse{Profile: result})
}

func (h *ProfileHandler) recordError(err error, elapsed time.Duration) {
	kind, ok := profile.KindOf(err)
	if !ok {
		h.logger.Error("profile_unclassified_error", slog.Any("error", err))
	}
	if h.metrics != nil {
		h.metrics.RecordError(string(kind), elapsed)
	}
}
