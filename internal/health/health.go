package health

import (
	"time"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/metrics"
)

var startTime = time.Now()

// Component 는 상태 구성 요소다.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response 는 상태 응답 본문이다.
type Response struct {
	Status     string               `json:"status"`
	Components map[string]Component `json:"components"`
}

// Collect 는 헬스 상태를 수집한다.
// LeetCode 로 실제 요청을 보내지 않으며 설정과 누적 통계만 확인한다.
func Collect(cfg *config.Config, store *metrics.Store) Response {
	components := map[string]Component{
		"app":      buildAppStatus(store),
		"leetcode": buildLeetCodeStatus(cfg),
	}

	overall := "ok"
	for _, component := range components {
		if component.Status != "ok" {
			overall = "degraded"
			break
		}
	}

	return Response{
		Status:     overall,
		Components: components,
	}
}

func buildAppStatus(store *metrics.Store) Component {
	detail := map[string]any{
		"uptime_seconds": int(time.Since(startTime).Seconds()),
	}
	if store != nil {
		for key, value := range store.Snapshot() {
			detail[key] = value
		}
	}
	return Component{Status: "ok", Detail: detail}
}

func buildLeetCodeStatus(cfg *config.Config) Component {
	if cfg == nil {
		return Component{
			Status: "degraded",
			Detail: map[string]any{"error": "config not loaded"},
		}
	}

	detail := map[string]any{
		"endpoint":        cfg.LeetCode.GraphQLURL,
		"timeout_seconds": cfg.LeetCode.TimeoutSeconds,
		"recent_limit":    cfg.LeetCode.RecentLimit,
	}
	status := "ok"
	if err := cfg.Validate(); err != nil {
		status = "degraded"
		detail["error"] = err.Error()
	}
	return Component{Status: status, Detail: detail}
}
