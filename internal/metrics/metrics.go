package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeSuccess 는 성공한 조회의 outcome 라벨 값이다.
const OutcomeSuccess = "success"

// Store 는 프로필 조회 통계를 저장한다.
// 누적 값은 Snapshot 으로, 같은 값의 Prometheus 시계열은 Handler 로 노출된다.
type Store struct {
	totalLookups    int64
	totalErrors     int64
	totalDurationMs int64

	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewStore 는 통계 저장소를 생성한다. 인스턴스마다 별도 레지스트리를 사용한다.
func NewStore() *Store {
	registry := prometheus.NewRegistry()
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leetcode_profile",
		Name:      "lookups_total",
		Help:      "Profile lookups by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "leetcode_profile",
		Name:      "lookup_duration_seconds",
		Help:      "Profile lookup latency by outcome.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"outcome"})

	registry.MustRegister(
		lookups,
		latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Store{
		registry: registry,
		lookups:  lookups,
		latency:  latency,
	}
}

// RecordSuccess 는 성공 조회 통계를 기록한다.
func (s *Store) RecordSuccess(duration time.Duration) {
	s.record(OutcomeSuccess, duration)
}

// RecordError 는 실패 조회 통계를 기록한다. outcome 은 분류된 에러 유형이다.
func (s *Store) RecordError(outcome string, duration time.Duration) {
	if outcome == "" {
		outcome = "unknown"
	}
	atomic.AddInt64(&s.totalErrors, 1)
	s.record(outcome, duration)
}

func (s *Store) record(outcome string, duration time.Duration) {
	atomic.AddInt64(&s.totalLookups, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
	s.lookups.WithLabelValues(outcome).Inc()
	s.latency.WithLabelValues(outcome).Observe(duration.Seconds())
}

// Snapshot 는 통계 스냅샷을 반환한다.
func (s *Store) Snapshot() map[string]float64 {
	totalLookups := atomic.LoadInt64(&s.totalLookups)
	totalErrors := atomic.LoadInt64(&s.totalErrors)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)

	avgDuration := 0.0
	if totalLookups > 0 {
		avgDuration = float64(durationMs) / float64(totalLookups)
	}

	return map[string]float64{
		"total_lookups":     float64(totalLookups),
		"total_errors":      float64(totalErrors),
		"total_duration_ms": float64(durationMs),
		"avg_duration_ms":   avgDuration,
	}
}

// Registry 는 Prometheus 레지스트리를 반환한다.
func (s *Store) Registry() *prometheus.Registry {
	return s.registry
}

// Handler 는 /metrics 용 HTTP 핸들러를 반환한다.
func (s *Store) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}
