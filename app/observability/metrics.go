package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation outcomes used as the "outcome" label.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomePanic    = "panic"
)

// SessionMetrics records session controller activity.
type SessionMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationRejected(ctx context.Context, operation, reason string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
	RecordRosterSize(ctx context.Context, players int)
	RecordStrokeCount(ctx context.Context, strokes int)
}

// PrometheusSessionMetrics implements SessionMetrics with Prometheus collectors.
type PrometheusSessionMetrics struct {
	attempts   *prometheus.CounterVec
	outcomes   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	players    prometheus.Gauge
	strokes    prometheus.Gauge
}

// NewPrometheusSessionMetrics creates the collectors and registers them on reg.
func NewPrometheusSessionMetrics(reg prometheus.Registerer, namespace string) (*PrometheusSessionMetrics, error) {
	m := &PrometheusSessionMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "operation_attempts_total",
			Help:      "Session operations attempted.",
		}, []string{"operation"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "operations_total",
			Help:      "Session operations by outcome.",
		}, []string{"operation", "outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "rejections_total",
			Help:      "Session operations ignored, by reason.",
		}, []string{"operation", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "operation_duration_seconds",
			Help:      "Session operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"operation"}),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "players",
			Help:      "Players on the roster.",
		}),
		strokes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "strokes_recorded",
			Help:      "Stroke records held by the session.",
		}),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.outcomes, m.rejections, m.duration, m.players, m.strokes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusSessionMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusSessionMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.outcomes.WithLabelValues(operation, OutcomeApplied).Inc()
}

func (m *PrometheusSessionMetrics) RecordOperationRejected(_ context.Context, operation, reason string) {
	m.outcomes.WithLabelValues(operation, OutcomeRejected).Inc()
	m.rejections.WithLabelValues(operation, reason).Inc()
}

func (m *PrometheusSessionMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.outcomes.WithLabelValues(operation, OutcomePanic).Inc()
}

func (m *PrometheusSessionMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.duration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *PrometheusSessionMetrics) RecordRosterSize(_ context.Context, players int) {
	m.players.Set(float64(players))
}

func (m *PrometheusSessionMetrics) RecordStrokeCount(_ context.Context, strokes int) {
	m.strokes.Set(float64(strokes))
}

// NoopSessionMetrics discards everything.
type NoopSessionMetrics struct{}

// NewNoop returns metrics that record nothing.
func NewNoop() SessionMetrics { return NoopSessionMetrics{} }

func (NoopSessionMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoopSessionMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoopSessionMetrics) RecordOperationRejected(context.Context, string, string)        {}
func (NoopSessionMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoopSessionMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoopSessionMetrics) RecordRosterSize(context.Context, int)                          {}
func (NoopSessionMetrics) RecordStrokeCount(context.Context, int)                         {}

var (
	_ SessionMetrics = (*PrometheusSessionMetrics)(nil)
	_ SessionMetrics = NoopSessionMetrics{}
)
