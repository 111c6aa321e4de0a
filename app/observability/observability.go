package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for session spans.
const TracerName = "github.com/Black-And-White-Club/golphy"

// Config selects how logs, metrics and traces are produced.
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string
	Output      io.Writer
}

// Observability bundles the logger, tracer and metrics handed to modules.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Metrics  SessionMetrics
	Registry *prometheus.Registry
}

// New builds the observability stack. The tracer comes from the global
// OpenTelemetry provider, which is a no-op unless an SDK has been installed.
func New(cfg Config) (*Observability, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	logger, err := NewLogger(out, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	if cfg.Environment != "" {
		logger = logger.With(slog.String("environment", cfg.Environment))
	}

	registry := prometheus.NewRegistry()
	metrics, err := NewPrometheusSessionMetrics(registry, "golphy")
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &Observability{
		Logger:   logger,
		Tracer:   otel.Tracer(TracerName),
		Metrics:  metrics,
		Registry: registry,
	}, nil
}
