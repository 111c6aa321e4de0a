package observability

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const (
	// scrapeRate and scrapeBurst bound the whole endpoint. The expected client is
	// a single local Prometheus scraper, so one shared bucket is enough.
	scrapeRate  = rate.Limit(5)
	scrapeBurst = 10
)

// NewScrapeLimiter returns the bucket shared by every /metrics and /healthz request.
func NewScrapeLimiter() *rate.Limiter {
	return rate.NewLimiter(scrapeRate, scrapeBurst)
}

// ScrapeLimitMiddleware answers 429 with a Retry-After hint once the shared
// bucket is empty.
func ScrapeLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				retry := max(1, int(math.Ceil(1/float64(limiter.Limit()))))
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MetricsRouter exposes the registry at /metrics behind the scrape limit.
func MetricsRouter(reg *prometheus.Registry, limiter *rate.Limiter) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(ScrapeLimitMiddleware(limiter))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// MetricsServer serves the metrics router until its context is cancelled.
type MetricsServer struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a server for addr. It does not listen until Start.
func NewMetricsServer(addr string, reg *prometheus.Registry, logger *slog.Logger) *MetricsServer {
	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           MetricsRouter(reg, NewScrapeLimiter()),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start listens in the background and shuts down when ctx is done.
func (m *MetricsServer) Start(ctx context.Context) {
	go func() {
		m.logger.InfoContext(ctx, "Metrics server listening", slog.String("addr", m.srv.Addr))
		if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.ErrorContext(ctx, "Metrics server stopped", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := m.srv.Shutdown(shutdownCtx); err != nil {
			m.logger.Error("Metrics server shutdown failed", slog.Any("error", err))
		}
	}()
}
