package sessionservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	scorecarddb "github.com/Black-And-White-Club/golphy/app/modules/scorecard/infrastructure/repositories"
	"github.com/Black-And-White-Club/golphy/app/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Controller implements Service. It owns the session's repository and is the
// only writer to it. It is not safe for concurrent use.
type Controller struct {
	repo    scorecarddb.Repository
	par     scorecarddomain.ParTable
	logger  *slog.Logger
	metrics observability.SessionMetrics
	tracer  trace.Tracer

	phase       Phase
	view        ViewMode
	totalHoles  int
	currentHole int
}

// NewController creates a controller in the setup phase.
func NewController(
	repo scorecarddb.Repository,
	par scorecarddomain.ParTable,
	defaultHoles int,
	logger *slog.Logger,
	metrics observability.SessionMetrics,
	tracer trace.Tracer,
) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	if len(par) == 0 {
		par = scorecarddomain.DefaultPar
	}
	return &Controller{
		repo:        repo,
		par:         par.Clone(),
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
		phase:       PhaseSetup,
		view:        ViewQuickEntry,
		totalHoles:  scorecarddomain.ClampHoles(defaultHoles),
		currentHole: 1,
	}
}

// operationFunc returns nil when the operation was applied, or the reason it was ignored.
type operationFunc func(ctx context.Context) error

// withTelemetry wraps a session operation with tracing, metrics, logging and panic
// recovery. Rejections and panics are absorbed; nothing reaches the caller.
func (c *Controller) withTelemetry(ctx context.Context, operationName string, attrs []attribute.KeyValue, op operationFunc) {
	var span trace.Span
	if c.tracer != nil {
		ctx, span = c.tracer.Start(ctx, operationName, trace.WithAttributes(
			append([]attribute.KeyValue{
				attribute.String("operation", operationName),
				attribute.String("phase", string(c.phase)),
			}, attrs...)...,
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	c.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		c.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	logAttrs := []any{
		slog.String("operation", operationName),
		slog.String("phase", string(c.phase)),
	}
	for _, kv := range attrs {
		logAttrs = append(logAttrs, slog.String(string(kv.Key), kv.Value.Emit()))
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic in %s: %v", operationName, r)
			c.logger.ErrorContext(ctx, "Critical panic recovered", append(logAttrs, slog.Any("error", err))...)
			c.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if reason := op(ctx); reason != nil {
		code := reasonCode(reason)
		c.logger.DebugContext(ctx, "Operation ignored", append(logAttrs, slog.String("reason", code))...)
		c.metrics.RecordOperationRejected(ctx, operationName, code)
		span.SetAttributes(attribute.String("outcome", observability.OutcomeRejected), attribute.String("reason", code))
		return
	}

	c.logger.DebugContext(ctx, "Operation applied", logAttrs...)
	c.metrics.RecordOperationSuccess(ctx, operationName)
	c.metrics.RecordRosterSize(ctx, c.repo.PlayerCount())
	c.metrics.RecordStrokeCount(ctx, len(c.repo.Strokes()))
	span.SetAttributes(attribute.String("outcome", observability.OutcomeApplied))
}

// --- Read accessors ---

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase { return c.phase }

// ViewMode returns the selected view.
func (c *Controller) ViewMode() ViewMode { return c.view }

// CurrentHole returns the hole focused by the quick-entry view.
func (c *Controller) CurrentHole() int { return c.currentHole }

// TotalHoles returns the round length. During setup it is the pending value
// that StartGame will capture.
func (c *Controller) TotalHoles() int { return c.totalHoles }

// ParTable returns a copy of the configured par table.
func (c *Controller) ParTable() scorecarddomain.ParTable { return c.par.Clone() }

// Players returns the roster in registration order.
func (c *Controller) Players() []scorecarddomain.Player { return c.repo.Players() }

// Player looks up a roster entry.
func (c *Controller) Player(id scorecarddomain.PlayerID) (scorecarddomain.Player, bool) {
	return c.repo.Player(id)
}

// Strokes returns every stroke record.
func (c *Controller) Strokes() []scorecarddomain.StrokeRecord { return c.repo.Strokes() }

// GetStroke returns the recorded strokes for (id, hole), if any.
func (c *Controller) GetStroke(id scorecarddomain.PlayerID, hole int) (int, bool) {
	return c.repo.GetStroke(id, hole)
}

// Aggregates returns the aggregate queries over the live session.
func (c *Controller) Aggregates() scorecardservice.Service {
	return scorecardservice.NewAggregator(c)
}

var (
	_ Service                   = (*Controller)(nil)
	_ scorecardservice.Snapshot = (*Controller)(nil)
)
