package sessionservice

import (
	"context"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	"go.opentelemetry.io/otel/attribute"
)

func strokeAttrs(id scorecarddomain.PlayerID, hole int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("player_id", id.String()),
		attribute.Int("hole", hole),
	}
}

// SetStroke records strokes for a player on a hole. Zero clears the cell.
func (c *Controller) SetStroke(ctx context.Context, id scorecarddomain.PlayerID, hole, strokes int) {
	attrs := append(strokeAttrs(id, hole), attribute.Int("strokes", strokes))
	c.withTelemetry(ctx, "SetStroke", attrs, func(ctx context.Context) error {
		return c.setStroke(id, hole, strokes)
	})
}

// SetStrokeInput records strokes typed into a score cell. "" and "0" clear the
// cell; anything that is not a number within bounds is ignored.
func (c *Controller) SetStrokeInput(ctx context.Context, id scorecarddomain.PlayerID, hole int, raw string) {
	attrs := append(strokeAttrs(id, hole), attribute.String("input", raw))
	c.withTelemetry(ctx, "SetStroke", attrs, func(ctx context.Context) error {
		if c.phase != PhaseActive {
			return ErrNotActive
		}
		strokes, ok := scorecarddomain.ParseStrokeInput(raw)
		if !ok {
			return ErrInvalidStrokes
		}
		return c.setStroke(id, hole, strokes)
	})
}

// AdjustStroke nudges the player's strokes on the current hole by delta, as the
// quick-entry +/- buttons do. Going below one clears the cell.
func (c *Controller) AdjustStroke(ctx context.Context, id scorecarddomain.PlayerID, delta int) {
	attrs := append(strokeAttrs(id, c.currentHole), attribute.Int("delta", delta))
	c.withTelemetry(ctx, "AdjustStroke", attrs, func(ctx context.Context) error {
		if c.phase != PhaseActive {
			return ErrNotActive
		}
		current, _ := c.repo.GetStroke(id, c.currentHole)
		return c.setStroke(id, c.currentHole, max(0, current+delta))
	})
}

func (c *Controller) setStroke(id scorecarddomain.PlayerID, hole, strokes int) error {
	if c.phase != PhaseActive {
		return ErrNotActive
	}
	if _, ok := c.repo.Player(id); !ok {
		return ErrUnknownPlayer
	}
	if !scorecarddomain.HoleInRange(hole, c.totalHoles) {
		return ErrHoleOutOfRange
	}
	if !scorecarddomain.StrokesInBounds(strokes) {
		return ErrInvalidStrokes
	}
	c.repo.SetStroke(id, hole, strokes)
	return nil
}

// NextHole advances the quick-entry card, stopping at the last hole.
func (c *Controller) NextHole(ctx context.Context) {
	c.withTelemetry(ctx, "NextHole", []attribute.KeyValue{attribute.Int("hole", c.currentHole)}, func(ctx context.Context) error {
		if c.phase != PhaseActive {
			return ErrNotActive
		}
		if c.currentHole >= c.totalHoles {
			return ErrAtLastHole
		}
		c.currentHole++
		return nil
	})
}

// PrevHole moves the quick-entry card back, stopping at hole 1.
func (c *Controller) PrevHole(ctx context.Context) {
	c.withTelemetry(ctx, "PrevHole", []attribute.KeyValue{attribute.Int("hole", c.currentHole)}, func(ctx context.Context) error {
		if c.phase != PhaseActive {
			return ErrNotActive
		}
		if c.currentHole <= 1 {
			return ErrAtFirstHole
		}
		c.currentHole--
		return nil
	})
}

// SetViewMode selects the quick-entry or full-scorecard view.
func (c *Controller) SetViewMode(ctx context.Context, mode ViewMode) {
	c.withTelemetry(ctx, "SetViewMode", []attribute.KeyValue{attribute.String("view", string(mode))}, func(ctx context.Context) error {
		return c.setView(mode)
	})
}

// ToggleView flips between the two views.
func (c *Controller) ToggleView(ctx context.Context) {
	c.withTelemetry(ctx, "SetViewMode", []attribute.KeyValue{attribute.String("view", "toggle")}, func(ctx context.Context) error {
		next := ViewFullScorecard
		if c.view == ViewFullScorecard {
			next = ViewQuickEntry
		}
		return c.setView(next)
	})
}

func (c *Controller) setView(mode ViewMode) error {
	if c.phase != PhaseActive {
		return ErrNotActive
	}
	if !mode.Valid() {
		return ErrUnknownView
	}
	c.view = mode
	return nil
}
