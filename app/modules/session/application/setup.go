package sessionservice

import (
	"context"
	"log/slog"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	"go.opentelemetry.io/otel/attribute"
)

// RegisterPlayer adds a player during setup. Blank names and a full roster are ignored.
func (c *Controller) RegisterPlayer(ctx context.Context, name string) {
	c.withTelemetry(ctx, "RegisterPlayer", nil, func(ctx context.Context) error {
		if c.phase != PhaseSetup {
			return ErrNotInSetup
		}
		if scorecarddomain.NormalizeName(name) == "" {
			return ErrEmptyName
		}
		if c.repo.PlayerCount() >= scorecarddomain.MaxPlayers {
			return ErrRosterFull
		}

		player, ok := c.repo.RegisterPlayer(name)
		if !ok {
			return ErrRosterFull
		}
		c.logger.InfoContext(ctx, "Player registered",
			slog.String("player_id", player.ID.String()),
			slog.String("name", player.Name),
			slog.String("color", string(player.Color)),
		)
		return nil
	})
}

// RemovePlayer drops a player during setup.
func (c *Controller) RemovePlayer(ctx context.Context, id scorecarddomain.PlayerID) {
	c.withTelemetry(ctx, "RemovePlayer", []attribute.KeyValue{attribute.String("player_id", id.String())}, func(ctx context.Context) error {
		if c.phase != PhaseSetup {
			return ErrNotInSetup
		}
		if !c.repo.RemovePlayer(id) {
			return ErrPlayerNotFound
		}
		return nil
	})
}

// SetTotalHoles sets the round length during setup, clamped to [1, 18].
// Zero selects the default of 18.
func (c *Controller) SetTotalHoles(ctx context.Context, n int) {
	c.withTelemetry(ctx, "SetTotalHoles", []attribute.KeyValue{attribute.Int("holes", n)}, func(ctx context.Context) error {
		return c.setTotalHoles(scorecarddomain.ClampHoles(n))
	})
}

// SetTotalHolesInput sets the round length from a text field. Unparsable input
// selects the default of 18.
func (c *Controller) SetTotalHolesInput(ctx context.Context, raw string) {
	c.withTelemetry(ctx, "SetTotalHoles", []attribute.KeyValue{attribute.String("input", raw)}, func(ctx context.Context) error {
		return c.setTotalHoles(scorecarddomain.ParseHoleCount(raw))
	})
}

func (c *Controller) setTotalHoles(n int) error {
	if c.phase != PhaseSetup {
		return ErrNotInSetup
	}
	c.totalHoles = n
	return nil
}

// StartGame moves to the active phase on hole 1. It is ignored with an empty roster.
func (c *Controller) StartGame(ctx context.Context) {
	c.withTelemetry(ctx, "StartGame", nil, func(ctx context.Context) error {
		if c.phase != PhaseSetup {
			return ErrNotInSetup
		}
		if c.repo.PlayerCount() == 0 {
			return ErrNoPlayers
		}

		c.totalHoles = scorecarddomain.ClampHoles(c.totalHoles)
		c.currentHole = 1
		c.view = ViewQuickEntry
		c.phase = PhaseActive

		c.logger.InfoContext(ctx, "Game started",
			slog.Int("players", c.repo.PlayerCount()),
			slog.Int("holes", c.totalHoles),
		)
		return nil
	})
}
