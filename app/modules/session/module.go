package session

import (
	"context"
	"fmt"
	"io"

	"github.com/Black-And-White-Club/golphy/app/modules/scorecard/infrastructure/exporters"
	scorecarddb "github.com/Black-And-White-Club/golphy/app/modules/scorecard/infrastructure/repositories"
	sessionservice "github.com/Black-And-White-Club/golphy/app/modules/session/application"
	"github.com/Black-And-White-Club/golphy/app/modules/session/infrastructure/console"
	"github.com/Black-And-White-Club/golphy/app/observability"
	"github.com/Black-And-White-Club/golphy/config"
)

// Module represents the session module.
type Module struct {
	SessionService sessionservice.Service
	Console        *console.Console
	cancelFunc     context.CancelFunc
	observability  *observability.Observability
	metricsAddress string
}

// NewSessionModule creates and initializes a new session module reading
// commands from in and writing views to out.
func NewSessionModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	in io.Reader,
	out io.Writer,
) (*Module, error) {
	if cfg == nil || obs == nil {
		return nil, fmt.Errorf("session module needs config and observability")
	}
	logger := obs.Logger

	logger.InfoContext(ctx, "session.NewSessionModule initializing")

	// 1. Initialize Repository
	repo := scorecarddb.NewMemoryRepository(scorecarddb.WithPalette(cfg.Palette()))

	// 2. Initialize Service
	service := sessionservice.NewController(repo, cfg.ParTable(), cfg.Game.DefaultHoles, logger, obs.Metrics, obs.Tracer)

	// 3. Initialize Console
	con := console.NewConsole(service, exporters.NewFactory(), in, out, logger)

	return &Module{
		SessionService: service,
		Console:        con,
		observability:  obs,
		metricsAddress: cfg.Observability.MetricsAddress,
	}, nil
}

// Seed registers players given up front and optionally starts the game.
func (m *Module) Seed(ctx context.Context, players []string, holes int, start bool) {
	for _, name := range players {
		m.SessionService.RegisterPlayer(ctx, name)
	}
	if holes != 0 {
		m.SessionService.SetTotalHoles(ctx, holes)
	}
	if start {
		m.SessionService.StartGame(ctx)
	}
}

// Run serves metrics when configured and drives the console until it exits.
func (m *Module) Run(ctx context.Context) error {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting session module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if m.metricsAddress != "" {
		observability.NewMetricsServer(m.metricsAddress, m.observability.Registry, logger).Start(ctx)
	}

	if err := m.Console.Run(ctx); err != nil {
		return fmt.Errorf("console stopped: %w", err)
	}
	logger.InfoContext(ctx, "Session module stopped")
	return nil
}

// Close shuts down the session module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
