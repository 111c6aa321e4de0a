package sessionservice

import (
	"context"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
)

// Service defines the session contract presentation layers talk to.
// Mutations never fail loudly; invalid input is ignored.
type Service interface {
	RegisterPlayer(ctx context.Context, name string)
	RemovePlayer(ctx context.Context, id scorecarddomain.PlayerID)
	SetTotalHoles(ctx context.Context, n int)
	SetTotalHolesInput(ctx context.Context, raw string)
	StartGame(ctx context.Context)

	SetStroke(ctx context.Context, id scorecarddomain.PlayerID, hole, strokes int)
	SetStrokeInput(ctx context.Context, id scorecarddomain.PlayerID, hole int, raw string)
	AdjustStroke(ctx context.Context, id scorecarddomain.PlayerID, delta int)
	NextHole(ctx context.Context)
	PrevHole(ctx context.Context)
	SetViewMode(ctx context.Context, mode ViewMode)
	ToggleView(ctx context.Context)

	Phase() Phase
	ViewMode() ViewMode
	CurrentHole() int
	TotalHoles() int
	ParTable() scorecarddomain.ParTable
	Players() []scorecarddomain.Player
	Player(id scorecarddomain.PlayerID) (scorecarddomain.Player, bool)
	Strokes() []scorecarddomain.StrokeRecord
	GetStroke(id scorecarddomain.PlayerID, hole int) (int, bool)
	Aggregates() scorecardservice.Service
}
