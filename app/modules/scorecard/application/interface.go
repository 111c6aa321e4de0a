package scorecardservice

import (
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
)

// Snapshot is the read-only view of a session the aggregates are computed from.
type Snapshot interface {
	Players() []scorecarddomain.Player
	GetStroke(id scorecarddomain.PlayerID, hole int) (int, bool)
	TotalHoles() int
	ParTable() scorecarddomain.ParTable
}

// Service defines the aggregate queries presentation layers read from.
type Service interface {
	TotalScore(id scorecarddomain.PlayerID) int
	FrontNine(id scorecarddomain.PlayerID) int
	BackNine(id scorecarddomain.PlayerID) int
	HolesPlayed(id scorecarddomain.PlayerID) int
	PlayedPar(id scorecarddomain.PlayerID) int
	ScoreRelativeToPar(id scorecarddomain.PlayerID) int

	ParForHole(hole int) int
	TotalPar() int
	FrontNinePar() int
	BackNinePar() int

	ClassifyHole(id scorecarddomain.PlayerID, hole int) scorecarddomain.Classification
	Leaderboard() []LeaderboardEntry
	HoleCard(hole int) HoleCard
	Grid() Grid
	Progression(id scorecarddomain.PlayerID) []ProgressPoint
}
