package scorecarddb

import (
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
)

// Repository defines the contract for the session's roster and stroke records.
// Every method is synchronous, and mutations report whether they changed anything
// instead of failing.
type Repository interface {
	// RegisterPlayer appends a player. It is a no-op when the trimmed name is
	// empty or the roster is full.
	RegisterPlayer(name string) (scorecarddomain.Player, bool)

	// RemovePlayer removes a player from the roster. Their stroke records are kept.
	RemovePlayer(id scorecarddomain.PlayerID) bool

	// SetStroke records strokes for (id, hole). Zero deletes the record; negative
	// values are rejected.
	SetStroke(id scorecarddomain.PlayerID, hole, strokes int) bool

	// GetStroke returns the recorded strokes and whether a record exists.
	GetStroke(id scorecarddomain.PlayerID, hole int) (int, bool)

	// Player looks up a roster entry.
	Player(id scorecarddomain.PlayerID) (scorecarddomain.Player, bool)

	// Players returns the roster in registration order.
	Players() []scorecarddomain.Player

	// PlayerCount returns the roster size.
	PlayerCount() int

	// Strokes returns every stroke record in first-insertion order.
	Strokes() []scorecarddomain.StrokeRecord
}
