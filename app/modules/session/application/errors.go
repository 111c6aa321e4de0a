package sessionservice

import "errors"

// Rejection reasons for session operations.
// None of these are ever returned to callers: an operation that hits one is a
// no-op, and the reason is only logged and counted.
var (
	// ErrEmptyName indicates a registration with a blank name.
	ErrEmptyName = errors.New("player name is empty")

	// ErrRosterFull indicates the roster already holds the maximum number of players.
	ErrRosterFull = errors.New("roster is full")

	// ErrPlayerNotFound indicates a removal for a player that is not on the roster.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrNotInSetup indicates a setup operation after the game has started.
	ErrNotInSetup = errors.New("game already started")

	// ErrNotActive indicates a play operation before the game has started.
	ErrNotActive = errors.New("game not started")

	// ErrNoPlayers indicates an attempt to start with an empty roster.
	ErrNoPlayers = errors.New("no players registered")

	// ErrUnknownPlayer indicates a stroke for a player not on the roster.
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrHoleOutOfRange indicates a hole outside the configured round.
	ErrHoleOutOfRange = errors.New("hole out of range")

	// ErrInvalidStrokes indicates a stroke count outside the accepted bounds.
	ErrInvalidStrokes = errors.New("invalid stroke count")

	// ErrAtFirstHole indicates PrevHole on hole 1.
	ErrAtFirstHole = errors.New("already at first hole")

	// ErrAtLastHole indicates NextHole on the final hole.
	ErrAtLastHole = errors.New("already at last hole")

	// ErrUnknownView indicates an unsupported view mode.
	ErrUnknownView = errors.New("unknown view mode")
)

// reasonCodes maps each rejection to its metric label.
var reasonCodes = map[error]string{
	ErrEmptyName:      "empty_name",
	ErrRosterFull:     "roster_full",
	ErrPlayerNotFound: "player_not_found",
	ErrNotInSetup:     "not_in_setup",
	ErrNotActive:      "not_active",
	ErrNoPlayers:      "no_players",
	ErrUnknownPlayer:  "unknown_player",
	ErrHoleOutOfRange: "hole_out_of_range",
	ErrInvalidStrokes: "invalid_strokes",
	ErrAtFirstHole:    "at_first_hole",
	ErrAtLastHole:     "at_last_hole",
	ErrUnknownView:    "unknown_view",
}

func reasonCode(err error) string {
	for sentinel, code := range reasonCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return "other"
}
