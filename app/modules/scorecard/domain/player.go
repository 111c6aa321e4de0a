package scorecarddomain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// MaxPlayers is the roster cap; the palette has exactly one entry per slot.
	MaxPlayers = 8

	// NameMaxLength is the display name cap, in runes.
	NameMaxLength = 20
)

// PlayerID identifies a registered player. IDs are never reused within a session.
type PlayerID uuid.UUID

// NilPlayerID is the zero value, never assigned to a registered player.
var NilPlayerID = PlayerID(uuid.Nil)

// String returns the canonical UUID form.
func (id PlayerID) String() string {
	return uuid.UUID(id).String()
}

// Color is a hex display color.
type Color string

// Palette holds the display colors handed out by registration slot.
type Palette [MaxPlayers]Color

// DefaultPalette is the color set used when no palette is configured.
var DefaultPalette = Palette{
	"#e74c3c", "#3498db", "#2ecc71", "#f39c12",
	"#9b59b6", "#1abc9c", "#e67e22", "#34495e",
}

// NextFree returns the lowest-index color not held by any of the given players.
// It returns false when every slot is taken.
func (p Palette) NextFree(players []Player) (Color, bool) {
	used := make(map[Color]bool, len(players))
	for _, pl := range players {
		used[pl.Color] = true
	}
	for _, c := range p {
		if !used[c] {
			return c, true
		}
	}
	return "", false
}

// Player is a registered participant.
type Player struct {
	ID    PlayerID
	Seq   int // registration order, starting at 1
	Name  string
	Color Color
}

// NormalizeName trims surrounding whitespace and caps the name at NameMaxLength runes.
// An empty result means the name is not registrable.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= NameMaxLength {
		return name
	}
	runes := []rune(name)
	return strings.TrimSpace(string(runes[:NameMaxLength]))
}
