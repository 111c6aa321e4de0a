package scorecarddomain

import (
	"strconv"
	"strings"
)

const (
	// MinHoles is the shortest round.
	MinHoles = 1
	// MaxHoles is the longest round and the size of a full par table.
	MaxHoles = 18
	// DefaultHoles is used when no hole count, or zero, is given.
	DefaultHoles = 18

	// FrontNineHoles is the last hole counted in the OUT split.
	FrontNineHoles = 9

	// FallbackPar is used for a hole the configured par table does not cover.
	FallbackPar = 4
)

// ParTable lists par per hole; index 0 is hole 1.
type ParTable []int

// DefaultPar is the stock 18-hole par table.
var DefaultPar = ParTable{4, 3, 4, 4, 5, 3, 5, 4, 4, 4, 5, 4, 4, 5, 4, 3, 3, 4}

// ForHole returns the par for a 1-based hole number.
func (t ParTable) ForHole(hole int) int {
	if hole < 1 || hole > len(t) {
		return FallbackPar
	}
	return t[hole-1]
}

// Sum returns the total par over holes from..to inclusive.
func (t ParTable) Sum(from, to int) int {
	total := 0
	for h := from; h <= to; h++ {
		total += t.ForHole(h)
	}
	return total
}

// Clone returns a copy safe to hand to callers.
func (t ParTable) Clone() ParTable {
	out := make(ParTable, len(t))
	copy(out, t)
	return out
}

// ClampHoles bounds a hole count to [MinHoles, MaxHoles]. Zero selects DefaultHoles.
func ClampHoles(n int) int {
	switch {
	case n == 0:
		return DefaultHoles
	case n < MinHoles:
		return MinHoles
	case n > MaxHoles:
		return MaxHoles
	}
	return n
}

// ParseHoleCount reads a hole count typed into a numeric field.
// Blank, non-numeric and zero input select DefaultHoles.
func ParseHoleCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultHoles
	}
	return ClampHoles(n)
}

// HoleInRange reports whether hole is a valid hole number for a round of totalHoles.
func HoleInRange(hole, totalHoles int) bool {
	return hole >= 1 && hole <= totalHoles
}
