package scorecarddomain

import "strconv"

// Classification names a hole result relative to that hole's par.
type Classification string

const (
	ClassEmpty       Classification = "empty"
	ClassEagle       Classification = "eagle"
	ClassBirdie      Classification = "birdie"
	ClassPar         Classification = "par"
	ClassBogey       Classification = "bogey"
	ClassDoubleBogey Classification = "double-bogey"
)

// Classify maps a hole result to its classification. A hole without a record is ClassEmpty.
// Anything two or more under par counts as an eagle.
func Classify(strokes int, present bool, par int) Classification {
	if !present {
		return ClassEmpty
	}
	switch diff := strokes - par; {
	case diff <= -2:
		return ClassEagle
	case diff == -1:
		return ClassBirdie
	case diff == 0:
		return ClassPar
	case diff == 1:
		return ClassBogey
	default:
		return ClassDoubleBogey
	}
}

// Standing is the sign of a score relative to par.
type Standing string

const (
	StandingUnder Standing = "under"
	StandingEven  Standing = "even"
	StandingOver  Standing = "over"
)

// StandingOf returns the standing for a relative-to-par score.
func StandingOf(relative int) Standing {
	switch {
	case relative < 0:
		return StandingUnder
	case relative > 0:
		return StandingOver
	}
	return StandingEven
}

// FormatRelativeToPar renders 0 as "E", positive scores with a leading "+",
// and negative scores with their minus sign.
func FormatRelativeToPar(relative int) string {
	if relative == 0 {
		return "E"
	}
	if relative > 0 {
		return "+" + strconv.Itoa(relative)
	}
	return strconv.Itoa(relative)
}
