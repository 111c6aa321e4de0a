package scorecarddomain

import (
	"strconv"
	"strings"
)

// MaxStrokes is the largest stroke count accepted from an entry widget.
const MaxStrokes = 20

// StrokeRecord is the recorded stroke count for one player on one hole.
// (PlayerID, Hole) is the natural key; Strokes is always positive.
type StrokeRecord struct {
	PlayerID PlayerID
	Hole     int
	Strokes  int
}

// StrokesInBounds reports whether n is acceptable from the presentation layer.
// Zero is in bounds and means "clear this cell".
func StrokesInBounds(n int) bool {
	return n >= 0 && n <= MaxStrokes
}

// ParseStrokeInput reads a value typed into a score cell.
// "" and "0" clear the cell (0, true); anything else must be a number in
// [1, MaxStrokes], otherwise ok is false and the input should be ignored.
func ParseStrokeInput(raw string) (strokes int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !StrokesInBounds(n) {
		return 0, false
	}
	return n, true
}
