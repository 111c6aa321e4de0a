package scorecardservice

import (
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
)

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Position      int
	Player        scorecarddomain.Player
	Total         int
	RelativeToPar int
	Label         string
	Standing      scorecarddomain.Standing
}

// HoleCard is the quick-entry view of a single hole.
type HoleCard struct {
	Hole       int
	Par        int
	TotalHoles int
	IsFirst    bool
	IsLast     bool
	Players    []HoleCardRow
}

// HoleCardRow is one player's line on the quick-entry card.
type HoleCardRow struct {
	Player        scorecarddomain.Player
	Strokes       int
	Recorded      bool
	Total         int
	RelativeToPar int
	Label         string
}

// Grid is the full scorecard view.
type Grid struct {
	TotalHoles int
	Par        ParRow
	Rows       []GridRow
}

// ParRow holds the par line of the grid with its OUT/IN/TOTAL sums.
type ParRow struct {
	Holes []int
	Out   int
	In    int
	Total int
}

// GridRow is one player's line of the grid.
type GridRow struct {
	Player        scorecarddomain.Player
	Cells         []GridCell
	Out           int
	In            int
	Total         int
	RelativeToPar int
	Label         string
}

// GridCell is a single hole result on the grid.
type GridCell struct {
	Hole           int
	Par            int
	Strokes        int
	Recorded       bool
	Classification scorecarddomain.Classification
}

// ProgressPoint is a player's cumulative position after a played hole.
type ProgressPoint struct {
	Hole          int
	Total         int
	RelativeToPar int
}
