package scorecardservice

import (
	"sort"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
)

// Aggregator implements Service. It keeps no state of its own; every query is
// recomputed from the snapshot.
type Aggregator struct {
	snap Snapshot
}

// NewAggregator creates an Aggregator over snap.
func NewAggregator(snap Snapshot) *Aggregator {
	return &Aggregator{snap: snap}
}

// sumStrokes adds the recorded strokes for holes from..to, clipped to the round.
func (a *Aggregator) sumStrokes(id scorecarddomain.PlayerID, from, to int) int {
	if to > a.snap.TotalHoles() {
		to = a.snap.TotalHoles()
	}
	total := 0
	for h := from; h <= to; h++ {
		if s, ok := a.snap.GetStroke(id, h); ok {
			total += s
		}
	}
	return total
}

// TotalScore sums every recorded hole of the round.
func (a *Aggregator) TotalScore(id scorecarddomain.PlayerID) int {
	return a.FrontNine(id) + a.BackNine(id)
}

// FrontNine sums holes 1 to 9.
func (a *Aggregator) FrontNine(id scorecarddomain.PlayerID) int {
	return a.sumStrokes(id, 1, scorecarddomain.FrontNineHoles)
}

// BackNine sums holes 10 to the last hole of the round. It is zero for rounds of
// nine holes or fewer.
func (a *Aggregator) BackNine(id scorecarddomain.PlayerID) int {
	return a.sumStrokes(id, scorecarddomain.FrontNineHoles+1, a.snap.TotalHoles())
}

// HolesPlayed counts the holes with a record.
func (a *Aggregator) HolesPlayed(id scorecarddomain.PlayerID) int {
	n := 0
	for h := 1; h <= a.snap.TotalHoles(); h++ {
		if _, ok := a.snap.GetStroke(id, h); ok {
			n++
		}
	}
	return n
}

// PlayedPar sums par over the holes the player has a record for.
func (a *Aggregator) PlayedPar(id scorecarddomain.PlayerID) int {
	par := a.snap.ParTable()
	total := 0
	for h := 1; h <= a.snap.TotalHoles(); h++ {
		if _, ok := a.snap.GetStroke(id, h); ok {
			total += par.ForHole(h)
		}
	}
	return total
}

// ScoreRelativeToPar compares the total against the par of the holes actually played.
func (a *Aggregator) ScoreRelativeToPar(id scorecarddomain.PlayerID) int {
	return a.TotalScore(id) - a.PlayedPar(id)
}

// ParForHole returns the configured par for hole.
func (a *Aggregator) ParForHole(hole int) int {
	return a.snap.ParTable().ForHole(hole)
}

// TotalPar sums par over every hole of the round.
func (a *Aggregator) TotalPar() int {
	return a.FrontNinePar() + a.BackNinePar()
}

// FrontNinePar sums par over holes 1 to 9 that belong to the round.
func (a *Aggregator) FrontNinePar() int {
	return a.snap.ParTable().Sum(1, min(scorecarddomain.FrontNineHoles, a.snap.TotalHoles()))
}

// BackNinePar sums par over holes 10 onward that belong to the round.
func (a *Aggregator) BackNinePar() int {
	return a.snap.ParTable().Sum(scorecarddomain.FrontNineHoles+1, a.snap.TotalHoles())
}

// ClassifyHole classifies a single cell against its par.
func (a *Aggregator) ClassifyHole(id scorecarddomain.PlayerID, hole int) scorecarddomain.Classification {
	strokes, ok := a.snap.GetStroke(id, hole)
	return scorecarddomain.Classify(strokes, ok, a.ParForHole(hole))
}

// Leaderboard ranks the roster by total strokes, lowest first. Ties go to the
// earlier registration.
func (a *Aggregator) Leaderboard() []LeaderboardEntry {
	players := a.snap.Players()
	entries := make([]LeaderboardEntry, 0, len(players))
	for _, p := range players {
		rel := a.ScoreRelativeToPar(p.ID)
		entries = append(entries, LeaderboardEntry{
			Player:        p,
			Total:         a.TotalScore(p.ID),
			RelativeToPar: rel,
			Label:         scorecarddomain.FormatRelativeToPar(rel),
			Standing:      scorecarddomain.StandingOf(rel),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total < entries[j].Total
		}
		return entries[i].Player.Seq < entries[j].Player.Seq
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// HoleCard builds the quick-entry view for hole.
func (a *Aggregator) HoleCard(hole int) HoleCard {
	players := a.snap.Players()
	card := HoleCard{
		Hole:       hole,
		Par:        a.ParForHole(hole),
		TotalHoles: a.snap.TotalHoles(),
		IsFirst:    hole <= 1,
		IsLast:     hole >= a.snap.TotalHoles(),
		Players:    make([]HoleCardRow, 0, len(players)),
	}
	for _, p := range players {
		strokes, ok := a.snap.GetStroke(p.ID, hole)
		rel := a.ScoreRelativeToPar(p.ID)
		card.Players = append(card.Players, HoleCardRow{
			Player:        p,
			Strokes:       strokes,
			Recorded:      ok,
			Total:         a.TotalScore(p.ID),
			RelativeToPar: rel,
			Label:         scorecarddomain.FormatRelativeToPar(rel),
		})
	}
	return card
}

// Grid builds the full scorecard view.
func (a *Aggregator) Grid() Grid {
	total := a.snap.TotalHoles()
	par := a.snap.ParTable()

	grid := Grid{
		TotalHoles: total,
		Par: ParRow{
			Holes: make([]int, 0, total),
			Out:   a.FrontNinePar(),
			In:    a.BackNinePar(),
			Total: a.TotalPar(),
		},
	}
	for h := 1; h <= total; h++ {
		grid.Par.Holes = append(grid.Par.Holes, par.ForHole(h))
	}

	for _, p := range a.snap.Players() {
		row := GridRow{
			Player: p,
			Cells:  make([]GridCell, 0, total),
			Out:    a.FrontNine(p.ID),
			In:     a.BackNine(p.ID),
		}
		row.Total = row.Out + row.In
		row.RelativeToPar = a.ScoreRelativeToPar(p.ID)
		row.Label = scorecarddomain.FormatRelativeToPar(row.RelativeToPar)

		for h := 1; h <= total; h++ {
			strokes, ok := a.snap.GetStroke(p.ID, h)
			holePar := par.ForHole(h)
			row.Cells = append(row.Cells, GridCell{
				Hole:           h,
				Par:            holePar,
				Strokes:        strokes,
				Recorded:       ok,
				Classification: scorecarddomain.Classify(strokes, ok, holePar),
			})
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// Progression returns the player's running totals after each hole they have played.
func (a *Aggregator) Progression(id scorecarddomain.PlayerID) []ProgressPoint {
	par := a.snap.ParTable()
	var points []ProgressPoint
	total, parSoFar := 0, 0
	for h := 1; h <= a.snap.TotalHoles(); h++ {
		strokes, ok := a.snap.GetStroke(id, h)
		if !ok {
			continue
		}
		total += strokes
		parSoFar += par.ForHole(h)
		points = append(points, ProgressPoint{
			Hole:          h,
			Total:         total,
			RelativeToPar: total - parSoFar,
		})
	}
	return points
}

var _ Service = (*Aggregator)(nil)
