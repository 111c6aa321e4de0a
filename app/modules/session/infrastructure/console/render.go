package console

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	sessionservice "github.com/Black-And-White-Club/golphy/app/modules/session/application"
)

// classificationMarks decorate grid cells; par and empty cells are bare.
var classificationMarks = map[scorecarddomain.Classification]string{
	scorecarddomain.ClassEagle:       "**",
	scorecarddomain.ClassBirdie:      "*",
	scorecarddomain.ClassBogey:       "+",
	scorecarddomain.ClassDoubleBogey: "++",
}

// Render writes the view that matches the session's phase and view mode.
func (c *Console) Render() {
	if c.session.Phase() == sessionservice.PhaseSetup {
		c.renderSetup()
		return
	}
	agg := c.session.Aggregates()
	if c.session.ViewMode() == sessionservice.ViewFullScorecard {
		c.renderGrid(agg.Grid())
		return
	}
	c.renderHoleCard(agg.HoleCard(c.session.CurrentHole()))
	c.renderLeaderboard(agg.Leaderboard())
}

func (c *Console) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *Console) renderSetup() {
	players := c.session.Players()
	fmt.Fprintf(c.out, "== Setup == holes: %d  players: %d/%d\n",
		c.session.TotalHoles(), len(players), scorecarddomain.MaxPlayers)
	if len(players) == 0 {
		fmt.Fprintln(c.out, "  no players yet, use: add <name>")
		return
	}
	tw := c.newTable()
	for i, p := range players {
		fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, p.Name, p.Color)
	}
	tw.Flush()
}

func (c *Console) renderHoleCard(card scorecardservice.HoleCard) {
	fmt.Fprintf(c.out, "== Hole %d of %d == par %d\n", card.Hole, card.TotalHoles, card.Par)
	tw := c.newTable()
	fmt.Fprintln(tw, "  #\tPlayer\tStrokes\tTotal\tTo par")
	for i, row := range card.Players {
		strokes := "-"
		if row.Recorded {
			strokes = strconv.Itoa(row.Strokes)
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%d\t%s\n", i+1, row.Player.Name, strokes, row.Total, row.Label)
	}
	tw.Flush()

	switch {
	case card.IsFirst && card.IsLast:
	case card.IsFirst:
		fmt.Fprintln(c.out, "  next >")
	case card.IsLast:
		fmt.Fprintln(c.out, "  < prev")
	default:
		fmt.Fprintln(c.out, "  < prev | next >")
	}
}

func (c *Console) renderLeaderboard(entries []scorecardservice.LeaderboardEntry) {
	fmt.Fprintln(c.out, "-- Leaderboard --")
	tw := c.newTable()
	for _, e := range entries {
		fmt.Fprintf(tw, "  %d.\t%s\t%d\t%s\t%s\n", e.Position, e.Player.Name, e.Total, e.Label, e.Standing)
	}
	tw.Flush()
}

func (c *Console) renderGrid(grid scorecardservice.Grid) {
	fmt.Fprintf(c.out, "== Scorecard == %d holes\n", grid.TotalHoles)
	tw := c.newTable()

	fmt.Fprint(tw, "Hole")
	for h := 1; h <= grid.TotalHoles; h++ {
		fmt.Fprintf(tw, "\t%d", h)
	}
	fmt.Fprintln(tw, "\tOUT\tIN\tTOT\t+/-")

	fmt.Fprint(tw, "Par")
	for _, p := range grid.Par.Holes {
		fmt.Fprintf(tw, "\t%d", p)
	}
	fmt.Fprintf(tw, "\t%d\t%d\t%d\t\n", grid.Par.Out, grid.Par.In, grid.Par.Total)

	for _, row := range grid.Rows {
		fmt.Fprint(tw, row.Player.Name)
		for _, cell := range row.Cells {
			if !cell.Recorded {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%d%s", cell.Strokes, classificationMarks[cell.Classification])
		}
		fmt.Fprintf(tw, "\t%d\t%d\t%d\t%s\n", row.Out, row.In, row.Total, row.Label)
	}
	tw.Flush()
	fmt.Fprintln(c.out, "  ** eagle  * birdie  + bogey  ++ double bogey or worse")
}
