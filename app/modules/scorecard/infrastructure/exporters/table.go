package exporters

import (
	"strconv"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
)

const (
	colOut   = "OUT"
	colIn    = "IN"
	colTotal = "TOTAL"
	colToPar = "+/-"
)

// headerRow is "Player, 1..N, OUT, IN, TOTAL, +/-".
func headerRow(totalHoles int) []string {
	row := make([]string, 0, totalHoles+5)
	row = append(row, "Player")
	for h := 1; h <= totalHoles; h++ {
		row = append(row, strconv.Itoa(h))
	}
	return append(row, colOut, colIn, colTotal, colToPar)
}

func parRow(par scorecardservice.ParRow) []string {
	row := make([]string, 0, len(par.Holes)+5)
	row = append(row, "Par")
	for _, p := range par.Holes {
		row = append(row, strconv.Itoa(p))
	}
	return append(row, strconv.Itoa(par.Out), strconv.Itoa(par.In), strconv.Itoa(par.Total), "")
}

// playerRow leaves holes without a record blank.
func playerRow(r scorecardservice.GridRow) []string {
	row := make([]string, 0, len(r.Cells)+5)
	row = append(row, r.Player.Name)
	for _, c := range r.Cells {
		if c.Recorded {
			row = append(row, strconv.Itoa(c.Strokes))
		} else {
			row = append(row, "")
		}
	}
	return append(row, strconv.Itoa(r.Out), strconv.Itoa(r.In), strconv.Itoa(r.Total), r.Label)
}

// tableRows lays the grid out as rows of text: header, par, then one row per player.
func tableRows(grid scorecardservice.Grid) [][]string {
	rows := make([][]string, 0, len(grid.Rows)+2)
	rows = append(rows, headerRow(grid.TotalHoles), parRow(grid.Par))
	for _, r := range grid.Rows {
		rows = append(rows, playerRow(r))
	}
	return rows
}
