package exporters

import (
	"fmt"
	"io"
	"strings"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 900
	chartHeight = 450
)

var parLineColor = drawing.ColorFromHex("95a5a6")

// ChartExporter renders each player's running score to par as a PNG line chart.
type ChartExporter struct{}

// NewChartExporter creates a new PNG chart exporter
func NewChartExporter() *ChartExporter {
	return &ChartExporter{}
}

func hexColor(c scorecarddomain.Color) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(string(c), "#"))
}

// Export plots one series per player that has played a hole, starting from
// even par at hole 0.
func (e *ChartExporter) Export(w io.Writer, card scorecardservice.Service) error {
	grid := card.Grid()

	// Even par across the round, so an unplayed card still has a series to draw.
	series := []chart.Series{chart.ContinuousSeries{
		Name:    "Par",
		XValues: []float64{0, float64(grid.TotalHoles)},
		YValues: []float64{0, 0},
		Style: chart.Style{
			StrokeColor:     parLineColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5, 5},
		},
	}}

	var lo, hi int
	for _, row := range grid.Rows {
		points := card.Progression(row.Player.ID)
		if len(points) == 0 {
			continue
		}

		xs := []float64{0}
		ys := []float64{0}
		for _, p := range points {
			xs = append(xs, float64(p.Hole))
			ys = append(ys, float64(p.RelativeToPar))
			lo = min(lo, p.RelativeToPar)
			hi = max(hi, p.RelativeToPar)
		}

		color := hexColor(row.Player.Color)
		series = append(series, chart.ContinuousSeries{
			Name:    row.Player.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Hole",
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(grid.TotalHoles)},
			ValueFormatter: intFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Score to par",
			// Keep the range non-zero when everyone is level.
			Range:          &chart.ContinuousRange{Min: float64(lo - 1), Max: float64(hi + 1)},
			ValueFormatter: toParFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int(f))
	}
	return ""
}

func toParFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return scorecarddomain.FormatRelativeToPar(int(f))
	}
	return ""
}
