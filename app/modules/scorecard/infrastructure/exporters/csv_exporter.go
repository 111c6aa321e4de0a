package exporters

import (
	"encoding/csv"
	"fmt"
	"io"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
)

// CSVExporter writes the scorecard grid as comma separated values.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes the header, par and player rows.
func (e *CSVExporter) Export(w io.Writer, card scorecardservice.Service) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(tableRows(card.Grid())); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
