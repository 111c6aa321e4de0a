package exporters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
)

// Exporter writes a finished or in-progress scorecard to w.
type Exporter interface {
	Export(w io.Writer, card scorecardservice.Service) error
}

// ExporterFactory defines the interface for creating exporters
type ExporterFactory interface {
	GetExporter(filename string) (Exporter, error)
}

// Factory creates the appropriate exporter based on file extension
type Factory struct {
	exporters map[string]Exporter // keyed by lower-case extension
}

// NewFactory creates a new exporter factory
func NewFactory() *Factory {
	return &Factory{
		exporters: map[string]Exporter{
			".csv":  NewCSVExporter(),
			".xlsx": NewXLSXExporter(),
			".png":  NewChartExporter(),
		},
	}
}

// GetExporter returns the appropriate exporter for the given filename
func (f *Factory) GetExporter(filename string) (Exporter, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	exporter, ok := f.exporters[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %q", ext)
	}
	return exporter, nil
}

// ExportFile creates filename and writes the card to it with the matching exporter.
func (f *Factory) ExportFile(filename string, card scorecardservice.Service) error {
	exporter, err := f.GetExporter(filename)
	if err != nil {
		return err
	}

	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if err := exporter.Export(out, card); err != nil {
		// Drop the partial file.
		out.Close()
		if rerr := os.Remove(filename); rerr != nil {
			return fmt.Errorf("failed to export %s: %w (cleanup: %v)", filename, err, rerr)
		}
		return fmt.Errorf("failed to export %s: %w", filename, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	return nil
}

var _ ExporterFactory = (*Factory)(nil)
