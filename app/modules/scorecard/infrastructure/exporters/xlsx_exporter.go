package exporters

import (
	"fmt"
	"io"
	"strings"

	scorecardservice "github.com/Black-And-White-Club/golphy/app/modules/scorecard/application"
	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the XLSX exporter writes.
const SheetName = "Scorecard"

// classificationFills are the cell backgrounds for scored holes. Par and
// empty cells are left unfilled.
var classificationFills = map[scorecarddomain.Classification]string{
	scorecarddomain.ClassEagle:       "F7DC6F",
	scorecarddomain.ClassBirdie:      "F5B7B1",
	scorecarddomain.ClassBogey:       "AED6F1",
	scorecarddomain.ClassDoubleBogey: "5DADE2",
}

// XLSXExporter writes the scorecard as a single-sheet workbook.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSX exporter
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes the grid with bold header and par rows, player names in their
// colors, and hole cells filled by classification.
func (e *XLSXExporter) Export(w io.Writer, card scorecardservice.Service) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	grid := card.Grid()
	for idx, cells := range sheetRows(grid) {
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, axis, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", idx+1, err)
		}
	}

	if err := e.styleHeader(f, grid); err != nil {
		return err
	}
	if err := e.stylePlayers(f, grid); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

// sheetRows mirrors tableRows with numeric cells so the sheet can be summed.
// Names, labels and the header's column titles stay text; unrecorded holes are nil.
func sheetRows(grid scorecardservice.Grid) [][]interface{} {
	rows := make([][]interface{}, 0, len(grid.Rows)+2)

	header := []interface{}{"Player"}
	for h := 1; h <= grid.TotalHoles; h++ {
		header = append(header, h)
	}
	rows = append(rows, append(header, colOut, colIn, colTotal, colToPar))

	par := []interface{}{"Par"}
	for _, p := range grid.Par.Holes {
		par = append(par, p)
	}
	rows = append(rows, append(par, grid.Par.Out, grid.Par.In, grid.Par.Total, nil))

	for _, r := range grid.Rows {
		row := []interface{}{r.Player.Name}
		for _, c := range r.Cells {
			if c.Recorded {
				row = append(row, c.Strokes)
			} else {
				row = append(row, nil)
			}
		}
		rows = append(rows, append(row, r.Out, r.In, r.Total, r.Label))
	}
	return rows
}

func (e *XLSXExporter) styleHeader(f *excelize.File, grid scorecardservice.Grid) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headerRow(grid.TotalHoles)), 2)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, "A1", last, bold)
}

func (e *XLSXExporter) stylePlayers(f *excelize.File, grid scorecardservice.Grid) error {
	fills := make(map[scorecarddomain.Classification]int, len(classificationFills))
	for class, color := range classificationFills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s style: %w", class, err)
		}
		fills[class] = id
	}

	for i, r := range grid.Rows {
		rowNum := i + 3

		nameStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: strings.TrimPrefix(string(r.Player.Color), "#")},
		})
		if err != nil {
			return fmt.Errorf("failed to create name style: %w", err)
		}
		nameCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetCellStyle(SheetName, nameCell, nameCell, nameStyle); err != nil {
			return err
		}

		for _, c := range r.Cells {
			style, ok := fills[c.Classification]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c.Hole+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}
