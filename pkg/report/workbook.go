package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"garden/pkg/garden/types"
)

const (
	PlantsSheet  = "Plants"
	HistorySheet = "History"
)

var (
	plantHeader   = []any{"id", "name", "species", "planted", "pot_size_cm", "sunlight", "watering_interval", "fertilizer_interval", "next_water", "next_fertilize"}
	historyHeader = []any{"plant_id", "plant", "type", "date", "notes"}
)

// Workbook lays the plant list out as a two sheet spreadsheet: one row per
// plant, and one row per care event.
func Workbook(plants []types.PlantView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fill(f, plants); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, plants []types.PlantView) error {
	if err := f.SetSheetName("Sheet1", PlantsSheet); err != nil {
		return fmt.Errorf("workbook: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(HistorySheet); err != nil {
		return fmt.Errorf("workbook: new sheet: %w", err)
	}

	if err := setRow(f, PlantsSheet, 1, plantHeader); err != nil {
		return err
	}
	if err := setRow(f, HistorySheet, 1, historyHeader); err != nil {
		return err
	}

	hrow := 2
	for i, p := range plants {
		row := []any{p.ID, p.Name, p.Species, p.Planted, p.PotSizeCM, p.Sunlight,
			p.WateringInterval, p.FertilizerInterval, p.NextWater, p.NextFertilize}
		if err := setRow(f, PlantsSheet, i+2, row); err != nil {
			return err
		}
		for _, e := range p.History {
			if err := setRow(f, HistorySheet, hrow, []any{p.ID, p.Name, e.Type, e.Date, e.Notes}); err != nil {
				return err
			}
			hrow++
		}
	}
	return nil
}

// WriteWorkbook writes the xlsx encoding of plants to w.
func WriteWorkbook(w io.Writer, plants []types.PlantView) error {
	f, err := Workbook(plants)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("workbook: write: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("workbook: %s row %d: %w", sheet, row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("workbook: %s row %d: %w", sheet, row, err)
	}
	return nil
}
