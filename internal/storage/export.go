package storage

import (
	"encoding/json"
	"os"
)

type ExportData struct {
	ID          string             `json:"id"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Seed        int64              `json:"seed"`
	Frames      int                `json:"frames"`
	HeatSums    []float64          `json:"heat_sums"`
	PeakHeat    []float64          `json:"peak_heat"`
	ActiveCells []float64          `json:"active_cells"`
	Metrics     map[string]float64 `json:"metrics"`
}

func ExportJSONStdout(meta *RunMetadata, series *Series) error {
	data := ExportData{
		ID:          meta.ID,
		Width:       meta.Width,
		Height:      meta.Height,
		Seed:        meta.Seed,
		Frames:      meta.Frames,
		HeatSums:    series.HeatSums,
		PeakHeat:    series.PeakHeat,
		ActiveCells: series.ActiveCells,
		Metrics:     meta.Metrics,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
