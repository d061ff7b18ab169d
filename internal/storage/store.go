package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/bunit/internal/sim"
)

// Store keeps one directory per recorded run under a base data dir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Series holds the per-frame columns of a recorded run.
type Series struct {
	Frames      []int
	HeatSums    []float64
	PeakHeat    []float64
	ActiveCells []float64
}

func (s *Store) Save(width, height int, seed int64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("fire_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Width:     width,
		Height:    height,
		Seed:      seed,
		Frames:    result.Frames,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "heat_sum", "peak_heat", "active_cells"}); err != nil {
		return "", err
	}

	for i := 0; i < result.Frames; i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(result.HeatSums[i], 'f', 0, 64),
			strconv.FormatFloat(result.PeakHeat[i], 'f', 0, 64),
			strconv.FormatFloat(result.ActiveCells[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (*Series, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := &Series{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		frame, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		sum, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		peak, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		active, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		series.Frames = append(series.Frames, frame)
		series.HeatSums = append(series.HeatSums, sum)
		series.PeakHeat = append(series.PeakHeat, peak)
		series.ActiveCells = append(series.ActiveCells, active)
	}

	return series, nil
}
