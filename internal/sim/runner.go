package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/bunit/internal/fire"
)

// Metric observes the simulation once per completed frame and reduces
// what it saw to a single value.
type Metric interface {
	Name() string
	Observe(s *fire.Sim, frame int)
	Value() float64
	Reset()
}

// Observer receives a callback after every completed frame.
type Observer interface {
	OnFrame(s *fire.Sim, frame int)
}

// Config bounds a headless run.
type Config struct {
	Frames int
}

// Result carries the per-frame series and the reduced metrics of a run.
type Result struct {
	Frames      int
	HeatSums    []float64
	PeakHeat    []float64
	ActiveCells []float64
	Metrics     map[string]float64
}

// Runner drives a fire simulation for a fixed number of frames without a
// terminal attached.
type Runner struct {
	sim       *fire.Sim
	metrics   []Metric
	observers []Observer
}

func New(s *fire.Sim) *Runner {
	return &Runner{
		sim:       s,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run steps the simulation cfg.Frames times, recording the visible-grid
// heat series each frame. Cancellation via ctx returns the partial result
// together with the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}

	result := &Result{
		HeatSums:    make([]float64, 0, cfg.Frames),
		PeakHeat:    make([]float64, 0, cfg.Frames),
		ActiveCells: make([]float64, 0, cfg.Frames),
		Metrics:     make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.sim.Step()

		sum, peak, active := 0, 0, 0
		for j := 0; j < r.sim.Size(); j++ {
			v := r.sim.Cell(j)
			sum += v
			if v > peak {
				peak = v
			}
			if v > 0 {
				active++
			}
		}
		result.HeatSums = append(result.HeatSums, float64(sum))
		result.PeakHeat = append(result.PeakHeat, float64(peak))
		result.ActiveCells = append(result.ActiveCells, float64(active)/float64(r.sim.Size()))
		result.Frames++

		for _, m := range r.metrics {
			m.Observe(r.sim, i)
		}
		for _, o := range r.observers {
			o.OnFrame(r.sim, i)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
