package metrics

import (
	"testing"

	"github.com/san-kum/bunit/internal/fire"
)

type stillSource struct{}

func (stillSource) Float64() float64 { return 0.5 }

func seededSim(t *testing.T) *fire.Sim {
	t.Helper()
	s, err := fire.NewWithSource(9, 3, stillSource{})
	if err != nil {
		t.Fatalf("fire.NewWithSource failed: %v", err)
	}
	// Single hot cell at flat index 20.
	s.Buffer()[20] = fire.SeedHeat
	return s
}

func TestTotalHeat(t *testing.T) {
	s := seededSim(t)
	m := NewTotalHeat()

	m.Observe(s, 0)

	if m.Value() != float64(fire.SeedHeat) {
		t.Errorf("expected total heat %d, got %f", fire.SeedHeat, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestTotalHeatAverages(t *testing.T) {
	s := seededSim(t)
	m := NewTotalHeat()

	m.Observe(s, 0)
	s.Diffuse() // 65 -> four cells of 16
	m.Observe(s, 1)

	want := (65.0 + 64.0) / 2.0
	if m.Value() != want {
		t.Errorf("expected mean %f, got %f", want, m.Value())
	}
}

func TestPeakHeat(t *testing.T) {
	s := seededSim(t)
	m := NewPeakHeat()

	m.Observe(s, 0)
	s.Diffuse()
	m.Observe(s, 1)

	// The peak sticks at the seed value even after diffusion cools the grid.
	if m.Value() != float64(fire.SeedHeat) {
		t.Errorf("expected peak %d, got %f", fire.SeedHeat, m.Value())
	}
}

func TestActiveCells(t *testing.T) {
	s := seededSim(t)
	m := NewActiveCells()

	m.Observe(s, 0)

	want := 1.0 / 27.0
	if m.Value() != want {
		t.Errorf("expected active fraction %f, got %f", want, m.Value())
	}
}
