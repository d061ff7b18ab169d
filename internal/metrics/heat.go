package metrics

import "github.com/san-kum/bunit/internal/fire"

// TotalHeat reports the mean per-frame heat sum over the visible grid.
type TotalHeat struct {
	name    string
	samples int
	total   float64
}

func NewTotalHeat() *TotalHeat {
	return &TotalHeat{name: "total_heat"}
}

func (m *TotalHeat) Name() string { return m.name }

func (m *TotalHeat) Observe(s *fire.Sim, frame int) {
	sum := 0
	for i := 0; i < s.Size(); i++ {
		sum += s.Cell(i)
	}
	m.total += float64(sum)
	m.samples++
}

func (m *TotalHeat) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *TotalHeat) Reset() {
	m.total = 0
	m.samples = 0
}

// PeakHeat reports the hottest cell value seen across the whole run.
type PeakHeat struct {
	name string
	peak float64
}

func NewPeakHeat() *PeakHeat {
	return &PeakHeat{name: "peak_heat"}
}

func (m *PeakHeat) Name() string { return m.name }

func (m *PeakHeat) Observe(s *fire.Sim, frame int) {
	for i := 0; i < s.Size(); i++ {
		if v := float64(s.Cell(i)); v > m.peak {
			m.peak = v
		}
	}
}

func (m *PeakHeat) Value() float64 { return m.peak }

func (m *PeakHeat) Reset() { m.peak = 0 }

// ActiveCells reports the mean fraction of visible cells carrying heat.
type ActiveCells struct {
	name    string
	samples int
	total   float64
}

func NewActiveCells() *ActiveCells {
	return &ActiveCells{name: "active_cells"}
}

func (m *ActiveCells) Name() string { return m.name }

func (m *ActiveCells) Observe(s *fire.Sim, frame int) {
	active := 0
	for i := 0; i < s.Size(); i++ {
		if s.Cell(i) > 0 {
			active++
		}
	}
	m.total += float64(active) / float64(s.Size())
	m.samples++
}

func (m *ActiveCells) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *ActiveCells) Reset() {
	m.total = 0
	m.samples = 0
}
