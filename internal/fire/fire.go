package fire

import (
	"math/rand"
	"time"
)

const (
	// SeedHeat is the value written into a bottom-row cell on each injection.
	SeedHeat = 65

	// InjectDivisor sets the injection count per frame to width/InjectDivisor.
	InjectDivisor = 9
)

// Source yields uniform values in [0, 1). The animation uses math/rand;
// tests substitute a deterministic sequence.
type Source interface {
	Float64() float64
}

// Sim holds the heat buffer for a width x height grid. The buffer carries
// width+1 slack cells past the visible grid so the diffusion reads at i+1,
// i+width and i+width+1 stay in bounds for every visible index.
type Sim struct {
	width  int
	height int
	size   int
	buf    []int
	src    Source

	seedHeat  int
	injectDiv int
	frames    int
}

// New creates a cold simulation seeded from the wall clock.
func New(width, height int) (*Sim, error) {
	return NewWithSource(width, height, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSource creates a cold simulation with an explicit randomness source.
func NewWithSource(width, height int, src Source) (*Sim, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	if src == nil {
		return nil, ErrNilSource
	}
	size := width * height
	return &Sim{
		width:     width,
		height:    height,
		size:      size,
		buf:       make([]int, size+width+1),
		src:       src,
		seedHeat:  SeedHeat,
		injectDiv: InjectDivisor,
	}, nil
}

func (s *Sim) Width() int  { return s.width }
func (s *Sim) Height() int { return s.height }

// Size is the visible cell count, width*height. The buffer is Size+Width+1 long.
func (s *Sim) Size() int { return s.size }

// Frames reports how many completed steps the simulation has taken.
func (s *Sim) Frames() int { return s.frames }

// Cell returns the heat at flat index i over the whole buffer, slack included.
func (s *Sim) Cell(i int) int { return s.buf[i] }

// Buffer exposes the live heat buffer. Callers must not resize it.
func (s *Sim) Buffer() []int { return s.buf }

// SetSeedHeat overrides the injected heat value.
func (s *Sim) SetSeedHeat(v int) error {
	if v < 0 {
		return ErrParameterBounds
	}
	s.seedHeat = v
	return nil
}

// SetInjectDivisor overrides the injection rate divisor.
func (s *Sim) SetInjectDivisor(d int) error {
	if d <= 0 {
		return ErrParameterBounds
	}
	s.injectDiv = d
	return nil
}

// Inject seeds width/divisor random bottom-row cells with the seed heat.
// The computed index is deliberately not clamped: a random fraction that
// lands on the top of the range falls into the slack region, which exists
// to absorb it.
func (s *Sim) Inject() {
	base := s.width * (s.height - 1)
	for n := 0; n < s.width/s.injectDiv; n++ {
		s.buf[int(s.src.Float64()*float64(s.width))+base] = s.seedHeat
	}
}

// Diffuse runs one in-place smoothing pass over the visible grid in
// ascending index order. Cells already updated in this pass feed the
// windows of cells visited later; that forward bias is part of the
// effect and the pass must stay sequential.
func (s *Sim) Diffuse() {
	w := s.width
	for i := 0; i < s.size; i++ {
		s.buf[i] = (s.buf[i] + s.buf[i+1] + s.buf[i+w] + s.buf[i+w+1]) / 4
	}
}

// Step advances the simulation one frame: inject, diffuse, count.
func (s *Sim) Step() {
	s.Inject()
	s.Diffuse()
	s.frames++
}

// Reset cools every cell and zeroes the frame counter.
func (s *Sim) Reset() {
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.frames = 0
}
