package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bunit/internal/fire"
)

// frameInterval is the per-frame delay; it doubles as the input poll
// window, capping the animation around 33 fps.
const frameInterval = 30 * time.Millisecond

// Fallback dimensions when the terminal never reports a size.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

type TickMsg time.Time

// Model drives the full-screen fire animation. The grid is sized from
// the first window-size report and stays fixed for the process
// lifetime; resizing mid-run is not handled.
type Model struct {
	sim    *fire.Sim
	styles [5]lipgloss.Style
}

// NewModel prepares an animation model with the given palette. The
// simulation itself is allocated once the terminal size is known.
func NewModel(p Palette) Model {
	return Model{styles: tierStyles(p)}
}

// Frames reports how many frames completed before the animation stopped.
func (m Model) Frames() int {
	if m.sim == nil {
		return 0
	}
	return m.sim.Frames()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update steps the simulation on every tick and stops on any key press
// or an interrupt.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.InterruptMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		if m.sim == nil && msg.Width > 0 && msg.Height > 0 {
			m.sim, _ = fire.New(msg.Width, msg.Height)
		}
		return m, nil
	case TickMsg:
		if m.sim == nil {
			// The terminal never reported a size before the first frame.
			m.sim, _ = fire.New(defaultWidth, defaultHeight)
		}
		m.sim.Step()
		return m, tick()
	}
	return m, nil
}

// View renders the visible grid only; the slack region is never drawn.
// Runs of same-tier cells share one styled segment to keep the frame
// string small.
func (m Model) View() string {
	if m.sim == nil {
		return ""
	}

	w, h := m.sim.Width(), m.sim.Height()
	var b strings.Builder
	b.Grow(w*h + h)

	run := make([]byte, 0, w)
	for row := 0; row < h; row++ {
		tier := fire.TierBackground
		for col := 0; col < w; col++ {
			v := m.sim.Cell(row*w + col)
			t := fire.HeatTier(v)
			if t != tier {
				if len(run) > 0 {
					b.WriteString(m.styles[tier].Render(string(run)))
					run = run[:0]
				}
				tier = t
			}
			run = append(run, fire.Glyph(v))
		}
		if len(run) > 0 {
			b.WriteString(m.styles[tier].Render(string(run)))
			run = run[:0]
		}
		if row < h-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
