package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bunit/internal/fire"
)

// tierStyles builds the bold foreground style for each heat tier.
// Index 0 is unused so the array lines up with fire.Tier values.
func tierStyles(p Palette) [5]lipgloss.Style {
	var styles [5]lipgloss.Style
	styles[fire.TierBackground] = lipgloss.NewStyle().Foreground(p.Background).Bold(true)
	styles[fire.TierOrange] = lipgloss.NewStyle().Foreground(p.Orange).Bold(true)
	styles[fire.TierYellow] = lipgloss.NewStyle().Foreground(p.Yellow).Bold(true)
	styles[fire.TierRed] = lipgloss.NewStyle().Foreground(p.Red).Bold(true)
	return styles
}
