package viz

import "github.com/charmbracelet/lipgloss"

// Palette maps the four heat tiers onto terminal colors. The classic
// palette is black background glyphs with 256-color orange, yellow
// and red.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Orange     lipgloss.Color
	Yellow     lipgloss.Color
	Red        lipgloss.Color
}

var (
	PaletteClassic = Palette{
		Name:       "classic",
		Background: lipgloss.Color("0"),
		Orange:     lipgloss.Color("202"),
		Yellow:     lipgloss.Color("3"),
		Red:        lipgloss.Color("1"),
	}

	PaletteEmber = Palette{
		Name:       "ember",
		Background: lipgloss.Color("0"),
		Orange:     lipgloss.Color("166"),
		Yellow:     lipgloss.Color("178"),
		Red:        lipgloss.Color("124"),
	}

	PaletteInferno = Palette{
		Name:       "inferno",
		Background: lipgloss.Color("0"),
		Orange:     lipgloss.Color("208"),
		Yellow:     lipgloss.Color("226"),
		Red:        lipgloss.Color("196"),
	}

	// All available palettes
	Palettes = []Palette{
		PaletteClassic,
		PaletteEmber,
		PaletteInferno,
	}
)

// GetPalette returns a palette by name, falling back to classic.
func GetPalette(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return PaletteClassic
}

// PaletteNames returns the list of available palette names.
func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}
