package config

// Presets are canned headless-run configurations. "classic" matches the
// animation's constants exactly; the others push the injection stage
// around for denser or sparser flames.
var Presets = map[string]*Config{
	"classic": {
		Width: 80, Height: 24, Frames: 300, Palette: "classic",
		Flame: Flame{SeedHeat: 65, InjectDivisor: 9},
	},
	"embers": {
		Width: 80, Height: 24, Frames: 600, Palette: "ember",
		Flame: Flame{SeedHeat: 40, InjectDivisor: 16},
	},
	"inferno": {
		Width: 120, Height: 30, Frames: 300, Palette: "inferno",
		Flame: Flame{SeedHeat: 80, InjectDivisor: 4},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
