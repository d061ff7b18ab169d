package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 80
	DefaultHeight        = 24
	DefaultFrames        = 300
	DefaultSeedHeat      = 65
	DefaultInjectDivisor = 9
	DefaultPalette       = "classic"
)

// Config describes a headless fire run. The full-screen animation never
// reads one of these; it always runs the classic effect at terminal size.
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Frames  int    `yaml:"frames"`
	Seed    int64  `yaml:"seed"`
	Palette string `yaml:"palette"`
	Flame   Flame  `yaml:"flame"`
}

// Flame tunes the injection stage of the engine.
type Flame struct {
	SeedHeat      int `yaml:"seed_heat"`
	InjectDivisor int `yaml:"inject_divisor"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Frames:  DefaultFrames,
		Palette: DefaultPalette,
		Flame: Flame{
			SeedHeat:      DefaultSeedHeat,
			InjectDivisor: DefaultInjectDivisor,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
