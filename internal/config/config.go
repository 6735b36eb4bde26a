// Package config carries the tunable parameters for the landscape engine.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scrollscape/internal/noise"
	"scrollscape/internal/plan"
	"scrollscape/internal/scape"
)

type Config struct {
	Seed     int64          `yaml:"seed"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Planner  plan.Config    `yaml:"planner"`
	Viewport ViewportConfig `yaml:"viewport"`
	Features scape.Toggles  `yaml:"features"`
	Loader   LoaderConfig   `yaml:"loader"`
}

type TerrainConfig struct {
	Octaves int     `yaml:"octaves"`
	Falloff float64 `yaml:"falloff"`
}

// NoiseParams adapts the terrain section for the noise field.
func (t TerrainConfig) NoiseParams() noise.Params {
	return noise.Params{Octaves: t.Octaves, Falloff: t.Falloff}
}

type ViewportConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Buffer     float64 `yaml:"buffer"`
	ScrollStep float64 `yaml:"scrollStep"`
	// AlwaysRegenerate forces a recomposite even when the cursor has not
	// left the already-covered window. Off by default; the gate exists as a
	// tunable because the cost trade is not settled.
	AlwaysRegenerate bool `yaml:"alwaysRegenerate"`
}

type LoaderConfig struct {
	// Workers bounds concurrent content generation per extension strip.
	Workers int `yaml:"workers"`
}

// Load reads configuration from a YAML file. An empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Seed: 1337,
		Terrain: TerrainConfig{
			Octaves: noise.DefaultOctaves,
			Falloff: noise.DefaultFalloff,
		},
		Planner: plan.DefaultConfig(),
		Viewport: ViewportConfig{
			Width:      3000,
			Height:     800,
			Buffer:     512,
			ScrollStep: 200,
		},
		Features: scape.AllToggles(),
		Loader: LoaderConfig{
			Workers: 1,
		},
	}
}

func (c *Config) Validate() error {
	if c.Terrain.Octaves <= 0 {
		return errors.New("terrain.octaves must be positive")
	}
	if c.Terrain.Falloff <= 0 || c.Terrain.Falloff > 1 {
		return errors.New("terrain.falloff must be in (0, 1]")
	}
	if c.Planner.XStep <= 0 || c.Planner.YStride <= 0 {
		return errors.New("planner scan steps must be positive")
	}
	if c.Planner.MaxDepth <= 0 {
		return errors.New("planner.maxDepth must be positive")
	}
	if c.Planner.SuitabilityThreshold < 0 || c.Planner.SuitabilityThreshold >= 1 {
		return errors.New("planner.suitabilityThreshold must be in [0, 1)")
	}
	if c.Planner.MinSpacing < 0 || c.Planner.FootprintWidth <= 0 {
		return errors.New("planner spacing parameters must be positive")
	}
	if c.Planner.DistantInterval <= 0 {
		return errors.New("planner.distantInterval must be positive")
	}
	if c.Planner.FlatChance < 0 || c.Planner.FlatChance > 1 {
		return errors.New("planner.flatChance must be in [0, 1]")
	}
	if c.Planner.FlatClusterMax < 0 {
		return errors.New("planner.flatClusterMax cannot be negative")
	}
	if c.Planner.BoatStep <= 0 {
		return errors.New("planner.boatStep must be positive")
	}
	if c.Planner.BoatChance < 0 || c.Planner.BoatChance > 1 {
		return errors.New("planner.boatChance must be in [0, 1]")
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.New("viewport dimensions must be positive")
	}
	if c.Viewport.Buffer < 0 {
		return errors.New("viewport.buffer cannot be negative")
	}
	if c.Viewport.ScrollStep <= 0 {
		return errors.New("viewport.scrollStep must be positive")
	}
	if c.Loader.Workers < 0 {
		return errors.New("loader.workers cannot be negative")
	}
	return nil
}
