package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
}

func TestValidateDetectsInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "non positive octaves",
			mutate: func(cfg *Config) {
				cfg.Terrain.Octaves = 0
			},
			wantErr: "terrain.octaves must be positive",
		},
		{
			name: "falloff above one",
			mutate: func(cfg *Config) {
				cfg.Terrain.Falloff = 1.5
			},
			wantErr: "terrain.falloff must be in (0, 1]",
		},
		{
			name: "zero scan step",
			mutate: func(cfg *Config) {
				cfg.Planner.XStep = 0
			},
			wantErr: "planner scan steps must be positive",
		},
		{
			name: "threshold at one",
			mutate: func(cfg *Config) {
				cfg.Planner.SuitabilityThreshold = 1
			},
			wantErr: "planner.suitabilityThreshold must be in [0, 1)",
		},
		{
			name: "zero footprint",
			mutate: func(cfg *Config) {
				cfg.Planner.FootprintWidth = 0
			},
			wantErr: "planner spacing parameters must be positive",
		},
		{
			name: "boat chance above one",
			mutate: func(cfg *Config) {
				cfg.Planner.BoatChance = 2
			},
			wantErr: "planner.boatChance must be in [0, 1]",
		},
		{
			name: "zero viewport width",
			mutate: func(cfg *Config) {
				cfg.Viewport.Width = 0
			},
			wantErr: "viewport dimensions must be positive",
		},
		{
			name: "negative buffer",
			mutate: func(cfg *Config) {
				cfg.Viewport.Buffer = -1
			},
			wantErr: "viewport.buffer cannot be negative",
		},
		{
			name: "negative workers",
			mutate: func(cfg *Config) {
				cfg.Loader.Workers = -2
			},
			wantErr: "loader.workers cannot be negative",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load with empty path: %v", err)
	}
	if cfg.Seed != Default().Seed {
		t.Fatalf("expected default seed, got %d", cfg.Seed)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	doc := `
seed: 42
terrain:
  octaves: 6
planner:
  boatChance: 0.5
features:
  boats: false
  mountains: true
viewport:
  width: 1200
  height: 600
  buffer: 256
  scrollStep: 50
loader:
  workers: 4
`
	path := filepath.Join(t.TempDir(), "scrollscape.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed override lost: %d", cfg.Seed)
	}
	if cfg.Terrain.Octaves != 6 {
		t.Fatalf("octave override lost: %d", cfg.Terrain.Octaves)
	}
	if cfg.Planner.BoatChance != 0.5 {
		t.Fatalf("planner override lost: %v", cfg.Planner.BoatChance)
	}
	if cfg.Features.Boats {
		t.Fatal("boat toggle override lost")
	}
	if cfg.Planner.XStep != Default().Planner.XStep {
		t.Fatalf("untouched field should keep its default, got %v", cfg.Planner.XStep)
	}
	if cfg.Loader.Workers != 4 {
		t.Fatalf("worker override lost: %d", cfg.Loader.Workers)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("terrain:\n  octaves: -3\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation failure for negative octaves")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
