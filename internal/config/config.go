// Package config loads and saves YAML scenario configuration for the fluid
// solver, and carries the built-in fluid-property and scenario presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"sphfluid/internal/particle"
)

const (
	DefaultDt           = 0.0016
	DefaultDuration     = 6.0
	DefaultSmoothingLen = 0.045
	DefaultParticleMass = 0.02
	DefaultRestDensity  = 1000.0
	DefaultGasConstant  = 3.0
	DefaultViscosity    = 3.5
	DefaultGravityY     = -9.8
)

// Config is the top-level scenario file: solver parameters plus the fluid
// boxes to seed at t=0.
type Config struct {
	Scenario     string      `yaml:"scenario"`
	Dt           float64     `yaml:"dt"`
	Duration     float64     `yaml:"duration"`
	Seed         int64       `yaml:"seed"`
	MaxParticles int         `yaml:"max_particles"`
	Domain       VecConfig   `yaml:"domain"`
	SmoothingLen float64     `yaml:"smoothing_len"`
	GasConstant  float64     `yaml:"gas_constant"`
	Gravity      VecConfig   `yaml:"gravity"`
	Boxes        []BoxConfig `yaml:"boxes"`
}

// VecConfig is the YAML-friendly mirror of particle.Vec3.
type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v VecConfig) Vec3() particle.Vec3 { return particle.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// BoxConfig describes one jittered-lattice fluid fill, identified by a
// fluid preset name (see Fluids in presets.go) that supplies the
// viscosity and render color used for every particle it places.
type BoxConfig struct {
	Fluid  string    `yaml:"fluid"`
	Origin VecConfig `yaml:"origin"`
	Size   VecConfig `yaml:"size"`
	Count  int       `yaml:"count"`
}

// DefaultConfig returns a single-box water column in a unit domain.
func DefaultConfig() *Config {
	return &Config{
		Scenario:     "dam_break",
		Dt:           DefaultDt,
		Duration:     DefaultDuration,
		MaxParticles: 4096,
		Domain:       VecConfig{X: 1, Y: 1, Z: 1},
		SmoothingLen: DefaultSmoothingLen,
		GasConstant:  DefaultGasConstant,
		Gravity:      VecConfig{Y: DefaultGravityY},
		Boxes: []BoxConfig{
			{Fluid: "water", Origin: VecConfig{X: 0.05, Y: 0.05, Z: 0.05}, Size: VecConfig{X: 0.4, Y: 0.6, Z: 0.4}, Count: 1000},
		},
	}
}

// Load reads a scenario file, overlaying it onto DefaultConfig so omitted
// fields keep their defaults.
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

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
