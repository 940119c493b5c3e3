package config

import "sphfluid/internal/particle"

// FluidPreset bundles the physical properties assigned to the particles a
// BoxConfig places when it names a fluid. Viscosity values are scaled for
// visible contrast rather than SI accuracy, matching the reference
// project's fluid property table.
type FluidPreset struct {
	Name        string
	RestDensity float64
	GasConstant float64
	Viscosity   float64
	Color       particle.Vec3
}

// Fluids is the built-in fluid property registry.
var Fluids = map[string]FluidPreset{
	"water": {
		Name: "water", RestDensity: 1000, GasConstant: 3.0, Viscosity: 3.5,
		Color: particle.Vec3{X: 0.2, Y: 0.4, Z: 0.9},
	},
	"oil": {
		Name: "oil", RestDensity: 900, GasConstant: 2.0, Viscosity: 8.0,
		Color: particle.Vec3{X: 0.7, Y: 0.5, Z: 0.1},
	},
	"honey": {
		Name: "honey", RestDensity: 1400, GasConstant: 2.5, Viscosity: 40.0,
		Color: particle.Vec3{X: 0.9, Y: 0.6, Z: 0.05},
	},
	"mercury": {
		Name: "mercury", RestDensity: 13500, GasConstant: 8.0, Viscosity: 1.5,
		Color: particle.Vec3{X: 0.75, Y: 0.75, Z: 0.8},
	},
}

// GetFluid returns the named fluid preset and whether it was found.
func GetFluid(name string) (FluidPreset, bool) {
	f, ok := Fluids[name]
	return f, ok
}

// ListFluids returns the registered fluid preset names.
func ListFluids() []string {
	names := make([]string, 0, len(Fluids))
	for name := range Fluids {
		names = append(names, name)
	}
	return names
}

// Scenarios holds one named, ready-to-run Config for each of the four
// pure-gravity built-in scenarios (dam break, pouring stream, two-fluid
// mixing, viscosity comparison). The rotating-tank, static-obstacle, and
// interactive-sandbox scenarios are not in this map; experiment.Registry
// builds them from DefaultConfig plus a force contributor.
var Scenarios = map[string]*Config{
	"dam_break": {
		Scenario: "dam_break", Dt: DefaultDt, Duration: 6.0, MaxParticles: 4096,
		Domain: VecConfig{X: 1, Y: 1, Z: 1}, SmoothingLen: DefaultSmoothingLen,
		GasConstant: DefaultGasConstant, Gravity: VecConfig{Y: DefaultGravityY},
		Boxes: []BoxConfig{
			{Fluid: "water", Origin: VecConfig{X: 0.05, Y: 0.05, Z: 0.05}, Size: VecConfig{X: 0.4, Y: 0.6, Z: 0.4}, Count: 1200},
		},
	},
	"pour": {
		Scenario: "pour", Dt: DefaultDt, Duration: 8.0, MaxParticles: 6000,
		Domain: VecConfig{X: 1, Y: 1.2, Z: 1}, SmoothingLen: DefaultSmoothingLen,
		GasConstant: DefaultGasConstant, Gravity: VecConfig{Y: DefaultGravityY},
		Boxes: []BoxConfig{
			{Fluid: "water", Origin: VecConfig{X: 0.4, Y: 1.0, Z: 0.4}, Size: VecConfig{X: 0.1, Y: 0.1, Z: 0.1}, Count: 30},
		},
	},
	"mix": {
		Scenario: "mix", Dt: DefaultDt, Duration: 6.0, MaxParticles: 4096,
		Domain: VecConfig{X: 1, Y: 1, Z: 1}, SmoothingLen: DefaultSmoothingLen,
		GasConstant: DefaultGasConstant, Gravity: VecConfig{Y: DefaultGravityY},
		Boxes: []BoxConfig{
			{Fluid: "oil", Origin: VecConfig{X: 0.05, Y: 0.05, Z: 0.05}, Size: VecConfig{X: 0.4, Y: 0.3, Z: 0.4}, Count: 600},
			{Fluid: "water", Origin: VecConfig{X: 0.5, Y: 0.05, Z: 0.5}, Size: VecConfig{X: 0.4, Y: 0.3, Z: 0.4}, Count: 600},
		},
	},
	"viscosity_compare": {
		Scenario: "viscosity_compare", Dt: DefaultDt, Duration: 6.0, MaxParticles: 4096,
		Domain: VecConfig{X: 1.5, Y: 1, Z: 0.4}, SmoothingLen: DefaultSmoothingLen,
		GasConstant: DefaultGasConstant, Gravity: VecConfig{Y: DefaultGravityY},
		Boxes: []BoxConfig{
			{Fluid: "water", Origin: VecConfig{X: 0.05, Y: 0.6, Z: 0.05}, Size: VecConfig{X: 0.3, Y: 0.3, Z: 0.3}, Count: 400},
			{Fluid: "honey", Origin: VecConfig{X: 0.6, Y: 0.6, Z: 0.05}, Size: VecConfig{X: 0.3, Y: 0.3, Z: 0.3}, Count: 400},
			{Fluid: "mercury", Origin: VecConfig{X: 1.15, Y: 0.6, Z: 0.05}, Size: VecConfig{X: 0.3, Y: 0.3, Z: 0.3}, Count: 400},
		},
	},
}

// GetScenario returns the named built-in scenario and whether it was found.
func GetScenario(name string) (*Config, bool) {
	s, ok := Scenarios[name]
	return s, ok
}

// ListScenarios returns the registered built-in scenario names.
func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	return names
}
