package experiment

import (
	"fmt"

	"sphfluid/internal/config"
	"sphfluid/internal/fluid"
	"sphfluid/internal/particle"
)

// ContributorFactory builds the extra force hooks a scenario needs beyond
// its fluid boxes: the rotating-tank, static-obstacle, and interactive
// sandbox scenarios each register one of these instead of relying only on
// the core pressure/viscosity/gravity pipeline.
type ContributorFactory func(cfg *config.Config) []fluid.Contributor

// Registry maps a scenario name to its Config and any extra contributors.
type Registry struct {
	contributors map[string]ContributorFactory
}

func NewRegistry() *Registry {
	r := &Registry{contributors: make(map[string]ContributorFactory)}
	r.registerContributors()
	return r
}

func (r *Registry) registerContributors() {
	r.contributors["rotating_tank"] = func(cfg *config.Config) []fluid.Contributor {
		center := particle.Vec3{X: cfg.Domain.X / 2, Y: cfg.Domain.Y / 2, Z: cfg.Domain.Z / 2}
		return []fluid.Contributor{&fluid.CentrifugalContributor{Center: center, AngularVelocity: 3.0}}
	}
	r.contributors["obstacle"] = func(cfg *config.Config) []fluid.Contributor {
		center := particle.Vec3{X: cfg.Domain.X / 2, Y: cfg.Domain.Y / 3, Z: cfg.Domain.Z / 2}
		return []fluid.Contributor{&fluid.ObstacleContributor{Center: center, Radius: 0.12, Stiffness: 4000}}
	}
	r.contributors["sandbox"] = func(cfg *config.Config) []fluid.Contributor {
		target := particle.Vec3{X: cfg.Domain.X / 2, Y: cfg.Domain.Y / 2, Z: cfg.Domain.Z / 2}
		return []fluid.Contributor{&fluid.CursorAttractionContributor{Target: target, Radius: 0.4, Strength: 6.0}}
	}
}

// Build resolves a scenario name to a ready-to-run Experiment: a built-in
// config.Scenarios entry (dam_break, pour, mix, viscosity_compare) for
// pure-gravity scenarios, or a scenario with a registered ContributorFactory
// layered on top of config.DefaultConfig for the interactive ones.
func (r *Registry) Build(name string, record bool) (*Experiment, error) {
	if factory, ok := r.contributors[name]; ok {
		cfg := config.DefaultConfig()
		cfg.Scenario = name
		exp, err := New(cfg, record)
		if err != nil {
			return nil, err
		}
		for _, c := range factory(cfg) {
			exp.Solver().AddContributor(c)
		}
		return exp, nil
	}

	if cfg, ok := config.GetScenario(name); ok {
		return New(cfg, record)
	}

	return nil, fmt.Errorf("experiment: unknown scenario %q", name)
}

// ListScenarios returns every scenario name the registry can build.
func (r *Registry) ListScenarios() []string {
	seen := make(map[string]bool)
	for _, name := range config.ListScenarios() {
		seen[name] = true
	}
	for name := range r.contributors {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}
