package experiment

import (
	"context"
	"testing"

	"sphfluid/internal/config"
)

func TestNewSeedsParticlesFromBoxes(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxParticles = 2000
	cfg.Boxes[0].Count = 64

	exp, err := New(cfg, false)
	if err != nil {
		t.Fatal(err)
	}
	// A 0.4x0.6x0.4 box with 64 requested particles has lattice spacing
	// cbrt(0.096/64) ~= 0.1145, giving a 3x5x3 lattice of 45 sites.
	if exp.Solver().Live() != 45 {
		t.Errorf("expected 45 live particles after seeding, got %d", exp.Solver().Live())
	}
}

func TestNewRejectsUnknownFluid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Boxes[0].Fluid = "plasma"

	if _, err := New(cfg, false); err == nil {
		t.Error("expected an error for an unregistered fluid preset")
	}
}

func TestRunProducesMetricsAndRecordsSnapshots(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Duration = 0.01
	cfg.Dt = 0.002
	cfg.Boxes[0].Count = 8
	cfg.Boxes[0].Size = config.VecConfig{X: 0.1, Y: 0.1, Z: 0.1}

	exp, err := New(cfg, true)
	if err != nil {
		t.Fatal(err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Steps != 5 {
		t.Errorf("expected 5 steps (0.01/0.002), got %d", result.Steps)
	}
	if len(result.Snapshots) != result.Steps {
		t.Errorf("expected one snapshot per step, got %d for %d steps", len(result.Snapshots), result.Steps)
	}
	if _, ok := result.Metrics["energy"]; !ok {
		t.Error("expected energy metric to be populated")
	}
}

func TestRunSamplesInfoLogRegardlessOfRecording(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Duration = 0.03
	cfg.Dt = 0.002
	cfg.Boxes[0].Count = 8
	cfg.Boxes[0].Size = config.VecConfig{X: 0.1, Y: 0.1, Z: 0.1}

	exp, err := New(cfg, false)
	if err != nil {
		t.Fatal(err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Snapshots) != 0 {
		t.Errorf("expected no snapshots without recording, got %d", len(result.Snapshots))
	}
	if len(result.InfoLog) == 0 {
		t.Fatal("expected a sampled info log even without recording")
	}
	last := result.InfoLog[len(result.InfoLog)-1]
	if last.Live != exp.Solver().Live() {
		t.Errorf("expected last info's Live to match solver, got %d want %d", last.Live, exp.Solver().Live())
	}
}

func TestRegistryBuildsBuiltinAndInteractiveScenarios(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"dam_break", "rotating_tank", "obstacle", "sandbox"} {
		exp, err := r.Build(name, false)
		if err != nil {
			t.Errorf("scenario %s: %v", name, err)
			continue
		}
		if exp.Solver().Live() == 0 {
			t.Errorf("scenario %s: expected seeded particles", name)
		}
	}
}

func TestRegistryBuildUnknownScenario(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Build("nonexistent", false); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}
