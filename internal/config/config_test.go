package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "dam_break" {
		t.Errorf("expected scenario dam_break, got %s", cfg.Scenario)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if len(cfg.Boxes) == 0 {
		t.Error("expected at least one fluid box")
	}
}

func TestGetFluid(t *testing.T) {
	f, ok := GetFluid("water")
	if !ok {
		t.Fatal("expected water preset to exist")
	}
	if f.RestDensity != 1000 {
		t.Errorf("expected rest density 1000, got %v", f.RestDensity)
	}
}

func TestGetFluidNotFound(t *testing.T) {
	if _, ok := GetFluid("antimatter"); ok {
		t.Error("expected antimatter to be absent")
	}
}

func TestListFluidsNonEmpty(t *testing.T) {
	if len(ListFluids()) == 0 {
		t.Error("expected at least one registered fluid preset")
	}
}

func TestGetScenario(t *testing.T) {
	cfg, ok := GetScenario("mix")
	if !ok {
		t.Fatal("expected mix scenario to exist")
	}
	if len(cfg.Boxes) != 2 {
		t.Errorf("expected 2 boxes in mix scenario, got %d", len(cfg.Boxes))
	}
}

func TestGetScenarioNotFound(t *testing.T) {
	if _, ok := GetScenario("nonexistent"); ok {
		t.Error("expected nonexistent scenario to be absent")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Boxes[0].Count = 77

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Seed != 42 || got.Boxes[0].Count != 77 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "does-not-exist-sphfluid.yaml")); err == nil {
		t.Error("expected an error loading a missing file")
	}
}
