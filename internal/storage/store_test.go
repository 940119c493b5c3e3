package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"sphfluid/internal/fluid"
	"sphfluid/internal/particle"
)

func TestSaveAndListRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "runs"))
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	sol, err := fluid.New(fluid.Params{
		Domain: particle.Vec3{X: 1, Y: 1, Z: 1}, SmoothingLen: 0.1,
		ParticleMass: 0.02, RestDensity: 1000, GasConstant: 3, Viscosity: 0.5,
		Dt: 0.01, MaxParticles: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	sol.AppendFluidBox(particle.Vec3{X: 0.3, Y: 0.3, Z: 0.3}, particle.Vec3{X: 0.2, Y: 0.2, Z: 0.2}, 8, fluid.Properties{})

	var snaps []Snapshot
	var infoLog []fluid.Info
	for i := 0; i < 3; i++ {
		sol.Step()
		snaps = append(snaps, SnapshotFrom(sol))
		infoLog = append(infoLog, sol.Info())
	}

	runID, err := s.Save("dam_break", 7, sol.Params().Dt, 0.03, 3, map[string]float64{"energy": 1.23}, infoLog, snaps)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("expected one run with ID %s, got %+v", runID, runs)
	}
	if runs[0].Particles != 8 {
		t.Errorf("expected 8 particles recorded, got %d", runs[0].Particles)
	}

	loaded, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Metrics["energy"] != 1.23 {
		t.Errorf("expected metrics to round-trip, got %+v", loaded.Metrics)
	}

	infoFile, err := os.Open(filepath.Join(dir, "runs", runID, "info.csv"))
	if err != nil {
		t.Fatalf("open info.csv: %v", err)
	}
	defer infoFile.Close()
	rows, err := csv.NewReader(infoFile).ReadAll()
	if err != nil {
		t.Fatalf("read info.csv: %v", err)
	}
	if len(rows) != len(infoLog)+1 {
		t.Errorf("expected %d info rows plus header, got %d", len(infoLog), len(rows))
	}
}

func TestListEmptyBaseDirReturnsEmptySlice(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := s.List()
	if err != nil {
		t.Fatalf("expected no error for a missing base dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
