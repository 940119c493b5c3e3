// Package storage persists fluid run metadata, a periodic engine-state
// summary, and (when recording is enabled) particle-cloud snapshots to
// disk: one JSON metadata file, one info summary CSV, and one snapshot CSV
// per run, laid out under a base directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sphfluid/internal/fluid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata summarizes one completed run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Steps     int                `json:"steps"`
	Particles int                `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Snapshot is one recorded instant of the live particle cloud.
type Snapshot struct {
	Time      float64
	Positions []fluidVec
	Densities []float64
}

type fluidVec struct{ X, Y, Z float64 }

// Save writes metadata.json, an info.csv (one row per sampled fluid.Info
// summary), and a snapshots.csv (time, index, x, y, z, density per row,
// empty when the run wasn't recorded) into a fresh run directory under the
// store's base directory, and returns the generated run ID.
func (s *Store) Save(scenario string, seed int64, dt, duration float64, steps int, metrics map[string]float64, infoLog []fluid.Info, snapshots []Snapshot) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	particles := 0
	switch {
	case len(snapshots) > 0:
		particles = len(snapshots[len(snapshots)-1].Positions)
	case len(infoLog) > 0:
		particles = infoLog[len(infoLog)-1].Live
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Seed:      seed,
		Dt:        dt,
		Duration:  duration,
		Steps:     steps,
		Particles: particles,
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	infoFile, err := os.Create(filepath.Join(runDir, "info.csv"))
	if err != nil {
		return "", err
	}
	defer infoFile.Close()

	infoW := csv.NewWriter(infoFile)
	defer infoW.Flush()

	if err := infoW.Write([]string{"step", "time", "live", "mean_density", "mean_pressure", "mean_speed", "max_speed", "cell_count", "avg_bucket", "max_bucket"}); err != nil {
		return "", err
	}
	for _, info := range infoLog {
		row := []string{
			strconv.Itoa(info.StepCount),
			strconv.FormatFloat(info.Time, 'f', 6, 64),
			strconv.Itoa(info.Live),
			strconv.FormatFloat(info.MeanDensity, 'f', 6, 64),
			strconv.FormatFloat(info.MeanPressure, 'f', 6, 64),
			strconv.FormatFloat(info.MeanSpeed, 'f', 6, 64),
			strconv.FormatFloat(info.MaxSpeed, 'f', 6, 64),
			strconv.Itoa(info.GridStats.CellCount),
			strconv.FormatFloat(info.GridStats.AverageBucket, 'f', 6, 64),
			strconv.Itoa(info.GridStats.MaxBucketSize),
		}
		if err := infoW.Write(row); err != nil {
			return "", err
		}
	}

	csvFile, err := os.Create(filepath.Join(runDir, "snapshots.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "index", "x", "y", "z", "density"}); err != nil {
		return "", err
	}
	for _, snap := range snapshots {
		tStr := strconv.FormatFloat(snap.Time, 'f', 6, 64)
		for i, p := range snap.Positions {
			density := 0.0
			if i < len(snap.Densities) {
				density = snap.Densities[i]
			}
			row := []string{
				tStr,
				strconv.Itoa(i),
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
				strconv.FormatFloat(density, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

// SnapshotFrom captures the solver's current particle cloud.
func SnapshotFrom(s *fluid.Solver) Snapshot {
	positions := s.Positions()
	densities := s.Densities()
	out := Snapshot{Time: s.Time(), Positions: make([]fluidVec, len(positions)), Densities: make([]float64, len(densities))}
	for i, p := range positions {
		out.Positions[i] = fluidVec{X: p.X, Y: p.Y, Z: p.Z}
	}
	copy(out.Densities, densities)
	return out
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
