// Package experiment wires a scenario Config to a running fluid.Solver,
// collecting metrics over the run and producing a Result summarizing it.
package experiment

import (
	"context"
	"fmt"

	"sphfluid/internal/config"
	"sphfluid/internal/fluid"
	"sphfluid/internal/metrics"
	"sphfluid/internal/storage"
)

// infoSampleEvery is the step stride at which Run appends a fluid.Info
// summary to the result's InfoLog, independent of record.
const infoSampleEvery = 10

// Result summarizes one completed run.
type Result struct {
	Steps     int
	Particles int
	Metrics   map[string]float64
	Snapshots []storage.Snapshot
	InfoLog   []fluid.Info
}

// Experiment owns one fluid.Solver built from a Config and the metrics
// observers attached to it for the duration of Run.
type Experiment struct {
	cfg       *config.Config
	solver    *fluid.Solver
	energy    *metrics.Energy
	drift     *metrics.EnergyDrift
	stability *metrics.Stability
	record    bool
	snapshots []storage.Snapshot
	infoLog   []fluid.Info
}

// New builds a solver from cfg, seeds it from cfg.Boxes, and attaches the
// default metric observers. record controls whether Run also captures a
// storage.Snapshot after every step (costly for large particle counts).
func New(cfg *config.Config, record bool) (*Experiment, error) {
	solver, err := fluid.New(fluid.Params{
		Domain:       cfg.Domain.Vec3(),
		SmoothingLen: cfg.SmoothingLen,
		ParticleMass: config.DefaultParticleMass,
		RestDensity:  config.DefaultRestDensity,
		GasConstant:  cfg.GasConstant,
		Viscosity:    config.DefaultViscosity,
		Gravity:      cfg.Gravity.Vec3(),
		Dt:           cfg.Dt,
		MaxParticles: cfg.MaxParticles,
		Seed:         cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	for _, box := range cfg.Boxes {
		fluidPreset, ok := config.GetFluid(box.Fluid)
		if !ok {
			return nil, fmt.Errorf("experiment: unknown fluid preset %q", box.Fluid)
		}
		if _, err := solver.AppendFluidBox(box.Origin.Vec3(), box.Size.Vec3(), box.Count, fluid.Properties{
			RestDensity: fluidPreset.RestDensity,
			Viscosity:   fluidPreset.Viscosity,
			Color:       fluidPreset.Color,
		}); err != nil {
			return nil, err
		}
	}

	e := &Experiment{
		cfg:       cfg,
		solver:    solver,
		energy:    metrics.NewEnergy(-cfg.Gravity.Y),
		drift:     metrics.NewEnergyDrift(-cfg.Gravity.Y),
		stability: metrics.NewStability(20.0),
		record:    record,
	}
	solver.AddObserver(e.energy)
	solver.AddObserver(e.drift)
	solver.AddObserver(e.stability)
	return e, nil
}

// Solver returns the underlying solver, for callers that want to attach
// additional observers or contributors before Run.
func (e *Experiment) Solver() *fluid.Solver { return e.solver }

// Run advances the solver for cfg.Duration, returning accumulated metrics,
// an Info summary sampled every infoSampleEvery steps, and (if recording
// was requested) a snapshot per step. Stops early if ctx is cancelled.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	n := int(e.cfg.Duration / e.cfg.Dt)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return e.result(), ctx.Err()
		default:
		}
		e.solver.Step()
		if e.record {
			e.snapshots = append(e.snapshots, storage.SnapshotFrom(e.solver))
		}
		if i%infoSampleEvery == 0 {
			e.infoLog = append(e.infoLog, e.solver.Info())
		}
	}
	return e.result(), nil
}

func (e *Experiment) result() *Result {
	return &Result{
		Steps:     e.solver.StepCount(),
		Particles: e.solver.Live(),
		Metrics: map[string]float64{
			"energy":       e.energy.Value(),
			"energy_drift": e.drift.Value(),
			"stability":    e.stability.Value(),
		},
		Snapshots: e.snapshots,
		InfoLog:   e.infoLog,
	}
}
