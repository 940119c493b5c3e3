// Package fluid implements the weakly-compressible SPH solver pipeline:
// density/pressure accumulation, pressure/viscosity/gravity forces,
// semi-implicit Euler integration, and reflective boundary handling,
// orchestrated each Step in that fixed order over a uniform spatial
// index rebuilt from the particle store's current positions.
package fluid

import (
	"math"

	"sphfluid/internal/compute"
	"sphfluid/internal/kernel"
	"sphfluid/internal/particle"
	"sphfluid/internal/spatial"
)

// boundary constants from the reflection rule (spec ss4.D).
const (
	boundaryEps = 1e-3
	damping     = 0.5
)

// densityFloorFactor sets the minimum density as a fraction of rest density.
const densityFloorFactor = 0.01

// Params are the solver's construction-time parameters. All are
// immutable after New except via the zero-value defaults substituted
// into particle insertion.
type Params struct {
	Domain         particle.Vec3 // axis-aligned box [0,Domain.X]x[0,Domain.Y]x[0,Domain.Z]
	SmoothingLen   float64       // h
	ParticleMass   float64       // default particle mass
	RestDensity    float64       // rho0
	GasConstant    float64       // k
	Viscosity      float64       // default per-particle viscosity
	Gravity        particle.Vec3 // g
	Dt             float64       // timestep
	MaxParticles   int           // capacity
	Seed           int64         // RNG seed for jittered insertion
}

func (p Params) validate() error {
	switch {
	case p.SmoothingLen <= 0:
		return &InvalidParameterError{"SmoothingLen", p.SmoothingLen}
	case p.Dt <= 0:
		return &InvalidParameterError{"Dt", p.Dt}
	case p.ParticleMass <= 0:
		return &InvalidParameterError{"ParticleMass", p.ParticleMass}
	case p.Domain.X <= 0:
		return &InvalidParameterError{"Domain.X", p.Domain.X}
	case p.Domain.Y <= 0:
		return &InvalidParameterError{"Domain.Y", p.Domain.Y}
	case p.Domain.Z <= 0:
		return &InvalidParameterError{"Domain.Z", p.Domain.Z}
	}
	return nil
}

// Contributor is a force hook registered at construction. Apply runs
// after the core pressure/viscosity/gravity force computation in Step 2
// and may accumulate additional force into any live particle via the
// solver's AddForce. This is the composable replacement for the source
// project's monkey-patched compute_forces override: callers add
// centrifugal pseudo-forces, obstacle collisions, cursor attraction, and
// similar effects by registering a Contributor instead of wrapping a
// method.
type Contributor interface {
	Apply(s *Solver)
}

// ContributorFunc adapts a function to the Contributor interface.
type ContributorFunc func(s *Solver)

func (f ContributorFunc) Apply(s *Solver) { f(s) }

// Observer is notified once per completed, non-empty step.
type Observer interface {
	OnStep(s *Solver, step int)
}

// Solver owns the particle store, spatial index, and global simulation
// state (time, step counter) for one fluid simulation instance. The
// zero value is not usable; construct with New.
type Solver struct {
	params Params
	rng    randSource

	particles *particle.Store
	grid      *spatial.Grid

	time  float64
	steps int

	contributors []Contributor
	observers    []Observer
}

// New validates params and constructs an empty (N=0) solver.
func New(params Params) (*Solver, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if params.MaxParticles <= 0 {
		params.MaxParticles = 10000
	}
	return &Solver{
		params:    params,
		rng:       newRand(params.Seed),
		particles: particle.New(params.MaxParticles),
		grid:      spatial.New(params.SmoothingLen),
	}, nil
}

// Params returns the solver's construction parameters.
func (s *Solver) Params() Params { return s.params }

// AddContributor registers a force hook invoked once per particle pass
// in Step 2, after the core pressure/viscosity/gravity forces are set.
func (s *Solver) AddContributor(c Contributor) { s.contributors = append(s.contributors, c) }

// AddObserver registers a callback invoked after each completed,
// non-empty step, in addition to any callback passed to Run.
func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Time returns the current simulation time t.
func (s *Solver) Time() float64 { return s.time }

// StepCount returns the number of completed steps.
func (s *Solver) StepCount() int { return s.steps }

// Live returns the number of live particles (N). The solver is in the
// Empty state when Live() == 0 and Active otherwise.
func (s *Solver) Live() int { return s.particles.Len() }

// AddForce accumulates additional force into a live particle's transient
// force slot; intended for use from a registered Contributor.
func (s *Solver) AddForce(i int, f particle.Vec3) { s.particles.AddForce(i, f) }

// Positions returns a read-only view of live particle positions.
func (s *Solver) Positions() []particle.Vec3 { return s.particles.Positions() }

// Velocities returns a read-only view of live particle velocities.
func (s *Solver) Velocities() []particle.Vec3 { return s.particles.Velocities() }

// Densities returns a read-only view of live particle densities.
func (s *Solver) Densities() []float64 { return s.particles.Densities() }

// Pressures returns a read-only view of live particle pressures.
func (s *Solver) Pressures() []float64 { return s.particles.Pressures() }

// Colors returns a read-only view of live particle colors.
func (s *Solver) Colors() []particle.Vec3 { return s.particles.Colors() }

// Masses returns a read-only view of live particle masses.
func (s *Solver) Masses() []float64 { return s.particles.Masses() }

// Remove swap-removes a live particle. Exposed for completeness of the
// Active -> Empty transition described in the spec's state machine; no
// current driver calls it.
func (s *Solver) Remove(i int) { s.particles.SwapRemove(i) }

// Step advances the simulation by one Dt using the fixed four-phase
// pipeline: density/pressure, forces, integration, reflection. A no-op
// (time and step counter unchanged) when no particles are live.
func (s *Solver) Step() {
	n := s.particles.Len()
	if n == 0 {
		return
	}

	s.computeDensityPressure()
	s.computeForces()
	s.integrate()
	s.reflectBoundaries()

	s.time += s.params.Dt
	s.steps++

	for _, o := range s.observers {
		o.OnStep(s, s.steps-1)
	}
}

// Run executes floor(duration/Dt) steps, invoking callback (if non-nil)
// after each with the solver handle and the zero-based step index.
func (s *Solver) Run(duration float64, callback func(*Solver, int)) {
	n := int(duration / s.params.Dt)
	for i := 0; i < n; i++ {
		s.Step()
		if callback != nil {
			callback(s, i)
		}
	}
}

func (s *Solver) computeDensityPressure() {
	s.grid.Rebuild(s.particles.Positions())

	positions := s.particles.Positions()
	masses := s.particles.Masses()
	n := len(positions)
	floor := densityFloorFactor * s.params.RestDensity

	compute.GetBackend().ParallelFor(n, func(i int) {
		var rho float64
		for _, j := range s.grid.Query(positions[i]) {
			r := sub(positions[i], positions[j])
			rho += masses[j] * kernel.Poly6(kernel.Vec3(r), s.params.SmoothingLen)
		}
		if rho < floor {
			rho = floor
		}
		s.particles.SetDensity(i, rho)
		s.particles.SetPressure(i, s.params.GasConstant*(rho-s.params.RestDensity))
	})
}

func (s *Solver) computeForces() {
	positions := s.particles.Positions()
	velocities := s.particles.Velocities()
	masses := s.particles.Masses()
	densities := s.particles.Densities()
	pressures := s.particles.Pressures()
	viscosities := s.particles.Viscosities()
	n := len(positions)
	h := s.params.SmoothingLen

	compute.GetBackend().ParallelFor(n, func(i int) {
		var fPressure, fViscosity particle.Vec3
		for _, j32 := range s.grid.Query(positions[i]) {
			j := int(j32)
			if j == i || densities[j] <= 0 {
				continue
			}
			r := sub(positions[i], positions[j])

			grad := kernel.SpikyGradient(kernel.Vec3(r), h)
			pAvg := -masses[j] * (pressures[i] + pressures[j]) / (2 * densities[j])
			fPressure.X += pAvg * grad.X
			fPressure.Y += pAvg * grad.Y
			fPressure.Z += pAvg * grad.Z

			lap := kernel.ViscosityLaplacian(kernel.Vec3(r), h)
			coef := viscosities[i] * masses[j] / densities[j] * lap
			fViscosity.X += coef * (velocities[j].X - velocities[i].X)
			fViscosity.Y += coef * (velocities[j].Y - velocities[i].Y)
			fViscosity.Z += coef * (velocities[j].Z - velocities[i].Z)
		}

		fGravity := particle.Vec3{
			X: masses[i] * s.params.Gravity.X,
			Y: masses[i] * s.params.Gravity.Y,
			Z: masses[i] * s.params.Gravity.Z,
		}

		s.particles.SetForce(i, particle.Vec3{
			X: fPressure.X + fViscosity.X + fGravity.X,
			Y: fPressure.Y + fViscosity.Y + fGravity.Y,
			Z: fPressure.Z + fViscosity.Z + fGravity.Z,
		})
	})

	for _, c := range s.contributors {
		c.Apply(s)
	}
}

func (s *Solver) integrate() {
	n := s.particles.Len()
	forces := s.particles.Forces()
	masses := s.particles.Masses()
	dt := s.params.Dt

	for i := 0; i < n; i++ {
		v := s.particles.Velocities()[i]
		v.X += forces[i].X / masses[i] * dt
		v.Y += forces[i].Y / masses[i] * dt
		v.Z += forces[i].Z / masses[i] * dt
		s.particles.SetVelocity(i, v)

		p := s.particles.Positions()[i]
		p.X += v.X * dt
		p.Y += v.Y * dt
		p.Z += v.Z * dt
		s.particles.SetPosition(i, p)
	}
}

func (s *Solver) reflectBoundaries() {
	n := s.particles.Len()
	domain := [3]float64{s.params.Domain.X, s.params.Domain.Y, s.params.Domain.Z}

	for i := 0; i < n; i++ {
		p := s.particles.Positions()[i]
		v := s.particles.Velocities()[i]
		pa := [3]*float64{&p.X, &p.Y, &p.Z}
		va := [3]*float64{&v.X, &v.Y, &v.Z}

		for axis := 0; axis < 3; axis++ {
			if *pa[axis] < 0 {
				*pa[axis] = boundaryEps
				*va[axis] = math.Abs(*va[axis]) * damping
			} else if *pa[axis] > domain[axis] {
				*pa[axis] = domain[axis] - boundaryEps
				*va[axis] = -math.Abs(*va[axis]) * damping
			}
		}

		s.particles.SetPosition(i, p)
		s.particles.SetVelocity(i, v)
	}
}

func sub(a, b particle.Vec3) particle.Vec3 {
	return particle.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Info is the engine-facing state summary: current time, step count, live
// count, mean/max kinematic and thermodynamic quantities, and the spatial
// index's occupancy as of the last rebuild. Intended for periodic logging
// and for the run-persistence layer, not for the hot per-step path.
type Info struct {
	Time         float64
	StepCount    int
	Live         int
	MeanDensity  float64
	MeanPressure float64
	MeanSpeed    float64
	MaxSpeed     float64
	GridStats    spatial.Stats
}

// Info summarizes the solver's current state.
func (s *Solver) Info() Info {
	info := Info{
		Time:      s.time,
		StepCount: s.steps,
		Live:      s.particles.Len(),
		GridStats: s.grid.Stats(),
	}

	n := s.particles.Len()
	if n == 0 {
		return info
	}

	densities := s.particles.Densities()
	pressures := s.particles.Pressures()
	velocities := s.particles.Velocities()

	var sumDensity, sumPressure, sumSpeed float64
	for i := 0; i < n; i++ {
		sumDensity += densities[i]
		sumPressure += pressures[i]
		v := velocities[i]
		speed := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		sumSpeed += speed
		if speed > info.MaxSpeed {
			info.MaxSpeed = speed
		}
	}

	info.MeanDensity = sumDensity / float64(n)
	info.MeanPressure = sumPressure / float64(n)
	info.MeanSpeed = sumSpeed / float64(n)
	return info
}
