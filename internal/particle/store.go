// Package particle implements the structure-of-arrays particle store: the
// per-particle state (position, velocity, force, mass, density, pressure,
// viscosity, color) that the solver pipeline reads and mutates each step.
package particle

import "errors"

// ErrCapacity is returned by Append when the store is already at its
// configured maximum particle count.
var ErrCapacity = errors.New("particle: capacity exceeded")

// Vec3 is a 3D point or vector stored per particle.
type Vec3 struct {
	X, Y, Z float64
}

// Store holds live particle state 0..N-1 in parallel slices. Slices are
// pre-allocated to Capacity so Append never reallocates; indices at or
// beyond N are undefined and must not be read.
type Store struct {
	capacity int
	n        int

	position  []Vec3
	velocity  []Vec3
	force     []Vec3
	mass      []float64
	density   []float64
	pressure  []float64
	viscosity []float64
	color     []Vec3
}

// New allocates a store with room for capacity particles.
func New(capacity int) *Store {
	return &Store{
		capacity:  capacity,
		position:  make([]Vec3, capacity),
		velocity:  make([]Vec3, capacity),
		force:     make([]Vec3, capacity),
		mass:      make([]float64, capacity),
		density:   make([]float64, capacity),
		pressure:  make([]float64, capacity),
		viscosity: make([]float64, capacity),
		color:     make([]Vec3, capacity),
	}
}

// Len returns the live particle count N.
func (s *Store) Len() int { return s.n }

// Capacity returns the maximum number of particles the store can hold.
func (s *Store) Capacity() int { return s.capacity }

// Append adds a new live particle, initializing density, pressure, and
// force to zero, and returns its index. Returns ErrCapacity if the store
// is full.
func (s *Store) Append(position, velocity Vec3, mass float64, color Vec3, viscosity float64) (int, error) {
	if s.n >= s.capacity {
		return 0, ErrCapacity
	}
	i := s.n
	s.position[i] = position
	s.velocity[i] = velocity
	s.force[i] = Vec3{}
	s.mass[i] = mass
	s.density[i] = 0
	s.pressure[i] = 0
	s.viscosity[i] = viscosity
	s.color[i] = color
	s.n++
	return i, nil
}

// SwapRemove copies the last live slot into slot i and shrinks N by one.
// A no-op if i is out of the live range. Invalidates any index handle
// that previously referred to the last live slot.
func (s *Store) SwapRemove(i int) {
	if i < 0 || i >= s.n {
		return
	}
	last := s.n - 1
	if i != last {
		s.position[i] = s.position[last]
		s.velocity[i] = s.velocity[last]
		s.force[i] = s.force[last]
		s.mass[i] = s.mass[last]
		s.density[i] = s.density[last]
		s.pressure[i] = s.pressure[last]
		s.viscosity[i] = s.viscosity[last]
		s.color[i] = s.color[last]
	}
	s.n--
}

// Positions returns a read-only view of the live positions.
func (s *Store) Positions() []Vec3 { return s.position[:s.n] }

// Velocities returns a read-only view of the live velocities.
func (s *Store) Velocities() []Vec3 { return s.velocity[:s.n] }

// Forces returns a read-only view of the live per-step forces.
func (s *Store) Forces() []Vec3 { return s.force[:s.n] }

// Masses returns a read-only view of the live masses.
func (s *Store) Masses() []float64 { return s.mass[:s.n] }

// Densities returns a read-only view of the live densities.
func (s *Store) Densities() []float64 { return s.density[:s.n] }

// Pressures returns a read-only view of the live pressures.
func (s *Store) Pressures() []float64 { return s.pressure[:s.n] }

// Viscosities returns a read-only view of the live per-particle viscosities.
func (s *Store) Viscosities() []float64 { return s.viscosity[:s.n] }

// Colors returns a read-only view of the live particle colors.
func (s *Store) Colors() []Vec3 { return s.color[:s.n] }

// SetPosition overwrites the position of a live particle.
func (s *Store) SetPosition(i int, p Vec3) { s.position[i] = p }

// SetVelocity overwrites the velocity of a live particle.
func (s *Store) SetVelocity(i int, v Vec3) { s.velocity[i] = v }

// SetForce overwrites the transient force of a live particle.
func (s *Store) SetForce(i int, f Vec3) { s.force[i] = f }

// AddForce accumulates into the transient force of a live particle.
func (s *Store) AddForce(i int, f Vec3) {
	s.force[i].X += f.X
	s.force[i].Y += f.Y
	s.force[i].Z += f.Z
}

// SetDensity overwrites the density of a live particle.
func (s *Store) SetDensity(i int, d float64) { s.density[i] = d }

// SetPressure overwrites the pressure of a live particle.
func (s *Store) SetPressure(i int, p float64) { s.pressure[i] = p }
