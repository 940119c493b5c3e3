package fluid

import (
	"math"
	"math/rand"

	"sphfluid/internal/particle"
)

// randSource is the minimal interface the insertion helper needs from
// math/rand, so tests can substitute a deterministic source.
type randSource interface {
	Float64() float64
}

func newRand(seed int64) randSource {
	return rand.New(rand.NewSource(seed))
}

// Properties is the fluid property bundle consumed by AppendFluidBox.
// RestDensity is informational only (the core equation of state always
// uses the solver-wide Params.RestDensity); Viscosity and Color are
// written into each inserted particle. A richer preset (name, gas
// constant, ...) is presentation metadata owned by internal/config, not
// by this bundle.
type Properties struct {
	RestDensity float64
	Viscosity   float64
	Color       particle.Vec3
}

// AppendFluidBox fills the axis-aligned box [origin, origin+size] with up
// to n particles on a jittered lattice, using bundle's viscosity and
// color (falling back to the solver's default viscosity when bundle is
// the zero value's Viscosity). Returns the number of particles actually
// placed, which may be less than n when the lattice undersamples a very
// small box. Returns ErrCapacity if even the first particle cannot be
// appended.
func (s *Solver) AppendFluidBox(origin, size particle.Vec3, n int, bundle Properties) (int, error) {
	if n <= 0 || size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return 0, nil
	}

	volume := size.X * size.Y * size.Z
	spacing := math.Cbrt(volume / float64(n))

	nx := maxInt(1, int(size.X/spacing))
	ny := maxInt(1, int(size.Y/spacing))
	nz := maxInt(1, int(size.Z/spacing))

	viscosity := bundle.Viscosity
	if viscosity == 0 {
		viscosity = s.params.Viscosity
	}

	placed := 0
	for i := 0; i < nx && placed < n; i++ {
		for j := 0; j < ny && placed < n; j++ {
			for k := 0; k < nz && placed < n; k++ {
				pos := particle.Vec3{
					X: origin.X + float64(i)*spacing + s.jitter(spacing),
					Y: origin.Y + float64(j)*spacing + s.jitter(spacing),
					Z: origin.Z + float64(k)*spacing + s.jitter(spacing),
				}
				pos = s.clampToDomain(pos)

				if _, err := s.particles.Append(pos, particle.Vec3{}, s.params.ParticleMass, bundle.Color, viscosity); err != nil {
					if placed == 0 {
						return 0, ErrCapacity
					}
					return placed, nil
				}
				placed++
			}
		}
	}
	return placed, nil
}

func (s *Solver) jitter(spacing float64) float64 {
	return (s.rng.Float64()*2 - 1) * 0.1 * spacing
}

func (s *Solver) clampToDomain(p particle.Vec3) particle.Vec3 {
	return particle.Vec3{
		X: clamp(p.X, 0, s.params.Domain.X),
		Y: clamp(p.Y, 0, s.params.Domain.Y),
		Z: clamp(p.Z, 0, s.params.Domain.Z),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
