// Package kernel implements the three Müller-style SPH smoothing kernels:
// Poly6 for density accumulation, the Spiky gradient for pressure force,
// and the viscosity Laplacian for viscous diffusion. All three have
// compact support h and are evaluated in 3D.
package kernel

import "math"

// Vec3 is a 3D offset or force vector. It mirrors the SoA fields in
// package particle but stands alone so kernel has no dependency on it.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func norm(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// singularityEps guards the Spiky gradient against division by |r| ~ 0.
const singularityEps = 1e-6

// Poly6 returns the Poly6 density kernel W_p(r,h). Zero outside the
// support radius h.
func Poly6(r Vec3, h float64) float64 {
	r2 := r.X*r.X + r.Y*r.Y + r.Z*r.Z
	h2 := h * h
	if r2 > h2 {
		return 0
	}
	coef := 315.0 / (64.0 * math.Pi * math.Pow(h, 9))
	d := h2 - r2
	return coef * d * d * d
}

// SpikyGradient returns the gradient of the Spiky pressure kernel,
// pointing away from the neighbor (along r, scaled negative). Returns
// the zero vector both outside the support radius and inside the
// singularity guard at |r| < singularityEps.
func SpikyGradient(r Vec3, h float64) Vec3 {
	rn := norm(r)
	if rn > h || rn < singularityEps {
		return Vec3{}
	}
	coef := -45.0 / (math.Pi * math.Pow(h, 6))
	d := h - rn
	return r.Scale(coef * d * d / rn)
}

// ViscosityLaplacian returns the scalar Laplacian of the viscosity
// kernel, used to diffuse velocity between neighbors. Zero outside h.
func ViscosityLaplacian(r Vec3, h float64) float64 {
	rn := norm(r)
	if rn > h {
		return 0
	}
	coef := 45.0 / (math.Pi * math.Pow(h, 6))
	return coef * (h - rn)
}
