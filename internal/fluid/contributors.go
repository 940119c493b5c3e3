package fluid

import (
	"math"

	"sphfluid/internal/particle"
)

// CentrifugalContributor adds a centrifugal pseudo-force about a vertical
// axis through center, for scenarios simulating a rotating tank. This is
// exactly the kind of extra force the source project added by overriding
// its solver's compute_forces method; here it is a Contributor instead.
type CentrifugalContributor struct {
	Center          particle.Vec3
	AngularVelocity float64
}

func (c *CentrifugalContributor) Apply(s *Solver) {
	positions := s.Positions()
	masses := s.Masses()
	w2 := c.AngularVelocity * c.AngularVelocity
	for i := range positions {
		dx := positions[i].X - c.Center.X
		dz := positions[i].Z - c.Center.Z
		s.AddForce(i, particle.Vec3{
			X: masses[i] * w2 * dx,
			Z: masses[i] * w2 * dz,
		})
	}
}

// ObstacleContributor pushes particles out of a spherical static obstacle
// with a stiff linear penalty force, for flow-around-obstacle scenarios.
type ObstacleContributor struct {
	Center    particle.Vec3
	Radius    float64
	Stiffness float64
}

func (o *ObstacleContributor) Apply(s *Solver) {
	positions := s.Positions()
	for i := range positions {
		d := sub(positions[i], o.Center)
		dist2 := d.X*d.X + d.Y*d.Y + d.Z*d.Z
		if dist2 >= o.Radius*o.Radius || dist2 < 1e-12 {
			continue
		}
		dist := math.Sqrt(dist2)
		penetration := o.Radius - dist
		scale := o.Stiffness * penetration / dist
		s.AddForce(i, particle.Vec3{X: d.X * scale, Y: d.Y * scale, Z: d.Z * scale})
	}
}

// CursorAttractionContributor pulls particles within Radius toward Target
// with a force proportional to distance, for interactive sandbox
// scenarios driven by a pointer or camera target.
type CursorAttractionContributor struct {
	Target   particle.Vec3
	Radius   float64
	Strength float64
}

func (c *CursorAttractionContributor) Apply(s *Solver) {
	positions := s.Positions()
	masses := s.Masses()
	for i := range positions {
		d := sub(c.Target, positions[i])
		dist2 := d.X*d.X + d.Y*d.Y + d.Z*d.Z
		if dist2 > c.Radius*c.Radius {
			continue
		}
		s.AddForce(i, particle.Vec3{
			X: masses[i] * c.Strength * d.X,
			Y: masses[i] * c.Strength * d.Y,
			Z: masses[i] * c.Strength * d.Z,
		})
	}
}
