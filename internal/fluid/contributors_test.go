package fluid

import (
	"testing"

	"sphfluid/internal/particle"
)

func TestCentrifugalContributorPushesOutward(t *testing.T) {
	p := baseParams()
	p.Gravity = particle.Vec3{}
	s, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	s.AppendFluidBox(particle.Vec3{X: 0.7, Y: 0.5, Z: 0.5}, particle.Vec3{X: 0.05, Y: 0.05, Z: 0.05}, 1, Properties{})
	s.AddContributor(&CentrifugalContributor{Center: particle.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, AngularVelocity: 5})

	s.Step()
	f := s.particles.Forces()[0]
	if f.X <= 0 {
		t.Errorf("expected centrifugal force pointing away from the axis (+X), got %v", f.X)
	}
}

func TestObstacleContributorPushesOutOfSphere(t *testing.T) {
	p := baseParams()
	p.Gravity = particle.Vec3{}
	s, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	s.AppendFluidBox(particle.Vec3{X: 0.52, Y: 0.5, Z: 0.5}, particle.Vec3{X: 1e-6, Y: 1e-6, Z: 1e-6}, 1, Properties{})
	s.AddContributor(&ObstacleContributor{Center: particle.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Radius: 0.1, Stiffness: 100})

	s.Step()
	f := s.particles.Forces()[0]
	if f.X <= 0 {
		t.Errorf("expected obstacle to push particle in +X away from center, got %v", f.X)
	}
}

func TestCursorAttractionPullsTowardTarget(t *testing.T) {
	p := baseParams()
	p.Gravity = particle.Vec3{}
	s, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	s.AppendFluidBox(particle.Vec3{X: 0.3, Y: 0.5, Z: 0.5}, particle.Vec3{X: 1e-6, Y: 1e-6, Z: 1e-6}, 1, Properties{})
	s.AddContributor(&CursorAttractionContributor{Target: particle.Vec3{X: 0.8, Y: 0.5, Z: 0.5}, Radius: 1.0, Strength: 10})

	s.Step()
	f := s.particles.Forces()[0]
	if f.X <= 0 {
		t.Errorf("expected attraction force pointing toward target (+X), got %v", f.X)
	}
}

func TestCursorAttractionIgnoresParticlesOutsideRadius(t *testing.T) {
	p := baseParams()
	p.Gravity = particle.Vec3{}
	s, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	s.AppendFluidBox(particle.Vec3{X: 0.01, Y: 0.5, Z: 0.5}, particle.Vec3{X: 1e-6, Y: 1e-6, Z: 1e-6}, 1, Properties{})
	s.AddContributor(&CursorAttractionContributor{Target: particle.Vec3{X: 0.99, Y: 0.5, Z: 0.5}, Radius: 0.05, Strength: 10})

	s.Step()
	f := s.particles.Forces()[0]
	if f.X != 0 {
		t.Errorf("expected no attraction force outside radius, got %v", f.X)
	}
}
