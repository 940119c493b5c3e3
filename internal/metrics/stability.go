package metrics

import (
	"math"

	"sphfluid/internal/fluid"
)

// Stability tracks the fraction of observed steps in which every live
// particle's speed stayed under threshold. A falling score flags a run
// that is blowing up (e.g. from an unstable gas constant / timestep pair).
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{name: "stability", threshold: threshold}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) OnStep(sol *fluid.Solver, step int) {
	s.samples++
	for _, v := range sol.Velocities() {
		speed := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		if speed > s.threshold {
			s.violations++
			return
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
