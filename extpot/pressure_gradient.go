package extpot

import (
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// PressureGradient applies a constant force to every particle,
// representing the effect of an imposed pressure gradient. Grounded on
// original_source/simulation/src/pressure-gradient.cpp.
type PressureGradient struct {
	Base

	Force geom.Vec3
}

func NewPressureGradient(force geom.Vec3) PressureGradient {
	return PressureGradient{Force: force}
}

func (p PressureGradient) Eval(part *particle.Particle) (float64, geom.Vec3) {
	energy := -geom.Dot(p.Force, part.Position)
	return energy, p.Force
}
