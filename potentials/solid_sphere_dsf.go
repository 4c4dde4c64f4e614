package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// SolidSphereDSF is a damped-shifted-force electrostatic interaction
// between a point charge and a uniformly charged solid sphere of
// fixed radius: the field inside the sphere follows the interior
// Coulomb solution, outside it the same shifted-force form as SF.
// Grounded on original_source/simulation/src/solid-sphere-dsf.cpp.
type SolidSphereDSF struct {
	BC     bc.BC
	Cutoff float64
	Radius float64
}

func (p SolidSphereDSF) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	Rij2 := Rij * Rij
	rc2 := p.Cutoff * p.Cutoff
	if Rij2 > rc2 {
		return 0.0, geom.Zero
	}

	radius2 := p.Radius * p.Radius
	radius3 := radius2 * p.Radius
	t1 := float64(pi.Charge()) * float64(pj.Charge()) / units.FourPiE0
	uv := unitVector(rij, Rij)

	if Rij2 > radius2 {
		dElecdR := t1 * (-1.0/Rij2 + 1.0/rc2)
		energy := t1 * (1.0/Rij - 1.0/p.Cutoff + (Rij-p.Cutoff)/rc2)
		return energy, geom.Scale(-dElecdR, uv)
	}

	potR := 0.5 * (3.0 - Rij2/radius2) / p.Radius
	dElecdR := t1 * (-Rij/radius3 + 1.0/rc2)
	energy := t1 * (potR - 1.0/p.Cutoff + (Rij-p.Cutoff)/rc2)
	return energy, geom.Scale(-dElecdR, uv)
}
