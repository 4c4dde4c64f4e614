package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// HAQP is the "halve attractive" quartic potential fc/2*(Rij-r0)^4,
// zero for Rij <= r0. Grounded on
// original_source/simulation/src/halve-attractive-qp.cpp.
type HAQP struct {
	BC       bc.BC
	Registry *forcefield.Registry
}

func (p HAQP) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyHAQP, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	dR := Rij - params.R0
	if dR <= 0.0 {
		return 0.0, geom.Zero
	}
	dR3 := dR * dR * dR
	dR4 := dR * dR3
	energy := 0.5 * params.K * dR4
	derQP := 2.0 * params.K * dR3
	uv := unitVector(rij, Rij)
	return energy, geom.Scale(-derQP, uv)
}
