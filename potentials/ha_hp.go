package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// HAHP is the "halve attractive" harmonic potential: it is zero for
// Rij <= r0 and harmonic for Rij > r0, so it only resists stretching
// past equilibrium, never compression. Grounded on
// original_source/simulation/src/halve-attractive-hp.cpp.
type HAHP struct {
	BC       bc.BC
	Registry *forcefield.Registry
}

func (p HAHP) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyHAHP, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	dR := Rij - params.R0
	if dR <= 0.0 {
		return 0.0, geom.Zero
	}
	return hpForceAndEnergy(rij, Rij, params.R0, params.K)
}
