package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// HPSR combines the harmonic bond potential with soft repulsion, used
// for bonded mesoscopic beads that should still resist overlap.
// Grounded on original_source/simulation/src/hp-sr.cpp.
type HPSR struct {
	BC       bc.BC
	Cutoff   float64
	Registry *forcefield.Registry
}

func (p HPSR) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyHPSR, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)

	eSR, fSR := srForceAndEnergy(rij, Rij, params.A, p.Cutoff)
	eHP, fHP := hpForceAndEnergy(rij, Rij, params.R0, params.K)
	return eSR + eHP, geom.Add(fSR, fHP)
}
