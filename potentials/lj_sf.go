package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// LJSF is Lennard-Jones plus shifted-force electrostatics. Grounded on
// original_source/simulation/src/lj-sf.cpp.
type LJSF struct {
	BC       bc.BC
	Box      geom.Box
	Registry *forcefield.Registry
}

func (p LJSF) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyLJSF, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	rc := cutoffDistance(p.Box, params.Cutoff)

	eLJ, fLJ := ljForceAndEnergy(rij, Rij, params.C12, params.C6)
	eSF, fSF := sfForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.EpsR, rc)
	return eLJ + eSF, geom.Add(fLJ, fSF)
}
