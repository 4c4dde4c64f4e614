package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// HSSF is shifted-force electrostatics with a hard-sphere exclusion
// core: pairs overlapping their combined radii return Large in every
// direction. Grounded on original_source/simulation/src/hs-sf.cpp.
type HSSF struct {
	BC       bc.BC
	Box      geom.Box
	Registry *forcefield.Registry
}

func (p HSSF) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	minimumDistance := float64(pi.Spec.Radius) + float64(pj.Spec.Radius)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	if Rij <= minimumDistance {
		return Large, geom.Vec3{Large, Large, Large}
	}
	params := lookup(p.Registry, forcefield.FamilyHSSF, pi, pj)
	rc := cutoffDistance(p.Box, params.Cutoff)
	return sfForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.EpsR, rc)
}
