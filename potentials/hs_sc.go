package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// HSSC is screened-Coulomb electrostatics with a hard-sphere exclusion
// core. Grounded on original_source/simulation/src/hs-sc.cpp.
type HSSC struct {
	BC       bc.BC
	Registry *forcefield.Registry
}

func (p HSSC) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	minimumDistance := float64(pi.Spec.Radius) + float64(pj.Spec.Radius)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	if Rij <= minimumDistance {
		return Large, geom.Vec3{Large, Large, Large}
	}
	params := lookup(p.Registry, forcefield.FamilyHSSC, pi, pj)
	return scForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.EpsR)
}
