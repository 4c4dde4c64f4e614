package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// SC is screened Coulomb electrostatics, no cutoff-shift. Grounded on
// original_source/simulation/src/sc.cpp.
type SC struct {
	BC       bc.BC
	Registry *forcefield.Registry
}

func (p SC) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilySC, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	return scForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.EpsR)
}

// scForceAndEnergy is shared with HS_SC.
func scForceAndEnergy(rij geom.Vec3, Rij, qi, qj, epsInsideRc float64) (float64, geom.Vec3) {
	c1 := 1.0 / (units.FourPiE0 * epsInsideRc)
	energy := c1 * qi * qj / Rij
	dSCdR := -c1 * qi * qj / (Rij * Rij)
	uv := unitVector(rij, Rij)
	return energy, geom.Scale(-dSCdR, uv)
}
