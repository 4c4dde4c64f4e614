package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// HP is the harmonic potential fc/2*(Rij-r0)^2, used for bonds.
// Grounded on original_source/simulation/src/hp.cpp.
type HP struct {
	BC       bc.BC
	Registry *forcefield.Registry
}

func (p HP) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyHP, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	return hpForceAndEnergy(rij, Rij, params.R0, params.K)
}

func hpForceAndEnergy(rij geom.Vec3, Rij, r0, fc float64) (float64, geom.Vec3) {
	dR := Rij - r0
	energy := 0.5 * fc * dR * dR
	uv := unitVector(rij, Rij)
	dHPdR := fc * dR
	return energy, geom.Scale(-dHPdR, uv)
}
