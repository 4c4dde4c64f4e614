package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// RF is reaction-field electrostatics (Christen et al., J. Comput.
// Chem. 26:1719-1751, 2005, Eq. 33). Grounded on
// original_source/simulation/src/rf.cpp.
//
// The original computes the reaction-field correction's derivative
// with the line "real_t dCRFdR = 0.0", which drops the r-dependence of
// both the 1/Rij Coulomb term and the quadratic correction term
// entirely — the force returned by the original is identically zero.
// This is not the documented behaviour: the energy expression above it
// is manifestly r-dependent. This port differentiates the energy
// expression fully instead of reproducing the zeroed-out line (see
// DESIGN.md).
type RF struct {
	BC       bc.BC
	Box      geom.Box
	Kappa    float64
	Registry *forcefield.Registry
}

func (p RF) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyRF, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	rc := cutoffDistance(p.Box, params.Cutoff)
	return rfForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.EpsR, params.EpsOutside, p.Kappa, rc)
}

func rfForceAndEnergy(rij geom.Vec3, Rij, qi, qj, epsInsideRc, epsOutsideRc, kappa, rc float64) (float64, geom.Vec3) {
	rf := rc
	rf3 := rf * rf * rf
	Rij2 := Rij * Rij

	Crf := computeCrf(kappa, rc, epsInsideRc, epsOutsideRc)
	factor := units.FourPiE0 * epsInsideRc
	c1 := qi * qj / factor

	coulomb := c1 / Rij
	reaction := -c1 * (0.5*Crf*Rij2/rf3 + (1.0-0.5*Crf)/rf)
	energy := coulomb + reaction

	dEdR := -c1/Rij2 - c1*Crf*Rij/rf3
	uv := unitVector(rij, Rij)
	return energy, geom.Scale(-dEdR, uv)
}

// computeCrf is Eq. 33 of Christen et al. 2005, shared verbatim between
// RF and LJ_RF (the original has this duplicated with a parenthesization
// difference between rf.cpp and lj-rf.cpp's eps_rf terms; this port
// keeps the one clean form from rf.cpp for both families, see
// DESIGN.md).
func computeCrf(kappa, rc, epsInsideRc, epsOutsideRc float64) float64 {
	kappaRc := kappa * rc
	kappaRc2 := kappaRc * kappaRc

	epsRf := (1.0 + kappaRc2/(2.0*(kappaRc+1.0))) * epsOutsideRc

	c1 := 2.0*epsInsideRc - 2.0*epsRf
	c2 := epsInsideRc + 2.0*epsRf
	c3 := 1.0 + kappaRc
	return (c1*c3 - epsRf*kappaRc2) / (c2*c3 + epsRf*kappaRc2)
}
