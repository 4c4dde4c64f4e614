package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// GaussSFSR combines overlapping Gaussian charge densities with soft
// repulsion, for mesoscopic simulations. Grounded on
// original_source/simulation/src/gauss-sf-sr.cpp.
type GaussSFSR struct {
	BC         bc.BC
	CutoffLR   float64
	CutoffSR   float64
	Mesoscopic bool
	Registry   *forcefield.Registry
}

func (p GaussSFSR) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyGaussSFSR, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)

	eG, fG := gaussSFForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.SigmaI, params.SigmaJ, p.CutoffLR, p.Mesoscopic)
	eSR, fSR := srForceAndEnergy(rij, Rij, params.A, p.CutoffSR)
	return eG + eSR, geom.Add(fG, fSR)
}
