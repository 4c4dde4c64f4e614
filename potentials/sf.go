package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// SF is shifted-force electrostatics: the Coulomb potential and its
// force are both shifted to vanish at the cutoff distance. Grounded on
// original_source/simulation/src/sf.cpp.
type SF struct {
	BC       bc.BC
	Box      geom.Box
	Registry *forcefield.Registry
}

func (p SF) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilySF, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	rc := cutoffDistance(p.Box, params.Cutoff)
	return sfForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.EpsR, rc)
}

// sfForceAndEnergy is shared with LJ_SF and HS_SF.
func sfForceAndEnergy(rij geom.Vec3, Rij, qi, qj, epsInsideRc, rc float64) (float64, geom.Vec3) {
	rc2 := rc * rc
	Rij2 := Rij * Rij
	t1 := qi * qj / (units.FourPiE0 * epsInsideRc)
	energy := t1 * (1.0/Rij - 1.0/rc + (Rij-rc)/rc2)

	uv := unitVector(rij, Rij)
	dElecdR := t1 * (-1.0/Rij2 + 1.0/rc2)
	return energy, geom.Scale(-dElecdR, uv)
}
