package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// LJRF combines the Lennard-Jones potential with a reaction-field
// electrostatic correction. Grounded on
// original_source/simulation/src/lj-rf.cpp; the original's force
// only carries the LJ part (dLJdR), never adding the reaction-field
// correction's own r-derivative even though the energy includes it.
// This port adds the missing term, consistent with RF (see
// DESIGN.md).
type LJRF struct {
	BC       bc.BC
	Box      geom.Box
	Kappa    float64
	Registry *forcefield.Registry
}

func (p LJRF) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyLJRF, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	rc := cutoffDistance(p.Box, params.Cutoff)

	rf3 := rc * rc * rc
	Rij2 := Rij * Rij
	Rij6 := Rij2 * Rij2 * Rij2
	Rij12 := Rij6 * Rij6
	t1 := params.C12 / Rij12
	t2 := params.C6 / Rij6

	Crf := computeCrf(p.Kappa, rc, params.EpsR, params.EpsOutside)
	c1 := float64(pi.Charge()) * float64(pj.Charge()) / (units.FourPiE0 * params.EpsR)
	c2 := -c1 * (0.5*Crf*Rij2/rf3 + (1.0-0.5*Crf)/rc)
	energy := t1 - t2 + c1/Rij + c2

	dLJdR := -6.0 * (2.0*t1 - t2) / Rij
	dRFdR := -c1/Rij2 - c1*Crf*Rij/rf3
	uv := unitVector(rij, Rij)
	return energy, geom.Scale(-(dLJdR + dRFdR), uv)
}
