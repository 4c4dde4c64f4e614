package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// SR is a soft, purely repulsive potential that vanishes at its own
// cutoff distance, used between non-bonded beads in mesoscopic (DPD)
// simulations. Grounded on
// original_source/simulation/src/soft-repulsion.cpp.
type SR struct {
	BC       bc.BC
	Cutoff   float64
	Registry *forcefield.Registry
}

func (p SR) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilySR, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	return srForceAndEnergy(rij, Rij, params.A, p.Cutoff)
}

// srForceAndEnergy is shared with HPSR.
func srForceAndEnergy(rij geom.Vec3, Rij, Aij, cutoffSR float64) (float64, geom.Vec3) {
	if Rij >= cutoffSR {
		return 0.0, geom.Zero
	}
	Rij2 := Rij * Rij
	uv := unitVector(rij, Rij)
	energy := -Aij*(Rij-Rij2/(2.0*cutoffSR)) + 0.5*Aij*cutoffSR
	scale := Aij * (1.0 - Rij/cutoffSR)
	return energy, geom.Scale(scale, uv)
}
