package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// LJ is the standard 12-6 Lennard-Jones potential. Grounded on
// original_source/simulation/src/lj.cpp.
type LJ struct {
	BC       bc.BC
	Registry *forcefield.Registry
}

func (p LJ) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyLJ, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	return ljForceAndEnergy(rij, Rij, params.C12, params.C6)
}

// LJForceAndEnergy exposes the 12-6 Lennard-Jones force/energy kernel
// for callers outside this package (extpot.Wall combines it with a
// flat-surface distance vector rather than a pair of particles).
func LJForceAndEnergy(rij geom.Vec3, Rij, C12, C6 float64) (float64, geom.Vec3) {
	return ljForceAndEnergy(rij, Rij, C12, C6)
}

// ljForceAndEnergy is shared by LJ, LJ_RF and LJ_SF.
func ljForceAndEnergy(rij geom.Vec3, Rij, C12, C6 float64) (float64, geom.Vec3) {
	Rij2 := Rij * Rij
	Rij6 := Rij2 * Rij2 * Rij2
	Rij12 := Rij6 * Rij6
	t1 := C12 / Rij12
	t2 := C6 / Rij6
	energy := t1 - t2

	uv := unitVector(rij, Rij)
	dLJdR := -6.0 * (2.0*t1 - t2) / Rij
	return energy, geom.Scale(-dLJdR, uv)
}
