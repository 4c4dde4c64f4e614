package potentials

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// HSLekner wraps Lekner with a hard-sphere exclusion core and an
// overall relative-permittivity scaling. Grounded on
// original_source/simulation/src/hs-lekner.cpp.
type HSLekner struct {
	BC     bc.BC
	Lekner Lekner
	EpsR   float64
}

func (p HSLekner) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	minimumDistance := float64(pi.Spec.Radius) + float64(pj.Spec.Radius)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	if Rij <= minimumDistance {
		return Large, geom.Vec3{Large, Large, Large}
	}
	energy := p.Lekner.forceAndEnergy(rij, float64(pi.Charge()), float64(pj.Charge()))
	return energy / p.EpsR, geom.Zero
}
