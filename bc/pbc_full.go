package bc

import (
	"math"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// PBCFull applies the minimum-image convention in all three axes.
// Grounded on original_source/simulation/src/pbc.cpp (pbc.hpp).
type PBCFull struct {
	Box geom.Box
}

func (p PBCFull) Apply(r1, r2 geom.Vec3) geom.Vec3 {
	rij := geom.Sub(r1, r2)
	for k := 0; k < 3; k++ {
		Lk := p.Box.At(k)
		rij[k] -= geom.Nint(rij[k]/Lk) * Lk
	}
	return rij
}

func (p PBCFull) PlaceInside(r geom.Vec3) geom.Vec3 {
	out := r
	for k := 0; k < 3; k++ {
		Lk := p.Box.At(k)
		out[k] = math.Mod(out[k], Lk)
		if out[k] < 0 {
			out[k] += Lk
		}
	}
	checkFinite(p.ID(), out)
	return out
}

func (p PBCFull) ApplyVelocity(v, r geom.Vec3) geom.Vec3 { return v }

func (p PBCFull) ApplyToVelocities(g *particle.Group) {}

func (PBCFull) ID() string { return "pbc-full" }
