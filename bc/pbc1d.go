package bc

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// PBC1DBounceBack applies periodicity along a single configured axis;
// velocity components perpendicular to that axis are negated when the
// particle has left the box in any non-periodic axis.
//
// Grounded on original_source/simulation/src/pbc-1d-bb.cpp.
type PBC1DBounceBack struct {
	Box       geom.Box
	Direction Direction
}

func (p PBC1DBounceBack) Apply(r1, r2 geom.Vec3) geom.Vec3 {
	rij := geom.Sub(r1, r2)
	k := int(p.Direction)
	Lk := p.Box.At(k)
	dr := r1[k] - r2[k]
	n := geom.Nint(dr / Lk)
	rij[k] = dr - n*Lk
	return rij
}

func (p PBC1DBounceBack) PlaceInside(r geom.Vec3) geom.Vec3 {
	out := foldIntoBox(p.Box, r)
	checkFinite(p.ID(), out)
	return out
}

func (p PBC1DBounceBack) ApplyVelocity(v, r geom.Vec3) geom.Vec3 {
	ks := normalComponents(p.Direction)
	crossed := false
	for _, k := range ks {
		if crossedAxis(r[k], p.Box.At(k)) {
			crossed = true
		}
	}
	if crossed {
		out := v
		for _, k := range ks {
			out[k] = -out[k]
		}
		return out
	}
	return v
}

func (p PBC1DBounceBack) ApplyToVelocities(g *particle.Group) {
	for _, part := range g.Particles {
		part.Velocity = p.ApplyVelocity(part.Velocity, part.Position)
	}
}

func (PBC1DBounceBack) ID() string { return "pbc-1d-bb" }

// PBC1DSpecular is like PBC1DBounceBack, but reflection is applied
// group-consistently: ApplyToVelocities negates the same sign pattern
// on every particle in the group atomically, so no group straddles a
// reflection asymmetrically.
//
// Grounded on original_source/simulation/src/pbc-1d-sr.cpp.
type PBC1DSpecular struct {
	Box       geom.Box
	Direction Direction
}

func (p PBC1DSpecular) Apply(r1, r2 geom.Vec3) geom.Vec3 {
	return PBC1DBounceBack(p).Apply(r1, r2)
}

func (p PBC1DSpecular) PlaceInside(r geom.Vec3) geom.Vec3 {
	return PBC1DBounceBack(p).PlaceInside(r)
}

func (p PBC1DSpecular) ApplyVelocity(v, r geom.Vec3) geom.Vec3 {
	ks := normalComponents(p.Direction)
	out := v
	for _, k := range ks {
		if crossedAxis(r[k], p.Box.At(k)) {
			out[k] = -out[k]
		}
	}
	return out
}

func groupCrossed(box geom.Box, d Direction, r geom.Vec3) bool {
	for _, k := range normalComponents(d) {
		if crossedAxis(r[k], box.At(k)) {
			return true
		}
	}
	return false
}

func (p PBC1DSpecular) ApplyToVelocities(g *particle.Group) {
	r := g.Position()
	if !groupCrossed(p.Box, p.Direction, r) {
		return
	}
	ks := normalComponents(p.Direction)
	factor := [3]float64{1, 1, 1}
	for _, k := range ks {
		if crossedAxis(r[k], p.Box.At(k)) {
			factor[k] = -1
		}
	}
	for _, part := range g.Particles {
		for _, k := range ks {
			part.Velocity[k] *= factor[k]
		}
	}
}

func (PBC1DSpecular) ID() string { return "pbc-1d-sr" }

// PBC2D applies periodicity in two axes; the third coordinate, if out
// of range, is randomly redrawn uniformly inside [0,Lk). Grounded on
// original_source/simulation/src/pbc-2d.cpp.
type PBC2D struct {
	Box      geom.Box
	D1, D2   Direction
	Reinsert Direction
}

// NewPBC2D returns a PBC2D that reinjects the non-periodic axis using a
// seeded PRNG for reproducibility (spec.md §9).
func NewPBC2D(box geom.Box, d1, d2, reinsert Direction, seed int64) *PBC2D {
	rnd.Init(seed)
	return &PBC2D{Box: box, D1: d1, D2: d2, Reinsert: reinsert}
}

func (p *PBC2D) Apply(r1, r2 geom.Vec3) geom.Vec3 {
	rij := geom.Sub(r1, r2)
	for _, k := range [2]int{int(p.D1), int(p.D2)} {
		Lk := p.Box.At(k)
		dr := r1[k] - r2[k]
		n := geom.Nint(dr / Lk)
		rij[k] = dr - n*Lk
	}
	return rij
}

func (p *PBC2D) PlaceInside(r geom.Vec3) geom.Vec3 {
	out := r
	for _, k := range [2]int{int(p.D1), int(p.D2)} {
		Lk := p.Box.At(k)
		n := math.Floor(out[k] / Lk)
		out[k] -= n * Lk
	}
	checkFinite(p.ID(), out)
	return out
}

func (p *PBC2D) ApplyVelocity(v, r geom.Vec3) geom.Vec3 { return v }

func (p *PBC2D) ApplyToVelocities(g *particle.Group) {}

// ApplyReinsert randomly redraws the non-periodic coordinate if it has
// left the box, per spec.md's PBC-2D stochastic reinjection.
func (p *PBC2D) ApplyReinsert(r geom.Vec3) geom.Vec3 {
	k := int(p.Reinsert)
	Lk := p.Box.At(k)
	out := r
	if crossedAxis(r[k], Lk) {
		out[k] = rnd.Float64(0, Lk)
	}
	return out
}

func (*PBC2D) ID() string { return "pbc-2d" }
