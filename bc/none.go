package bc

import (
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// None is the identity boundary condition: no periodicity, no
// reflection. Grounded on original_source's no-bc.hpp.
type None struct{}

func (None) Apply(r1, r2 geom.Vec3) geom.Vec3 { return geom.Sub(r1, r2) }

func (None) PlaceInside(r geom.Vec3) geom.Vec3 {
	checkFinite("none", r)
	return r
}

func (None) ApplyVelocity(v, r geom.Vec3) geom.Vec3 { return v }

func (None) ApplyToVelocities(g *particle.Group) {}

func (None) ID() string { return "none" }
