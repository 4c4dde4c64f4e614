// Package extpot implements external (non-pairwise) potentials: flat
// charged surfaces, an applied voltage/electric field, a repulsive
// wall, a uniform pressure-gradient force, and the virtual-plane
// boundary-charge accumulator for 2D-periodic slab geometries.
//
// Grounded on original_source/simulation/src/{uniform-surface-charge-
// density,const-surface-charge-density,elec-pot-difference,voltage,
// wall,pressure-gradient,vplane,vplanes}.cpp and
// util/src/flat-surface.cpp.
package extpot

import (
	"math"

	"github.com/simploce/mesosim/geom"
)

// Plane names one of the three axis-aligned planes through the origin.
type Plane int

const (
	PlaneXY Plane = iota // normal +z
	PlaneYZ              // normal +x
	PlaneZX              // normal +y
)

// FlatSurface is an infinite plane parallel to one of the three
// coordinate planes, offset along its normal axis.
type FlatSurface struct {
	plane           Plane
	distanceToPlane float64
	unitVector      geom.Vec3
	coordinate      int
}

// NewFlatSurface builds a FlatSurface for the given plane at the given
// signed offset from the origin along its normal axis.
func NewFlatSurface(plane Plane, distanceToPlane float64) FlatSurface {
	fs := FlatSurface{plane: plane, distanceToPlane: distanceToPlane}
	switch plane {
	case PlaneXY:
		fs.unitVector = geom.Vec3{0, 0, 1}
		fs.coordinate = 2
	case PlaneYZ:
		fs.unitVector = geom.Vec3{1, 0, 0}
		fs.coordinate = 0
	default:
		fs.unitVector = geom.Vec3{0, 1, 0}
		fs.coordinate = 1
	}
	return fs
}

// DistanceTo returns the (always non-negative) distance from r to the
// surface, and the displacement vector from the surface to r.
func (fs FlatSurface) DistanceTo(r geom.Vec3) (float64, geom.Vec3) {
	dr := r[fs.coordinate] - fs.distanceToPlane
	R := math.Abs(dr)
	if dr >= 0 {
		return R, geom.Scale(R, fs.unitVector)
	}
	return R, geom.Scale(-R, fs.unitVector)
}

// UnitVectorPerpendicularTo returns the surface normal.
func (fs FlatSurface) UnitVectorPerpendicularTo() geom.Vec3 {
	return fs.unitVector
}
