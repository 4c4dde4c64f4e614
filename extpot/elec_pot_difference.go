package extpot

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// Direction names the axis along which an applied field or potential
// difference acts.
type Direction int

const (
	DirX Direction = iota
	DirY
	DirZ
)

// ElectricPotentialDifference imposes a fixed potential difference
// across the box in the given direction by placing a uniform charge
// density on the corresponding face, computed so the resulting field
// produces that potential drop over the given distance. Grounded on
// original_source/simulation/src/elec-pot-difference.cpp.
type ElectricPotentialDifference struct {
	Base

	inner ConstantSurfaceChargeDensity
}

// NewElectricPotentialDifference builds the potential for a deltaV
// (volts) applied over distance (nm) in the given direction.
func NewElectricPotentialDifference(deltaV, distance, epsR float64, bcond bc.BC, direction Direction) ElectricPotentialDifference {
	plane := surfaceLocation(direction)
	e0 := units.E0
	epd := units.VToKJMolE * deltaV
	sigma := -epd * 2.0 * e0 * epsR / distance
	return ElectricPotentialDifference{
		inner: ConstantSurfaceChargeDensity{Sigma: sigma, Surface: NewFlatSurface(plane, 0), EpsR: epsR, BC: bcond},
	}
}

func surfaceLocation(direction Direction) Plane {
	switch direction {
	case DirX:
		return PlaneYZ
	case DirY:
		return PlaneZX
	default:
		return PlaneXY
	}
}

func (p ElectricPotentialDifference) Eval(part *particle.Particle) (float64, geom.Vec3) {
	return p.inner.Eval(part)
}
