package extpot

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// UniformSurfaceChargeDensity is the field of a uniformly charged flat
// surface, with a Stern-layer exclusion width beyond which a particle
// (plus its radius) cannot approach. Grounded on
// original_source/simulation/src/uniform-surface-charge-density.cpp.
type UniformSurfaceChargeDensity struct {
	Base

	Sigma      float64 // surface charge density, e/nm^2
	Surface    FlatSurface
	EpsR       float64
	BC         bc.BC
	Delta      float64 // Stern-layer width
	Mesoscopic bool
}

func (p UniformSurfaceChargeDensity) Eval(part *particle.Particle) (float64, geom.Vec3) {
	r := p.BC.PlaceInside(part.Position)
	radius := float64(part.Spec.Radius)
	Q := float64(part.Charge())
	return p.forceAndEnergy(r, radius, Q)
}

func (p UniformSurfaceChargeDensity) forceAndEnergy(r geom.Vec3, radius, Q float64) (float64, geom.Vec3) {
	R, _ := p.Surface.DistanceTo(r)
	if R <= p.Delta+radius {
		return Large, geom.Zero
	}
	E0 := units.E0
	if p.Mesoscopic {
		E0 = 1.0
	}
	energy := -p.Sigma * R * Q / (2.0 * E0 * p.EpsR)
	dUrdR := -p.Sigma / (2.0 * E0 * p.EpsR)
	uv := p.Surface.UnitVectorPerpendicularTo()
	return energy, geom.Scale(-dUrdR*Q, uv)
}

// Large is the hard-exclusion energy returned when a particle crosses
// into the Stern layer, matching original_source's conf::LARGE.
const Large = 1.0e30
