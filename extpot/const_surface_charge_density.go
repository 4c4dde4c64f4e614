package extpot

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// ConstantSurfaceChargeDensity is like UniformSurfaceChargeDensity but
// without a Stern-layer exclusion check; used as the building block for
// ElectricPotentialDifference. Grounded on
// original_source/simulation/src/const-surface-charge-density.cpp.
type ConstantSurfaceChargeDensity struct {
	Base

	Sigma   float64
	Surface FlatSurface
	EpsR    float64
	BC      bc.BC
}

func (p ConstantSurfaceChargeDensity) Eval(part *particle.Particle) (float64, geom.Vec3) {
	return constSurfaceForceAndEnergy(p.Sigma, p.Surface, p.EpsR, part.Position, float64(part.Charge()))
}

// constSurfaceForceAndEnergy is shared with ElectricPotentialDifference.
func constSurfaceForceAndEnergy(sigma float64, surface FlatSurface, epsR float64, r geom.Vec3, q float64) (float64, geom.Vec3) {
	R, _ := surface.DistanceTo(r)
	energy := -sigma * R * q / (2.0 * units.E0 * epsR)
	dUrdR := -sigma / (2.0 * units.E0 * epsR)
	uv := surface.UnitVectorPerpendicularTo()
	return energy, geom.Scale(-dUrdR*q, uv)
}
