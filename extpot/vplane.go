package extpot

import (
	"math"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// VirtualPlane is one infinite plane of uniform surface charge density,
// parallel to the xy-plane at a fixed z, used to represent the charge
// distribution crossing a 2D-periodic slab at that height. Its energy
// kernel is the finite-box correction to an infinite charged plane's
// potential (no closed form exists for a finite Lx, Ly slab, so it is
// evaluated by quadrature). Adapted from a 1996 method; grounded on
// original_source/simulation/src/vplane.cpp.
type VirtualPlane struct {
	Box      geom.Box
	BC       bc.BC
	Location float64
	EpsR     float64

	sigma float64
}

// NewVirtualPlane builds a plane at the given z location with zero
// initial surface charge density; VirtualPlanes assigns it through
// reset after every commit.
func NewVirtualPlane(box geom.Box, bcond bc.BC, location, epsR float64) VirtualPlane {
	return VirtualPlane{Box: box, BC: bcond, Location: location, EpsR: epsR}
}

func (p VirtualPlane) SurfaceChargeDensity() float64 { return p.sigma }

func (p *VirtualPlane) reset(sigma float64) { p.sigma = sigma }

func (p VirtualPlane) Eval(part *particle.Particle) (float64, geom.Vec3) {
	Q := float64(part.Charge())
	r := p.BC.PlaceInside(part.Position)
	return vplaneInteraction(p.Location, p.sigma, p.Box.Lx, p.EpsR, r, Q), geom.Zero
}

// vplaneInteraction is the energy of charge Q at position r with the
// plane at planeLocation, carrying surface charge density sigma, over
// a box of x-length Lx. No force: the original never derived one.
func vplaneInteraction(planeLocation, sigma, Lx, epsR float64, r geom.Vec3, Q float64) float64 {
	pi := units.Pi
	e0 := units.E0
	piEpsRE0 := pi * epsR * e0
	constantAt0 := Lx * math.Log(math.Tan(3.0*pi/8.0)) / piEpsRE0
	twoOverPiEpsRE0 := 2.0 / piEpsRE0
	quarterLx2 := Lx * Lx / 4.0

	R := math.Abs(planeLocation - r[2])
	R2 := R * R
	integrand := func(x float64) float64 {
		cosX := math.Cos(x)
		cos2X := cosX * cosX
		return math.Sqrt((quarterLx2 + R2*cos2X) / cos2X)
	}
	integral := integrate(integrand, 0, pi/4.0)

	return -Q * sigma * (twoOverPiEpsRE0*integral - constantAt0)
}
