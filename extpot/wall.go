package extpot

import (
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/potentials"
)

// Wall is a charged, Lennard-Jones-repulsive flat surface: particles
// feel both the uniform surface charge's field and a 12-6 LJ
// interaction with the surface itself. Grounded on
// original_source/simulation/src/wall.cpp.
type Wall struct {
	Base

	C12, C6 float64
	BC      bc.BC
	Surface FlatSurface
	Sigma   float64

	charged UniformSurfaceChargeDensity
}

// NewWall builds a Wall; Sigma is the surface's charge density.
func NewWall(c12, c6 float64, bcond bc.BC, surface FlatSurface, sigma float64) Wall {
	return Wall{
		C12: c12, C6: c6, BC: bcond, Surface: surface, Sigma: sigma,
		charged: UniformSurfaceChargeDensity{
			Sigma: sigma, Surface: surface, EpsR: 1.0, BC: bcond, Delta: 0.0, Mesoscopic: false,
		},
	}
}

func (p Wall) Eval(part *particle.Particle) (float64, geom.Vec3) {
	e1, f1 := p.charged.Eval(part)

	r := p.BC.PlaceInside(part.Position)
	Rij, rij := p.Surface.DistanceTo(r)
	e2, f2 := potentials.LJForceAndEnergy(rij, Rij, p.C12, p.C6)

	return e1 + e2, geom.Add(f1, f2)
}
