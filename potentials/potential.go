// Package potentials implements the pair-potential family: the
// short-ranged, shifted-force, screened, harmonic and reaction-field
// interactions evaluated for each pair in a pairlist.List.
//
// Grounded file-by-file on original_source/simulation/src/{lj,sf,sc,
// rf,lj-rf,lj-sf,hs-sf,hs-sc,hs-lekner,hp,halve-attractive-hp,
// halve-attractive-qp,soft-repulsion,hp-sr,gauss-sf,gauss-sf-sr,
// solid-sphere-dsf,lekner}.cpp.
package potentials

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// Large is the energy/force magnitude reported for a hard-sphere
// overlap, matching original_source's conf::LARGE.
const Large = 1.0e30

// eps is the minimum separation below which a pair is treated as
// coincident; below it the direction is undefined and a random unit
// vector is substituted, matching original_source's util::randomUnit()
// fallback (soft-repulsion.cpp, halve-attractive-hp.cpp, gauss-sf.cpp).
const eps = 1.1754944e-38

// Pair is a pairwise potential: given two particles it returns the
// interaction energy and the force acting on the first particle. The
// force on the second particle is the negation, by Newton's third law.
type Pair interface {
	Eval(pi, pj *particle.Particle) (energy float64, forceOnI geom.Vec3)
}

// unitVector returns rij/Rij, or a random direction if Rij is
// vanishingly small.
func unitVector(rij geom.Vec3, Rij float64) geom.Vec3 {
	if Rij > eps {
		return geom.Scale(1.0/Rij, rij)
	}
	return randomUnit()
}

// randomUnit draws a direction uniformly on the unit sphere using the
// seeded generator, so the zero-distance fallback is reproducible
// (spec.md §9).
func randomUnit() geom.Vec3 {
	costheta := rnd.Float64(-1.0, 1.0)
	sintheta := math.Sqrt(1.0 - costheta*costheta)
	phi := rnd.Float64(0.0, 2.0*math.Pi)
	return geom.Vec3{sintheta * math.Cos(phi), sintheta * math.Sin(phi), costheta}
}

// cutoffDistance caps a configured cutoff to half the smallest box
// edge, matching original_source/simulation/src/s-properties.cpp's
// cutoffDistance().
func cutoffDistance(box geom.Box, configured float64) float64 {
	rc := 0.5 * math.Min(box.Lx, math.Min(box.Ly, box.Lz))
	if configured > 0 && configured < rc {
		return configured
	}
	return rc
}

func lookup(r *forcefield.Registry, fam forcefield.Family, pi, pj *particle.Particle) forcefield.Params {
	p, ok := r.Lookup(fam, pi, pj)
	if !ok {
		panic("potentials: no " + string(fam) + " parameters registered for pair " + pi.Spec.Name + "/" + pj.Spec.Name)
	}
	return p
}
