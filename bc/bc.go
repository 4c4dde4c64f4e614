// Package bc implements the boundary-condition family: minimum-image
// pair displacement, position reinjection and velocity reflection.
//
// Grounded on original_source/simulation/include/simploce/simulation/
// bc.hpp and its five concrete variants (no-bc, pbc, pbc-1d-bb,
// pbc-1d-sr, pbc-2d).
package bc

import (
	"fmt"
	"math"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// BC is a boundary condition. Implementations must be safe for
// concurrent read-only use by pair-list workers (spec.md §5).
type BC interface {
	// Apply returns the minimum-image displacement r1-r2.
	Apply(r1, r2 geom.Vec3) geom.Vec3

	// PlaceInside reinjects a drifted position back into the box.
	// Panics if a folded coordinate is still out of range (NaN or
	// overflow), per spec.md §4.1 — a fatal condition for the step.
	PlaceInside(r geom.Vec3) geom.Vec3

	// ApplyVelocity reflects a velocity when the particle at position
	// r has crossed a non-periodic boundary.
	ApplyVelocity(v, r geom.Vec3) geom.Vec3

	// ApplyToVelocities applies a group-consistent reflection so no
	// group straddles a reflection asymmetrically.
	ApplyToVelocities(g *particle.Group)

	// ID returns an identifying name, for diagnostics.
	ID() string
}

// foldIntoBox folds every coordinate of r into [0, L_k) for each axis.
func foldIntoBox(box geom.Box, r geom.Vec3) geom.Vec3 {
	out := r
	for k := 0; k < 3; k++ {
		Lk := box.At(k)
		out[k] = math.Mod(out[k], Lk)
		if out[k] < 0 {
			out[k] += Lk
		}
	}
	return out
}

func checkFinite(id string, r geom.Vec3) {
	for k := 0; k < 3; k++ {
		if r[k] != r[k] || r[k] > 1e300 || r[k] < -1e300 {
			panic(fmt.Sprintf("bc(%s): placeInside produced a non-finite coordinate %v", id, r))
		}
	}
}
