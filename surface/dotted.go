package surface

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
)

// DottedSphere returns points approximately evenly spread over the
// sphere of the given radius centered at center: the vertices of
// Spherical(1, numberOfDots/3+1), scaled and shifted. Their count is
// 30*4^k+2 for the smallest k >= 0 with 60*4^k >= numberOfDots/3+1
// (32 points for numberOfDots up to 179), so it is not numberOfDots in
// general. The directions come from the
// dodecahedron/triangles60/subdivide vertex directions built for
// Spherical rather than the Eisenhaber-Argos "double cubic lattice"
// dot distribution in
// original_source/surface/src/nsc-new.cpp's icosaederVertices_()/
// unsp_generator_(): both are an icosahedral (here dodecahedral)
// subdivision of the unit sphere, just derived from a different
// Platonic seed and without the sorted-bucket acceleration the
// original needs for its from-scratch neighbor search, which this
// package doesn't otherwise require.
func DottedSphere(center geom.Vec3, radius float64, numberOfDots int) ([]geom.Vec3, error) {
	poly, err := Spherical(1.0, numberOfDots/3+1)
	if err != nil {
		return nil, err
	}
	vertices := poly.Vertices()
	dots := make([]geom.Vec3, len(vertices))
	for i, v := range vertices {
		dots[i] = geom.Add(center, geom.Scale(radius, v.Position))
	}
	return dots, nil
}

// CompositeDots builds a solvent-accessible dot surface for a set of
// spheres (e.g. one per particle, radii already including a probe
// radius): every sphere's dots are generated independently and then
// any dot lying within another sphere is discarded, leaving only the
// union's exposed surface. This is the brute-force, O(n^2) analogue of
// original_source/surface/src/nsc-new.cpp's accessibility test; the
// original additionally buckets atoms into a cubic lattice to avoid
// the all-pairs cost, which this package's typical surface sizes don't
// need.
func CompositeDots(centers []geom.Vec3, radii []float64, dotsPerSphere int) ([]geom.Vec3, error) {
	if len(centers) != len(radii) {
		return nil, fmt.Errorf("surface: centers and radii must have the same length")
	}
	perSphere := make([][]geom.Vec3, len(centers))
	for i := range centers {
		dots, err := DottedSphere(centers[i], radii[i], dotsPerSphere)
		if err != nil {
			return nil, err
		}
		perSphere[i] = dots
	}

	var exposed []geom.Vec3
	for i, dots := range perSphere {
		for _, d := range dots {
			buried := false
			for j, c := range centers {
				if i == j {
					continue
				}
				if geom.Norm2(geom.Sub(d, c)) < radii[j]*radii[j] {
					buried = true
					break
				}
			}
			if !buried {
				exposed = append(exposed, d)
			}
		}
	}
	return exposed, nil
}
