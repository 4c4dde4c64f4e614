package surface

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
)

// Spherical triangulates a sphere of the given radius with at least
// numberOfTriangles faces: dodecahedron -> 60 triangles -> recursive
// subdivision. Grounded on
// original_source/surface/src/triangulation.cpp's spherical().
func Spherical(radius float64, numberOfTriangles int) (*Polyhedron, error) {
	dodeca, err := Dodecahedron(radius)
	if err != nil {
		return nil, err
	}
	t60, err := Triangles60(dodeca, radius)
	if err != nil {
		return nil, err
	}
	if numberOfTriangles <= 60 {
		return t60, nil
	}
	return Subdivide(t60, numberOfTriangles, radius)
}

// Cubic triangulates a cube of the given side length, centered at the
// origin, into 12 triangles (2 per face). Grounded on
// original_source/surface/src/triangulation.cpp's cubic().
func Cubic(sideLength float64) (*Polyhedron, error) {
	h := sideLength / 2.0
	corners := []geom.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	vertices := make([]*Vertex, len(corners))
	for i, c := range corners {
		vertices[i] = NewVertex(i, c, geom.Zero)
	}

	quad := func(a, b, c, d int) []Face {
		return []Face{
			NewTriangle(vertices[a], vertices[b], vertices[c]),
			NewTriangle(vertices[a], vertices[c], vertices[d]),
		}
	}
	var faces []Face
	faces = append(faces, quad(0, 1, 2, 3)...) // bottom
	faces = append(faces, quad(4, 7, 6, 5)...) // top
	faces = append(faces, quad(0, 4, 5, 1)...) // front
	faces = append(faces, quad(1, 5, 6, 2)...) // right
	faces = append(faces, quad(2, 6, 7, 3)...) // back
	faces = append(faces, quad(3, 7, 4, 0)...) // left

	return NewPolyhedron(vertices, faces)
}

// MapOnto reassigns poly's vertex positions and normals to the closest
// matching dot in a dotted surface, after recentering both to the
// origin and scaling poly's vertices to the dots' maximum radius; each
// dot is consumed by at most one vertex. Grounded on
// original_source/surface/src/polyhedron-generator.cpp's mapOnto().
func MapOnto(dots []geom.Vec3, poly *Polyhedron) error {
	if len(dots) < len(poly.Vertices()) {
		return fmt.Errorf("surface: cannot map %d vertices onto %d dots", len(poly.Vertices()), len(dots))
	}

	dotsCenter := centerOf(dots)
	recenteredDots := make([]geom.Vec3, len(dots))
	maxRadius := 0.0
	for i, d := range dots {
		recenteredDots[i] = geom.Sub(d, dotsCenter)
		if r := geom.Norm(recenteredDots[i]); r > maxRadius {
			maxRadius = r
		}
	}

	vertices := poly.Vertices()
	vCenter := geom.Zero
	for _, v := range vertices {
		vCenter = geom.Add(vCenter, v.Position)
	}
	vCenter = geom.Scale(1.0/float64(len(vertices)), vCenter)

	scaled := make([]geom.Vec3, len(vertices))
	maxVRadius := 0.0
	for i, v := range vertices {
		scaled[i] = geom.Sub(v.Position, vCenter)
		if r := geom.Norm(scaled[i]); r > maxVRadius {
			maxVRadius = r
		}
	}
	if maxVRadius == 0 {
		return fmt.Errorf("surface: degenerate polyhedron, all vertices coincide at center")
	}
	scale := maxRadius / maxVRadius
	for i := range scaled {
		scaled[i] = geom.Scale(scale, scaled[i])
	}

	available := make([]bool, len(recenteredDots))
	for i := range available {
		available[i] = true
	}

	for i, v := range vertices {
		best := -1
		bestDist := 0.0
		for j, d := range recenteredDots {
			if !available[j] {
				continue
			}
			if !sameOctant(scaled[i], d) {
				continue
			}
			dist := geom.Norm(geom.Sub(scaled[i], d))
			if best == -1 || dist < bestDist {
				best, bestDist = j, dist
			}
		}
		if best == -1 {
			for j, d := range recenteredDots {
				if !available[j] {
					continue
				}
				dist := geom.Norm(geom.Sub(scaled[i], d))
				if best == -1 || dist < bestDist {
					best, bestDist = j, dist
				}
			}
		}
		v.Position = recenteredDots[best]
		available[best] = false
	}

	poly.resetUnitVectorsAtVertices()
	return nil
}

func centerOf(points []geom.Vec3) geom.Vec3 {
	c := geom.Zero
	for _, p := range points {
		c = geom.Add(c, p)
	}
	return geom.Scale(1.0/float64(len(points)), c)
}

func sameOctant(a, b geom.Vec3) bool {
	for k := 0; k < 3; k++ {
		if (a[k] >= 0) != (b[k] >= 0) {
			return false
		}
	}
	return true
}
