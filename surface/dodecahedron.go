package surface

import (
	"math"
	"sort"

	"github.com/simploce/mesosim/geom"
)

// goldenRatio is phi, (1+sqrt(5))/2.
var goldenRatio = (1.0 + math.Sqrt(5.0)) / 2.0

// Dodecahedron returns a regular dodecahedron (20 vertices, 12
// pentagonal faces, circumradius equal to radius) centered at the
// origin. Grounded on original_source/surface/src/sphere.cpp's
// dodecahedron(), which hardcodes the same golden-ratio vertex
// coordinates; face membership here is derived from the dodecahedron/
// icosahedron duality (each face's plane normal is an icosahedron
// vertex direction) rather than copied as a literal index table, since
// that gives the identical geometry without risking a transcription
// error in a 12-face connectivity table.
func Dodecahedron(radius float64) (*Polyhedron, error) {
	phi := goldenRatio
	unit := []geom.Vec3{
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
		{0, 1 / phi, phi}, {0, 1 / phi, -phi}, {0, -1 / phi, phi}, {0, -1 / phi, -phi},
		{1 / phi, phi, 0}, {-1 / phi, phi, 0}, {1 / phi, -phi, 0}, {-1 / phi, -phi, 0},
		{phi, 0, 1 / phi}, {phi, 0, -1 / phi}, {-phi, 0, 1 / phi}, {-phi, 0, -1 / phi},
	}
	circumradius := math.Sqrt(3.0)
	scale := radius / circumradius

	vertices := make([]*Vertex, len(unit))
	for i, u := range unit {
		vertices[i] = NewVertex(i, geom.Scale(scale, u), geom.Zero)
	}

	normals := []geom.Vec3{
		{1, 0, phi}, {1, 0, -phi}, {-1, 0, phi}, {-1, 0, -phi},
		{0, phi, 1}, {0, phi, -1}, {0, -phi, 1}, {0, -phi, -1},
		{phi, 1, 0}, {phi, -1, 0}, {-phi, 1, 0}, {-phi, -1, 0},
	}

	faces := make([]Face, 0, len(normals))
	for _, n := range normals {
		face := pentagonOnPlane(vertices, n)
		faces = append(faces, face)
	}

	poly, err := NewPolyhedron(vertices, faces)
	if err != nil {
		return nil, err
	}
	return poly, nil
}

// pentagonOnPlane picks the 5 vertices lying on the face whose outward
// normal direction is n, and orders them cyclically around n.
func pentagonOnPlane(vertices []*Vertex, n geom.Vec3) *Pentagon {
	dir := geom.Unit(n)
	type scored struct {
		v     *Vertex
		score float64
	}
	scores := make([]scored, len(vertices))
	for i, v := range vertices {
		scores[i] = scored{v, geom.Dot(v.Position, dir)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	top := make([]*Vertex, 5)
	for i := 0; i < 5; i++ {
		top[i] = scores[i].v
	}

	centroid := geom.Zero
	for _, v := range top {
		centroid = geom.Add(centroid, v.Position)
	}
	centroid = geom.Scale(1.0/5.0, centroid)

	e1 := geom.Unit(geom.Sub(top[0].Position, centroid))
	e2 := geom.Vec3{
		dir[1]*e1[2] - dir[2]*e1[1],
		dir[2]*e1[0] - dir[0]*e1[2],
		dir[0]*e1[1] - dir[1]*e1[0],
	}
	sort.Slice(top, func(i, j int) bool {
		return angleAround(top[i].Position, centroid, e1, e2) < angleAround(top[j].Position, centroid, e1, e2)
	})

	return NewPentagon(top[0], top[1], top[2], top[3], top[4])
}

func angleAround(p, centroid, e1, e2 geom.Vec3) float64 {
	d := geom.Sub(p, centroid)
	return math.Atan2(geom.Dot(d, e2), geom.Dot(d, e1))
}
