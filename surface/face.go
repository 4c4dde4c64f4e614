package surface

import (
	"fmt"
	"math"

	"github.com/simploce/mesosim/geom"
)

// Face is a polygonal surface element: a Triangle or a Pentagon.
// Grounded on original_source/surface/src/face.cpp.
type Face interface {
	Vertices() []*Vertex
	Edges() []Edge
	Area() float64
	Normal() geom.Vec3
}

// outwardNormal returns the unit normal of the plane through the given
// vertices (via the first three, Newell-style), oriented to point
// away from the origin. Every polyhedron this package builds is
// centered at the origin, so "away from the origin" is "outward" —
// the original never states this explicitly (Triangle::normal/
// Pentagon::normal are absent from the surviving source), but it is
// the only orientation consistent with resetUnitVectorAtVertices_'s
// use of face normals to seed per-vertex normals that must point away
// from the solid.
func outwardNormal(vertices []*Vertex) geom.Vec3 {
	v0, v1, v2 := vertices[0].Position, vertices[1].Position, vertices[2].Position
	e1 := geom.Sub(v1, v0)
	e2 := geom.Sub(v2, v0)
	n := geom.Vec3{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	centroid := geom.Zero
	for _, v := range vertices {
		centroid = geom.Add(centroid, v.Position)
	}
	centroid = geom.Scale(1.0/float64(len(vertices)), centroid)
	if geom.Dot(n, centroid) < 0 {
		n = geom.Scale(-1, n)
	}
	return geom.Unit(n)
}

// Triangle is a 3-vertex, 3-edge face. Grounded on
// original_source/surface/src/triangle.cpp.
type Triangle struct {
	vertices [3]*Vertex
	edges    [3]Edge
}

// NewTriangle builds a triangle from three vertices, constructing new
// edges between consecutive vertices (v1-v2, v2-v3, v3-v1).
func NewTriangle(v1, v2, v3 *Vertex) *Triangle {
	t := &Triangle{
		vertices: [3]*Vertex{v1, v2, v3},
		edges:    [3]Edge{NewEdge(v1, v2), NewEdge(v2, v3), NewEdge(v3, v1)},
	}
	t.validate()
	return t
}

func (t *Triangle) Vertices() []*Vertex { return t.vertices[:] }
func (t *Triangle) Edges() []Edge       { return t.edges[:] }

// Area uses Heron's formula from the three edge lengths, matching
// Triangle::area().
func (t *Triangle) Area() float64 {
	a := t.edges[0].Length()
	b := t.edges[1].Length()
	c := t.edges[2].Length()
	s := 0.5 * (a + b + c)
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

func (t *Triangle) Normal() geom.Vec3 {
	return outwardNormal(t.vertices[:])
}

func (t *Triangle) validate() {
	v := t.vertices
	if v[0].Index == v[1].Index || v[1].Index == v[2].Index || v[2].Index == v[0].Index {
		panic("surface: triangle has 2 or 3 identical vertices")
	}
}

// Pentagon is a 5-vertex, 5-edge face, assumed flat, regular and
// convex for its area formula. Grounded on
// original_source/surface/src/pentagon.cpp.
type Pentagon struct {
	vertices [5]*Vertex
	edges    [5]Edge
}

// NewPentagon builds a pentagon from five vertices in order,
// constructing new edges v1-v2, v2-v3, v3-v4, v4-v5, v5-v1.
func NewPentagon(v1, v2, v3, v4, v5 *Vertex) *Pentagon {
	p := &Pentagon{
		vertices: [5]*Vertex{v1, v2, v3, v4, v5},
		edges: [5]Edge{
			NewEdge(v1, v2), NewEdge(v2, v3), NewEdge(v3, v4), NewEdge(v4, v5), NewEdge(v5, v1),
		},
	}
	p.validate()
	return p
}

func (p *Pentagon) Vertices() []*Vertex { return p.vertices[:] }
func (p *Pentagon) Edges() []Edge       { return p.edges[:] }

// Area assumes a flat, regular, convex pentagon with the average edge
// length as its side, matching Pentagon::area().
func (p *Pentagon) Area() float64 {
	var total float64
	for _, e := range p.edges {
		total += e.Length()
	}
	average := total / float64(len(p.edges))
	return 5.0 * average * average * math.Tan(3.0*math.Pi/10.0) / 4.0
}

func (p *Pentagon) Normal() geom.Vec3 {
	return outwardNormal(p.vertices[:])
}

func (p *Pentagon) validate() {
	v := p.vertices
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 5; j++ {
			if v[i].Index == v[j].Index {
				panic(fmt.Sprintf("surface: pentagon has 2 or more identical vertices (at %d,%d)", i, j))
			}
		}
	}
}
