package surface

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
)

// Polyhedron owns a closed, consistent (vertices, faces, edges) triple:
// faces share edges and vertices rather than each holding private
// copies. Grounded on
// original_source/surface/src/polyhedron.cpp.
type Polyhedron struct {
	vertices []*Vertex
	faces    []Face
	edges    []Edge
}

// NewPolyhedron builds a polyhedron from a set of faces already
// referencing shared vertices, validates Euler's formula
// V - E + F == 2, deduplicates edges across faces, and seeds each
// vertex's normal from its incident faces.
func NewPolyhedron(vertices []*Vertex, faces []Face) (*Polyhedron, error) {
	p := &Polyhedron{vertices: vertices, faces: faces}
	p.resetEdges()
	v := len(p.vertices)
	e := len(p.edges)
	f := len(p.faces)
	if v-e+f != 2 {
		return nil, fmt.Errorf("surface: polyhedron fails Euler's formula: V=%d E=%d F=%d, V-E+F=%d, want 2",
			v, e, f, v-e+f)
	}
	p.resetUnitVectorsAtVertices()
	return p, nil
}

// resetEdges replaces each face's privately-constructed edges with a
// single shared, deduplicated instance per (start,end) index pair,
// matching Polyhedron::resetEdges_().
func (p *Polyhedron) resetEdges() {
	unique := make(map[[2]int]Edge)
	for _, f := range p.faces {
		for _, e := range f.Edges() {
			if _, ok := unique[e.Key()]; !ok {
				unique[e.Key()] = e
			}
		}
	}
	edges := make([]Edge, 0, len(unique))
	for _, e := range unique {
		edges = append(edges, e)
	}
	p.edges = edges
}

// resetUnitVectorsAtVertices averages each vertex's incident face
// normals into its unit normal, matching
// Polyhedron::resetUnitVectorAtVertices_().
func (p *Polyhedron) resetUnitVectorsAtVertices() {
	sums := make(map[int]geom.Vec3)
	counts := make(map[int]int)
	for _, f := range p.faces {
		n := f.Normal()
		for _, v := range f.Vertices() {
			sums[v.Index] = geom.Add(sums[v.Index], n)
			counts[v.Index]++
		}
	}
	for _, v := range p.vertices {
		if c := counts[v.Index]; c > 0 {
			v.Normal = geom.Unit(geom.Scale(1.0/float64(c), sums[v.Index]))
		}
	}
}

// Vertices returns the polyhedron's vertices.
func (p *Polyhedron) Vertices() []*Vertex { return p.vertices }

// Faces returns the polyhedron's faces.
func (p *Polyhedron) Faces() []Face { return p.faces }

// Edges returns the polyhedron's deduplicated edges.
func (p *Polyhedron) Edges() []Edge { return p.edges }

// NumberOfFaces reports the face count.
func (p *Polyhedron) NumberOfFaces() int { return len(p.faces) }

// NumberOfVertices reports the vertex count.
func (p *Polyhedron) NumberOfVertices() int { return len(p.vertices) }

// Area sums every face's area, matching Polyhedron::area().
func (p *Polyhedron) Area() float64 {
	var total float64
	for _, f := range p.faces {
		total += f.Area()
	}
	return total
}

// DoWithAll invokes fn with a mutually consistent snapshot of the
// polyhedron's vertices, faces and edges. It is the callback form of
// the consistent-snapshot idiom that particle.System.DoWithAll
// expresses by returning a Snapshot.
func (p *Polyhedron) DoWithAll(fn func(vertices []*Vertex, faces []Face, edges []Edge)) {
	fn(p.vertices, p.faces, p.edges)
}
