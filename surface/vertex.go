// Package surface builds triangulated surfaces: a polyhedron generator
// (dodecahedron -> 60 triangles -> recursive subdivision), mapping
// onto an arbitrary dotted surface, and a dotted-surface (NSC)
// generator. Grounded on original_source/surface/{src,include/simploce/
// surface}/*.{cpp,hpp}.
package surface

import "github.com/simploce/mesosim/geom"

// Vertex is a point where edges meet, carrying the outward unit normal
// averaged from its incident faces. Index is assigned at creation time
// and is stable for the vertex's lifetime, used to key the edge map.
// Grounded on original_source/surface/src/vertex.cpp.
type Vertex struct {
	Index    int
	Position geom.Vec3
	Normal   geom.Vec3
}

// NewVertex allocates a vertex with the given index (the caller is
// responsible for handing out increasing indices, matching the
// original's static Vertex::INDEX_ counter without reproducing it as
// a package-level global).
func NewVertex(index int, position, normal geom.Vec3) *Vertex {
	return &Vertex{Index: index, Position: position, Normal: normal}
}
