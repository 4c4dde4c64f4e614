package surface

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
)

// Edge is a line segment joining two vertices. Its identity is the
// ordered pair of vertex indices (min,max), used both for map keying
// and for the original's string-form edge identifier (reserved for
// I/O; see spec.md §9's "Edge identity" note). Grounded on
// original_source/surface/src/edge.cpp.
type Edge struct {
	Start, End *Vertex
}

// NewEdge returns an edge between start and end; panics if they
// coincide (matching the original's domain_error on identical or
// near-identical endpoints).
func NewEdge(start, end *Vertex) Edge {
	if start == end || start.Index == end.Index {
		panic("surface: edge start and end vertex must not be identical")
	}
	if geom.Norm2(geom.Sub(start.Position, end.Position)) <= epsilon {
		panic("surface: edge start and end vertex must not be identical")
	}
	return Edge{Start: start, End: end}
}

// Key returns the edge's deduplication identity: the ordered pair of
// vertex indices (min,max).
func (e Edge) Key() [2]int {
	a, b := e.Start.Index, e.End.Index
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// String is the edge's I/O form, "min-max".
func (e Edge) String() string {
	k := e.Key()
	return fmt.Sprintf("%d-%d", k[0], k[1])
}

// Length returns the Euclidean distance between the edge's endpoints.
func (e Edge) Length() float64 {
	return geom.Norm(geom.Sub(e.Start.Position, e.End.Position))
}

const epsilon = 2.220446049250313e-16
