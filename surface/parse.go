package surface

import (
	"fmt"
	"io"

	"github.com/simploce/mesosim/geom"
)

// Parse reads a triangulated polyhedron from r: a vertex count and
// triangle count, then that many vertex positions, then that many
// vertex normals, then that many triangles as vertex-index triples.
// Grounded on
// original_source/surface/src/triangulation.cpp's parse().
func Parse(r io.Reader) (*Polyhedron, error) {
	var numVertices, numTriangles int
	if _, err := fmt.Fscan(r, &numVertices, &numTriangles); err != nil {
		return nil, fmt.Errorf("surface: parse header: %w", err)
	}

	vertices := make([]*Vertex, numVertices)
	for i := 0; i < numVertices; i++ {
		var x, y, z float64
		if _, err := fmt.Fscan(r, &x, &y, &z); err != nil {
			return nil, fmt.Errorf("surface: parse vertex %d: %w", i, err)
		}
		vertices[i] = NewVertex(i, geom.Vec3{x, y, z}, geom.Zero)
	}
	for i := 0; i < numVertices; i++ {
		var x, y, z float64
		if _, err := fmt.Fscan(r, &x, &y, &z); err != nil {
			return nil, fmt.Errorf("surface: parse normal %d: %w", i, err)
		}
		vertices[i].Normal = geom.Vec3{x, y, z}
	}

	faces := make([]Face, numTriangles)
	for i := 0; i < numTriangles; i++ {
		var a, b, c int
		if _, err := fmt.Fscan(r, &a, &b, &c); err != nil {
			return nil, fmt.Errorf("surface: parse triangle %d: %w", i, err)
		}
		faces[i] = NewTriangle(vertices[a], vertices[b], vertices[c])
	}

	return NewPolyhedron(vertices, faces)
}
