package surface

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
)

// Triangles60 replaces a dodecahedron's 12 pentagons with 60 triangles:
// each pentagon's 5 vertices average to a new center vertex, projected
// onto the sphere of the given radius, fanning 5 triangles from that
// center to the pentagon's edges. Grounded on
// original_source/surface/src/sphere.cpp's triangles60().
func Triangles60(poly *Polyhedron, radius float64) (*Polyhedron, error) {
	vertices := append([]*Vertex{}, poly.Vertices()...)
	nextIndex := len(vertices)

	faces := make([]Face, 0, 60)
	for _, f := range poly.Faces() {
		fv := f.Vertices()
		centroid := geom.Zero
		for _, v := range fv {
			centroid = geom.Add(centroid, v.Position)
		}
		centroid = geom.Scale(1.0/float64(len(fv)), centroid)
		center := NewVertex(nextIndex, geom.Scale(radius/geom.Norm(centroid), centroid), geom.Zero)
		nextIndex++
		vertices = append(vertices, center)

		for i := 0; i < len(fv); i++ {
			a := fv[i]
			b := fv[(i+1)%len(fv)]
			faces = append(faces, NewTriangle(center, a, b))
		}
	}

	return NewPolyhedron(vertices, faces)
}

// edgeMidpointCache caches the new vertex created when bisecting an
// edge, keyed symmetrically so either traversal direction hits the
// same cached vertex, matching sphere.cpp's MatrixMap<int,vertex_ptr_t>
// usage in divide().
type edgeMidpointCache struct {
	vertices  []*Vertex
	midpoints map[[2]int]*Vertex
	nextIndex int
}

func newEdgeMidpointCache(vertices []*Vertex) *edgeMidpointCache {
	return &edgeMidpointCache{
		vertices:  vertices,
		midpoints: make(map[[2]int]*Vertex),
		nextIndex: len(vertices),
	}
}

func (c *edgeMidpointCache) midpoint(a, b *Vertex, radius float64) *Vertex {
	key := [2]int{a.Index, b.Index}
	if key[0] > key[1] {
		key[0], key[1] = key[1], key[0]
	}
	if v, ok := c.midpoints[key]; ok {
		return v
	}
	mid := geom.Scale(0.5, geom.Add(a.Position, b.Position))
	v := NewVertex(c.nextIndex, geom.Scale(radius/geom.Norm(mid), mid), geom.Zero)
	c.nextIndex++
	c.midpoints[key] = v
	c.vertices = append(c.vertices, v)
	return v
}

// Subdivide repeatedly splits every triangle into 4 (connecting each
// edge's midpoint, projected onto the sphere of the given radius)
// until the triangle count reaches numberOfTriangles, matching
// sphere.cpp's divide().
func Subdivide(poly *Polyhedron, numberOfTriangles int, radius float64) (*Polyhedron, error) {
	current := poly
	for current.NumberOfFaces() < numberOfTriangles {
		cache := newEdgeMidpointCache(append([]*Vertex{}, current.Vertices()...))
		faces := make([]Face, 0, current.NumberOfFaces()*4)

		for _, f := range current.Faces() {
			fv := f.Vertices()
			if len(fv) != 3 {
				return nil, fmt.Errorf("surface: subdivide requires a triangulated polyhedron")
			}
			a, b, c := fv[0], fv[1], fv[2]
			ab := cache.midpoint(a, b, radius)
			bc := cache.midpoint(b, c, radius)
			ca := cache.midpoint(c, a, radius)

			faces = append(faces,
				NewTriangle(a, ab, ca),
				NewTriangle(ab, b, bc),
				NewTriangle(ca, bc, c),
				NewTriangle(ab, bc, ca),
			)
		}

		next, err := NewPolyhedron(cache.vertices, faces)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
