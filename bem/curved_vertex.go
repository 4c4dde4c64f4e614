package bem

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/surface"
)

// CurvedVertexCalculator is FlatVertexCalculator's curved-triangle
// counterpart: each face's edges are replaced by the cubic curves
// that interpolate its vertices' unit normals (bem.Curve), and the
// face's effective centroid/normal/area for the Lij0 panel term come
// from a fixed-order Gauss-Legendre quadrature over those curves
// (bem.CurvedTriangleGeometry) instead of the flat centroid/Area()/
// Normal(). Grounded on
// original_source/bem/src/curved-tri-nodes-vertices-calculator.cpp's
// overall structure, with the quadrature itself a from-scratch
// completion (see quadrature.go).
type CurvedVertexCalculator struct {
	Surface *surface.Polyhedron
	Data    *Dataset

	faceCenters []geom.Vec3
	faceNormals []geom.Vec3
	faceAreas   []float64
}

// NewCurvedVertexCalculator allocates a Dataset sized to the surface's
// vertex count, assigns one collocation node per vertex, and
// precomputes each face's curved geometry.
func NewCurvedVertexCalculator(poly *surface.Polyhedron, epsSolute, epsSolvent, ka float64) (*CurvedVertexCalculator, error) {
	if poly == nil {
		return nil, fmt.Errorf("bem: missing triangulated surface")
	}
	data, err := NewDataset(epsSolute, epsSolvent, ka, poly.NumberOfVertices())
	if err != nil {
		return nil, err
	}
	for _, v := range poly.Vertices() {
		data.Nodes = append(data.Nodes, Node{Position: v.Position, Normal: v.Normal, Index: v.Index})
	}

	c := &CurvedVertexCalculator{Surface: poly, Data: data}
	faces := poly.Faces()
	c.faceCenters = make([]geom.Vec3, len(faces))
	c.faceNormals = make([]geom.Vec3, len(faces))
	c.faceAreas = make([]float64, len(faces))
	for i, f := range faces {
		vertices := f.Vertices()
		if len(vertices) != 3 {
			return nil, fmt.Errorf("bem: curved-vertex collocation requires a triangulated surface")
		}
		curves := [3]*Curve{
			NewCurve(vertices[0], vertices[1]),
			NewCurve(vertices[1], vertices[2]),
			NewCurve(vertices[2], vertices[0]),
		}
		area, centroid, normal := CurvedTriangleGeometry(curves, f.Normal())
		c.faceAreas[i] = area
		c.faceCenters[i] = centroid
		c.faceNormals[i] = normal
	}
	return c, nil
}

// SurfaceMatrix assembles S exactly as FlatVertexCalculator.SurfaceMatrix,
// using each face's curved centroid/normal/area in place of its flat
// equivalents.
func (c *CurvedVertexCalculator) SurfaceMatrix() error {
	n := c.Data.Size()
	S := c.Data.S
	for i := 0; i < n; i++ {
		S.Set(i, i, 1.0)
	}

	epsRatio := c.Data.EpsRatio
	for fi, f := range c.Surface.Faces() {
		vertices := f.Vertices()
		area := c.faceAreas[fi]
		center := c.faceCenters[fi]
		normal := c.faceNormals[fi]
		for _, node := range c.Data.Nodes {
			value := Lij0(epsRatio, center, normal, node.Position) * area / 3.0
			for _, v := range vertices {
				S.Set(node.Index, v.Index, S.At(node.Index, v.Index)-value)
			}
		}
	}

	return c.Data.Factorize()
}

// RightHandSide assembles b for a set of source point charges.
func (c *CurvedVertexCalculator) RightHandSide(positions []geom.Vec3, charges []float64) error {
	b, err := RightHandSide(c.Data.Nodes, positions, charges, c.Data.EpsSolvent, c.Data.EpsSolute)
	if err != nil {
		return err
	}
	copy(c.Data.b, b)
	return nil
}

// Solve solves S x = b for the unknowns at the collocation nodes.
func (c *CurvedVertexCalculator) Solve() error {
	return c.Data.Solve()
}

// ReactionPotentialSolute mirrors FlatVertexCalculator's, using curved
// per-face geometry.
func (c *CurvedVertexCalculator) ReactionPotentialSolute(points []geom.Vec3) []float64 {
	factor := (c.Data.EpsRatio + 1.0) / 2.0
	return c.reactionPotential(factor, points)
}

// ReactionPotentialSolvent mirrors FlatVertexCalculator's, using
// curved per-face geometry.
func (c *CurvedVertexCalculator) ReactionPotentialSolvent(points []geom.Vec3) []float64 {
	factor := (c.Data.EpsRatio + 1.0) / (2.0 * c.Data.EpsRatio)
	return c.reactionPotential(factor, points)
}

func (c *CurvedVertexCalculator) reactionPotential(factor float64, points []geom.Vec3) []float64 {
	epsRatio := c.Data.EpsRatio
	x := c.Data.X()
	result := make([]float64, len(points))
	for k, rk := range points {
		for fi, f := range c.Surface.Faces() {
			value := Lij0(epsRatio, c.faceCenters[fi], c.faceNormals[fi], rk) * c.faceAreas[fi] / 3.0
			for _, v := range f.Vertices() {
				result[k] += factor * value * x[v.Index]
			}
		}
	}
	return result
}
