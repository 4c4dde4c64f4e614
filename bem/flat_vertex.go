package bem

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/surface"
)

// FlatVertexCalculator assembles and solves the kappa=0 boundary-
// element system with collocation at the triangulated surface's
// vertices, flat (non-curved) triangles. Grounded file-for-file on
// original_source/bem/src/flat-tri-nodes-vertices-calculator.cpp.
type FlatVertexCalculator struct {
	Surface *surface.Polyhedron
	Data    *Dataset
}

// NewFlatVertexCalculator allocates a Dataset sized to the surface's
// vertex count and assigns one collocation node per vertex.
func NewFlatVertexCalculator(poly *surface.Polyhedron, epsSolute, epsSolvent, ka float64) (*FlatVertexCalculator, error) {
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
	return &FlatVertexCalculator{Surface: poly, Data: data}, nil
}

// SurfaceMatrix assembles S: a unit diagonal plus, for every face, the
// Lij0 kernel evaluated between the face's flat-centroid collocation
// point and every node, distributed equally (area/3) across the
// face's three vertex columns, then factorizes in place. Grounded on
// flat-tri-nodes-vertices-calculator.cpp's surfaceMatrix().
func (c *FlatVertexCalculator) SurfaceMatrix() error {
	n := c.Data.Size()
	S := c.Data.S
	for i := 0; i < n; i++ {
		S.Set(i, i, 1.0)
	}

	epsRatio := c.Data.EpsRatio
	for _, f := range c.Surface.Faces() {
		vertices := f.Vertices()
		area := f.Area()
		center := faceCentroid(vertices)
		normal := f.Normal()
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
func (c *FlatVertexCalculator) RightHandSide(positions []geom.Vec3, charges []float64) error {
	b, err := RightHandSide(c.Data.Nodes, positions, charges, c.Data.EpsSolvent, c.Data.EpsSolute)
	if err != nil {
		return err
	}
	copy(c.Data.b, b)
	return nil
}

// Solve solves S x = b for the unknowns at the collocation nodes.
func (c *FlatVertexCalculator) Solve() error {
	return c.Data.Solve()
}

// ReactionPotentialSolute evaluates the solute-side reaction field
// potential at the given points, scaling the raw boundary integral by
// (epsRatio+1)/2. Grounded on
// flat-tri-nodes-vertices-calculator.cpp's reactionPotentialSolute().
func (c *FlatVertexCalculator) ReactionPotentialSolute(points []geom.Vec3) []float64 {
	factor := (c.Data.EpsRatio + 1.0) / 2.0
	return c.reactionPotential(factor, points)
}

// ReactionPotentialSolvent evaluates the solvent-side reaction field
// potential, scaling by (epsRatio+1)/(2*epsRatio). Grounded on
// flat-tri-nodes-vertices-calculator.cpp's reactionPotentialSolvent().
func (c *FlatVertexCalculator) ReactionPotentialSolvent(points []geom.Vec3) []float64 {
	factor := (c.Data.EpsRatio + 1.0) / (2.0 * c.Data.EpsRatio)
	return c.reactionPotential(factor, points)
}

func (c *FlatVertexCalculator) reactionPotential(factor float64, points []geom.Vec3) []float64 {
	epsRatio := c.Data.EpsRatio
	x := c.Data.X()
	result := make([]float64, len(points))
	for k, rk := range points {
		for _, f := range c.Surface.Faces() {
			vertices := f.Vertices()
			area := f.Area()
			center := faceCentroid(vertices)
			normal := f.Normal()
			value := Lij0(epsRatio, center, normal, rk) * area / 3.0
			for _, v := range vertices {
				result[k] += factor * value * x[v.Index]
			}
		}
	}
	return result
}

func faceCentroid(vertices []*surface.Vertex) geom.Vec3 {
	c := geom.Zero
	for _, v := range vertices {
		c = geom.Add(c, v.Position)
	}
	return geom.Scale(1.0/float64(len(vertices)), c)
}
