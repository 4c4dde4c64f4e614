package bem

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/surface"
)

// FlatFaceCalculator assembles and solves the kappa=0 boundary-element
// system with collocation at flat face centroids, one node per
// triangle. The original's FlatTrianglesCalculator::surfaceMatrix() is
// an unpopulated scaffold (S.setZero() followed immediately by
// data.lu.compute(S), no kernel-evaluation loop) and its
// electricPotentials() just returns a zero vector; this completes both
// using the same Lij0 panel-method formula the vertex calculator uses,
// now with face centroids as both the source points and the
// collocation nodes. Grounded on
// original_source/bem/src/flat-triangles-calculator.cpp.
type FlatFaceCalculator struct {
	Surface *surface.Polyhedron
	Data    *Dataset

	centers  []geom.Vec3
	normals  []geom.Vec3
	areas    []float64
}

// NewFlatFaceCalculator allocates a Dataset sized to the surface's
// face count (kappa=0 only; see SurfaceMatrix) and assigns one
// collocation node per face centroid.
func NewFlatFaceCalculator(poly *surface.Polyhedron, epsSolute, epsSolvent, ka float64) (*FlatFaceCalculator, error) {
	if poly == nil {
		return nil, fmt.Errorf("bem: missing triangulated surface")
	}
	if ka > 0.0 {
		return nil, fmt.Errorf("bem: face-center collocation for kappa>0 needs the coupled K,L,M,N boundary system, which has no complete reference formulation in the surviving source tree (only the individual kernels are specified); use FlatVertexCalculator, or extend this type once that formulation is available")
	}

	n := poly.NumberOfFaces()
	data, err := NewDataset(epsSolute, epsSolvent, ka, n)
	if err != nil {
		return nil, err
	}

	c := &FlatFaceCalculator{
		Surface: poly, Data: data,
		centers: make([]geom.Vec3, n), normals: make([]geom.Vec3, n), areas: make([]float64, n),
	}
	for i, f := range poly.Faces() {
		vertices := f.Vertices()
		c.centers[i] = faceCentroid(vertices)
		c.normals[i] = f.Normal()
		c.areas[i] = f.Area()
		data.Nodes = append(data.Nodes, Node{Position: c.centers[i], Normal: c.normals[i], Index: i})
	}
	return c, nil
}

// SurfaceMatrix assembles the kappa=0 surface matrix: a unit diagonal,
// off-diagonal terms -Lij0(center_j,normal_j,center_i)*area_j (the
// diagonal is left at its identity value since the panel's own
// centroid is a removable singularity of Lij0, not a well-defined
// limit derivable from the source this is grounded on), then
// factorizes.
func (c *FlatFaceCalculator) SurfaceMatrix() error {
	n := c.Data.Size()
	S := c.Data.S
	epsRatio := c.Data.EpsRatio
	for i := 0; i < n; i++ {
		S.Set(i, i, 1.0)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			value := Lij0(epsRatio, c.centers[j], c.normals[j], c.centers[i]) * c.areas[j]
			S.Set(i, j, S.At(i, j)-value)
		}
	}
	return c.Data.Factorize()
}

// RightHandSide assembles b for a set of source point charges.
func (c *FlatFaceCalculator) RightHandSide(positions []geom.Vec3, charges []float64) error {
	b, err := RightHandSide(c.Data.Nodes, positions, charges, c.Data.EpsSolvent, c.Data.EpsSolute)
	if err != nil {
		return err
	}
	copy(c.Data.b, b)
	return nil
}

// Solve solves S x = b for the unknowns at the collocation nodes.
func (c *FlatFaceCalculator) Solve() error {
	return c.Data.Solve()
}

// ElectricPotentials evaluates the reaction-field potential at the
// given points from the solved face-centroid source strengths.
func (c *FlatFaceCalculator) ElectricPotentials(points []geom.Vec3) []float64 {
	epsRatio := c.Data.EpsRatio
	x := c.Data.X()
	result := make([]float64, len(points))
	for k, rk := range points {
		for j := range c.centers {
			result[k] += Lij0(epsRatio, c.centers[j], c.normals[j], rk) * c.areas[j] * x[j]
		}
	}
	return result
}
