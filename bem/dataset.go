package bem

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/simploce/mesosim/geom"
)

// Node is a collocation point on the dielectric boundary: a position
// and outward unit normal, tagged with its row/column index in the
// surface matrix. Grounded on bem-data.hpp's BEMData::node_t.
type Node struct {
	Position geom.Vec3
	Normal   geom.Vec3
	Index    int
}

// Dataset holds the assembled boundary-element system and its
// solution: the dense surface matrix S, right-hand side b, unknown
// vector x at the collocation nodes, and the dielectric parameters
// that parameterize the kernels. Grounded on bem-data.{hpp,cpp}; S's
// dense pivoted LU factor/solve uses gonum/mat (this package's sole
// non-stdlib, non-geom dependency) in place of Eigen's in-place
// PartialPivLU.
type Dataset struct {
	Nodes []Node

	S *mat.Dense
	b []float64
	x []float64

	EpsSolute  float64
	EpsSolvent float64
	EpsRatio   float64
	Ka         float64

	lu          mat.LU
	factorized  bool
}

// NewDataset allocates an nCol x nCol surface matrix and zeroed
// right-hand-side/solution vectors for the given dielectric
// parameters.
func NewDataset(epsSolute, epsSolvent, ka float64, nCol int) (*Dataset, error) {
	if epsSolute <= 0 || epsSolvent <= 0 {
		return nil, fmt.Errorf("bem: dielectric constants must be positive")
	}
	if nCol <= 0 {
		return nil, fmt.Errorf("bem: number of collocation points must be positive")
	}
	return &Dataset{
		S:          mat.NewDense(nCol, nCol, nil),
		b:          make([]float64, nCol),
		x:          make([]float64, nCol),
		EpsSolute:  epsSolute,
		EpsSolvent: epsSolvent,
		EpsRatio:   epsSolvent / epsSolute,
		Ka:         ka,
	}, nil
}

// Size returns the number of collocation points (rows/columns of S).
func (d *Dataset) Size() int {
	r, _ := d.S.Dims()
	return r
}

// B returns the right-hand-side vector.
func (d *Dataset) B() []float64 { return d.b }

// X returns the solved unknown vector, valid only after Solve.
func (d *Dataset) X() []float64 { return d.x }

// Factorize LU-decomposes S into the cached factorization d.lu; gonum
// factorizes a copy, so S itself is left unchanged.
func (d *Dataset) Factorize() error {
	d.lu.Factorize(d.S)
	d.factorized = true
	return nil
}

// Solve solves S x = b for x using the cached LU factorization,
// factorizing first if it hasn't been done yet.
func (d *Dataset) Solve() error {
	n := d.Size()
	if !d.factorized {
		if err := d.Factorize(); err != nil {
			return err
		}
	}
	x := mat.NewVecDense(n, nil)
	if err := d.lu.SolveVecTo(x, false, mat.NewVecDense(n, d.b)); err != nil {
		return fmt.Errorf("bem: solve surface matrix: %w", err)
	}
	copy(d.x, x.RawVector().Data)
	return nil
}
