package bem

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/units"
)

// RightHandSide assembles the kappa=0 right-hand side b for a set of
// point charges acting on the collocation nodes: b[node.Index] +=
// f1*Q/|rQ-r0|, f1 = 2/((1+epsRatio)*4*pi*eps0*epsSolute). Grounded on
// rhs.cpp's rightHandSide().
func RightHandSide(nodes []Node, chargePositions []geom.Vec3, charges []float64, epsSolvent, epsSolute float64) ([]float64, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("bem: no collocation nodes provided")
	}
	if len(chargePositions) != len(charges) {
		return nil, fmt.Errorf("bem: charge positions and charges have different lengths")
	}
	if len(chargePositions) == 0 {
		return nil, fmt.Errorf("bem: no charges provided")
	}

	epsRatio := epsSolvent / epsSolute
	f1 := 2.0 / ((1.0 + epsRatio) * units.FourPiE0 * epsSolute)

	b := make([]float64, len(nodes))
	for i, Q := range charges {
		rQ := chargePositions[i]
		for _, node := range nodes {
			dis := geom.Norm(geom.Sub(rQ, node.Position))
			b[node.Index] += f1 * Q / dis
		}
	}
	return b, nil
}

// RightHandSideIonic assembles the kappa>0, 2N-block right-hand side
// (b[0:N] for the potential unknowns, b[N:2N] for their normal
// derivatives), matching flat-triangles-calculator.cpp's
// rightHandSide() ka>0 branch.
func RightHandSideIonic(nodes []Node, chargePositions []geom.Vec3, charges []float64, epsSolvent, epsSolute float64) ([]float64, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("bem: no collocation nodes provided")
	}
	if len(chargePositions) != len(charges) {
		return nil, fmt.Errorf("bem: charge positions and charges have different lengths")
	}

	epsRatio := epsSolvent / epsSolute
	t1 := 2.0 / ((1.0 + epsRatio) * units.FourPiE0 * epsSolute)
	t2 := t1 * epsRatio
	n := len(nodes)

	b := make([]float64, 2*n)
	for i, Q := range charges {
		r := chargePositions[i]
		for _, node := range nodes {
			R := geom.Sub(r, node.Position)
			dis := geom.Norm(R)
			dis3 := dis * dis * dis
			imp := geom.Dot(R, node.Normal)
			b[node.Index] += t1 * Q / dis
			b[node.Index+n] += t2 * Q * imp / dis3
		}
	}
	return b, nil
}
