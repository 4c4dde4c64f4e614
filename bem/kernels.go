// Package bem assembles and solves the boundary-element surface
// matrix for the Poisson-Boltzmann reaction field of a dielectric
// boundary (a triangulated surface.Polyhedron). Grounded on
// original_source/bem/src/{kernels,bem-data,rhs,flat-triangles-
// calculator,flat-tri-nodes-vertices-calculator,curve,
// curved-tri-nodes-vertices-calculator}.cpp.
package bem

import (
	"math"

	"github.com/simploce/mesosim/geom"
)

// Lij0 is the zero-ionic-strength (kappa=0) double-layer kernel
// between a source point r (with outward normal n, which enters
// through (r-r0).n) and a field point r0.
// Grounded on kernels.cpp's Lij0.
func Lij0(epsRatio float64, r, normal, r0 geom.Vec3) float64 {
	disv := geom.Sub(r, r0)
	dis := geom.Norm(disv)
	imp := geom.Dot(disv, normal)
	f1 := 2.0 * (epsRatio - 1.0) / (epsRatio + 1.0)
	f2 := 4.0 * math.Pi * dis * dis * dis
	return -f1 * imp / f2
}

// Lij is the kappa>0 double-layer kernel. Grounded on kernels.cpp's
// Lij.
func Lij(ka, epsRatio float64, r, normal, r0 geom.Vec3) float64 {
	disv := geom.Sub(r, r0)
	dis := geom.Norm(disv)
	imp := geom.Dot(disv, normal)
	t0 := 1.0 + ka*dis
	t1 := math.Exp(-ka * dis)
	t2 := t0 * t1
	t3 := 2.0 / (1.0 + epsRatio)
	t4 := 4.0 * math.Pi * dis
	t5 := t4 * dis * dis
	return t3 * (1.0 - epsRatio*t2) * imp / t5
}

// KLMN holds the four kappa>0 boundary-integral kernels evaluated at
// a (source, field) node pair.
type KLMN struct {
	K, L, M, N float64
}

// KLMNij evaluates the full kappa>0 kernel set between a source point
// r (outward normal n) and a field point r0 (outward normal n0).
// Grounded on kernels.cpp's KLMNij.
func KLMNij(ka, epsRatio float64, r, n, r0, n0 geom.Vec3) KLMN {
	disv := geom.Sub(r, r0)
	dis := geom.Norm(disv)
	dis2 := dis * dis
	imp := geom.Dot(disv, n)
	t0 := 1.0 + ka*dis
	t1 := math.Exp(-ka * dis)
	t2 := t0 * t1
	t3 := 2.0 / (1.0 + epsRatio)
	t4 := 4.0 * math.Pi * dis
	t5 := t4 * dis2
	t6 := t3 / t5

	lij := t6 * (1.0 - epsRatio*t2) * imp
	kij := t3 * (1.0 - t1) / t4

	imp0 := geom.Dot(disv, n0)
	t3eps := t3 * epsRatio
	nij := t6 * epsRatio * imp0 * (1.0 - t2/epsRatio)

	t7 := geom.Dot(n, n0)
	t8 := imp * imp0
	t9 := t8 / t5
	m0 := 3.0 * t9 * (1.0 - t2) / dis2
	m1 := t7 * (t2 - 1.0) / t5
	m2 := t9 * ka * ka * t1
	mij := t3eps * (m0 + m1 - m2)

	return KLMN{K: kij, L: lij, M: mij, N: nij}
}
