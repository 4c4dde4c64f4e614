package extpot

import "math"

// integrate approximates the definite integral of f over [a, b] using
// adaptive composite Simpson's rule. The original's util::integrate is
// not present in the reference sources, so this implements the
// standard adaptive-refinement algorithm (Burden & Faires) to the
// given tolerance.
func integrate(f func(float64) float64, a, b float64) float64 {
	const tol = 1e-9
	const maxDepth = 20
	fa, fb := f(a), f(b)
	m := 0.5 * (a + b)
	fm := f(m)
	whole := simpson(fa, fm, fb, a, b)
	return adaptiveSimpson(f, a, b, fa, fm, fb, whole, tol, maxDepth)
}

func simpson(fa, fm, fb, a, b float64) float64 {
	return (b - a) / 6.0 * (fa + 4.0*fm + fb)
}

func adaptiveSimpson(f func(float64) float64, a, b, fa, fm, fb, whole, tol float64, depth int) float64 {
	m := 0.5 * (a + b)
	lm := 0.5 * (a + m)
	rm := 0.5 * (m + b)
	flm := f(lm)
	frm := f(rm)
	left := simpson(fa, flm, fm, a, m)
	right := simpson(fm, frm, fb, m, b)
	if depth <= 0 || math.Abs(left+right-whole) <= 15.0*tol {
		return left + right + (left+right-whole)/15.0
	}
	return adaptiveSimpson(f, a, m, fa, flm, fm, left, tol/2.0, depth-1) +
		adaptiveSimpson(f, m, b, fm, frm, fb, right, tol/2.0, depth-1)
}
