package potentials

import "math"

// besselK0 evaluates the modified Bessel function of the second kind,
// order zero, using the rational/asymptotic approximations of
// Abramowitz & Stegun (9.8.5)-(9.8.6), accurate to about 1e-7. No
// library in the example corpus exposes K0 (original_source's
// math::Bessel_K0 has no surviving implementation file), so this
// recurs to a hand-rolled numerical approximation; see DESIGN.md.
func besselK0(x float64) float64 {
	if x <= 2.0 {
		t := x / 2.0
		t2 := t * t
		i0 := 1.0 + t2*(3.5156229+t2*(3.0899424+t2*(1.2067492+t2*(0.2659732+t2*(0.0360768+t2*0.0045813)))))
		return -math.Log(t)*i0 + (-0.57721566 + t2*(0.42278420+t2*(0.23069756+t2*(0.03488590+t2*(0.00262698+t2*(0.00010750+t2*0.0000074))))))
	}
	t := 2.0 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + t*(-0.07832358+t*(0.02189568+t*(-0.01062446+t*(0.00587872+t*(-0.00251540+t*0.00053208))))))
}
