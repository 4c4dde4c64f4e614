package bem

import "github.com/simploce/mesosim/geom"

// gaussLegendre4 is the fixed 4-point Gauss-Legendre rule on [-1,1],
// degree-7 exact. No Juffer/Vogel (1991) reference quadrature survived
// in original_source/, so this is a from-scratch, hand-rolled
// completion rather than a port.
var (
	gaussLegendre4Nodes   = [4]float64{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526}
	gaussLegendre4Weights = [4]float64{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538}
)

// integrateOnUnitInterval maps the 4-point Gauss-Legendre rule from
// [-1,1] to [0,1] and integrates f.
func integrateOnUnitInterval(f func(t float64) float64) float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		t := 0.5*gaussLegendre4Nodes[i] + 0.5
		sum += gaussLegendre4Weights[i] * f(t)
	}
	return 0.5 * sum
}

// CurvedTriangleGeometry estimates the area, centroid, and average
// outward normal of a triangle whose 3 edges are replaced by the
// cubic curves interpolating the endpoint vertex normals, by
// Gauss-Legendre quadrature along each curve rather than the flat
// straight-edge triangle. The centroid is the quadrature-weighted
// average of the 3 curves' sampled points (an estimate, not a closed
// boundary-integral formula, since the original never finished a
// curved-triangle area/centroid method to follow); the area uses the
// planar shoelace formula applied to the curved boundary's projection
// onto the flat triangle's plane, a standard Green's-theorem
// extension.
func CurvedTriangleGeometry(curves [3]*Curve, planeNormal geom.Vec3) (area float64, centroid, normal geom.Vec3) {
	e1, e2 := planeBasis(planeNormal)

	var shoelace float64
	var weightedSum geom.Vec3
	var normalSum geom.Vec3
	var totalWeight float64

	var firstX, firstY, prevX, prevY float64
	first := true
	for _, curve := range curves {
		for i := 0; i < 4; i++ {
			t := 0.5*gaussLegendre4Nodes[i] + 0.5
			w := 0.5 * gaussLegendre4Weights[i]
			r, n := curve.Point(t)
			x := geom.Dot(r, e1)
			y := geom.Dot(r, e2)
			if first {
				firstX, firstY = x, y
			} else {
				shoelace += prevX*y - x*prevY
			}
			first = false
			prevX, prevY = x, y

			weightedSum = geom.AddScaled(weightedSum, w, r)
			normalSum = geom.AddScaled(normalSum, w, n)
			totalWeight += w
		}
	}
	shoelace += prevX*firstY - firstX*prevY

	area = 0.5 * shoelace
	if area < 0 {
		area = -area
	}
	centroid = geom.Scale(1.0/totalWeight, weightedSum)
	normal = geom.Unit(normalSum)
	return area, centroid, normal
}

func planeBasis(n geom.Vec3) (geom.Vec3, geom.Vec3) {
	ref := geom.Vec3{1, 0, 0}
	if geom.Dot(ref, n) > 0.9 {
		ref = geom.Vec3{0, 1, 0}
	}
	e1 := geom.Unit(geom.Sub(ref, geom.Scale(geom.Dot(ref, n), n)))
	e2 := geom.Vec3{
		n[1]*e1[2] - n[2]*e1[1],
		n[2]*e1[0] - n[0]*e1[2],
		n[0]*e1[1] - n[1]*e1[0],
	}
	return e1, e2
}
