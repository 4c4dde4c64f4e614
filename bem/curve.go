package bem

import (
	"math"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/surface"
)

// Curve is a cubic Hermite-like parameterisation r(t) = a + b*t +
// c*t^2 + d*t^3 of the edge between two vertices, matching each
// vertex's position and constraining the curve's normal field to
// agree with both vertices' unit normals. Used to replace a flat
// triangle edge with one that follows the true (curved) dielectric
// boundary. Grounded on original_source/bem/src/curve.cpp.
type Curve struct {
	start, end *surface.Vertex
	a, b, c, d geom.Vec3
}

// NewCurve builds the curve between start and end.
func NewCurve(start, end *surface.Vertex) *Curve {
	R := geom.Sub(end.Position, start.Position)
	ns := start.Normal
	ne := end.Normal

	imp1 := geom.Dot(R, ns)
	imp2 := geom.Dot(R, ne)
	imp3 := geom.Dot(ne, ne)
	imp4 := geom.Dot(ns, ns)
	imp5 := geom.Dot(ns, ne)

	f1 := (imp1*imp3 + 0.5*imp2*imp5) / (imp4*imp3/3.0 - (imp5*imp5)/12.0)
	f2 := (-1.0*imp2 - f1*imp5/6.0) / (imp3 / 3.0)

	var a, b, c, d geom.Vec3
	for k := 0; k < 3; k++ {
		a[k] = start.Position[k]
		c[k] = 0.5 * f1 * ns[k]
		d[k] = (f2*ne[k] - f1*ns[k]) / 6.0
		b[k] = end.Position[k] - a[k] - c[k] - d[k]
	}
	return &Curve{start: start, end: end, a: a, b: b, c: c, d: d}
}

// Point evaluates the curve's position and unit normal at parameter
// t in [0,1]. Grounded on curve.cpp's Curve::point().
func (curve *Curve) Point(t float64) (geom.Vec3, geom.Vec3) {
	tt := t * t
	ttt := t * tt

	var r, der1, der2 geom.Vec3
	var lDer1, imp float64
	for k := 0; k < 3; k++ {
		r[k] = curve.a[k] + curve.b[k]*t + curve.c[k]*tt + curve.d[k]*ttt
		der1[k] = curve.b[k] + 2.0*curve.c[k]*t + 3.0*curve.d[k]*tt
		der2[k] = 2.0*curve.c[k] + 6.0*curve.d[k]*t
		lDer1 += der1[k] * der1[k]
		imp += der1[k] * der2[k]
	}

	var cv geom.Vec3
	var lCv2 float64
	for k := 0; k < 3; k++ {
		cv[k] = (der2[k] - imp*der1[k]/lDer1) / lDer1
		lCv2 += cv[k] * cv[k]
	}

	average := geom.Scale(0.5, geom.Add(curve.start.Normal, curve.end.Normal))
	var normal geom.Vec3
	if lCv2 > 0.0 {
		lCv := math.Sqrt(lCv2)
		normal = geom.Scale(1.0/lCv, cv)
	} else {
		normal = geom.Scale(1.0/geom.Norm(average), average)
	}
	if geom.Dot(normal, average) <= 0.0 {
		normal = geom.Scale(-1, normal)
	}

	return r, normal
}
