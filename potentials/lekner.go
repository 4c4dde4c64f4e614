package potentials

import (
	"math"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// Lekner evaluates the exact electrostatic energy of two point charges
// under periodicity in x and y only (2D Ewald-like sum via modified
// Bessel functions of the second kind), following Lekner's method as
// implemented in original_source/simulation/src/lekner.cpp. As in the
// original, no analytic force is derived from this sum: Eval always
// returns a zero force, matching spec.md's Lekner open question (force
// is not implemented; callers relying on Lekner forces must use a
// Monte Carlo integrator, where only the energy is needed).
type Lekner struct {
	BC   bc.BC
	Box  geom.Box
	Eps  float64
	NMax int
	KMax int
}

func (p Lekner) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	rij := p.BC.Apply(pi.Position, pj.Position)
	energy := p.forceAndEnergy(rij, float64(pi.Charge()), float64(pj.Charge()))
	return energy, geom.Zero
}

func (p Lekner) forceAndEnergy(rij geom.Vec3, qi, qj float64) float64 {
	const small = 1.0e-10
	R := geom.Norm(rij)
	if R < small {
		return Large
	}

	Lx, Ly := p.Box.Lx, p.Box.Ly
	twoPi := 2.0 * math.Pi
	log2 := math.Log(2.0)
	LyLyOverLxLx := (Ly * Ly) / (Lx * Lx)
	LxLxOverLyLy := (Lx * Lx) / (Ly * Ly)

	dx, dy, dz := rij[0], rij[1], rij[2]
	dxOverLx := dx / Lx
	dyOverLy := dy / Ly
	dzOverLy := dz / Ly
	dzOverLx := dz / Lx
	dzOverLx2 := dzOverLx * dzOverLx
	dzOverLy2 := dzOverLy * dzOverLy

	var energy float64
	if math.Abs(dy) > small {
		sumN := 0.0
		n := 1
		for {
			sumNP := sumN
			twoPiN := twoPi * float64(n)
			cosTerm := math.Cos(twoPiN * dxOverLx)

			a2 := dyOverLy * dyOverLy
			t1 := LyLyOverLxLx*a2 + dzOverLx2
			sumK := besselK0(twoPiN * math.Sqrt(t1))
			k := 1
			var dSumK float64
			for {
				sumKP := sumK
				dk := float64(k)

				a1 := dyOverLy + dk
				a2 = a1 * a1
				t1 = LyLyOverLxLx*a2 + dzOverLx2
				sumK += besselK0(twoPiN * math.Sqrt(t1))

				a1 = dyOverLy - dk
				a2 = a1 * a1
				t1 = LyLyOverLxLx*a2 + dzOverLx2
				sumK += besselK0(twoPiN * math.Sqrt(t1))

				dSumK = sumK - sumKP
				k++
				if !(math.Abs(dSumK) > p.Eps && k < p.KMax) {
					break
				}
			}
			sumN += cosTerm * sumK
			dSumN := sumN - sumNP
			n++
			if !(math.Abs(dSumN) > p.Eps && n < p.NMax) {
				break
			}
		}

		qiQjOverLx := qi * qj / Lx
		energy = 4.0 * qiQjOverLx * sumN
		a1 := math.Cosh(twoPi * dzOverLy)
		a2 := math.Cos(twoPi * dyOverLy)
		logTerm := math.Log(a1 - a2)
		energy -= qiQjOverLx * logTerm
		energy -= qiQjOverLx * log2
	} else {
		sumK := 0.0
		k := 1
		for {
			sumKP := sumK
			twoPiK := twoPi * float64(k)
			cosTerm := math.Cos(twoPiK * dyOverLy)

			t1 := LxLxOverLyLy*dxOverLx*dxOverLx + dzOverLy2
			sumN := besselK0(twoPiK * math.Sqrt(t1))
			n := 1
			var dSumN float64
			for {
				sumNP := sumN
				dn := float64(n)

				a1 := dxOverLx + dn
				a2 := a1 * a1
				t1 = LxLxOverLyLy*a2 + dzOverLy2
				sumN += besselK0(twoPiK * math.Sqrt(t1))

				a1 = dxOverLx - dn
				a2 = a1 * a1
				t1 = LxLxOverLyLy*a2 + dzOverLy2
				sumN += besselK0(twoPiK * math.Sqrt(t1))

				dSumN = sumN - sumNP
				n++
				if !(math.Abs(dSumN) > p.Eps && n < p.NMax) {
					break
				}
			}
			sumK += cosTerm * sumN
			dSumK := sumK - sumKP
			k++
			if !(math.Abs(dSumK) > p.Eps && k < p.KMax) {
				break
			}
		}

		qiQjOverLy := qi * qj / Ly
		energy = 4.0 * qiQjOverLy * sumK
		a1 := math.Cosh(twoPi * dzOverLx)
		a2 := math.Cos(twoPi * dxOverLx)
		logTerm := math.Log(a1 - a2)
		energy -= qiQjOverLy * logTerm
		energy -= qiQjOverLy * log2
	}

	return energy / units.FourPiE0
}
