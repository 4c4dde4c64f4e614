package potentials

import (
	"math"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// GaussSF is the shifted-force interaction between two Gaussian charge
// densities, U(r) = erf(S*r)*qi*qj/(4*pi*eps0*r), S =
// 1/sqrt(sigma_i^2+sigma_j^2) (Fennell and Gezelter, J. Chem. Phys.
// 124, 234104, 2006). Grounded on
// original_source/simulation/src/gauss-sf.cpp.
type GaussSF struct {
	BC         bc.BC
	CutoffLR   float64
	Mesoscopic bool
	Registry   *forcefield.Registry
}

func (p GaussSF) Eval(pi, pj *particle.Particle) (float64, geom.Vec3) {
	params := lookup(p.Registry, forcefield.FamilyGaussSF, pi, pj)
	rij := p.BC.Apply(pi.Position, pj.Position)
	Rij := geom.Norm(rij)
	return gaussSFForceAndEnergy(rij, Rij, float64(pi.Charge()), float64(pj.Charge()), params.SigmaI, params.SigmaJ, p.CutoffLR, p.Mesoscopic)
}

func gaussS(sigmaI, sigmaJ float64) float64 {
	return math.Sqrt(1.0 / (sigmaI*sigmaI + sigmaJ*sigmaJ))
}

// gaussAtCutoff returns U(rc) and dU/dr at rc, the values subtracted
// to produce the shifted-force form.
func gaussAtCutoff(qi, qj, S, cutoffLR float64, mesoscopic bool) (u, dUdr float64) {
	fourPi := 4.0 * units.Pi
	sqrtPi := math.Sqrt(units.Pi)

	r := cutoffLR
	x := S * r
	erfx := math.Erf(x)
	t := erfx * qi * qj / cutoffLR
	if mesoscopic {
		u = t / fourPi
	} else {
		u = t / units.FourPiE0
	}

	e := math.Exp(-x * x)
	t = (2.0/sqrtPi*e*x - erfx) * qi * qj / (r * r)
	if mesoscopic {
		dUdr = t / fourPi
	} else {
		dUdr = t / units.FourPiE0
	}
	return
}

// gaussSFForceAndEnergy is shared with GaussSFSR.
func gaussSFForceAndEnergy(rij geom.Vec3, Rij, qi, qj, sigmaI, sigmaJ, cutoffLR float64, mesoscopic bool) (float64, geom.Vec3) {
	if Rij >= cutoffLR {
		return 0.0, geom.Zero
	}
	fourPi := 4.0 * units.Pi
	sqrtPi := math.Sqrt(units.Pi)
	Rij2 := Rij * Rij

	S := gaussS(sigmaI, sigmaJ)
	uAtCutoff, dUdrAtCutoff := gaussAtCutoff(qi, qj, S, cutoffLR, mesoscopic)

	x := S * Rij
	erfx := math.Erf(x)
	t := erfx * qi * qj / Rij
	if mesoscopic {
		t /= fourPi
	} else {
		t /= units.FourPiE0
	}
	energy := t - uAtCutoff - dUdrAtCutoff*(Rij-cutoffLR)

	e := math.Exp(-x * x)
	t = (2.0/sqrtPi*e*x - erfx) * qi * qj / Rij2
	var dUdr float64
	if mesoscopic {
		dUdr = t / fourPi
	} else {
		dUdr = t / units.FourPiE0
	}
	uv := unitVector(rij, Rij)
	return energy, geom.Scale(-dUdr+dUdrAtCutoff, uv)
}
