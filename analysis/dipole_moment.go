package analysis

import (
	"fmt"
	"math"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// DipoleMomentSample is one observation of the system's total dipole
// moment: the time, the moment vector, and its squared norm.
type DipoleMomentSample struct {
	Time   float64
	Moment geom.Vec3
	M2     float64
}

// DipoleMoment tracks the whole system's total dipole moment over
// time and the probability density of bonded-group dipole strength.
// Grounded on
// original_source/simulation/src/dipole-moment.cpp.
type DipoleMoment struct {
	dt, t0      float64
	dm          float64
	maxStrength float64

	samples []DipoleMomentSample
	hist    []float64
	counter int
}

// NewDipoleMoment validates its arguments and returns a fresh
// accumulator; maxStrengthGroup is an initial guess for the largest
// group dipole strength. Only the first accumulated state is checked
// against it: if a group there exceeds it, the range is expanded once
// to 1.25 times the largest strength found. Later states do not expand
// the range; strengths beyond it are counted in the last bin.
func NewDipoleMoment(dt, dm, maxStrengthGroup, t0 float64) (*DipoleMoment, error) {
	if dt <= 0 || dm <= 0 {
		return nil, fmt.Errorf("analysis: dipole moment time step and bin size must be positive")
	}
	nbins := int(maxStrengthGroup / dm)
	if nbins < 1 {
		nbins = 1
	}
	return &DipoleMoment{
		dt: dt, t0: t0, dm: dm, maxStrength: maxStrengthGroup,
		hist: make([]float64, nbins),
	}, nil
}

// Accumulate folds one simulation state into the accumulator.
func (d *DipoleMoment) Accumulate(sys *particle.System) {
	d.counter++

	if d.counter == 1 {
		maxStrength := d.maxStrength
		for _, g := range sys.Groups() {
			strength := geom.Norm(groupDipole(g))
			if strength > maxStrength {
				maxStrength = strength
			}
		}
		if maxStrength > d.maxStrength {
			d.maxStrength = 1.25 * maxStrength
			nbins := int(math.Round(d.maxStrength / d.dm))
			if nbins < 1 {
				nbins = 1
			}
			d.dm = d.maxStrength / float64(nbins)
			d.hist = make([]float64, nbins)
		}
	}

	M := geom.Zero
	for _, p := range sys.Particles() {
		M = geom.AddScaled(M, float64(p.Charge()), p.Position)
	}
	t := d.t0 + float64(d.counter)*d.dt
	d.samples = append(d.samples, DipoleMomentSample{Time: t, Moment: M, M2: geom.Dot(M, M)})

	last := len(d.hist) - 1
	for _, g := range sys.Groups() {
		strength := geom.Norm(groupDipole(g))
		index := int(strength / d.dm)
		if index < last {
			d.hist[index]++
		} else {
			d.hist[last]++
		}
	}
}

func groupDipole(g *particle.Group) geom.Vec3 {
	m := geom.Zero
	for _, p := range g.Particles {
		m = geom.AddScaled(m, float64(p.Charge()), p.Position)
	}
	return m
}

// Samples returns every accumulated (time, dipole moment) observation.
func (d *DipoleMoment) Samples() []DipoleMomentSample { return d.samples }

// Distribution returns the probability density function f(m) of
// bonded-group dipole strength.
func (d *DipoleMoment) Distribution() []RadialPoint {
	var total float64
	for _, v := range d.hist {
		total += v
	}
	result := make([]RadialPoint, len(d.hist))
	for i, v := range d.hist {
		m := float64(i) * d.dm
		f := 0.0
		if total > 0 {
			p := v / total
			f = p / d.dm
		}
		result[i] = RadialPoint{X: m, Y: f}
	}
	return result
}
