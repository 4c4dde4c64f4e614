package analysis

import (
	"fmt"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// MSD computes bonded-group mean square displacement over a sliding
// time window tau, the diffusion analyzer from
// original_source/apps/src/s-msd.cpp's Diffusion<Bead>. The original's
// results() starts its output loop at index 1 while msd_/cmsd_ are
// accumulated from index 0 in perform() — an off-by-one that both
// skips the first (shortest-lag) bin and indexes cmsd_ one slot past
// where it was filled for the last bin; this uses the 0-based
// indexing perform()'s accumulation establishes.
type MSD struct {
	dt, tau float64

	window   []windowSnapshot
	msd      []float64
	count    []int
	nGroups  int
	lastTime float64
	counter  int
}

type windowSnapshot struct {
	positions []geom.Vec3
}

// NewMSD validates its arguments and returns a fresh accumulator.
func NewMSD(dt, tau float64) (*MSD, error) {
	if dt <= 0 || tau <= 0 {
		return nil, fmt.Errorf("analysis: msd time step and window must be positive")
	}
	nmsd := int(tau / dt)
	if nmsd < 1 {
		nmsd = 1
	}
	return &MSD{
		dt: dt, tau: tau,
		msd:   make([]float64, nmsd),
		count: make([]int, nmsd),
	}, nil
}

// Accumulate folds one simulation state's bonded-group positions into
// the sliding window.
func (m *MSD) Accumulate(sys *particle.System) {
	m.counter++
	t := float64(m.counter) * m.dt

	if m.counter == 1 {
		m.lastTime = t
		m.nGroups = len(sys.Groups())
	}

	positions := make([]geom.Vec3, len(sys.Groups()))
	for i, g := range sys.Groups() {
		positions[i] = g.Position()
	}
	m.window = append(m.window, windowSnapshot{positions: positions})

	if t-m.lastTime > m.tau {
		m.window = m.window[1:]
		m.lastTime += m.dt
	}

	for i := range m.window {
		ri := m.window[i].positions
		for j := i; j < len(m.window); j++ {
			rj := m.window[j].positions
			lag := j - i
			if lag >= len(m.msd) {
				continue
			}
			for k := range ri {
				d := geom.Sub(rj[k], ri[k])
				m.msd[lag] += geom.Dot(d, d)
				m.count[lag]++
			}
		}
	}
}

// Results returns (lag time, mean square displacement) pairs.
func (m *MSD) Results() []RadialPoint {
	result := make([]RadialPoint, len(m.msd))
	for i, v := range m.msd {
		t := float64(i) * m.dt
		value := 0.0
		if m.count[i] > 0 {
			value = v / float64(m.count[i])
		}
		result[i] = RadialPoint{X: t, Y: value}
	}
	return result
}
