package extpot

import (
	"bytes"
	"fmt"

	gio "github.com/cpmech/gosl/io"
	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// VirtualPlanes is a stack of equally spaced VirtualPlane instances
// spanning the box's z-extent, whose surface charge densities track
// the running average of charge crossing each slab. Unlike the
// original's file-scope statics, every accumulator lives on the
// struct: two instances never share state. Grounded on
// original_source/simulation/src/vplanes.cpp.
type VirtualPlanes struct {
	Base

	box     geom.Box
	bc      bc.BC
	spacing float64
	epsR    float64

	planes      []VirtualPlane
	state       []float64
	difference  []float64
	accumulated []float64
	counter     int
}

// NewVirtualPlanes lays out planes at the requested spacing (clipped
// to an integer divisor of the box's z-length) across the box.
func NewVirtualPlanes(box geom.Box, bcond bc.BC, spacing, epsR float64) (*VirtualPlanes, error) {
	if bcond == nil {
		return nil, fmt.Errorf("vplanes: boundary conditions must be provided")
	}
	if spacing == 0 {
		return nil, fmt.Errorf("vplanes: spacing between virtual planes must be nonzero")
	}
	if epsR <= 0 {
		return nil, fmt.Errorf("vplanes: relative permittivity must be positive")
	}

	n := int(box.Lz / spacing)
	if n < 1 {
		n = 1
	}
	actualSpacing := box.Lz / float64(n)

	vp := &VirtualPlanes{box: box, bc: bcond, spacing: actualSpacing, epsR: epsR}
	vp.planes = make([]VirtualPlane, n)
	for i := 0; i < n; i++ {
		location := float64(i) * actualSpacing
		vp.planes[i] = NewVirtualPlane(box, bcond, location, epsR)
	}
	vp.state = make([]float64, n)
	vp.difference = make([]float64, n)
	vp.accumulated = make([]float64, n)
	return vp, nil
}

func (vp *VirtualPlanes) area() float64 {
	return vp.box.Lx * vp.box.Ly
}

func (vp *VirtualPlanes) updateStateAndAccumulated() {
	for k := range vp.accumulated {
		vp.state[k] += vp.difference[k]
		vp.accumulated[k] += vp.state[k]
	}
}

func (vp *VirtualPlanes) revertStateAndAccumulated() {
	for k := range vp.state {
		vp.accumulated[k] -= vp.state[k]
		vp.state[k] -= vp.difference[k]
		vp.accumulated[k] += vp.state[k]
	}
}

func (vp *VirtualPlanes) resetSurfaceChargeDensities() {
	area := vp.area()
	counter := vp.counter
	if counter == 0 {
		counter = 1
	}
	for k := range vp.planes {
		average := vp.accumulated[k] / float64(counter)
		vp.planes[k].reset(average / area)
	}
}

func (vp *VirtualPlanes) planeIndex(z float64) int {
	idx := int(z / vp.spacing)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(vp.planes) {
		idx = len(vp.planes) - 1
	}
	return idx
}

func (vp *VirtualPlanes) determineStateChangesFromAll(particles []*particle.Particle) {
	diff := make([]float64, len(vp.planes))
	counterWasNonZero := vp.counter > 0
	for _, p := range particles {
		Q := float64(p.Charge())
		if p.Frozen || Q == 0 {
			continue
		}
		if counterWasNonZero {
			rPrev := vp.bc.PlaceInside(p.PrevPosition)
			diff[vp.planeIndex(rPrev[2])] -= Q
		}
		r := vp.bc.PlaceInside(p.Position)
		diff[vp.planeIndex(r[2])] += Q
	}
	vp.difference = diff
}

// Eval returns the joint energy and force of every plane's interaction
// with part. Forces are always zero: no plane contributes one.
func (vp *VirtualPlanes) Eval(part *particle.Particle) (float64, geom.Vec3) {
	var energy float64
	for i := range vp.planes {
		e, _ := vp.planes[i].Eval(part)
		energy += e
	}
	return energy, geom.Zero
}

func (vp *VirtualPlanes) Initialize(s *particle.System) {
	vp.determineStateChangesFromAll(s.Particles())
	vp.updateStateAndAccumulated()
	vp.counter++
	vp.resetSurfaceChargeDensities()
}

func (vp *VirtualPlanes) Update(s *particle.System) {
	vp.determineStateChangesFromAll(s.Particles())
	vp.updateStateAndAccumulated()
	vp.counter++
	vp.resetSurfaceChargeDensities()
}

func (vp *VirtualPlanes) UpdateParticle(p *particle.Particle) {
	vp.determineStateChangesFromAll([]*particle.Particle{p})
	vp.updateStateAndAccumulated()
	vp.counter++
	vp.resetSurfaceChargeDensities()
}

func (vp *VirtualPlanes) Fallback() {
	vp.revertStateAndAccumulated()
	vp.resetSurfaceChargeDensities()
}

// TotalSurfaceChargeDensity returns the sum of every plane's current
// surface charge density.
func (vp *VirtualPlanes) TotalSurfaceChargeDensity() float64 {
	var total float64
	for _, p := range vp.planes {
		total += p.SurfaceChargeDensity()
	}
	return total
}

// Complete writes each plane's location, surface charge density and
// accumulated charge to "vplanes.dat".
func (vp *VirtualPlanes) Complete() error {
	var buf bytes.Buffer
	for k, p := range vp.planes {
		gio.Ff(&buf, "%.6f %.6f %.6f\n", p.Location, p.SurfaceChargeDensity(), vp.accumulated[k])
	}
	gio.WriteFile("vplanes.dat", &buf)
	return nil
}
