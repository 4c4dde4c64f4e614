// Package integrators implements the particle displacers that advance
// a particle.System by one time step. Grounded on
// original_source/simulation/src/dpd.cpp (Groot & Warren, J. Chem.
// Phys. 107, 4423, 1997).
package integrators

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/pairlist"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// SimulationData reports the diagnostics produced by one displacer
// step: kinetic energy, the norm of total linear momentum, and the
// instantaneous temperature derived from them.
type SimulationData struct {
	Kinetic       float64
	TotalMomentum float64
	Temperature   float64
}

// Interactor computes conservative non-bonded energy/forces over a
// system's current pair list, satisfied by a pairlist.Driver bound to
// a fixed potential set.
type Interactor interface {
	Interact(sys *particle.System, potentials []pairlist.Potential) (energy float64, err error)
}

// DPD is the dissipative-particle-dynamics displacer: a velocity-Verlet
// predictor-corrector with paired random and dissipative forces
// satisfying the fluctuation-dissipation relation. Grounded file-for-
// file on original_source/simulation/src/dpd.cpp, except where noted.
type DPD struct {
	Interactor Interactor
	Potentials []pairlist.Potential
	List       *pairlist.List
	BC         bc.BC

	Dt          float64
	Temperature float64
	Gamma       float64
	Lambda      float64
	Cutoff      float64

	// helper arrays are lifecycle-scoped to this DPD instance, never
	// package-level globals (spec.md §9's "DPD helper arrays" note).
	fOld    []geom.Vec3
	vOld    []geom.Vec3
	counter int
}

// NewDPD validates its arguments and returns a ready-to-step displacer.
func NewDPD(interactor Interactor, potentials []pairlist.Potential, list *pairlist.List, boundary bc.BC, dt, temperature, gamma, lambda, cutoff float64) (*DPD, error) {
	if interactor == nil {
		return nil, fmt.Errorf("dpd: missing interactor")
	}
	if boundary == nil {
		return nil, fmt.Errorf("dpd: missing boundary conditions")
	}
	return &DPD{
		Interactor: interactor, Potentials: potentials, List: list, BC: boundary,
		Dt: dt, Temperature: temperature, Gamma: gamma, Lambda: lambda, Cutoff: cutoff,
	}, nil
}

// Displace advances every non-frozen, non-grouped-only particle in sys
// by one DPD step and returns the step's diagnostics.
func (d *DPD) Displace(sys *particle.System) (SimulationData, error) {
	particles := sys.Particles()
	n := len(particles)

	d.counter++
	if d.counter == 1 {
		d.fOld = make([]geom.Vec3, n)
		d.vOld = make([]geom.Vec3, n)
		sys.ResetForces()
		if _, err := d.Interactor.Interact(sys, d.Potentials); err != nil {
			return SimulationData{}, err
		}
		d.randomDissipativeForces(particles)
	}

	d.displacePosition(particles)
	d.displaceVelocityUncorrected(particles)

	sys.ResetForces()
	if _, err := d.Interactor.Interact(sys, d.Potentials); err != nil {
		return SimulationData{}, err
	}
	d.randomDissipativeForces(particles)

	return d.correctDisplacedVelocity(particles)
}

// displacePosition advances every particle's position using the
// velocity-Verlet predictor. The original's literal line,
// r_i(t+dt) = r_i(t) + dt*v_i + 0.5*dt^2 + f_i[k], is dimensionally
// inconsistent (spec.md §9); this reproduces the documented intent,
// 0.5*dt^2*f_i/m_i, instead.
func (d *DPD) displacePosition(particles []*particle.Particle) {
	dt := d.Dt
	halfDt2 := 0.5 * dt * dt
	for _, p := range particles {
		if p.Frozen {
			continue
		}
		d.fOld[p.Index] = p.Force
		mass := float64(p.Mass())
		rf := geom.Vec3{}
		for k := 0; k < 3; k++ {
			rf[k] = p.Position[k] + dt*p.Velocity[k] + halfDt2*p.Force[k]/mass
		}
		p.PrevPosition = p.Position
		p.Position = rf
	}
}

func (d *DPD) displaceVelocityUncorrected(particles []*particle.Particle) {
	dt := d.Dt
	for _, p := range particles {
		if p.Frozen {
			continue
		}
		d.vOld[p.Index] = p.Velocity
		mass := float64(p.Mass())
		fi := d.fOld[p.Index]
		vf := geom.Vec3{}
		for k := 0; k < 3; k++ {
			vf[k] = p.Velocity[k] + d.Lambda*dt*fi[k]/mass
		}
		p.Velocity = vf
	}
}

// correctDisplacedVelocity applies the velocity-Verlet corrector over
// every non-frozen particle and accumulates kinetic energy. The
// original's loop returns after its first iteration (a bug: every
// particle but the first is silently skipped); this sums over all
// non-frozen particles, matching
// spec.md §4.4's "Accumulate kinetic energy = 1/2 sum m_i |v_i|^2".
func (d *DPD) correctDisplacedVelocity(particles []*particle.Particle) (SimulationData, error) {
	dt := d.Dt
	var kinetic float64
	momentum := geom.Zero
	for _, p := range particles {
		if p.Frozen {
			continue
		}
		mass := float64(p.Mass())
		vi := d.vOld[p.Index]
		fi := d.fOld[p.Index]
		ff := p.Force
		vf := geom.Vec3{}
		for k := 0; k < 3; k++ {
			vf[k] = vi[k] + 0.5*dt*(fi[k]+ff[k])/mass
			if math.IsNaN(vf[k]) {
				return SimulationData{}, fmt.Errorf("dpd: non-finite velocity component for particle %s", p.ID)
			}
		}
		p.Velocity = vf
		kinetic += 0.5 * mass * geom.Dot(vf, vf)
		momentum = geom.AddScaled(momentum, mass, vf)
	}

	nDof := 3 * len(particles)
	temperature := 0.0
	if nDof > 0 {
		temperature = 2.0 * kinetic / (float64(nDof) * units.KB)
	}

	return SimulationData{
		Kinetic:       kinetic,
		TotalMomentum: geom.Norm(momentum),
		Temperature:   temperature,
	}, nil
}

// randomDissipativeForces adds the paired random and dissipative
// forces satisfying the fluctuation-dissipation relation over every
// pair in the current list.
func (d *DPD) randomDissipativeForces(particles []*particle.Particle) {
	sigma := math.Sqrt(2.0 * d.Gamma * units.KB * d.Temperature)
	factor := 1.0 / math.Sqrt(d.Dt)

	for _, pr := range d.List.Pairs {
		p1 := particles[pr.I]
		p2 := particles[pr.J]

		rij := d.BC.Apply(p1.Position, p2.Position)
		dist := geom.Norm(rij)
		if dist == 0 {
			continue
		}
		uv := geom.Scale(1.0/dist, rij)
		v := geom.Sub(p1.Velocity, p2.Velocity)

		ip := geom.Dot(uv, v)
		t := 1.0 - dist/d.Cutoff
		if t < 0.0 {
			t = 0.0
		}
		wD := t * t
		wR := math.Sqrt(wD)
		w := rnd.Normal(0.0, 1.0)

		total := geom.Zero
		for k := 0; k < 3; k++ {
			randomF := sigma * wR * w * factor * uv[k]
			dissipativeF := -d.Gamma * wD * ip * uv[k]
			total[k] = randomF + dissipativeF
		}

		p1.AddForce(total)
		p2.AddForce(geom.Scale(-1, total))
	}
}
