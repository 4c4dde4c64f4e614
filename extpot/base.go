package extpot

import (
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// Potential is an external force applied identically to every particle
// in the system. Its Eval result is not assigned to the particle; the
// caller accumulates it. Grounded on
// original_source/simulation/include/simploce/potentials/
// external-potential.hpp.
type Potential interface {
	Eval(p *particle.Particle) (energy float64, force geom.Vec3)

	// Initialize prepares the potential from the current system state,
	// e.g. to seed an accumulator (spec.md §5.5's virtual planes).
	Initialize(s *particle.System)
	// Update refreshes the potential's state after a full system step.
	Update(s *particle.System)
	// UpdateParticle refreshes the potential's state after a single
	// particle's proposed move (used by Monte Carlo integrators).
	UpdateParticle(p *particle.Particle)
	// Fallback reverts the last Update/UpdateParticle, for a rejected
	// Monte Carlo move.
	Fallback()
	// Complete finalizes the potential at the end of a run, e.g.
	// writing accumulated state to disk.
	Complete() error
}

// Base implements every Potential lifecycle hook as a no-op, matching
// original_source's external_potential_impl. Potentials with no state
// (UniformSurfaceChargeDensity, Voltage, Wall, PressureGradient, ...)
// embed Base and only define Eval.
type Base struct{}

func (Base) Initialize(*particle.System)        {}
func (Base) Update(*particle.System)            {}
func (Base) UpdateParticle(*particle.Particle)  {}
func (Base) Fallback()                          {}
func (Base) Complete() error                    { return nil }
