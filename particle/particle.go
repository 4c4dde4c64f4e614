package particle

import (
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/units"
)

// Particle is a single simulation particle. Index uniquely addresses
// the particle within its owning System for the system's lifetime.
type Particle struct {
	ID    string
	Index int
	Name  string
	Spec  *Spec

	Position     geom.Vec3
	PrevPosition geom.Vec3
	Velocity     geom.Vec3
	Force        geom.Vec3
	PrevForce    geom.Vec3

	Frozen bool
}

// Mass returns the particle's mass from its spec.
func (p *Particle) Mass() units.Mass {
	return p.Spec.Mass
}

// Charge returns the particle's charge from its spec.
func (p *Particle) Charge() units.Charge {
	return p.Spec.Charge
}

// Momentum returns the particle's linear momentum m*v, derived from
// mass and velocity.
func (p *Particle) Momentum() geom.Vec3 {
	return geom.Scale(float64(p.Mass()), p.Velocity)
}

// ResetForce zeroes the current force, moving the previous value into
// PrevForce first (used by integrators between steps).
func (p *Particle) ResetForce() {
	p.PrevForce = p.Force
	p.Force = geom.Zero
}

// AddForce accumulates f into the particle's current force. Frozen
// particles still accumulate force (so diagnostics remain meaningful)
// but integrators must never consume it to move a frozen particle.
func (p *Particle) AddForce(f geom.Vec3) {
	p.Force = geom.Add(p.Force, f)
}
