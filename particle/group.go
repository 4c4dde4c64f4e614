package particle

import "github.com/simploce/mesosim/geom"

// Group is an ordered list of particle references forming a bonded
// molecule. Used by bonded potentials and by reflection policies that
// must move correlated particles together (bc.ApplyToVelocities).
type Group struct {
	Particles []*Particle
}

// NewGroup returns a group over the given particles, in the given
// order.
func NewGroup(particles ...*Particle) *Group {
	return &Group{Particles: particles}
}

// Position returns the mass-weighted geometric center of the group.
func (g *Group) Position() geom.Vec3 {
	var totalMass float64
	center := geom.Zero
	for _, p := range g.Particles {
		m := float64(p.Mass())
		center = geom.Add(center, geom.Scale(m, p.Position))
		totalMass += m
	}
	if totalMass == 0 {
		return geom.Zero
	}
	return geom.Scale(1.0/totalMass, center)
}
