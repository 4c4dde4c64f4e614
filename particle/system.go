package particle

import "github.com/simploce/mesosim/geom"

// System owns all particles and groups of one simulation and the box
// they live in.
//
// The C++ original exposes a "doWithAll<T>(functor)" contract that
// hands a closure a consistent (all, free, groups) snapshot. Go has no
// template-on-return-type equivalent, so System.DoWithAll returns the
// same triple directly; callers that used to write
//
//	doWithAll<void>([](auto& all, auto& free, auto& groups) {...})
//
// now just destructure the returned Snapshot.
type System struct {
	Box   geom.Box
	all   []*Particle
	free  []*Particle // not a member of any group
	groups []*Group
}

// NewSystem returns an empty system over the given box.
func NewSystem(box geom.Box) *System {
	return &System{Box: box}
}

// AddFree adds a particle that is not part of any group; its Index is
// set to its position in the system's particle array.
func (s *System) AddFree(p *Particle) {
	p.Index = len(s.all)
	s.all = append(s.all, p)
	s.free = append(s.free, p)
}

// AddGroup adds a bonded group; its member particles are appended to
// the system's particle array (and thus counted in "all") but not to
// "free".
func (s *System) AddGroup(g *Group) {
	for _, p := range g.Particles {
		p.Index = len(s.all)
		s.all = append(s.all, p)
	}
	s.groups = append(s.groups, g)
}

// Snapshot is the (all, free, groups) triple handed to callers that
// need a consistent view of the system's contents.
type Snapshot struct {
	All    []*Particle
	Free   []*Particle
	Groups []*Group
}

// DoWithAll returns a consistent snapshot of the system's particles and
// groups.
func (s *System) DoWithAll() Snapshot {
	return Snapshot{All: s.all, Free: s.free, Groups: s.groups}
}

// NumParticles returns the total number of particles in the system.
func (s *System) NumParticles() int {
	return len(s.all)
}

// Particles returns every particle in index order.
func (s *System) Particles() []*Particle {
	return s.all
}

// Groups returns every bonded group.
func (s *System) Groups() []*Group {
	return s.groups
}

// ResetForces zeroes every particle's current force (rolling the old
// value into PrevForce), in preparation for a new force evaluation.
func (s *System) ResetForces() {
	for _, p := range s.all {
		p.ResetForce()
	}
}

// TotalCharge returns the sum of charges of the non-frozen particles.
func (s *System) TotalCharge() float64 {
	var q float64
	for _, p := range s.all {
		if !p.Frozen {
			q += float64(p.Charge())
		}
	}
	return q
}
