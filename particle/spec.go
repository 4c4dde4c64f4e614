// Package particle holds the particle data model: species
// specifications, particles, bonded groups and the owning system.
//
// Grounded on original_source/particles/include/simploce/particle/
// particle.hpp and particle-system.hpp.
package particle

import "github.com/simploce/mesosim/units"

// Spec is the constant per-species data, never mutated after
// registration.
type Spec struct {
	Name          string
	Mass          units.Mass
	Charge        units.Charge
	Radius        units.Length
	Protonatable  bool
}

// SpecCatalog is a registry of particle specifications keyed by name.
type SpecCatalog struct {
	specs map[string]*Spec
}

// NewSpecCatalog returns an empty catalog.
func NewSpecCatalog() *SpecCatalog {
	return &SpecCatalog{specs: make(map[string]*Spec)}
}

// Add registers a spec. Panics if the name is already registered, since
// a duplicated species name is a configuration error (fatal at
// startup, per spec.md §7).
func (c *SpecCatalog) Add(s *Spec) {
	if _, ok := c.specs[s.Name]; ok {
		panic("particle: duplicate spec name " + s.Name)
	}
	c.specs[s.Name] = s
}

// Lookup returns the spec registered under name, or nil.
func (c *SpecCatalog) Lookup(name string) *Spec {
	return c.specs[name]
}

// Names returns every registered spec name.
func (c *SpecCatalog) Names() []string {
	names := make([]string, 0, len(c.specs))
	for n := range c.specs {
		names = append(names, n)
	}
	return names
}
