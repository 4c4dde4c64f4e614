// Package forcefield provides the per-pair parameter registry: lookup
// of potential parameters keyed by an unordered (specA,specB) pair.
//
// Grounded on gofem's mdl/solid model-registry pattern (parameters
// looked up through a name-keyed map, frozen after load) and
// original_source/simulation/include/simploce/simulation/forces.hpp.
package forcefield

import "github.com/simploce/mesosim/particle"

// PairKey canonically orders two spec names so lookup is symmetric in
// the pair.
type PairKey struct {
	A, B string
}

func canonical(a, b string) PairKey {
	if a <= b {
		return PairKey{a, b}
	}
	return PairKey{b, a}
}

// Params is a named set of parameters for one potential family and one
// spec pair. The concrete fields used depend on the potential; this is
// a generic tuple so the registry stays family-agnostic (a single
// gofem-style allocator map per family interprets the tuple it needs).
type Params struct {
	// C12, C6 are the LJ-style repulsive/attractive coefficients.
	C12, C6 float64
	// Cutoff is the pair potential's cutoff radius (nm). The potentials
	// that read it cap it at half the smallest box edge, and use that
	// half edge when Cutoff is 0.
	Cutoff float64
	// EpsR is the relative permittivity to use for this pair. It is
	// used as given; the registry has no default for a zero value.
	EpsR float64
	// Kappa is the inverse Debye length (1/nm) for this pair. RF and
	// LJRF take kappa from their own Kappa field and do not read this
	// one.
	Kappa float64
	// EpsOutside is the relative permittivity of the continuum beyond
	// the cutoff, used by the reaction-field correction constant.
	EpsOutside float64
	// K, R0 are harmonic-bond parameters.
	K, R0 float64
	// A is the soft-repulsion amplitude.
	A float64
	// SigmaI, SigmaJ are Gaussian-charge widths.
	SigmaI, SigmaJ float64
	// SphereRadius is a solid-sphere radius for this pair.
	// SolidSphereDSF takes its radius from its own Radius field and
	// does not read this one.
	SphereRadius float64
}

// Family identifies a potential family so one registry can hold
// parameters for several families at once, exactly like gofem's
// per-model-name allocator map.
type Family string

const (
	FamilyLJ       Family = "lj"
	FamilySF       Family = "sf"
	FamilySC       Family = "sc"
	FamilyRF       Family = "rf"
	FamilyLJRF     Family = "lj-rf"
	FamilyLJSF     Family = "lj-sf"
	FamilyHSSF     Family = "hs-sf"
	FamilyHSSC     Family = "hs-sc"
	FamilyHSLekner Family = "hs-lekner"
	FamilyHP       Family = "hp"
	FamilyHAHP     Family = "ha-hp"
	FamilyHAQP     Family = "ha-qp"
	FamilySR       Family = "sr"
	FamilyHPSR     Family = "hp-sr"
	FamilyGaussSF  Family = "gauss-sf"
	FamilyGaussSFSR Family = "gauss-sf-sr"
	FamilySolidDSF Family = "solid-sphere-dsf"
	FamilyLekner   Family = "lekner"
)

// Registry maps (family, unordered spec pair) to Params. Frozen after
// loading in the sense that no further mutation is expected once a
// simulation starts; the type itself does not enforce immutability,
// matching gofem's own registries (convention, not compiler-enforced).
type Registry struct {
	table map[Family]map[PairKey]Params
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{table: make(map[Family]map[PairKey]Params)}
}

// Set registers parameters for a family and spec pair. Lookup is
// symmetric: Set(fam, "A", "B", p) and Set(fam, "B", "A", p) register
// the same entry.
func (r *Registry) Set(fam Family, specA, specB string, p Params) {
	m, ok := r.table[fam]
	if !ok {
		m = make(map[PairKey]Params)
		r.table[fam] = m
	}
	m[canonical(specA, specB)] = p
}

// Lookup returns the parameters registered for (fam, pi.Spec, pj.Spec),
// and whether an entry exists.
func (r *Registry) Lookup(fam Family, pi, pj *particle.Particle) (Params, bool) {
	m, ok := r.table[fam]
	if !ok {
		return Params{}, false
	}
	p, ok := m[canonical(pi.Spec.Name, pj.Spec.Name)]
	return p, ok
}

// LookupByName is Lookup keyed directly by spec names, useful to
// configuration loaders and tests.
func (r *Registry) LookupByName(fam Family, specA, specB string) (Params, bool) {
	m, ok := r.table[fam]
	if !ok {
		return Params{}, false
	}
	p, ok := m[canonical(specA, specB)]
	return p, ok
}
