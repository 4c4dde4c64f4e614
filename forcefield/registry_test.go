package forcefield

import (
	"testing"

	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

func particlePair(specA, specB string) (*particle.Particle, *particle.Particle) {
	pi := &particle.Particle{Spec: &particle.Spec{Name: specA, Mass: units.Mass(1)}}
	pj := &particle.Particle{Spec: &particle.Spec{Name: specB, Mass: units.Mass(1)}}
	return pi, pj
}

func TestRegistrySymmetricLookup(t *testing.T) {
	r := NewRegistry()
	r.Set(FamilyLJ, "Na", "Cl", Params{C12: 1, C6: 2})

	pi, pj := particlePair("Na", "Cl")
	got, ok := r.Lookup(FamilyLJ, pi, pj)
	if !ok {
		t.Fatal("expected lookup (Na,Cl) to hit")
	}
	if got.C12 != 1 || got.C6 != 2 {
		t.Fatalf("unexpected params: %+v", got)
	}

	reversed, ok := r.Lookup(FamilyLJ, pj, pi)
	if !ok || reversed != got {
		t.Fatalf("lookup is not symmetric: (Cl,Na) got %+v, ok=%v", reversed, ok)
	}
}

func TestRegistryMissingEntry(t *testing.T) {
	r := NewRegistry()
	pi, pj := particlePair("A", "B")
	if _, ok := r.Lookup(FamilyLJ, pi, pj); ok {
		t.Fatal("expected no entry for an unregistered pair")
	}
}

func TestRegistryFamiliesAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.Set(FamilyLJ, "A", "A", Params{C12: 1})
	r.Set(FamilySF, "A", "A", Params{EpsR: 80})

	if _, ok := r.LookupByName(FamilyRF, "A", "A"); ok {
		t.Fatal("expected no RF entry when only LJ and SF were registered")
	}
	lj, ok := r.LookupByName(FamilyLJ, "A", "A")
	if !ok || lj.C12 != 1 {
		t.Fatalf("LJ entry missing or wrong: %+v ok=%v", lj, ok)
	}
	sf, ok := r.LookupByName(FamilySF, "A", "A")
	if !ok || sf.EpsR != 80 {
		t.Fatalf("SF entry missing or wrong: %+v ok=%v", sf, ok)
	}
}
