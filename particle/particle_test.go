package particle

import (
	"testing"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/units"
)

func TestSpecCatalogAddAndLookup(t *testing.T) {
	c := NewSpecCatalog()
	c.Add(&Spec{Name: "Na", Mass: units.Mass(23), Charge: units.Charge(1)})
	if got := c.Lookup("Na"); got == nil || got.Mass != units.Mass(23) {
		t.Fatalf("Lookup: got %+v", got)
	}
	if got := c.Lookup("missing"); got != nil {
		t.Fatalf("Lookup of unregistered name should be nil, got %+v", got)
	}
	names := c.Names()
	if len(names) != 1 || names[0] != "Na" {
		t.Fatalf("Names: got %v", names)
	}
}

func TestSpecCatalogDuplicatePanics(t *testing.T) {
	c := NewSpecCatalog()
	c.Add(&Spec{Name: "Na"})
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic registering a duplicate spec name")
		}
	}()
	c.Add(&Spec{Name: "Na"})
}

func TestParticleMassChargeMomentum(t *testing.T) {
	spec := &Spec{Name: "Na", Mass: units.Mass(2), Charge: units.Charge(1)}
	p := &Particle{Spec: spec, Velocity: geom.Vec3{1, 2, 3}}
	if p.Mass() != units.Mass(2) {
		t.Fatalf("Mass: got %v", p.Mass())
	}
	if p.Charge() != units.Charge(1) {
		t.Fatalf("Charge: got %v", p.Charge())
	}
	if got := p.Momentum(); got != (geom.Vec3{2, 4, 6}) {
		t.Fatalf("Momentum: got %v", got)
	}
}

func TestResetForceRotatesIntoPrevious(t *testing.T) {
	p := &Particle{Spec: &Spec{Name: "X"}, Force: geom.Vec3{1, 2, 3}}
	p.ResetForce()
	if p.PrevForce != (geom.Vec3{1, 2, 3}) {
		t.Fatalf("PrevForce: got %v", p.PrevForce)
	}
	if p.Force != geom.Zero {
		t.Fatalf("Force should be reset to zero, got %v", p.Force)
	}
}

func TestAddForceAccumulates(t *testing.T) {
	p := &Particle{Spec: &Spec{Name: "X"}}
	p.AddForce(geom.Vec3{1, 0, 0})
	p.AddForce(geom.Vec3{0, 1, 0})
	if p.Force != (geom.Vec3{1, 1, 0}) {
		t.Fatalf("AddForce: got %v", p.Force)
	}
}

func TestGroupPosition(t *testing.T) {
	spec := &Spec{Name: "bead", Mass: units.Mass(1)}
	a := &Particle{Spec: spec, Position: geom.Vec3{0, 0, 0}}
	b := &Particle{Spec: spec, Position: geom.Vec3{2, 0, 0}}
	g := NewGroup(a, b)
	if got := g.Position(); got != (geom.Vec3{1, 0, 0}) {
		t.Fatalf("Position: got %v want midpoint", got)
	}
}

func TestSystemAddFreeAndGroup(t *testing.T) {
	box := geom.Box{Lx: 10, Ly: 10, Lz: 10}
	sys := NewSystem(box)
	spec := &Spec{Name: "bead", Mass: units.Mass(1), Charge: units.Charge(1)}

	free := &Particle{Spec: spec}
	sys.AddFree(free)
	if free.Index != 0 {
		t.Fatalf("free particle index: got %d want 0", free.Index)
	}

	a := &Particle{Spec: spec}
	b := &Particle{Spec: spec}
	sys.AddGroup(NewGroup(a, b))
	if a.Index != 1 || b.Index != 2 {
		t.Fatalf("group member indices: got %d,%d want 1,2", a.Index, b.Index)
	}

	if sys.NumParticles() != 3 {
		t.Fatalf("NumParticles: got %d want 3", sys.NumParticles())
	}
	if len(sys.Groups()) != 1 {
		t.Fatalf("Groups: got %d want 1", len(sys.Groups()))
	}

	snap := sys.DoWithAll()
	if len(snap.All) != 3 || len(snap.Free) != 1 || len(snap.Groups) != 1 {
		t.Fatalf("Snapshot shape: %+v", snap)
	}

	if got := sys.TotalCharge(); got != 3 {
		t.Fatalf("TotalCharge: got %v want 3", got)
	}

	free.Frozen = true
	if got := sys.TotalCharge(); got != 2 {
		t.Fatalf("TotalCharge should exclude frozen particles: got %v want 2", got)
	}
}

func TestSystemResetForces(t *testing.T) {
	sys := NewSystem(geom.Box{Lx: 1, Ly: 1, Lz: 1})
	spec := &Spec{Name: "bead", Mass: units.Mass(1)}
	p := &Particle{Spec: spec, Force: geom.Vec3{1, 2, 3}}
	sys.AddFree(p)
	sys.ResetForces()
	if p.Force != geom.Zero {
		t.Fatalf("ResetForces left a nonzero force: %v", p.Force)
	}
	if p.PrevForce != (geom.Vec3{1, 2, 3}) {
		t.Fatalf("ResetForces did not roll the old force into PrevForce: %v", p.PrevForce)
	}
}
