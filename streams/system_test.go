package streams

import (
	"bytes"
	"testing"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

func testCatalog() *particle.SpecCatalog {
	c := particle.NewSpecCatalog()
	c.Add(&particle.Spec{Name: "W", Mass: units.Mass(18.0), Charge: units.Charge(0), Radius: units.Length(0.15)})
	c.Add(&particle.Spec{Name: "Na", Mass: units.Mass(23.0), Charge: units.Charge(1), Radius: units.Length(0.1), Protonatable: false})
	return c
}

func TestSystemRoundTrip(t *testing.T) {
	catalog := testCatalog()
	sys := particle.NewSystem(geom.Box{Lx: 10, Ly: 10, Lz: 10})

	free := &particle.Particle{ID: "1", Name: "ion", Spec: catalog.Lookup("Na"),
		Position: geom.Vec3{1, 2, 3}, Velocity: geom.Vec3{0.1, 0.2, 0.3}}
	sys.AddFree(free)

	a := &particle.Particle{ID: "2", Name: "w1", Spec: catalog.Lookup("W"), Position: geom.Vec3{4, 5, 6}}
	b := &particle.Particle{ID: "3", Name: "w2", Spec: catalog.Lookup("W"), Position: geom.Vec3{7, 8, 9}}
	sys.AddGroup(particle.NewGroup(a, b))

	var buf bytes.Buffer
	if err := WriteSystem(&buf, sys); err != nil {
		t.Fatalf("WriteSystem: %v", err)
	}

	got, err := ReadSystem(&buf, catalog)
	if err != nil {
		t.Fatalf("ReadSystem: %v", err)
	}

	if got.NumParticles() != sys.NumParticles() {
		t.Fatalf("particle count: got %d want %d", got.NumParticles(), sys.NumParticles())
	}
	if len(got.Groups()) != 1 || len(got.Groups()[0].Particles) != 2 {
		t.Fatalf("groups did not round-trip: %+v", got.Groups())
	}
	if len(got.Groups()[0].Particles[0].ID) == 0 {
		t.Fatal("group member lost its particle identity")
	}
	for i, p := range got.Particles() {
		want := sys.Particles()[i]
		if p.Position != want.Position || p.Velocity != want.Velocity {
			t.Fatalf("particle %d did not round-trip: got %+v want %+v", i, p, want)
		}
		if p.Spec.Name != want.Spec.Name {
			t.Fatalf("particle %d spec did not round-trip: got %q want %q", i, p.Spec.Name, want.Spec.Name)
		}
	}
}

func TestReadSystemUnknownSpec(t *testing.T) {
	catalog := testCatalog()
	var buf bytes.Buffer
	buf.WriteString("10 10 10 1\n")
	buf.WriteString("x Bogus id1 0 0 0 0 0 0\n")
	buf.WriteString("0\n")
	if _, err := ReadSystem(&buf, catalog); err == nil {
		t.Fatal("expected an error for an unregistered spec name")
	}
}
