package integrators

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/rnd"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/pairlist"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

func finite(v geom.Vec3) bool {
	for k := 0; k < 3; k++ {
		if math.IsNaN(v[k]) || math.IsInf(v[k], 0) {
			return false
		}
	}
	return true
}

// TestDPDSingleStepSmoke is spec.md §8's concrete scenario: one pair of
// identical particles at distance 0.8 with rc=1.0, gamma=4.5, T=1.0,
// dt=0.04, lambda=0.5, m=1, zero initial velocity, deterministic RNG
// seed. It asserts the step completes and produces finite, physically
// sane diagnostics rather than pinning exact stochastic values, since
// this port's RNG stream is not guaranteed bit-identical to the
// original's.
func TestDPDSingleStepSmoke(t *testing.T) {
	rnd.Init(42)

	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	sys := particle.NewSystem(box)
	spec := &particle.Spec{Name: "bead", Mass: units.Mass(1)}
	sys.AddFree(&particle.Particle{Spec: spec, Position: geom.Vec3{0, 0, 0}})
	sys.AddFree(&particle.Particle{Spec: spec, Position: geom.Vec3{0.8, 0, 0}})

	boundary := bc.PBCFull{Box: box}
	list := pairlist.NewList(1)
	list.Rebuild(sys, true)
	driver := &pairlist.Driver{List: list}

	displacer, err := NewDPD(driver, nil, list, boundary, 0.04, 1.0, 4.5, 0.5, 1.0)
	if err != nil {
		t.Fatalf("NewDPD: %v", err)
	}

	diag, err := displacer.Displace(sys)
	if err != nil {
		t.Fatalf("Displace: %v", err)
	}

	if diag.Kinetic < 0 || math.IsNaN(diag.Kinetic) {
		t.Fatalf("kinetic energy should be non-negative and finite: got %v", diag.Kinetic)
	}
	if diag.Temperature < 0 || math.IsNaN(diag.Temperature) {
		t.Fatalf("temperature should be non-negative and finite: got %v", diag.Temperature)
	}
	if math.IsNaN(diag.TotalMomentum) || diag.TotalMomentum < 0 {
		t.Fatalf("total momentum norm should be non-negative and finite: got %v", diag.TotalMomentum)
	}

	for i, p := range sys.Particles() {
		if !finite(p.Position) {
			t.Fatalf("particle %d position not finite: %v", i, p.Position)
		}
		if !finite(p.Velocity) {
			t.Fatalf("particle %d velocity not finite: %v", i, p.Velocity)
		}
	}
}

// TestDPDMissingInteractorErrors checks the constructor's validation.
func TestDPDMissingInteractorErrors(t *testing.T) {
	box := geom.Box{Lx: 10, Ly: 10, Lz: 10}
	list := pairlist.NewList(1)
	if _, err := NewDPD(nil, nil, list, bc.PBCFull{Box: box}, 0.04, 1.0, 4.5, 0.5, 1.0); err == nil {
		t.Fatal("expected an error for a missing interactor")
	}
}

func TestDPDMissingBoundaryErrors(t *testing.T) {
	list := pairlist.NewList(1)
	driver := &pairlist.Driver{List: list}
	if _, err := NewDPD(driver, nil, list, nil, 0.04, 1.0, 4.5, 0.5, 1.0); err == nil {
		t.Fatal("expected an error for missing boundary conditions")
	}
}

// TestDPDFrozenParticleDoesNotMove checks the displacer never advances
// a frozen particle's position or velocity.
func TestDPDFrozenParticleDoesNotMove(t *testing.T) {
	rnd.Init(7)

	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	sys := particle.NewSystem(box)
	spec := &particle.Spec{Name: "bead", Mass: units.Mass(1)}
	frozen := &particle.Particle{Spec: spec, Position: geom.Vec3{0, 0, 0}, Frozen: true}
	mobile := &particle.Particle{Spec: spec, Position: geom.Vec3{0.8, 0, 0}}
	sys.AddFree(frozen)
	sys.AddFree(mobile)

	boundary := bc.PBCFull{Box: box}
	list := pairlist.NewList(1)
	list.Rebuild(sys, true)
	driver := &pairlist.Driver{List: list}

	displacer, err := NewDPD(driver, nil, list, boundary, 0.04, 1.0, 4.5, 0.5, 1.0)
	if err != nil {
		t.Fatalf("NewDPD: %v", err)
	}
	if _, err := displacer.Displace(sys); err != nil {
		t.Fatalf("Displace: %v", err)
	}

	if frozen.Position != (geom.Vec3{0, 0, 0}) {
		t.Fatalf("frozen particle moved: %v", frozen.Position)
	}
	if frozen.Velocity != geom.Zero {
		t.Fatalf("frozen particle gained velocity: %v", frozen.Velocity)
	}
}
