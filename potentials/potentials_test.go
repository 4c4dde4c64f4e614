package potentials

import (
	"math"
	"testing"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

func pair(ri, rj geom.Vec3, qi, qj float64) (*particle.Particle, *particle.Particle) {
	pi := &particle.Particle{Spec: &particle.Spec{Name: "A", Charge: units.Charge(qi)}, Position: ri}
	pj := &particle.Particle{Spec: &particle.Spec{Name: "A", Charge: units.Charge(qj)}, Position: rj}
	return pi, pj
}

// TestSFVanishesAtCutoff is spec.md §8's cutoff-continuity invariant
// applied to SF: energy and force both vanish exactly at rc, by
// construction of the shifted-force form.
func TestSFVanishesAtCutoff(t *testing.T) {
	registry := forcefield.NewRegistry()
	rc := 2.5
	registry.Set(forcefield.FamilySF, "A", "A", forcefield.Params{EpsR: 1, Cutoff: rc})
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	p := SF{BC: bc.PBCFull{Box: box}, Box: box, Registry: registry}

	pi, pj := pair(geom.Vec3{0, 0, 0}, geom.Vec3{rc, 0, 0}, 1, 1)
	energy, force := p.Eval(pi, pj)
	if math.Abs(energy) > 1e-9 {
		t.Fatalf("energy at cutoff: got %v want ~0", energy)
	}
	if geom.Norm(force) > 1e-9 {
		t.Fatalf("force at cutoff: got %v want ~0", force)
	}
}

// TestSFZeroChargeIsZeroEverywhere is the "shift LJ via SF (eps_r=1,
// q=0): same" half of spec.md §8 scenario 1 — a q=0 SF pair
// contributes nothing to energy or force at any separation.
func TestSFZeroChargeIsZeroEverywhere(t *testing.T) {
	registry := forcefield.NewRegistry()
	registry.Set(forcefield.FamilySF, "A", "A", forcefield.Params{EpsR: 1, Cutoff: 2.5})
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	p := SF{BC: bc.PBCFull{Box: box}, Box: box, Registry: registry}

	pi, pj := pair(geom.Vec3{0, 0, 0}, geom.Vec3{2.5, 0, 0}, 0, 0)
	energy, force := p.Eval(pi, pj)
	if energy != 0 || force != geom.Zero {
		t.Fatalf("q=0 pair should contribute nothing: energy=%v force=%v", energy, force)
	}
}

// TestHarmonicBondScenario is spec.md §8 scenario 2: k=1000
// kJ/(mol nm^2), r0=0.2 nm, r=0.25 nm, displacement along x. Expect
// energy = 0.5*1000*(0.05)^2 = 1.25 kJ/mol; force on particle 1 =
// -1000*0.05 = -50 kJ/(mol nm) along rij = r1-r2, i.e. +50 in +x,
// toward particle 2.
func TestHarmonicBondScenario(t *testing.T) {
	registry := forcefield.NewRegistry()
	registry.Set(forcefield.FamilyHP, "A", "A", forcefield.Params{K: 1000, R0: 0.2})
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	p := HP{BC: bc.PBCFull{Box: box}, Registry: registry}

	pi, pj := pair(geom.Vec3{0, 0, 0}, geom.Vec3{0.25, 0, 0}, 0, 0)
	energy, force := p.Eval(pi, pj)

	if math.Abs(energy-1.25) > 1e-9 {
		t.Fatalf("energy: got %v want 1.25", energy)
	}
	// rij = r1-r2 points in -x; force on particle 1 should point
	// toward particle 2 (+x, since it's stretched past r0): +50.
	if math.Abs(force[0]-50.0) > 1e-9 {
		t.Fatalf("force.x: got %v want 50 (toward particle 2)", force[0])
	}
	if force[1] != 0 || force[2] != 0 {
		t.Fatalf("force should be purely along x: got %v", force)
	}
}

// TestNewtonThirdLaw checks that every pair potential's force is
// unambiguous up to sign: evaluating the pair in reversed order
// produces the negated force (spec.md §8's Newton III invariant).
func TestNewtonThirdLaw(t *testing.T) {
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	boundary := bc.PBCFull{Box: box}
	registry := forcefield.NewRegistry()
	registry.Set(forcefield.FamilyLJ, "A", "A", forcefield.Params{C12: 1, C6: 1})
	registry.Set(forcefield.FamilyHP, "A", "A", forcefield.Params{K: 10, R0: 0.3})
	registry.Set(forcefield.FamilySC, "A", "A", forcefield.Params{EpsR: 1})

	cases := []Pair{
		LJ{BC: boundary, Registry: registry},
		HP{BC: boundary, Registry: registry},
		SC{BC: boundary, Registry: registry},
	}

	ri := geom.Vec3{0, 0, 0}
	rj := geom.Vec3{0.5, 0.1, -0.2}
	for _, pot := range cases {
		pi, pj := pair(ri, rj, 1, -1)
		e1, f1 := pot.Eval(pi, pj)
		e2, f2 := pot.Eval(pj, pi)
		if math.Abs(e1-e2) > 1e-9 {
			t.Errorf("%T: energy not symmetric: %v vs %v", pot, e1, e2)
		}
		sum := geom.Add(f1, f2)
		if geom.Norm(sum) > 1e-9 {
			t.Errorf("%T: forces do not cancel under relabeling: f1=%v f2=%v", pot, f1, f2)
		}
	}
}

func TestSRVanishesAtAndBeyondCutoff(t *testing.T) {
	registry := forcefield.NewRegistry()
	registry.Set(forcefield.FamilySR, "A", "A", forcefield.Params{A: 25})
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	p := SR{BC: bc.PBCFull{Box: box}, Cutoff: 1.0, Registry: registry}

	pi, pj := pair(geom.Vec3{0, 0, 0}, geom.Vec3{1.0, 0, 0}, 0, 0)
	energy, force := p.Eval(pi, pj)
	if energy != 0 || force != geom.Zero {
		t.Fatalf("at cutoff: energy=%v force=%v want 0,0", energy, force)
	}

	pi, pj = pair(geom.Vec3{0, 0, 0}, geom.Vec3{1.5, 0, 0}, 0, 0)
	energy, force = p.Eval(pi, pj)
	if energy != 0 || force != geom.Zero {
		t.Fatalf("beyond cutoff: energy=%v force=%v want 0,0", energy, force)
	}
}

func TestHAHPZeroBelowEquilibrium(t *testing.T) {
	registry := forcefield.NewRegistry()
	registry.Set(forcefield.FamilyHAHP, "A", "A", forcefield.Params{K: 500, R0: 0.3})
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	p := HAHP{BC: bc.PBCFull{Box: box}, Registry: registry}

	pi, pj := pair(geom.Vec3{0, 0, 0}, geom.Vec3{0.2, 0, 0}, 0, 0)
	energy, force := p.Eval(pi, pj)
	if energy != 0 || force != geom.Zero {
		t.Fatalf("HAHP below r0 should be zero: energy=%v force=%v", energy, force)
	}

	pi, pj = pair(geom.Vec3{0, 0, 0}, geom.Vec3{0.35, 0, 0}, 0, 0)
	energy, _ = p.Eval(pi, pj)
	if energy <= 0 {
		t.Fatalf("HAHP above r0 should be positive: energy=%v", energy)
	}
}

func TestHSSCReturnsLargeOnOverlap(t *testing.T) {
	registry := forcefield.NewRegistry()
	registry.Set(forcefield.FamilyHSSC, "A", "A", forcefield.Params{EpsR: 1})
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	p := HSSC{BC: bc.PBCFull{Box: box}, Registry: registry}

	pi := &particle.Particle{Spec: &particle.Spec{Name: "A", Charge: units.Charge(1), Radius: units.Length(0.5)}, Position: geom.Vec3{0, 0, 0}}
	pj := &particle.Particle{Spec: &particle.Spec{Name: "A", Charge: units.Charge(1), Radius: units.Length(0.5)}, Position: geom.Vec3{0.5, 0, 0}}

	energy, force := p.Eval(pi, pj)
	if energy != Large {
		t.Fatalf("overlapping hard spheres should report Large energy: got %v", energy)
	}
	if force != (geom.Vec3{Large, Large, Large}) {
		t.Fatalf("overlapping hard spheres should report Large force: got %v", force)
	}
}
