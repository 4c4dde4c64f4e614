package bem

import (
	"math"
	"testing"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/surface"
)

func TestLij0VanishesWhenDielectricsMatch(t *testing.T) {
	r := geom.Vec3{1, 0, 0}
	n := geom.Vec3{1, 0, 0}
	r0 := geom.Vec3{0, 0.5, 0.3}
	if got := Lij0(1.0, r, n, r0); got != 0 {
		t.Fatalf("Lij0 with epsRatio=1 should vanish identically: got %v", got)
	}
}

// TestFlatVertexNoReactionWhenDielectricsMatch exercises the BEM
// self-consistency invariant in its exact (zero-approximation-error)
// limit: when the solute and solvent share a permittivity, the
// double-layer kernel Lij0 is identically zero regardless of mesh
// geometry, so the surface matrix reduces to the identity and the
// reaction potential must be exactly zero everywhere.
func TestFlatVertexNoReactionWhenDielectricsMatch(t *testing.T) {
	poly, err := surface.Spherical(1.0, 60)
	if err != nil {
		t.Fatalf("Spherical: %v", err)
	}
	calc, err := NewFlatVertexCalculator(poly, 2.0, 2.0, 0.0)
	if err != nil {
		t.Fatalf("NewFlatVertexCalculator: %v", err)
	}
	if err := calc.SurfaceMatrix(); err != nil {
		t.Fatalf("SurfaceMatrix: %v", err)
	}

	positions := []geom.Vec3{{0, 0, 0}, {0.2, 0.1, 0}}
	charges := []float64{1.0, -1.0}
	if err := calc.RightHandSide(positions, charges); err != nil {
		t.Fatalf("RightHandSide: %v", err)
	}
	if err := calc.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	reaction := calc.ReactionPotentialSolute(positions)
	for i, phi := range reaction {
		if math.Abs(phi) > 1e-9 {
			t.Fatalf("reaction potential at point %d should vanish when eps_solute=eps_solvent: got %v", i, phi)
		}
	}
}

func TestRightHandSideValidatesLengths(t *testing.T) {
	nodes := []Node{{Position: geom.Vec3{1, 0, 0}, Index: 0}}
	if _, err := RightHandSide(nodes, []geom.Vec3{{0, 0, 0}}, nil, 80, 2); err == nil {
		t.Fatal("expected an error when positions and charges have different lengths")
	}
	if _, err := RightHandSide(nil, []geom.Vec3{{0, 0, 0}}, []float64{1}, 80, 2); err == nil {
		t.Fatal("expected an error for no collocation nodes")
	}
}

func TestNewDatasetValidatesArguments(t *testing.T) {
	if _, err := NewDataset(0, 80, 0, 10); err == nil {
		t.Fatal("expected an error for a nonpositive solute permittivity")
	}
	if _, err := NewDataset(2, 80, 0, 0); err == nil {
		t.Fatal("expected an error for a nonpositive collocation count")
	}
	d, err := NewDataset(2, 80, 0, 4)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	if d.Size() != 4 {
		t.Fatalf("Size: got %d want 4", d.Size())
	}
	if d.EpsRatio != 40 {
		t.Fatalf("EpsRatio: got %v want 40", d.EpsRatio)
	}
}

func TestFlatVertexCalculatorRejectsNilSurface(t *testing.T) {
	if _, err := NewFlatVertexCalculator(nil, 2, 80, 0); err == nil {
		t.Fatal("expected an error for a nil surface")
	}
}
