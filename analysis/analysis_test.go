package analysis

import (
	"math"
	"testing"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

func TestNewPairCorrelationValidatesArguments(t *testing.T) {
	box := geom.Box{Lx: 10, Ly: 10, Lz: 10}
	boundary := bc.PBCFull{Box: box}
	if _, err := NewPairCorrelation(0.1, 5, "", "B", boundary); err == nil {
		t.Fatal("expected an error for an empty specification name")
	}
	if _, err := NewPairCorrelation(0.1, 5, "A", "B", nil); err == nil {
		t.Fatal("expected an error for missing boundary conditions")
	}
	if _, err := NewPairCorrelation(0, 5, "A", "B", boundary); err == nil {
		t.Fatal("expected an error for a nonpositive bin size")
	}
}

func TestPairCorrelationNoMatchingSpecErrors(t *testing.T) {
	box := geom.Box{Lx: 10, Ly: 10, Lz: 10}
	boundary := bc.PBCFull{Box: box}
	g, err := NewPairCorrelation(0.1, 5, "A", "B", boundary)
	if err != nil {
		t.Fatalf("NewPairCorrelation: %v", err)
	}
	sys := particle.NewSystem(box)
	sys.AddFree(&particle.Particle{Spec: &particle.Spec{Name: "C"}, Position: geom.Zero})
	if err := g.Accumulate(sys); err == nil {
		t.Fatal("expected an error when neither specification is present")
	}
}

func TestPairCorrelationCountsPairsWithinCutoff(t *testing.T) {
	box := geom.Box{Lx: 100, Ly: 100, Lz: 100}
	boundary := bc.PBCFull{Box: box}
	g, err := NewPairCorrelation(0.5, 5.0, "A", "B", boundary)
	if err != nil {
		t.Fatalf("NewPairCorrelation: %v", err)
	}
	sys := particle.NewSystem(box)
	sys.AddFree(&particle.Particle{Spec: &particle.Spec{Name: "A"}, Position: geom.Vec3{0, 0, 0}})
	sys.AddFree(&particle.Particle{Spec: &particle.Spec{Name: "B"}, Position: geom.Vec3{1.2, 0, 0}})

	if err := g.Accumulate(sys); err != nil {
		t.Fatalf("Accumulate: %v", err)
	}
	results := g.Results()
	index := int(1.2 / 0.5)
	if results[index].Y <= 0 {
		t.Fatalf("g(r) should be positive in the bin containing the A-B pair: got %v", results[index].Y)
	}
}

func TestNewDipoleMomentValidatesArguments(t *testing.T) {
	if _, err := NewDipoleMoment(0, 0.1, 1.0, 0); err == nil {
		t.Fatal("expected an error for a nonpositive time step")
	}
	if _, err := NewDipoleMoment(0.01, 0, 1.0, 0); err == nil {
		t.Fatal("expected an error for a nonpositive bin size")
	}
}

func TestDipoleMomentAccumulatesNetZeroForNeutralSystem(t *testing.T) {
	box := geom.Box{Lx: 10, Ly: 10, Lz: 10}
	dm, err := NewDipoleMoment(0.01, 0.1, 5.0, 0)
	if err != nil {
		t.Fatalf("NewDipoleMoment: %v", err)
	}
	sys := particle.NewSystem(box)
	a := &particle.Particle{Spec: &particle.Spec{Name: "A", Charge: units.Charge(1)}, Position: geom.Vec3{1, 0, 0}}
	b := &particle.Particle{Spec: &particle.Spec{Name: "B", Charge: units.Charge(-1)}, Position: geom.Vec3{1, 0, 0}}
	sys.AddFree(a)
	sys.AddFree(b)

	dm.Accumulate(sys)
	samples := dm.Samples()
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if geom.Norm(samples[0].Moment) > 1e-12 {
		t.Fatalf("coincident opposite charges should give zero dipole moment: got %v", samples[0].Moment)
	}
	if samples[0].M2 != 0 {
		t.Fatalf("M2 should be zero: got %v", samples[0].M2)
	}
}

func TestNewMSDValidatesArguments(t *testing.T) {
	if _, err := NewMSD(0, 1.0); err == nil {
		t.Fatal("expected an error for a nonpositive time step")
	}
	if _, err := NewMSD(0.01, 0); err == nil {
		t.Fatal("expected an error for a nonpositive window")
	}
}

func TestMSDZeroForStationaryGroup(t *testing.T) {
	box := geom.Box{Lx: 10, Ly: 10, Lz: 10}
	msd, err := NewMSD(0.01, 0.1)
	if err != nil {
		t.Fatalf("NewMSD: %v", err)
	}
	sys := particle.NewSystem(box)
	a := &particle.Particle{Spec: &particle.Spec{Name: "A"}, Position: geom.Vec3{1, 1, 1}}
	b := &particle.Particle{Spec: &particle.Spec{Name: "B"}, Position: geom.Vec3{2, 1, 1}}
	sys.AddGroup(particle.NewGroup(a, b))

	for i := 0; i < 5; i++ {
		msd.Accumulate(sys)
	}
	for _, r := range msd.Results() {
		if math.Abs(r.Y) > 1e-12 {
			t.Fatalf("a group that never moves should have zero MSD at every lag: got %v at t=%v", r.Y, r.X)
		}
	}
}

func TestMSDGrowsForMovingGroup(t *testing.T) {
	box := geom.Box{Lx: 1000, Ly: 1000, Lz: 1000}
	msd, err := NewMSD(1.0, 3.0)
	if err != nil {
		t.Fatalf("NewMSD: %v", err)
	}
	sys := particle.NewSystem(box)
	a := &particle.Particle{Spec: &particle.Spec{Name: "A", Mass: units.Mass(1)}, Position: geom.Vec3{0, 0, 0}}
	b := &particle.Particle{Spec: &particle.Spec{Name: "B", Mass: units.Mass(1)}, Position: geom.Vec3{1, 0, 0}}
	group := particle.NewGroup(a, b)
	sys.AddGroup(group)

	for i := 0; i < 4; i++ {
		shift := float64(i)
		a.Position = geom.Vec3{shift, 0, 0}
		b.Position = geom.Vec3{shift + 1, 0, 0}
		msd.Accumulate(sys)
	}

	results := msd.Results()
	var sawPositive bool
	for _, r := range results {
		if r.Y > 0 {
			sawPositive = true
		}
	}
	if !sawPositive {
		t.Fatal("a steadily translating group should show a positive MSD at some lag")
	}
}
