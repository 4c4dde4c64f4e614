package config

import (
	"strings"
	"testing"
)

const exampleConfig = `# simulation parameters
simulation.timestep = 0.04
simulation.temperature = 1.0
simulation.gamma = 4.5
simulation.dpd.lambda = 0.5

forces.nb.cutoff = 1.0
bem.solvent.eps = 80.0
bem.solute.eps = 2.0
bem.solvent.ka = 0.1
`

func TestReadParams(t *testing.T) {
	p, err := ReadParams(strings.NewReader(exampleConfig))
	if err != nil {
		t.Fatalf("ReadParams: %v", err)
	}
	if v := p.MustGet(SimulationTimestep); v != 0.04 {
		t.Fatalf("timestep: got %v want 0.04", v)
	}
	if v := p.MustGet(BEMSolventEps); v != 80.0 {
		t.Fatalf("bem.solvent.eps: got %v want 80.0", v)
	}
	if _, ok := p.Get("nonexistent.key"); ok {
		t.Fatal("Get should report false for a missing key")
	}
}

func TestReadParamsMalformedLine(t *testing.T) {
	if _, err := ReadParams(strings.NewReader("not a key value line\n")); err == nil {
		t.Fatal("expected an error for a line without '='")
	}
}

func TestRequireAllPanicsOnMissing(t *testing.T) {
	p := Params{SimulationTimestep: 0.04}
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected RequireAll to panic via chk.Panic on a missing key")
		}
	}()
	p.RequireAll(SimulationTimestep, BEMSolventEps)
}

func TestParamsString(t *testing.T) {
	p := Params{SimulationTimestep: 0.04, BEMSolventEps: 80.0}
	s := p.String()
	if !strings.Contains(s, "bem.solvent.eps") || !strings.Contains(s, "simulation.timestep") {
		t.Fatalf("String missing expected keys: %q", s)
	}
}
