// Command simulate runs a DPD trajectory over an initial particle
// system, writing the resulting frames to a trajectory stream. Grounded
// on the teacher's own root main.go: stdlib flag parsing, no CLI
// framework, colour-coded progress through gosl/io, a single
// defer-recover turning a fatal chk.Panic into a non-zero exit code.
package main

import (
	"bytes"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/simploce/mesosim/bc"
	"github.com/simploce/mesosim/config"
	"github.com/simploce/mesosim/forcefield"
	"github.com/simploce/mesosim/integrators"
	"github.com/simploce/mesosim/pairlist"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/potentials"
	"github.com/simploce/mesosim/streams"
)

func main() {
	model := flag.String("model", "", "particle-system model file (required)")
	catalogFn := flag.String("catalog", "", "particle-spec catalog file (required)")
	configFn := flag.String("config", "", "configuration file (required)")
	out := flag.String("out", "", "trajectory output file (required)")
	steps := flag.Int("steps", 100, "number of DPD steps to run")
	skip := flag.Int("skip", 0, "number of initial frames to skip when reporting diagnostics")
	flag.Parse()

	exit := 0
	defer func() {
		if r := recover(); r != nil {
			io.Pfred("ERROR: %v\n", r)
			exit = 1
		}
		os.Exit(exit)
	}()

	if *model == "" || *catalogFn == "" || *configFn == "" || *out == "" {
		chk.Panic("simulate: -model, -catalog, -config and -out are all required")
	}

	io.Pf("mesosim simulate: %s over %d steps (skip=%d)\n", *model, *steps, *skip)

	catalogFile, err := os.Open(*catalogFn)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer catalogFile.Close()
	catalog, err := streams.ReadCatalog(catalogFile)
	if err != nil {
		chk.Panic("%v", err)
	}

	modelFile, err := os.Open(*model)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer modelFile.Close()
	sys, err := streams.ReadSystem(modelFile, catalog)
	if err != nil {
		chk.Panic("%v", err)
	}

	cfgFile, err := os.Open(*configFn)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer cfgFile.Close()
	params, err := config.ReadParams(cfgFile)
	if err != nil {
		chk.Panic("%v", err)
	}
	params.RequireAll(
		config.SimulationTimestep, config.SimulationTemperature,
		config.SimulationGamma, config.SimulationDPDLambda,
		config.ForcesNBCutoff,
	)

	registry := forcefield.NewRegistry()
	names := catalog.Names()
	for i := range names {
		for j := i; j < len(names); j++ {
			registry.Set(forcefield.FamilyLJ, names[i], names[j], forcefield.Params{C12: 1.0e-6, C6: 1.0e-3})
		}
	}

	boundary := bc.PBCFull{Box: sys.Box}
	list := pairlist.NewList(10)
	list.Rebuild(sys, true)
	driver := &pairlist.Driver{List: list}
	lj := potentials.LJ{BC: boundary, Registry: registry}

	displacer, err := integrators.NewDPD(
		driver, []pairlist.Potential{lj}, list, boundary,
		params[config.SimulationTimestep], params[config.SimulationTemperature],
		params[config.SimulationGamma], params[config.SimulationDPDLambda],
		params[config.ForcesNBCutoff],
	)
	if err != nil {
		chk.Panic("%v", err)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer outFile.Close()

	for step := 0; step < *steps; step++ {
		list.Rebuild(sys, false)
		diag, err := displacer.Displace(sys)
		if err != nil {
			chk.Panic("step %d: %v", step, err)
		}
		if err := writeFrame(outFile, sys); err != nil {
			chk.Panic("step %d: writing frame: %v", step, err)
		}
		if step >= *skip && step%10 == 0 {
			io.Pf("step %6d  KE=%.6g  T=%.6g\n", step, diag.Kinetic, diag.Temperature)
		}
	}

	io.Pfgreen("done: %d steps written to %s\n", *steps, *out)
}

// writeFrame appends one trajectory frame (this step's positions and
// velocities, one line per particle) to w, matching
// streams.TrajectoryReader's grammar.
func writeFrame(w *os.File, sys *particle.System) error {
	var buf bytes.Buffer
	for _, p := range sys.Particles() {
		io.Ff(&buf, "%.17g %.17g %.17g %.17g %.17g %.17g\n",
			p.Position[0], p.Position[1], p.Position[2],
			p.Velocity[0], p.Velocity[1], p.Velocity[2])
	}
	_, err := w.Write(buf.Bytes())
	return err
}
