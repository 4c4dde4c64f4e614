// Command bemsolve solves the kappa=0 flat-vertex boundary-element
// system for a solvated set of point charges against a triangulated
// dielectric surface, and reports the reaction potential at those
// charges' own positions. Thin stdlib-flag driver, same style as the
// teacher's root main.go and the other cmd/* drivers here.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/simploce/mesosim/bem"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/streams"
)

func main() {
	surfaceFn := flag.String("surface", "", "triangulated surface file (required)")
	catalogFn := flag.String("catalog", "", "particle-spec catalog file (required)")
	model := flag.String("model", "", "particle-system file holding the point charges (required)")
	epsSolute := flag.Float64("eps-solute", 2.0, "solute relative permittivity")
	epsSolvent := flag.Float64("eps-solvent", 80.0, "solvent relative permittivity")
	ka := flag.Float64("ka", 0.0, "inverse Debye length (1/nm); 0 for kappa=0")
	flag.Parse()

	exit := 0
	defer func() {
		if r := recover(); r != nil {
			io.Pfred("ERROR: %v\n", r)
			exit = 1
		}
		os.Exit(exit)
	}()

	if *surfaceFn == "" || *catalogFn == "" || *model == "" {
		chk.Panic("bemsolve: -surface, -catalog and -model are all required")
	}
	if *ka != 0 {
		chk.Panic("bemsolve: the flat-vertex calculator only supports kappa=0 (ka=0)")
	}

	surfaceFile, err := os.Open(*surfaceFn)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer surfaceFile.Close()
	poly, err := streams.ReadSurface(surfaceFile)
	if err != nil {
		chk.Panic("%v", err)
	}

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

	positions, charges := sourceCharges(sys)

	calc, err := bem.NewFlatVertexCalculator(poly, *epsSolute, *epsSolvent, *ka)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := calc.SurfaceMatrix(); err != nil {
		chk.Panic("assembling surface matrix: %v", err)
	}
	if err := calc.RightHandSide(positions, charges); err != nil {
		chk.Panic("assembling right-hand side: %v", err)
	}
	if err := calc.Solve(); err != nil {
		chk.Panic("solving: %v", err)
	}

	reaction := calc.ReactionPotentialSolute(positions)
	for i, phi := range reaction {
		io.Pf("charge %d at %v: reaction potential = %.6g kJ/(mol e)\n", i, positions[i], phi)
	}
	io.Pfgreen("done: %d charges, %d collocation nodes\n", len(positions), calc.Data.Size())
}

func sourceCharges(sys *particle.System) ([]geom.Vec3, []float64) {
	particles := sys.Particles()
	positions := make([]geom.Vec3, len(particles))
	charges := make([]float64, len(particles))
	for i, p := range particles {
		positions[i] = p.Position
		charges[i] = float64(p.Charge())
	}
	return positions, charges
}
