// Command triangulate generates a triangulated spherical surface and
// writes it to a surface file, following the same thin stdlib-flag
// driver style as the teacher's root main.go.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/simploce/mesosim/streams"
	"github.com/simploce/mesosim/surface"
)

func main() {
	radius := flag.Float64("radius", 1.0, "sphere radius (nm)")
	numTriangles := flag.Int("triangles", 960, "minimum number of triangles")
	out := flag.String("out", "", "surface output file (required)")
	flag.Parse()

	exit := 0
	defer func() {
		if r := recover(); r != nil {
			io.Pfred("ERROR: %v\n", r)
			exit = 1
		}
		os.Exit(exit)
	}()

	if *out == "" {
		chk.Panic("triangulate: -out is required")
	}

	poly, err := surface.Spherical(*radius, *numTriangles)
	if err != nil {
		chk.Panic("%v", err)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer outFile.Close()
	if err := streams.WriteSurface(outFile, poly); err != nil {
		chk.Panic("%v", err)
	}

	io.Pfgreen("wrote %d vertices, %d faces to %s\n", poly.NumberOfVertices(), poly.NumberOfFaces(), *out)
}
