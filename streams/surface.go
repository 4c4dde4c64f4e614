package streams

import (
	"bytes"
	"fmt"
	"io"

	gio "github.com/cpmech/gosl/io"
	"github.com/simploce/mesosim/surface"
)

// ReadSurface reads a triangulated-surface file: "Vcount Fcount", then
// Vcount vertex positions, then Vcount vertex normals, then Fcount
// vertex-index triples, one face per line. This is surface.Parse's
// grammar (spec.md §6); ReadSurface exists alongside it so callers
// that think in terms of the streams package's Read*/Write* pairing
// don't need to reach into surface directly.
func ReadSurface(r io.Reader) (*surface.Polyhedron, error) {
	return surface.Parse(r)
}

// WriteSurface writes poly in the grammar ReadSurface/surface.Parse
// expects: every face must be a triangle, since the format has no room
// to record a variable vertex count per face.
func WriteSurface(w io.Writer, poly *surface.Polyhedron) error {
	vertices := poly.Vertices()
	faces := poly.Faces()

	var buf bytes.Buffer
	gio.Ff(&buf, "%d %d\n", len(vertices), len(faces))
	for _, v := range vertices {
		gio.Ff(&buf, "%.17g %.17g %.17g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range vertices {
		gio.Ff(&buf, "%.17g %.17g %.17g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i, f := range faces {
		fv := f.Vertices()
		if len(fv) != 3 {
			return fmt.Errorf("streams: write surface: face %d has %d vertices, not a triangle", i, len(fv))
		}
		gio.Ff(&buf, "%d %d %d\n", fv[0].Index, fv[1].Index, fv[2].Index)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
