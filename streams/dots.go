package streams

import (
	"bytes"
	"fmt"
	"io"

	gio "github.com/cpmech/gosl/io"
	"github.com/simploce/mesosim/geom"
)

// ReadDots reads a dotted-surface file: a count, then that many
// position triples. Grounded on spec.md §6: "Header count, then count
// lines of position triples."
func ReadDots(r io.Reader) ([]geom.Vec3, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("streams: read dots count: %w", err)
	}
	dots := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		var x, y, z float64
		if _, err := fmt.Fscan(r, &x, &y, &z); err != nil {
			return nil, fmt.Errorf("streams: read dot %d: %w", i, err)
		}
		dots[i] = geom.Vec3{x, y, z}
	}
	return dots, nil
}

// WriteDots writes dots in the grammar ReadDots expects.
func WriteDots(w io.Writer, dots []geom.Vec3) error {
	var buf bytes.Buffer
	gio.Ff(&buf, "%d\n", len(dots))
	for _, d := range dots {
		gio.Ff(&buf, "%.17g %.17g %.17g\n", d[0], d[1], d[2])
	}
	_, err := w.Write(buf.Bytes())
	return err
}
