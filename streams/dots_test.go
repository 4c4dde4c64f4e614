package streams

import (
	"bytes"
	"testing"

	"github.com/simploce/mesosim/geom"
)

func TestDotsRoundTrip(t *testing.T) {
	dots := []geom.Vec3{{1, 2, 3}, {4, 5, 6}, {-1, -2, -3}}

	var buf bytes.Buffer
	if err := WriteDots(&buf, dots); err != nil {
		t.Fatalf("WriteDots: %v", err)
	}

	got, err := ReadDots(&buf)
	if err != nil {
		t.Fatalf("ReadDots: %v", err)
	}
	if len(got) != len(dots) {
		t.Fatalf("dot count: got %d want %d", len(got), len(dots))
	}
	for i, d := range got {
		if d != dots[i] {
			t.Fatalf("dot %d: got %v want %v", i, d, dots[i])
		}
	}
}
