package streams

import (
	"bytes"
	"testing"

	"github.com/simploce/mesosim/surface"
)

func TestSurfaceRoundTrip(t *testing.T) {
	poly, err := surface.Cubic(2.0)
	if err != nil {
		t.Fatalf("surface.Cubic: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSurface(&buf, poly); err != nil {
		t.Fatalf("WriteSurface: %v", err)
	}

	got, err := ReadSurface(&buf)
	if err != nil {
		t.Fatalf("ReadSurface: %v", err)
	}

	if got.NumberOfVertices() != poly.NumberOfVertices() {
		t.Fatalf("vertex count: got %d want %d", got.NumberOfVertices(), poly.NumberOfVertices())
	}
	if got.NumberOfFaces() != poly.NumberOfFaces() {
		t.Fatalf("face count: got %d want %d", got.NumberOfFaces(), poly.NumberOfFaces())
	}
	for i, v := range got.Vertices() {
		want := poly.Vertices()[i].Position
		if v.Position != want {
			t.Fatalf("vertex %d position: got %v want %v", i, v.Position, want)
		}
	}
}
