package surface

import (
	"math"
	"testing"

	"github.com/simploce/mesosim/geom"
)

// TestSphericalAreaConverges is spec.md §8 scenario 4: r=1,
// target>=960 triangles. Expect |area - 4*pi| / 4*pi < 5e-3.
func TestSphericalAreaConverges(t *testing.T) {
	poly, err := Spherical(1.0, 960)
	if err != nil {
		t.Fatalf("Spherical: %v", err)
	}
	if poly.NumberOfFaces() < 960 {
		t.Fatalf("expected at least 960 triangles, got %d", poly.NumberOfFaces())
	}
	area := poly.Area()
	want := 4.0 * math.Pi
	rel := math.Abs(area-want) / want
	if rel >= 5e-3 {
		t.Fatalf("relative area error too large: got %v (area=%v want %v)", rel, area, want)
	}
}

// TestPolyhedronEuler is spec.md §8's quantified invariant: every
// triangulation generator's output satisfies V-E+F=2.
func TestPolyhedronEuler(t *testing.T) {
	checkEuler := func(t *testing.T, name string, poly *Polyhedron) {
		t.Helper()
		v := poly.NumberOfVertices()
		e := len(poly.Edges())
		f := poly.NumberOfFaces()
		if v-e+f != 2 {
			t.Fatalf("%s: V-E+F = %d-%d+%d = %d, want 2", name, v, e, f, v-e+f)
		}
	}

	dodeca, err := Dodecahedron(1.0)
	if err != nil {
		t.Fatalf("Dodecahedron: %v", err)
	}
	checkEuler(t, "dodecahedron", dodeca)

	t60, err := Triangles60(dodeca, 1.0)
	if err != nil {
		t.Fatalf("Triangles60: %v", err)
	}
	checkEuler(t, "triangles60", t60)

	sub, err := Subdivide(t60, 240, 1.0)
	if err != nil {
		t.Fatalf("Subdivide: %v", err)
	}
	checkEuler(t, "subdivide", sub)

	cube, err := Cubic(2.0)
	if err != nil {
		t.Fatalf("Cubic: %v", err)
	}
	checkEuler(t, "cubic", cube)
}

func TestCubicHasTwelveTriangles(t *testing.T) {
	cube, err := Cubic(2.0)
	if err != nil {
		t.Fatalf("Cubic: %v", err)
	}
	if cube.NumberOfFaces() != 12 {
		t.Fatalf("expected 12 triangular faces, got %d", cube.NumberOfFaces())
	}
	for _, f := range cube.Faces() {
		if len(f.Vertices()) != 3 {
			t.Fatalf("Cubic must produce only triangles, found a %d-gon", len(f.Vertices()))
		}
	}
	want := 6.0 * 2.0 * 2.0 // 6 faces of a side-2 cube
	if got := cube.Area(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Area: got %v want %v", got, want)
	}
}

func TestTriangleAreaAndNormal(t *testing.T) {
	v0 := NewVertex(0, geom.Vec3{0, 0, 0}, geom.Zero)
	v1 := NewVertex(1, geom.Vec3{1, 0, 0}, geom.Zero)
	v2 := NewVertex(2, geom.Vec3{0, 1, 0}, geom.Zero)
	tri := NewTriangle(v0, v1, v2)
	if got := tri.Area(); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("Area: got %v want 0.5", got)
	}
}

func TestEdgeRejectsCoincidentEndpoints(t *testing.T) {
	v0 := NewVertex(0, geom.Vec3{0, 0, 0}, geom.Zero)
	v1 := NewVertex(1, geom.Vec3{0, 0, 0}, geom.Zero)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic building an edge between coincident vertices")
		}
	}()
	NewEdge(v0, v1)
}
