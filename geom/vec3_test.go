package geom

import "testing"

func TestVectorArithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -1, 0.5}

	if got := Add(a, b); got != (Vec3{5, 1, 3.5}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := Sub(a, b); got != (Vec3{-3, 3, 2.5}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := Scale(2, a); got != (Vec3{2, 4, 6}) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := AddScaled(a, 2, b); got != (Vec3{9, 0, 4}) {
		t.Fatalf("AddScaled: got %v", got)
	}
	if got := Dot(a, b); got != 4-2+1.5 {
		t.Fatalf("Dot: got %v want %v", got, 4-2+1.5)
	}
}

func TestNormAndUnit(t *testing.T) {
	a := Vec3{3, 4, 0}
	if got := Norm(a); got != 5 {
		t.Fatalf("Norm: got %v want 5", got)
	}
	if got := Norm2(a); got != 25 {
		t.Fatalf("Norm2: got %v want 25", got)
	}
	u := Unit(a)
	if got := Norm(u); got < 0.999999 || got > 1.000001 {
		t.Fatalf("Unit did not normalize: |u|=%v", got)
	}
}

func TestNint(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{0.4, 0}, {0.5, 1}, {0.6, 1}, {-0.4, 0}, {-0.5, -1}, {-0.6, -1},
		{2.5, 3}, {-2.5, -3},
	}
	for _, c := range cases {
		if got := Nint(c.x); got != c.want {
			t.Errorf("Nint(%v): got %v want %v", c.x, got, c.want)
		}
	}
}

func TestSgn(t *testing.T) {
	if Sgn(5) != 1 || Sgn(-5) != -1 || Sgn(0) != 0 {
		t.Fatal("Sgn produced an unexpected sign")
	}
}

func TestBoxGeometry(t *testing.T) {
	b := Box{Lx: 2, Ly: 3, Lz: 4}
	if got := b.Volume(); got != 24 {
		t.Fatalf("Volume: got %v want 24", got)
	}
	if got := b.Half(); got != (Vec3{1, 1.5, 2}) {
		t.Fatalf("Half: got %v", got)
	}
	if got := b.AreaXY(); got != 6 {
		t.Fatalf("AreaXY: got %v want 6", got)
	}
	if b.At(0) != 2 || b.At(1) != 3 || b.At(2) != 4 {
		t.Fatalf("At: got (%v,%v,%v)", b.At(0), b.At(1), b.At(2))
	}
}
