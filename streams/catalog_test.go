package streams

import (
	"bytes"
	"testing"
)

func TestReadCatalog(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("2\n")
	buf.WriteString("W 18.0 0.0 0.15 0\n")
	buf.WriteString("Na 23.0 1.0 0.10 1\n")

	catalog, err := ReadCatalog(&buf)
	if err != nil {
		t.Fatalf("ReadCatalog: %v", err)
	}
	na := catalog.Lookup("Na")
	if na == nil {
		t.Fatal("Na not found in catalog")
	}
	if !na.Protonatable {
		t.Fatal("Na should be protonatable")
	}
	w := catalog.Lookup("W")
	if w == nil || w.Protonatable {
		t.Fatal("W should be registered and not protonatable")
	}
	if float64(w.Mass) != 18.0 {
		t.Fatalf("W mass: got %v want 18.0", w.Mass)
	}
}
