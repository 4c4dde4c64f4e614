package streams

import (
	"fmt"
	"io"

	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// ReadCatalog reads a particle-spec catalog: a count, then that many
// lines of name, mass, charge, radius, protonatable (0 or 1). Grounded
// on spec.md §6: "Text file keyed by spec name, carrying mass, charge,
// radius, protonatable flag."
func ReadCatalog(r io.Reader) (*particle.SpecCatalog, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("streams: read catalog count: %w", err)
	}
	catalog := particle.NewSpecCatalog()
	for i := 0; i < n; i++ {
		var name string
		var mass, charge, radius float64
		var protonatable int
		if _, err := fmt.Fscan(r, &name, &mass, &charge, &radius, &protonatable); err != nil {
			return nil, fmt.Errorf("streams: read catalog entry %d: %w", i, err)
		}
		catalog.Add(&particle.Spec{
			Name:         name,
			Mass:         units.Mass(mass),
			Charge:       units.Charge(charge),
			Radius:       units.Length(radius),
			Protonatable: protonatable != 0,
		})
	}
	return catalog, nil
}
