package extpot

import (
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
	"github.com/simploce/mesosim/units"
)

// Voltage applies a uniform static electric field to every particle.
// Grounded on original_source/simulation/src/voltage.cpp.
type Voltage struct {
	Base

	Field      geom.Vec3 // the applied field e0, in V/nm unless Mesoscopic
	EpsR       float64
	Mesoscopic bool
}

// NewVoltageFromDistance builds the field from a potential difference
// over a distance, pointing along -z: e0 = (0, 0, -voltage/distance).
func NewVoltageFromDistance(voltage, distance, epsR float64, mesoscopic bool) Voltage {
	return Voltage{
		Field: geom.Vec3{0, 0, -voltage / distance},
		EpsR:  epsR, Mesoscopic: mesoscopic,
	}
}

// NewVoltageFromField builds the potential directly from a field vector.
func NewVoltageFromField(field geom.Vec3, epsR float64, mesoscopic bool) Voltage {
	return Voltage{Field: field, EpsR: epsR, Mesoscopic: mesoscopic}
}

func (p Voltage) Eval(part *particle.Particle) (float64, geom.Vec3) {
	// The original places the particle inside the box via the boundary
	// condition, then immediately discards that result and uses the raw
	// position instead; reproduced as-is (bc is otherwise unused here).
	r := part.Position
	Q := float64(part.Charge())
	conversion := units.VToKJMolE
	if p.Mesoscopic {
		conversion = 1.0
	}
	energy := -conversion * Q * geom.Dot(r, p.Field) / p.EpsR
	force := geom.Scale(conversion*Q/p.EpsR, p.Field)
	return energy, force
}
