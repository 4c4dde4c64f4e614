// Package units defines the tagged scalar types used across the
// simulation (charge, mass, length, energy, time, temperature,
// surface-charge-density) and the physical constants in "molecular
// units" (MU): distance in nm, time in ps, mass in u, charge in e,
// energy in kJ/mol. Values are converted from SI the way
// original_source/util/include/simploce/units/units-si.hpp and
// units-mu.hpp derive them; see DESIGN.md.
package units

// Charge is measured in elementary charge e.
type Charge float64

// Mass is measured in unified atomic mass units u.
type Mass float64

// Length (or Distance) is measured in nanometres.
type Length float64

// Distance is an alias of Length used for pair separations.
type Distance = Length

// Energy is measured in kJ/mol.
type Energy float64

// Time is measured in picoseconds.
type Time float64

// Temperature is measured in kelvin.
type Temperature float64

// SurfaceChargeDensity is measured in e/nm^2.
type SurfaceChargeDensity float64

// Area is measured in nm^2.
type Area float64

// Physical constants in molecular units (nm, ps, u, e, kJ/mol), derived
// from CODATA SI values the way units-si.hpp/units-mu.hpp do.
const (
	// E is the elementary charge, by definition 1 e in these units.
	E = 1.0

	// FourPiE0 = 4*pi*epsilon0 expressed in e^2/(kJ/mol * nm); its
	// reciprocal is the familiar Coulomb conversion factor
	// ONE_4PI_EPS0 = 138.935458 kJ*nm/(mol*e^2).
	FourPiE0 = 1.0 / 138.935458

	// E0 = epsilon0 in the same reduced units.
	E0 = FourPiE0 / (4.0 * Pi)

	// FEl = 1/(4*pi*epsilon0), the Coulomb conversion factor.
	FEl = 1.0 / FourPiE0

	// KB is the Boltzmann constant, kJ/(mol K).
	KB = 0.0083144621

	// RoomTemperature in kelvin.
	RoomTemperature = 298.15

	// KT is k_B * RoomTemperature, in kJ/mol.
	KT = KB * RoomTemperature

	// ProtonMass in u.
	ProtonMass = 1.007276466

	// ProtonCharge in e.
	ProtonCharge = 1.0

	// VToKJMolE converts an electric potential in volts to kJ/(mol e),
	// equal to the Faraday constant expressed in kJ/(mol V).
	VToKJMolE = 96.4853321

	// Pi is exported for callers that want it without importing math.
	Pi = 3.14159265358979323846
)
