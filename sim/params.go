/*Package sim contains a simple straight-track simulator for pad plane
charge collection: ionization along a track, Gaussian diffusion of the
drifting electrons, containment against the pad polygons, and conversion of
hit counts to collected charge. It also batches many Monte Carlo sampled
tracks into per-event charge vectors and reconstructed positions.
*/
package sim

// Params holds the physical constants of a simulation run.
type Params struct {
	// DedX is the stopping power in MeV/mm.
	DedX float64
	// W is the electron-ion pair creation energy in eV.
	W float64
	// Gain is the avalanche (GEM) gain.
	Gain float64
	// EnergyScale converts DedX * track length into the energy units of W.
	EnergyScale float64
	// Qe is the elementary charge in C.
	Qe float64
	// PCPerC converts Coulomb to picocoulomb.
	PCPerC float64
}

// DefaultParams returns the constants for a 136Xe beam at 100 MeV/u in
// deuterium gas at 40 kPa.
func DefaultParams() Params {
	return Params{
		DedX:        0.0708,
		W:           37,
		Gain:        100,
		EnergyScale: 1.0e7,
		Qe:          1.602e-19,
		PCPerC:      1.0e12,
	}
}
