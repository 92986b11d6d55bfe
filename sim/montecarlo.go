package sim

import (
	"fmt"

	"github.com/catm-exp/padsim/geom"
)

// TrackParams is one sampled track parameter tuple: a start point and the
// two track angles in degrees.
type TrackParams struct {
	X, Y, Z    float64
	Elev, Azim float64
}

// Start returns the track start point.
func (p TrackParams) Start() geom.Vec {
	return geom.Vec{p.X, p.Y, p.Z}
}

// nTrackParams is the number of components in a TrackParams tuple; the
// distribution vector passed to MonteCarloTracks must match it.
const nTrackParams = 5

// MonteCarloTracks samples n independent track parameter tuples around
// base. dists selects the smearing distribution per component, in the order
// x, y, z, elevation, azimuth, and must have exactly one entry per
// component.
func (s *Simulator) MonteCarloTracks(
	n int, base TrackParams, dists []Dist,
) ([]TrackParams, error) {
	if len(dists) != nTrackParams {
		return nil, fmt.Errorf(
			"Got %d distributions for %d track parameter components.",
			len(dists), nTrackParams,
		)
	}

	out := make([]TrackParams, n)
	for i := range out {
		out[i] = TrackParams{
			X:    dists[0].sample(s.rng, base.X),
			Y:    dists[1].sample(s.rng, base.Y),
			Z:    dists[2].sample(s.rng, base.Z),
			Elev: dists[3].sample(s.rng, base.Elev),
			Azim: dists[4].sample(s.rng, base.Azim),
		}
	}
	return out, nil
}
