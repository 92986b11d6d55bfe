package sim

import (
	"fmt"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/recon"
)

// RunConfig holds the per-event knobs of a batched simulation.
type RunConfig struct {
	// Plane is the diffusion projection plane.
	Plane geom.Plane
	// ZExtent is the track length along z.
	ZExtent float64
	// Points is the number of ionization points per track.
	Points int
	// DiffusionGain is the number of diffused samples per ionization point.
	DiffusionGain int
	// Sigma is the diffusion width.
	Sigma float64
}

// Event is the outcome of one simulated track: the full per-pad charge
// vector and the charge weighted centroid x position. OK is false when the
// total collected charge was zero, in which case X is NaN.
type Event struct {
	Charges []float64
	X       float64
	OK      bool
}

// SimulateMany runs the full pipeline for each parameter tuple in order:
// regenerate ionization points, rediffuse, reaccumulate, rescale, then
// record the per-pad charge vector and centroid x. Events come back in
// input order. A degenerate tuple fails fast with its index.
func (s *Simulator) SimulateMany(
	params []TrackParams, cfg RunConfig,
) ([]Event, error) {
	xs := s.Pads.CenterXs()
	events := make([]Event, 0, len(params))

	for i, p := range params {
		err := s.GenerateIonization(
			p.Start(), p.Elev, p.Azim, cfg.ZExtent, cfg.Points,
		)
		if err != nil {
			return nil, fmt.Errorf("event %d: %v", i, err)
		}

		s.Diffuse(cfg.Plane, cfg.DiffusionGain, cfg.Sigma)
		s.AccumulateCharge()
		s.ScaleCharge(float64(cfg.DiffusionGain))

		charges := append([]float64{}, s.Pads.Charges...)
		x, ok := recon.CentroidX(xs, charges)
		events = append(events, Event{Charges: charges, X: x, OK: ok})
	}

	return events, nil
}

// EventCharges extracts the charge vectors of a batch, in event order.
func EventCharges(events []Event) [][]float64 {
	out := make([][]float64, len(events))
	for i := range events {
		out[i] = events[i].Charges
	}
	return out
}

// EventPositions extracts the centroid x positions of a batch, in event
// order. Undefined positions stay NaN.
func EventPositions(events []Event) []float64 {
	out := make([]float64, len(events))
	for i := range events {
		out[i] = events[i].X
	}
	return out
}
