/*Package recon contains position reconstruction utilities over simulated
per-pad charge vectors: charge weighted centroids, thresholding, pad
multiplicities, and residuals. Everything here is a pure function over
center and charge slices.
*/
package recon

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CentroidX computes the charge weighted centroid sum(x*q)/sum(q). A zero
// total charge has no defined centroid; that case returns (NaN, false)
// rather than a crash or a silent zero.
func CentroidX(xs, charges []float64) (float64, bool) {
	if len(xs) != len(charges) {
		panic("len(xs) != len(charges).")
	}
	total := floats.Sum(charges)
	if total == 0 {
		return math.NaN(), false
	}
	return floats.Dot(xs, charges) / total, true
}

// ThresholdCharges zeroes every per-pad charge less than or equal to
// threshold and recomputes the charge weighted centroid of each event from
// the cut vector, with the same NaN-on-zero-total policy as CentroidX.
// The input vectors are not modified.
func ThresholdCharges(
	xs []float64, charges [][]float64, threshold float64,
) (pos []float64, cut [][]float64) {
	pos = make([]float64, len(charges))
	cut = make([][]float64, len(charges))

	for i, event := range charges {
		c := make([]float64, len(event))
		for j, q := range event {
			if q > threshold {
				c[j] = q
			}
		}
		cut[i] = c
		pos[i], _ = CentroidX(xs, c)
	}
	return pos, cut
}

// Multiplicity counts, per event, the pads with charge strictly greater
// than threshold.
func Multiplicity(charges [][]float64, threshold float64) []int {
	ms := make([]int, len(charges))
	for i, event := range charges {
		for _, q := range event {
			if q > threshold {
				ms[i]++
			}
		}
	}
	return ms
}

// PositionResidual returns the elementwise difference between true and
// reconstructed positions. It fails on a length mismatch before any
// computation.
func PositionResidual(truth, reco []float64) ([]float64, error) {
	if len(truth) != len(reco) {
		return nil, fmt.Errorf(
			"Position slices have mismatched lengths %d and %d.",
			len(truth), len(reco),
		)
	}
	res := make([]float64, len(truth))
	floats.SubTo(res, truth, reco)
	return res, nil
}
