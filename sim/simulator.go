package sim

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/pad"
)

// Simulator owns one pad array for the duration of a run and the point sets
// of the most recently generated track. A Simulator must not be shared by
// concurrent runs; parallel Monte Carlo shards each take their own Simulator
// over a pad.Array clone.
type Simulator struct {
	Pads   *pad.Array
	Params Params

	// TrackPoints are uniform display samples along the last track.
	TrackPoints []geom.Vec
	// IonizationPoints are uniform ionization samples along the last track.
	IonizationPoints []geom.Vec
	// DiffusedPoints is the flat list of diffused electron positions from
	// the last Diffuse call.
	DiffusedPoints []geom.Vec
	// PointFactor is the number of physical ionization electrons each
	// ionization point stands for.
	PointFactor int

	rng *rand.Rand
}

// New creates a Simulator over the given pad array with a seeded random
// source. Runs with equal seeds and inputs produce identical output.
func New(pads *pad.Array, params Params, seed uint64) *Simulator {
	return &Simulator{
		Pads:   pads,
		Params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// direction converts elevation (polar, from +z) and azimuth (from +x in the
// xy plane) angles in degrees to a unit vector.
func direction(elevDeg, azimDeg float64) geom.Vec {
	theta := elevDeg * math.Pi / 180
	phi := azimDeg * math.Pi / 180
	return geom.Vec{
		math.Sin(theta) * math.Cos(phi),
		math.Sin(theta) * math.Sin(phi),
		math.Cos(theta),
	}
}

// linePoints samples n points uniformly in the line parameter t over
// [0, tMax] along start + t*dir.
func linePoints(start, dir geom.Vec, tMax float64, n int) []geom.Vec {
	pts := make([]geom.Vec, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = tMax * float64(i) / float64(n-1)
		}
		pts[i] = start.Add(dir.Scale(t))
	}
	return pts
}

// minDz is the smallest usable z direction component. cos(90 deg) computed
// through radians is ~6e-17, not zero, so an exact comparison would let
// horizontal tracks through with an absurd line parameter bound.
const minDz = 1e-12

// trackLine validates the track direction and returns it with the line
// parameter bound for the requested z extent. A track with no z component
// has no z parametrized extent and is rejected.
func trackLine(elevDeg, azimDeg, zExtent float64) (geom.Vec, float64, error) {
	dir := direction(elevDeg, azimDeg)
	if math.Abs(dir[geom.Z]) < minDz {
		return geom.Vec{}, 0, fmt.Errorf(
			"Track with elevation %g deg is horizontal: z extent %g is "+
				"undefined.", elevDeg, zExtent,
		)
	}
	return dir, zExtent / dir[geom.Z], nil
}

// GenerateTrack samples n display points along the straight track from
// start with the given elevation and azimuth angles (degrees), covering
// zExtent along z. It fails for horizontal tracks (zero z direction).
func (s *Simulator) GenerateTrack(
	start geom.Vec, elevDeg, azimDeg, zExtent float64, n int,
) error {
	dir, tMax, err := trackLine(elevDeg, azimDeg, zExtent)
	if err != nil {
		return err
	}
	s.TrackPoints = linePoints(start, dir, tMax, n)
	return nil
}

// GenerateIonization samples n ionization points along the same straight
// line and computes the physical ionization electron count
// DedX * EnergyScale * length / W. The ratio of that count to n is retained
// in PointFactor and applied later by ScaleCharge, so the points stay cheap
// while total charge is preserved.
func (s *Simulator) GenerateIonization(
	start geom.Vec, elevDeg, azimDeg, zExtent float64, n int,
) error {
	dir, tMax, err := trackLine(elevDeg, azimDeg, zExtent)
	if err != nil {
		return err
	}

	d := dir.Scale(tMax)
	length := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	electrons := int(s.Params.DedX * s.Params.EnergyScale * length / s.Params.W)
	s.PointFactor = electrons / n

	s.IonizationPoints = linePoints(start, dir, tMax, n)
	return nil
}

// Diffuse scatters each ionization point into gain samples drawn from a 2D
// Gaussian with covariance sigma^2*I, centered on the point's projection
// onto plane. The coordinate perpendicular to the plane is carried through
// from the ionization point unchanged. The result is one flat point list;
// downstream containment treats all diffused points equally.
func (s *Simulator) Diffuse(plane geom.Plane, gain int, sigma float64) {
	k := plane.Normal()
	pts := make([]geom.Vec, 0, len(s.IonizationPoints)*gain)

	for _, p := range s.IonizationPoints {
		cx, cy := plane.Project(p)
		nx := distuv.Normal{Mu: cx, Sigma: sigma, Src: s.rng}
		ny := distuv.Normal{Mu: cy, Sigma: sigma, Src: s.rng}

		for j := 0; j < gain; j++ {
			var v geom.Vec
			v[plane.I] = nx.Rand()
			v[plane.J] = ny.Rand()
			v[k] = p[k]
			pts = append(pts, v)
		}
	}

	s.DiffusedPoints = pts
}

// AccumulateCharge resets every pad charge to zero, then counts, per pad,
// the diffused points whose xz projection falls inside the pad's projected
// polygon. The counts are raw hits; ScaleCharge converts them to charge.
// Overlapping pads each count a shared point.
func (s *Simulator) AccumulateCharge() {
	s.Pads.ResetCharges()
	polys := s.Pads.Projected(geom.XZ)

	for _, p := range s.DiffusedPoints {
		x, z := geom.XZ.Project(p)
		for j, poly := range polys {
			if geom.PolygonContains(poly, x, z) {
				s.Pads.Charges[j]++
			}
		}
	}
}

// ScaleCharge converts raw hit counts into collected charge in pC:
// hits * PointFactor * Gain * Qe * PCPerC / diffusionGain. It is a pure
// rescaling pass, separable from containment, so gain studies do not rerun
// the geometric test.
func (s *Simulator) ScaleCharge(diffusionGain float64) {
	f := float64(s.PointFactor) * s.Params.Gain * s.Params.Qe *
		s.Params.PCPerC / diffusionGain
	for i := range s.Pads.Charges {
		s.Pads.Charges[i] *= f
	}
}
