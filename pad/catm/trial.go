package catm

import (
	"fmt"
	"math"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/pad"
)

// OriginalBeamTPC builds the 22 pad layout considered before the h445-1
// experiment.
func OriginalBeamTPC() *pad.Array {
	const pitch = 5.0

	a := pad.NewArray()
	tmpl := a.AddTemplate(mustNGon(3, 4.74, 90))
	gid := 0

	for i := 0; i < 11; i++ {
		a.Place(geom.Vec{
			float64(i) * pitch / 2,
			0,
			pitch / math.Sqrt(3) / 2 * alt(i + 1),
		}, tmpl, 0, 180*alt(i+1), 0, gid)
		gid++
	}
	for i := 0; i < 11; i++ {
		a.Place(geom.Vec{
			float64(i) * pitch / 2,
			0,
			pitch/math.Sqrt(3)/2*alt(i) + math.Sqrt(3)*pitch/2,
		}, tmpl, 0, 180*alt(i), 0, gid)
		gid++
	}

	return a
}

// QuarterShiftBeamTPC builds the 22 pad layout considered before the h445-5
// experiment, with the second row shifted by a quarter pitch.
func QuarterShiftBeamTPC() *pad.Array {
	const pitch = 5.0

	a := pad.NewArray()
	tmpl := a.AddTemplate(mustNGon(3, 4.74, 90))
	gid := 0

	for i := 0; i < 11; i++ {
		a.Place(geom.Vec{
			float64(i) * pitch / 2,
			0,
			pitch / math.Sqrt(3) / 2 * alt(i + 1),
		}, tmpl, 0, 180*alt(i+1), 0, gid)
		gid++
	}
	for i := 0; i < 11; i++ {
		a.Place(geom.Vec{
			(float64(i) + 0.5) * pitch / 2,
			0,
			pitch/math.Sqrt(3)/2*alt(i) + math.Sqrt(3)*pitch/2,
		}, tmpl, 0, 180*alt(i), 0, gid)
		gid++
	}

	return a
}

// BeamTPC60 builds the 60 channel trial layout considered before the h445-5
// experiment: three rows of 20 pads at 3 mm pitch.
func BeamTPC60() *pad.Array {
	const (
		pitch  = 3.0
		nmax   = 21
		offset = 15.75
	)

	a := pad.NewArray()
	tmpl := a.AddTemplate(mustNGon(3, 2.75, 90))
	gid := 0

	for i := 0; i < nmax+1; i++ {
		if i <= 1 {
			continue
		}
		a.Place(geom.Vec{
			(float64(i)-0.5)*pitch/2 - offset,
			0,
			pitch / math.Sqrt(3) / 2 * alt(i + 1),
		}, tmpl, 0, 180*alt(i+1), 0, gid)
		gid++
	}
	for i := 0; i < nmax; i++ {
		if i == 0 {
			continue
		}
		a.Place(geom.Vec{
			float64(i)*pitch/2 - offset,
			0,
			pitch/math.Sqrt(3)/2*alt(i) + math.Sqrt(3)*pitch/2,
		}, tmpl, 0, 180*alt(i), 0, gid)
		gid++
	}
	for i := 0; i < nmax; i++ {
		if i >= nmax-1 {
			continue
		}
		a.Place(geom.Vec{
			(float64(i)+0.5)*pitch/2 - offset,
			0,
			pitch/math.Sqrt(3)/2*alt(i+1) + 2*math.Sqrt(3)*pitch/2,
		}, tmpl, 0, 180*alt(i+1), 0, gid)
		gid++
	}

	return a
}

// TrialBeamTPC selects a historical trial beam TPC layout by version number.
// Versions 0 and 1 are the quarter shift layout, version 2 the 60 channel
// layout.
func TrialBeamTPC(version int) (*pad.Array, error) {
	switch version {
	case 0, 1:
		return QuarterShiftBeamTPC(), nil
	case 2:
		return BeamTPC60(), nil
	}
	return nil, fmt.Errorf("Unknown trial beam TPC version %d.", version)
}
