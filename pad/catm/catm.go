/*Package catm builds the as-built readout pad layouts of the CAT-M detector
family: the beam TPC, the recoil TPC, the silicon strip detector, and the
historical trial beam TPC layouts.

The per-index placement formulas are detector as-built constants. Other
tooling depends on the index-to-physical-position correspondence, so the
formulas are reproduced exactly, quirks included.
*/
package catm

import (
	"math"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/pad"
)

func mustNGon(n int, edge, rotDeg float64) *pad.Shape {
	s, err := pad.RegularNGon(n, edge, rotDeg)
	if err != nil {
		panic(err)
	}
	return s
}

func mustOblong(long, short float64, plane string) *pad.Shape {
	s, err := pad.OblongQuad(long, short, plane)
	if err != nil {
		panic(err)
	}
	return s
}

// parity is +1 for even i and -1 for odd i.
func parity(i int) float64 {
	if i%2 == 0 {
		return 1
	}
	return -1
}

// alt is 0 for even i and 1 for odd i.
func alt(i int) float64 {
	return float64(i % 2)
}

// BeamTPC builds the 22 pad (11 x 2) beam TPC plane: 5 mm pitch triangular
// pads at y = -99, upstream of the recoil TPC.
func BeamTPC() *pad.Array {
	const (
		pitch   = 5.0
		xOff    = -12.5
		yPlane  = -99.0
		zOff    = -2.886751345948129 - 255
		edgeLen = 4.74
	)

	a := pad.NewArray()
	tmpl := a.AddTemplate(mustNGon(3, edgeLen, 90))
	gid := 0

	for i := 0; i < 11; i++ {
		a.Place(geom.Vec{
			float64(i)*pitch/2 + xOff,
			yPlane,
			pitch / math.Sqrt(3) / 2 * alt(i+1) + zOff,
		}, tmpl, 0, 180*alt(i+1), 0, gid)
		gid++
	}
	for i := 0; i < 11; i++ {
		a.Place(geom.Vec{
			float64(i)*pitch/2 + xOff,
			yPlane,
			pitch/math.Sqrt(3)/2*alt(i) + math.Sqrt(3)*pitch/2 + zOff,
		}, tmpl, 0, 180*alt(i), 0, gid)
		gid++
	}

	return a
}

// RecoilTPC builds the 4048 pad ((23 x 2) x 88) recoil TPC plane: 7 mm pitch
// triangular pads in two mirrored half planes.
func RecoilTPC() *pad.Array {
	const (
		pitch  = 7.0
		yPlane = -99.0
		zOff   = -152.25
	)

	a := pad.NewArray()
	tmpl := a.AddTemplate(mustNGon(3, 6.9133974596, 90))
	gid := 0
	h := pitch * math.Sqrt(3) / 2

	for j := 0; j < 44; j++ {
		for i := 0; i < 23; i++ {
			x := -float64(i)*h - h/3
			if i%2 != 0 {
				x -= h / 3
			}
			a.Place(geom.Vec{x, yPlane, pitch*float64(j) + zOff},
				tmpl, 0, -90*parity(i), 0, gid)
			gid++
		}
		for i := 0; i < 23; i++ {
			x := -float64(i)*h - h/3
			if i%2 == 0 {
				x -= h / 3
			}
			a.Place(geom.Vec{x, yPlane, pitch/2 + pitch*float64(j) + zOff},
				tmpl, 0, -90*parity(i+1), 0, gid)
			gid++
		}
	}

	for j := 0; j < 44; j++ {
		for i := 0; i < 23; i++ {
			x := float64(i)*h + h/3
			if i%2 != 0 {
				x += h / 3
			}
			a.Place(geom.Vec{x, yPlane, pitch*float64(j) + zOff},
				tmpl, 0, -90*parity(i+1), 0, gid)
			gid++
		}
		for i := 0; i < 23; i++ {
			x := float64(i)*h + h/3
			if i%2 == 0 {
				x += h / 3
			}
			a.Place(geom.Vec{x, yPlane, pitch/2 + pitch*float64(j) + zOff},
				tmpl, 0, -90*parity(i), 0, gid)
			gid++
		}
	}

	return a
}

// SSD builds the 96 strip (12 x 8) silicon strip detector planes flanking
// the TPC volume at x = +-255.
func SSD() *pad.Array {
	const (
		width = 90.6
		strip = width / 8
	)

	a := pad.NewArray()
	tmpl := a.AddTemplate(mustOblong(strip, width, "yz"))
	gid := 0

	xs := []float64{-255, 255}
	ys := []float64{54, -54}
	zs := []float64{-42.55, 65.45, 168.45}

	for _, x := range xs {
		for _, y := range ys {
			for _, z0 := range zs {
				for i := 0; i < 8; i++ {
					a.Place(geom.Vec{x, y, z0 + strip*float64(i) - width/2},
						tmpl, 0, 0, 0, gid)
					gid++
				}
			}
		}
	}

	return a
}
