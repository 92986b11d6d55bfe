/*Package pad represents readout pad planes: canonical pad outlines, the
factories that build them, and arrays of placed pad instances with their
accumulated charges.
*/
package pad

import (
	"fmt"
	"math"

	"github.com/catm-exp/padsim/geom"
)

// Shape is one canonical pad outline: an ordered list of coplanar vertices
// in a local frame centered on Center. Shapes are built once by a factory
// function, never mutated afterwards, and shared by reference across every
// placed instance of that pad type.
type Shape struct {
	Center  geom.Vec
	Polygon []geom.Vec
}

// CenterVertexDistances returns the distance from the shape's center to each
// vertex, in vertex order.
func (s *Shape) CenterVertexDistances() []float64 {
	ds := make([]float64, len(s.Polygon))
	for i, v := range s.Polygon {
		d := v.Sub(s.Center)
		ds[i] = math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	}
	return ds
}

// VertexDistances returns the distances between every vertex pair,
// ordered {01, 02, ..., 12, 13, ...}.
func (s *Shape) VertexDistances() []float64 {
	var ds []float64
	for i := 0; i < len(s.Polygon); i++ {
		for j := i + 1; j < len(s.Polygon); j++ {
			d := s.Polygon[i].Sub(s.Polygon[j])
			ds = append(ds, math.Sqrt(d[0]*d[0]+d[1]*d[1]+d[2]*d[2]))
		}
	}
	return ds
}

// RegularNGon builds a regular n sided pad with the given edge length. The
// vertices sit on a circle of radius edge/(2 sin(pi/n)) in the xz plane
// (y = 0), starting at angle zero and rotated in-plane by rotDeg degrees.
func RegularNGon(n int, edge, rotDeg float64) (*Shape, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cannot build a polygon with %d vertices.", n)
	}

	radius := edge / (2 * math.Sin(math.Pi/float64(n)))
	rot := rotDeg * math.Pi / 180
	cosR, sinR := math.Cos(rot), math.Sin(rot)

	s := &Shape{Polygon: make([]geom.Vec, n)}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := radius * math.Cos(angle)
		z := radius * math.Sin(angle)
		// In-plane rotation, then embedding with y held at zero.
		s.Polygon[i] = geom.Vec{cosR*x - sinR*z, 0, sinR*x + cosR*z}
	}
	return s, nil
}

// OblongQuad builds an axis aligned rectangular pad with the given long and
// short extents, embedded in the requested coordinate plane ("xy", "yz" or
// "xz"; letter order is ignored). Corners are listed clockwise.
func OblongQuad(long, short float64, plane string) (*Shape, error) {
	p, err := geom.ParsePlane(plane)
	if err != nil {
		return nil, err
	}

	s := &Shape{}
	switch {
	case p == geom.YZ || p == (geom.Plane{I: geom.Z, J: geom.Y}):
		s.Polygon = []geom.Vec{
			{0, short / 2, long / 2},
			{0, short / 2, -long / 2},
			{0, -short / 2, -long / 2},
			{0, -short / 2, long / 2},
		}
	case p == geom.XY || p == (geom.Plane{I: geom.Y, J: geom.X}):
		s.Polygon = []geom.Vec{
			{long / 2, short / 2, 0},
			{long / 2, -short / 2, 0},
			{-long / 2, -short / 2, 0},
			{-long / 2, short / 2, 0},
		}
	default: // xz or zx
		s.Polygon = []geom.Vec{
			{long / 2, 0, short / 2},
			{long / 2, 0, -short / 2},
			{-long / 2, 0, -short / 2},
			{-long / 2, 0, short / 2},
		}
	}
	return s, nil
}
