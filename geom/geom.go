/*Package geom contains routines for computing geometric quantities on the
readout pad plane: 3D vectors, axis rotations, and polygon containment in a
projection plane.
*/
package geom

import (
	"fmt"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Axis indices into a Vec.
const (
	X = iota
	Y
	Z
)

// Add returns the sum of v and u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns the difference of v and u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s}
}

// Plane is a projection plane spanned by two of the three coordinate axes.
type Plane struct {
	I, J int
}

var (
	XY = Plane{X, Y}
	YZ = Plane{Y, Z}
	XZ = Plane{X, Z}
)

var axisNames = map[byte]int{'x': X, 'y': Y, 'z': Z}

// ParsePlane converts a two letter axis string, e.g. "xz", into a Plane.
// The letter order is significant: the first letter is the horizontal
// projection axis.
func ParsePlane(s string) (Plane, error) {
	if len(s) != 2 {
		return Plane{}, fmt.Errorf("Invalid plane %q: must be two of 'x', 'y', 'z'.", s)
	}
	i, iOk := axisNames[s[0]]
	j, jOk := axisNames[s[1]]
	if !iOk || !jOk || i == j {
		return Plane{}, fmt.Errorf("Invalid plane %q: must be two distinct axes.", s)
	}
	return Plane{i, j}, nil
}

// Normal returns the axis index perpendicular to the plane.
func (p Plane) Normal() int {
	return 3 - p.I - p.J
}

// Project returns the two in-plane coordinates of v.
func (p Plane) Project(v Vec) (x, y float64) {
	return v[p.I], v[p.J]
}
