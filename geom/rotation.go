package geom

import (
	. "math"

	"github.com/catm-exp/padsim/math/mat"
)

const degToRad = Pi / 180

// RotationX creates the right-handed rotation matrix for a rotation of deg
// degrees around the x axis.
func RotationX(deg float64) *mat.Matrix {
	theta := degToRad * deg
	A := []float64{
		1, 0, 0,
		0, Cos(theta), -Sin(theta),
		0, Sin(theta), Cos(theta),
	}
	return mat.NewMatrix(A, 3, 3)
}

// RotationY creates the right-handed rotation matrix for a rotation of deg
// degrees around the y axis.
func RotationY(deg float64) *mat.Matrix {
	theta := degToRad * deg
	A := []float64{
		Cos(theta), 0, Sin(theta),
		0, 1, 0,
		-Sin(theta), 0, Cos(theta),
	}
	return mat.NewMatrix(A, 3, 3)
}

// RotationZ creates the right-handed rotation matrix for a rotation of deg
// degrees around the z axis.
func RotationZ(deg float64) *mat.Matrix {
	theta := degToRad * deg
	A := []float64{
		Cos(theta), -Sin(theta), 0,
		Sin(theta), Cos(theta), 0,
		0, 0, 1,
	}
	return mat.NewMatrix(A, 3, 3)
}

// RotationXYZ creates the composite matrix for a rotation around x, then y,
// then z. The composition order is load bearing: pad placement depends on it.
func RotationXYZ(degX, degY, degZ float64) *mat.Matrix {
	return RotationZ(degZ).Mult(RotationY(degY)).Mult(RotationX(degX))
}

// Rotate rotates a vector by the given rotation matrix.
func (v *Vec) Rotate(m *mat.Matrix) {
	v0 := m.Vals[0]*v[0] + m.Vals[1]*v[1] + m.Vals[2]*v[2]
	v1 := m.Vals[3]*v[0] + m.Vals[4]*v[1] + m.Vals[5]*v[2]
	v2 := m.Vals[6]*v[0] + m.Vals[7]*v[1] + m.Vals[8]*v[2]
	v[0], v[1], v[2] = v0, v1, v2
}
