/*mat contains routines for executing operations on small dense matrices.
Only the operations needed for composing pad-plane rotations are
implemented, so pretty much everything assumes the matrices are tiny and
square.
*/
package mat

// Matrix represents a matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Identity creates a square identity matrix of the given width.
func Identity(width int) *Matrix {
	m := NewMatrix(make([]float64, width*width), width, width)
	for i := 0; i < width; i++ {
		m.Vals[i*width+i] = 1
	}
	return m
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < m1.Height; i++ {
		off := i * m1.Width
		outOff := i * out.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := outOff + j
			for k := 0; k < m1.Width; k++ {
				out.Vals[outIdx] += m1.Vals[off+k] * m2.Vals[k*m2.Width+j]
			}
		}
	}

	return out
}
