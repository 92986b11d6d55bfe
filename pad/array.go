package pad

import (
	"github.com/catm-exp/padsim/geom"
)

// Array is a readout pad plane: a set of canonical shape templates and the
// pad instances placed from them. The per-instance slices are index aligned
// by placement order and grow only through Place. Charges is the only field
// mutated after placement, exclusively by the simulation engine.
type Array struct {
	Templates []*Shape

	Pads    [][]geom.Vec
	IDs     []int
	Centers []geom.Vec
	Charges []float64
}

// NewArray creates an empty pad array.
func NewArray() *Array {
	return &Array{}
}

// AddTemplate appends a canonical shape and returns its template index.
func (a *Array) AddTemplate(s *Shape) int {
	a.Templates = append(a.Templates, s)
	return len(a.Templates) - 1
}

// Len returns the number of placed pads.
func (a *Array) Len() int {
	return len(a.Pads)
}

// Place instantiates a template at the given center. The template's local
// vertices are rotated around x, then y, then z (the order is load bearing)
// and translated by center. The pad's vertex list, id, centroid, and a
// zeroed charge accumulator are appended in lockstep. IDs are caller
// assigned labels and need not be unique.
//
// Place panics if template is not a valid template index.
func (a *Array) Place(center geom.Vec, template int, degX, degY, degZ float64, id int) {
	if template < 0 || template >= len(a.Templates) {
		panic("template index out of range.")
	}

	m := geom.RotationXYZ(degX, degY, degZ)
	local := a.Templates[template].Polygon
	verts := make([]geom.Vec, len(local))
	for i, v := range local {
		v.Rotate(m)
		verts[i] = v.Add(center)
	}

	a.Pads = append(a.Pads, verts)
	a.IDs = append(a.IDs, id)
	a.Centers = append(a.Centers, geom.Centroid(verts))
	a.Charges = append(a.Charges, 0)
}

// ResetCharges zeroes every pad's charge accumulator.
func (a *Array) ResetCharges() {
	for i := range a.Charges {
		a.Charges[i] = 0
	}
}

// Clone returns a deep copy of the array. Geometry construction is cheap, so
// independent clones are the natural unit for parallel Monte Carlo shards:
// one simulation invocation owns one Array at a time.
func (a *Array) Clone() *Array {
	c := &Array{
		Templates: append([]*Shape{}, a.Templates...),
		Pads:      make([][]geom.Vec, len(a.Pads)),
		IDs:       append([]int{}, a.IDs...),
		Centers:   append([]geom.Vec{}, a.Centers...),
		Charges:   append([]float64{}, a.Charges...),
	}
	for i, p := range a.Pads {
		c.Pads[i] = append([]geom.Vec{}, p...)
	}
	return c
}

// Projected returns every pad polygon projected onto the given plane.
func (a *Array) Projected(p geom.Plane) [][][2]float64 {
	out := make([][][2]float64, len(a.Pads))
	for i, verts := range a.Pads {
		out[i] = geom.ProjectPolygon(verts, p)
	}
	return out
}

// CenterXs returns the x coordinate of every pad centroid.
func (a *Array) CenterXs() []float64 {
	xs := make([]float64, len(a.Centers))
	for i, c := range a.Centers {
		xs[i] = c[geom.X]
	}
	return xs
}

// ZRange returns the smallest and largest z coordinate over all pad
// vertices. It panics on an empty array.
func (a *Array) ZRange() (min, max float64) {
	if len(a.Pads) == 0 {
		panic("ZRange of empty pad array.")
	}
	min, max = a.Pads[0][0][geom.Z], a.Pads[0][0][geom.Z]
	for _, verts := range a.Pads {
		for _, v := range verts {
			if v[geom.Z] < min {
				min = v[geom.Z]
			}
			if v[geom.Z] > max {
				max = v[geom.Z]
			}
		}
	}
	return min, max
}
