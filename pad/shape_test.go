package pad

import (
	"math"
	"testing"
)

func epsEq(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}

func TestRegularNGonGeometry(t *testing.T) {
	edge := 4.74
	for n := 3; n <= 12; n++ {
		s, err := RegularNGon(n, edge, 0)
		if err != nil {
			t.Fatalf("RegularNGon(%d) returned error: %v", n, err)
		}
		if len(s.Polygon) != n {
			t.Errorf("RegularNGon(%d) has %d vertices", n, len(s.Polygon))
		}

		radius := edge / (2 * math.Sin(math.Pi/float64(n)))
		for i, d := range s.CenterVertexDistances() {
			if !epsEq(d, radius, 1e-9) {
				t.Errorf("n=%d) vertex %d at distance %g, not %g",
					n, i, d, radius)
			}
		}

		// Adjacent vertices must be an edge length apart.
		for i := range s.Polygon {
			d := s.Polygon[i].Sub(s.Polygon[(i+1)%n])
			l := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
			if !epsEq(l, edge, 1e-9) {
				t.Errorf("n=%d) edge %d has length %g, not %g", n, i, l, edge)
			}
		}

		// The embedding plane holds y at zero.
		for i, v := range s.Polygon {
			if v[1] != 0 {
				t.Errorf("n=%d) vertex %d has y = %g", n, i, v[1])
			}
		}
	}
}

func TestRegularNGonRotation(t *testing.T) {
	s0, _ := RegularNGon(3, 2, 0)
	s90, _ := RegularNGon(3, 2, 90)

	// In-plane rotation by 90 degrees maps (x, z) to (-z, x).
	for i := range s0.Polygon {
		v0, v90 := s0.Polygon[i], s90.Polygon[i]
		if !epsEq(v90[0], -v0[2], 1e-9) || !epsEq(v90[2], v0[0], 1e-9) {
			t.Errorf("vertex %d: rot 90 gives %v from %v", i, v90, v0)
		}
	}
}

func TestRegularNGonTooFewSides(t *testing.T) {
	for _, n := range []int{2, 1, 0, -3} {
		if _, err := RegularNGon(n, 1, 0); err == nil {
			t.Errorf("RegularNGon(%d) did not fail", n)
		}
	}
}

func TestOblongQuad(t *testing.T) {
	table := []struct {
		plane string
		zero  int // axis held at zero
	}{
		{"yz", 0}, {"zy", 0},
		{"xy", 2}, {"yx", 2},
		{"xz", 1}, {"zx", 1},
	}

	for i, test := range table {
		s, err := OblongQuad(4, 2, test.plane)
		if err != nil {
			t.Fatalf("%d) OblongQuad(%q) error: %v", i+1, test.plane, err)
		}
		if len(s.Polygon) != 4 {
			t.Errorf("%d) OblongQuad has %d corners", i+1, len(s.Polygon))
		}
		for j, v := range s.Polygon {
			if v[test.zero] != 0 {
				t.Errorf("%d) corner %d has nonzero axis %d: %v",
					i+1, j, test.zero, v)
			}
		}

		// Adjacent corner distances alternate between the two extents.
		want := [4]float64{2, 4, 2, 4}
		if test.plane == "yz" || test.plane == "zy" {
			want = [4]float64{4, 2, 4, 2}
		}
		for j := range s.Polygon {
			d := s.Polygon[j].Sub(s.Polygon[(j+1)%4])
			l := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
			if !epsEq(l, want[j], 1e-9) {
				t.Errorf("%d) side %d has length %g, not %g", i+1, j, l, want[j])
			}
		}
	}
}

func TestOblongQuadBadPlane(t *testing.T) {
	if _, err := OblongQuad(4, 2, "ww"); err == nil {
		t.Error("OblongQuad with invalid plane did not fail")
	}
}
