package geom

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestCentroid(t *testing.T) {
	table := []struct {
		verts []Vec
		res   Vec
	}{
		{[]Vec{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}, Vec{1, 1, 0}},
		{[]Vec{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, Vec{1, 1, 1}},
		{[]Vec{{-1, 0, 3}, {1, 0, 5}}, Vec{0, 0, 4}},
	}

	for i, test := range table {
		c := Centroid(test.verts)
		if !vecEpsEq(&c, &test.res, testEps) {
			t.Errorf("%d) Centroid(%v) = %v, not %v", i+1, test.verts, c, test.res)
		}
	}
}

func TestPolygonContains(t *testing.T) {
	square := [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	triangle := [][2]float64{{0, 0}, {4, 0}, {0, 4}}

	table := []struct {
		poly [][2]float64
		x, y float64
		res  bool
	}{
		{square, 1, 1, true},
		{square, 3, 1, false},
		{square, -1, 1, false},
		{square, 1, 3, false},
		{square, 1, -1, false},
		{triangle, 1, 1, true},
		{triangle, 3, 3, false},
		{triangle, -0.1, 1, false},
	}

	for i, test := range table {
		if PolygonContains(test.poly, test.x, test.y) != test.res {
			t.Errorf("%d) PolygonContains(%v, %g, %g) = %v, not %v", i+1,
				test.poly, test.x, test.y, !test.res, test.res)
		}
	}
}

// A point on an edge shared by two polygons tiling a region must land in
// exactly one of them.
func TestPolygonContainsSharedEdge(t *testing.T) {
	left := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	right := [][2]float64{{1, 0}, {2, 0}, {2, 1}, {1, 1}}

	pts := [][2]float64{{1, 0.5}, {1, 0.25}, {1, 0.75}}
	for i, pt := range pts {
		inLeft := PolygonContains(left, pt[0], pt[1])
		inRight := PolygonContains(right, pt[0], pt[1])
		if inLeft == inRight {
			t.Errorf("%d) edge point %v in left=%v right=%v; want exactly one",
				i+1, pt, inLeft, inRight)
		}
	}
}

func TestPolygonContainsMC(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping TestPolygonContainsMC")
	}

	// Right triangle covering half of the unit square.
	tri := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	rng := rand.New(rand.NewSource(42))

	inside, total := 0, 1000000
	for i := 0; i < total; i++ {
		if PolygonContains(tri, rng.Float64(), rng.Float64()) {
			inside++
		}
	}

	frac := float64(inside) / float64(total)
	if math.Abs(frac-0.5) > 0.005 {
		t.Errorf("%d point MC integration of triangle area gives %f "+
			"instead of 0.5.", total, frac)
	}
}

func TestProjectPolygon(t *testing.T) {
	verts := []Vec{{1, 2, 3}, {4, 5, 6}}

	xz := ProjectPolygon(verts, XZ)
	if xz[0] != [2]float64{1, 3} || xz[1] != [2]float64{4, 6} {
		t.Errorf("ProjectPolygon(xz) = %v", xz)
	}

	zy := ProjectPolygon(verts, Plane{Z, Y})
	if zy[0] != [2]float64{3, 2} || zy[1] != [2]float64{6, 5} {
		t.Errorf("ProjectPolygon(zy) = %v", zy)
	}
}

func BenchmarkPolygonContains(b *testing.B) {
	poly := [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	rng := rand.New(rand.NewSource(0))
	xs := make([]float64, 1024)
	ys := make([]float64, 1024)
	for i := range xs {
		xs[i], ys[i] = rng.Float64()*3, rng.Float64()*3
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PolygonContains(poly, xs[i%len(xs)], ys[i%len(ys)])
	}
}
