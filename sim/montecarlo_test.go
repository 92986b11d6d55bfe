package sim

import (
	"math"
	"testing"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/pad"
)

func mcArray(t *testing.T) *pad.Array {
	t.Helper()
	s, err := pad.OblongQuad(10, 10, "xz")
	if err != nil {
		t.Fatal(err)
	}
	a := pad.NewArray()
	a.Place(geom.Vec{0, 0, 0}, a.AddTemplate(s), 0, 0, 0, 0)
	return a
}

func TestParseDists(t *testing.T) {
	table := []struct {
		labels, params string
		kinds          []DistKind
		valid          bool
	}{
		{"gaus,gaus,null,gaus,gaus", "5,5,5,10,10",
			[]DistKind{Gaussian, Gaussian, Identity, Gaussian, Gaussian},
			true},
		{"null,uniform", "0,2.5", []DistKind{Identity, Uniform}, true},
		{"gaus,gaus", "1", nil, false},
		{"gaus", "1,2", nil, false},
		{"lorentz,null", "1,2", nil, false},
		{"gaus,null", "1,abc", nil, false},
	}

	for i, test := range table {
		dists, err := ParseDists(test.labels, test.params)
		if (err == nil) != test.valid {
			t.Errorf("%d) ParseDists(%q, %q) validity %v, not %v",
				i+1, test.labels, test.params, err == nil, test.valid)
			continue
		}
		if !test.valid {
			continue
		}
		for j, d := range dists {
			if d.Kind != test.kinds[j] {
				t.Errorf("%d) component %d has kind %d, not %d",
					i+1, j, d.Kind, test.kinds[j])
			}
		}
	}
}

func TestMonteCarloTracksValidation(t *testing.T) {
	s := New(mcArray(t), DefaultParams(), 1)

	_, err := s.MonteCarloTracks(3, TrackParams{}, []Dist{{Identity, 0}})
	if err == nil {
		t.Error("short distribution vector did not fail")
	}
}

func TestMonteCarloTracksIdentity(t *testing.T) {
	s := New(mcArray(t), DefaultParams(), 1)
	base := TrackParams{X: 12.5, Y: 19.8, Z: -2, Elev: 3, Azim: -7}

	dists := make([]Dist, 5)
	tracks, err := s.MonteCarloTracks(4, base, dists)
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 4 {
		t.Fatalf("got %d tuples, not 4", len(tracks))
	}
	for i, p := range tracks {
		if p != base {
			t.Errorf("%d) identity smearing changed %v to %v", i, base, p)
		}
	}
}

func TestMonteCarloTracksReproducible(t *testing.T) {
	dists, err := ParseDists("gaus,gaus,null,uniform,gaus", "5,5,5,10,10")
	if err != nil {
		t.Fatal(err)
	}
	base := TrackParams{X: 12.5, Y: 19.8, Z: -2}

	s1 := New(mcArray(t), DefaultParams(), 1234)
	s2 := New(mcArray(t), DefaultParams(), 1234)

	t1, err := s1.MonteCarloTracks(50, base, dists)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := s2.MonteCarloTracks(50, base, dists)
	if err != nil {
		t.Fatal(err)
	}

	for i := range t1 {
		if t1[i] != t2[i] {
			t.Fatalf("%d) equal seeds diverged: %v vs %v", i, t1[i], t2[i])
		}
	}

	// The z component used the identity distribution.
	for i, p := range t1 {
		if p.Z != -2 {
			t.Errorf("%d) identity component smeared to %g", i, p.Z)
		}
	}
}

func TestMonteCarloTracksUniformBounds(t *testing.T) {
	s := New(mcArray(t), DefaultParams(), 5)
	dists := []Dist{
		{Uniform, 3}, {Identity, 0}, {Identity, 0}, {Identity, 0}, {Identity, 0},
	}

	tracks, err := s.MonteCarloTracks(500, TrackParams{X: 10}, dists)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range tracks {
		if p.X < 7 || p.X > 13 {
			t.Errorf("%d) uniform sample %g outside [7, 13]", i, p.X)
		}
	}
}

func TestSimulateMany(t *testing.T) {
	a := mcArray(t)
	s := New(a, DefaultParams(), 11)

	params := []TrackParams{
		{X: 0, Y: 20, Z: -4.9},
		{X: 100, Y: 20, Z: -4.9}, // misses the pad entirely
	}
	cfg := RunConfig{
		Plane: geom.XZ, ZExtent: 9.8, Points: 50,
		DiffusionGain: 1, Sigma: 1e-12,
	}

	events, err := s.SimulateMany(params, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, not 2", len(events))
	}

	if !events[0].OK {
		t.Error("on-pad event flagged as undefined position")
	}
	if math.Abs(events[0].X) > 1e-9 {
		t.Errorf("on-pad event reconstructed at x = %g, not 0", events[0].X)
	}
	if events[0].Charges[0] == 0 {
		t.Error("on-pad event collected no charge")
	}

	// The miss has zero total charge: explicit NaN marker, not a crash and
	// not a silent zero.
	if events[1].OK {
		t.Error("off-pad event not flagged as undefined")
	}
	if !math.IsNaN(events[1].X) {
		t.Errorf("off-pad event position = %g, not NaN", events[1].X)
	}

	// A degenerate tuple fails fast with its index.
	_, err = s.SimulateMany([]TrackParams{{Elev: 90}}, cfg)
	if err == nil {
		t.Error("degenerate tuple did not fail")
	}
}
