package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/pad/catm"
	"github.com/catm-exp/padsim/sim"
)

func TestSavePads(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pads.png")
	if err := SavePads(catm.BeamTPC(), geom.XZ, true, file); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty image")
	}
}

func TestSaveTrack(t *testing.T) {
	s := sim.New(catm.BeamTPC(), sim.DefaultParams(), 0)
	start := geom.Vec{0, 19.8, -60}
	if err := s.GenerateTrack(start, 0, 0, 120, 50); err != nil {
		t.Fatal(err)
	}
	if err := s.GenerateIonization(start, 0, 0, 120, 50); err != nil {
		t.Fatal(err)
	}
	s.Diffuse(geom.XZ, 5, 0.5)

	file := filepath.Join(t.TempDir(), "track.png")
	if err := SaveTrack(s, geom.XZ, file); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatal(err)
	}
}

func TestChargesPlot(t *testing.T) {
	a := catm.BeamTPC()
	a.Charges[3] = 2.5

	if _, err := Charges(a, geom.XZ); err != nil {
		t.Fatal(err)
	}
}
