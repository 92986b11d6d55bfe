package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/catm-exp/padsim/calib"
	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/io"
	"github.com/catm-exp/padsim/recon"
	"github.com/catm-exp/padsim/render"
	"github.com/catm-exp/padsim/sim"
)

func main() {
	var (
		showPads, simulate string
		exampleConfig      string
	)
	vars := map[string]*string{
		"ShowPads":      &showPads,
		"Simulate":      &simulate,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&showPads, "ShowPads", "",
		"Configuration file for [ShowPads] mode.",
	)
	flag.StringVar(
		&simulate, "Simulate", "",
		"Configuration file for [Simulate] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'ShowPads' "+
			"and 'Simulate'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "ShowPads":
		con, err := io.ReadShowPadsConfig(showPads)
		if err != nil {
			log.Fatal(err.Error())
		}
		showPadsMain(con)
	case "Simulate":
		con, err := io.ReadSimulateConfig(simulate)
		if err != nil {
			log.Fatal(err.Error())
		}
		simulateMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "ShowPads":
			fmt.Println(io.ExampleShowPadsFile)
		case "Simulate":
			fmt.Println(io.ExampleSimulateFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'ShowPads' and 'Simulate'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but padsim "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func showPadsMain(con *io.ShowPadsConfig) {
	pads, err := io.BuildDetector(con.Detector, con.PadVersion)
	if err != nil {
		log.Fatal(err.Error())
	}
	plane, err := geom.ParsePlane(con.Plane)
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf("Drawing %d pads to %s.", pads.Len(), con.Output)
	if err := render.SavePads(pads, plane, con.ShowIDs, con.Output); err != nil {
		log.Fatal(err.Error())
	}
}

func simulateMain(con *io.SimulateConfig) {
	pads, err := io.BuildDetector(con.Detector, con.PadVersion)
	if err != nil {
		log.Fatal(err.Error())
	}

	params := sim.DefaultParams()
	params.Gain = con.GemGain
	if con.CalibrationFile != "" {
		c, err := calib.Read(con.CalibrationFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Using calibrated gain %g from %s.",
			c.Gain, con.CalibrationFile)
		params.Gain = c.Gain
	}

	dists, err := sim.ParseDists(con.Distributions, con.DistributionParams)
	if err != nil {
		log.Fatal(err.Error())
	}

	// The nominal track starts at the pad plane's mean center x, one
	// millimeter upstream of the first pad edge, and crosses the full pad
	// extent plus a millimeter on either side.
	xs := pads.CenterXs()
	minZ, maxZ := pads.ZRange()
	base := sim.TrackParams{
		X:    floats.Sum(xs) / float64(len(xs)),
		Y:    con.StartY,
		Z:    minZ - 1,
		Elev: con.Theta,
		Azim: con.Phi,
	}
	cfg := sim.RunConfig{
		Plane:         geom.XZ,
		ZExtent:       maxZ - minZ + 2,
		Points:        con.Points,
		DiffusionGain: con.DiffusionGain,
		Sigma:         con.Diffusion,
	}

	s := sim.New(pads, params, con.Seed)
	tracks, err := s.MonteCarloTracks(con.Events, base, dists)
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf("Simulating %d events on %d pads.", len(tracks), pads.Len())
	events, err := s.SimulateMany(tracks, cfg)
	if err != nil {
		log.Fatal(err.Error())
	}

	charges := sim.EventCharges(events)
	pos, _ := recon.ThresholdCharges(xs, charges, con.Threshold)
	mult := recon.Multiplicity(charges, con.GlobalThreshold)

	truth := make([]float64, len(tracks))
	for i := range tracks {
		truth[i] = tracks[i].X
	}
	res, err := recon.PositionResidual(truth, pos)
	if err != nil {
		log.Fatal(err.Error())
	}

	logSummary(res, mult)

	if con.TrackFile != "" {
		p := tracks[0]
		if err := s.GenerateTrack(
			p.Start(), p.Elev, p.Azim, cfg.ZExtent, cfg.Points,
		); err != nil {
			log.Fatal(err.Error())
		}
		err := s.GenerateIonization(
			p.Start(), p.Elev, p.Azim, cfg.ZExtent, cfg.Points,
		)
		if err != nil {
			log.Fatal(err.Error())
		}
		s.Diffuse(cfg.Plane, cfg.DiffusionGain, cfg.Sigma)

		log.Printf("Drawing the first event to %s.", con.TrackFile)
		err = render.SaveTrack(s, cfg.Plane, con.TrackFile)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

// logSummary prints the mean and RMS of the finite position residuals and
// the mean pad multiplicity. Events whose reconstruction failed (no charge
// above threshold) are counted but excluded from the residual moments.
func logSummary(res []float64, mult []int) {
	n, sum, sqrSum := 0, 0.0, 0.0
	for _, r := range res {
		if math.IsNaN(r) {
			continue
		}
		n++
		sum += r
		sqrSum += r * r
	}

	log.Printf("Reconstructed %d/%d events.", n, len(res))
	if n > 0 {
		mean := sum / float64(n)
		log.Printf("Residual mean: %.4g mm, rms: %.4g mm.",
			mean, math.Sqrt(sqrSum/float64(n)))
	}

	multSum := 0
	for _, m := range mult {
		multSum += m
	}
	log.Printf("Mean pad multiplicity: %.3g.",
		float64(multSum)/float64(len(mult)))
}
