/*Package io reads the configuration files that drive the padsim CLI. The
detector choice and every simulation knob live in gcfg (INI style) files so
that layout constants and gains are injectable rather than baked into the
binary.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/pad"
	"github.com/catm-exp/padsim/pad/catm"
)

const ExampleShowPadsFile = `[ShowPads]

#######################
# Required Parameters #
#######################

# Detector selects the pad layout. One of:
# [ beam-tpc | recoil-tpc | ssd | trial-beamtpc ]
Detector = recoil-tpc

# Output file the pad map is drawn to (png).
Output = pads.png

#######################
# Optional Parameters #
#######################

# Projection plane the pads are drawn in. Default is xz.
# Plane = xz

# Trial layout version, only read when Detector = trial-beamtpc.
# Versions 0 and 1 are the quarter shift 22 pad layout, version 2 the
# 60 channel layout.
# PadVersion = 0

# Draw each pad's id at its centroid.
# ShowIDs = true`

const ExampleSimulateFile = `[Simulate]

#######################
# Required Parameters #
#######################

# Detector selects the pad layout. One of:
# [ beam-tpc | recoil-tpc | ssd | trial-beamtpc ]
Detector = trial-beamtpc

# Number of Monte Carlo events.
Events = 1000

#######################
# Optional Parameters #
#######################

# Trial layout version, only read when Detector = trial-beamtpc.
# PadVersion = 0

# Avalanche (GEM) gain. Ignored when CalibrationFile is set.
# GemGain = 120

# CalibrationFile points to a whitespace table with columns
# gain, slope, intercept, as produced by the MCA calibration analysis.
# When set, its gain overrides GemGain.
# CalibrationFile = path/to/calib.txt

# Diffusion sampling: DiffusionGain electrons are scattered per ionization
# point with a Gaussian of width Diffusion. These are sampling knobs, not
# calibrated drift physics.
# DiffusionGain = 20
# Diffusion = 0.5

# Number of ionization points per track.
# Points = 100

# Per-pad charge threshold (pC) applied during position reconstruction,
# and the global threshold used for the pad multiplicity count.
# Threshold = 0.2
# GlobalThreshold = 0.2

# Track start height and direction. The start x is the pad plane's mean
# center x and the start z sits one millimeter upstream of the pads.
# StartY = 19.8
# Theta = 0
# Phi = 0

# Smearing of the five track parameters (x, y, z, theta, phi): a
# distribution label per component from [ null | gaus | uniform ] and a
# width parameter per component.
# Distributions = gaus,gaus,null,gaus,gaus
# DistributionParams = 5,5,5,10,10

# Seed of the random source. Equal seeds reproduce runs exactly.
# Seed = 0

# When set, the first event's track and diffusion cloud are drawn here.
# TrackFile = track.png`

type ShowPadsConfig struct {
	// Required
	Detector string
	Output   string

	// Optional
	Plane      string
	PadVersion int
	ShowIDs    bool
}

type ShowPadsWrapper struct {
	ShowPads ShowPadsConfig
}

func DefaultShowPadsWrapper() *ShowPadsWrapper {
	return &ShowPadsWrapper{ShowPadsConfig{Plane: "xz"}}
}

func (con *ShowPadsConfig) CheckInit() error {
	if con.Output == "" {
		return fmt.Errorf("Need to specify an Output file.")
	}
	if _, err := geom.ParsePlane(con.Plane); err != nil {
		return err
	}
	_, err := BuildDetector(con.Detector, con.PadVersion)
	return err
}

type SimulateConfig struct {
	// Required
	Detector string
	Events   int

	// Optional
	PadVersion int

	GemGain         float64
	CalibrationFile string
	DiffusionGain   int
	Diffusion       float64
	Points          int
	Threshold       float64
	GlobalThreshold float64

	StartY float64
	Theta  float64
	Phi    float64

	Distributions      string
	DistributionParams string

	Seed      uint64
	TrackFile string
}

type SimulateWrapper struct {
	Simulate SimulateConfig
}

func DefaultSimulateWrapper() *SimulateWrapper {
	con := SimulateConfig{}
	con.GemGain = 120
	con.DiffusionGain = 20
	con.Diffusion = 0.5
	con.Points = 100
	con.Threshold = 0.2
	con.GlobalThreshold = 0.2
	con.StartY = 19.8
	con.Distributions = "gaus,gaus,null,gaus,gaus"
	con.DistributionParams = "5,5,5,10,10"
	return &SimulateWrapper{con}
}

func (con *SimulateConfig) CheckInit() error {
	if con.Events <= 0 {
		return fmt.Errorf(
			"Need to specify a positive number of Events, but got %d.",
			con.Events,
		)
	} else if con.GemGain <= 0 && con.CalibrationFile == "" {
		return fmt.Errorf(
			"GemGain must be positive, but is %g.", con.GemGain,
		)
	} else if con.DiffusionGain <= 0 {
		return fmt.Errorf(
			"DiffusionGain must be positive, but is %d.", con.DiffusionGain,
		)
	} else if con.Diffusion < 0 {
		return fmt.Errorf(
			"Diffusion must be non-negative, but is %g.", con.Diffusion,
		)
	} else if con.Points <= 0 {
		return fmt.Errorf(
			"Points must be positive, but is %d.", con.Points,
		)
	}

	_, err := BuildDetector(con.Detector, con.PadVersion)
	return err
}

// BuildDetector constructs the pad array named by a config Detector string.
func BuildDetector(name string, version int) (*pad.Array, error) {
	switch name {
	case "beam-tpc":
		return catm.BeamTPC(), nil
	case "recoil-tpc":
		return catm.RecoilTPC(), nil
	case "ssd":
		return catm.SSD(), nil
	case "trial-beamtpc":
		return catm.TrialBeamTPC(version)
	}
	return nil, fmt.Errorf(
		"Detector must be one of [ beam-tpc | recoil-tpc | ssd | "+
			"trial-beamtpc ], but is '%s'.", name,
	)
}

// ReadShowPadsConfig reads and validates a ShowPads config file.
func ReadShowPadsConfig(fname string) (*ShowPadsConfig, error) {
	wrap := DefaultShowPadsWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.ShowPads.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.ShowPads, nil
}

// ReadSimulateConfig reads and validates a Simulate config file.
func ReadSimulateConfig(fname string) (*SimulateConfig, error) {
	wrap := DefaultSimulateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Simulate.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Simulate, nil
}
