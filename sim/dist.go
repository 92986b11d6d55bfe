package sim

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DistKind selects how one track parameter component is smeared.
type DistKind int

const (
	// Identity returns the base value unchanged.
	Identity DistKind = iota
	// Gaussian samples Normal(base, param).
	Gaussian
	// Uniform samples Uniform(base - param, base + param).
	Uniform
)

// Dist is one tagged smearing distribution: a kind and its width parameter.
// The parameter is ignored for Identity.
type Dist struct {
	Kind  DistKind
	Param float64
}

// ParseDistKind converts a label to a DistKind. "null" is accepted as a
// synonym for "identity". Unknown labels are rejected rather than silently
// skipped.
func ParseDistKind(label string) (DistKind, error) {
	switch strings.TrimSpace(label) {
	case "null", "identity":
		return Identity, nil
	case "gaus", "gaussian":
		return Gaussian, nil
	case "uniform":
		return Uniform, nil
	}
	return 0, fmt.Errorf("Unknown distribution label %q.", label)
}

// ParseDists builds a distribution vector from comma separated label and
// parameter strings, e.g. "gaus,gaus,null,gaus,gaus" and "5,5,5,10,10".
// The two lists must have the same length.
func ParseDists(labels, params string) ([]Dist, error) {
	ls := strings.Split(labels, ",")
	ps := strings.Split(params, ",")
	if len(ls) != len(ps) {
		return nil, fmt.Errorf(
			"Distribution labels and parameters have mismatched lengths "+
				"%d and %d.", len(ls), len(ps),
		)
	}

	dists := make([]Dist, len(ls))
	for i := range ls {
		kind, err := ParseDistKind(ls[i])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(ps[i]), 64)
		if err != nil {
			return nil, fmt.Errorf(
				"Invalid distribution parameter %q.", ps[i],
			)
		}
		dists[i] = Dist{kind, p}
	}
	return dists, nil
}

// sample draws one value around base from the distribution.
func (d Dist) sample(src *rand.Rand, base float64) float64 {
	switch d.Kind {
	case Gaussian:
		return distuv.Normal{Mu: base, Sigma: d.Param, Src: src}.Rand()
	case Uniform:
		return distuv.Uniform{
			Min: base - d.Param, Max: base + d.Param, Src: src,
		}.Rand()
	}
	return base
}
