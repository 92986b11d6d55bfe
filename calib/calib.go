/*Package calib reads the calibration constants produced by the MCA spectrum
analysis: the avalanche gain and an optional linear charge to voltage
calibration. The simulator consumes them as plain numbers.
*/
package calib

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// Calibration holds the constants of one calibration run.
type Calibration struct {
	// Gain is the measured avalanche gain in electrons per incident
	// electron.
	Gain float64
	// Slope and Intercept form the linear charge to voltage calibration
	// V = Slope*Q + Intercept.
	Slope, Intercept float64
}

// Read reads a calibration from a whitespace separated table with columns
// gain, slope, intercept. The first row wins; a calibration file describes
// one detector setting.
func Read(file string) (*Calibration, error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("Calibration file '%s' is empty.", file)
	}

	c := &Calibration{
		Gain:      cols[0][0],
		Slope:     cols[1][0],
		Intercept: cols[2][0],
	}
	if c.Gain <= 0 {
		return nil, fmt.Errorf(
			"Calibration file '%s' has non-positive gain %g.", file, c.Gain,
		)
	}
	return c, nil
}

// Voltage converts a collected charge to the voltage the electronics would
// report for it.
func (c *Calibration) Voltage(charge float64) float64 {
	return c.Slope*charge + c.Intercept
}
