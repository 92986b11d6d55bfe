/*Package render draws pad arrays and simulated tracks to image files. It is a
thin layer over gonum/plot: every exported function either returns a *plot.Plot
for further decoration or saves straight to disk.
*/
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/catm-exp/padsim/geom"
	"github.com/catm-exp/padsim/pad"
	"github.com/catm-exp/padsim/sim"
)

var (
	padEdgeColor  = color.RGBA{60, 60, 60, 255}
	trackColor    = color.RGBA{200, 30, 30, 255}
	diffusedColor = color.RGBA{30, 60, 200, 120}
)

func polygonXYs(poly [][2]float64) plotter.XYs {
	xys := make(plotter.XYs, len(poly))
	for i, pt := range poly {
		xys[i].X, xys[i].Y = pt[0], pt[1]
	}
	return xys
}

func planeLabels(p geom.Plane) (x, y string) {
	names := [3]string{"x (mm)", "y (mm)", "z (mm)"}
	return names[p.I], names[p.J]
}

// Pads draws every pad of a projected onto the plane p as a polygon outline.
// With showIDs set, each pad's id is drawn at its centroid, which is only
// legible for the smaller arrays.
func Pads(a *pad.Array, p geom.Plane, showIDs bool) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = "Pad layout"
	plt.X.Label.Text, plt.Y.Label.Text = planeLabels(p)

	for _, poly := range a.Projected(p) {
		pg, err := plotter.NewPolygon(polygonXYs(poly))
		if err != nil {
			return nil, err
		}
		pg.Color = color.RGBA{0, 0, 0, 0}
		pg.LineStyle.Color = padEdgeColor
		pg.LineStyle.Width = vg.Points(0.5)
		plt.Add(pg)
	}

	if showIDs {
		labels := plotter.XYLabels{
			XYs:    make(plotter.XYs, a.Len()),
			Labels: make([]string, a.Len()),
		}
		for i, c := range a.Centers {
			x, y := p.Project(c)
			labels.XYs[i].X, labels.XYs[i].Y = x, y
			labels.Labels[i] = fmt.Sprintf("%d", a.IDs[i])
		}
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		plt.Add(l)
	}

	return plt, nil
}

// Charges draws a's pads shaded by their accumulated charge. Pads at the
// maximum charge are drawn fully opaque, zero charge pads as outlines.
func Charges(a *pad.Array, p geom.Plane) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = "Pad charges"
	plt.X.Label.Text, plt.Y.Label.Text = planeLabels(p)

	max := 0.0
	for _, q := range a.Charges {
		if q > max {
			max = q
		}
	}

	for i, poly := range a.Projected(p) {
		pg, err := plotter.NewPolygon(polygonXYs(poly))
		if err != nil {
			return nil, err
		}
		alpha := 0.0
		if max > 0 {
			alpha = a.Charges[i] / max
		}
		pg.Color = color.RGBA{200, 30, 30, uint8(alpha * 255)}
		pg.LineStyle.Color = padEdgeColor
		pg.LineStyle.Width = vg.Points(0.5)
		plt.Add(pg)
	}

	return plt, nil
}

func scatter(
	points []geom.Vec, p geom.Plane, c color.Color, r vg.Length,
) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X, xys[i].Y = p.Project(pt)
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = r
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// Track overlays one simulated event on the pad layout: the diffused electron
// cloud in blue under the ionization points in red.
func Track(s *sim.Simulator, p geom.Plane) (*plot.Plot, error) {
	plt, err := Pads(s.Pads, p, false)
	if err != nil {
		return nil, err
	}
	plt.Title.Text = "Simulated track"

	cloud, err := scatter(s.DiffusedPoints, p, diffusedColor, vg.Points(1))
	if err != nil {
		return nil, err
	}
	ion, err := scatter(s.IonizationPoints, p, trackColor, vg.Points(2))
	if err != nil {
		return nil, err
	}
	plt.Add(cloud, ion)

	return plt, nil
}

// SavePads renders a's layout to an image file. The format follows the file
// extension, as in plot.Plot.Save.
func SavePads(a *pad.Array, p geom.Plane, showIDs bool, file string) error {
	plt, err := Pads(a, p, showIDs)
	if err != nil {
		return err
	}
	return plt.Save(6*vg.Inch, 6*vg.Inch, file)
}

// SaveTrack renders one simulated event to an image file.
func SaveTrack(s *sim.Simulator, p geom.Plane, file string) error {
	plt, err := Track(s, p)
	if err != nil {
		return err
	}
	return plt.Save(6*vg.Inch, 6*vg.Inch, file)
}
