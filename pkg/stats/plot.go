package stats

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoFrames is returned when plotting a run that completed no frames.
var ErrNoFrames = errors.New("stats: no frames to plot")

// Plot saves a line chart of the instructions executed per frame to
// filename. The image format follows the extension (.png, .svg, .pdf).
func Plot(c *Counter, filename string) error {
	perFrame := c.PerFrame()
	if len(perFrame) == 0 {
		return ErrNoFrames
	}

	p := plot.New()
	p.Title.Text = "Instructions per frame"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Instructions"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(perFrame))
	for i, n := range perFrame {
		xys[i].X = float64(i + 1)
		xys[i].Y = float64(n)
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
