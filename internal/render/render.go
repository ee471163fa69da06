// Package render prints and plots sampled functions.
package render

import (
	"errors"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/zephyrtronium/funcplot"
)

// Plot dimensions.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// ErrNoData is returned when there is no finite point to plot.
var ErrNoData = errors.New("render: no finite points to plot")

// Table writes pts as two aligned columns headed "x" and "y".
func Table(w io.Writer, pts []funcplot.Point) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := io.WriteString(tw, "x\ty\n"); err != nil {
		return err
	}
	for _, p := range pts {
		if _, err := io.WriteString(tw, ftoa(p.X)+"\t"+ftoa(p.Y)+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Segments splits pts into runs of finite points. Samples where the function
// is undefined or infinite break the line rather than being drawn.
func Segments(pts []funcplot.Point) []plotter.XYs {
	var r []plotter.XYs
	var cur plotter.XYs
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			if len(cur) > 0 {
				r = append(r, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: p.X, Y: p.Y})
	}
	if len(cur) > 0 {
		r = append(r, cur)
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// New creates a line plot of pts titled with title.
func New(title string, pts []funcplot.Point) (*plot.Plot, error) {
	segs := Segments(pts)
	if len(segs) == 0 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	for _, seg := range segs {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}
	return p, nil
}

// Save plots pts to a file. The image format follows the file extension, one
// of .eps, .jpg, .jpeg, .pdf, .png, .svg, .tex, .tif, or .tiff.
func Save(path, title string, pts []funcplot.Point) error {
	p, err := New(title, pts)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, path)
}

// Write plots pts to w in the given image format, e.g. "png" or "svg".
func Write(w io.Writer, format, title string, pts []funcplot.Point) error {
	p, err := New(title, pts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Kinds lists each kind with its general form.
func Kinds(w io.Writer, ks []funcplot.Kind) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, k := range ks {
		if _, err := io.WriteString(tw, k.String()+"\t"+k.GeneralForm()+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
