// Package wavplot implements the gonum/plot plotters that draw sequence
// diagrams: filled waveforms, the projected time-axis baseline, and the
// text/marker annotations layered on top of them.
package wavplot

import (
	"image/color"
	"math"

	"github.com/seqviz/seqplot/seq/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WaveformPlot draws one channel of a sequence diagram. Each overlay
// variant is rendered independently: the area between the curve and the
// baseline is filled, then the curve is outlined. Absent stretches are
// skipped entirely, so nothing is drawn where nothing happened.
type WaveformPlot struct {
	T         []float64
	Columns   [][]model.Sample
	LineStyle draw.LineStyle
	FillColor color.Color
}

var _ plot.Plotter = &WaveformPlot{}

func NewWaveformPlot(ch *model.Channel, ls draw.LineStyle, fill color.Color) *WaveformPlot {
	cols := make([][]model.Sample, ch.Variants())
	for j := range cols {
		cols[j] = ch.Column(j)
	}
	return &WaveformPlot{
		T:         ch.Grid().Points(),
		Columns:   cols,
		LineStyle: ls,
		FillColor: fill,
	}
}

// run is a maximal stretch of consecutive present samples, inclusive.
type run struct {
	lo, hi int
}

func presentRuns(col []model.Sample) (runs []run) {
	lo := -1
	for i, s := range col {
		if s.OK && lo < 0 {
			lo = i
		}
		if !s.OK && lo >= 0 {
			runs = append(runs, run{lo, i - 1})
			lo = -1
		}
	}
	if lo >= 0 {
		runs = append(runs, run{lo, len(col) - 1})
	}
	return runs
}

func (w *WaveformPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	y0 := trY(0)

	for _, col := range w.Columns {
		for _, r := range presentRuns(col) {
			if r.hi == r.lo {
				continue // a single sample has no extent to draw
			}
			pts := make([]vg.Point, 0, r.hi-r.lo+1)
			for i := r.lo; i <= r.hi; i++ {
				pts = append(pts, vg.Point{X: trX(w.T[i]), Y: trY(col[i].V)})
			}
			poly := make([]vg.Point, len(pts), len(pts)+2)
			copy(poly, pts)
			poly = append(poly,
				vg.Point{X: pts[len(pts)-1].X, Y: y0},
				vg.Point{X: pts[0].X, Y: y0})
			c.FillPolygon(w.FillColor, c.ClipPolygonXY(poly))
			c.StrokeLines(w.LineStyle, c.ClipLinesXY(pts)...)
		}
	}
}

func (w *WaveformPlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, t := range w.T {
		xmin = math.Min(xmin, t)
		xmax = math.Max(xmax, t)
	}
	for _, col := range w.Columns {
		for _, s := range col {
			if !s.OK || math.IsNaN(s.V) {
				continue
			}
			ymin = math.Min(ymin, s.V)
			ymax = math.Max(ymax, s.V)
		}
	}
	if ymin > ymax {
		ymin, ymax = 0, 0
	}
	return xmin, xmax, ymin, ymax
}

// TextStyle builds the annotation text style used across the package,
// centered on the anchor point horizontally and sitting on top of it.
func TextStyle(size vg.Length) draw.TextStyle {
	return text.Style{
		Font:    font.From(plotter.DefaultFont, size),
		XAlign:  draw.XCenter,
		YAlign:  draw.YBottom,
		Handler: plot.DefaultTextHandler,
	}
}
