package wavplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BaselinePlot draws the horizontal time axis of one diagram row at y=0.
// With a visibility mask it is stroked only over the masked-in stretches,
// so the axis disappears underneath active waveforms; with a nil mask it
// runs across the whole grid. A filled arrowhead past the final grid point
// suggests that time continues.
type BaselinePlot struct {
	T         []float64
	Visible   []bool // nil draws the axis everywhere
	LineStyle draw.LineStyle

	// Arrowhead dimensions; zero length disables the arrow.
	ArrowWidth  vg.Length
	ArrowLength vg.Length
}

var _ plot.Plotter = &BaselinePlot{}

func (b *BaselinePlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	y := trY(0)
	if !c.ContainsY(y) {
		return
	}

	for _, r := range b.visibleRuns() {
		if r.hi == r.lo {
			continue
		}
		c.StrokeLine2(b.LineStyle, trX(b.T[r.lo]), y, trX(b.T[r.hi]), y)
	}

	if b.ArrowLength > 0 {
		base := trX(b.T[len(b.T)-1])
		tip := base + b.ArrowLength
		c.FillPolygon(b.LineStyle.Color, []vg.Point{
			{X: tip, Y: y},
			{X: base, Y: y + b.ArrowWidth/2},
			{X: base, Y: y - b.ArrowWidth/2},
		})
	}
}

func (b *BaselinePlot) visibleRuns() []run {
	if b.Visible == nil {
		return []run{{0, len(b.T) - 1}}
	}
	lo := -1
	var runs []run
	for i, v := range b.Visible {
		if v && lo < 0 {
			lo = i
		}
		if !v && lo >= 0 {
			runs = append(runs, run{lo, i - 1})
			lo = -1
		}
	}
	if lo >= 0 {
		runs = append(runs, run{lo, len(b.Visible) - 1})
	}
	return runs
}

func (b *BaselinePlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.T[0], b.T[len(b.T)-1], 0, 0
}
