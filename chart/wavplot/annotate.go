package wavplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// VLinePlot draws a vertical marker line spanning the full height of its
// row, typically dashed, used to relate simultaneous events across rows.
// It deliberately implements no DataRange so a marker outside the data
// never widens the frame.
type VLinePlot struct {
	X         float64
	LineStyle draw.LineStyle
}

var _ plot.Plotter = &VLinePlot{}

func (v *VLinePlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	x := trX(v.X)
	if !c.ContainsX(x) {
		return
	}
	c.StrokeLine2(v.LineStyle, x, c.Min.Y, x, c.Max.Y)
}

// LabelPlot places free text centered above an anchor point in data
// coordinates.
type LabelPlot struct {
	X, Y      float64
	Text      string
	TextStyle draw.TextStyle
}

var _ plot.Plotter = &LabelPlot{}

func NewLabelPlot(x, y float64, txt string, size vg.Length) *LabelPlot {
	return &LabelPlot{X: x, Y: y, Text: txt, TextStyle: TextStyle(size)}
}

func (l *LabelPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pt := vg.Point{X: trX(l.X), Y: trY(l.Y)}
	if !c.Contains(pt) {
		return
	}
	c.FillText(l.TextStyle, pt, l.Text)
}

// IntervalPlot draws a double-headed horizontal arrow between two time
// points with an optional caption above its midpoint, used for things like
// labeling an echo-time interval.
type IntervalPlot struct {
	X0, X1    float64
	Y         float64
	Text      string
	LineStyle draw.LineStyle
	TextStyle draw.TextStyle

	ArrowWidth  vg.Length
	ArrowLength vg.Length
}

var _ plot.Plotter = &IntervalPlot{}

func NewIntervalPlot(x0, x1, y float64, txt string, ls draw.LineStyle, size vg.Length) *IntervalPlot {
	return &IntervalPlot{
		X0:          x0,
		X1:          x1,
		Y:           y,
		Text:        txt,
		LineStyle:   ls,
		TextStyle:   TextStyle(size),
		ArrowWidth:  vg.Points(6),
		ArrowLength: vg.Points(8),
	}
}

func (iv *IntervalPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x0, x1 := trX(iv.X0), trX(iv.X1)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y := trY(iv.Y)
	if !c.ContainsY(y) {
		return
	}

	c.StrokeLine2(iv.LineStyle, x0+iv.ArrowLength, y, x1-iv.ArrowLength, y)
	// outward-pointing heads at both ends
	c.FillPolygon(iv.LineStyle.Color, []vg.Point{
		{X: x0, Y: y},
		{X: x0 + iv.ArrowLength, Y: y + iv.ArrowWidth/2},
		{X: x0 + iv.ArrowLength, Y: y - iv.ArrowWidth/2},
	})
	c.FillPolygon(iv.LineStyle.Color, []vg.Point{
		{X: x1, Y: y},
		{X: x1 - iv.ArrowLength, Y: y + iv.ArrowWidth/2},
		{X: x1 - iv.ArrowLength, Y: y - iv.ArrowWidth/2},
	})

	if iv.Text != "" {
		c.FillText(iv.TextStyle, vg.Point{X: (x0 + x1) / 2, Y: y + vg.Points(2)}, iv.Text)
	}
}
