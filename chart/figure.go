package chart

import (
	"github.com/seqviz/seqplot/chart/wavplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a composed diagram: one plot per display row, stacked
// vertically on a shared canvas. Callers may still add plotters to
// individual rows before drawing.
type Figure struct {
	Rows []*plot.Plot
}

// Row returns the plot for one display row, in layout order.
func (f *Figure) Row(i int) *plot.Plot {
	return f.Rows[i]
}

// Draw tiles the rows top to bottom over the whole canvas with no vertical
// gap, so adjacent baselines read as one continuous diagram.
func (f *Figure) Draw(dc draw.Canvas) {
	grid := make([][]*plot.Plot, len(f.Rows))
	for i, p := range f.Rows {
		grid[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{Rows: len(f.Rows), Cols: 1}
	canvases := plot.Align(grid, tiles, dc)
	for i, p := range f.Rows {
		p.Draw(canvases[i][0])
	}
}

// Save renders the figure to a file, deriving the format from the
// extension.
func (f *Figure) Save(width, height vg.Length, path string) error {
	return wavplot.SaveFigure(f, width, height, path)
}

// Display opens the figure in a window; see wavplot.DisplayFigure.
func (f *Figure) Display(exportPath string) error {
	return wavplot.DisplayFigure(f, exportPath)
}

// DashedLine builds the marker line style used by vertical annotations.
func DashedLine(ls draw.LineStyle, pattern ...vg.Length) draw.LineStyle {
	if len(pattern) == 0 {
		pattern = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	ls.Dashes = pattern
	return ls
}
