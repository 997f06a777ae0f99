// Package chart composes channel buffers into a renderable sequence
// diagram: an ordered stack of rows sharing one time axis and one vertical
// scale, each drawing one or more channels plus a projected baseline and
// any registered annotations.
package chart

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/seqviz/seqplot/chart/wavplot"
	"github.com/seqviz/seqplot/seq/model"
	"github.com/seqviz/seqplot/seq/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Row maps one display row to the channels drawn on it. Multiple channels
// share the row visually but are never combined numerically.
type Row struct {
	Label    string
	Channels []string
}

// Layout is the ordered list of display rows, top to bottom.
type Layout []Row

type labelAt struct {
	row  int
	x, y float64
	text string
}

type vlineAt struct {
	rows []int // nil spans every row
	t    float64
	ls   draw.LineStyle
}

type intervalAt struct {
	row    int
	x0, x1 float64
	y      float64
	text   string
}

// Diagram is a build-then-render pipeline: channels accumulate in the
// store, rows and annotations are declared here, and Compose turns the
// whole thing into a figure in one pass. There is no partial result; any
// validation failure aborts the composition.
type Diagram struct {
	store  *model.Store
	layout Layout
	base   style.Style

	channelStyles map[string]style.Style
	labels        []labelAt
	vlines        []vlineAt
	intervals     []intervalAt
}

func New(store *model.Store, layout Layout, base style.Style) *Diagram {
	return &Diagram{
		store:         store,
		layout:        layout,
		base:          base,
		channelStyles: make(map[string]style.Style),
	}
}

// SetChannelStyle overrides the diagram-wide style for one channel.
func (d *Diagram) SetChannelStyle(name string, st style.Style) {
	d.channelStyles[name] = st
}

// Label registers free text at (x, y) in data coordinates on the given row.
func (d *Diagram) Label(row int, x, y float64, text string) {
	d.labels = append(d.labels, labelAt{row: row, x: x, y: y, text: text})
}

// VLine registers a vertical marker at time t spanning the given rows;
// nil spans all of them.
func (d *Diagram) VLine(rows []int, t float64, ls draw.LineStyle) {
	d.vlines = append(d.vlines, vlineAt{rows: rows, t: t, ls: ls})
}

// Interval registers a double-headed arrow between times x0 and x1 at
// height y on the given row, captioned with text.
func (d *Diagram) Interval(row int, x0, x1, y float64, text string) {
	d.intervals = append(d.intervals, intervalAt{row: row, x0: x0, x1: x1, y: y, text: text})
}

func (d *Diagram) styleFor(channel string) style.Style {
	if st, ok := d.channelStyles[channel]; ok {
		return st
	}
	return d.base
}

// validate resolves every row's channels and checks annotation targets.
// All problems are reported at once.
func (d *Diagram) validate() ([][]*model.Channel, error) {
	var result *multierror.Error
	rows := make([][]*model.Channel, len(d.layout))
	if len(d.layout) == 0 {
		result = multierror.Append(result, fmt.Errorf("diagram layout has no rows"))
	}
	for ri, row := range d.layout {
		if len(row.Channels) == 0 {
			result = multierror.Append(result, fmt.Errorf("row %q has no channels", row.Label))
			continue
		}
		for _, name := range row.Channels {
			ch, err := d.store.Channel(name)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("row %q: %w", row.Label, err))
				continue
			}
			rows[ri] = append(rows[ri], ch)
		}
	}
	checkRow := func(kind string, row int) {
		if row < 0 || row >= len(d.layout) {
			result = multierror.Append(result, fmt.Errorf("%s targets row %d of a %d-row layout", kind, row, len(d.layout)))
		}
	}
	for _, l := range d.labels {
		checkRow("label", l.row)
	}
	for _, iv := range d.intervals {
		checkRow("interval", iv.row)
	}
	for _, vl := range d.vlines {
		for _, r := range vl.rows {
			checkRow("vline", r)
		}
	}
	return rows, result.ErrorOrNil()
}

// yLimits computes the shared vertical range: the padded global extremes
// over every present sample in the diagram, always including zero.
func (d *Diagram) yLimits(rows [][]*model.Channel) (lo, hi float64) {
	pf := d.base.PaddingFactor
	for _, row := range rows {
		for _, ch := range row {
			cmin, cmax, ok := ch.Range()
			if !ok {
				continue
			}
			if pf*cmin < lo {
				lo = pf * cmin
			}
			if pf*cmax > hi {
				hi = pf * cmax
			}
		}
	}
	if lo == 0 && hi == 0 {
		// nothing present anywhere; keep a drawable frame
		lo, hi = -1, 1
	}
	return lo, hi
}

// Compose builds the figure: one plot per row, identical axis ranges
// everywhere, waveforms in z-order, the projected (or full) baseline with
// its terminal arrow, then the registered annotations.
func (d *Diagram) Compose() (*Figure, error) {
	rows, err := d.validate()
	if err != nil {
		return nil, err
	}

	grid := d.store.Grid()
	lo, hi := d.yLimits(rows)

	axisLine := draw.LineStyle{
		Color: d.base.AxesColor.NRGBA(),
		Width: vg.Points(d.base.AxesWidth),
	}

	plots := make([]*plot.Plot, len(d.layout))
	for ri, row := range d.layout {
		p := plot.New()
		p.X.Min, p.X.Max = grid.Start(), grid.End()
		p.Y.Min, p.Y.Max = lo, hi
		p.Y.Label.Text = row.Label
		p.HideY()
		if d.base.AxesTicks {
			if ri == len(d.layout)-1 {
				p.X.Label.Text = "t"
			}
		} else {
			p.HideX()
		}

		channels := rows[ri]
		ordered := make([]*model.Channel, len(channels))
		copy(ordered, channels)
		sort.SliceStable(ordered, func(i, j int) bool {
			return d.styleFor(ordered[i].Name()).ZOrder < d.styleFor(ordered[j].Name()).ZOrder
		})
		for _, ch := range ordered {
			st := d.styleFor(ch.Name())
			ls := draw.LineStyle{
				Color: st.Color.NRGBA(),
				Width: vg.Points(st.LineWidth),
			}
			p.Add(wavplot.NewWaveformPlot(ch, ls, st.FillColor.NRGBA()))
		}

		baseline := &wavplot.BaselinePlot{
			T:           grid.Points(),
			LineStyle:   axisLine,
			ArrowWidth:  vg.Points(d.base.ArrowWidth),
			ArrowLength: vg.Points(d.base.ArrowLength),
		}
		if !d.base.TimeAxisOnTop {
			baseline.Visible = model.TimeAxis(channels...)
		}
		p.Add(baseline)

		for _, vl := range d.vlines {
			if vl.rows == nil || containsInt(vl.rows, ri) {
				p.Add(&wavplot.VLinePlot{X: vl.t, LineStyle: vl.ls})
			}
		}
		for _, l := range d.labels {
			if l.row == ri {
				p.Add(wavplot.NewLabelPlot(l.x, l.y, l.text, vg.Points(d.base.FontSize)))
			}
		}
		for _, iv := range d.intervals {
			if iv.row == ri {
				p.Add(wavplot.NewIntervalPlot(iv.x0, iv.x1, iv.y, iv.text, axisLine, vg.Points(d.base.FontSize)))
			}
		}

		plots[ri] = p
	}

	return &Figure{Rows: plots}, nil
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
