package main

import (
	"context"

	"github.com/seqviz/seqplot/chart"
	"github.com/seqviz/seqplot/seq/style"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

// renderFlags are the output options shared by every example subcommand.
type renderFlags struct {
	out       string
	display   bool
	stylePath string
	colors    bool
	alpha     float64
	width     float64 // inches
	height    float64 // inches
}

func (rf *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rf.out, "out", "o", "", "write the diagram to this file (format from extension)")
	cmd.Flags().BoolVar(&rf.display, "display", false, "show the diagram in a window (E exports, Q closes)")
	cmd.Flags().StringVar(&rf.stylePath, "style", "", "TOML style file overriding the defaults")
	cmd.Flags().BoolVar(&rf.colors, "colors", false, "colored channels instead of black and white")
	cmd.Flags().Float64Var(&rf.alpha, "alpha", 0.3, "fill opacity used with --colors")
	cmd.Flags().Float64Var(&rf.width, "width", 10, "figure width in inches")
	cmd.Flags().Float64Var(&rf.height, "height", 7.5, "figure height in inches")
}

func (rf *renderFlags) baseStyle() (style.Style, error) {
	if rf.stylePath == "" {
		return style.Default(), nil
	}
	return style.Load(rf.stylePath)
}

// applyPalette colors the layout's channels from the default palette, one
// color per channel in row order.
func (rf *renderFlags) applyPalette(d *chart.Diagram, base style.Style, layout chart.Layout) {
	if !rf.colors {
		return
	}
	palette := style.Palette()
	idx := 0
	for _, row := range layout {
		for _, name := range row.Channels {
			st := base
			st.Color = palette[idx%len(palette)]
			st.FillColor = st.Color.WithAlpha(rf.alpha)
			d.SetChannelStyle(name, st)
			idx++
		}
	}
}

// finish composes the diagram and writes or displays the result.
func (rf *renderFlags) finish(ctx context.Context, d *chart.Diagram) error {
	logger := loggerFromContext(ctx)

	fig, err := d.Compose()
	if err != nil {
		return err
	}
	logger.Debug("composed diagram", "rows", len(fig.Rows))

	width := vg.Length(rf.width) * vg.Inch
	height := vg.Length(rf.height) * vg.Inch

	out := rf.out
	if out == "" && !rf.display {
		out = "diagram.png"
	}
	if out != "" {
		if err := fig.Save(width, height, out); err != nil {
			return err
		}
		logger.Info("wrote diagram", "path", out)
	}
	if rf.display {
		return fig.Display(rf.out)
	}
	return nil
}
