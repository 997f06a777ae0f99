package main

import (
	"github.com/seqviz/seqplot/chart"
	"github.com/seqviz/seqplot/seq/model"
	"github.com/seqviz/seqplot/seq/shape"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func newMultichannelCmd() *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "multichannel",
		Short: "Gradient-echo diagram with RF and ADC sharing one row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid := model.Linspace(-0.2, 4.5, 10000)
			store := model.NewStore(grid)
			for _, name := range []string{"RF", "ADC", "Phase", "Slice", "Frequency"} {
				if _, err := store.Create(name); err != nil {
					return err
				}
			}

			if err := store.AddElement("RF", shape.RFSinc{TStart: 0.2, Duration: 0.8, SideLobes: 2}); err != nil {
				return err
			}
			if err := store.AddElement("ADC", shape.Rect{TStart: 2.2, Duration: 1.6}); err != nil {
				return err
			}
			if err := store.AddElement("Phase",
				shape.Trapezoid{TStart: 1.2, TFlatOut: 1.4, TRampDown: 1.8},
				sweep(-1, 1, 10)...); err != nil {
				return err
			}
			if err := store.AddElement("Frequency",
				shape.Trapezoid{TStart: 1.2, TFlatOut: 1.4, TRampDown: 1.8}, -1); err != nil {
				return err
			}
			if err := store.AddElement("Frequency",
				shape.Trapezoid{TStart: 2, TFlatOut: 2.2, TRampDown: 3.8}, 0.5); err != nil {
				return err
			}
			if err := store.AddElement("Slice",
				shape.Trapezoid{TStart: 0, TFlatOut: 0.2, TRampDown: 1}); err != nil {
				return err
			}
			if err := store.AddElement("Slice",
				shape.Trapezoid{TStart: 1.2, TFlatOut: 1.4, TRampDown: 1.8}, -1); err != nil {
				return err
			}

			layout := chart.Layout{
				{Label: "RF/ADC", Channels: []string{"RF", "ADC"}},
				{Label: "Phase\nEncoding", Channels: []string{"Phase"}},
				{Label: "Slice\nSelection", Channels: []string{"Slice"}},
				{Label: "Frequency\nEncoding", Channels: []string{"Frequency"}},
			}
			base, err := rf.baseStyle()
			if err != nil {
				return err
			}
			d := chart.New(store, layout, base)
			rf.applyPalette(d, base, layout)

			marker := chart.DashedLine(draw.LineStyle{
				Color: base.AxesColor.NRGBA(),
				Width: vg.Points(1),
			}, vg.Points(1), vg.Points(3))
			d.VLine(nil, 0.6, marker)
			d.VLine(nil, 3.0, marker)
			d.Label(0, 0.6, -0.6, "90° Excitation Pulse")
			d.Label(0, 3.0, 0.3, "Data Sampling")
			d.Interval(0, 0.6, 3.0, -0.9, "TE")

			return rf.finish(cmd.Context(), d)
		},
	}
	rf.register(cmd)
	return cmd
}
