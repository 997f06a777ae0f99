package main

import (
	"github.com/seqviz/seqplot/chart"
	"github.com/seqviz/seqplot/seq/model"
	"github.com/seqviz/seqplot/seq/shape"
	"github.com/spf13/cobra"
)

// sweep returns n evenly spaced amplitudes covering [lo, hi], the usual
// way to spell a fan of phase-encoding steps.
func sweep(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

func newQuickstartCmd() *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "quickstart",
		Short: "Minimal gradient diagram with a phase-encoding fan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid := model.Linspace(-0.2, 6, 10000)
			store := model.NewStore(grid)
			for _, name := range []string{"Slice", "Phase", "Frequency"} {
				if _, err := store.Create(name); err != nil {
					return err
				}
			}

			steps := []struct {
				channel string
				wf      shape.Trapezoid
				ampls   []float64
			}{
				{"Phase", shape.Trapezoid{TStart: 1.2, TFlatOut: 1.4, TRampDown: 1.8}, sweep(-1, 1, 10)},
				{"Frequency", shape.Trapezoid{TStart: 1.2, TFlatOut: 1.4, TRampDown: 1.8}, []float64{-1}},
				{"Frequency", shape.Trapezoid{TStart: 2, TFlatOut: 2.2, TRampDown: 3.8}, []float64{0.5}},
				{"Slice", shape.Trapezoid{TStart: 0, TFlatOut: 0.2, TRampDown: 1}, nil},
				{"Slice", shape.Trapezoid{TStart: 1.2, TFlatOut: 1.4, TRampDown: 1.8}, []float64{-1}},
			}
			for _, s := range steps {
				if err := store.AddElement(s.channel, s.wf, s.ampls...); err != nil {
					return err
				}
			}

			layout := chart.Layout{
				{Label: "Slice\nSelection", Channels: []string{"Slice"}},
				{Label: "Phase\nEncoding", Channels: []string{"Phase"}},
				{Label: "Frequency\nEncoding", Channels: []string{"Frequency"}},
			}
			base, err := rf.baseStyle()
			if err != nil {
				return err
			}
			d := chart.New(store, layout, base)
			rf.applyPalette(d, base, layout)
			return rf.finish(cmd.Context(), d)
		},
	}
	rf.register(cmd)
	return cmd
}
