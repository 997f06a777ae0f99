package main

import (
	"math"

	"github.com/seqviz/seqplot/chart"
	"github.com/seqviz/seqplot/seq/model"
	"github.com/seqviz/seqplot/seq/shape"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func newEPICmd() *cobra.Command {
	var rf renderFlags
	var steps int
	cmd := &cobra.Command{
		Use:   "epi",
		Short: "Echo-planar readout train with phase blips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid := model.Linspace(-0.2, 20, 10000)
			store := model.NewStore(grid)
			for _, name := range []string{"RF", "ADC", "Phase", "Slice", "Frequency"} {
				if _, err := store.Create(name); err != nil {
					return err
				}
			}

			if err := store.AddElement("RF", shape.RFSinc{TStart: 0.2, Duration: 0.8, SideLobes: 2}); err != nil {
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

			const (
				tEPIStart = 2.2
				dtLine    = 1.6 // one full readout lobe, ramps included
				dtFlat    = 1.4 // full-on stretch of a readout lobe
				dtLine0   = 0.8 // dephasing lobe, ramps included
				dtFlat0   = 0.6 // full-on stretch of the dephasing lobe
			)
			dtRampUp := 0.5 * (dtLine - dtFlat)
			dtRampUp0 := 0.5 * (dtLine0 - dtFlat0)
			tStartBlock := tEPIStart + dtLine0
			dtBlipBottom := dtLine - dtFlat
			dtBlipTop := 0.8 * dtBlipBottom
			dtBlipRamp := 0.5 * (dtBlipBottom - dtBlipTop)

			// dephasing readout lobe, then the alternating train
			if err := store.AddElement("Frequency", shape.Trapezoid{
				TStart:    tEPIStart,
				TFlatOut:  tEPIStart + dtRampUp0,
				TRampDown: tEPIStart + dtRampUp0 + dtFlat0,
			}, -1); err != nil {
				return err
			}
			for idx := 0; idx < steps; idx++ {
				ampl := math.Pow(-1, float64(idx%2))
				tStart := tStartBlock + dtLine*float64(idx)
				if err := store.AddElement("Frequency", shape.Trapezoid{
					TStart:    tStart,
					TFlatOut:  tStart + dtRampUp,
					TRampDown: tStart + dtRampUp + dtFlat,
				}, ampl); err != nil {
					return err
				}
			}

			// phase dephaser, then one blip between every pair of lobes
			if err := store.AddElement("Phase", shape.Trapezoid{
				TStart:    tEPIStart,
				TFlatOut:  tEPIStart + dtRampUp0,
				TRampDown: tEPIStart + dtRampUp0 + dtFlat0,
			}, -2); err != nil {
				return err
			}
			for idx := 1; idx < steps; idx++ {
				tStart := tStartBlock + dtLine*float64(idx) - 0.5*dtBlipBottom
				if err := store.AddElement("Phase", shape.Trapezoid{
					TStart:    tStart,
					TFlatOut:  tStart + dtBlipRamp,
					TRampDown: tStart + dtBlipRamp + dtBlipTop,
				}, 0.5); err != nil {
					return err
				}
			}

			// one acquisition window per readout lobe
			for idx := 0; idx < steps; idx++ {
				tStart := tStartBlock + dtLine*float64(idx) + 0.5*dtBlipBottom
				if err := store.AddElement("ADC",
					shape.Rect{TStart: tStart, Duration: dtFlat}, 0.5); err != nil {
					return err
				}
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

			blockLine := chart.DashedLine(draw.LineStyle{
				Color: base.AxesColor.NRGBA(),
				Width: vg.Points(1),
			})
			d.VLine(nil, tEPIStart, chart.DashedLine(blockLine, vg.Points(1), vg.Points(3)))
			d.VLine(nil, tStartBlock, blockLine)
			d.VLine(nil, tStartBlock+dtRampUp+dtFlat, blockLine)
			d.VLine(nil, tStartBlock+dtRampUp+dtFlat+dtBlipBottom, blockLine)

			return rf.finish(cmd.Context(), d)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 8, "number of readout lobes in the train")
	rf.register(cmd)
	return cmd
}
