// Package shape provides the closed-form waveform generators used to build
// pulse-sequence diagrams: trapezoidal gradients, sinc-modulated RF pulses
// and rectangular acquisition windows. Every generator produces a unit
// amplitude shape over its support and absent samples outside it, so that
// quiet stretches of a channel stay distinguishable from zero-amplitude
// events.
package shape

import (
	"math"

	"github.com/seqviz/seqplot/seq/model"
)

// Trapezoid is a symmetric trapezoidal gradient lobe of unit height. The
// ramp-down duration equals the ramp-up duration TFlatOut-TStart. A
// zero-length ramp produces NaN samples which propagate to the caller.
type Trapezoid struct {
	TStart    float64 // ramp-up begins
	TFlatOut  float64 // fully on, flat from here
	TRampDown float64 // ramp-down begins
}

func (tr Trapezoid) Name() string {
	return "trapezoid"
}

func (tr Trapezoid) Samples(t []float64) []model.Sample {
	out := make([]model.Sample, len(t))
	ramp := tr.TFlatOut - tr.TStart
	end := tr.TRampDown + ramp
	for i, ti := range t {
		switch {
		case ti < tr.TStart || ti > end:
			// absent
		case ti <= tr.TFlatOut:
			out[i] = model.Value((ti - tr.TStart) / ramp)
		case ti <= tr.TRampDown:
			out[i] = model.Value(1)
		default:
			out[i] = model.Value((tr.TRampDown-ti)/ramp + 1)
		}
	}
	return out
}

// RFSinc is a sinc-modulated RF excitation pulse, normalized to a unit
// central peak, with SideLobes zero crossings on each side of it.
type RFSinc struct {
	TStart    float64
	Duration  float64
	SideLobes int
}

func (rf RFSinc) Name() string {
	return "rf_sinc"
}

func (rf RFSinc) Samples(t []float64) []model.Sample {
	out := make([]model.Sample, len(t))
	peak := math.Inf(-1)
	for i, ti := range t {
		if ti <= rf.TStart || ti >= rf.TStart+rf.Duration {
			continue
		}
		// centered time; exactly hitting the center yields 0/0 = NaN,
		// which propagates like any other degenerate-parameter result
		tc := ti - rf.TStart - rf.Duration/2
		v := math.Sin(tc/rf.Duration*2*math.Pi*float64(rf.SideLobes+1)) / tc
		out[i] = model.Value(v)
		if v > peak {
			peak = v
		}
	}
	if math.IsInf(peak, -1) {
		return out // support missed every grid point
	}
	for i := range out {
		if out[i].OK {
			out[i].V /= peak
		}
	}
	return out
}

// Rect is a rectangular window, typically drawn for a data-acquisition
// (ADC) interval. The first and last samples inside the support are forced
// to zero so the outline closes down to the axis at both edges.
type Rect struct {
	TStart   float64
	Duration float64
}

func (r Rect) Name() string {
	return "rect"
}

func (r Rect) Samples(t []float64) []model.Sample {
	out := make([]model.Sample, len(t))
	first, last := -1, -1
	for i, ti := range t {
		if ti <= r.TStart || ti >= r.TStart+r.Duration {
			continue
		}
		out[i] = model.Value(1)
		if first < 0 {
			first = i
		}
		last = i
	}
	if first >= 0 {
		out[first] = model.Value(0)
		out[last] = model.Value(0)
	}
	return out
}
