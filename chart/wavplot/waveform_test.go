package wavplot

import (
	"math"
	"testing"

	"github.com/seqviz/seqplot/seq/model"
)

func samplesFrom(vals []float64) []model.Sample {
	out := make([]model.Sample, len(vals))
	for i, v := range vals {
		if !math.IsInf(v, -1) { // -Inf marks absent in these tables
			out[i] = model.Value(v)
		}
	}
	return out
}

func TestPresentRuns(t *testing.T) {
	absent := math.Inf(-1)
	cases := []struct {
		vals []float64
		want []run
	}{
		{[]float64{absent, absent, absent}, nil},
		{[]float64{1, 2, 3}, []run{{0, 2}}},
		{[]float64{absent, 0, 1, absent, absent, 2, absent}, []run{{1, 2}, {5, 5}}},
		{[]float64{0, absent, 0}, []run{{0, 0}, {2, 2}}},
	}
	for i, c := range cases {
		got := presentRuns(samplesFrom(c.vals))
		if len(got) != len(c.want) {
			t.Errorf("case %d: runs = %v, want %v", i, got, c.want)
			continue
		}
		for j := range got {
			if got[j] != c.want[j] {
				t.Errorf("case %d run %d: %v, want %v", i, j, got[j], c.want[j])
			}
		}
	}
}

func TestWaveformDataRange(t *testing.T) {
	absent := math.Inf(-1)
	w := &WaveformPlot{
		T: []float64{0, 1, 2, 3},
		Columns: [][]model.Sample{
			samplesFrom([]float64{absent, -2, 0.5, absent}),
			samplesFrom([]float64{absent, math.NaN(), 3, absent}),
		},
	}
	xmin, xmax, ymin, ymax := w.DataRange()
	if xmin != 0 || xmax != 3 {
		t.Errorf("x range [%g, %g], want [0, 3]", xmin, xmax)
	}
	// NaN samples must not poison the range
	if ymin != -2 || ymax != 3 {
		t.Errorf("y range [%g, %g], want [-2, 3]", ymin, ymax)
	}
}

func TestWaveformDataRangeAllAbsent(t *testing.T) {
	w := &WaveformPlot{
		T:       []float64{0, 1},
		Columns: [][]model.Sample{make([]model.Sample, 2)},
	}
	_, _, ymin, ymax := w.DataRange()
	if ymin != 0 || ymax != 0 {
		t.Errorf("empty y range [%g, %g], want [0, 0]", ymin, ymax)
	}
}

func TestBaselineVisibleRuns(t *testing.T) {
	b := &BaselinePlot{
		T:       []float64{0, 1, 2, 3, 4},
		Visible: []bool{true, true, false, true, true},
	}
	got := b.visibleRuns()
	want := []run{{0, 1}, {3, 4}}
	if len(got) != len(want) {
		t.Fatalf("runs = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("run %d = %v, want %v", i, got[i], want[i])
		}
	}

	b.Visible = nil
	got = b.visibleRuns()
	if len(got) != 1 || got[0] != (run{0, 4}) {
		t.Errorf("nil mask runs = %v, want the whole grid", got)
	}
}
