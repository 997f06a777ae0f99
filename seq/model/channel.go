package model

import (
	"fmt"
	"strings"
)

// Waveform computes the unit-amplitude samples of one sequence element
// over a time grid. Implementations must be pure: same grid in, same
// samples out, no side effects. Positions outside the element's support
// are absent, not zero.
type Waveform interface {
	Name() string
	Samples(t []float64) []Sample
}

// Channel accumulates the events of one named sequence line (an RF pulse
// train, a gradient, an acquisition window) sampled on a shared time grid.
// The buffer is grid-length x variant-count; the variant dimension carries
// simultaneous overlays such as a fan of phase-encoding steps, and is 1
// until a vector amplitude widens it. A channel only represents the
// numbers; drawing is someone else's job.
type Channel struct {
	name string
	grid *TimeGrid
	data []Sample // row-major, data[i*cols+j]
	cols int

	// names of applied generators, for diagnostics only
	applied []string
}

func newChannel(name string, grid *TimeGrid) *Channel {
	return &Channel{
		name: name,
		grid: grid,
		data: make([]Sample, grid.Len()),
		cols: 1,
	}
}

func (c *Channel) Name() string {
	return c.name
}

func (c *Channel) Grid() *TimeGrid {
	return c.grid
}

// Variants reports the overlay count K of the buffer.
func (c *Channel) Variants() int {
	return c.cols
}

// At returns the sample at grid index i, overlay variant j.
func (c *Channel) At(i, j int) Sample {
	return c.data[i*c.cols+j]
}

// Column copies out overlay variant j over the whole grid.
func (c *Channel) Column(j int) []Sample {
	out := make([]Sample, c.grid.Len())
	for i := range out {
		out[i] = c.data[i*c.cols+j]
	}
	return out
}

func (c *Channel) String() string {
	return fmt.Sprintf("channel %q with [%s]", c.name, strings.Join(c.applied, " "))
}

// Add accumulates one element onto the channel: the waveform's unit
// samples are scaled by each amplitude and combined with the existing
// buffer under the absent-annihilating sum. No amplitudes means a single
// unit amplitude. A vector of K amplitudes against a single-variant buffer
// widens it to K overlaid copies; against a K-variant buffer it applies
// per column. Overlapping present contributions sum silently.
func (c *Channel) Add(wf Waveform, ampls ...float64) error {
	unit := wf.Samples(c.grid.Points())
	if len(unit) != c.grid.Len() {
		return fmt.Errorf("generator %q returned %d samples for a %d-point grid",
			wf.Name(), len(unit), c.grid.Len())
	}
	if len(ampls) == 0 {
		ampls = []float64{1}
	}

	switch {
	case len(ampls) == c.cols:
		// columnwise, no reshape
	case c.cols == 1:
		c.widen(len(ampls))
	case len(ampls) == 1:
		uniform := make([]float64, c.cols)
		for j := range uniform {
			uniform[j] = ampls[0]
		}
		ampls = uniform
	default:
		return fmt.Errorf("cannot broadcast %d amplitudes against %d overlay variants on channel %q",
			len(ampls), c.cols, c.name)
	}

	for i := 0; i < c.grid.Len(); i++ {
		for j, a := range ampls {
			idx := i*c.cols + j
			c.data[idx] = Combine(c.data[idx], unit[i].Scale(a))
		}
	}
	c.applied = append(c.applied, wf.Name())
	return nil
}

// widen replicates the single existing column into k columns.
func (c *Channel) widen(k int) {
	wide := make([]Sample, c.grid.Len()*k)
	for i := 0; i < c.grid.Len(); i++ {
		for j := 0; j < k; j++ {
			wide[i*k+j] = c.data[i]
		}
	}
	c.data = wide
	c.cols = k
}

// Range reports the extremes over all present samples. The zero range is
// returned with ok=false when every sample is absent.
func (c *Channel) Range() (min, max float64, ok bool) {
	for _, s := range c.data {
		if !s.OK {
			continue
		}
		if !ok {
			min, max, ok = s.V, s.V, true
			continue
		}
		if s.V < min {
			min = s.V
		}
		if s.V > max {
			max = s.V
		}
	}
	return min, max, ok
}
