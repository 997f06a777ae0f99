package model

// TimeAxis projects the given channels onto their shared time axis,
// reporting at which grid positions the axis baseline should be drawn.
// The baseline is visible only where every channel is absent across all of
// its overlay variants, so the axis line disappears underneath active
// waveforms instead of cutting through them. The all-absent mask is
// dilated by one sample in each direction before use: the baseline then
// reaches the exact edge sample of each waveform, avoiding a one-sample
// seam at every element boundary.
//
// All channels must share one time grid; the composer validates that
// before projecting, so a mismatch here is a programming error.
func TimeAxis(channels ...*Channel) []bool {
	if len(channels) == 0 {
		panic("no channels to project")
	}
	n := channels[0].Grid().Len()
	for _, ch := range channels[1:] {
		if ch.Grid() != channels[0].Grid() {
			panic("channels do not share a time grid")
		}
	}

	silent := make([]bool, n)
	for i := range silent {
		silent[i] = true
		for _, ch := range channels {
			for j := 0; j < ch.Variants(); j++ {
				if ch.At(i, j).OK {
					silent[i] = false
				}
			}
			if !silent[i] {
				break
			}
		}
	}

	visible := make([]bool, n)
	for i := range visible {
		visible[i] = silent[i]
		if i > 0 && silent[i-1] {
			visible[i] = true
		}
		if i+1 < n && silent[i+1] {
			visible[i] = true
		}
	}
	return visible
}
