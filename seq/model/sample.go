package model

import "fmt"

// Sample is a single cell of a channel buffer: either an absent position
// where no event has been placed, or a real amplitude. Zero is a valid
// amplitude (a pulse returning to baseline), so absence is tracked with an
// explicit flag rather than a sentinel float.
type Sample struct {
	V  float64
	OK bool
}

func Absent() Sample {
	return Sample{}
}

func Value(v float64) Sample {
	return Sample{V: v, OK: true}
}

func (s Sample) String() string {
	if s.OK {
		return fmt.Sprintf("[%g]", s.V)
	}
	return "[absent]"
}

// Scale multiplies a present sample by f; an absent sample stays absent.
func (s Sample) Scale(f float64) Sample {
	if !s.OK {
		return s
	}
	return Sample{V: s.V * f, OK: true}
}

// Combine is the absent-aware accumulation rule:
//
//	absent + absent = absent
//	absent + x      = x
//	x + y           = x + y
//
// Absence annihilates so that unrelated events at different times coexist
// on one channel without forcing a zero baseline between them, while
// events that genuinely overlap sum their amplitudes.
func Combine(a, b Sample) Sample {
	if !a.OK {
		return b
	}
	if !b.OK {
		return a
	}
	return Sample{V: a.V + b.V, OK: true}
}
