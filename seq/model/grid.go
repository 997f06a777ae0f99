package model

import "fmt"

// TimeGrid is the sampling grid shared by every channel of one diagram.
// It is immutable after construction; channels hold it by pointer, so two
// channels belong to the same diagram only if they were created from the
// same grid value, not merely from equal sample points.
type TimeGrid struct {
	points []float64
}

// NewTimeGrid copies the given sample points into a grid. The points must
// be strictly increasing; anything else indicates a broken caller, so the
// failure is immediate.
func NewTimeGrid(points []float64) *TimeGrid {
	if len(points) < 2 {
		panic(fmt.Sprintf("time grid needs at least two points, got %d", len(points)))
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			panic(fmt.Sprintf("time grid points must be strictly increasing at index %d", i))
		}
	}
	t := make([]float64, len(points))
	copy(t, points)
	return &TimeGrid{points: t}
}

// Linspace builds a grid of n evenly spaced points covering [start, stop].
func Linspace(start, stop float64, n int) *TimeGrid {
	if n < 2 {
		panic(fmt.Sprintf("linspace needs at least two points, got %d", n))
	}
	points := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range points {
		points[i] = start + step*float64(i)
	}
	points[n-1] = stop
	return NewTimeGrid(points)
}

func (g *TimeGrid) Len() int {
	return len(g.points)
}

func (g *TimeGrid) At(i int) float64 {
	return g.points[i]
}

func (g *TimeGrid) Start() float64 {
	return g.points[0]
}

func (g *TimeGrid) End() float64 {
	return g.points[len(g.points)-1]
}

// Points returns the underlying sample points. Callers must treat the
// slice as read-only.
func (g *TimeGrid) Points() []float64 {
	return g.points
}
