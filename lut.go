package tween

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// lookupTable is a piecewise linear function over [0, 1], sampled at equally
// spaced slots.
type lookupTable struct {
	xs     []float64
	values []float64
}

func newLookupTable(size int) lookupTable {
	if size < 2 {
		panic("tween: lookup table needs at least two slots")
	}
	return lookupTable{
		xs:     floats.Span(make([]float64, size), 0, 1),
		values: make([]float64, size),
	}
}

// line sets the slots between x0 and x1 to the line through (x0, y0) and
// (x1, y1). Empty intervals are ignored.
func (lut lookupTable) line(x0, y0, x1, y1 float64) {
	if !(x1 > x0) {
		return
	}
	n := float64(len(lut.values) - 1)
	first := max(int(math.Ceil(x0*n)), 0)
	last := min(int(math.Floor(x1*n)), len(lut.values)-1)
	for i := first; i <= last; i++ {
		f := min(max((lut.xs[i]-x0)/(x1-x0), 0), 1)
		lut.values[i] = y0 + (y1-y0)*f
	}
}

// at returns the value at x, interpolating between neighboring slots. x is
// clamped to [0, 1].
func (lut lookupTable) at(x float64) float64 {
	n := len(lut.values) - 1
	pos := min(max(x, 0), 1) * float64(n)
	i := int(math.Floor(pos))
	if i >= n {
		return lut.values[n]
	}
	f := pos - float64(i)
	return lut.values[i] + (lut.values[i+1]-lut.values[i])*f
}
