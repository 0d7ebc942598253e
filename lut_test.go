package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTable(t *testing.T) {
	lut := newLookupTable(5)
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, lut.xs)

	lut.line(0, 0, 0.5, 1)
	lut.line(0.5, 1, 0.5, 7)
	lut.line(0.5, 1, 1, 3)
	diff(t, []float64{0, 0.5, 1, 2, 3}, lut.values)

	diff(t, 0.0, lut.at(-1))
	diff(t, 0.25, lut.at(0.125))
	diff(t, 1.5, lut.at(0.625))
	diff(t, 3.0, lut.at(1))
	diff(t, 3.0, lut.at(2))

	assert.Panics(t, func() { newLookupTable(1) })
}
