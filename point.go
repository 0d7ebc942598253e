package tween

import (
	"fmt"
	"math"
)

// Point is a point in 2D space. It implements [Measurable] and is the value
// type most paths are built from.
type Point struct {
	X float64
	Y float64
}

var _ Measurable[Point] = Point{}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns the component-wise sum of two points.
func (pt Point) Add(o Point) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Sub returns the component-wise difference pt−o.
func (pt Point) Sub(o Point) Point {
	return Point{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: lerp(pt.X, o.X, t),
		Y: lerp(pt.Y, o.Y, t),
	}
}

// Mix implements [Mixer].
func (pt Point) Mix(o Point, t float64) Point {
	return pt.Lerp(o, t)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// Round returns a new point with x and y rounded to the nearest integers.
func (pt Point) Round() Point {
	return Point{
		X: math.Round(pt.X),
		Y: math.Round(pt.Y),
	}
}
