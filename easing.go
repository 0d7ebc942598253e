package tween

import (
	"fmt"
	"math"
)

// Easing remaps normalized progress in [0, 1] to shape the speed of a
// transition. By convention easings are monotonic and map 0 to 0 and 1 to 1,
// but this isn't required; [Jump] for example jumps to 1 immediately.
//
// See https://easings.net/ for illustrations of the named curves.
type Easing func(t float64) float64

// Ease evaluates the easing at t, which is clamped to [0, 1] first. A nil
// Easing is linear.
func (e Easing) Ease(t float64) float64 {
	t = min(max(t, 0), 1)
	if e == nil {
		return t
	}
	return e(t)
}

// DefaultEasing is used by [Inertial.GoTo].
var DefaultEasing = QuadraticInOut

var (
	Linear Easing = func(t float64) float64 { return t }

	QuadraticIn    Easing = func(t float64) float64 { return t * t }
	QuadraticOut   Easing = func(t float64) float64 { return t * (2 - t) }
	QuadraticInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		t = -2*t + 2
		return 1 - t*t/2
	}

	CubicIn  Easing = func(t float64) float64 { return t * t * t }
	CubicOut Easing = func(t float64) float64 {
		t = 1 - t
		return 1 - t*t*t
	}
	CubicInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		t = -2*t + 2
		return 1 - t*t*t/2
	}

	QuarticIn  Easing = func(t float64) float64 { return t * t * t * t }
	QuarticOut Easing = func(t float64) float64 {
		t = (t - 1) * (t - 1)
		return 1 - t*t
	}
	QuarticInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			t *= t
			return 8 * t * t
		}
		t = -2*t + 2
		t *= t
		return 1 - t*t/2
	}

	SineIn Easing = func(t float64) float64 {
		if t == 1 {
			return 1
		}
		return 1 - math.Cos(t*math.Pi/2)
	}
	SineOut   Easing = func(t float64) float64 { return math.Sin(t * math.Pi / 2) }
	SineInOut Easing = func(t float64) float64 {
		if t == 1 {
			return 1
		}
		return -(math.Cos(math.Pi*t) - 1) / 2
	}

	// Jump skips the transition entirely and reports full progress from the
	// start.
	Jump Easing = func(float64) float64 { return 1 }
)

// Step returns an easing that advances in n discrete steps.
func Step(n int) Easing {
	if n <= 0 {
		panic(fmt.Sprintf("tween: step easing needs a positive number of steps, got %d", n))
	}
	steps := float64(n)
	return func(t float64) float64 {
		return math.Floor(t*steps) / steps
	}
}

// Bezier returns an easing that evaluates the one-dimensional cubic Bézier
// with control values p0 through p3 at t. Bezier(0, a, b, 1) starts at 0 and
// ends at 1.
func Bezier(p0, p1, p2, p3 float64) Easing {
	return func(t float64) float64 {
		return bernstein(p0, p1, p2, p3, t)
	}
}

// CubicBezier returns the timing function known from CSS as
// cubic-bezier(x1, y1, x2, y2). The curve runs from (0, 0) to (1, 1) with the
// two given control points; for an input x the curve is first solved for its
// parameter and then evaluated for y.
//
// x1 and x2 must lie in [0, 1], otherwise the curve isn't a function of x.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
		panic(fmt.Sprintf("tween: cubic-bezier x coordinates must be in [0, 1], got %v and %v", x1, x2))
	}
	const epsilon = 1e-9
	return func(x float64) float64 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 1
		}
		fx := func(s float64) float64 { return bernstein(0, x1, x2, 1, s) - x }
		s := solveITP(fx, 0, 1, epsilon, -x, 1-x)
		return bernstein(0, y1, y2, 1, s)
	}
}

func bernstein(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}
