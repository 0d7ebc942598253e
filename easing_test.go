package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]Easing{
		"Linear":         Linear,
		"QuadraticIn":    QuadraticIn,
		"QuadraticOut":   QuadraticOut,
		"QuadraticInOut": QuadraticInOut,
		"CubicIn":        CubicIn,
		"CubicOut":       CubicOut,
		"CubicInOut":     CubicInOut,
		"QuarticIn":      QuarticIn,
		"QuarticOut":     QuarticOut,
		"QuarticInOut":   QuarticInOut,
		"SineIn":         SineIn,
		"SineOut":        SineOut,
		"SineInOut":      SineInOut,
		"Step(4)":        Step(4),
		"Bezier":         Bezier(0, 0.1, 0.9, 1),
		"CubicBezier":    CubicBezier(0.25, 0.1, 0.25, 1),
		"nil":            nil,
	}
	for name, e := range easings {
		t.Run(name, func(t *testing.T) {
			if got := e.Ease(0); got != 0 {
				t.Errorf("Ease(0) = %v, want 0", got)
			}
			if got := e.Ease(1); got != 1 {
				t.Errorf("Ease(1) = %v, want 1", got)
			}
			if got := e.Ease(-1); got != 0 {
				t.Errorf("Ease(-1) = %v, want 0", got)
			}
			if got := e.Ease(2); got != 1 {
				t.Errorf("Ease(2) = %v, want 1", got)
			}
		})
	}
}

func TestEasingValues(t *testing.T) {
	near(t, 0.125, QuadraticInOut.Ease(0.25))
	near(t, 0.5, QuadraticInOut.Ease(0.5))
	near(t, 0.875, QuadraticInOut.Ease(0.75))
	near(t, 0.25, QuadraticIn.Ease(0.5))
	near(t, 0.75, QuadraticOut.Ease(0.5))
	near(t, 0.875, CubicOut.Ease(0.5))
	near(t, 0.0625, QuarticIn.Ease(0.5))
	near(t, 0.5, SineInOut.Ease(0.5))
	near(t, 0.5, Step(2).Ease(0.75))
	near(t, 0.0, Step(2).Ease(0.49))
	diff(t, 1.0, Jump.Ease(0))
}

func TestCubicBezier(t *testing.T) {
	// With control points on the diagonal the curve is the identity.
	lin := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.8} {
		if got := lin.Ease(x); got < x-1e-6 || got > x+1e-6 {
			t.Errorf("Ease(%v) = %v", x, got)
		}
	}

	// ease-in-out is symmetric around the center.
	e := CubicBezier(0.42, 0, 0.58, 1)
	for _, x := range []float64{0.1, 0.3, 0.45} {
		a, b := e.Ease(x), e.Ease(1-x)
		if d := a + b - 1; d < -1e-6 || d > 1e-6 {
			t.Errorf("Ease(%v) + Ease(%v) = %v, want 1", x, 1-x, a+b)
		}
	}

	assert.Panics(t, func() { CubicBezier(-0.1, 0, 0.5, 1) })
	assert.Panics(t, func() { CubicBezier(0.5, 0, 1.5, 1) })
}

func TestStepPanics(t *testing.T) {
	assert.Panics(t, func() { Step(0) })
}
