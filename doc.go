// Package tween animates values over time. It provides keyframes that can be
// combined into timelines, animations that bind timelines to a start time,
// inertial values that follow a moving target without jumps, and paths that
// are traversed at constant speed.
//
// # Values
//
// Anything that implements [Mixer] can be animated. This package includes
// mixers for scalars ([F64], [F32], [Int], [Bool]), for 2D points ([Point]),
// and for compositions of other mixers ([Pair], [Triple], [Values],
// [Option]). Values that additionally implement [Distancer] are
// [Measurable] and can be moved along paths.
//
// # Time
//
// Time is abstract. [Time] and [Duration] describe the few operations this
// package needs, and any pair of types implementing them can be used. Two
// implementations are provided: [Seconds], a plain floating point number that
// is its own duration and which is convenient for tests and frame counters,
// and [Instant] with its duration [Span], which wrap the time package.
//
// This package never reads a clock. All functions take the current time as an
// argument, which makes them deterministic and lets all queries within a
// single frame agree with each other.
//
// Time never goes backward. Measuring the time from a later to an earlier
// point panics, as does scaling a duration by a negative factor.
//
// # Keyframes and timelines
//
// [Keyframes] describe a value as a function of the offset from an
// unspecified start. Primitive keyframes hold a value ([Hold]), move between
// two values ([Lerp], [Eased]), travel along a polyline ([Poly]) or follow a
// function ([Func]). Combinators build new keyframes from existing ones:
// [Sequential], [Repeat], [RepeatN], [Reverse], [Scale], [Slice], [Map] and
// [ApplyEasing].
//
// Keyframes can be infinite. Their Duration method reports whether they end,
// and operations that need a finite duration panic if given infinite
// keyframes.
//
// [Timeline] offers a fluent way of building keyframes:
//
//	tl := tween.From[tween.F64, tween.Seconds](0).
//		GoTo(10, 1).
//		Stay(0.5).
//		Reverse().
//		Repeat()
//
// Keyframes become an [Animation] once bound to a start time with [Run].
//
// # Inertial values
//
// An [Inertial] value moves toward a target that can change at any time, for
// example the position of a widget following the mouse. Retargeting in the
// middle of a transition continues from the current value instead of jumping.
//
// # Paths
//
// A [Path] is a sequence of connected Bézier segments over any [Measurable]
// type, built with a [PathBuilder]. Paths are parameterized by arc length, so
// that moving along them at a constant rate yields constant speed, regardless
// of how the control points are spaced. Arc lengths are measured by sampling
// once, when the path is built.
//
// # Easing
//
// [Easing] functions shape the speed of transitions. The package includes the
// common polynomial and sinusoidal curves, steps, and CSS-style cubic Bézier
// timing functions ([CubicBezier]).
package tween
