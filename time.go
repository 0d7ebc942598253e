package tween

import (
	"fmt"
	"math"
	"time"
)

// Duration describes a non-negative span of time.
//
// The zero value of a Duration must be the empty span. Durations are never
// negative: SaturatingSub stops at zero and Scale panics for negative
// factors.
type Duration[D any] interface {
	comparable
	Add(o D) D
	// SaturatingSub returns the receiver minus o, or zero if o is larger.
	SaturatingSub(o D) D
	// Scale multiplies the duration by a non-negative factor.
	Scale(factor float64) D
	// FractionOf returns the receiver as a fraction of o.
	FractionOf(o D) float64
	Less(o D) bool
}

// Time describes a totally ordered point in time with an associated
// [Duration] type.
//
// Since panics if earlier is after the receiver. Time never goes backward in
// this package; a negative elapsed time is always a bug in the caller.
type Time[X any, D Duration[D]] interface {
	Since(earlier X) D
	Advance(d D) X
	Before(o X) bool
}

func isZero[D Duration[D]](d D) bool {
	var zero D
	return d == zero
}

// Seconds is a floating point number of seconds. It serves as both a [Time]
// and its own [Duration], which makes it the natural choice for tests and for
// callers that keep their own frame clock.
type Seconds float64

var _ Time[Seconds, Seconds] = Seconds(0)

func (s Seconds) Since(earlier Seconds) Seconds {
	if s < earlier {
		panic(fmt.Sprintf("tween: time went backward: %v is before %v", s, earlier))
	}
	return s - earlier
}

func (s Seconds) Advance(d Seconds) Seconds { return s + d }
func (s Seconds) Before(o Seconds) bool     { return s < o }
func (s Seconds) Less(o Seconds) bool       { return s < o }
func (s Seconds) Add(o Seconds) Seconds     { return s + o }

func (s Seconds) SaturatingSub(o Seconds) Seconds {
	if s <= o {
		return 0
	}
	return s - o
}

func (s Seconds) Scale(factor float64) Seconds {
	if factor < 0 {
		panic(fmt.Sprintf("tween: scaling duration by negative factor %v", factor))
	}
	return s * Seconds(factor)
}

func (s Seconds) FractionOf(o Seconds) float64 {
	return float64(s) / float64(o)
}

func (s Seconds) String() string {
	return fmt.Sprintf("%gs", float64(s))
}

// Instant is a point in wall-clock time. Instants created by [Now] carry a
// monotonic clock reading, so they are immune to wall clock adjustments.
type Instant struct {
	t time.Time
}

var _ Time[Instant, Span] = Instant{}

// Now returns the current instant.
func Now() Instant {
	return Instant{t: time.Now()}
}

// At returns the instant for t.
func At(t time.Time) Instant {
	return Instant{t: t}
}

// Time returns the instant as a [time.Time].
func (i Instant) Time() time.Time { return i.t }

func (i Instant) Since(earlier Instant) Span {
	d := i.t.Sub(earlier.t)
	if d < 0 {
		panic(fmt.Sprintf("tween: time went backward by %v", -d))
	}
	return Span(d)
}

func (i Instant) Advance(d Span) Instant { return Instant{t: i.t.Add(time.Duration(d))} }
func (i Instant) Before(o Instant) bool  { return i.t.Before(o.t) }

func (i Instant) String() string {
	return i.t.String()
}

// Span is the [Duration] of [Instant]. It has nanosecond resolution.
type Span time.Duration


// SpanOf converts a [time.Duration]. Negative durations are clamped to zero.
func SpanOf(d time.Duration) Span {
	return Span(max(d, 0))
}

func (s Span) Add(o Span) Span  { return s + o }
func (s Span) Less(o Span) bool { return s < o }

func (s Span) SaturatingSub(o Span) Span {
	if s <= o {
		return 0
	}
	return s - o
}

func (s Span) Scale(factor float64) Span {
	if factor < 0 {
		panic(fmt.Sprintf("tween: scaling duration by negative factor %v", factor))
	}
	return Span(math.Round(float64(s) * factor))
}

func (s Span) FractionOf(o Span) float64 {
	return float64(s) / float64(o)
}

// Std returns the span as a [time.Duration].
func (s Span) Std() time.Duration { return time.Duration(s) }

func (s Span) String() string {
	return time.Duration(s).String()
}
