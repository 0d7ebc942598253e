package tween

import (
	"fmt"
	"math"
)

// Sequential plays First, then Second.
//
// If First never ends, Second is never reached and the sequence is infinite.
type Sequential[T any, D Duration[D]] struct {
	First  Keyframes[T, D]
	Second Keyframes[T, D]
}

func (s Sequential[T, D]) Get(offset D) T {
	d, ok := s.First.Duration()
	if !ok || offset.Less(d) {
		return s.First.Get(offset)
	}
	return s.Second.Get(offset.SaturatingSub(d))
}

func (s Sequential[T, D]) Duration() (D, bool) {
	d1, ok1 := s.First.Duration()
	d2, ok2 := s.Second.Duration()
	return d1.Add(d2), ok1 && ok2
}

// wrap reduces offset modulo period using floor division. Durations don't
// support a remainder operation, so offset − period·⌊offset/period⌋ is
// computed instead.
func wrap[D Duration[D]](offset, period D) D {
	n := math.Floor(offset.FractionOf(period))
	return offset.SaturatingSub(period.Scale(n))
}

// Repeat plays Inner over and over. It never ends. Inner must be finite.
type Repeat[T any, D Duration[D]] struct {
	Inner Keyframes[T, D]
}

func (r Repeat[T, D]) Get(offset D) T {
	d := MustDuration(r.Inner)
	if isZero(d) {
		return r.Inner.Get(d)
	}
	return r.Inner.Get(wrap(offset, d))
}

func (r Repeat[T, D]) Duration() (D, bool) {
	var zero D
	return zero, false
}

// RepeatN plays Inner N times. N needn't be an integer: with N = 2.5 the
// third repetition is cut off halfway. Once all repetitions have been played,
// the value stays at the end value of Inner. With N = 0 the keyframes have
// no duration and yield the start value of Inner.
type RepeatN[T any, D Duration[D]] struct {
	Inner Keyframes[T, D]
	N     float64
}

// NewRepeatN returns keyframes that repeat inner n times. It panics if n is
// negative or NaN.
func NewRepeatN[T any, D Duration[D]](inner Keyframes[T, D], n float64) RepeatN[T, D] {
	if !(n >= 0) {
		panic(fmt.Sprintf("tween: repeat count must be non-negative, got %v", n))
	}
	return RepeatN[T, D]{Inner: inner, N: n}
}

func (r RepeatN[T, D]) Get(offset D) T {
	d, ok := r.Inner.Duration()
	if !ok {
		return r.Inner.Get(offset)
	}
	if r.N == 0 {
		return StartValue(r.Inner)
	}
	if isZero(d) {
		return r.Inner.Get(d)
	}
	if offset.FractionOf(d) < r.N {
		return r.Inner.Get(wrap(offset, d))
	}
	return r.Inner.Get(d)
}

func (r RepeatN[T, D]) Duration() (D, bool) {
	d, ok := r.Inner.Duration()
	if !ok {
		return d, false
	}
	return d.Scale(r.N), true
}

// Reverse plays Inner backward. Inner must be finite.
type Reverse[T any, D Duration[D]] struct {
	Inner Keyframes[T, D]
}

func (r Reverse[T, D]) Get(offset D) T {
	d := MustDuration(r.Inner)
	return r.Inner.Get(d.SaturatingSub(offset))
}

func (r Reverse[T, D]) Duration() (D, bool) {
	return r.Inner.Duration()
}

// Scale stretches the time of Inner by Factor. A factor of 2 plays Inner at
// half speed. With a factor of 0 the keyframes have no duration and yield the
// end value of Inner.
type Scale[T any, D Duration[D]] struct {
	Inner  Keyframes[T, D]
	Factor float64
}

// NewScale returns keyframes that stretch the time of inner by factor. It
// panics if factor is negative or NaN.
func NewScale[T any, D Duration[D]](inner Keyframes[T, D], factor float64) Scale[T, D] {
	if !(factor >= 0) {
		panic(fmt.Sprintf("tween: time scale must be non-negative, got %v", factor))
	}
	return Scale[T, D]{Inner: inner, Factor: factor}
}

// ScaleTo returns keyframes that stretch inner to last exactly length. Inner
// must be finite. If inner has no duration, it is left as is.
func ScaleTo[T any, D Duration[D]](inner Keyframes[T, D], length D) Scale[T, D] {
	d := MustDuration(inner)
	factor := 1.0
	if !isZero(d) {
		factor = length.FractionOf(d)
	}
	return NewScale(inner, factor)
}

func (s Scale[T, D]) Get(offset D) T {
	if d, ok := s.Duration(); ok && !offset.Less(d) {
		return EndValue(s.Inner)
	}
	if s.Factor == 0 {
		return StartValue(s.Inner)
	}
	return s.Inner.Get(offset.Scale(1 / s.Factor))
}

func (s Scale[T, D]) Duration() (D, bool) {
	d, ok := s.Inner.Duration()
	if !ok {
		return d, false
	}
	return d.Scale(s.Factor), true
}

// Slice plays the part of Inner between Start and End.
type Slice[T any, D Duration[D]] struct {
	Inner Keyframes[T, D]
	Start D
	End   D
}

// NewSlice returns the part of inner between start and end. It panics if end
// is before start.
func NewSlice[T any, D Duration[D]](inner Keyframes[T, D], start, end D) Slice[T, D] {
	if end.Less(start) {
		panic(fmt.Sprintf("tween: slice ends at %v before it starts at %v", end, start))
	}
	return Slice[T, D]{Inner: inner, Start: start, End: end}
}

func (s Slice[T, D]) Get(offset D) T {
	o := offset.Add(s.Start)
	if s.End.Less(o) {
		o = s.End
	}
	return s.Inner.Get(o)
}

func (s Slice[T, D]) Duration() (D, bool) {
	return s.End.SaturatingSub(s.Start), true
}

// Map transforms the values of Inner with F.
type Map[T, U any, D Duration[D]] struct {
	Inner Keyframes[T, D]
	F     func(T) U
}

func (m Map[T, U, D]) Get(offset D) U {
	return m.F(m.Inner.Get(offset))
}

func (m Map[T, U, D]) Duration() (D, bool) {
	return m.Inner.Duration()
}

// ApplyEasing re-times Inner through Easing, without changing its duration.
// Unlike [Eased], which shapes a single transition, this shapes the progress
// through an entire sequence of keyframes. Inner must be finite.
type ApplyEasing[T any, D Duration[D]] struct {
	Inner  Keyframes[T, D]
	Easing Easing
}

func (a ApplyEasing[T, D]) Get(offset D) T {
	d := MustDuration(a.Inner)
	if isZero(d) || !offset.Less(d) {
		return a.Inner.Get(d)
	}
	t := min(max(a.Easing.Ease(offset.FractionOf(d)), 0), 1)
	return a.Inner.Get(d.Scale(t))
}

func (a ApplyEasing[T, D]) Duration() (D, bool) {
	return a.Inner.Duration()
}
