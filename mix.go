package tween

import (
	"fmt"
	"math"
)

// Mixer describes values that can be interpolated.
//
// Mix returns the value at fractional position t between the receiver and
// other. At t = 0 the result must be equivalent to the receiver, at t = 1 it
// must be equivalent to other. Implementations are free to extrapolate for t
// outside of [0, 1]; callers that need clamping clamp before calling Mix.
type Mixer[T any] interface {
	Mix(other T, t float64) T
}

// Mix interpolates between a and b. It is a convenience wrapper around
// [Mixer.Mix].
func Mix[T Mixer[T]](a, b T, t float64) T {
	return a.Mix(b, t)
}

// F64 is a float64 that implements [Mixer] and [Distancer].
type F64 float64

// F32 is a float32 that implements [Mixer] and [Distancer].
type F32 float32

// Int is an int that implements [Mixer] and [Distancer]. Interpolated values
// are rounded to the nearest integer.
type Int int

// Bool is a bool that implements [Mixer] and [Distancer]. It switches from
// the receiver to the other value at t = 0.5.
type Bool bool

var _ Measurable[F64] = F64(0)
var _ Measurable[F32] = F32(0)
var _ Measurable[Int] = Int(0)
var _ Measurable[Bool] = Bool(false)

// lerp is exact at both ends, which a+(b-a)*t isn't for t = 1.
func lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	default:
		return a + (b-a)*t
	}
}

func (a F64) Mix(b F64, t float64) F64 {
	return F64(lerp(float64(a), float64(b), t))
}

func (a F32) Mix(b F32, t float64) F32 {
	return F32(lerp(float64(a), float64(b), t))
}

func (a Int) Mix(b Int, t float64) Int {
	return Int(math.Round(lerp(float64(a), float64(b), t)))
}

func (a Bool) Mix(b Bool, t float64) Bool {
	if t < 0.5 {
		return a
	}
	return b
}

// Pair combines two values that are interpolated independently.
type Pair[A Measurable[A], B Measurable[B]] struct {
	First  A
	Second B
}

// MakePair returns the pair (a, b).
func MakePair[A Measurable[A], B Measurable[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{a, b}
}

func (p Pair[A, B]) Mix(o Pair[A, B], t float64) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Mix(o.First, t),
		Second: p.Second.Mix(o.Second, t),
	}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple combines three values that are interpolated independently.
type Triple[A Measurable[A], B Measurable[B], C Measurable[C]] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple returns the triple (a, b, c).
func MakeTriple[A Measurable[A], B Measurable[B], C Measurable[C]](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{a, b, c}
}

func (p Triple[A, B, C]) Mix(o Triple[A, B, C], t float64) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  p.First.Mix(o.First, t),
		Second: p.Second.Mix(o.Second, t),
		Third:  p.Third.Mix(o.Third, t),
	}
}

func (p Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.First, p.Second, p.Third)
}

// Values is a fixed-length sequence of values that are interpolated
// elementwise. Mixing or measuring two Values of different lengths panics.
type Values[T Measurable[T]] []T

func (vs Values[T]) Mix(o Values[T], t float64) Values[T] {
	if len(vs) != len(o) {
		panic(fmt.Sprintf("tween: mixing Values of lengths %d and %d", len(vs), len(o)))
	}
	out := make(Values[T], len(vs))
	for i := range vs {
		out[i] = vs[i].Mix(o[i], t)
	}
	return out
}

// Option is an optional value.
//
// Two present values are mixed. When only one of the two values is present,
// the result switches from the receiver to the other value at t = 0.5.
type Option[T Mixer[T]] struct {
	isSet bool
	value T
}

// Some returns a present optional value.
func Some[T Mixer[T]](v T) Option[T] {
	return Option[T]{isSet: true, value: v}
}

// None returns an absent optional value.
func None[T Mixer[T]]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (opt Option[T]) Get() (T, bool) {
	return opt.value, opt.isSet
}

// IsSet reports whether the value is present.
func (opt Option[T]) IsSet() bool { return opt.isSet }

func (opt Option[T]) Mix(o Option[T], t float64) Option[T] {
	if opt.isSet && o.isSet {
		return Some(opt.value.Mix(o.value, t))
	}
	if t < 0.5 {
		return opt
	}
	return o
}

func (opt Option[T]) String() string {
	if !opt.isSet {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", opt.value)
}
