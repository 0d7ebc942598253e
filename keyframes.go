package tween

import "fmt"

// Keyframes describes a value over time, relative to an unspecified start.
// Keyframes work like an animation template: they become an [Animation] once
// bound to a start time with [Run].
//
// Implementations must be pure: calling Get twice with the same offset
// returns the same value.
type Keyframes[T any, D Duration[D]] interface {
	// Get returns the value at offset from the start. For finite keyframes,
	// offsets at or past the duration yield the end value.
	Get(offset D) T

	// Duration returns the total duration of the keyframes. ok is false if
	// the keyframes never end, in which case d is meaningless.
	Duration() (d D, ok bool)
}

// MustDuration returns the duration of k. It panics if k is infinite.
func MustDuration[T any, D Duration[D]](k Keyframes[T, D]) D {
	d, ok := k.Duration()
	if !ok {
		panic(fmt.Sprintf("tween: duration of infinite keyframes %T", k))
	}
	return d
}

// IsFinite reports whether k ends.
func IsFinite[T any, D Duration[D]](k Keyframes[T, D]) bool {
	_, ok := k.Duration()
	return ok
}

// IsFinished reports whether k has ended at offset. Infinite keyframes never
// finish.
func IsFinished[T any, D Duration[D]](k Keyframes[T, D], offset D) bool {
	d, ok := k.Duration()
	return ok && !offset.Less(d)
}

// StartValue returns the value of k at offset zero.
func StartValue[T any, D Duration[D]](k Keyframes[T, D]) T {
	var zero D
	return k.Get(zero)
}

// EndValue returns the value of k at its end. It panics if k is infinite.
func EndValue[T any, D Duration[D]](k Keyframes[T, D]) T {
	return k.Get(MustDuration(k))
}

// Hold stays at Value for Length.
type Hold[T any, D Duration[D]] struct {
	Value  T
	Length D
}

func (h Hold[T, D]) Get(D) T             { return h.Value }
func (h Hold[T, D]) Duration() (D, bool) { return h.Length, true }

// Lerp linearly interpolates from From to To over Length.
type Lerp[T Mixer[T], D Duration[D]] struct {
	From   T
	To     T
	Length D
}

func (l Lerp[T, D]) Get(offset D) T {
	if !offset.Less(l.Length) {
		return l.To
	}
	return l.From.Mix(l.To, offset.FractionOf(l.Length))
}

func (l Lerp[T, D]) Duration() (D, bool) { return l.Length, true }

// Eased interpolates from From to To over Length, shaping progress with
// Easing.
type Eased[T Mixer[T], D Duration[D]] struct {
	From   T
	To     T
	Length D
	Easing Easing
}

func (e Eased[T, D]) Get(offset D) T {
	if !offset.Less(e.Length) {
		return e.From.Mix(e.To, e.Easing.Ease(1))
	}
	return e.From.Mix(e.To, e.Easing.Ease(offset.FractionOf(e.Length)))
}

func (e Eased[T, D]) Duration() (D, bool) { return e.Length, true }

// Func computes values with F. Offsets past Length are clamped to Length
// before F sees them.
type Func[T any, D Duration[D]] struct {
	F      func(offset D) T
	Length D
}

func (f Func[T, D]) Get(offset D) T {
	if f.Length.Less(offset) {
		offset = f.Length
	}
	return f.F(offset)
}

func (f Func[T, D]) Duration() (D, bool) { return f.Length, true }

// Poly travels along a polyline at constant speed over Length. Easing is
// applied to the traveled fraction of the total arc length, not to time.
type Poly[T Measurable[T], D Duration[D]] struct {
	path   *Path[T]
	length D
	easing Easing
}

// NewPoly returns keyframes that travel through points in order. It panics if
// points is empty.
func NewPoly[T Measurable[T], D Duration[D]](points []T, length D, easing Easing) Poly[T, D] {
	if len(points) == 0 {
		panic("tween: polyline needs at least one point")
	}
	b := NewPathBuilder(points[0])
	for _, pt := range points[1:] {
		b.LineTo(pt)
	}
	return Poly[T, D]{path: b.Build(), length: length, easing: easing}
}

func (p Poly[T, D]) Get(offset D) T {
	if !offset.Less(p.length) {
		return p.path.ValueAt(p.easing.Ease(1))
	}
	return p.path.ValueAt(p.easing.Ease(offset.FractionOf(p.length)))
}

func (p Poly[T, D]) Duration() (D, bool) { return p.length, true }

// Path returns the path the keyframes travel along.
func (p Poly[T, D]) Path() *Path[T] { return p.path }
