package tween

// Timeline builds keyframes step by step. Each step starts where the previous
// one ended:
//
//	tl := tween.From[tween.F64, tween.Seconds](0).
//		GoTo(10, 1).
//		Stay(0.5).
//		EaseTo(2, 1, tween.CubicOut)
//
// A Timeline is itself a [Keyframes]. Its methods never modify the receiver.
type Timeline[T Mixer[T], D Duration[D]] struct {
	k Keyframes[T, D]
}

var _ Keyframes[F64, Seconds] = Timeline[F64, Seconds]{}

// From starts a timeline at value, with no duration.
func From[T Mixer[T], D Duration[D]](value T) Timeline[T, D] {
	var zero D
	return Timeline[T, D]{k: Hold[T, D]{Value: value, Length: zero}}
}

// Wrap starts a timeline with existing keyframes.
func Wrap[T Mixer[T], D Duration[D]](k Keyframes[T, D]) Timeline[T, D] {
	if tl, ok := k.(Timeline[T, D]); ok {
		return tl
	}
	return Timeline[T, D]{k: k}
}

func (tl Timeline[T, D]) Get(offset D) T      { return tl.k.Get(offset) }
func (tl Timeline[T, D]) Duration() (D, bool) { return tl.k.Duration() }

// Keyframes returns the keyframes built so far.
func (tl Timeline[T, D]) Keyframes() Keyframes[T, D] { return tl.k }

// Then appends next.
func (tl Timeline[T, D]) Then(next Keyframes[T, D]) Timeline[T, D] {
	return Timeline[T, D]{k: Sequential[T, D]{First: tl.k, Second: next}}
}

// Stay holds the end value for length. The timeline must be finite.
func (tl Timeline[T, D]) Stay(length D) Timeline[T, D] {
	return tl.Then(Hold[T, D]{Value: EndValue(tl.k), Length: length})
}

// GoTo moves linearly from the end value to target over length. The timeline
// must be finite.
func (tl Timeline[T, D]) GoTo(target T, length D) Timeline[T, D] {
	return tl.Then(Lerp[T, D]{From: EndValue(tl.k), To: target, Length: length})
}

// EaseTo moves from the end value to target over length, shaped by easing.
// The timeline must be finite.
func (tl Timeline[T, D]) EaseTo(target T, length D, easing Easing) Timeline[T, D] {
	return tl.Then(Eased[T, D]{From: EndValue(tl.k), To: target, Length: length, Easing: easing})
}

// Function appends values computed by f for length.
func (tl Timeline[T, D]) Function(f func(offset D) T, length D) Timeline[T, D] {
	return tl.Then(Func[T, D]{F: f, Length: length})
}

func (tl Timeline[T, D]) Repeat() Timeline[T, D] {
	return Timeline[T, D]{k: Repeat[T, D]{Inner: tl.k}}
}

func (tl Timeline[T, D]) RepeatN(n float64) Timeline[T, D] {
	return Timeline[T, D]{k: NewRepeatN(tl.k, n)}
}

func (tl Timeline[T, D]) Reverse() Timeline[T, D] {
	return Timeline[T, D]{k: Reverse[T, D]{Inner: tl.k}}
}

func (tl Timeline[T, D]) Scale(factor float64) Timeline[T, D] {
	return Timeline[T, D]{k: NewScale(tl.k, factor)}
}

func (tl Timeline[T, D]) ScaleTo(length D) Timeline[T, D] {
	return Timeline[T, D]{k: ScaleTo(tl.k, length)}
}

func (tl Timeline[T, D]) Slice(start, end D) Timeline[T, D] {
	return Timeline[T, D]{k: NewSlice(tl.k, start, end)}
}

func (tl Timeline[T, D]) ApplyEasing(easing Easing) Timeline[T, D] {
	return Timeline[T, D]{k: ApplyEasing[T, D]{Inner: tl.k, Easing: easing}}
}

// PolyTo travels from the end value of tl through points at constant speed
// over length. The timeline must be finite.
func PolyTo[T Measurable[T], D Duration[D]](tl Timeline[T, D], points []T, length D, easing Easing) Timeline[T, D] {
	all := make([]T, 0, len(points)+1)
	all = append(all, EndValue(tl.k))
	all = append(all, points...)
	return tl.Then(NewPoly(all, length, easing))
}

// MapTimeline transforms the values of tl with f.
func MapTimeline[T Mixer[T], U Mixer[U], D Duration[D]](tl Timeline[T, D], f func(T) U) Timeline[U, D] {
	return Timeline[U, D]{k: Map[T, U, D]{Inner: tl.k, F: f}}
}
