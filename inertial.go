package tween

// Inertial is a value that moves smoothly toward a target that can change at
// any time. Changing the target in the middle of a transition doesn't make
// the value jump: the new transition starts from wherever the previous one
// currently is.
//
// Inertial values are immutable; GoTo and EaseTo return new values. Every
// method takes the current time explicitly, so that all queries within one
// frame agree. Times passed to successive calls must not decrease.
type Inertial[T interface {
	Mixer[T]
	comparable
}, X Time[X, D], D Duration[D]] struct {
	target T
	active bool
	start  X
	length D
	easing Easing
	// parent is the value this one transitions away from.
	parent *Inertial[T, X, D]
}

var _ Animated[F64, Seconds] = Inertial[F64, Seconds, Seconds]{}

// NewInertial returns a value resting at value.
func NewInertial[T interface {
	Mixer[T]
	comparable
}, X Time[X, D], D Duration[D]](value T) Inertial[T, X, D] {
	return Inertial[T, X, D]{target: value}
}

// GoTo is like EaseTo, using [DefaultEasing].
func (v Inertial[T, X, D]) GoTo(target T, now X, length D) Inertial[T, X, D] {
	return v.EaseTo(target, now, length, DefaultEasing)
}

// EaseTo starts a transition to target at now, lasting length. If target is
// already the target, v is returned unchanged.
func (v Inertial[T, X, D]) EaseTo(target T, now X, length D, easing Easing) Inertial[T, X, D] {
	if target == v.target {
		return v
	}
	parent := v.prune(now)
	return Inertial[T, X, D]{
		target: target,
		active: true,
		start:  now,
		length: length,
		easing: easing,
		parent: &parent,
	}
}

// prune returns a copy of v without the ancestors that can no longer affect
// its value at or after now.
func (v Inertial[T, X, D]) prune(now X) Inertial[T, X, D] {
	if v.IsFinished(now) {
		v.parent = nil
		return v
	}
	if v.parent != nil {
		p := v.parent.prune(now)
		v.parent = &p
	}
	return v
}

func (v Inertial[T, X, D]) Get(now X) T {
	if !v.active {
		return v.target
	}
	if now.Before(v.start) {
		if v.parent == nil {
			return v.target
		}
		return v.parent.Get(now)
	}
	if v.parent == nil || isZero(v.length) || v.IsFinished(now) {
		return v.target
	}
	t := v.easing.Ease(now.Since(v.start).FractionOf(v.length))
	return v.parent.Get(now).Mix(v.target, t)
}

// IsFinished reports whether the value has come to rest at its target, which
// is the case strictly after the end of the transition.
func (v Inertial[T, X, D]) IsFinished(now X) bool {
	end, ok := v.EndTime()
	return !ok || end.Before(now)
}

// Target returns the value being moved toward.
func (v Inertial[T, X, D]) Target() T { return v.target }

// EndTime returns the end of the current transition. ok is false if there
// has never been one.
func (v Inertial[T, X, D]) EndTime() (end X, ok bool) {
	if !v.active {
		return v.start, false
	}
	return v.start.Advance(v.length), true
}

// Depth returns the number of values in the chain of transitions, including
// v itself.
func (v Inertial[T, X, D]) Depth() int {
	n := 1
	for p := v.parent; p != nil; p = p.parent {
		n++
	}
	return n
}
