package tween

// Animated is a value that changes over time.
type Animated[T, X any] interface {
	// Get returns the value at now.
	Get(now X) T
	// IsFinished reports whether the value has stopped changing at now.
	IsFinished(now X) bool
}

// Animation is keyframes bound to a start time.
//
// Evaluating an animation at a time before its start panics, like every other
// attempt to measure time backward.
type Animation[T any, X Time[X, D], D Duration[D]] struct {
	k     Keyframes[T, D]
	start X
}

var _ Animated[F64, Seconds] = Animation[F64, Seconds, Seconds]{}

// Run starts k at start.
func Run[T any, X Time[X, D], D Duration[D]](k Keyframes[T, D], start X) Animation[T, X, D] {
	return Animation[T, X, D]{k: k, start: start}
}

func (a Animation[T, X, D]) Get(now X) T {
	return a.k.Get(now.Since(a.start))
}

func (a Animation[T, X, D]) IsFinished(now X) bool {
	return IsFinished(a.k, now.Since(a.start))
}

func (a Animation[T, X, D]) StartTime() X { return a.start }

// EndTime returns the time at which the animation ends. ok is false if it
// never does.
func (a Animation[T, X, D]) EndTime() (end X, ok bool) {
	d, ok := a.k.Duration()
	if !ok {
		return a.start, false
	}
	return a.start.Advance(d), true
}

func (a Animation[T, X, D]) Duration() (D, bool) { return a.k.Duration() }

func (a Animation[T, X, D]) Keyframes() Keyframes[T, D] { return a.k }

// Stationary is an [Animated] that never changes.
type Stationary[T, X any] struct {
	Value T
}

var _ Animated[F64, Seconds] = Stationary[F64, Seconds]{}

func (s Stationary[T, X]) Get(X) T           { return s.Value }
func (s Stationary[T, X]) IsFinished(X) bool { return true }
