package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type kf = Keyframes[F64, Seconds]

func line(from, to F64, length Seconds) kf {
	return Lerp[F64, Seconds]{From: from, To: to, Length: length}
}

func TestPrimitives(t *testing.T) {
	h := Hold[F64, Seconds]{Value: 3, Length: 2}
	diff(t, F64(3), h.Get(0))
	diff(t, F64(3), h.Get(5))
	diff(t, Seconds(2), MustDuration[F64, Seconds](h))

	l := line(0, 10, 2)
	diff(t, F64(0), l.Get(0))
	diff(t, F64(5), l.Get(1))
	diff(t, F64(10), l.Get(2))
	diff(t, F64(10), l.Get(100))

	e := Eased[F64, Seconds]{From: 0, To: 8, Length: 1, Easing: QuadraticInOut}
	diff(t, F64(1), e.Get(0.25))
	diff(t, F64(8), e.Get(3))

	f := Func[F64, Seconds]{F: func(d Seconds) F64 { return F64(d * d) }, Length: 3}
	diff(t, F64(4), f.Get(2))
	diff(t, F64(9), f.Get(4))
}

func TestBoundaries(t *testing.T) {
	cases := map[string]kf{
		"hold":       Hold[F64, Seconds]{Value: 1, Length: 1},
		"line":       line(2, 7, 1.5),
		"sequential": Sequential[F64, Seconds]{First: line(0, 1, 1), Second: line(1, 5, 2)},
		"reverse":    Reverse[F64, Seconds]{Inner: line(0, 4, 2)},
		"scale":      NewScale(line(0, 4, 2), 3),
		"repeat_n":   NewRepeatN(line(0, 4, 2), 2.5),
		"slice":      NewSlice(line(0, 4, 4), 1, 3),
		"easing":     ApplyEasing[F64, Seconds]{Inner: line(0, 4, 2), Easing: CubicIn},
	}
	for name, k := range cases {
		t.Run(name, func(t *testing.T) {
			d := MustDuration(k)
			diff(t, k.Get(d), k.Get(d+1))
			diff(t, k.Get(d), k.Get(d*10))
			diff(t, k.Get(0), StartValue(k))
			diff(t, k.Get(d), EndValue(k))
			if !IsFinished(k, d) {
				t.Error("not finished at its duration")
			}
		})
	}
}

func TestSequential(t *testing.T) {
	a := line(0, 10, 1)
	b := line(10, 0, 3)
	s := Sequential[F64, Seconds]{First: a, Second: b}

	diff(t, Seconds(4), MustDuration[F64, Seconds](s))
	for _, o := range []Seconds{0, 0.5, 0.99} {
		diff(t, a.Get(o), s.Get(o))
	}
	for _, o := range []Seconds{0, 1, 2.5, 3} {
		diff(t, b.Get(o), s.Get(1+o))
	}

	inf := Sequential[F64, Seconds]{First: Repeat[F64, Seconds]{Inner: a}, Second: b}
	if IsFinite[F64, Seconds](inf) {
		t.Error("sequence starting with an infinite part should be infinite")
	}
	diff(t, F64(5), inf.Get(100.5))
}

func TestRepeat(t *testing.T) {
	r := Repeat[F64, Seconds]{Inner: line(0, 8, 1)}
	diff(t, F64(2), r.Get(0.25))
	diff(t, F64(2), r.Get(1.25))
	diff(t, F64(2), r.Get(8.25))
	if IsFinite[F64, Seconds](r) {
		t.Error("repeat should be infinite")
	}
	if IsFinished[F64, Seconds](r, 1e9) {
		t.Error("repeat should never finish")
	}
	assert.Panics(t, func() { MustDuration[F64, Seconds](r) })
	assert.Panics(t, func() { Repeat[F64, Seconds]{Inner: r}.Get(1) })

	zero := Repeat[F64, Seconds]{Inner: Hold[F64, Seconds]{Value: 4}}
	diff(t, F64(4), zero.Get(3))
}

func TestRepeatN(t *testing.T) {
	r := NewRepeatN(line(0, 10, 1), 2)
	diff(t, Seconds(2), MustDuration[F64, Seconds](r))
	diff(t, F64(7.5), r.Get(0.75))
	diff(t, F64(5), r.Get(1.5))
	diff(t, F64(10), r.Get(2))
	diff(t, F64(10), r.Get(2.5))

	half := NewRepeatN(line(0, 10, 1), 1.5)
	diff(t, Seconds(1.5), MustDuration[F64, Seconds](half))
	diff(t, F64(2.5), half.Get(1.25))
	diff(t, F64(10), half.Get(1.5))
	diff(t, F64(10), half.Get(1.6))

	none := NewRepeatN(line(3, 10, 1), 0)
	diff(t, Seconds(0), MustDuration[F64, Seconds](none))
	diff(t, F64(3), none.Get(0))
	diff(t, F64(3), none.Get(5))

	assert.Panics(t, func() { NewRepeatN(line(0, 1, 1), -1) })
}

func TestReverse(t *testing.T) {
	k := Sequential[F64, Seconds]{First: line(0, 10, 1), Second: Eased[F64, Seconds]{From: 10, To: 2, Length: 2, Easing: CubicOut}}
	r := Reverse[F64, Seconds]{Inner: k}
	rr := Reverse[F64, Seconds]{Inner: r}
	for _, o := range []Seconds{0, 0.3, 1, 1.7, 3} {
		diff(t, k.Get(3-o), r.Get(o))
		near(t, k.Get(o), rr.Get(o))
	}
	assert.Panics(t, func() { Reverse[F64, Seconds]{Inner: Repeat[F64, Seconds]{Inner: k}}.Get(0) })
}

func TestScale(t *testing.T) {
	s := NewScale(line(0, 10, 1), 2)
	diff(t, Seconds(2), MustDuration[F64, Seconds](s))
	diff(t, F64(5), s.Get(1))
	diff(t, F64(10), s.Get(2))

	fast := NewScale(line(0, 10, 2), 0.5)
	diff(t, Seconds(1), MustDuration[F64, Seconds](fast))
	diff(t, F64(5), fast.Get(0.5))

	zero := NewScale(line(0, 10, 2), 0)
	diff(t, Seconds(0), MustDuration[F64, Seconds](zero))
	diff(t, F64(10), zero.Get(0))

	inf := NewScale[F64, Seconds](Repeat[F64, Seconds]{Inner: line(0, 10, 1)}, 2)
	if IsFinite[F64, Seconds](inf) {
		t.Error("scaled repeat should be infinite")
	}
	diff(t, F64(5), inf.Get(3))

	assert.Panics(t, func() { NewScale(line(0, 1, 1), -2) })
}

func TestScaleTo(t *testing.T) {
	s := ScaleTo(line(0, 10, 4), 2)
	diff(t, 0.5, s.Factor)
	diff(t, Seconds(2), MustDuration[F64, Seconds](s))
	diff(t, F64(5), s.Get(1))

	z := ScaleTo[F64, Seconds](Hold[F64, Seconds]{Value: 1}, 2)
	diff(t, 1.0, z.Factor)
}

func TestSlice(t *testing.T) {
	s := NewSlice(line(1, 5, 4), 1, 3)
	diff(t, Seconds(2), MustDuration[F64, Seconds](s))
	diff(t, F64(2), s.Get(0))
	diff(t, F64(3), s.Get(1))
	diff(t, F64(4), s.Get(2))
	diff(t, F64(4), s.Get(3))

	assert.Panics(t, func() { NewSlice(line(0, 1, 1), 2, 1) })
}

func TestMap(t *testing.T) {
	m := Map[F64, Int, Seconds]{Inner: line(0, 10, 1), F: func(v F64) Int { return Int(v) * 2 }}
	diff(t, Int(10), m.Get(0.5))
	diff(t, Seconds(1), MustDuration[Int, Seconds](m))
}

func TestApplyEasing(t *testing.T) {
	k := Sequential[F64, Seconds]{First: line(0, 4, 1), Second: line(4, 12, 1)}
	e := ApplyEasing[F64, Seconds]{Inner: k, Easing: QuadraticInOut}
	diff(t, Seconds(2), MustDuration[F64, Seconds](e))
	near(t, 1, e.Get(0.5))
	near(t, 10, e.Get(1.5))
	diff(t, F64(12), e.Get(2))
}

func TestPoly(t *testing.T) {
	p := NewPoly([]F64{0, 10, 0}, Seconds(2), Linear)
	near(t, 5, p.Get(0.5))
	near(t, 10, p.Get(1))
	near(t, 5, p.Get(1.5))
	near(t, 0, p.Get(2))
	diff(t, 20.0, p.Path().Length(), approx)

	assert.Panics(t, func() { NewPoly([]F64{}, Seconds(1), nil) })
}
