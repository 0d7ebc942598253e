package tween

import "math"

// solveITP finds a zero crossing of f in [a, b] using the [ITP method].
//
// It is assumed that ya = f(a) < 0 and yb = f(b) > 0. For monotonic functions
// the result is within epsilon of the crossing. k2 is hardwired to 2 and n0
// to 1, which gives the secant step a chance to engage on smooth functions
// at the cost of at most one iteration more than bisection.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func solveITP(f func(float64) float64, a, b, epsilon, ya, yb float64) float64 {
	const n0 = 1
	k1 := 0.2 / (b - a)
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	scaledEpsilon := epsilon * float64(uint64(1)<<(n0+n1_2))
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
