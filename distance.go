package tween

import (
	"fmt"
	"math"
)

// Distancer describes values that can measure how far apart they are.
//
// Distance must be non-negative. It is only used to estimate arc lengths and
// never influences how values are mixed.
type Distancer[T any] interface {
	Distance(other T) float64
}

// Measurable describes values that can be both mixed and measured. Paths and
// polylines require it.
type Measurable[T any] interface {
	Mixer[T]
	Distancer[T]
}

func (a F64) Distance(b F64) float64 { return math.Abs(float64(a) - float64(b)) }
func (a F32) Distance(b F32) float64 { return math.Abs(float64(a) - float64(b)) }
func (a Int) Distance(b Int) float64 { return math.Abs(float64(a) - float64(b)) }

func (a Bool) Distance(b Bool) float64 {
	if a == b {
		return 0
	}
	return 1
}

func (p Pair[A, B]) Distance(o Pair[A, B]) float64 {
	return math.Hypot(p.First.Distance(o.First), p.Second.Distance(o.Second))
}

func (p Triple[A, B, C]) Distance(o Triple[A, B, C]) float64 {
	d0 := p.First.Distance(o.First)
	d1 := p.Second.Distance(o.Second)
	d2 := p.Third.Distance(o.Third)
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}

func (vs Values[T]) Distance(o Values[T]) float64 {
	if len(vs) != len(o) {
		panic(fmt.Sprintf("tween: measuring Values of lengths %d and %d", len(vs), len(o)))
	}
	var sum float64
	for i := range vs {
		d := vs[i].Distance(o[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
