package tween

import "fmt"

type SegmentKind int

const (
	// A single point.
	PointKind SegmentKind = iota + 1
	// A straight segment.
	LineKind
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case PointKind:
		return "Point"
	case LineKind:
		return "Line"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	default:
		return "InvalidSegment"
	}
}

// Segment is a Bézier segment of degree 0 to 3 over any measurable value.
// This type acts as a tagged union; Kind determines how many of the control
// points are used.
//
// Curves over values other than points are evaluated with de Casteljau's
// algorithm, which only needs [Mixer].
type Segment[T Measurable[T]] struct {
	Kind SegmentKind
	P0   T
	P1   T
	P2   T
	P3   T
}

// Eval returns the value of the segment at parameter t in [0, 1].
func (seg Segment[T]) Eval(t float64) T {
	switch seg.Kind {
	case LineKind:
		return seg.P0.Mix(seg.P1, t)
	case QuadKind:
		a := seg.P0.Mix(seg.P1, t)
		b := seg.P1.Mix(seg.P2, t)
		return a.Mix(b, t)
	case CubicKind:
		a := seg.P0.Mix(seg.P1, t)
		b := seg.P1.Mix(seg.P2, t)
		c := seg.P2.Mix(seg.P3, t)
		ab := a.Mix(b, t)
		bc := b.Mix(c, t)
		return ab.Mix(bc, t)
	default:
		return seg.P0
	}
}

func (seg Segment[T]) Start() T {
	return seg.P0
}

func (seg Segment[T]) End() T {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return seg.P0
	}
}

// EstimateLength returns a cheap approximation of the arc length: the mean of
// the control polygon length, which bounds it from above, and the chord
// length, which bounds it from below. The estimate is exact for lines.
func (seg Segment[T]) EstimateLength() float64 {
	var poly float64
	switch seg.Kind {
	case LineKind:
		return seg.P0.Distance(seg.P1)
	case QuadKind:
		poly = seg.P0.Distance(seg.P1) + seg.P1.Distance(seg.P2)
	case CubicKind:
		poly = seg.P0.Distance(seg.P1) + seg.P1.Distance(seg.P2) + seg.P2.Distance(seg.P3)
	default:
		return 0
	}
	chord := seg.P0.Distance(seg.End())
	return (poly + chord) / 2
}

func (seg Segment[T]) String() string {
	switch seg.Kind {
	case PointKind:
		return fmt.Sprintf("Point(%v)", seg.P0)
	case LineKind:
		return fmt.Sprintf("Line(%v, %v)", seg.P0, seg.P1)
	case QuadKind:
		return fmt.Sprintf("Quad(%v, %v, %v)", seg.P0, seg.P1, seg.P2)
	case CubicKind:
		return fmt.Sprintf("Cubic(%v, %v, %v, %v)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		return "InvalidSegment"
	}
}
