package tween

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

const (
	defaultPathSteps     = 256
	defaultPathTableSize = 128
)

// PathBuilder assembles a [Path] from connected segments. Each segment starts
// where the previous one ended.
type PathBuilder[T Measurable[T]] struct {
	segs []Segment[T]
	end  T
}

// NewPathBuilder returns a builder for a path starting at start.
func NewPathBuilder[T Measurable[T]](start T) *PathBuilder[T] {
	return &PathBuilder[T]{
		segs: []Segment[T]{{Kind: PointKind, P0: start}},
		end:  start,
	}
}

// LineTo adds a straight segment to p.
func (b *PathBuilder[T]) LineTo(p T) *PathBuilder[T] {
	b.segs = append(b.segs, Segment[T]{Kind: LineKind, P0: b.end, P1: p})
	b.end = p
	return b
}

// QuadTo adds a quadratic Bézier segment with control point p1, ending at p2.
func (b *PathBuilder[T]) QuadTo(p1, p2 T) *PathBuilder[T] {
	b.segs = append(b.segs, Segment[T]{Kind: QuadKind, P0: b.end, P1: p1, P2: p2})
	b.end = p2
	return b
}

// CubicTo adds a cubic Bézier segment with control points p1 and p2, ending
// at p3.
func (b *PathBuilder[T]) CubicTo(p1, p2, p3 T) *PathBuilder[T] {
	b.segs = append(b.segs, Segment[T]{Kind: CubicKind, P0: b.end, P1: p1, P2: p2, P3: p3})
	b.end = p3
	return b
}

// Build is like [PathBuilder.BuildOpt], with default settings of 256 samples
// and 128 table slots.
func (b *PathBuilder[T]) Build() *Path[T] {
	return b.BuildOpt(defaultPathSteps, defaultPathTableSize)
}

// BuildOpt builds the path. The segments are sampled about steps times in
// total, each segment receiving samples in proportion to its estimated
// length, and the measured arc lengths are stored in a table with size slots.
// More samples make the measurement more precise, more slots make the speed
// along the path more even.
//
// The builder may be used further after BuildOpt returns.
func (b *PathBuilder[T]) BuildOpt(steps, size int) *Path[T] {
	if steps < 2 {
		panic(fmt.Sprintf("tween: path needs at least two samples, got %d", steps))
	}
	p := &Path[T]{
		segs:  slices.Clone(b.segs),
		table: newLookupTable(size),
	}

	lengths := make([]float64, len(p.segs))
	for i, seg := range p.segs {
		lengths[i] = seg.EstimateLength()
	}
	estimate := floats.Sum(lengths)
	if !(estimate > 0) {
		return p
	}

	// Pairs of (arc length, curve parameter). The integer part of a curve
	// parameter indexes p.live, so that segments without extent take up no
	// parameter range and the end of one segment is the start of the next.
	var arcs, params []float64
	var prev T
	for i, seg := range p.segs {
		if !(lengths[i] > 0) {
			continue
		}
		j := len(p.live)
		p.live = append(p.live, i)
		n := max(1, int(math.Ceil(lengths[i]/estimate*float64(steps-1))))
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			pt := seg.Eval(t)
			arc := 0.0
			if len(arcs) > 0 {
				arc = arcs[len(arcs)-1] + prev.Distance(pt)
			}
			arcs = append(arcs, arc)
			params = append(params, float64(j)+t)
			prev = pt
		}
	}

	total := arcs[len(arcs)-1]
	if !(total > 0) {
		return p
	}
	p.length = total
	floats.Scale(1/total, arcs)
	arcs[len(arcs)-1] = 1

	for j := 1; j < len(arcs); j++ {
		p.table.line(arcs[j-1], params[j-1], arcs[j], params[j])
	}
	p.table.values[0] = params[0]
	p.table.values[len(p.table.values)-1] = params[len(params)-1]
	return p
}

// Path is a curve through measurable values, parameterized by arc length.
// Moving u from 0 to 1 at a constant rate moves [Path.ValueAt] at constant
// speed, no matter how unevenly the segments are sized.
type Path[T Measurable[T]] struct {
	// The first segment is always a point segment at the start of the path.
	segs []Segment[T]
	// Indices into segs of the segments with a positive estimated length.
	live   []int
	table  lookupTable
	length float64
}

// ValueAt returns the value at the fraction u of the arc length, which is
// clamped to [0, 1].
func (p *Path[T]) ValueAt(u float64) T {
	if p.IsDegenerate() {
		return p.segs[0].P0
	}
	param := p.table.at(u)
	j := min(max(int(math.Floor(param)), 0), len(p.live)-1)
	t := min(param-float64(j), 1)
	return p.segs[p.live[j]].Eval(t)
}

// Segments returns the segments of the path, starting with the point segment
// for its start.
func (p *Path[T]) Segments() iter.Seq[Segment[T]] {
	return slices.Values(p.segs)
}

// Length returns the arc length of the path as measured when it was built.
func (p *Path[T]) Length() float64 { return p.length }

// IsDegenerate reports whether the path has no extent, which is the case when
// all of its points coincide. A degenerate path has the same value everywhere.
func (p *Path[T]) IsDegenerate() bool { return p.length == 0 }

func (p *Path[T]) String() string {
	return fmt.Sprintf("Path(%d segments, length %g)", len(p.segs)-1, p.length)
}
