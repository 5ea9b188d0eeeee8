package euklid

import (
	"math"
)

var _ Shape = QuadBez{}

// QuadBez is a quadratic Bézier segment. As a shape, it encloses the area
// between the curve and its chord, under the even-odd rule.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// BoundingBox returns the control box of the curve.
func (q QuadBez) BoundingBox() Rect {
	return ControlBox(q)
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Subdivide splits the curve at t = 0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) ControlPoints() []Point {
	return []Point{q.P0, q.P1, q.P2}
}

// FlatnessSq returns the square of the distance between the control point and
// the chord.
func (q QuadBez) FlatnessSq() float64 {
	return PointSegDistSq(q.P1.X, q.P1.Y, q.P0.X, q.P0.Y, q.P2.X, q.P2.Y)
}

// Flatness returns the distance between the control point and the chord.
func (q QuadBez) Flatness() float64 {
	return math.Sqrt(q.FlatnessSq())
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

// Contains reports whether pt lies between the curve and its chord.
func (q QuadBez) Contains(pt Point) bool {
	return contains(q, EvenOdd, pt)
}

// ContainsRect reports whether r lies entirely between the curve and its
// chord.
func (q QuadBez) ContainsRect(r Rect) bool {
	return containsRect(q, EvenOdd, r)
}

// Intersects reports whether r overlaps or touches the area between the curve
// and its chord.
func (q QuadBez) Intersects(r Rect) bool {
	return intersects(q, EvenOdd, r)
}

// PathIterator implements Shape.
func (q QuadBez) PathIterator(t Transformer) PathIterator {
	return &quadIterator{q: q, t: t}
}

type quadIterator struct {
	q     QuadBez
	t     Transformer
	index int
}

func (it *quadIterator) WindingRule() WindingRule { return NonZero }
func (it *quadIterator) Done() bool               { return it.index > 1 }

func (it *quadIterator) Next() {
	if !it.Done() {
		it.index++
	}
}

func (it *quadIterator) Segment(coords []float64) SegmentType {
	switch it.index {
	case 0:
		coords[0], coords[1] = it.q.P0.X, it.q.P0.Y
		transformCoords(it.t, coords, 1)
		return SegMoveTo
	case 1:
		coords[0], coords[1] = it.q.P1.X, it.q.P1.Y
		coords[2], coords[3] = it.q.P2.X, it.q.P2.Y
		transformCoords(it.t, coords, 2)
		return SegQuadTo
	default:
		iteratorDone("quadratic Bézier")
		panic("unreachable")
	}
}
