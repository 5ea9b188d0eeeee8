package euklid

import (
	"math"
)

var _ Shape = CubicBez{}

// CubicBez is a cubic Bézier segment. As a shape, it encloses the area between
// the curve and its chord, under the even-odd rule.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// BoundingBox returns the control box of the curve.
func (c CubicBez) BoundingBox() Rect {
	return ControlBox(c)
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) ControlPoints() []Point {
	return []Point{c.P0, c.P1, c.P2, c.P3}
}

// FlatnessSq returns the square of the larger of the distances between the
// control points and the chord.
func (c CubicBez) FlatnessSq() float64 {
	return max(
		PointSegDistSq(c.P1.X, c.P1.Y, c.P0.X, c.P0.Y, c.P3.X, c.P3.Y),
		PointSegDistSq(c.P2.X, c.P2.Y, c.P0.X, c.P0.Y, c.P3.X, c.P3.Y),
	)
}

// Flatness returns the larger of the distances between the control points and
// the chord.
func (c CubicBez) Flatness() float64 {
	return math.Sqrt(c.FlatnessSq())
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

// Contains reports whether pt lies in the area enclosed by the curve and its
// chord, under the even-odd rule.
func (c CubicBez) Contains(pt Point) bool {
	return contains(c, EvenOdd, pt)
}

// ContainsRect reports whether r lies entirely inside the area enclosed by the
// curve and its chord.
func (c CubicBez) ContainsRect(r Rect) bool {
	return containsRect(c, EvenOdd, r)
}

// Intersects reports whether r overlaps or touches the area enclosed by the
// curve and its chord.
func (c CubicBez) Intersects(r Rect) bool {
	return intersects(c, EvenOdd, r)
}

// PathIterator implements Shape.
func (c CubicBez) PathIterator(t Transformer) PathIterator {
	return &cubicIterator{c: c, t: t}
}

type cubicIterator struct {
	c     CubicBez
	t     Transformer
	index int
}

func (it *cubicIterator) WindingRule() WindingRule { return NonZero }
func (it *cubicIterator) Done() bool               { return it.index > 1 }

func (it *cubicIterator) Next() {
	if !it.Done() {
		it.index++
	}
}

func (it *cubicIterator) Segment(coords []float64) SegmentType {
	switch it.index {
	case 0:
		coords[0], coords[1] = it.c.P0.X, it.c.P0.Y
		transformCoords(it.t, coords, 1)
		return SegMoveTo
	case 1:
		coords[0], coords[1] = it.c.P1.X, it.c.P1.Y
		coords[2], coords[3] = it.c.P2.X, it.c.P2.Y
		coords[4], coords[5] = it.c.P3.X, it.c.P3.Y
		transformCoords(it.t, coords, 3)
		return SegCubicTo
	default:
		iteratorDone("cubic Bézier")
		panic("unreachable")
	}
}
