package euklid

// Line represents a line segment. It encloses no area, so it contains no
// points, but it can intersect rectangles.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Shape = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) ControlPoints() []Point { return []Point{l.P0, l.P1} }

// DistanceSq returns the squared distance between pt and the segment.
func (l Line) DistanceSq(pt Point) float64 {
	return SegmentDistanceSq(l, pt)
}

// LineDistanceSq returns the squared distance between pt and the infinite line
// through the segment.
func (l Line) LineDistanceSq(pt Point) float64 {
	return PointLineDistSq(pt.X, pt.Y, l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
}

// RelativeCCW returns the orientation of pt relative to the segment. See
// [RelativeCCW].
func (l Line) RelativeCCW(pt Point) int {
	return RelativeCCW(pt.X, pt.Y, l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
}

// IntersectsLine reports whether the two segments have at least one point in
// common.
func (l Line) IntersectsLine(o Line) bool {
	return l.RelativeCCW(o.P0)*l.RelativeCCW(o.P1) <= 0 &&
		o.RelativeCCW(l.P0)*o.RelativeCCW(l.P1) <= 0
}

// Contains always returns false, as lines enclose no area.
func (l Line) Contains(pt Point) bool { return false }

// ContainsRect always returns false, as lines enclose no area.
func (l Line) ContainsRect(r Rect) bool { return false }

// Intersects reports whether the segment touches the closed rectangle r.
// Rectangles with zero area never intersect.
func (l Line) Intersects(r Rect) bool {
	r = r.Abs()
	if r.IsEmpty() {
		return false
	}
	_, _, ok := edge{l.P0.X, l.P0.Y, l.P1.X, l.P1.Y}.clip(r)
	return ok
}

// PathIterator implements Shape.
func (l Line) PathIterator(t Transformer) PathIterator {
	return &lineIterator{l: l, t: t}
}

type lineIterator struct {
	l     Line
	t     Transformer
	index int
}

func (it *lineIterator) WindingRule() WindingRule { return NonZero }
func (it *lineIterator) Done() bool               { return it.index > 1 }

func (it *lineIterator) Next() {
	if !it.Done() {
		it.index++
	}
}

func (it *lineIterator) Segment(coords []float64) SegmentType {
	var typ SegmentType
	switch it.index {
	case 0:
		coords[0], coords[1] = it.l.P0.X, it.l.P0.Y
		typ = SegMoveTo
	case 1:
		coords[0], coords[1] = it.l.P1.X, it.l.P1.Y
		typ = SegLineTo
	default:
		iteratorDone("line")
	}
	transformCoords(it.t, coords, 1)
	return typ
}
