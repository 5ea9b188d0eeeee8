package euklid

import (
	"math"
)

// Shape describes geometric shapes that have a bounding box and can describe
// their boundary as a sequence of path segments.
//
// Derived behaviour, such as containment and intersection tests, is provided
// by free functions that work on any Shape: see [Contains], [ContainsRect],
// [Intersects] and [FlattenShape].
type Shape interface {
	// PathIterator returns a new iterator over the shape's boundary. If t is
	// non-nil, it is applied to all coordinates the iterator produces.
	PathIterator(t Transformer) PathIterator

	// BoundingBox returns a rectangle that encloses the shape.
	BoundingBox() Rect
}

// Endpoints describes shapes that go from a start point to an end point.
type Endpoints interface {
	Start() Point
	End() Point
}

// ControlPointer describes curves that are defined by their end points and one
// or more control points.
type ControlPointer interface {
	Endpoints
	// ControlPoints returns the points defining the curve, including the end
	// points, in order.
	ControlPoints() []Point
}

var (
	_ ControlPointer = Line{}
	_ ControlPointer = QuadBez{}
	_ ControlPointer = CubicBez{}
)

// ControlBox returns the smallest rectangle enclosing all control points of c.
// For Bézier curves this conservatively encloses the curve.
func ControlBox(c ControlPointer) Rect {
	pts := c.ControlPoints()
	if len(pts) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// SegmentDistanceSq returns the squared distance between pt and the line segment
// from e's start point to its end point.
func SegmentDistanceSq(e Endpoints, pt Point) float64 {
	p0, p1 := e.Start(), e.End()
	return PointSegDistSq(pt.X, pt.Y, p0.X, p0.Y, p1.X, p1.Y)
}

// PointSegDistSq returns the squared distance from (px, py) to the line segment
// from (x1, y1) to (x2, y2).
func PointSegDistSq(px, py, x1, y1, x2, y2 float64) float64 {
	// Adjust vectors relative to (x1, y1).
	x2 -= x1
	y2 -= y1
	px -= x1
	py -= y1
	dot := px*x2 + py*y2
	var projLenSq float64
	if dot > 0 {
		// Switch to vectors relative to (x2, y2).
		px = x2 - px
		py = y2 - py
		dot = px*x2 + py*y2
		if dot > 0 {
			projLenSq = dot * dot / (x2*x2 + y2*y2)
		}
	}
	return max(px*px+py*py-projLenSq, 0)
}

// PointSegDist returns the distance from (px, py) to the line segment from
// (x1, y1) to (x2, y2).
func PointSegDist(px, py, x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(PointSegDistSq(px, py, x1, y1, x2, y2))
}

// PointLineDistSq returns the squared distance from (px, py) to the infinite
// line through (x1, y1) and (x2, y2).
//
// The result is NaN if the two points defining the line coincide.
func PointLineDistSq(px, py, x1, y1, x2, y2 float64) float64 {
	x2 -= x1
	y2 -= y1
	px -= x1
	py -= y1
	s := px*y2 - py*x2
	return s * s / (x2*x2 + y2*y2)
}

// RelativeCCW returns an indicator of where (px, py) lies with respect to the
// line segment from (x1, y1) to (x2, y2).
//
// The result is 1 if the segment must turn counter-clockwise (in a y-down
// space) to point at (px, py), -1 if it must turn clockwise, and 0 if the point
// lies on the segment. A collinear point beyond either end of the segment
// yields -1 before the start and 1 past the end.
func RelativeCCW(px, py, x1, y1, x2, y2 float64) int {
	x2 -= x1
	y2 -= y1
	px -= x1
	py -= y1
	ccw := px*y2 - py*x2
	if ccw == 0 {
		// The point is collinear, classify based on which side of the
		// segment the point falls on.
		ccw = px*x2 + py*y2
		if ccw > 0 {
			px -= x2
			py -= y2
			ccw = px*x2 + py*y2
			if ccw < 0 {
				ccw = 0
			}
		}
	}
	switch {
	case ccw < 0:
		return -1
	case ccw > 0:
		return 1
	default:
		return 0
	}
}

// FlattenShape returns an iterator over the shape's boundary with all curves
// replaced by line segments. See [NewFlatteningIterator].
func FlattenShape(s Shape, t Transformer, opts FlattenOptions) (*FlatteningIterator, error) {
	return NewFlatteningIterator(s.PathIterator(t), opts)
}
