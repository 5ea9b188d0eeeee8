package euklid

import (
	"math"
)

// Ellipse is an axis-aligned ellipse, described by the rectangle it is
// inscribed in. X and Y are the top left corner of that rectangle in a y-down
// space.
//
// An ellipse with negative width or height has no boundary at all, and one
// with zero width or height contains no points.
type Ellipse struct {
	X, Y          float64
	Width, Height float64
}

var _ Shape = Ellipse{}

// NewEllipseFromRect returns the largest ellipse that can be bounded by r. It
// uses the absolute width and height of the rectangle.
func NewEllipseFromRect(r Rect) Ellipse {
	r = r.Abs()
	return Ellipse{X: r.X0, Y: r.Y0, Width: r.Width(), Height: r.Height()}
}

// NewEllipse returns the ellipse with the given center and radii.
func NewEllipse(center Point, radii Vec2) Ellipse {
	return Ellipse{
		X:      center.X - radii.X,
		Y:      center.Y - radii.Y,
		Width:  2 * radii.X,
		Height: 2 * radii.Y,
	}
}

func (e Ellipse) Center() Point {
	return Pt(e.X+e.Width/2, e.Y+e.Height/2)
}

func (e Ellipse) Radii() Vec2 {
	return Vec(e.Width/2, e.Height/2)
}

// IsEmpty reports whether the ellipse encloses no area.
func (e Ellipse) IsEmpty() bool {
	return !(e.Width > 0 && e.Height > 0)
}

func (e Ellipse) IsInf() bool {
	return math.IsInf(e.X, 0) ||
		math.IsInf(e.Y, 0) ||
		math.IsInf(e.Width, 0) ||
		math.IsInf(e.Height, 0)
}

func (e Ellipse) IsNaN() bool {
	return math.IsNaN(e.X) ||
		math.IsNaN(e.Y) ||
		math.IsNaN(e.Width) ||
		math.IsNaN(e.Height)
}

func (e Ellipse) Area() float64 {
	if e.IsEmpty() {
		return 0
	}
	return math.Pi * e.Width * e.Height / 4
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	e.X += v.X
	e.Y += v.Y
	return e
}

// BoundingBox returns the rectangle the ellipse is inscribed in.
func (e Ellipse) BoundingBox() Rect {
	return Rect{X0: e.X, Y0: e.Y, X1: e.X + e.Width, Y1: e.Y + e.Height}.Abs()
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	if e.IsEmpty() {
		return false
	}
	nx := (pt.X-e.X)/e.Width - 0.5
	ny := (pt.Y-e.Y)/e.Height - 0.5
	return nx*nx+ny*ny < 0.25
}

// ContainsRect reports whether all four corners of r lie inside the ellipse.
// Rectangles with zero area are never contained.
func (e Ellipse) ContainsRect(r Rect) bool {
	r = r.Abs()
	if r.IsEmpty() {
		return false
	}
	return e.Contains(Pt(r.X0, r.Y0)) &&
		e.Contains(Pt(r.X1, r.Y0)) &&
		e.Contains(Pt(r.X1, r.Y1)) &&
		e.Contains(Pt(r.X0, r.Y1))
}

// Intersects reports whether the interior of the ellipse and r have any point
// in common.
func (e Ellipse) Intersects(r Rect) bool {
	r = r.Abs()
	if r.IsEmpty() || e.IsEmpty() {
		return false
	}
	// Find the point of r nearest to the center, in the unit space of the
	// ellipse.
	nx0 := (r.X0-e.X)/e.Width - 0.5
	nx1 := nx0 + r.Width()/e.Width
	ny0 := (r.Y0-e.Y)/e.Height - 0.5
	ny1 := ny0 + r.Height()/e.Height
	nx := clampToZero(nx0, nx1)
	ny := clampToZero(ny0, ny1)
	return nx*nx+ny*ny < 0.25
}

// clampToZero returns the value in [lo, hi] closest to zero.
func clampToZero(lo, hi float64) float64 {
	switch {
	case lo > 0:
		return lo
	case hi < 0:
		return hi
	default:
		return 0
	}
}

// PathIterator implements Shape. The boundary consists of four cubic Béziers,
// starting at the rightmost point and proceeding towards positive y.
func (e Ellipse) PathIterator(t Transformer) PathIterator {
	it := &ellipseIterator{e: e, t: t}
	if e.Width < 0 || e.Height < 0 {
		it.index = 6
	}
	return it
}

// ellipseCtrl is the distance of the control points from the ends of a quarter
// arc, relative to the diameter, such that the curve meets the circle at the
// arc's midpoint.
var ellipseCtrl = 2.0 / 3.0 * (math.Sqrt2 - 1)

// ellipseQuadrants holds the points of the four quarter arcs, in the unit
// square the ellipse is inscribed in.
var ellipseQuadrants = [4][6]float64{
	{1, 0.5 + ellipseCtrl, 0.5 + ellipseCtrl, 1, 0.5, 1},
	{0.5 - ellipseCtrl, 1, 0, 0.5 + ellipseCtrl, 0, 0.5},
	{0, 0.5 - ellipseCtrl, 0.5 - ellipseCtrl, 0, 0.5, 0},
	{0.5 + ellipseCtrl, 0, 1, 0.5 - ellipseCtrl, 1, 0.5},
}

type ellipseIterator struct {
	e     Ellipse
	t     Transformer
	index int
}

func (it *ellipseIterator) WindingRule() WindingRule { return NonZero }
func (it *ellipseIterator) Done() bool               { return it.index > 5 }

func (it *ellipseIterator) Next() {
	if !it.Done() {
		it.index++
	}
}

func (it *ellipseIterator) Segment(coords []float64) SegmentType {
	e := it.e
	switch it.index {
	case 0:
		q := &ellipseQuadrants[3]
		coords[0] = e.X + q[4]*e.Width
		coords[1] = e.Y + q[5]*e.Height
		transformCoords(it.t, coords, 1)
		return SegMoveTo
	case 1, 2, 3, 4:
		q := &ellipseQuadrants[it.index-1]
		for i := 0; i < 6; i += 2 {
			coords[i] = e.X + q[i]*e.Width
			coords[i+1] = e.Y + q[i+1]*e.Height
		}
		transformCoords(it.t, coords, 3)
		return SegCubicTo
	case 5:
		return SegClose
	default:
		iteratorDone("ellipse")
		panic("unreachable")
	}
}
