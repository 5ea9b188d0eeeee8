package euklid

import (
	"fmt"
	"iter"
	"math"
)

// Curves are flattened to within crossingTolerance times the larger side of
// the boundary's bounding box before crossings are counted. crossingLimit
// leaves room for the subdivisions a quarter ellipse needs to get there.
const (
	crossingTolerance = 0x1p-18
	crossingLimit     = 1 << 14
)

// crossingFlatness returns the flattening tolerance for a boundary enclosed by
// bbox. It stays positive so that curves collapsed to a point aren't split.
func crossingFlatness(bbox Rect) float64 {
	bbox = bbox.Abs()
	f := max(bbox.Width(), bbox.Height()) * crossingTolerance
	if math.IsNaN(f) {
		return math.Inf(1)
	}
	return max(f, 0x1p-500)
}

// Containment is the three-way result of testing a rectangle against a shape.
type Containment int

const (
	// The rectangle lies entirely outside the shape.
	Outside Containment = iota
	// The rectangle lies entirely inside the shape.
	Inside
	// The shape's boundary touches the rectangle, so the rectangle cannot be
	// classified as a whole.
	Boundary
)

func (c Containment) String() string {
	switch c {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case Boundary:
		return "Boundary"
	default:
		return fmt.Sprintf("Containment(%d)", int(c))
	}
}

// RectCrossing is the result of [RectCrossings]. It holds either a signed
// crossing count that is valid for every point of the rectangle, or records
// that the rectangle touches the shape's boundary.
//
// The zero value is a crossing count of zero.
type RectCrossing struct {
	n        int
	boundary bool
}

// Count returns the crossing count. ok is false if the rectangle touches the
// boundary, in which case there is no single count.
func (rc RectCrossing) Count() (n int, ok bool) {
	if rc.boundary {
		return 0, false
	}
	return rc.n, true
}

// IsBoundary reports whether the rectangle touches the boundary.
func (rc RectCrossing) IsBoundary() bool { return rc.boundary }

// Add combines the crossings of two parts of the same shape. If either part
// touches the rectangle, so does the result.
func (rc RectCrossing) Add(o RectCrossing) RectCrossing {
	if rc.boundary || o.boundary {
		return RectCrossing{boundary: true}
	}
	return RectCrossing{n: rc.n + o.n}
}

// Containment classifies the rectangle under the given winding rule.
func (rc RectCrossing) Containment(rule WindingRule) Containment {
	switch {
	case rc.boundary:
		return Boundary
	case rule.Inside(rc.n):
		return Inside
	default:
		return Outside
	}
}

func (rc RectCrossing) String() string {
	if rc.boundary {
		return "RectCrossing(boundary)"
	}
	return fmt.Sprintf("RectCrossing(%d)", rc.n)
}

// Crossings returns the signed number of times the boundary described by it
// crosses the ray from pt towards positive x. Edges going towards positive y
// count +1, the others -1. Curves are flattened and open subpaths are closed
// implicitly.
//
// Each edge includes its lower y coordinate and excludes its upper one, and
// edges passing through pt itself don't count. As a result, a point on the
// edge of an axis-aligned rectangle is inside if it lies on the edge with the
// smaller x or the smaller y coordinate, and outside otherwise. Tiling the
// plane with rectangles thus puts every point inside exactly one of them.
//
// Curves are flattened with a tolerance relative to the size of the
// boundary, so the result doesn't depend on the scale of the coordinates.
// The result is undefined for non-finite coordinates.
func Crossings(it PathIterator, pt Point) int {
	p := CollectPath(it)
	return crossings(p.PathIterator(nil), crossingFlatness(p.BoundingBox()), pt)
}

func crossings(it PathIterator, flatness float64, pt Point) int {
	var n int
	for e := range edges(it, flatness) {
		n += e.crossing(pt.X, pt.Y)
	}
	return n
}

// RectCrossings computes the crossings of the boundary described by it with
// respect to all points of r at once. If any part of the boundary touches the
// closed rectangle the result is the boundary sentinel and iteration stops
// early.
//
// r may have negative width or height. Curves are flattened as in
// [Crossings].
func RectCrossings(it PathIterator, r Rect) RectCrossing {
	p := CollectPath(it)
	return rectCrossings(p.PathIterator(nil), crossingFlatness(p.BoundingBox()), r)
}

func rectCrossings(it PathIterator, flatness float64, r Rect) RectCrossing {
	r = r.Abs()
	var rc RectCrossing
	for e := range edges(it, flatness) {
		if _, _, ok := e.clip(r); ok {
			return RectCrossing{boundary: true}
		}
		// Without contact, all points of r have the same winding number.
		rc.n += e.crossing(r.X0, r.Y0)
	}
	return rc
}

// Contains reports whether pt lies inside s, according to the winding rule of
// its path iterator. See [Crossings] for how points on the boundary are
// treated.
func Contains(s Shape, pt Point) bool {
	return contains(s, windingRule(s), pt)
}

// ContainsRect reports whether r lies entirely inside s. Rectangles with zero
// area are never contained.
func ContainsRect(s Shape, r Rect) bool {
	return containsRect(s, windingRule(s), r)
}

// Intersects reports whether the interior of s and r have any point in common.
// A rectangle that touches the boundary of s counts as intersecting. Rectangles
// with zero area never intersect.
func Intersects(s Shape, r Rect) bool {
	return intersects(s, windingRule(s), r)
}

func windingRule(s Shape) WindingRule {
	return s.PathIterator(nil).WindingRule()
}

func contains(s Shape, rule WindingRule, pt Point) bool {
	bbox := s.BoundingBox()
	if !bbox.Contains(pt) {
		return false
	}
	return rule.Inside(crossings(s.PathIterator(nil), crossingFlatness(bbox), pt))
}

func containsRect(s Shape, rule WindingRule, r Rect) bool {
	r = r.Abs()
	if r.IsEmpty() {
		return false
	}
	flatness := crossingFlatness(s.BoundingBox())
	switch rectCrossings(s.PathIterator(nil), flatness, r).Containment(rule) {
	case Inside:
		return true
	case Outside:
		return false
	}

	// The boundary touches r. r is still contained if no part of the
	// boundary passes through its interior and its center is inside.
	for e := range edges(s.PathIterator(nil), flatness) {
		t0, t1, ok := e.clip(r)
		if !ok || t0 >= t1 {
			continue
		}
		t := (t0 + t1) / 2
		x := e.x0 + t*(e.x1-e.x0)
		y := e.y0 + t*(e.y1-e.y0)
		if x > r.X0 && x < r.X1 && y > r.Y0 && y < r.Y1 {
			return false
		}
	}
	return rule.Inside(crossings(s.PathIterator(nil), flatness, r.Center()))
}

func intersects(s Shape, rule WindingRule, r Rect) bool {
	r = r.Abs()
	if r.IsEmpty() {
		return false
	}
	flatness := crossingFlatness(s.BoundingBox())
	return rectCrossings(s.PathIterator(nil), flatness, r).Containment(rule) != Outside
}

// edge is a directed line segment of a flattened boundary.
type edge struct {
	x0, y0, x1, y1 float64
}

// edges flattens it and yields its line segments, including the implicit
// segments closing open subpaths. Segments of zero length are skipped.
func edges(it PathIterator, flatness float64) iter.Seq[edge] {
	return func(yield func(edge) bool) {
		fit, err := NewFlatteningIterator(it, FlattenOptions{
			Flatness: flatness,
			Limit:    crossingLimit,
		})
		if err != nil {
			panic(err)
		}
		var (
			coords [6]float64
			// Start of the current subpath, and current point.
			mx, my float64
			cx, cy float64
		)
		emit := func(x, y float64) bool {
			e := edge{cx, cy, x, y}
			cx, cy = x, y
			if e.x0 == e.x1 && e.y0 == e.y1 {
				return true
			}
			return yield(e)
		}
		for ; !fit.Done(); fit.Next() {
			switch fit.Segment(coords[:]) {
			case SegMoveTo:
				if !emit(mx, my) {
					return
				}
				mx, my = coords[0], coords[1]
				cx, cy = mx, my
			case SegLineTo:
				if !emit(coords[0], coords[1]) {
					return
				}
			case SegClose:
				if !emit(mx, my) {
					return
				}
			}
		}
		emit(mx, my)
	}
}

// crossing returns the contribution of e to the crossing count of the ray from
// (px, py) towards positive x.
func (e edge) crossing(px, py float64) int {
	// The sign of the cross product tells on which side of the edge's line
	// the point lies, without dividing.
	cross := (e.x1-e.x0)*(py-e.y0) - (px-e.x0)*(e.y1-e.y0)
	switch {
	case e.y0 <= py && py < e.y1:
		if cross > 0 {
			return 1
		}
	case e.y1 <= py && py < e.y0:
		if cross < 0 {
			return -1
		}
	}
	return 0
}

// clip returns the parameter range [t0, t1] of the part of e that lies within
// the closed rectangle r, or false if e and r don't touch. r must have
// non-negative width and height.
func (e edge) clip(r Rect) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	dx := e.x1 - e.x0
	dy := e.y1 - e.y0
	// clip restricts the range to values of t satisfying p·t ≤ q.
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}
	ok = clip(-dx, e.x0-r.X0) &&
		clip(dx, r.X1-e.x0) &&
		clip(-dy, e.y0-r.Y0) &&
		clip(dy, r.Y1-e.y0)
	return t0, t1, ok
}
