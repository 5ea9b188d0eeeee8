package euklid

// Rect is a rectangle described by two opposite corners. Most methods expect
// X0 ≤ X1 and Y0 ≤ Y1; use [Rect.Abs] to normalize a rectangle.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ Shape = Rect{}

// NewRect returns the rectangle with the top left corner (x, y), in a y-down
// space, and the given width and height.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + width, Y1: y + height}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns the rectangle of the given size centered on
// center.
func NewRectFromCenter(center Point, width, height float64) Rect {
	w, h := width/2, height/2
	return Rect{center.X - w, center.Y - h, center.X + w, center.Y + h}
}

// Abs returns r with its corners ordered so that X0 ≤ X1 and Y0 ≤ Y1.
func (r Rect) Abs() Rect { return Rect{r.MinX(), r.MinY(), r.MaxX(), r.MaxY()} }

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Origin returns (X0, Y0).
func (r Rect) Origin() Point { return Point{r.X0, r.Y0} }

// Width returns X1 − X0, which is negative for unnormalized rectangles.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0, which is negative for unnormalized rectangles.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Area() float64 { return r.Width() * r.Height() }

func (r Rect) Center() Point { return Point{r.X0, r.Y0}.Midpoint(Point{r.X1, r.Y1}) }

// IsEmpty reports whether r has no positive width or no positive height.
func (r Rect) IsEmpty() bool { return !(r.X1 > r.X0 && r.Y1 > r.Y0) }

// Contains reports whether pt lies in r. The edges at X0 and Y0 belong to
// the rectangle; those at X1 and Y1 don't.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// ContainsRect reports whether o lies entirely inside r. Empty rectangles
// contain nothing and are never contained.
func (r Rect) ContainsRect(o Rect) bool {
	r, o = r.Abs(), o.Abs()
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.Union(r) == r
}

// Intersects reports whether the interiors of r and o overlap. Sharing an
// edge is not enough.
func (r Rect) Intersects(o Rect) bool {
	r, o = r.Abs(), o.Abs()
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !r.Intersect(o).IsEmpty()
}

// Union returns the smallest rectangle enclosing the normalized rectangles r
// and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// UnionPoint grows the normalized rectangle r to include pt. Folding it over
// a series of points, starting from a zero-area rectangle at the first,
// yields their bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return r.Union(Rect{pt.X, pt.Y, pt.X, pt.Y})
}

// Intersect returns the overlap of r and o. Disjoint inputs, or inputs with
// negative size, give a zero-area result; the result is always normalized.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X0, o.X0), max(r.Y0, o.Y0)
	return Rect{x0, y0, max(x0, min(r.X1, o.X1)), max(y0, min(r.Y1, o.Y1))}
}

// Inflate grows r by dx on the left and right and by dy on the top and
// bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}

func (r Rect) IsInf() bool {
	return Point{r.X0, r.Y0}.IsInf() || Point{r.X1, r.Y1}.IsInf()
}

func (r Rect) IsNaN() bool {
	return Point{r.X0, r.Y0}.IsNaN() || Point{r.X1, r.Y1}.IsNaN()
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.X0 + v.X, r.Y0 + v.Y, r.X1 + v.X, r.Y1 + v.Y}
}

func (r Rect) BoundingBox() Rect { return r.Abs() }

// Winding returns the winding number of pt with respect to the rectangle's
// boundary, as produced by its path iterator. It agrees with [Crossings].
func (r Rect) Winding(pt Point) int {
	// Half-open on both axes: a tiling of the plane by rectangles puts each
	// point inside exactly one of them.
	if !r.Abs().Contains(pt) {
		return 0
	}
	if (r.X1 > r.X0) != (r.Y1 > r.Y0) {
		return -1
	}
	return 1
}

// PathIterator implements Shape. The rectangle is described as a polygon,
// starting at (X0, Y0) and visiting (X1, Y0) next.
func (r Rect) PathIterator(t Transformer) PathIterator {
	return &rectIterator{r: r, t: t}
}

type rectIterator struct {
	r     Rect
	t     Transformer
	index int
}

func (it *rectIterator) WindingRule() WindingRule { return NonZero }
func (it *rectIterator) Done() bool               { return it.index > 4 }

func (it *rectIterator) Next() {
	if !it.Done() {
		it.index++
	}
}

func (it *rectIterator) Segment(coords []float64) SegmentType {
	r := it.r
	typ := SegLineTo
	switch it.index {
	case 0:
		coords[0], coords[1] = r.X0, r.Y0
		typ = SegMoveTo
	case 1:
		coords[0], coords[1] = r.X1, r.Y0
	case 2:
		coords[0], coords[1] = r.X1, r.Y1
	case 3:
		coords[0], coords[1] = r.X0, r.Y1
	case 4:
		return SegClose
	default:
		iteratorDone("rectangle")
	}
	transformCoords(it.t, coords, 1)
	return typ
}
