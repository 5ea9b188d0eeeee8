package euklid

import (
	"math"
)

// Circle is a disk given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

var _ Shape = Circle{}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

// ContainsRect reports whether r lies entirely inside the circle.
func (c Circle) ContainsRect(r Rect) bool {
	return c.Ellipse().ContainsRect(r)
}

// Intersects reports whether the interior of the circle and r have any point in
// common.
func (c Circle) Intersects(r Rect) bool {
	return c.Ellipse().Intersects(r)
}

// IntersectsCircle reports whether the interiors of the two circles overlap.
func (c Circle) IntersectsCircle(o Circle) bool {
	d := math.Abs(c.Radius) + math.Abs(o.Radius)
	return c.Center.DistanceSquared(o.Center) < d*d
}

// Ellipse returns the circle as an ellipse. Negative radii are treated like
// positive ones.
func (c Circle) Ellipse() Ellipse {
	return NewEllipse(c.Center, Vec(math.Abs(c.Radius), math.Abs(c.Radius)))
}

// PathIterator implements Shape. It produces the same segments as the
// circle's [Circle.Ellipse].
func (c Circle) PathIterator(t Transformer) PathIterator {
	return c.Ellipse().PathIterator(t)
}

func (c Circle) IsInf() bool { return c.Center.IsInf() || math.IsInf(c.Radius, 0) }
func (c Circle) IsNaN() bool { return c.Center.IsNaN() || math.IsNaN(c.Radius) }

func (c Circle) Translate(v Vec2) Circle { return Circle{c.Center.Translate(v), c.Radius} }

func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return math.Abs(2 * math.Pi * c.Radius) }

// BoundingBox returns the square circumscribing the circle.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return NewRectFromCenter(c.Center, 2*r, 2*r)
}
