package euklid

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Differences of points are [Vec2]
// displacements.
type Point struct{ X, Y float64 }

// Vec2 is a displacement in the plane.
type Vec2 struct{ X, Y float64 }

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{x, y} }

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{x, y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }
func (v Vec2) String() string   { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point { return Point{pt.X + v.X, pt.Y + v.Y} }

// Transform maps pt through aff.
func (pt Point) Transform(aff Affine) Point {
	x, y := aff.apply(pt.X, pt.Y)
	return Point{x, y}
}

// Sub returns the displacement from o to pt. Use [Point.Translate] with a
// negated vector to move a point backwards.
func (pt Point) Sub(o Point) Vec2 { return Vec2{pt.X - o.X, pt.Y - o.Y} }

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point { return pt.Translate(o.Sub(pt).Mul(t)) }

// Midpoint is Lerp(o, 0.5), computed without the subtraction.
func (pt Point) Midpoint(o Point) Point { return Point{(pt.X + o.X) / 2, (pt.Y + o.Y) / 2} }

func (pt Point) Distance(o Point) float64        { return pt.Sub(o).Hypot() }
func (pt Point) DistanceSquared(o Point) float64 { return pt.Sub(o).Hypot2() }

// EpsilonEquals reports whether both coordinates of pt and o differ by at
// most epsilon.
func (pt Point) EpsilonEquals(o Point, epsilon float64) bool {
	return pt.Sub(o).IsEpsilonZero(epsilon)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool { return Vec2(pt).IsInf() }

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool { return Vec2(pt).IsNaN() }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Negate() Vec2       { return Vec2{-v.X, -v.Y} }

// Perp returns v rotated by a quarter turn, from +x toward +y.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o. It is
// positive when o lies a counter-clockwise turn (toward +y) from v.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Lerp linearly interpolates between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Mul(t)) }

// VecFromAngle returns the unit vector at angle th, in radians. An angle of
// 0 points along +x, π/2 along +y.
func VecFromAngle(th float64) Vec2 {
	s, c := math.Sincos(th)
	return Vec2{c, s}
}

// VecFromPolar returns the vector of length r at angle th.
func VecFromPolar(r, th float64) Vec2 { return VecFromAngle(th).Mul(r) }

func (v Vec2) IsEpsilonZero(epsilon float64) bool {
	return math.Abs(v.X) <= epsilon && math.Abs(v.Y) <= epsilon
}

// EpsilonEquals reports whether the components of v and o differ by at most
// epsilon.
func (v Vec2) EpsilonEquals(o Vec2, epsilon float64) bool {
	return v.Sub(o).IsEpsilonZero(epsilon)
}

func (v Vec2) IsInf() bool { return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) }
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
