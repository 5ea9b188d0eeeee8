package euklid

import (
	"math"
	"unsafe"

	"golang.org/x/image/math/f64"
)

// Transformer maps coordinate pairs in bulk. Path iterators accept one and
// apply it to every coordinate they produce.
//
// TransformCoords reads n (x, y) pairs from src starting at srcOff and writes
// the mapped pairs to dst starting at dstOff. src and dst may alias, with
// overlapping ranges; the result must be as if they didn't.
type Transformer interface {
	TransformCoords(src []float64, srcOff int, dst []float64, dstOff int, n int)
}

// Affine is an affine transform with the coefficients of the augmented matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so that a point (x, y) maps to (N0·x + N2·y + N4, N1·x + N3·y + N5). Products
// compose right to left: a.Mul(b) applies b first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

var _ Transformer = Affine{}

// Identity maps every point to itself.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors the y axis, converting between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale scales x and y independently.
func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

// Translate moves by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Skew shears by x horizontally and by y vertically.
func Skew(x, y float64) Affine { return Affine{1, y, x, 1, 0, 0} }

// Rotate turns by th radians, carrying +x toward +y. In a y-down space this
// is clockwise.
func Rotate(th float64) Affine {
	s, c := math.Sincos(th)
	return Affine{c, s, -s, c, 0, 0}
}

// RotateAbout turns by th radians around center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// NewAffine builds a transform from coefficients in field order.
func NewAffine(n [6]float64) Affine { return Affine{n[0], n[1], n[2], n[3], n[4], n[5]} }

// Aff3 returns the transform in the row-major layout of golang.org/x/image.
func (aff Affine) Aff3() f64.Aff3 {
	return f64.Aff3{aff.N0, aff.N2, aff.N4, aff.N1, aff.N3, aff.N5}
}

// NewAffineFromAff3 is the inverse of [Affine.Aff3].
func NewAffineFromAff3(m f64.Aff3) Affine {
	return Affine{m[0], m[3], m[1], m[4], m[2], m[5]}
}

func (aff Affine) apply(x, y float64) (float64, float64) {
	return aff.N0*x + aff.N2*y + aff.N4, aff.N1*x + aff.N3*y + aff.N5
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	e, f := aff.apply(o.N4, o.N5)
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		e, f,
	}
}

// ThenRotate applies aff, then [Rotate](th).
func (aff Affine) ThenRotate(th float64) Affine { return Rotate(th).Mul(aff) }

// ThenScale applies aff, then [Scale](x, y).
func (aff Affine) ThenScale(x, y float64) Affine { return Scale(x, y).Mul(aff) }

// ThenTranslate applies aff, then [Translate](v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 { return aff.N0*aff.N3 - aff.N1*aff.N2 }

// Invert returns the inverse transform. A singular transform yields
// non-finite coefficients.
func (aff Affine) Invert() Affine {
	k := 1 / aff.Determinant()
	return Affine{
		k * aff.N3,
		-k * aff.N1,
		-k * aff.N2,
		k * aff.N0,
		k * (aff.N2*aff.N5 - aff.N3*aff.N4),
		k * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// TransformRectBoundingBox returns the smallest axis-aligned rectangle that
// contains r mapped through aff. The result is normalized.
func (aff Affine) TransformRectBoundingBox(r Rect) Rect {
	out := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, x := range [2]float64{r.X0, r.X1} {
		for _, y := range [2]float64{r.Y0, r.Y1} {
			tx, ty := aff.apply(x, y)
			out.X0, out.X1 = min(out.X0, tx), max(out.X1, tx)
			out.Y0, out.Y1 = min(out.Y0, ty), max(out.Y1, ty)
		}
	}
	return out
}

func (aff Affine) TransformCoords(src []float64, srcOff int, dst []float64, dstOff int, n int) {
	if n <= 0 {
		return
	}
	step := 2
	if writesAhead(src, srcOff, dst, dstOff) {
		// Walk backwards so that a destination range overlapping the end of
		// the source range doesn't overwrite pairs before they are read.
		srcOff += 2 * (n - 1)
		dstOff += 2 * (n - 1)
		step = -2
	}
	for range n {
		dst[dstOff], dst[dstOff+1] = aff.apply(src[srcOff], src[srcOff+1])
		srcOff += step
		dstOff += step
	}
}

// writesAhead reports whether dst[dstOff] lies at a higher address than
// src[srcOff]. Both elements must exist.
func writesAhead(src []float64, srcOff int, dst []float64, dstOff int) bool {
	return uintptr(unsafe.Pointer(&dst[dstOff])) > uintptr(unsafe.Pointer(&src[srcOff]))
}
