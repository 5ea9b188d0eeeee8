package euklid

import (
	"errors"
	"fmt"
	"iter"
)

// SegmentType identifies the kind of segment a [PathIterator] is positioned
// on. The numeric values are stable.
type SegmentType int

const (
	// Move to a point without drawing, starting a new subpath.
	SegMoveTo SegmentType = 0
	// Draw a line from the current point.
	SegLineTo SegmentType = 1
	// Draw a quadratic Bézier from the current point, using one control
	// point.
	SegQuadTo SegmentType = 2
	// Draw a cubic Bézier from the current point, using two control points.
	SegCubicTo SegmentType = 3
	// Close the current subpath.
	SegClose SegmentType = 4
)

func (typ SegmentType) String() string {
	switch typ {
	case SegMoveTo:
		return "MoveTo"
	case SegLineTo:
		return "LineTo"
	case SegQuadTo:
		return "QuadTo"
	case SegCubicTo:
		return "CubicTo"
	case SegClose:
		return "Close"
	default:
		return fmt.Sprintf("SegmentType(%d)", int(typ))
	}
}

// Points returns the number of (x, y) pairs a segment of this type carries.
func (typ SegmentType) Points() int {
	switch typ {
	case SegMoveTo, SegLineTo:
		return 1
	case SegQuadTo:
		return 2
	case SegCubicTo:
		return 3
	default:
		return 0
	}
}

// WindingRule determines how a signed crossing count maps to the inside or
// outside of a shape.
type WindingRule int

const (
	// NonZero treats every point with a nonzero crossing count as inside.
	NonZero WindingRule = iota
	// EvenOdd treats every point with an odd crossing count as inside.
	EvenOdd
)

func (rule WindingRule) String() string {
	switch rule {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(rule))
	}
}

// Inside reports whether a crossing count denotes the inside of a shape under
// this rule.
func (rule WindingRule) Inside(crossings int) bool {
	if rule == EvenOdd {
		return crossings&1 != 0
	}
	return crossings != 0
}

// ErrIteratorDone is the panic value (wrapped) of [PathIterator.Segment] when
// it is called on an exhausted iterator.
var ErrIteratorDone = errors.New("path iterator is done")

// PathIterator describes the boundary of a shape as a sequence of segments.
//
// An iterator only ever moves forward. It is obtained from a shape and owned
// by the caller; to start over, request a new iterator from the shape. Every
// non-empty sequence starts with [SegMoveTo].
//
// Mutating a shape while an iterator over it is in use has undefined results.
type PathIterator interface {
	// WindingRule returns the winding rule of the shape.
	WindingRule() WindingRule

	// Done reports whether the iterator has no more segments.
	Done() bool

	// Next advances to the next segment. It has no effect once the iterator
	// is done.
	Next()

	// Segment writes the coordinates of the current segment to coords and
	// returns the segment's type. coords must have room for at least 6
	// values; see [SegmentType.Points] for how many pairs are written.
	//
	// Segment panics with an error wrapping [ErrIteratorDone] if the
	// iterator is done.
	Segment(coords []float64) SegmentType
}

func iteratorDone(kind string) {
	panic(fmt.Errorf("%s iterator: %w", kind, ErrIteratorDone))
}

// transformCoords applies t to the first n points of coords, if t is non-nil.
func transformCoords(t Transformer, coords []float64, n int) {
	if t != nil && n > 0 {
		t.TransformCoords(coords, 0, coords, 0, n)
	}
}

// Elements drains a path iterator into a sequence of path elements.
func Elements(it PathIterator) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var coords [6]float64
		for ; !it.Done(); it.Next() {
			var el PathElement
			switch it.Segment(coords[:]) {
			case SegMoveTo:
				el = MoveTo(Pt(coords[0], coords[1]))
			case SegLineTo:
				el = LineTo(Pt(coords[0], coords[1]))
			case SegQuadTo:
				el = QuadTo(Pt(coords[0], coords[1]), Pt(coords[2], coords[3]))
			case SegCubicTo:
				el = CubicTo(Pt(coords[0], coords[1]), Pt(coords[2], coords[3]), Pt(coords[4], coords[5]))
			case SegClose:
				el = ClosePath()
			default:
				panic("unreachable")
			}
			if !yield(el) {
				return
			}
		}
	}
}
