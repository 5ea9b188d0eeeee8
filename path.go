package euklid

import (
	"fmt"
	"math"
	"slices"
)

// PathElement is the value form of a single path segment.
//
// The meaning of the points depends on Kind: [SegMoveTo] and [SegLineTo] use
// P0, [SegQuadTo] uses P0 as the control point and P1 as the end point,
// [SegCubicTo] uses P0 and P1 as control points and P2 as the end point.
// [SegClose] uses none.
type PathElement struct {
	Kind SegmentType
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case SegMoveTo, SegLineTo:
		return fmt.Sprintf("%s%s", el.Kind, el.P0)
	case SegQuadTo:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.P0, el.P1)
	case SegCubicTo:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	case SegClose:
		return "Close"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case SegMoveTo:
		return MoveTo(el.P0.Transform(aff))
	case SegLineTo:
		return LineTo(el.P0.Transform(aff))
	case SegQuadTo:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case SegCubicTo:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case SegClose:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [SegClose].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case SegMoveTo, SegLineTo:
		return el.P0, true
	case SegQuadTo:
		return el.P1, true
	case SegCubicTo:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

// coords writes all three points of the element to coords.
func (el PathElement) coords(coords []float64) {
	coords[0], coords[1] = el.P0.X, el.P0.Y
	coords[2], coords[3] = el.P1.X, el.P1.Y
	coords[4], coords[5] = el.P2.X, el.P2.Y
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: SegMoveTo, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: SegLineTo, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: SegQuadTo, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: SegCubicTo, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: SegClose}
}

// Path is a general shape built from path elements.
//
// Conceptually, a Path contains zero or more subpaths. Each subpath should
// begin with a MoveTo, then have zero or more LineTo, QuadTo and CubicTo
// elements, and optionally end with a Close.
type Path struct {
	Elements []PathElement
	Rule     WindingRule
}

var _ Shape = (*Path)(nil)

// NewPath returns a path consisting of the given elements, using the
// non-zero winding rule.
func NewPath(els ...PathElement) *Path {
	return &Path{Elements: els}
}

// CollectPath drains an iterator into a new path, preserving its winding rule.
func CollectPath(it PathIterator) *Path {
	rule := it.WindingRule()
	return &Path{Elements: slices.Collect(Elements(it)), Rule: rule}
}

// Push adds an element to the path.
func (p *Path) Push(el PathElement) { p.Elements = append(p.Elements, el) }

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *Path) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Len returns the number of elements in the path.
func (p *Path) Len() int { return len(p.Elements) }

// Transform returns a new path with an affine transformation applied to every
// element.
func (p *Path) Transform(aff Affine) *Path {
	out := &Path{Elements: make([]PathElement, len(p.Elements)), Rule: p.Rule}
	for i, el := range p.Elements {
		out.Elements[i] = el.Transform(aff)
	}
	return out
}

func (p *Path) IsInf() bool {
	for _, el := range p.Elements {
		if el.IsInf() {
			return true
		}
	}
	return false
}

func (p *Path) IsNaN() bool {
	for _, el := range p.Elements {
		if el.IsNaN() {
			return true
		}
	}
	return false
}

// BoundingBox returns a rectangle that conservatively encloses the path, using
// control points directly rather than computing tight bounds for curves.
func (p *Path) BoundingBox() Rect {
	if len(p.Elements) == 0 {
		return Rect{}
	}
	bbox := Rect{
		X0: math.Inf(1),
		Y0: math.Inf(1),
		X1: math.Inf(-1),
		Y1: math.Inf(-1),
	}
	add := func(pt Point) {
		bbox = bbox.UnionPoint(pt)
	}
	for _, el := range p.Elements {
		switch el.Kind {
		case SegMoveTo, SegLineTo:
			add(el.P0)
		case SegQuadTo:
			add(el.P0)
			add(el.P1)
		case SegCubicTo:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		}
	}
	if bbox.X0 > bbox.X1 {
		return Rect{}
	}
	return bbox
}

// PathIterator implements Shape. The iterator works on the elements the path
// had at the time of the call.
func (p *Path) PathIterator(t Transformer) PathIterator {
	return &pathIterator{els: p.Elements, rule: p.Rule, t: t}
}

// Contains reports whether pt lies inside the path, according to its winding
// rule.
func (p *Path) Contains(pt Point) bool {
	return Contains(p, pt)
}

// ContainsRect reports whether r lies entirely inside the path.
func (p *Path) ContainsRect(r Rect) bool {
	return ContainsRect(p, r)
}

// Intersects reports whether the interior of the path and r have any point in
// common.
func (p *Path) Intersects(r Rect) bool {
	return Intersects(p, r)
}

type pathIterator struct {
	els   []PathElement
	rule  WindingRule
	t     Transformer
	index int
}

func (it *pathIterator) WindingRule() WindingRule { return it.rule }
func (it *pathIterator) Done() bool               { return it.index >= len(it.els) }

func (it *pathIterator) Next() {
	if it.index < len(it.els) {
		it.index++
	}
}

func (it *pathIterator) Segment(coords []float64) SegmentType {
	if it.Done() {
		iteratorDone("path")
	}
	el := it.els[it.index]
	el.coords(coords)
	transformCoords(it.t, coords, el.Kind.Points())
	return el.Kind
}
