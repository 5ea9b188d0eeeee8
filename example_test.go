package euklid_test

import (
	"fmt"

	"honnef.co/go/euklid"
)

func ExampleFlatteningIterator() {
	q := euklid.QuadBez{P0: euklid.Pt(0, 0), P1: euklid.Pt(1, 1), P2: euklid.Pt(2, 0)}
	it, err := euklid.NewFlatteningIterator(q.PathIterator(nil), euklid.FlattenOptions{
		Flatness: 0.1,
		Limit:    16,
	})
	if err != nil {
		panic(err)
	}

	// Draw the approximation as an SVG path.
	fmt.Println(euklid.SVG(euklid.Elements(it), euklid.SVGOptions{}))

	// Output:
	// M0,0 L0.5,0.375 L1,0.5 L1.5,0.375 L2,0
}

func ExampleContains() {
	// A square with a square hole, using the non-zero winding rule. The hole
	// is wound in the opposite direction.
	p := euklid.NewPath(
		euklid.MoveTo(euklid.Pt(0, 0)),
		euklid.LineTo(euklid.Pt(4, 0)),
		euklid.LineTo(euklid.Pt(4, 4)),
		euklid.LineTo(euklid.Pt(0, 4)),
		euklid.ClosePath(),
		euklid.MoveTo(euklid.Pt(1, 1)),
		euklid.LineTo(euklid.Pt(1, 3)),
		euklid.LineTo(euklid.Pt(3, 3)),
		euklid.LineTo(euklid.Pt(3, 1)),
		euklid.ClosePath(),
	)
	fmt.Println(euklid.Contains(p, euklid.Pt(0.5, 2)))
	fmt.Println(euklid.Contains(p, euklid.Pt(2, 2)))
	fmt.Println(euklid.ContainsRect(p, euklid.Rect{X0: 0.25, Y0: 0.25, X1: 0.75, Y1: 3.75}))
	fmt.Println(euklid.Intersects(p, euklid.Rect{X0: 1.5, Y0: 1.5, X1: 2.5, Y1: 2.5}))

	// Output:
	// true
	// false
	// true
	// false
}

func ExampleRectCrossings() {
	c := euklid.Circle{Center: euklid.Pt(0, 0), Radius: 10}
	for _, r := range []euklid.Rect{
		{X0: -1, Y0: -1, X1: 1, Y1: 1},
		{X0: 9, Y0: -1, X1: 11, Y1: 1},
		{X0: 20, Y0: 20, X1: 21, Y1: 21},
	} {
		rc := euklid.RectCrossings(c.PathIterator(nil), r)
		fmt.Println(rc, rc.Containment(euklid.NonZero))
	}

	// Output:
	// RectCrossing(1) Inside
	// RectCrossing(boundary) Boundary
	// RectCrossing(0) Outside
}
