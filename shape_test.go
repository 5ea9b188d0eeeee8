package euklid

import (
	"math"
	"testing"
)

func TestPointSegDist(t *testing.T) {
	tests := []struct {
		px, py float64
		want   float64
	}{
		{5, 3, 9},
		{-3, 4, 25},
		{13, 4, 25},
		{0, 0, 0},
		{7, 0, 0},
	}
	for _, tt := range tests {
		if got := PointSegDistSq(tt.px, tt.py, 0, 0, 10, 0); got != tt.want {
			t.Errorf("(%v, %v): got %v, want %v", tt.px, tt.py, got, tt.want)
		}
		if got := PointSegDist(tt.px, tt.py, 0, 0, 10, 0); got != math.Sqrt(tt.want) {
			t.Errorf("(%v, %v): got %v, want %v", tt.px, tt.py, got, math.Sqrt(tt.want))
		}
	}

	// Degenerate segments measure the distance to their only point.
	if got := PointSegDistSq(3, 4, 0, 0, 0, 0); got != 25 {
		t.Errorf("got %v, want 25", got)
	}
	if got := PointLineDistSq(3, 4, 0, 0, 0, 0); !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
	if got := PointLineDistSq(3, 4, -10, 0, -5, 0); got != 16 {
		t.Errorf("got %v, want 16", got)
	}
}

func TestRelativeCCWSymmetry(t *testing.T) {
	// Swapping the segment's end points mirrors the orientation of points
	// off the line.
	for _, pt := range []Point{Pt(1, 5), Pt(-3, -2), Pt(8, 0.5)} {
		a := RelativeCCW(pt.X, pt.Y, 0, 0, 4, 1)
		b := RelativeCCW(pt.X, pt.Y, 4, 1, 0, 0)
		if a == 0 || a != -b {
			t.Errorf("%v: got %d and %d, want opposite nonzero values", pt, a, b)
		}
	}
}

func TestControlBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(-1, 3), Pt(4, -2), Pt(2, 1)}
	diff(t, Rect{-1, -2, 4, 3}, ControlBox(c))
	diff(t, Rect{0, 0, 3, 4}, ControlBox(Line{Pt(3, 4), Pt(0, 0)}))

	if d := SegmentDistanceSq(c, Pt(1, 0.5)); d != 0 {
		t.Errorf("got distance %v to the chord, want 0", d)
	}
}

func TestShapeBoundingBoxEnclosesBoundary(t *testing.T) {
	shapes := []Shape{
		Circle{Pt(3, -2), 4},
		Ellipse{1, 2, 6, 3},
		Rect{4, 4, 1, 2},
		Line{Pt(0, 0), Pt(-3, 5)},
		QuadBez{Pt(0, 0), Pt(2, 5), Pt(4, 0)},
		CubicBez{Pt(0, 0), Pt(-1, 3), Pt(4, -2), Pt(2, 1)},
		NewPath(MoveTo(Pt(1, 1)), QuadTo(Pt(3, -1), Pt(5, 1)), ClosePath()),
	}
	for _, s := range shapes {
		bbox := s.BoundingBox()
		fit, err := FlattenShape(s, nil, FlattenOptions{Flatness: 0.01, Limit: 32})
		if err != nil {
			t.Fatal(err)
		}
		for el := range Elements(fit) {
			pt, ok := el.EndPoint()
			if !ok {
				continue
			}
			if pt.X < bbox.X0 || pt.X > bbox.X1 || pt.Y < bbox.Y0 || pt.Y > bbox.Y1 {
				t.Errorf("%v: point %v lies outside the bounding box %v", s, pt, bbox)
			}
		}
	}
}
