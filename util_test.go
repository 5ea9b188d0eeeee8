package euklid

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// collect drains it into a slice of path elements.
func collect(it PathIterator) []PathElement {
	return slices.Collect(Elements(it))
}

// unitSquare returns the path of the square from (0, 0) to (1, 1).
func unitSquare() *Path {
	return NewPath(
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		LineTo(Pt(1, 1)),
		LineTo(Pt(0, 1)),
		ClosePath(),
	)
}

// assertExhausted checks that it is done and that asking it for another
// segment panics.
func assertExhausted(t *testing.T, it PathIterator) {
	t.Helper()
	if !it.Done() {
		t.Fatal("iterator isn't done")
	}
	defer func() {
		t.Helper()
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrIteratorDone) {
			t.Errorf("got panic value %v, want ErrIteratorDone", err)
		}
	}()
	var coords [6]float64
	it.Segment(coords[:])
}

// signedArea returns the area enclosed by the flattened boundary of it. It is
// positive for boundaries that turn towards positive y.
func signedArea(t *testing.T, it PathIterator) float64 {
	t.Helper()
	fit, err := NewFlatteningIterator(it, FlattenOptions{Flatness: 1e-6, Limit: 32})
	if err != nil {
		t.Fatal(err)
	}
	var (
		area   float64
		start  Point
		cur    Point
		coords [6]float64
	)
	for ; !fit.Done(); fit.Next() {
		var next Point
		switch fit.Segment(coords[:]) {
		case SegMoveTo:
			area += Vec2(cur).Cross(Vec2(start))
			start = Pt(coords[0], coords[1])
			cur = start
			continue
		case SegLineTo:
			next = Pt(coords[0], coords[1])
		case SegClose:
			next = start
		}
		area += Vec2(cur).Cross(Vec2(next))
		cur = next
	}
	area += Vec2(cur).Cross(Vec2(start))
	return area / 2
}
