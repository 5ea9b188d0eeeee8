package euklid

import (
	"math"
	"testing"
)

func TestRectAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-8
	}

	r := Rect{0.0, 0.0, 10.0, 10.0}
	center := r.Center()
	if a := r.Area(); !approxEqual(a, 100) {
		t.Errorf("got area %v, want %v", a, 100.0)
	}
	if w := r.Winding(center); w != 1 {
		t.Errorf("got winding %v, want %v", w, 1)
	}

	if ra, pa := r.Area(), signedArea(t, r.PathIterator(nil)); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := r.Winding(center), Crossings(r.PathIterator(nil), center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}

	rFlip := Rect{0.0, 10.0, 10.0, 0.0}
	if a := rFlip.Area(); !approxEqual(a, -100) {
		t.Errorf("got area %v, want %v", a, -100.0)
	}

	if w := rFlip.Winding(Pt(5, 5)); w != -1 {
		t.Errorf("got winding %v, want %v", w, -1)
	}

	if ra, pa := rFlip.Area(), signedArea(t, rFlip.PathIterator(nil)); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := rFlip.Winding(center), Crossings(rFlip.PathIterator(nil), center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}
}

func TestRectIterator(t *testing.T) {
	r := Rect{1, 2, 3, 5}
	want := []PathElement{
		MoveTo(Pt(1, 2)),
		LineTo(Pt(3, 2)),
		LineTo(Pt(3, 5)),
		LineTo(Pt(1, 5)),
		ClosePath(),
	}
	it := r.PathIterator(nil)
	diff(t, want, collect(it))
	assertExhausted(t, it)

	want = []PathElement{
		MoveTo(Pt(2, 4)),
		LineTo(Pt(6, 4)),
		LineTo(Pt(6, 10)),
		LineTo(Pt(2, 10)),
		ClosePath(),
	}
	diff(t, want, collect(r.PathIterator(Scale(2, 2))))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	points := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(0, 5), true},
		{Pt(10, 5), false},
		{Pt(5, 10), false},
		{Pt(-1, 5), false},
	}
	for _, tt := range points {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.pt, got, tt.want)
		}
		if got := Contains(r, tt.pt); got != tt.want {
			t.Errorf("%v: generic test got %t, want %t", tt.pt, got, tt.want)
		}
	}

	rects := []struct {
		o                    Rect
		contains, intersects bool
	}{
		{Rect{2, 2, 8, 8}, true, true},
		{Rect{8, 8, 2, 2}, true, true},
		{Rect{0, 0, 10, 10}, true, true},
		{Rect{5, 5, 15, 15}, false, true},
		{Rect{10, 0, 20, 10}, false, false},
		{Rect{20, 20, 30, 30}, false, false},
		{Rect{-5, -5, 15, 15}, false, true},
		{Rect{2, 2, 2, 8}, false, false},
	}
	for _, tt := range rects {
		if got := r.ContainsRect(tt.o); got != tt.contains {
			t.Errorf("%v: got ContainsRect = %t, want %t", tt.o, got, tt.contains)
		}
		if got := r.Intersects(tt.o); got != tt.intersects {
			t.Errorf("%v: got Intersects = %t, want %t", tt.o, got, tt.intersects)
		}
	}

	empty := Rect{0, 0, 0, 10}
	if empty.ContainsRect(Rect{0, 1, 0, 2}) || empty.Intersects(r) {
		t.Error("empty rectangle contains or intersects a rectangle")
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{0, 0, 1, 1}, false},
		{Rect{0, 0, 0, 1}, true},
		{Rect{0, 0, 1, 0}, true},
		{Rect{1, 1, 0, 0}, true},
		{Rect{0, 0, math.NaN(), 1}, true},
	}
	for _, tt := range tests {
		if got := tt.r.IsEmpty(); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.r, got, tt.want)
		}
	}
	if (Rect{1, 1, 0, 0}).Abs().IsEmpty() {
		t.Error("normalized rectangle is empty")
	}
}

func TestRectOperations(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	diff(t, Rect{1, 2, 4, 6}, r)
	diff(t, r, NewRectFromPoints(Pt(4, 2), Pt(1, 6)))
	diff(t, Rect{-1, 1, 3, 3}, NewRectFromCenter(Pt(1, 2), 4, 2))
	diff(t, Pt(2.5, 4), r.Center())
	diff(t, Pt(1, 2), r.Origin())
	diff(t, Rect{0, 0, 4, 6}, r.Union(Rect{0, 0, 1, 1}))
	diff(t, Rect{1, 2, 5, 6}, r.UnionPoint(Pt(5, 3)))
	diff(t, Rect{2, 3, 4, 6}, r.Intersect(Rect{2, 3, 10, 10}))
	diff(t, Rect{20, 20, 20, 20}, r.Intersect(Rect{20, 20, 30, 30}))
	diff(t, Rect{0, 0, 5, 8}, r.Inflate(1, 2))
	diff(t, Rect{2, 3, 5, 7}, r.Translate(Vec(1, 1)))

	flipped := Rect{4, 6, 1, 2}
	diff(t, [4]float64{1, 4, 2, 6}, [4]float64{flipped.MinX(), flipped.MaxX(), flipped.MinY(), flipped.MaxY()})
	diff(t, r, flipped.BoundingBox())
}
