package euklid

import (
	"errors"
	"fmt"
)

const (
	defaultFlattenLimit   = 16
	defaultBufferCapacity = 16
	defaultBufferGrowth   = 16
)

var (
	// ErrInvalidConfig is returned for flattening options that cannot be
	// used.
	ErrInvalidConfig = errors.New("invalid flattening configuration")
	// ErrInvalidFlatness is returned for a negative or NaN flatness. It wraps
	// [ErrInvalidConfig].
	ErrInvalidFlatness = fmt.Errorf("%w: flatness must not be negative", ErrInvalidConfig)
	// ErrInvalidLimit is returned for a negative subdivision limit. It wraps
	// [ErrInvalidConfig].
	ErrInvalidLimit = fmt.Errorf("%w: subdivision limit must not be negative", ErrInvalidConfig)
)

// FlattenOptions specifies the settings of a [FlatteningIterator].
type FlattenOptions struct {
	// Flatness is the tolerance of the approximation. A curve is replaced by
	// its chord once all of its control points are closer than Flatness to
	// that chord. It must not be negative.
	Flatness float64

	// Limit is the maximum number of subdivisions per source segment. A value
	// of 0 replaces every curve by a single chord. It must not be negative.
	Limit int

	// InitialCapacity and Growth size the subdivision buffer, in scalars.
	// They only affect allocation behaviour; values ≤ 0 select the defaults
	// of 16.
	InitialCapacity int
	Growth          int
}

// DefaultFlattenOptions is suitable for drawing at a scale of one unit per
// pixel.
var DefaultFlattenOptions = FlattenOptions{
	Flatness:        0.1,
	Limit:           defaultFlattenLimit,
	InitialCapacity: defaultBufferCapacity,
	Growth:          defaultBufferGrowth,
}

// FlatteningIterator wraps another [PathIterator] and replaces its quadratic
// and cubic curves with line segments. It only ever produces [SegMoveTo],
// [SegLineTo] and [SegClose].
//
// Curves are subdivided at their midpoints until they are flat enough or the
// subdivision limit for the current source segment has been used up. Pending
// sub-curves are kept on an explicit stack instead of using recursion, and are
// processed depth-first, from the start of the curve to its end.
type FlatteningIterator struct {
	src       PathIterator
	flatness  float64
	flatness2 float64
	limit     int
	growth    int

	// Whether the current output segment has been computed.
	loaded bool
	// Whether sub-curves of the current source segment remain in buf.
	pending bool
	// Type of the current source segment.
	kind SegmentType

	// buf holds pending sub-curves, growing downwards from its end. The top
	// sub-curve starts at idx. Adjacent sub-curves share their end points, and
	// the last two values are the end point of the source segment.
	buf    []float64
	idx    int
	subdiv int

	// Current point and start of the current subpath.
	px, py float64
	mx, my float64

	coords [6]float64
}

var _ PathIterator = (*FlatteningIterator)(nil)

// Validate returns an error wrapping [ErrInvalidConfig] if opts has a negative
// or NaN flatness, or a negative subdivision limit.
func (opts FlattenOptions) Validate() error {
	if !(opts.Flatness >= 0) {
		return fmt.Errorf("%w, got %g", ErrInvalidFlatness, opts.Flatness)
	}
	if opts.Limit < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, opts.Limit)
	}
	return nil
}

// NewFlatteningIterator returns an iterator that flattens src according to
// opts. It fails if opts doesn't pass [FlattenOptions.Validate].
func NewFlatteningIterator(src PathIterator, opts FlattenOptions) (*FlatteningIterator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	capacity := opts.InitialCapacity
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}
	// There must be room for at least one cubic.
	capacity = max(capacity, 8)
	growth := opts.Growth
	if growth <= 0 {
		growth = defaultBufferGrowth
	}
	return &FlatteningIterator{
		src:       src,
		flatness:  opts.Flatness,
		flatness2: opts.Flatness * opts.Flatness,
		limit:     opts.Limit,
		growth:    growth,
		buf:       make([]float64, capacity),
		idx:       capacity,
	}, nil
}

// Flatness returns the flatness tolerance of the iterator.
func (it *FlatteningIterator) Flatness() float64 { return it.flatness }

// Limit returns the maximum number of subdivisions per source segment.
func (it *FlatteningIterator) Limit() int { return it.limit }

// WindingRule implements PathIterator.
func (it *FlatteningIterator) WindingRule() WindingRule { return it.src.WindingRule() }

// Done implements PathIterator.
func (it *FlatteningIterator) Done() bool { return !it.loaded && it.src.Done() }

// Next implements PathIterator.
func (it *FlatteningIterator) Next() {
	if it.Done() {
		return
	}
	if !it.loaded {
		it.load()
	}
	if it.pending {
		it.step()
		return
	}
	it.loaded = false
	it.src.Next()
}

// Segment implements PathIterator.
func (it *FlatteningIterator) Segment(coords []float64) SegmentType {
	if it.Done() {
		iteratorDone("flattening")
	}
	if !it.loaded {
		it.load()
	}
	switch it.kind {
	case SegClose:
		return SegClose
	case SegMoveTo:
		coords[0], coords[1] = it.px, it.py
		return SegMoveTo
	default:
		coords[0], coords[1] = it.px, it.py
		return SegLineTo
	}
}

// load reads the current segment of the source iterator. For curves, it
// computes the first line segment.
func (it *FlatteningIterator) load() {
	it.kind = it.src.Segment(it.coords[:])
	switch it.kind {
	case SegMoveTo:
		it.px, it.py = it.coords[0], it.coords[1]
		it.mx, it.my = it.px, it.py
	case SegLineTo:
		it.px, it.py = it.coords[0], it.coords[1]
	case SegClose:
		it.px, it.py = it.mx, it.my
	case SegQuadTo, SegCubicTo:
		// The sub-curve consists of the current point followed by the
		// segment's points.
		n := 2*it.kind.Points() + 2
		it.idx = len(it.buf) - n
		it.buf[it.idx] = it.px
		it.buf[it.idx+1] = it.py
		copy(it.buf[it.idx+2:], it.coords[:n-2])
		it.subdiv = 0
		it.step()
	}
	it.loaded = true
}

// step subdivides the top sub-curve until it is flat enough or the
// subdivision limit is reached, then pops it, making its end point the current
// point.
func (it *FlatteningIterator) step() {
	// Distance between the starts of two adjacent sub-curves.
	stride := 2 * it.kind.Points()
	for it.subdiv < it.limit && it.flatnessSq() >= it.flatness2 {
		if it.idx < stride {
			it.grow(stride)
		}
		if it.kind == SegQuadTo {
			subdivideQuad(it.buf, it.idx)
		} else {
			subdivideCubic(it.buf, it.idx)
		}
		it.idx -= stride
		it.subdiv++
	}

	it.idx += stride
	it.px = it.buf[it.idx]
	it.py = it.buf[it.idx+1]
	it.pending = it.idx != len(it.buf)-2
	if !it.pending {
		it.idx = len(it.buf)
	}
}

func (it *FlatteningIterator) flatnessSq() float64 {
	b := it.buf[it.idx:]
	if it.kind == SegQuadTo {
		return PointSegDistSq(b[2], b[3], b[0], b[1], b[4], b[5])
	}
	return max(
		PointSegDistSq(b[2], b[3], b[0], b[1], b[6], b[7]),
		PointSegDistSq(b[4], b[5], b[0], b[1], b[6], b[7]),
	)
}

// grow makes room for at least need more values below the top sub-curve,
// preserving the order of all pending sub-curves.
func (it *FlatteningIterator) grow(need int) {
	growth := it.growth
	for it.idx+growth < need {
		growth += it.growth
	}
	buf := make([]float64, len(it.buf)+growth)
	copy(buf[it.idx+growth:], it.buf[it.idx:])
	it.buf = buf
	it.idx += growth
	Logger().Debug("grew flattening buffer", "size", len(buf), "subdivisions", it.subdiv)
}

// subdivideQuad splits the quadratic Bézier stored at buf[off:off+6] at t=0.5.
// The first half is written to buf[off-4:off+2], the second half to
// buf[off:off+6].
func subdivideQuad(buf []float64, off int) {
	x0, y0 := buf[off], buf[off+1]
	cx, cy := buf[off+2], buf[off+3]
	x1, y1 := buf[off+4], buf[off+5]

	lcx, lcy := (x0+cx)/2, (y0+cy)/2
	rcx, rcy := (cx+x1)/2, (cy+y1)/2
	mx, my := (lcx+rcx)/2, (lcy+rcy)/2

	l := buf[off-4:]
	l[0], l[1] = x0, y0
	l[2], l[3] = lcx, lcy
	l[4], l[5] = mx, my
	r := buf[off:]
	r[2], r[3] = rcx, rcy
	r[4], r[5] = x1, y1
}

// subdivideCubic splits the cubic Bézier stored at buf[off:off+8] at t=0.5.
// The first half is written to buf[off-6:off+2], the second half to
// buf[off:off+8].
func subdivideCubic(buf []float64, off int) {
	x0, y0 := buf[off], buf[off+1]
	c1x, c1y := buf[off+2], buf[off+3]
	c2x, c2y := buf[off+4], buf[off+5]
	x1, y1 := buf[off+6], buf[off+7]

	ax, ay := (x0+c1x)/2, (y0+c1y)/2
	bx, by := (c1x+c2x)/2, (c1y+c2y)/2
	cx, cy := (c2x+x1)/2, (c2y+y1)/2
	abx, aby := (ax+bx)/2, (ay+by)/2
	bcx, bcy := (bx+cx)/2, (by+cy)/2
	mx, my := (abx+bcx)/2, (aby+bcy)/2

	l := buf[off-6:]
	l[0], l[1] = x0, y0
	l[2], l[3] = ax, ay
	l[4], l[5] = abx, aby
	l[6], l[7] = mx, my
	r := buf[off:]
	r[2], r[3] = bcx, bcy
	r[4], r[5] = cx, cy
	r[6], r[7] = x1, y1
}
