// Package euklid provides 2D shapes that describe their boundaries as streams
// of path segments, and derives hit testing for any such shape from that
// stream.
//
// # Shapes and path iterators
//
// [Shape] describes geometric shapes that have a bounding box and can produce
// a [PathIterator] over their boundary. A path iterator is a small, forward
// only state machine: [PathIterator.Segment] writes the coordinates of the
// current segment into a caller-supplied buffer and returns its
// [SegmentType], [PathIterator.Next] advances, and [PathIterator.Done]
// reports exhaustion. An optional [Transformer], such as [Affine], is applied
// to all coordinates.
//
// This package includes the following shapes:
//   - [Circle]
//   - [CubicBez]
//   - [Ellipse]
//   - [Line]
//   - [Path]
//   - [QuadBez]
//   - [Rect]
//
// # Flattening
//
// [FlatteningIterator] wraps any path iterator and replaces curves with line
// segments, subdividing them until they are within a tolerance of their
// chords. Subdivision uses an explicit, growable buffer instead of recursion
// and is bounded by a per-segment subdivision limit.
//
// # Hit testing
//
// [Crossings] and [RectCrossings] count how often a shape's boundary crosses a
// ray, which, combined with a [WindingRule], determines whether points and
// rectangles lie inside a shape. [Contains], [ContainsRect] and [Intersects]
// build on these and work for any shape. Rectangle queries can touch the
// boundary, which is reported as [Boundary] and never silently treated as
// inside or outside.
//
// Shapes with closed forms, such as [Ellipse] and [Rect], provide methods that
// answer the same questions analytically.
//
// # Coordinate system
//
// Coordinates are float64 values. Documentation speaks of a y-down space, as
// is common in graphics, where (X0, Y0) of a [Rect] is its top left corner.
// None of the algorithms depend on this interpretation. Results for
// non-finite coordinates are undefined.
package euklid
