package spline

import (
	"iter"
	"math"
)

// Knot is one anchor of a fitted curve together with its tangent handles.
// In and Out are offsets relative to the anchor rather than absolute
// positions, so translating every anchor by the same vector translates the
// whole representation identically. In is the zero vector at the first knot
// and Out is the zero vector at the last one; the open curve enforces no
// tangent continuity past its endpoints.
type Knot struct {
	Point Point
	In    Vec3
	Out   Vec3
}

// Spline interpolates a natural cubic spline through an ordered sequence of
// anchor points, refitting lazily: mutations only mark the cached fit stale,
// and the fit is recomputed at most once per batch of mutations, when the
// curve is next read. A full refit costs O(n²) in the anchor count.
//
// The zero value is an empty spline ready for use. A Spline is not safe for
// concurrent use.
type Spline struct {
	pts   []Point
	knots []Knot
	dirty bool
}

// Reset empties the anchor sequence and drops the cached fit.
func (s *Spline) Reset() {
	s.pts = s.pts[:0]
	s.knots = nil
	s.dirty = false
}

// AppendPoint adds p as a new anchor at the end of the sequence.
func (s *Spline) AppendPoint(p Point) {
	s.pts = append(s.pts, p)
	s.dirty = true
}

// UpdateLastPoint overwrites the position of the most recently appended
// anchor. All earlier anchors are immutable; only the last one may be
// revised, which supports drag-to-reposition input where the pending anchor
// follows the pointer until it is committed by the next AppendPoint. On an
// empty spline this is a no-op, so callers tracking a movable preview point
// must have appended at least one anchor first — interactive callers
// typically append both the committed anchor and the preview point when the
// gesture starts.
func (s *Spline) UpdateLastPoint(p Point) {
	if len(s.pts) == 0 {
		return
	}
	s.pts[len(s.pts)-1] = p
	s.dirty = true
}

// PointCount returns the number of anchors.
func (s *Spline) PointCount() int {
	return len(s.pts)
}

// PointDistance returns the euclidean distance from anchor idx to p. If idx
// is out of range it returns NaN; an invalid index is a caller bug, but call
// sites commonly use the distance as a debounce heuristic, so it is signaled
// softly rather than panicking.
func (s *Spline) PointDistance(idx int, p Point) float64 {
	if idx < 0 || idx >= len(s.pts) {
		return math.NaN()
	}
	return s.pts[idx].Distance(p)
}

// Knots returns the fitted curve, one knot per anchor in insertion order.
// If any anchor changed since the last call, the whole fit is recomputed
// first; otherwise the cached result is returned as is, so repeated calls
// between mutations are cheap and yield identical output.
//
// The returned slice is owned by the Spline and valid until the next
// mutation.
func (s *Spline) Knots() []Knot {
	if s.dirty {
		s.knots = fitKnots(s.pts)
		s.dirty = false
	}
	return s.knots
}

// Segments returns an iterator over the cubic Bézier segments of the fitted
// curve, refitting first if needed. Each adjacent knot pair maps to one
// segment whose inner control points are the first knot's outgoing handle
// and the second knot's incoming handle. A spline with fewer than two
// anchors has no segments.
func (s *Spline) Segments() iter.Seq[CubicBez] {
	knots := s.Knots()
	return func(yield func(CubicBez) bool) {
		for i := 0; i+1 < len(knots); i++ {
			k0, k1 := knots[i], knots[i+1]
			seg := CubicBez{
				P0: k0.Point,
				P1: k0.Point.Translate(k0.Out),
				P2: k1.Point.Translate(k1.In),
				P3: k1.Point,
			}
			if !yield(seg) {
				break
			}
		}
	}
}
