package spline_test

import (
	"fmt"

	"github.com/splinefit/spline"
)

func ExampleSpline() {
	var s spline.Spline
	s.AppendPoint(spline.Pt(0, 0, 0))
	s.AppendPoint(spline.Pt(1, 2, 0))

	// The last anchor tracks the pointer while it is being dragged.
	s.UpdateLastPoint(spline.Pt(1, 2, 1))
	s.UpdateLastPoint(spline.Pt(2, 0, 0))
	s.AppendPoint(spline.Pt(4, 1, 0))

	fmt.Println(s.PointCount(), "anchors")
	for seg := range s.Segments() {
		fmt.Println(seg.Start(), "->", seg.End())
	}
	// Output:
	// 3 anchors
	// (0, 0, 0) -> (2, 0, 0)
	// (2, 0, 0) -> (4, 1, 0)
}

func ExampleSpline_PointDistance() {
	var s spline.Spline
	s.AppendPoint(spline.Pt(0, 0, 0))

	// Append the next anchor only once the pointer has moved far enough.
	p := spline.Pt(3, 4, 0)
	if s.PointDistance(s.PointCount()-1, p) > 1 {
		s.AppendPoint(p)
	}

	fmt.Println(s.PointCount())
	// Output:
	// 2
}
