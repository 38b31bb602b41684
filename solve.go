package spline

// controlPoints derives the auxiliary control points B of the natural cubic
// fit through pts. The first and last control points coincide with the first
// and last anchors; each interior control point satisfies
//
//	A[i] = B[i-1]/6 + 2·B[i]/3 + B[i+1]/6
//
// so that joining adjacent anchors with Bézier handles blended from B yields
// C² continuity. With two anchors or fewer there is nothing to solve and the
// result is nil.
func controlPoints(pts []Point) []Point {
	n := len(pts)
	if n <= 2 {
		return nil
	}
	b := make([]Point, n)
	b[0] = pts[0]
	b[n-1] = pts[n-1]
	if n == 3 {
		// A single interior unknown; the 1×1 system collapses to a closed
		// form.
		mid := Vec3(pts[0]).Add(Vec3(pts[2])).Div(6)
		b[1] = Point(Vec3(pts[1]).Sub(mid).Mul(1.5))
		return b
	}

	// The interior control points solve the tridiagonal system with 4 on
	// the diagonal and 1 on the off-diagonals. The right-hand side is 6×
	// the interior anchors, with the fixed boundary control points folded
	// into the first and last entries.
	order := n - 2
	s := make([]Vec3, order)
	for k := range s {
		s[k] = Vec3(pts[k+1]).Mul(6)
	}
	s[0] = s[0].Sub(Vec3(pts[0]))
	s[order-1] = s[order-1].Sub(Vec3(pts[n-1]))
	for i, v := range invertBand(order).apply(s) {
		b[i+1] = Point(v)
	}
	return b
}

// fitKnots fits the natural cubic spline through pts and returns one knot
// per anchor. Tangent handles blend the control points with exact 1/3 and
// 2/3 weights and are stored relative to the anchor, so the representation
// is translation-consistent.
func fitKnots(pts []Point) []Knot {
	n := len(pts)
	knots := make([]Knot, n)
	if n <= 2 {
		// One or two anchors are already their own smooth representation:
		// zero tangents describe a point or a straight segment.
		for i, p := range pts {
			knots[i] = Knot{Point: p}
		}
		return knots
	}

	b := controlPoints(pts)
	for i, p := range pts {
		k := Knot{Point: p}
		if i > 0 {
			h := Vec3(b[i-1]).Div(3).Add(Vec3(b[i]).Mul(2.0 / 3.0))
			k.In = h.Sub(Vec3(p))
		}
		if i < n-1 {
			h := Vec3(b[i]).Mul(2.0 / 3.0).Add(Vec3(b[i+1]).Div(3))
			k.Out = h.Sub(Vec3(p))
		}
		knots[i] = k
	}
	return knots
}
