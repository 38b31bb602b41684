package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var cub = CubicBez{
	P0: Pt(0, 0, 0),
	P1: Pt(1, 3, -1),
	P2: Pt(3, -2, 2),
	P3: Pt(4, 0, 1),
}

func TestCubicBezEval(t *testing.T) {
	diff(t, cub.P0, cub.Eval(0))
	diff(t, cub.P3, cub.Eval(1))

	// Bernstein weights at t=0.5 are 1/8, 3/8, 3/8, 1/8.
	want := Vec3(cub.P0).Add(Vec3(cub.P3)).Mul(0.125).
		Add(Vec3(cub.P1).Add(Vec3(cub.P2)).Mul(0.375))
	diff(t, Point(want), cub.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicBezDeriv(t *testing.T) {
	diff(t, cub.P1.Sub(cub.P0).Mul(3), cub.Deriv(0))
	diff(t, cub.P3.Sub(cub.P2).Mul(3), cub.Deriv(1))

	// Central difference at a few interior parameters.
	const h = 1e-6
	for _, tt := range []float64{0.2, 0.5, 0.8} {
		fd := cub.Eval(tt + h).Sub(cub.Eval(tt - h)).Div(2 * h)
		diff(t, fd, cub.Deriv(tt), cmpopts.EquateApprox(1e-6, 1e-6))
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	left, right := cub.Subdivide()
	diff(t, cub.P0, left.P0)
	diff(t, cub.P3, right.P3)
	diff(t, left.P3, right.P0)

	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		diff(t, cub.Eval(tt/2), left.Eval(tt), cmpopts.EquateApprox(0, 1e-12))
		diff(t, cub.Eval(0.5+tt/2), right.Eval(tt), cmpopts.EquateApprox(0, 1e-12))
	}
}
