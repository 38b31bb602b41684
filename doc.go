// Package spline fits natural cubic splines through ordered sequences of 3D
// points. Given anchors supplied one at a time, it produces a piecewise-cubic
// curve that passes exactly through every anchor and is continuous in first
// and second derivative at each interior anchor.
//
// The package was designed for interactive curve drawing: anchors are
// appended as the user commits points, the most recent anchor may be revised
// repeatedly while it is being dragged, and the fitted representation is only
// recomputed when actually read. See [Spline] for the incremental API.
//
// # Fitting
//
// The fit is the classic natural cubic interpolation problem. Interior
// control points satisfy the tridiagonal system with 4 on the diagonal and 1
// on both adjacent diagonals, which this package solves with the closed-form
// continuant inverse rather than a general-purpose elimination: the band
// structure admits an exact rational inverse (integer numerators over one
// shared determinant), so every control point is a single weighted sum of
// the right-hand side. The cost of a full fit is O(n²) in the anchor count,
// which is intended for interactively sized inputs (tens to low hundreds of
// anchors), not for streaming thousands of points.
//
// The fitted curve is exposed as a sequence of [Knot] values, each pairing an
// anchor with its incoming and outgoing tangent offsets, and equivalently as
// an iterator of cubic Bézier segments via [Spline.Segments].
//
// # Literature
//
//   - [Inversion of general tridiagonal matrices] by Usmani (the θ/φ
//     continuant recurrence used here)
//   - [A Primer on Bézier Curves]
//
// [Inversion of general tridiagonal matrices]: https://doi.org/10.1016/0893-9659(94)90016-7
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package spline
