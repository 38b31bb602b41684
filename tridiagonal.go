package spline

// bandInverse is the exact inverse of the order×order tridiagonal matrix
// with 4 on the main diagonal and 1 on both adjacent diagonals, expressed as
// a matrix of integer-valued numerators over one shared denominator. Storing
// the rational form lets a caller divide once per final component instead of
// accumulating floating error across recurrence terms.
//
// The entries are held in float64: θ grows like (2+√3)^k, so int64 would
// overflow near order 33, while float64 stays exact through order 27 and
// keeps full relative accuracy beyond.
type bandInverse struct {
	order int
	num   [][]float64
	den   float64
}

// invertBand computes the closed-form inverse of the order×order band matrix
// via the continuant recurrence
//
//	θ[0] = 1, θ[1] = 4, θ[k] = 4·θ[k-1] − θ[k-2]
//
// with the reverse continuant φ[k] = θ[order+1−k] (the matrix is symmetric
// with a constant band, so running the recurrence from the other end yields
// the same sequence reversed). For 1-based indices i ≤ j the entry (i, j) is
// (−1)^(i+j)·θ[i−1]·φ[j+1], mirrored for i > j, over the shared denominator
// θ[order]. The sign alternates with index parity because the off-diagonal
// entries are +1 rather than −1.
//
// order must be at least 2; the spline solver only reaches this path with
// four or more anchors, which guarantees it.
func invertBand(order int) bandInverse {
	if order < 2 {
		panic("spline: band inverse is undefined for order < 2")
	}
	theta := make([]float64, order+2)
	theta[0] = 1
	theta[1] = 4
	for k := 2; k <= order+1; k++ {
		theta[k] = 4*theta[k-1] - theta[k-2]
	}
	phi := func(k int) float64 { return theta[order+1-k] }

	num := make([][]float64, order)
	for i := 1; i <= order; i++ {
		row := make([]float64, order)
		for j := 1; j <= order; j++ {
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			e := theta[lo-1] * phi(hi+1)
			if (i+j)%2 != 0 {
				e = -e
			}
			row[j-1] = e
		}
		num[i-1] = row
	}
	return bandInverse{order: order, num: num, den: theta[order]}
}

// apply multiplies the inverse by the right-hand-side vector s, which must
// have length order. Each output component is divided by the shared
// denominator exactly once.
func (inv bandInverse) apply(s []Vec3) []Vec3 {
	out := make([]Vec3, inv.order)
	for i, row := range inv.num {
		var acc Vec3
		for j, w := range row {
			acc = acc.Add(s[j].Mul(w))
		}
		out[i] = acc.Div(inv.den)
	}
	return out
}
