// Package rotation implements the Jacobi 2x2 similarity transform that
// annihilates a single off-diagonal entry of a symmetric matrix while
// preserving symmetry.
package rotation

import (
	"fmt"
	"math"

	"github.com/simonhorlick/parallel-jacobi/matrix"
)

// floorEpsilon bounds how small |A(p,q)| must be before a rotation is
// considered a no-op, relative to the magnitude of the entries it would
// otherwise disturb.
const floorEpsilon = 1e-12

// Rotation is the pure value (p, q, c, s) of a single Jacobi rotation,
// with p < q and c^2+s^2 = 1. It is never stored beyond the lifetime of
// the rotation it describes.
type Rotation struct {
	P, Q int
	C, S float32
}

// Compute derives the Jacobi rotation that zeroes A(p,q), for p < q <
// a.ActualSize(). ok is false when |A(p,q)| is already below the
// annihilation floor, in which case the caller must not mutate A.
func Compute(a *matrix.Symmetric, p, q int) (r Rotation, ok bool) {
	if p >= q {
		panic(fmt.Sprintf("rotation: requires p < q, got p=%d q=%d", p, q))
	}
	if q >= a.ActualSize() {
		panic(fmt.Sprintf("rotation: q=%d out of logical range %d", q, a.ActualSize()))
	}

	app := a.At(p, p)
	aqq := a.At(q, q)
	apq := a.At(p, q)

	maxMag := maxAbs3(app, aqq, apq)
	if math.Abs(float64(apq)) <= floorEpsilon*float64(maxMag) {
		return Rotation{}, false
	}

	theta := float64((aqq - app) / (2 * apq))
	t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(1+theta*theta)), theta)
	c := 1.0 / math.Sqrt(1+t*t)
	s := t * c

	return Rotation{P: p, Q: q, C: float32(c), S: float32(s)}, true
}

func maxAbs3(a, b, c float32) float32 {
	m := float32(math.Abs(float64(a)))
	if v := float32(math.Abs(float64(b))); v > m {
		m = v
	}
	if v := float32(math.Abs(float64(c))); v > m {
		m = v
	}
	return m
}

// ApplyDiagonalBlock updates the 2x2 block {A(p,p), A(p,q), A(q,p),
// A(q,q)} in closed form, explicitly forcing A(p,q) = A(q,p) = 0 to
// suppress rounding drift. It reads only the block itself, so it may be
// called before, after, or concurrently with ApplyPre/ApplyPost for the
// same rotation.
func ApplyDiagonalBlock(a *matrix.Symmetric, r Rotation) {
	app := a.At(r.P, r.P)
	aqq := a.At(r.Q, r.Q)
	apq := a.At(r.P, r.Q)

	c, s := r.C, r.S
	newApp := c*c*app - 2*c*s*apq + s*s*aqq
	newAqq := s*s*app + 2*c*s*apq + c*c*aqq

	a.Set(r.P, r.P, newApp)
	a.Set(r.Q, r.Q, newAqq)
	a.Set(r.P, r.Q, 0)
}

// ApplyPre performs the pre-multiplication phase of the rotation over
// the row range [lo, hi): for every row index x in that range with x !=
// p, q, it recomputes A(p,x) and A(q,x) from the current values of
// A(p,x) and A(q,x), so it reads and writes only rows p and q. It
// leaves (x,p)/(x,q) untouched so ApplyPost can read the original
// values independently.
func ApplyPre(a *matrix.Symmetric, r Rotation, lo, hi int) {
	c, s := r.C, r.S
	for x := lo; x < hi; x++ {
		if x == r.P || x == r.Q {
			continue
		}
		axp := a.At(r.P, x)
		axq := a.At(r.Q, x)
		newXP := c*axp - s*axq
		newXQ := s*axp + c*axq
		a.SetAsymmetric(r.P, x, newXP)
		a.SetAsymmetric(r.Q, x, newXQ)
	}
}

// ApplyPost performs the post-multiplication phase of the rotation over
// the row range [lo, hi): for every row index x in that range with x !=
// p, q, it recomputes A(x,p) and A(x,q) from the pre-rotation values of
// A(x,p) and A(x,q), writing only the (x,p)/(x,q) half of the buffer.
// Once both ApplyPre and ApplyPost have completed for a rotation, the
// symmetry invariant A(i,j) == A(j,i) holds again.
func ApplyPost(a *matrix.Symmetric, r Rotation, lo, hi int) {
	c, s := r.C, r.S
	for x := lo; x < hi; x++ {
		if x == r.P || x == r.Q {
			continue
		}
		axp := a.At(x, r.P)
		axq := a.At(x, r.Q)
		newXP := c*axp - s*axq
		newXQ := s*axp + c*axq
		a.SetAsymmetric(x, r.P, newXP)
		a.SetAsymmetric(x, r.Q, newXQ)
	}
}
