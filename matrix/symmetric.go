// Package matrix provides the dense symmetric store used by the
// parallel Jacobi eigensolver: a flat row-major float32 buffer padded
// to an even order so the pairing generator always has a clean m/2
// pair count to work with.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Symmetric is a square symmetric matrix of logical order n, backed by
// a flat row-major buffer of padded order m >= n. Padding exists only
// so the pairing generator can assume an even order; padded rows and
// columns are always zero and are never read as meaningful data.
//
// Symmetric has no internal synchronization: concurrent writes to
// disjoint (row, column) pairs are the caller's responsibility to
// arrange, as described by the sweep engine's round scheduling.
type Symmetric struct {
	n, m int
	data []float32
}

// NewSymmetric allocates a zeroed symmetric matrix of logical order n,
// padded to an even order. It panics if n is negative, since a
// negative order is a programmer error, not a user-input error.
func NewSymmetric(n int) *Symmetric {
	if n < 0 {
		panic(fmt.Sprintf("matrix: negative order %d", n))
	}
	m := n
	if m%2 != 0 {
		m++
	}
	return &Symmetric{n: n, m: m, data: make([]float32, m*m)}
}

// NewSymmetricFrom builds a Symmetric from a user-supplied n x n array.
// It returns ErrBadShape for an empty input and ErrNonSquare when a
// row's length does not match the row count. The source need not
// already be symmetric; each off-diagonal pair is replaced by its
// average, (A+A^T)/2, so the invariant entry(i,j) == entry(j,i) holds
// from construction onward.
func NewSymmetricFrom(rows [][]float32) (*Symmetric, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	s := NewSymmetric(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.data[i*s.m+j] = rows[i][j]
		}
	}
	s.symmetrize()
	return s, nil
}

// symmetrize replaces entry(i,j) and entry(j,i) by their average so
// entry(i,j) == entry(j,i) for all logical indices.
func (s *Symmetric) symmetrize() {
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			avg := (s.data[i*s.m+j] + s.data[j*s.m+i]) / 2
			s.data[i*s.m+j] = avg
			s.data[j*s.m+i] = avg
		}
	}
}

// Clone returns a deep copy of s.
func (s *Symmetric) Clone() *Symmetric {
	cp := &Symmetric{n: s.n, m: s.m, data: make([]float32, len(s.data))}
	copy(cp.data, s.data)
	return cp
}

// ActualSize reports the logical order n.
func (s *Symmetric) ActualSize() int { return s.n }

// Size reports the padded order m >= n.
func (s *Symmetric) Size() int { return s.m }

// At returns the entry at (i, j), 0 <= i, j < m. It panics on an
// out-of-range index: bounds violations on the hot path are a
// programmer error, never a condition triggered by user input.
func (s *Symmetric) At(i, j int) float32 {
	s.checkIndex(i, j)
	return s.data[i*s.m+j]
}

// Set writes v into both (i, j) and (j, i), preserving symmetry.
func (s *Symmetric) Set(i, j int, v float32) {
	s.checkIndex(i, j)
	s.data[i*s.m+j] = v
	s.data[j*s.m+i] = v
}

// SetAsymmetric writes v only into (i, j), without mirroring. It
// exists for the rotation kernel's uninterruptible body, which
// restores symmetry itself once both halves of a 2x2 update are
// known; ordinary callers should use Set.
func (s *Symmetric) SetAsymmetric(i, j int, v float32) {
	s.checkIndex(i, j)
	s.data[i*s.m+j] = v
}

func (s *Symmetric) checkIndex(i, j int) {
	if i < 0 || i >= s.m || j < 0 || j >= s.m {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for order %d", i, j, s.m))
	}
}

// SwapRows exchanges the two full padded rows a and b, each of length
// m. Gaussian elimination is the only caller that needs a full-row
// swap; ordinary Jacobi rotations never touch whole rows.
func (s *Symmetric) SwapRows(a, b int) {
	if a == b {
		return
	}
	s.checkIndex(a, 0)
	s.checkIndex(b, 0)
	ra := s.data[a*s.m : a*s.m+s.m]
	rb := s.data[b*s.m : b*s.m+s.m]
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}
}

// FrobeniusNorm returns sqrt(sum A(i,j)^2) over the logical n x n
// submatrix.
func (s *Symmetric) FrobeniusNorm() float64 {
	var sum float64
	for i := 0; i < s.n; i++ {
		base := i * s.m
		for j := 0; j < s.n; j++ {
			v := float64(s.data[base+j])
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}

// OffDiagonalNorm returns off(A) = sqrt(sum_{i != j} A(i,j)^2) over the
// logical n x n submatrix, computed in float64 regardless of the
// matrix's float32 storage so the convergence monitor sees a stable
// magnitude.
func (s *Symmetric) OffDiagonalNorm() float64 {
	var sum float64
	for i := 0; i < s.n; i++ {
		base := i * s.m
		for j := 0; j < s.n; j++ {
			if i == j {
				continue
			}
			v := float64(s.data[base+j])
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}

// Trace returns the sum of the logical diagonal.
func (s *Symmetric) Trace() float64 {
	var sum float64
	for i := 0; i < s.n; i++ {
		sum += float64(s.data[i*s.m+i])
	}
	return sum
}

// Diagonal returns a fresh slice holding the logical diagonal, in
// index order (not sorted).
func (s *Symmetric) Diagonal() []float64 {
	d := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		d[i] = float64(s.data[i*s.m+i])
	}
	return d
}

// String renders the logical n x n submatrix for debugging.
func (s *Symmetric) String() string {
	var b strings.Builder
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%8.4f", s.At(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
