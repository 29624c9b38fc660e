// Package verify cross-validates the sweep engine's output against
// gonum's LAPACK-backed symmetric eigendecomposition. It exists only
// for tests: the production solver never depends on it, since
// computing eigenvalues via gonum/LAPACK instead of via the sweep
// engine would defeat the purpose of this module.
package verify

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/simonhorlick/parallel-jacobi/matrix"
)

// ReferenceEigenvalues returns the ascending eigenvalue spectrum of a,
// computed by gonum.org/v1/gonum/mat.EigenSym, for comparison against
// this module's own Jacobi sweep result.
func ReferenceEigenvalues(a *matrix.Symmetric) []float64 {
	n := a.ActualSize()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = float64(a.At(i, j))
		}
	}
	dense := mat.NewSymDense(n, data)

	var eig mat.EigenSym
	if ok := eig.Factorize(dense, false); !ok {
		return nil
	}
	values := eig.Values(nil)
	sort.Float64s(values)
	return values
}
