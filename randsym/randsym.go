// Package randsym generates deterministic pseudo-random symmetric
// matrices, matching the original C++ implementation's "srand(0)"
// reproducibility contract (spec.md §9).
package randsym

import (
	"math/rand/v2"

	"github.com/simonhorlick/parallel-jacobi/matrix"
)

// Generate returns an n x n symmetric matrix whose entries are drawn
// from a seeded deterministic source, uniform on [-5, 5). The lower
// triangle and diagonal are filled first and mirrored into the upper
// triangle, matching generate_symmetric_matrix in the original driver.
func Generate(n int, seed int64) *matrix.Symmetric {
	src := rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	rng := rand.New(src)

	a := matrix.NewSymmetric(n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := float32(rng.Float64()-0.5) * 10
			a.Set(i, j, v)
		}
	}
	return a
}
