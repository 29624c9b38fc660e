package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhorlick/parallel-jacobi/matrix"
	"github.com/simonhorlick/parallel-jacobi/rotation"
)

func apply(a *matrix.Symmetric, r rotation.Rotation) {
	n := a.ActualSize()
	rotation.ApplyPre(a, r, 0, n)
	rotation.ApplyPost(a, r, 0, n)
	rotation.ApplyDiagonalBlock(a, r)
}

func TestComputeZeroesOffDiagonal2x2(t *testing.T) {
	a, err := matrix.NewSymmetricFrom([][]float32{{2, 1}, {1, 2}})
	require.NoError(t, err)

	r, ok := rotation.Compute(a, 0, 1)
	require.True(t, ok)
	apply(a, r)

	assert.InDelta(t, 0, a.At(0, 1), 1e-5)
	assert.InDelta(t, 0, a.At(1, 0), 1e-5)
}

func TestComputeIsNoOpBelowFloor(t *testing.T) {
	a, err := matrix.NewSymmetricFrom([][]float32{{2, 0}, {0, 3}})
	require.NoError(t, err)
	_, ok := rotation.Compute(a, 0, 1)
	assert.False(t, ok)
}

func TestApplyPreservesTraceAndFrobenius(t *testing.T) {
	a, err := matrix.NewSymmetricFrom([][]float32{
		{4, 1, 0},
		{1, 3, 2},
		{0, 2, 5},
	})
	require.NoError(t, err)

	traceBefore := a.Trace()
	frobBefore := a.FrobeniusNorm()

	r, ok := rotation.Compute(a, 0, 1)
	require.True(t, ok)
	apply(a, r)

	assert.InDelta(t, traceBefore, a.Trace(), 1e-4)
	assert.InDelta(t, frobBefore, a.FrobeniusNorm(), 1e-4)
}

func TestApplySymmetryPreserved(t *testing.T) {
	a, err := matrix.NewSymmetricFrom([][]float32{
		{4, 1, 0, 2},
		{1, 3, 2, 0},
		{0, 2, 5, 1},
		{2, 0, 1, 6},
	})
	require.NoError(t, err)

	r, ok := rotation.Compute(a, 1, 3)
	require.True(t, ok)
	apply(a, r)

	for i := 0; i < a.ActualSize(); i++ {
		for j := 0; j < a.ActualSize(); j++ {
			assert.InDelta(t, a.At(i, j), a.At(j, i), 1e-5)
		}
	}
}
