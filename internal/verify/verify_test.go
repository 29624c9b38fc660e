package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhorlick/parallel-jacobi/internal/verify"
	"github.com/simonhorlick/parallel-jacobi/matrix"
)

func TestReferenceEigenvaluesDiagonal(t *testing.T) {
	a, err := matrix.NewSymmetricFrom([][]float32{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.NoError(t, err)

	got := verify.ReferenceEigenvalues(a)
	require.Len(t, got, 3)
	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 2.0, got[1], 1e-9)
	assert.InDelta(t, 3.0, got[2], 1e-9)
}

func TestReferenceEigenvaluesTwoByTwo(t *testing.T) {
	a, err := matrix.NewSymmetricFrom([][]float32{
		{2, 1},
		{1, 2},
	})
	require.NoError(t, err)

	got := verify.ReferenceEigenvalues(a)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.0, got[0], 1e-9)
	assert.InDelta(t, 3.0, got[1], 1e-9)
}
