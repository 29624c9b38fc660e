package pairing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhorlick/parallel-jacobi/pairing"
)

// TestScheduleCorrectness checks property 4 from the spec: for each
// even m, the generator emits exactly m-1 rounds, each with exactly
// m/2 disjoint pairs, and the multiset of unordered pairs across a
// full sweep equals every {i,j}, i<j, exactly once. m=34 stands in for
// the n=33 odd case (spec.md pads odd n to m=n+1).
func TestScheduleCorrectness(t *testing.T) {
	for _, m := range []int{2, 4, 8, 16, 34, 64} {
		sched := pairing.Sweep(m)
		require.Equal(t, m-1, sched.Rounds(), "m=%d", m)

		seen := make(map[pairing.Pair]int)
		for k := 0; k < sched.Rounds(); k++ {
			round := sched.Round(k)
			require.Len(t, round, m/2, "m=%d round=%d", m, k)

			touched := make(map[int]bool, m)
			for _, p := range round {
				assert.Less(t, p.P, p.Q, "m=%d round=%d pair=%v", m, k, p)
				assert.False(t, touched[p.P], "index %d reused within round", p.P)
				assert.False(t, touched[p.Q], "index %d reused within round", p.Q)
				touched[p.P] = true
				touched[p.Q] = true
				seen[p]++
			}
		}

		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				assert.Equal(t, 1, seen[pairing.Pair{P: i, Q: j}], "pair (%d,%d) for m=%d", i, j, m)
			}
		}
		assert.Len(t, seen, m*(m-1)/2, "m=%d", m)
	}
}

func TestSweepPanicsOnOddOrder(t *testing.T) {
	assert.Panics(t, func() { pairing.Sweep(3) })
}

func TestSweepPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { pairing.Sweep(0) })
}
