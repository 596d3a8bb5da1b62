package pma

import "testing"

import "github.com/stretchr/testify/require"

// A small layout with m=16, s=4, segs=4, h=3 matches deriveLayout(0), so
// findRebalanceWindow's height-to-window-size mapping can be checked
// directly against hand-picked occupancy patterns.
func smallLayoutPMA(occupied []int) *PMA {
	lt := deriveLayout(0)
	a := make([]slot, lt.m)
	n := 0
	for _, i := range occupied {
		a[i] = slot{key: uint64(i + 1), value: uint64(i + 1)}
		n++
	}
	return &PMA{a: a, lt: lt, n: n}
}

func TestFindRebalanceWindowAcceptsDenseLeaf(t *testing.T) {
	// Segment [0,4) has 3 of 4 slots filled: density 0.75, within
	// [pLeaf, tLeaf) = [0.25, 1.0).
	p := smallLayoutPMA([]int{0, 1, 2})
	start, end, occ, ok := p.findRebalanceWindow(2)
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 4, end)
	require.Equal(t, 3, occ)
}

func TestFindRebalanceWindowEscalatesWhenLeafTooDense(t *testing.T) {
	// Segment [0,4) completely full: density 1.0, not < tLeaf=1.0, so the
	// search must escalate to height 1 (window size 8).
	p := smallLayoutPMA([]int{0, 1, 2, 3, 5})
	start, end, occ, ok := p.findRebalanceWindow(3)
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 8, end)
	require.Equal(t, 5, occ)
}

func TestFindRebalanceWindowFailsAtRootWhenOverThreshold(t *testing.T) {
	lt := deriveLayout(0)
	a := make([]slot, lt.m)
	for i := range a {
		a[i] = slot{key: uint64(i + 1), value: uint64(i + 1)}
	}
	p := &PMA{a: a, lt: lt, n: lt.m}

	_, _, _, ok := p.findRebalanceWindow(0)
	require.False(t, ok, "a completely full array must exceed every level's threshold, including the root")
}

func TestFindRebalanceWindowAcceptsLeafAtLowerBound(t *testing.T) {
	// Segment [0,4) has a single element: density 0.25, exactly at pLeaf,
	// which the spec admits at the boundary (p <= d), so it should be
	// accepted at the leaf rather than escalate.
	p := smallLayoutPMA([]int{0})
	_, end, _, ok := p.findRebalanceWindow(0)
	require.True(t, ok)
	require.Equal(t, 4, end)
}

func TestFindRebalanceWindowEscalatesBelowLeafThreshold(t *testing.T) {
	// An empty segment (density 0) must escalate past the leaf, whose
	// lower bound pLeaf is 0.25.
	p := smallLayoutPMA([]int{4, 5, 6}) // occupy the neighboring segment only
	_, end, _, ok := p.findRebalanceWindow(0)
	require.True(t, ok)
	// Window [0,8) at height 1 holds 3 of 8 slots, density 0.375, within
	// [1/3, 11/12) at that height, so the walk stops there.
	require.Equal(t, 8, end)
}
