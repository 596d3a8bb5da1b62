package pma

import "testing"

import "github.com/stretchr/testify/require"

func TestInsertLeadingSlotOnEmptySegment(t *testing.T) {
	a := make([]slot, 8)
	p := &PMA{a: a, lt: layout{s: 4, m: 8}}

	idx, ok := p.insertInSegmentAfter(-1, 5, 50)
	require.True(t, ok)
	require.Equal(t, int64(0), idx)
	require.Equal(t, uint64(5), p.a[0].key)
	require.Equal(t, 1, p.n)
}

func TestInsertLeadingSlotShiftsPrefixRight(t *testing.T) {
	a := []slot{{10, 1}, {20, 2}, {}, {}, {}, {}, {}, {}}
	p := &PMA{a: a, lt: layout{s: 4, m: 8}, n: 2}

	idx, ok := p.insertInSegmentAfter(-1, 5, 50)
	require.True(t, ok)
	require.Equal(t, int64(0), idx)
	require.Equal(t, uint64(5), p.a[0].key)
	require.Equal(t, uint64(10), p.a[1].key)
	require.Equal(t, uint64(20), p.a[2].key)
	require.True(t, p.a[3].empty())
	require.Equal(t, 3, p.n)
}

func TestInsertInSegmentAfterPrefersLeftGap(t *testing.T) {
	// segment [0,4): _ 10 20 30 -- a gap on the left and none on the right.
	a := []slot{{}, {10, 1}, {20, 2}, {30, 3}}
	p := &PMA{a: a, lt: layout{s: 4, m: 4}, n: 3}

	idx, ok := p.insertInSegmentAfter(1, 15, 150)
	require.True(t, ok)
	require.Equal(t, int64(1), idx)
	require.Equal(t, uint64(10), p.a[0].key)
	require.Equal(t, uint64(15), p.a[1].key)
	require.Equal(t, uint64(20), p.a[2].key)
	require.Equal(t, uint64(30), p.a[3].key)
}

func TestInsertInSegmentAfterUsesRightGapWhenLeftExhausted(t *testing.T) {
	// segment [0,4): 10 20 30 _ -- only the right side has room.
	a := []slot{{10, 1}, {20, 2}, {30, 3}, {}}
	p := &PMA{a: a, lt: layout{s: 4, m: 4}, n: 3}

	idx, ok := p.insertInSegmentAfter(1, 25, 250)
	require.True(t, ok)
	require.Equal(t, int64(2), idx)
	require.Equal(t, uint64(10), p.a[0].key)
	require.Equal(t, uint64(20), p.a[1].key)
	require.Equal(t, uint64(25), p.a[2].key)
	require.Equal(t, uint64(30), p.a[3].key)
}

func TestInsertInSegmentAfterFailsWhenFull(t *testing.T) {
	a := []slot{{10, 1}, {20, 2}, {30, 3}, {40, 4}}
	p := &PMA{a: a, lt: layout{s: 4, m: 4}, n: 4}

	_, ok := p.insertInSegmentAfter(1, 25, 250)
	require.False(t, ok)
}

func TestInsertInSegmentAfterScansPastAdjacentOccupiedSlots(t *testing.T) {
	// segment [0,8): 10 20 30 40 _ 60 70 80 -- the only gap is two past i.
	a := []slot{{10, 1}, {20, 2}, {30, 3}, {40, 4}, {}, {60, 6}, {70, 7}, {80, 8}}
	p := &PMA{a: a, lt: layout{s: 8, m: 8}, n: 7}

	idx, ok := p.insertInSegmentAfter(2, 35, 350)
	require.True(t, ok)
	require.Equal(t, int64(3), idx)
	require.Equal(t, uint64(30), p.a[2].key)
	require.Equal(t, uint64(35), p.a[3].key)
	require.Equal(t, uint64(40), p.a[4].key)
	require.Equal(t, uint64(60), p.a[5].key)
}
