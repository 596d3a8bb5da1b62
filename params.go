package pma

import "math/bits"

// Density thresholds, height-based with level 0 the leaves (the source
// carries two conflicting depth/height conventions for these; this package
// commits to the one the window finder actually walks: height increases
// from the leaf segment up to the root).
const (
	tLeaf = 1.00 // upper threshold at the leaves
	tRoot = 0.75 // upper threshold at the root
	pLeaf = 0.25 // lower threshold at the leaves
	pRoot = 0.50 // lower threshold at the root

	// minSlots is the smallest legal configuration: m=16, s=4, S=4, h=3.
	minSlots = 16

	// maxSlots is the hard ceiling on m: spread's fixed-point arithmetic
	// reserves the upper 8 bits of a uint64 offset for the fractional part.
	maxSlots = 1<<56 - 1
)

// layout holds the derived sizing and threshold-step parameters for a PMA.
// It is recomputed wholesale on every resize and is otherwise read-only;
// every public operation reads it but only resize.go ever replaces it.
type layout struct {
	m      int     // total slot count
	s      int     // segment size, floor(log2 m)
	segs   int     // S, number of segments
	h      int     // tree height
	deltaT float64 // Δt, upper-threshold step per height
	deltaP float64 // Δp, lower-threshold step per height
}

// deriveLayout computes m, s, S, h, Δt, Δp for a desired occupancy n, per
// the Bender-Demaine-Farach-Colton sizing rule: m = hyperceil(2n),
// s = floor(log2 m), S = hyperfloor(m/s), m := S*s, h = floor(log2 S) + 1.
func deriveLayout(n int) layout {
	if n < 0 {
		n = 0
	}
	raw := uint64(2 * n)
	var m uint64
	if raw < minSlots {
		m = minSlots
	} else {
		m = hyperceil(raw)
	}
	s := floorLg(m)
	segs := hyperfloor(m / s)
	m = segs * s

	lt := layout{
		m:    int(m),
		s:    int(s),
		segs: int(segs),
		h:    int(floorLg(segs)) + 1,
	}
	lt.deltaT = (tLeaf - tRoot) / float64(lt.h)
	lt.deltaP = (pRoot - pLeaf) / float64(lt.h)
	return lt
}

// windowSize returns the slot count of a window at the given height
// (height 0 is a single leaf segment; height h-1 is the whole array).
func (lt layout) windowSize(height int) int {
	return lt.s << uint(height)
}

// thresholds returns the upper and lower density bounds for a window at
// the given height.
func (lt layout) thresholds(height int) (upper, lower float64) {
	upper = tLeaf - float64(height)*lt.deltaT
	lower = pLeaf + float64(height)*lt.deltaP
	return upper, lower
}

// floorLg returns floor(log2(x)), the 0-based index of the most
// significant set bit. x must be > 0.
func floorLg(x uint64) uint64 {
	return uint64(bits.Len64(x)) - 1
}

// ceilLg returns ceil(log2(x)) for x > 1; ceilLg(1) is 0.
func ceilLg(x uint64) uint64 {
	return uint64(bits.Len64(x - 1))
}

// hyperfloor returns the largest power of two not greater than x.
func hyperfloor(x uint64) uint64 {
	return 1 << floorLg(x)
}

// hyperceil returns the smallest power of two not less than x.
func hyperceil(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	return 1 << ceilLg(x)
}
