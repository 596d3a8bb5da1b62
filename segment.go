// Copyright (c) 2016 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package pma

// insertInSegmentAfter inserts (key, value) immediately after index i within
// i's segment, shifting existing elements toward the nearer empty slot to
// open a single free cell. i may be -1, meaning "insert before everything
// currently in the array" — the new minimum key — in which case the prefix
// of segment 0 up to its leftmost empty slot shifts right by one and the
// entry is placed at index 0.
//
// It returns the index the new entry actually landed at, and false if the
// segment has no empty slot at all. That is a real runtime path: a
// rebalance of an enclosing window can leave a leaf segment completely
// full. Insert responds to a false return by resizing and retrying.
func (p *PMA) insertInSegmentAfter(i int64, key, value uint64) (int64, bool) {
	if i < 0 {
		return p.insertLeadingSlot(key, value)
	}

	s := int64(p.lt.s)
	segStart := (i / s) * s
	segEnd := segStart + s

	left, right := i-1, i+1
	for {
		leftIn, rightIn := left >= segStart, right < segEnd
		if !leftIn && !rightIn {
			return 0, false
		}
		// Check both sides at the current distance before moving either
		// pointer further out, so a gap found on one side is never
		// overshot while the other side is still blocked.
		if leftIn && p.a[left].empty() {
			break
		}
		if rightIn && p.a[right].empty() {
			break
		}
		if leftIn {
			left--
		}
		if rightIn {
			right++
		}
	}

	switch {
	case left >= segStart && p.a[left].empty():
		for j := left; j < i; j++ {
			p.a[j] = p.a[j+1]
		}
		p.a[i] = slot{key, value}
		p.n++
		return i, true
	case right < segEnd && p.a[right].empty():
		for j := right; j > i+1; j-- {
			p.a[j] = p.a[j-1]
		}
		p.a[i+1] = slot{key, value}
		p.n++
		return i + 1, true
	default:
		return 0, false
	}
}

// insertLeadingSlot handles the i == -1 case: find the leftmost empty slot
// in segment 0 and shift the prefix before it right by one.
func (p *PMA) insertLeadingSlot(key, value uint64) (int64, bool) {
	segEnd := int64(p.lt.s)
	empty := int64(-1)
	for j := int64(0); j < segEnd; j++ {
		if p.a[j].empty() {
			empty = j
			break
		}
	}
	if empty < 0 {
		return 0, false
	}
	for j := empty; j > 0; j-- {
		p.a[j] = p.a[j-1]
	}
	p.a[0] = slot{key, value}
	p.n++
	return 0, true
}
