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

// find performs the gap-tolerant binary search: it returns (true, idx) with
// p.a[idx].key == key on a hit, or (false, idx) on a miss, where idx is
// the largest occupied index with a key strictly less than key, or -1 if no
// such index exists.
//
// The search proceeds as an ordinary binary search on [from, to], except
// that probing mid may land on an empty slot: in that case it scans
// leftward within [from, mid] for the nearest occupied slot before
// comparing. Indices are signed so that "no predecessor" is a real value,
// never an unsigned underflow.
func (p *PMA) find(key uint64) (bool, int64) {
	from := int64(0)
	to := int64(p.lt.m) - 1
	for from < to {
		mid := from + (to-from)/2
		i := mid
		for i >= from && p.a[i].empty() {
			i--
		}
		switch {
		case i < from:
			// [from, mid] is entirely empty.
			from = mid + 1
		case p.a[i].key == key:
			return true, i
		case p.a[i].key < key:
			from = mid + 1
		case i == 0:
			// the very first slot is occupied and already exceeds key: by
			// the order invariant nothing in the array can precede it.
			return false, -1
		default:
			to = i - 1
		}
	}
	// from == to, or from == to+1 when the last probe's occupied slot was
	// from itself and exceeded key.
	if p.a[from].empty() || p.a[from].key > key {
		idx := from - 1
		for idx >= 0 && p.a[idx].empty() {
			idx--
		}
		return false, idx
	}
	if p.a[from].key == key {
		return true, from
	}
	return false, from
}
