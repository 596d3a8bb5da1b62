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

// pack compacts the occupied slots in [from, to) into [from, from+n),
// preserving order, leaving [from+n, to) empty.
func (p *PMA) pack(from, to, n int) {
	read, write := from, from
	for read < to {
		if !p.a[read].empty() {
			if read > write {
				p.a[write] = p.a[read]
				p.a[read] = slot{}
			}
			write++
		}
		read++
	}
	if write-from != n {
		panic("pma: pack wrote a different count than expected")
	}
}

// spread distributes the n densely packed elements at [from, from+n) across
// the whole window [from, to), evenly spaced. It requires [from, from+n) to
// already be occupied in order and [from+n, to) to be empty — i.e. it must
// be called right after pack.
//
// Spacing uses 8-bit fixed-point arithmetic (offsets shifted left by 8) so
// that the write cursor can step by a fractional amount without floating
// point: frequency = ((to-from) << 8) / n. Copying proceeds right to left so
// that the write cursor, which moves left faster than the read cursor in
// early iterations, never catches up and clobbers an element still to be
// read. This is also why m is capped at 2^56-1: the top 8 bits of a slot
// offset are reserved for the fractional part here.
func (p *PMA) spread(from, to, n int) {
	capacity := to - from
	frequency := (uint64(capacity) << 8) / uint64(n)
	read := int64(from + n - 1)
	write := uint64(to)<<8 - frequency
	for read >= int64(from) && int64(write>>8) > read {
		p.a[write>>8] = p.a[read]
		p.a[read] = slot{}
		read--
		write -= frequency
	}
}

// rebalance restores a window's density to within threshold by packing its
// n live elements to the left, then spreading them evenly across the full
// window.
func (p *PMA) rebalance(from, to, n int) {
	if n == 0 {
		return
	}
	p.pack(from, to, n)
	p.spread(from, to, n)
}
