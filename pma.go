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

// PMA is a Packed-Memory Array holding unique uint64 keys in ascending
// order, each paired with a uint64 value. See the package doc for the
// underlying algorithm. A PMA is not safe for concurrent use; see the
// package doc for how to wrap one.
type PMA struct {
	a      []slot
	lt     layout
	n      int
	opts   options
	closed bool
}

// New creates a PMA seeded with entries, which must be sorted by strictly
// ascending, distinct, nonzero keys (the same precondition pma_create
// places on its caller). Passing an empty seed and no WithMinCapacity hint
// creates an empty PMA at the smallest legal configuration.
func New(entries []Entry, opts ...Option) (*PMA, error) {
	for i, e := range entries {
		if e.Key == 0 {
			panic("pma: seed contains reserved key 0")
		}
		if i > 0 && entries[i-1].Key >= e.Key {
			panic("pma: seed must be sorted by strictly ascending, distinct keys")
		}
	}

	o := getOpts(opts)
	sizeHint := len(entries)
	if o.minCapacity > sizeHint {
		sizeHint = o.minCapacity
	}
	lt := deriveLayout(sizeHint)
	if lt.m > o.maxCapacity {
		return nil, ErrCapacityExceeded
	}

	p := &PMA{lt: lt, opts: o, n: len(entries)}
	p.a = make([]slot, lt.m)
	for i, e := range entries {
		p.a[i] = slot{e.Key, e.Value}
	}
	if p.n > 0 {
		p.spread(0, p.lt.m, p.n)
	}
	return p, nil
}

// Close releases the PMA's backing array. Any further call on p panics.
func (p *PMA) Close() error {
	p.mustOpen()
	p.a = nil
	p.n = 0
	p.closed = true
	return nil
}

// Find reports whether key is present and, if so, its value.
func (p *PMA) Find(key uint64) (value uint64, ok bool) {
	p.mustOpen()
	requireKey(key)
	found, idx := p.find(key)
	if !found {
		return 0, false
	}
	return p.a[idx].value, true
}

// Insert adds (key, value). It returns (false, nil) if key is already
// present — duplicates are rejected, not overwritten. It returns a non-nil
// error only when a resize triggered by this insert would need to exceed
// the configured maximum capacity; in that case the PMA is left exactly as
// it was before the call.
func (p *PMA) Insert(key, value uint64) (bool, error) {
	p.mustOpen()
	requireKey(key)

	found, pred := p.find(key)
	if found {
		return false, nil
	}

	target, inserted := p.insertInSegmentAfter(pred, key, value)
	if !inserted {
		// The target segment is full: re-spread the whole array, then retry.
		if err := p.resize(); err != nil {
			return false, err
		}
		_, pred = p.find(key)
		if target, inserted = p.insertInSegmentAfter(pred, key, value); !inserted {
			panic("pma: segment had no empty slot after a resize")
		}
	}

	start, end, occupancy, withinThreshold := p.findRebalanceWindow(target)
	if withinThreshold {
		p.rebalance(start, end, occupancy)
		return true, nil
	}
	if err := p.resize(); err != nil {
		p.a[target] = slot{}
		p.n--
		return false, err
	}
	return true, nil
}

// Delete removes key. It returns (false, nil) if key is absent. It returns
// a non-nil error only when a resize triggered by this delete would need
// to exceed the configured maximum capacity; in that case the PMA is left
// exactly as it was before the call.
func (p *PMA) Delete(key uint64) (bool, error) {
	p.mustOpen()
	requireKey(key)

	found, idx := p.find(key)
	if !found {
		return false, nil
	}

	removed := p.a[idx]
	p.a[idx] = slot{}
	p.n--

	start, end, occupancy, withinThreshold := p.findRebalanceWindow(idx)
	if withinThreshold {
		p.rebalance(start, end, occupancy)
		return true, nil
	}
	if err := p.resize(); err != nil {
		p.a[idx] = removed
		p.n++
		return false, err
	}
	return true, nil
}

// GetAt returns the key/value pair at slot i. ok is false if the slot is
// empty. GetAt panics if i is outside [0, Capacity()).
func (p *PMA) GetAt(i int) (key, value uint64, ok bool) {
	p.mustOpen()
	if i < 0 || i >= p.lt.m {
		panic("pma: GetAt index out of range")
	}
	s := p.a[i]
	if s.empty() {
		return 0, 0, false
	}
	return s.key, s.value, true
}

// Capacity returns the current size of the backing array, m.
func (p *PMA) Capacity() int {
	p.mustOpen()
	return p.lt.m
}

// Count returns the number of occupied slots, n.
func (p *PMA) Count() int {
	p.mustOpen()
	return p.n
}

// Min returns the smallest key currently stored, and its value.
func (p *PMA) Min() (key, value uint64, ok bool) {
	p.mustOpen()
	for i := 0; i < p.lt.m; i++ {
		if !p.a[i].empty() {
			return p.a[i].key, p.a[i].value, true
		}
	}
	return 0, 0, false
}

// Max returns the largest key currently stored, and its value.
func (p *PMA) Max() (key, value uint64, ok bool) {
	p.mustOpen()
	for i := p.lt.m - 1; i >= 0; i-- {
		if !p.a[i].empty() {
			return p.a[i].key, p.a[i].value, true
		}
	}
	return 0, 0, false
}

// All returns a range-over-func iterator that walks every occupied slot in
// ascending key order. It is pure sugar over a single pass of the backing
// array; it is not a range query and accepts no bounds.
func (p *PMA) All() func(yield func(key, value uint64) bool) {
	p.mustOpen()
	return func(yield func(key, value uint64) bool) {
		for i := 0; i < p.lt.m; i++ {
			s := p.a[i]
			if s.empty() {
				continue
			}
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (p *PMA) mustOpen() {
	if p.closed {
		panic(ErrClosed)
	}
}

func requireKey(key uint64) {
	if key == 0 {
		panic("pma: key 0 is reserved for an empty slot")
	}
}
