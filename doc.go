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

// Package pma implements a Packed-Memory Array: an ordered, self-balancing
// sequence of unique uint64 keys, each carrying a uint64 value, stored in a
// single dense buffer interleaved with deliberate gaps.
//
// The array is kept sorted by key at all times. Adjacent occupied slots are
// never more than a constant number of empty slots apart, which is what lets
// an in-order scan of the buffer run at memory-bandwidth speed while point
// lookups stay O(log n) and updates stay amortized O(log^2 n). The technique
// is due to Bender, Demaine and Farach-Colton (FOCS 2000, SICOMP 2005) and
// Bender and Hu (PODS 2006).
//
// A PMA is organized as a tree of windows over the backing array, implicit
// in the array's indices: the leaves are fixed-size segments, and each
// level up doubles the window size until the root spans the whole array.
// Every window carries a pair of density thresholds (upper and lower) that
// are loosest at the leaves and tighten toward the root. Insert and delete
// each touch one slot directly, then walk from that slot's leaf segment
// upward until they find a window whose density is back within its
// thresholds, and rebalance (pack, then spread) only that window. If even
// the root is out of threshold, the whole array is resized.
//
// Keys and values are both uint64; key 0 is reserved to mean "this slot is
// empty" and must never be inserted by a caller. There are no duplicate
// keys, no custom comparators, and no persistence: a PMA is an in-memory
// structure whose entire contract is create/find/insert/delete/get plus a
// capacity/count pair.
//
// A PMA is not safe for concurrent use. Operations never block and never
// suspend; if a PMA needs to be shared across goroutines, wrap it in an
// external sync.RWMutex — reads are O(log n) and hold the lock briefly,
// writes are amortized O(log^2 n) and may rebalance or resize a large
// fraction of the array, so a plain Mutex is adequate unless reads
// dominate.
package pma
