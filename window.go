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

// findRebalanceWindow walks the implicit threshold tree from the leaf
// segment containing i upward, looking for the smallest aligned window
// whose density falls within [lower, upper). occupancy is extended
// outward from the previous, smaller window's bounds at each step — it is
// never recomputed from scratch. It returns ok == false if even the root
// window (height h-1) is out of threshold, in which case the caller must
// resize.
func (p *PMA) findRebalanceWindow(i int64) (start, end, occupancy int, ok bool) {
	occ := 0
	if !p.a[i].empty() {
		occ = 1
	}
	left, right := i-1, i+1

	var windowStart, windowEnd int64
	var upper, lower float64
	height := 0
	for {
		size := int64(p.lt.windowSize(height))
		window := i / size
		windowStart = window * size
		windowEnd = windowStart + size

		for left >= windowStart {
			if !p.a[left].empty() {
				occ++
			}
			left--
		}
		for right < windowEnd {
			if !p.a[right].empty() {
				occ++
			}
			right++
		}

		density := float64(occ) / float64(size)
		upper, lower = p.lt.thresholds(height)
		if (density >= lower && density < upper) || height == p.lt.h-1 {
			break
		}
		height++
	}

	density := float64(occ) / float64(windowEnd-windowStart)
	return int(windowStart), int(windowEnd), occ, density >= lower && density < upper
}
