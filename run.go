// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Run is a half-open interval [Start, Start+Length) over the 16-bit low-key
// universe. Length is always >= 1; Start+Length never exceeds 65536. Length
// is an int rather than a uint16 because a single run can legally span the
// entire universe (Length == 65536), which does not fit in 16 bits.
type Run struct {
	Start  uint16
	Length int
}

// End returns the exclusive upper bound of the run.
func (r Run) End() int {
	return int(r.Start) + r.Length
}

// Last returns the largest value contained in the run.
func (r Run) Last() uint16 {
	return uint16(r.End() - 1)
}

// Contains reports whether v falls inside the run.
func (r Run) Contains(v uint16) bool {
	return v >= r.Start && int(v) < r.End()
}

// Overlaps reports whether the two runs share at least one value.
func (r Run) Overlaps(o Run) bool {
	return int(r.Start) < o.End() && int(o.Start) < r.End()
}

// Adjacent reports whether the two runs touch without overlapping, i.e.
// merging them would produce a single contiguous run.
func (r Run) Adjacent(o Run) bool {
	return r.End() == int(o.Start) || o.End() == int(r.Start)
}

// ForEach calls fn for every value in the run, in increasing order.
func (r Run) ForEach(fn func(uint16)) {
	for v := r.Start; ; v++ {
		fn(v)
		if v == r.Last() {
			return
		}
	}
}

// OverlappingRange intersects the run with the half-open integer range
// [lo, hi). Returns ok=false if the two do not intersect.
func (r Run) OverlappingRange(lo, hi int) (start, end int, ok bool) {
	start = int(r.Start)
	if lo > start {
		start = lo
	}
	end = r.End()
	if hi < end {
		end = hi
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}
