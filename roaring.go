// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "fmt"

// Bitmap is a compressed set of uint32 values, split into 65536-value
// buckets (the high 16 bits of each member) and stored as one of three
// adaptive container representations per bucket, spec.md §3-4.
type Bitmap struct {
	containers []container // containers in sorted order by key
	index      []uint16    // container keys, parallel to containers
}

// New creates a new, empty bitmap.
func New() *Bitmap {
	return &Bitmap{}
}

// Add inserts x into the bitmap. Adding a value already present is a no-op.
func (rb *Bitmap) Add(x uint32) {
	hi, lo := uint16(x>>16), uint16(x)
	idx, exists := find16(rb.index, hi)
	if !exists {
		c := emptyArray()
		rb.ctrAdd(hi, idx, &c)
	}
	rb.containers[idx].set(lo)
	rb.containers[idx].optimize()
}

// StrictAdd inserts x into the bitmap, returning ErrAlreadySet if x was
// already a member.
func (rb *Bitmap) StrictAdd(x uint32) error {
	hi, lo := uint16(x>>16), uint16(x)
	idx, exists := find16(rb.index, hi)
	if !exists {
		c := emptyArray()
		rb.ctrAdd(hi, idx, &c)
	}
	if !rb.containers[idx].set(lo) {
		return fmt.Errorf("roaring: %d: %w", x, ErrAlreadySet)
	}
	rb.containers[idx].optimize()
	return nil
}

// Remove deletes x from the bitmap. Removing a value not present is a
// no-op.
func (rb *Bitmap) Remove(x uint32) {
	hi, lo := uint16(x>>16), uint16(x)
	idx, exists := find16(rb.index, hi)
	if !exists {
		return
	}
	if rb.containers[idx].remove(lo) {
		rb.containers[idx].optimize()
	}
	if rb.containers[idx].isEmpty() {
		rb.ctrDel(idx)
	}
}

// StrictRemove deletes x from the bitmap, returning ErrNotSet if x was not
// a member.
func (rb *Bitmap) StrictRemove(x uint32) error {
	hi, lo := uint16(x>>16), uint16(x)
	idx, exists := find16(rb.index, hi)
	if !exists {
		return fmt.Errorf("roaring: %d: %w", x, ErrNotSet)
	}
	if !rb.containers[idx].remove(lo) {
		return fmt.Errorf("roaring: %d: %w", x, ErrNotSet)
	}
	rb.containers[idx].optimize()
	if rb.containers[idx].isEmpty() {
		rb.ctrDel(idx)
	}
	return nil
}

// Contains reports whether x is a member of the bitmap.
func (rb *Bitmap) Contains(x uint32) bool {
	hi, lo := uint16(x>>16), uint16(x)
	idx, exists := find16(rb.index, hi)
	if !exists {
		return false
	}
	return rb.containers[idx].contains(lo)
}

// Flip toggles membership of x: adds it if absent, removes it if present.
func (rb *Bitmap) Flip(x uint32) {
	if rb.Contains(x) {
		rb.Remove(x)
	} else {
		rb.Add(x)
	}
}

// FlipRange toggles membership of every value in [lo, hi).
func (rb *Bitmap) FlipRange(lo, hi uint32) {
	for x := lo; x < hi; x++ {
		rb.Flip(x)
	}
}

// Count returns the number of members of the bitmap.
func (rb *Bitmap) Count() int {
	count := 0
	for i := range rb.containers {
		count += rb.containers[i].cardinality()
	}
	return count
}

// Cardinality is an alias for Count.
func (rb *Bitmap) Cardinality() int {
	return rb.Count()
}

// Select returns 1 if x is a member of the bitmap, 0 otherwise, spec.md
// §4.7/§6.1. It is presence expressed as an integer, not an order statistic.
func (rb *Bitmap) Select(x uint32) int {
	if rb.Contains(x) {
		return 1
	}
	return 0
}

// Nth returns the value at the given rank (0-indexed in ascending order),
// or false if the bitmap has fewer than rank+1 members. Nth is Rank's
// inverse, supplementing spec.md's Rank addition.
func (rb *Bitmap) Nth(rank int) (uint32, bool) {
	if rank < 0 {
		return 0, false
	}
	for i := range rb.containers {
		card := rb.containers[i].cardinality()
		if rank < card {
			base := uint32(rb.index[i]) << 16
			lo, ok := rb.containers[i].selectAt(rank)
			return base | uint32(lo), ok
		}
		rank -= card
	}
	return 0, false
}

// Rank returns the number of members of the bitmap that are <= x.
func (rb *Bitmap) Rank(x uint32) int {
	hi, lo := uint16(x>>16), uint16(x)
	rank := 0
	for i := range rb.containers {
		switch {
		case rb.index[i] < hi:
			rank += rb.containers[i].cardinality()
		case rb.index[i] == hi:
			rank += rb.containers[i].rankOf(lo)
			return rank
		default:
			return rank
		}
	}
	return rank
}

// ToArray materializes every member of the bitmap into a sorted slice.
func (rb *Bitmap) ToArray() []uint32 {
	out := make([]uint32, 0, rb.Count())
	rb.Range(func(x uint32) bool {
		out = append(out, x)
		return true
	})
	return out
}

// HasRunCompression reports whether any container currently uses run
// encoding.
func (rb *Bitmap) HasRunCompression() bool {
	for i := range rb.containers {
		if rb.containers[i].Type == typeRun {
			return true
		}
	}
	return false
}

// Clear empties the bitmap.
func (rb *Bitmap) Clear() {
	rb.containers = rb.containers[:0]
	rb.index = rb.index[:0]
}

// Optimize re-evaluates the representation of every container, spec.md
// §4.5. Add/Remove already call this per-container; Optimize is for bulk
// changes made outside those paths, such as after FromBytes.
func (rb *Bitmap) Optimize() {
	for i := range rb.containers {
		rb.containers[i].optimize()
	}
}

// Clone returns an independent copy of the bitmap, sharing container
// backing arrays copy-on-write until either side mutates them.
func (rb *Bitmap) Clone(into *Bitmap) *Bitmap {
	if into == nil {
		into = New()
	}

	if cap(into.containers) < len(rb.containers) {
		into.containers = make([]container, len(rb.containers))
	}
	into.containers = into.containers[:len(rb.containers)]
	for i := range rb.containers {
		rb.containers[i].Shared = true
	}
	copy(into.containers, rb.containers)

	if cap(into.index) < len(rb.index) {
		into.index = make([]uint16, len(rb.index))
	}
	into.index = into.index[:len(rb.index)]
	copy(into.index, rb.index)
	return into
}

// And intersects the bitmap in place with other and any extra bitmaps.
func (rb *Bitmap) And(other *Bitmap, extra ...*Bitmap) {
	rb.and(other)
	for _, bm := range extra {
		if bm != nil {
			rb.and(bm)
		}
	}
}

// AndNot removes from the bitmap, in place, every member of other and any
// extra bitmaps.
func (rb *Bitmap) AndNot(other *Bitmap, extra ...*Bitmap) {
	rb.andNot(other)
	for _, bm := range extra {
		if bm != nil {
			rb.andNot(bm)
		}
	}
}

// Or unions the bitmap in place with other and any extra bitmaps.
func (rb *Bitmap) Or(other *Bitmap, extra ...*Bitmap) {
	rb.or(other)
	for _, bm := range extra {
		if bm != nil {
			rb.or(bm)
		}
	}
}

// Xor computes the symmetric difference of the bitmap, in place, with
// other and any extra bitmaps.
func (rb *Bitmap) Xor(other *Bitmap, extra ...*Bitmap) {
	rb.xor(other)
	for _, bm := range extra {
		if bm != nil {
			rb.xor(bm)
		}
	}
}

// Min returns the smallest member of the bitmap.
func (rb *Bitmap) Min() (uint32, bool) {
	for i := 0; i < len(rb.containers); i++ {
		if v, ok := rb.containers[i].min(); ok {
			return uint32(rb.index[i])<<16 | uint32(v), true
		}
	}
	return 0, false
}

// Max returns the largest member of the bitmap.
func (rb *Bitmap) Max() (uint32, bool) {
	for i := len(rb.containers) - 1; i >= 0; i-- {
		if v, ok := rb.containers[i].max(); ok {
			return uint32(rb.index[i])<<16 | uint32(v), true
		}
	}
	return 0, false
}

// MinZero returns the smallest value not in the bitmap.
func (rb *Bitmap) MinZero() (uint32, bool) {
	if len(rb.containers) == 0 || rb.index[0] > 0 {
		return 0, true
	}

	if v, ok := rb.containers[0].minZero(); ok {
		return uint32(rb.index[0])<<16 | uint32(v), true
	}

	for i := 0; i < len(rb.containers)-1; i++ {
		cur, next := rb.index[i], rb.index[i+1]
		if next > cur+1 {
			return uint32(cur+1) << 16, true
		}
		if v, ok := rb.containers[i+1].minZero(); ok {
			return uint32(next)<<16 | uint32(v), true
		}
	}

	if last := rb.index[len(rb.containers)-1]; last < 0xFFFF {
		return uint32(last+1) << 16, true
	}
	return 0, false
}

// ---------------------------------------- set algebra ----------------------------------------

func (rb *Bitmap) and(other *Bitmap) {
	result := make([]container, 0, min(len(rb.containers), len(other.containers)))
	idx := make([]uint16, 0, min(len(rb.index), len(other.index)))

	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		switch {
		case rb.index[i] < other.index[j]:
			i++
		case rb.index[i] > other.index[j]:
			j++
		default:
			c := ctrAnd(&rb.containers[i], &other.containers[j])
			if !c.isEmpty() {
				result = append(result, c)
				idx = append(idx, rb.index[i])
			}
			i++
			j++
		}
	}
	rb.containers, rb.index = result, idx
}

func (rb *Bitmap) or(other *Bitmap) {
	result := make([]container, 0, len(rb.containers)+len(other.containers))
	idx := make([]uint16, 0, len(rb.index)+len(other.index))

	i, j := 0, 0
	for i < len(rb.containers) || j < len(other.containers) {
		switch {
		case j >= len(other.containers) || (i < len(rb.containers) && rb.index[i] < other.index[j]):
			result = append(result, rb.containers[i])
			idx = append(idx, rb.index[i])
			i++
		case i >= len(rb.containers) || other.index[j] < rb.index[i]:
			other.containers[j].Shared = true
			result = append(result, other.containers[j])
			idx = append(idx, other.index[j])
			j++
		default:
			result = append(result, ctrOr(&rb.containers[i], &other.containers[j]))
			idx = append(idx, rb.index[i])
			i++
			j++
		}
	}
	rb.containers, rb.index = result, idx
}

func (rb *Bitmap) xor(other *Bitmap) {
	result := make([]container, 0, len(rb.containers)+len(other.containers))
	idx := make([]uint16, 0, len(rb.index)+len(other.index))

	i, j := 0, 0
	for i < len(rb.containers) || j < len(other.containers) {
		switch {
		case j >= len(other.containers) || (i < len(rb.containers) && rb.index[i] < other.index[j]):
			result = append(result, rb.containers[i])
			idx = append(idx, rb.index[i])
			i++
		case i >= len(rb.containers) || other.index[j] < rb.index[i]:
			other.containers[j].Shared = true
			result = append(result, other.containers[j])
			idx = append(idx, other.index[j])
			j++
		default:
			c := ctrXor(&rb.containers[i], &other.containers[j])
			if !c.isEmpty() {
				result = append(result, c)
				idx = append(idx, rb.index[i])
			}
			i++
			j++
		}
	}
	rb.containers, rb.index = result, idx
}

func (rb *Bitmap) andNot(other *Bitmap) {
	result := make([]container, 0, len(rb.containers))
	idx := make([]uint16, 0, len(rb.index))

	i, j := 0, 0
	for i < len(rb.containers) {
		switch {
		case j >= len(other.containers) || rb.index[i] < other.index[j]:
			result = append(result, rb.containers[i])
			idx = append(idx, rb.index[i])
			i++
		case rb.index[i] > other.index[j]:
			j++
		default:
			c := ctrAndNot(&rb.containers[i], &other.containers[j])
			if !c.isEmpty() {
				result = append(result, c)
				idx = append(idx, rb.index[i])
			}
			i++
			j++
		}
	}
	rb.containers, rb.index = result, idx
}

// ---------------------------------------- container index ----------------------------------------

// ctrAdd inserts a container at position pos under key hi, keeping both
// containers and index sorted by key.
func (rb *Bitmap) ctrAdd(hi uint16, pos int, c *container) {
	rb.containers = append(rb.containers, container{})
	if pos < len(rb.containers)-1 {
		copy(rb.containers[pos+1:], rb.containers[pos:len(rb.containers)-1])
	}
	rb.containers[pos] = *c

	rb.index = append(rb.index, 0)
	if pos < len(rb.index)-1 {
		copy(rb.index[pos+1:], rb.index[pos:len(rb.index)-1])
	}
	rb.index[pos] = hi
}

// ctrDel removes the container at position pos.
func (rb *Bitmap) ctrDel(pos int) {
	if pos < 0 || pos >= len(rb.containers) {
		return
	}
	copy(rb.containers[pos:], rb.containers[pos+1:])
	rb.containers = rb.containers[:len(rb.containers)-1]

	copy(rb.index[pos:], rb.index[pos+1:])
	rb.index = rb.index[:len(rb.index)-1]
}

// find16 returns the first index whose value is >= target. If the value
// equals target, found == true. If not found, index is the insertion
// point that keeps the slice sorted.
//
//go:nosplit
func find16(a []uint16, target uint16) (index int, found bool) {
	n := len(a)
	switch {
	case n == 0:
		return 0, false
	case target <= a[0]:
		return 0, target == a[0]
	case target > a[n-1]:
		return n, false
	}

	lo, hi := 0, n
	for hi-lo > 16 {
		mid := (lo + hi) >> 1
		switch {
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	i := lo
	for ; i+3 < hi; i += 4 {
		switch {
		case a[i] >= target:
			return i, a[i] == target
		case a[i+1] >= target:
			return i + 1, a[i+1] == target
		case a[i+2] >= target:
			return i + 2, a[i+2] == target
		case a[i+3] >= target:
			return i + 3, a[i+3] == target
		}
	}

	for ; i < hi; i++ {
		if a[i] >= target {
			return i, a[i] == target
		}
	}

	return hi, hi < n && a[hi] == target
}
