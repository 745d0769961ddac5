// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"math/bits"

	"github.com/kelindar/bitmap"
)

// newBitmap returns an empty bitmap container with a freshly zeroed
// 8192-byte backing array.
func newBitmap() container {
	return container{Type: typeBitmap, Data: make([]uint16, bitmapSize)}
}

// bmp reinterprets the container's backing array as a kelindar/bitmap
// Bitmap, for the bulk word-level AND/OR/XOR/ANDNOT operations in §4.6.
func (c *container) bmp() bitmap.Bitmap {
	return asBitmap(c.Data)
}

// bmpSet sets bit value, returning true if it was not already set.
func (c *container) bmpSet(value uint16) bool {
	bm := c.bmp()
	if bm.Contains(uint32(value)) {
		return false
	}
	bm.Set(uint32(value))
	c.Size++
	return true
}

// bmpDel clears bit value, returning true if it was previously set.
func (c *container) bmpDel(value uint16) bool {
	bm := c.bmp()
	if !bm.Contains(uint32(value)) {
		return false
	}
	bm.Remove(uint32(value))
	c.Size--
	return true
}

// bmpHas reports whether bit value is set.
func (c *container) bmpHas(value uint16) bool {
	return c.bmp().Contains(uint32(value))
}

// bmpRecount recomputes Size from the backing words, used after bulk
// byte-range or set-operation mutation where Size can't be tracked
// incrementally.
func (c *container) bmpRecount() {
	c.Size = uint32(c.bmp().Count())
}

// bmpMin returns the smallest set bit.
func (c *container) bmpMin() (uint16, bool) {
	words := c.bmp()
	for i, w := range words {
		if w != 0 {
			return uint16(i*64 + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

// bmpMax returns the largest set bit.
func (c *container) bmpMax() (uint16, bool) {
	words := c.bmp()
	for i := len(words) - 1; i >= 0; i-- {
		if w := words[i]; w != 0 {
			return uint16(i*64 + 63 - bits.LeadingZeros64(w)), true
		}
	}
	return 0, false
}

// bmpMinZero returns the smallest clear bit.
func (c *container) bmpMinZero() (uint16, bool) {
	words := c.bmp()
	for i, w := range words {
		if w != ^uint64(0) {
			return uint16(i*64 + bits.TrailingZeros64(^w)), true
		}
	}
	return 0, false
}

// bmpSelectAt returns the value at the given rank.
func (c *container) bmpSelectAt(rank int) (uint16, bool) {
	words := c.bmp()
	for i, w := range words {
		pop := bits.OnesCount64(w)
		if rank < pop {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				if rank == 0 {
					return uint16(i*64 + b), true
				}
				rank--
				w &= w - 1
			}
		}
		rank -= pop
	}
	return 0, false
}

// bmpRankOf returns the number of bits <= value that are set.
func (c *container) bmpRankOf(value uint16) int {
	words := c.bmp()
	full := int(value) / 64
	rank := 0
	for i := 0; i < full && i < len(words); i++ {
		rank += bits.OnesCount64(words[i])
	}
	if full < len(words) {
		rem := uint(value%64) + 1
		mask := uint64(1)<<rem - 1
		if rem == 64 {
			mask = ^uint64(0)
		}
		rank += bits.OnesCount64(words[full] & mask)
	}
	return rank
}

// bmpSetRange sets bits in the half-open range [start, start+length) using
// whole-byte fast paths, spec.md §4.3.
func (c *container) bmpSetRange(start, length int) {
	if length <= 0 {
		return
	}
	setByteRange(asBytes(c.Data), start, start+length)
	c.bmpRecount()
}

// bmpUnsetRange clears bits in [start, start+length).
func (c *container) bmpUnsetRange(start, length int) {
	if length <= 0 {
		return
	}
	unsetByteRange(asBytes(c.Data), start, start+length)
	c.bmpRecount()
}

// setByteRange sets bits [start, end) of a byte slice using a first-byte
// mask, a whole-byte interior fill, and a last-byte mask.
func setByteRange(data []byte, start, end int) {
	if start >= end {
		return
	}
	firstByte, lastByte := start/8, (end-1)/8

	if firstByte == lastByte {
		head := byte(0xFF << uint(start%8))
		tail := byte(0xFF >> uint(7-(end-1)%8))
		data[firstByte] |= head & tail
		return
	}

	data[firstByte] |= byte(0xFF << uint(start%8))
	for b := firstByte + 1; b < lastByte; b++ {
		data[b] = 0xFF
	}
	data[lastByte] |= byte(0xFF >> uint(7-(end-1)%8))
}

// unsetByteRange clears bits [start, end) using the same byte-mask scheme.
func unsetByteRange(data []byte, start, end int) {
	if start >= end {
		return
	}
	firstByte, lastByte := start/8, (end-1)/8

	if firstByte == lastByte {
		head := byte(0xFF << uint(start%8))
		tail := byte(0xFF >> uint(7-(end-1)%8))
		data[firstByte] &^= head & tail
		return
	}

	data[firstByte] &^= byte(0xFF << uint(start%8))
	for b := firstByte + 1; b < lastByte; b++ {
		data[b] = 0x00
	}
	data[lastByte] &^= byte(0xFF >> uint(7-(end-1)%8))
}

// toggleByteRange flips bits [start, end), the same byte-mask scheme as
// setByteRange/unsetByteRange but XOR instead of OR/AND-NOT.
func toggleByteRange(data []byte, start, end int) {
	if start >= end {
		return
	}
	firstByte, lastByte := start/8, (end-1)/8

	if firstByte == lastByte {
		head := byte(0xFF << uint(start%8))
		tail := byte(0xFF >> uint(7-(end-1)%8))
		data[firstByte] ^= head & tail
		return
	}

	data[firstByte] ^= byte(0xFF << uint(start%8))
	for b := firstByte + 1; b < lastByte; b++ {
		data[b] ^= 0xFF
	}
	data[lastByte] ^= byte(0xFF >> uint(7-(end-1)%8))
}

// bmpCountRuns counts 0→1 bit transitions, stopping early once the count
// reaches limit (the caller only needs to know whether the true count is
// below some threshold, spec.md §4.3).
func (c *container) bmpCountRuns(limit int) int {
	data := asBytes(c.Data)
	n := len(data)
	runs := 0
	for i := 0; i < n; i++ {
		b := data[i]
		runs += bits.OnesCount8((b << 1) &^ b)
		if i+1 < n && b&0x80 != 0 && data[i+1]&0x01 == 0 {
			runs++
		}
		if runs >= limit {
			return runs
		}
	}
	if n > 0 && data[n-1]&0x80 != 0 {
		runs++
	}
	return runs
}

// bmpShouldConvertToRun reports whether the run encoding (2 bytes per run)
// would be strictly smaller than the 8 kB flat bitmap, i.e. count_runs() <
// cardinality/2, spec.md §4.3.
func (c *container) bmpShouldConvertToRun() bool {
	threshold := int(c.Size) / 2
	if threshold == 0 {
		return false
	}
	return c.bmpCountRuns(threshold) < threshold
}
