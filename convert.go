// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/bits"

// optimize rewrites the container by the spec.md §4.5 decision table. An
// array is kept while it holds at most maxArrayLength values, even when a
// run encoding would be smaller; a larger array becomes a bitmap, which
// becomes a run container if it is run-worthy. Called after every mutation
// that can change cardinality or run count.
func (c *container) optimize() {
	switch c.Type {
	case typeArray:
		if len(c.Data) > maxArrayLength {
			c.arrToBmp()
			c.optimize()
		}
	case typeBitmap:
		if int(c.Size) <= maxArrayLength {
			c.bmpToArr()
			return
		}
		if c.bmpShouldConvertToRun() {
			c.bmpToRun()
		}
	case typeRun:
		runs := c.runCount()
		switch {
		case runs > maxRunsPermitted && c.runCardinality() > maxArrayLength:
			c.runToBmp()
		case c.runCardinality() <= maxArrayLength && runs*4 >= c.runCardinality()*2:
			c.runToArr()
		}
	}
}

// arrToBmp converts an array container to a bitmap container.
func (c *container) arrToBmp() {
	card := len(c.Data)
	old := c.Data
	data := borrowEmptyBitmap()
	bytes := asBytes(data)
	for _, v := range old {
		setByteRange(bytes, int(v), int(v)+1)
	}
	c.Data = data
	c.Type = typeBitmap
	c.Size = uint32(card)
}

// bmpToArr converts a bitmap container to an array container.
func (c *container) bmpToArr() {
	data := make([]uint16, 0, c.Size)
	words := c.bmp()
	for i, w := range words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			data = append(data, uint16(i*64+b))
			w &= w - 1
		}
	}
	release(c.Data)
	c.Data = data
	c.Type = typeArray
}

// bmpToRun converts a bitmap container to a run container, scanning for
// maximal 0→1…1→0 spans.
func (c *container) bmpToRun() {
	data := make([]uint16, 0, 16)
	words := c.bmp()
	pos := 0
	const universe = 1 << 16
	for pos < universe {
		for pos < universe && !bitAt(words, pos) {
			pos++
		}
		if pos >= universe {
			break
		}
		start := pos
		for pos < universe && bitAt(words, pos) {
			pos++
		}
		data = append(data, uint16(start), uint16(pos-start-1))
	}
	release(c.Data)
	c.Data = data
	c.Type = typeRun
}

// runToArr converts a run container to an array container.
func (c *container) runToArr() {
	data := make([]uint16, 0, c.runCardinality())
	for i := 0; i < c.runCount(); i++ {
		r := c.runAt(i)
		for v := int(r.Start); v < r.End(); v++ {
			data = append(data, uint16(v))
		}
	}
	c.Data = data
	c.Type = typeArray
}

// runToBmp converts a run container to a bitmap container.
func (c *container) runToBmp() {
	data := borrowEmptyBitmap()
	bytes := asBytes(data)
	for i := 0; i < c.runCount(); i++ {
		r := c.runAt(i)
		setByteRange(bytes, int(r.Start), r.End())
	}
	c.Data = data
	c.Type = typeBitmap
	c.bmpRecount()
}

// bitAt reports whether bit pos of the word slice is set.
func bitAt(words []uint64, pos int) bool {
	return words[pos/64]&(1<<uint(pos%64)) != 0
}
