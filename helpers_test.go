// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// bitmapWith wraps a single container into a one-container Bitmap under key 0,
// for tests that only care about low-16-bit behavior.
func bitmapWith(c *container) *Bitmap {
	rb := New()
	rb.ctrAdd(0, 0, c)
	return rb
}

// valuesOf drains a Bitmap's members (low 16 bits only) in ascending order.
func valuesOf(rb *Bitmap) []uint16 {
	out := []uint16{}
	rb.Range(func(x uint32) bool {
		out = append(out, uint16(x))
		return true
	})
	return out
}

func newArr(data ...uint16) *container {
	return newTestContainer(typeArray, data...)
}

func newBmp(data ...uint16) *container {
	return newTestContainer(typeBitmap, data...)
}

func newRun(data ...uint16) *container {
	return newTestContainer(typeRun, data...)
}

// newTestContainer builds a container of the given representation directly
// from its set-level constructors, bypassing optimize so the representation
// under test is pinned regardless of how small or large data is.
func newTestContainer(typ ctype, data ...uint16) *container {
	var c container
	switch typ {
	case typeBitmap:
		c = newBitmap()
	case typeRun:
		c = emptyRun()
	default:
		c = emptyArray()
	}

	for _, v := range data {
		c.set(v)
	}
	return &c
}
