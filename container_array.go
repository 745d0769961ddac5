// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// arrSet inserts value into a sorted array container, preserving order.
// Succeeds silently (returns false) if the value is already present.
func (c *container) arrSet(value uint16) bool {
	idx, exists := find16(c.Data, value)
	if exists {
		return false
	}

	oldLen := len(c.Data)
	c.Data = append(c.Data, 0)
	if idx < oldLen {
		copy(c.Data[idx+1:], c.Data[idx:])
	}
	c.Data[idx] = value
	return true
}

// arrDel removes value from an array container via binary search + shift.
func (c *container) arrDel(value uint16) bool {
	idx, exists := find16(c.Data, value)
	if !exists {
		return false
	}

	copy(c.Data[idx:], c.Data[idx+1:])
	c.Data = c.Data[:len(c.Data)-1]
	return true
}

// arrHas reports membership via binary search.
func (c *container) arrHas(value uint16) bool {
	_, exists := find16(c.Data, value)
	return exists
}

// arrMin returns the smallest value in an array container.
func (c *container) arrMin() (uint16, bool) {
	if len(c.Data) == 0 {
		return 0, false
	}
	return c.Data[0], true
}

// arrMax returns the largest value in an array container.
func (c *container) arrMax() (uint16, bool) {
	if len(c.Data) == 0 {
		return 0, false
	}
	return c.Data[len(c.Data)-1], true
}

// arrSelectAt returns the value at the given rank.
func (c *container) arrSelectAt(rank int) (uint16, bool) {
	if rank < 0 || rank >= len(c.Data) {
		return 0, false
	}
	return c.Data[rank], true
}

// arrRankOf returns the number of array members <= value.
func (c *container) arrRankOf(value uint16) int {
	idx, found := find16(c.Data, value)
	if found {
		return idx + 1
	}
	return idx
}

// arrMinZero returns the smallest value absent from an array container.
func (c *container) arrMinZero() (uint16, bool) {
	switch {
	case len(c.Data) == 0:
		return 0, true
	case c.Data[0] != 0:
		return 0, true
	}

	for i := 0; i < len(c.Data)-1; i++ {
		if c.Data[i+1] != c.Data[i]+1 {
			return c.Data[i] + 1, true
		}
	}

	if last := c.Data[len(c.Data)-1]; last < 0xFFFF {
		return last + 1, true
	}
	return 0, false
}
