// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddContainsRemove(t *testing.T) {
	rb := New()
	assert.Equal(t, 0, rb.Count())
	assert.False(t, rb.Contains(123))

	rb.Add(42)
	assert.True(t, rb.Contains(42))
	assert.False(t, rb.Contains(41))
	assert.Equal(t, 1, rb.Count())

	rb.Add(42) // no-op
	assert.Equal(t, 1, rb.Count())

	rb.Remove(42)
	assert.False(t, rb.Contains(42))
	assert.Equal(t, 0, rb.Count())

	rb.Remove(999) // no-op
	assert.Equal(t, 0, rb.Count())
}

func TestStrictAddRemove(t *testing.T) {
	rb := New()
	assert.NoError(t, rb.StrictAdd(10))
	err := rb.StrictAdd(10)
	assert.True(t, errors.Is(err, ErrAlreadySet))

	assert.NoError(t, rb.StrictRemove(10))
	err = rb.StrictRemove(10)
	assert.True(t, errors.Is(err, ErrNotSet))
}

func TestFlip(t *testing.T) {
	rb := New()
	rb.Flip(5)
	assert.True(t, rb.Contains(5))
	rb.Flip(5)
	assert.False(t, rb.Contains(5))
}

func TestFlipRange(t *testing.T) {
	rb := New()
	rb.Add(5)
	rb.FlipRange(0, 10)
	for i := uint32(0); i < 10; i++ {
		if i == 5 {
			assert.False(t, rb.Contains(i), "value %d", i)
		} else {
			assert.True(t, rb.Contains(i), "value %d", i)
		}
	}
}

func TestCrossContainerBoundaries(t *testing.T) {
	rb := New()
	values := []uint32{0, 65535, 65536, 131071, 131072, 4294967295}
	for _, v := range values {
		rb.Add(v)
	}
	assert.Equal(t, len(values), rb.Count())
	for _, v := range values {
		assert.True(t, rb.Contains(v))
	}
	for _, v := range []uint32{1, 65534, 65537, 131070, 131073} {
		assert.False(t, rb.Contains(v))
	}
}

func TestNthRank(t *testing.T) {
	rb := New()
	values := []uint32{3, 65540, 131100, 5}
	for _, v := range values {
		rb.Add(v)
	}
	// sorted: 3, 5, 65540, 131100
	sorted := []uint32{3, 5, 65540, 131100}
	for rank, want := range sorted {
		v, ok := rb.Nth(rank)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := rb.Nth(4)
	assert.False(t, ok)
	_, ok = rb.Nth(-1)
	assert.False(t, ok)

	assert.Equal(t, 0, rb.Rank(2))
	assert.Equal(t, 1, rb.Rank(3))
	assert.Equal(t, 2, rb.Rank(5))
	assert.Equal(t, 2, rb.Rank(100))
	assert.Equal(t, 3, rb.Rank(65540))
	assert.Equal(t, 4, rb.Rank(131100))
	assert.Equal(t, 4, rb.Rank(999999))
}

func TestSelect(t *testing.T) {
	rb := New()
	rb.Add(0)
	rb.Add(1)
	rb.Add(2)

	assert.Equal(t, 1, rb.Select(0))
	assert.Equal(t, 1, rb.Select(1))
	assert.Equal(t, 1, rb.Select(2))
	assert.Equal(t, 0, rb.Select(3))

	rb.Remove(2)
	assert.Equal(t, 0, rb.Select(2))
}

func TestToArray(t *testing.T) {
	rb := New()
	values := []uint32{5, 1, 65540, 3}
	for _, v := range values {
		rb.Add(v)
	}
	assert.Equal(t, []uint32{1, 3, 5, 65540}, rb.ToArray())
}

func TestHasRunCompression(t *testing.T) {
	rb := New()
	assert.False(t, rb.HasRunCompression())

	for i := 0; i < 5000; i++ {
		rb.Add(uint32(i))
	}
	rb.Optimize()
	assert.True(t, rb.HasRunCompression())
}

func TestClear(t *testing.T) {
	rb := New()
	rb.Add(1)
	rb.Add(2)
	rb.Clear()
	assert.Equal(t, 0, rb.Count())
	assert.False(t, rb.Contains(1))
}

func TestCloneIndependence(t *testing.T) {
	original := New()
	for i := 0; i < 1000; i++ {
		original.Add(uint32(i))
	}

	clone := original.Clone(nil)
	assert.Equal(t, original.Count(), clone.Count())

	original.Add(2000)
	assert.True(t, original.Contains(2000))
	assert.False(t, clone.Contains(2000))

	clone.Remove(500)
	assert.False(t, clone.Contains(500))
	assert.True(t, original.Contains(500))
}

func TestCloneIntoExisting(t *testing.T) {
	original := New()
	original.Add(1)
	original.Add(2)

	existing := New()
	existing.Add(999)

	clone := original.Clone(existing)
	assert.Same(t, existing, clone)
	assert.False(t, clone.Contains(999))
	assert.True(t, clone.Contains(1))
	assert.True(t, clone.Contains(2))
}

func TestAndOrXorAndNot(t *testing.T) {
	a := New()
	for _, v := range []uint32{1, 2, 3, 100} {
		a.Add(v)
	}
	b := New()
	for _, v := range []uint32{2, 3, 4, 200} {
		b.Add(v)
	}

	and := a.Clone(nil)
	and.And(b)
	assert.Equal(t, []uint32{2, 3}, and.ToArray())

	or := a.Clone(nil)
	or.Or(b)
	assert.Equal(t, []uint32{1, 2, 3, 4, 100, 200}, or.ToArray())

	xor := a.Clone(nil)
	xor.Xor(b)
	assert.Equal(t, []uint32{1, 4, 100, 200}, xor.ToArray())

	andNot := a.Clone(nil)
	andNot.AndNot(b)
	assert.Equal(t, []uint32{1, 100}, andNot.ToArray())
}

func TestAndOrXorAndNotVariadic(t *testing.T) {
	a := New()
	a.Add(1)
	a.Add(2)
	a.Add(3)

	b := New()
	b.Add(2)

	c := New()
	c.Add(3)

	a.AndNot(b, c)
	assert.Equal(t, []uint32{1}, a.ToArray())
}

func TestMinMaxMinZero(t *testing.T) {
	rb := New()
	_, ok := rb.Min()
	assert.False(t, ok)
	_, ok = rb.Max()
	assert.False(t, ok)

	min, ok := rb.MinZero()
	assert.True(t, ok)
	assert.Equal(t, uint32(0), min)

	rb.Add(100)
	rb.Add(5000)
	rb.Add(65600)

	got, ok := rb.Min()
	assert.True(t, ok)
	assert.Equal(t, uint32(100), got)

	got, ok = rb.Max()
	assert.True(t, ok)
	assert.Equal(t, uint32(65600), got)

	zero, ok := rb.MinZero()
	assert.True(t, ok)
	assert.Equal(t, uint32(0), zero)
}

func TestMinZeroFirstContainerGap(t *testing.T) {
	rb := New()
	rb.Add(0)
	rb.Add(65536) // leaves a gap of an entirely-absent container 0's tail

	zero, ok := rb.MinZero()
	assert.True(t, ok)
	assert.Equal(t, uint32(1), zero)
}

func TestMinZeroAcrossMissingContainer(t *testing.T) {
	rb := New()
	for i := 0; i < 0x10000; i++ {
		rb.Add(uint32(i)) // fill container 0 completely
	}
	rb.Add(131072) // container 2, skipping container 1 entirely

	zero, ok := rb.MinZero()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x10000), zero)
}

func TestTransitionArrayToBitmapToRun(t *testing.T) {
	rb := New()
	for i := 0; i < 5000; i++ {
		rb.Add(uint32(i))
	}
	assert.Equal(t, 5000, rb.Count())
	assert.True(t, rb.HasRunCompression())

	for i := 100; i < 5000; i++ {
		rb.Remove(uint32(i))
	}
	assert.Equal(t, 100, rb.Count())
	for i := 0; i < 100; i++ {
		assert.True(t, rb.Contains(uint32(i)))
	}
}

func TestRandomizedAgainstReferenceSet(t *testing.T) {
	rb := New()
	reference := make(map[uint32]bool)

	seed := uint32(12345)
	next := func() uint32 {
		seed = seed*1664525 + 1013904223
		return seed % 1_000_000
	}

	for i := 0; i < 5000; i++ {
		v := next()
		switch i % 3 {
		case 0:
			rb.Add(v)
			reference[v] = true
		case 1:
			rb.Remove(v)
			delete(reference, v)
		case 2:
			assert.Equal(t, reference[v], rb.Contains(v))
		}
	}

	assert.Equal(t, len(reference), rb.Count())
	for v := range reference {
		assert.True(t, rb.Contains(v))
	}
}
