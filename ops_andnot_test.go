// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtrAndNotAllRepresentationPairs(t *testing.T) {
	data := []uint16{1, 2, 3, 100, 200}
	other := []uint16{2, 100}
	want := []uint16{1, 3, 200}

	makers := map[string]func(...uint16) *container{
		"arr": newArr,
		"bmp": newBmp,
		"run": newRun,
	}

	for aName, aMake := range makers {
		for bName, bMake := range makers {
			t.Run(aName+"∖"+bName, func(t *testing.T) {
				a := aMake(data...)
				b := bMake(other...)
				result := ctrAndNot(a, b)
				assert.Equal(t, want, valuesOf(bitmapWith(&result)))
			})
		}
	}
}

func TestCtrAndNotNotCommutative(t *testing.T) {
	a := newArr(1, 2, 3)
	b := newArr(2, 3, 4)

	ab := ctrAndNot(a, b)
	ba := ctrAndNot(b, a)

	assert.Equal(t, []uint16{1}, valuesOf(bitmapWith(&ab)))
	assert.Equal(t, []uint16{4}, valuesOf(bitmapWith(&ba)))
}

func TestCtrAndNotRunRunSplits(t *testing.T) {
	a := newRun(1, 2, 3, 4, 5)
	b := newRun(3)
	result := ctrAndNot(a, b)
	assert.Equal(t, typeRun, result.Type)
	assert.Equal(t, []uint16{1, 2, 4, 5}, valuesOf(bitmapWith(&result)))
}

func TestCtrAndNotSelfIsEmpty(t *testing.T) {
	a := newArr(1, 2, 3)
	b := newArr(1, 2, 3)
	result := ctrAndNot(a, b)
	assert.True(t, result.isEmpty())
}
