// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"sync"
	"unsafe"

	"github.com/kelindar/bitmap"
)

// bitmapSize is the length, in uint16 words, of a bitmap container's Data:
// 4096 words * 2 bytes = 8192 bytes = 65536 bits.
const bitmapSize = 4096

var pool = sync.Pool{
	New: func() any {
		return make([]uint16, 0, bitmapSize)
	},
}

func borrowArray() []uint16 {
	return pool.Get().([]uint16)
}

// borrowEmptyBitmap returns a zeroed 4096-word buffer sized for a bitmap
// container, reusing pooled memory when available.
func borrowEmptyBitmap() []uint16 {
	arr := borrowArray()
	if cap(arr) < bitmapSize {
		arr = make([]uint16, bitmapSize)
	} else {
		arr = arr[:bitmapSize]
		for i := range arr {
			arr[i] = 0
		}
	}
	return arr
}

func release(data []uint16) {
	pool.Put(data[:0])
}

// asBitmap reinterprets a bitmap container's backing []uint16 as a
// github.com/kelindar/bitmap Bitmap ([]uint64) without copying, so bulk
// AND/OR/XOR/ANDNOT can delegate to that package.
func asBitmap(data []uint16) bitmap.Bitmap {
	if len(data) == 0 {
		return nil
	}
	return bitmap.Bitmap(unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4))
}

// asBytes reinterprets a bitmap container's backing []uint16 as a []byte of
// the same memory, used by the byte-mask set_range/unset_range/count_runs
// primitives spec.md §4.3 specifies in terms of byte masks.
func asBytes(data []uint16) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*2)
}
