// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrAndNot computes a minus b, spec.md §4.6. Unlike AND/OR/XOR this is not
// commutative, so every (a.Type, b.Type) pair needs its own case.
func ctrAndNot(a, b *container) container {
	switch {
	case a.Type == typeArray:
		return arrAndNotOther(a, b)
	case a.Type == typeBitmap && b.Type == typeBitmap:
		return bmpAndNotBmp(a, b)
	case a.Type == typeRun && b.Type == typeRun:
		return runAndNotRun(a, b)
	case a.Type == typeBitmap:
		return bmpAndNotOther(a, b)
	default:
		return runAndNotOther(a, b)
	}
}

// arrAndNotOther keeps the values of array container a that are absent
// from b, for any type of b.
func arrAndNotOther(a, b *container) container {
	data := make([]uint16, 0, len(a.Data))
	for _, v := range a.Data {
		if !b.contains(v) {
			data = append(data, v)
		}
	}
	return container{Type: typeArray, Data: data}
}

// bmpAndNotBmp clears from a every bit also set in b, word-by-word.
func bmpAndNotBmp(a, b *container) container {
	data := make([]uint16, len(a.Data))
	copy(data, a.Data)
	dst := asBitmap(data)
	dst.AndNot(b.bmp())
	c := container{Type: typeBitmap, Data: data}
	c.bmpRecount()
	c.optimize()
	return c
}

// bmpAndNotOther clears from bitmap container a every value present in b
// (an array or run container), via byte-range unsetting.
func bmpAndNotOther(a, b *container) container {
	data := make([]uint16, len(a.Data))
	copy(data, a.Data)
	dst := asBytes(data)
	switch b.Type {
	case typeArray:
		for _, v := range b.Data {
			unsetByteRange(dst, int(v), int(v)+1)
		}
	case typeRun:
		for i := 0; i < b.runCount(); i++ {
			r := b.runAt(i)
			unsetByteRange(dst, int(r.Start), r.End())
		}
	}
	c := container{Type: typeBitmap, Data: data}
	c.bmpRecount()
	c.optimize()
	return c
}

// runAndNotOther materializes run container a into a scratch bitmap, then
// clears every value present in b (an array or bitmap container).
func runAndNotOther(a, b *container) container {
	data := borrowEmptyBitmap()
	dst := asBytes(data)
	for i := 0; i < a.runCount(); i++ {
		r := a.runAt(i)
		setByteRange(dst, int(r.Start), r.End())
	}
	switch b.Type {
	case typeArray:
		for _, v := range b.Data {
			unsetByteRange(dst, int(v), int(v)+1)
		}
	case typeBitmap:
		src := asBytes(b.Data)
		for i := range dst {
			dst[i] &^= src[i]
		}
	}
	c := container{Type: typeBitmap, Data: data}
	c.bmpRecount()
	c.optimize()
	return c
}

// runAndNotRun subtracts every run of b from every run of a, walking both
// interval lists in start order.
func runAndNotRun(a, b *container) container {
	data := make([]uint16, 0, 16)
	for i := 0; i < a.runCount(); i++ {
		ra := a.runAt(i)
		cur := int(ra.Start)
		end := ra.End()
		for j := 0; j < b.runCount() && cur < end; j++ {
			rb := b.runAt(j)
			lo, hi, ok := ra.OverlappingRange(int(rb.Start), rb.End())
			if !ok || hi <= cur {
				continue
			}
			if lo > cur {
				data = append(data, uint16(cur), uint16(lo-cur-1))
			}
			cur = hi
		}
		if cur < end {
			data = append(data, uint16(cur), uint16(end-cur-1))
		}
	}
	c := container{Type: typeRun, Data: data}
	c.optimize()
	return c
}
