// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrAnd computes the intersection of two containers, spec.md §4.6.
func ctrAnd(a, b *container) container {
	switch {
	case a.Type == typeArray && b.Type == typeArray:
		return arrAndArr(a, b)
	case a.Type == typeBitmap && b.Type == typeBitmap:
		return bmpAndBmp(a, b)
	case a.Type == typeRun && b.Type == typeRun:
		return runAndRun(a, b)
	case a.Type == typeArray:
		return arrAndOther(a, b)
	case b.Type == typeArray:
		return arrAndOther(b, a)
	case a.Type == typeRun:
		return runAndBmp(a, b)
	default:
		return runAndBmp(b, a)
	}
}

// arrAndArr intersects two sorted array containers via merge.
func arrAndArr(a, b *container) container {
	data := make([]uint16, 0, min(len(a.Data), len(b.Data)))
	i, j := 0, 0
	for i < len(a.Data) && j < len(b.Data) {
		switch {
		case a.Data[i] < b.Data[j]:
			i++
		case a.Data[i] > b.Data[j]:
			j++
		default:
			data = append(data, a.Data[i])
			i++
			j++
		}
	}
	return container{Type: typeArray, Data: data}
}

// arrAndOther intersects an array container with any other container. The
// result can never be larger than a, so it always stays an array.
func arrAndOther(a, b *container) container {
	data := make([]uint16, 0, len(a.Data))
	for _, v := range a.Data {
		if b.contains(v) {
			data = append(data, v)
		}
	}
	return container{Type: typeArray, Data: data}
}

// bmpAndBmp intersects two bitmap containers word-by-word via
// github.com/kelindar/bitmap.
func bmpAndBmp(a, b *container) container {
	data := make([]uint16, len(a.Data))
	copy(data, a.Data)
	dst := asBitmap(data)
	dst.And(b.bmp())
	c := container{Type: typeBitmap, Data: data}
	c.bmpRecount()
	c.optimize()
	return c
}

// runAndRun intersects two run containers by walking both interval lists
// and emitting each overlap as a new run.
func runAndRun(a, b *container) container {
	data := make([]uint16, 0, 16)
	i, j := 0, 0
	for i < a.runCount() && j < b.runCount() {
		ra, rb := a.runAt(i), b.runAt(j)
		if lo, hi, ok := ra.OverlappingRange(int(rb.Start), rb.End()); ok {
			data = append(data, uint16(lo), uint16(hi-lo-1))
		}
		if ra.End() < rb.End() {
			i++
		} else {
			j++
		}
	}
	c := container{Type: typeRun, Data: data}
	c.optimize()
	return c
}

// runAndBmp intersects a run container with a bitmap container by testing
// each value covered by a run directly against the bitmap's backing words.
func runAndBmp(run, bm *container) container {
	data := borrowEmptyBitmap()
	dst := asBitmap(data)
	src := bm.bmp()
	for i := 0; i < run.runCount(); i++ {
		r := run.runAt(i)
		r.ForEach(func(v uint16) {
			if bitAt(src, int(v)) {
				dst.Set(uint32(v))
			}
		})
	}
	c := container{Type: typeBitmap, Data: data}
	c.bmpRecount()
	c.optimize()
	return c
}
