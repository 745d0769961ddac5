// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrOr computes the union of two containers, spec.md §4.6. Mixed-type
// pairs are unioned into a scratch bitmap and compacted by optimize, the
// same accumulate-then-compact approach used throughout this package for
// dense intermediate results.
func ctrOr(a, b *container) container {
	switch {
	case a.Type == typeArray && b.Type == typeArray:
		return arrOrArr(a, b)
	case a.Type == typeBitmap && b.Type == typeBitmap:
		return bmpOrBmp(a, b)
	case a.Type == typeRun && b.Type == typeRun:
		return runOrRun(a, b)
	default:
		data := borrowEmptyBitmap()
		bytes := asBytes(data)
		stampInto(bytes, a)
		stampInto(bytes, b)
		c := container{Type: typeBitmap, Data: data}
		c.bmpRecount()
		c.optimize()
		return c
	}
}

// arrOrArr unions two sorted array containers via merge.
func arrOrArr(a, b *container) container {
	data := make([]uint16, 0, len(a.Data)+len(b.Data))
	i, j := 0, 0
	for i < len(a.Data) && j < len(b.Data) {
		switch {
		case a.Data[i] < b.Data[j]:
			data = append(data, a.Data[i])
			i++
		case a.Data[i] > b.Data[j]:
			data = append(data, b.Data[j])
			j++
		default:
			data = append(data, a.Data[i])
			i++
			j++
		}
	}
	data = append(data, a.Data[i:]...)
	data = append(data, b.Data[j:]...)
	c := container{Type: typeArray, Data: data}
	c.optimize()
	return c
}

// bmpOrBmp unions two bitmap containers word-by-word.
func bmpOrBmp(a, b *container) container {
	data := make([]uint16, len(a.Data))
	copy(data, a.Data)
	dst := asBitmap(data)
	dst.Or(b.bmp())
	c := container{Type: typeBitmap, Data: data}
	c.bmpRecount()
	c.optimize()
	return c
}

// runOrRun unions two run containers via a merge that coalesces overlapping
// or touching runs as it goes.
func runOrRun(a, b *container) container {
	data := make([]uint16, 0, 16)
	i, j := 0, 0
	var curStart, curEnd int
	has := false
	push := func(start, end int) {
		if has && start <= curEnd {
			if end > curEnd {
				curEnd = end
			}
			return
		}
		if has {
			data = append(data, uint16(curStart), uint16(curEnd-curStart-1))
		}
		curStart, curEnd, has = start, end, true
	}
	for i < a.runCount() || j < b.runCount() {
		switch {
		case j >= b.runCount() || (i < a.runCount() && a.runAt(i).Start <= b.runAt(j).Start):
			r := a.runAt(i)
			push(int(r.Start), r.End())
			i++
		default:
			r := b.runAt(j)
			push(int(r.Start), r.End())
			j++
		}
	}
	if has {
		data = append(data, uint16(curStart), uint16(curEnd-curStart-1))
	}
	c := container{Type: typeRun, Data: data}
	c.optimize()
	return c
}

// stampInto ORs every value of c into the byte-backed bitmap dst.
func stampInto(dst []byte, c *container) {
	switch c.Type {
	case typeArray:
		for _, v := range c.Data {
			setByteRange(dst, int(v), int(v)+1)
		}
	case typeBitmap:
		src := asBytes(c.Data)
		for i := range dst {
			dst[i] |= src[i]
		}
	case typeRun:
		for i := 0; i < c.runCount(); i++ {
			r := c.runAt(i)
			setByteRange(dst, int(r.Start), r.End())
		}
	}
}
