// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// ctrXor computes the symmetric difference of two containers, spec.md §4.6.
func ctrXor(a, b *container) container {
	switch {
	case a.Type == typeArray && b.Type == typeArray:
		return arrXorArr(a, b)
	case a.Type == typeBitmap && b.Type == typeBitmap:
		return bmpXorBmp(a, b)
	default:
		data := borrowEmptyBitmap()
		bytes := asBytes(data)
		toggleInto(bytes, a)
		toggleInto(bytes, b)
		c := container{Type: typeBitmap, Data: data}
		c.bmpRecount()
		c.optimize()
		return c
	}
}

// arrXorArr computes the symmetric difference of two sorted array
// containers via merge, dropping values present in both.
func arrXorArr(a, b *container) container {
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

// bmpXorBmp computes the symmetric difference of two bitmap containers
// word-by-word.
func bmpXorBmp(a, b *container) container {
	data := make([]uint16, len(a.Data))
	copy(data, a.Data)
	dst := asBitmap(data)
	dst.Xor(b.bmp())
	c := container{Type: typeBitmap, Data: data}
	c.bmpRecount()
	c.optimize()
	return c
}

// toggleInto XORs every value of c into the byte-backed bitmap dst.
func toggleInto(dst []byte, c *container) {
	switch c.Type {
	case typeArray:
		for _, v := range c.Data {
			toggleByteRange(dst, int(v), int(v)+1)
		}
	case typeBitmap:
		src := asBytes(c.Data)
		for i := range dst {
			dst[i] ^= src[i]
		}
	case typeRun:
		for i := 0; i < c.runCount(); i++ {
			r := c.runAt(i)
			toggleByteRange(dst, int(r.Start), r.End())
		}
	}
}
