// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Wire format constants, matching the public Roaring interchange format
// (spec.md §6.2) so a serialized bitmap interoperates with other Roaring
// implementations.
const (
	serialCookieNoRun = uint32(12346) // no container uses run encoding
	serialCookie      = uint32(12347) // low 16 bits of the cookie word when at least one run container is present
	noOffsetThreshold = 4             // below this container count, the offset header is still written unless run containers are present
)

// ToBytes serializes the bitmap to the Roaring wire format.
func (rb *Bitmap) ToBytes() []byte {
	var buf bytes.Buffer
	n := len(rb.containers)
	hasRun := rb.HasRunCompression()

	if hasRun {
		cookie := serialCookie | uint32(n-1)<<16
		binary.Write(&buf, binary.LittleEndian, cookie)
		runBitset := make([]byte, (n+7)/8)
		for i := range rb.containers {
			if rb.containers[i].Type == typeRun {
				runBitset[i/8] |= 1 << uint(i%8)
			}
		}
		buf.Write(runBitset)
	} else {
		binary.Write(&buf, binary.LittleEndian, serialCookieNoRun)
		binary.Write(&buf, binary.LittleEndian, uint32(n))
	}

	// descriptive header: (key, cardinality-1) per container
	for i := range rb.containers {
		binary.Write(&buf, binary.LittleEndian, rb.index[i])
		binary.Write(&buf, binary.LittleEndian, uint16(rb.containers[i].cardinality()-1))
	}

	// offset header, omitted only when run containers are present and the
	// container count is small enough that seeking doesn't pay for itself
	if !hasRun || n >= noOffsetThreshold {
		// offsets are absolute from the start of the stream (spec.md §6.2), so
		// the running total must seed with everything already written plus
		// the offset header itself, not just the body region.
		offset := uint32(buf.Len()) + uint32(n)*4
		for i := range rb.containers {
			binary.Write(&buf, binary.LittleEndian, offset)
			offset += uint32(containerByteSize(&rb.containers[i]))
		}
	}

	for i := range rb.containers {
		writeContainerBody(&buf, &rb.containers[i])
	}
	return buf.Bytes()
}

// FromBytes deserializes a bitmap from the Roaring wire format.
func FromBytes(data []byte) (*Bitmap, error) {
	r := bytes.NewReader(data)

	var cookie uint32
	if err := binary.Read(r, binary.LittleEndian, &cookie); err != nil {
		return nil, fmt.Errorf("roaring: reading cookie: %w", ErrMalformed)
	}

	var n int
	var hasRun bool
	var runBitset []byte
	switch {
	case cookie&0xFFFF == serialCookie:
		hasRun = true
		n = int(cookie>>16) + 1
		runBitset = make([]byte, (n+7)/8)
		if _, err := io.ReadFull(r, runBitset); err != nil {
			return nil, fmt.Errorf("roaring: reading run bitset: %w", ErrMalformed)
		}
	case cookie == serialCookieNoRun:
		var count uint32
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, fmt.Errorf("roaring: reading container count: %w", ErrMalformed)
		}
		n = int(count)
	default:
		return nil, fmt.Errorf("roaring: unrecognized cookie: %w", ErrMalformed)
	}

	keys := make([]uint16, n)
	cards := make([]int, n)
	for i := 0; i < n; i++ {
		if err := binary.Read(r, binary.LittleEndian, &keys[i]); err != nil {
			return nil, fmt.Errorf("roaring: reading container key: %w", ErrMalformed)
		}
		var cardMinus1 uint16
		if err := binary.Read(r, binary.LittleEndian, &cardMinus1); err != nil {
			return nil, fmt.Errorf("roaring: reading container cardinality: %w", ErrMalformed)
		}
		cards[i] = int(cardMinus1) + 1
	}

	if !hasRun || n >= noOffsetThreshold {
		if _, err := r.Seek(int64(n)*4, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("roaring: skipping offset header: %w", ErrMalformed)
		}
	}

	rb := New()
	for i := 0; i < n; i++ {
		isRun := hasRun && runBitset[i/8]&(1<<uint(i%8)) != 0
		c, err := readContainerBody(r, isRun, cards[i])
		if err != nil {
			return nil, err
		}
		rb.ctrAdd(keys[i], len(rb.containers), &c)
	}
	return rb, nil
}

// containerByteSize returns the wire-format body size of c, in bytes.
func containerByteSize(c *container) int {
	switch c.Type {
	case typeArray:
		return len(c.Data) * 2
	case typeBitmap:
		return bytesPerBitmap
	case typeRun:
		return 2 + len(c.Data)*2
	}
	return 0
}

// writeContainerBody writes a single container's wire-format body.
func writeContainerBody(buf *bytes.Buffer, c *container) {
	switch c.Type {
	case typeArray, typeBitmap:
		binary.Write(buf, binary.LittleEndian, c.Data)
	case typeRun:
		binary.Write(buf, binary.LittleEndian, uint16(c.runCount()))
		binary.Write(buf, binary.LittleEndian, c.Data)
	}
}

// readContainerBody reads a single container's wire-format body. Non-run
// containers carry no explicit type tag: cardinality alone decides array
// vs bitmap, per the descriptive header already read.
func readContainerBody(r io.Reader, isRun bool, cardinality int) (container, error) {
	switch {
	case isRun:
		var numRuns uint16
		if err := binary.Read(r, binary.LittleEndian, &numRuns); err != nil {
			return container{}, fmt.Errorf("roaring: reading run count: %w", ErrMalformed)
		}
		pairs := make([]uint16, int(numRuns)*2)
		if err := binary.Read(r, binary.LittleEndian, pairs); err != nil {
			return container{}, fmt.Errorf("roaring: reading run body: %w", ErrMalformed)
		}
		return container{Type: typeRun, Data: pairs}, nil

	case cardinality > maxArrayLength:
		words := make([]uint16, bitmapSize)
		if err := binary.Read(r, binary.LittleEndian, words); err != nil {
			return container{}, fmt.Errorf("roaring: reading bitmap body: %w", ErrMalformed)
		}
		return container{Type: typeBitmap, Data: words, Size: uint32(cardinality)}, nil

	default:
		values := make([]uint16, cardinality)
		if err := binary.Read(r, binary.LittleEndian, values); err != nil {
			return container{}, fmt.Errorf("roaring: reading array body: %w", ErrMalformed)
		}
		return container{Type: typeArray, Data: values}, nil
	}
}
