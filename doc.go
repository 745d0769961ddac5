// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package roaring implements a compressed bitmap for sets of uint32 values.
//
// Values are split into 65536-value buckets keyed by their high 16 bits.
// Each bucket is stored as one of three representations — a sorted array,
// a flat bitmap, or a run list — chosen automatically to minimize memory,
// and converted between as the bucket's contents change. The wire format
// produced by ToBytes is compatible with other Roaring bitmap
// implementations.
package roaring
