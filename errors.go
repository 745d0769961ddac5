// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "errors"

// Sentinel errors returned by the Strict* mutators and by FromBytes.
// Callers compare against these with errors.Is.
var (
	// ErrAlreadySet is returned by StrictAdd when the value is already a
	// member of the bitmap.
	ErrAlreadySet = errors.New("roaring: value already set")

	// ErrNotSet is returned by StrictRemove when the value is not a member
	// of the bitmap.
	ErrNotSet = errors.New("roaring: value not set")

	// ErrMalformed is returned by FromBytes when the input is too short,
	// has a bad cookie, or otherwise fails to decode as a roaring bitmap.
	ErrMalformed = errors.New("roaring: malformed bitmap")
)
