// SPDX-License-Identifier: MIT

package phtree

import "errors"

// Construction-time configuration errors. These are the only errors
// the public API returns; everything else encountered while descending
// or mutating an already-valid tree indicates a broken invariant and
// panics instead, the same way the teacher's own node code treats a
// wrong-type child as unreachable rather than recoverable.
var (
	// ErrDimensions is returned by New when k is outside [1, MaxDims].
	ErrDimensions = errors.New("phtree: dimensions out of range")

	// ErrWidth is returned by New when w is not one of 8, 16, 32, 64.
	ErrWidth = errors.New("phtree: key width must be 8, 16, 32 or 64")
)
