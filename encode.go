// SPDX-License-Identifier: MIT

package phtree

import "math"

// This file maps signed integers, floats and axis-aligned boxes onto
// the order-preserving unsigned Key space the tree stores internally.
// None of this is specific to PH-Tree: it's the same sign-bit trick
// used by any radix structure that has to index signed data.

// EncodeInt8 maps a signed byte onto Key, preserving order.
func EncodeInt8(v int8) Key { return Key(uint8(v)) ^ 1<<7 }

// EncodeInt16 maps a signed 16-bit integer onto Key, preserving order.
func EncodeInt16(v int16) Key { return Key(uint16(v)) ^ 1<<15 }

// EncodeInt32 maps a signed 32-bit integer onto Key, preserving order.
func EncodeInt32(v int32) Key { return Key(uint32(v)) ^ 1<<31 }

// EncodeInt64 maps a signed 64-bit integer onto Key, preserving order.
func EncodeInt64(v int64) Key { return Key(uint64(v)) ^ 1<<63 }

// DecodeInt8 is the inverse of EncodeInt8.
func DecodeInt8(k Key) int8 { return int8(uint8(k) ^ 1<<7) }

// DecodeInt16 is the inverse of EncodeInt16.
func DecodeInt16(k Key) int16 { return int16(uint16(k) ^ 1<<15) }

// DecodeInt32 is the inverse of EncodeInt32.
func DecodeInt32(k Key) int32 { return int32(uint32(k) ^ 1<<31) }

// DecodeInt64 is the inverse of EncodeInt64.
func DecodeInt64(k Key) int64 { return int64(uint64(k) ^ 1<<63) }

// EncodeFloat64 maps a float64 onto Key, preserving the IEEE-754 total
// order. Negative values are bitwise inverted; non-negative values
// (including -0, which compares >= 0) have their sign bit cleared then
// set, which folds -0 and +0 onto the same key.
func EncodeFloat64(v float64) Key {
	bits := math.Float64bits(v)
	if v >= 0 {
		bits &= math.MaxInt64
		bits ^= 1 << 63
	} else {
		bits = ^bits
	}
	return Key(bits)
}

// DecodeFloat64 is the inverse of EncodeFloat64, modulo the -0/+0 merge.
func DecodeFloat64(k Key) float64 {
	bits := uint64(k)
	if bits&(1<<63) != 0 {
		bits &^= 1 << 63
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits)
}

// EncodeFloat32 maps a float32 onto Key the same way EncodeFloat64 does.
func EncodeFloat32(v float32) Key {
	bits := math.Float32bits(v)
	if v >= 0 {
		bits &= math.MaxInt32
		bits ^= 1 << 31
	} else {
		bits = ^bits
	}
	return Key(bits)
}

// DecodeFloat32 is the inverse of EncodeFloat32, modulo the -0/+0 merge.
func DecodeFloat32(k Key) float32 {
	bits := uint32(k)
	if bits&(1<<31) != 0 {
		bits &^= 1 << 31
	} else {
		bits = ^bits
	}
	return math.Float32frombits(bits)
}

// BoxPoint concatenates a box's lower and upper corners, each of d
// dimensions (d <= MaxDims/2), into a single 2d-dimensional Point: the
// standard way to store axis-aligned boxes in a point index.
func BoxPoint(lo, hi []Key) Point {
	var p Point
	d := len(lo)
	for i := 0; i < d; i++ {
		p[i] = lo[i]
		p[d+i] = hi[i]
	}
	return p
}

// BoxQueryWindow builds the window-query bounds for a box-point tree of
// 2d dimensions. With intersect true it matches every stored box that
// overlaps [qLo,qHi]; with intersect false it matches only stored boxes
// fully contained within [qLo,qHi].
//
// This resolves the stored-vs-query box semantics the coordinate
// encoder leaves open: see the box-query open question in DESIGN.md.
func BoxQueryWindow(qLo, qHi []Key, intersect bool) (min, max Point) {
	d := len(qLo)
	for i := 0; i < d; i++ {
		if intersect {
			min[i], max[i] = 0, qHi[i]
			min[d+i], max[d+i] = qLo[i], math.MaxUint64
		} else {
			min[i], max[i] = qLo[i], math.MaxUint64
			min[d+i], max[d+i] = 0, qHi[i]
		}
	}
	return min, max
}
