// SPDX-License-Identifier: MIT

// Package sparse implements a generic sparse array with popcount
// compression, keyed by a 64-slot bitset.
package sparse

import (
	"github.com/gophertree/phtree/internal/bitset"
)

// Array is a sparse array of at most 64 slots with payload T. Only
// occupied slots consume space in Items; Set tracks which of the 64
// addresses are occupied.
//
//	Set:   [0|0|1|0|0|1|0|...]  <- two slots occupied
//	Items: [*|*]                <- two populated entries
//
//	Set.Test(5):    true
//	Set.Rank0(5):   1, index of slot 5 within Items
type Array[T any] struct {
	Set   bitset.Set64
	Items []T
}

// Len returns the number of occupied slots.
func (s *Array[T]) Len() int {
	return len(s.Items)
}

// Get returns the value at slot i, if occupied.
func (s *Array[T]) Get(i uint) (val T, ok bool) {
	if s.Set.Test(i) {
		return s.Items[s.Set.Rank0(i)], true
	}
	return
}

// MustGet returns the value at slot i. It panics if the slot is empty.
func (s *Array[T]) MustGet(i uint) T {
	if !s.Set.Test(i) {
		panic("sparse: MustGet on an empty slot")
	}
	return s.Items[s.Set.Rank0(i)]
}

// InsertAt places val at slot i. If the slot was already occupied, its
// value is overwritten and exists is true.
func (s *Array[T]) InsertAt(i uint, val T) (exists bool) {
	if s.Set.Test(i) {
		s.Items[s.Set.Rank0(i)] = val
		return true
	}

	idx := s.Set.Rank0(i)
	s.Set = s.Set.Set(i)
	s.insertItem(val, idx)

	return false
}

// DeleteAt removes the value at slot i, zeroing the vacated tail slot.
func (s *Array[T]) DeleteAt(i uint) (val T, exists bool) {
	if !s.Set.Test(i) {
		return
	}

	idx := s.Set.Rank0(i)
	val = s.Items[idx]

	s.deleteItem(idx)
	s.Set = s.Set.Clear(i)

	return val, true
}

// FirstSet returns the lowest occupied slot address.
func (s *Array[T]) FirstSet() (uint, bool) {
	return s.Set.FirstSet()
}

// AsSlice appends every occupied slot address, in ascending order, to buf.
func (s *Array[T]) AsSlice(buf []uint) []uint {
	return s.Set.AsSlice(buf)
}

// insertItem inserts item at index i, shifting the tail one slot right.
func (s *Array[T]) insertItem(item T, i int) {
	if len(s.Items) < cap(s.Items) {
		s.Items = s.Items[:len(s.Items)+1] // fast resize, no alloc
	} else {
		var zero T
		s.Items = append(s.Items, zero)
	}
	copy(s.Items[i+1:], s.Items[i:])
	s.Items[i] = item
}

// deleteItem removes the item at index i, shifting the tail one slot left.
func (s *Array[T]) deleteItem(i int) {
	var zero T
	l := len(s.Items) - 1
	copy(s.Items[i:], s.Items[i+1:])
	s.Items[l] = zero
	s.Items = s.Items[:l]
}
