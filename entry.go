// SPDX-License-Identifier: MIT

package phtree

import set3 "github.com/TomTonic/Set3"

// Entry is the terminal record stored for a unique Point. A tree never
// stores two entries for the same point: Insert either creates one or
// hands back the one already there.
type Entry[V any] struct {
	point Point
	value V
	ids   *set3.Set3[int]
}

// Point returns the entry's coordinates.
func (e *Entry[V]) Point() Point { return e.point }

// Value returns the entry's payload.
func (e *Entry[V]) Value() V { return e.value }

// SetValue replaces the entry's payload in place.
func (e *Entry[V]) SetValue(v V) { e.value = v }

// IDs returns the set of ids accumulated at this point via
// Tree.InsertID, or nil if none have been added.
func (e *Entry[V]) IDs() *set3.Set3[int] { return e.ids }

func (e *Entry[V]) addID(id int) {
	if e.ids == nil {
		e.ids = set3.Empty[int]()
	}
	e.ids.Add(id)
}

func (e *Entry[V]) removeID(id int) {
	if e.ids == nil {
		return
	}
	e.ids.Remove(id)
}
