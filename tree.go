// SPDX-License-Identifier: MIT

// Package phtree implements a PH-Tree: a bit-interleaved patricia trie
// that indexes K-dimensional points (K from 1 to 6) over a fixed-width
// unsigned key space, supporting insertion, point lookup, removal and
// axis-aligned window queries.
package phtree

import "fmt"

// Tree indexes points of Tree.Dims() dimensions over a Tree.Width()-bit
// key space. The zero value is not usable; construct one with New.
type Tree[V any] struct {
	root *node[V]
	k    int
	w    uint8
	size int
}

// New creates an empty tree for k dimensions (1..MaxDims) over a w-bit
// key space (w must be 8, 16, 32 or 64).
func New[V any](k, w int) (*Tree[V], error) {
	if k < 1 || k > MaxDims {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrDimensions, k, MaxDims)
	}
	switch w {
	case 8, 16, 32, 64:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrWidth, w)
	}

	root := newInteriorNode[V](uint8(w-1), 0, Point{}, k)
	return &Tree[V]{root: root, k: k, w: uint8(w)}, nil
}

// Dims is the number of dimensions the tree was created with.
func (t *Tree[V]) Dims() int { return t.k }

// Width is the key width, in bits, the tree was created with.
func (t *Tree[V]) Width() int { return int(t.w) }

// Len is the number of distinct points currently stored.
func (t *Tree[V]) Len() int { return t.size }

// Empty reports whether the tree holds no entries.
func (t *Tree[V]) Empty() bool {
	return t.root.children.Len() == 0
}

// Insert stores value at p, returning the entry and true if p was
// already present (in which case value is not applied), or the new
// entry and false otherwise.
func (t *Tree[V]) Insert(p Point, value V) (*Entry[V], bool) {
	return t.insertEntry(p, func() V { return value })
}

// InsertFunc is like Insert, but value is produced lazily by create,
// which runs at most once and only if p was not already present.
func (t *Tree[V]) InsertFunc(p Point, create func() V) (*Entry[V], bool) {
	return t.insertEntry(p, create)
}

// InsertID accumulates id into the id set of the entry at p, creating
// the entry (with V's zero value) first if necessary.
func (t *Tree[V]) InsertID(p Point, id int) *Entry[V] {
	var zero V
	e, _ := t.insertEntry(p, func() V { return zero })
	e.addID(id)
	return e
}

// Find returns the entry stored at p, if any.
func (t *Tree[V]) Find(p Point) (*Entry[V], bool) {
	n := t.root
	for !n.isLeaf() {
		a := hypercubeAddress(p, n.postfixLen, t.k)
		c, ok := n.childNode(a)
		if !ok {
			return nil, false
		}
		n = c
	}
	e, ok := n.entryAt(hypercubeAddress(p, 0, t.k))
	if !ok || e.point != p {
		return nil, false
	}
	return e, true
}

// Contains reports whether p is stored in the tree.
func (t *Tree[V]) Contains(p Point) bool {
	_, ok := t.Find(p)
	return ok
}

// ForEach visits every entry in the tree in address order, stopping
// early if visitor returns false.
func (t *Tree[V]) ForEach(visitor func(*Entry[V]) bool) {
	forEachNode(t.root, visitor)
}

func forEachNode[V any](n *node[V], visitor func(*Entry[V]) bool) bool {
	addrs := n.children.AsSlice(make([]hcAddress, 0, n.children.Len()))
	for i := range addrs {
		child := n.children.Items[i]
		if n.isLeaf() {
			if !visitor(child.(*Entry[V])) {
				return false
			}
			continue
		}
		if !forEachNode(child.(*node[V]), visitor) {
			return false
		}
	}
	return true
}
