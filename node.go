// SPDX-License-Identifier: MIT

package phtree

import (
	"github.com/gophertree/phtree/internal/sparse"
)

// node is one level of the trie. It is either interior (postfixLen > 0,
// children are *node[V]) or a leaf (postfixLen == 0, children are
// *Entry[V]): the same struct plays both roles, distinguished only by
// postfixLen, the same way the C reference this package is derived
// from uses one node_t for both.
//
// prefix is the canonical center point of the node's region: every bit
// at or below postfixLen is zeroed, then bit postfixLen is set. infixLen
// counts the patricia-compressed bits skipped between this node and its
// parent; a node with infixLen 0 has no discriminating power of its own
// during a split (see split in insert.go).
type node[V any] struct {
	prefix     Point
	postfixLen uint8
	infixLen   uint8

	children sparse.Array[any]
}

func (n *node[V]) isLeaf() bool {
	return n.postfixLen == 0
}

// newInteriorNode allocates an interior node whose prefix is derived
// from p at the given postfix length.
func newInteriorNode[V any](postfixLen, infixLen uint8, p Point, k int) *node[V] {
	return &node[V]{
		prefix:     canonicalizePrefix(p, postfixLen, k),
		postfixLen: postfixLen,
		infixLen:   infixLen,
	}
}

// newLeafNode allocates a leaf node (postfixLen 0) whose prefix is
// derived from p.
func newLeafNode[V any](infixLen uint8, p Point, k int) *node[V] {
	return newInteriorNode[V](0, infixLen, p, k)
}

func (n *node[V]) childNode(a hcAddress) (*node[V], bool) {
	raw, ok := n.children.Get(a)
	if !ok {
		return nil, false
	}
	return raw.(*node[V]), true
}

func (n *node[V]) entryAt(a hcAddress) (*Entry[V], bool) {
	raw, ok := n.children.Get(a)
	if !ok {
		return nil, false
	}
	return raw.(*Entry[V]), true
}
