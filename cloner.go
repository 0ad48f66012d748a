// SPDX-License-Identifier: MIT

package phtree

// Cloner lets a value type opt into deep copying. If V implements
// Cloner[V], Tree.Clone deep-copies every value via its Clone method
// instead of a shallow assignment.
type Cloner[V any] interface {
	Clone() V
}

func cloneOrCopyValue[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}

// Clone returns an independent copy of t. Structural nodes are always
// deep-copied; values are deep-copied only if V implements Cloner[V].
// Accumulated id sets (see Tree.InsertID) are always deep-copied.
func (t *Tree[V]) Clone() *Tree[V] {
	return &Tree[V]{
		root: t.root.cloneRec(),
		k:    t.k,
		w:    t.w,
		size: t.size,
	}
}

func (n *node[V]) cloneRec() *node[V] {
	c := &node[V]{
		prefix:     n.prefix,
		postfixLen: n.postfixLen,
		infixLen:   n.infixLen,
	}
	c.children.Set = n.children.Set
	c.children.Items = make([]any, len(n.children.Items))

	for i, v := range n.children.Items {
		if n.isLeaf() {
			c.children.Items[i] = v.(*Entry[V]).cloneRec()
			continue
		}
		c.children.Items[i] = v.(*node[V]).cloneRec()
	}
	return c
}

func (e *Entry[V]) cloneRec() *Entry[V] {
	c := &Entry[V]{point: e.point, value: cloneOrCopyValue(e.value)}
	if e.ids != nil {
		c.ids = e.ids.Clone()
	}
	return c
}
