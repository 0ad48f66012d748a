// SPDX-License-Identifier: MIT

package phtree

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Tree[V]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)
	return w.String()
}

// dump writes the tree's structure to w: every node's canonical prefix,
// its postfix/infix lengths and child count, followed by either its
// child nodes, dumped recursively (interior), or the address, point and
// value of each stored entry (leaf).
func (t *Tree[V]) dump(w io.Writer) {
	if t == nil {
		return
	}
	fmt.Fprintf(w, "### dims(%d) width(%d) size(%d)\n", t.k, t.w, t.size)
	t.root.dumpRec(w, 0, t.k)
}

func (n *node[V]) dumpRec(w io.Writer, depth int, k int) {
	n.dumpSelf(w, depth, k)

	allAddrs := n.children.AsSlice(make([]hcAddress, 0, n.children.Len()))
	for i, a := range allAddrs {
		if n.isLeaf() {
			e := n.children.Items[i].(*Entry[V])
			fmt.Fprintf(w, "%s  [%d] point=%v value=%v", strings.Repeat(".", depth+1), a, truncated(e.point, k), e.value)
			if ids := e.ids; ids != nil {
				fmt.Fprintf(w, " ids=%v", ids)
			}
			fmt.Fprintln(w)
			continue
		}
		n.children.Items[i].(*node[V]).dumpRec(w, depth+1, k)
	}
}

func (n *node[V]) dumpSelf(w io.Writer, depth int, k int) {
	indent := strings.Repeat(".", depth)
	fmt.Fprintf(w, "%s[%s] depth:%d postfix:%d infix:%d prefix:%v childs:%d\n",
		indent, n.kind(), depth, n.postfixLen, n.infixLen, truncated(n.prefix, k), n.children.Len())
}

func (n *node[V]) kind() string {
	if n.isLeaf() {
		return "LEAF"
	}
	return "NODE"
}

func truncated(p Point, k int) [MaxDims]Key {
	var out [MaxDims]Key
	copy(out[:k], p[:k])
	return out
}
