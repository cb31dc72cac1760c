// Package btree implements the in-memory B+ tree behind keydex: an
// ordered index over auto-assigned integer keys. Leaves hold the
// key/value pairs and are chained left to right, internal nodes hold
// separator keys only. All mutation goes through the Tree; collaborators
// (renderer, REPL, REST surface) read the structure through the
// read-only accessors on Node.
package btree

import "slices"

// Node is a single tree node. One struct covers both variants, with
// leaf as the discriminant: leaves use values and next, internal nodes
// use children. The parent pointer is nil only on the root.
type Node struct {
	leaf     bool
	parent   *Node
	keys     []int
	values   []int   // leaf only, values[i] belongs to keys[i]
	children []*Node // internal only, len(keys)+1 entries
	next     *Node   // leaf only, next leaf in ascending key order
}

func newLeaf() *Node {
	return &Node{leaf: true}
}

func newInternal() *Node {
	return &Node{}
}

// Leaf reports whether the node is a leaf.
func (n *Node) Leaf() bool { return n.leaf }

// Keys returns the node's keys in stored (ascending) order.
// Callers must treat the slice as read-only.
func (n *Node) Keys() []int { return n.keys }

// Values returns a leaf's values parallel to Keys. Nil for internal nodes.
func (n *Node) Values() []int { return n.values }

// Children returns an internal node's children in stored order.
// Nil for leaves.
func (n *Node) Children() []*Node { return n.children }

// Next returns the following leaf in the chain, or nil for the
// rightmost leaf and for internal nodes.
func (n *Node) Next() *Node { return n.next }

// insertPair places key/value at its sorted position in the leaf.
// Keys are assigned monotonically, so in practice the position is
// always the end; the sorted insert keeps the leaf correct regardless.
func (n *Node) insertPair(key, value int) {
	i, _ := slices.BinarySearch(n.keys, key)
	n.keys = slices.Insert(n.keys, i, key)
	n.values = slices.Insert(n.values, i, value)
}

// removePair deletes key and its value from the leaf, reporting
// whether the key was present.
func (n *Node) removePair(key int) bool {
	i, ok := slices.BinarySearch(n.keys, key)
	if !ok {
		return false
	}
	n.keys = slices.Delete(n.keys, i, i+1)
	n.values = slices.Delete(n.values, i, i+1)
	return true
}

// childIndex returns the slot of child in n.children, or -1 if child
// is not attached to n.
func (n *Node) childIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
