package btree

import "slices"

// Remove deletes key and its value. A key that is not present is a
// silent no-op. Underflowing nodes are repaired by merging with a
// sibling only; keys are never redistributed, even when a sibling has
// room to spare.
func (t *Tree) Remove(key int) {
	leaf := t.locateLeaf(key)
	if !leaf.removePair(key) {
		return
	}
	if leaf != t.root && len(leaf.keys) < t.minKeys {
		t.mergeLeaf(leaf)
	}
}

// pickSibling selects the merge partner for n under parent p: the
// right sibling when one exists, otherwise the left sibling with roles
// swapped so the left-hand node is always the survivor. sepIdx is the
// parent key separating the two.
func pickSibling(p, n *Node) (left, right *Node, sepIdx int) {
	i := p.childIndex(n)
	if i+1 < len(p.children) {
		return n, p.children[i+1], i
	}
	return p.children[i-1], n, i - 1
}

// mergeLeaf absorbs a leaf's sibling into the left-hand survivor,
// relinks the chain past the absorbed leaf, and drops the separator
// and child slot from the parent, repairing upward as needed.
func (t *Tree) mergeLeaf(leaf *Node) {
	p := leaf.parent
	left, right, sepIdx := pickSibling(p, leaf)

	left.keys = append(left.keys, right.keys...)
	left.values = append(left.values, right.values...)
	left.next = right.next

	t.dropSeparator(p, sepIdx, left)
}

// mergeInternal merges an underflowing internal node with a sibling.
// The separator between the two is pulled down into the survivor,
// followed by the sibling's keys; the sibling's children are adopted
// and reparented.
func (t *Tree) mergeInternal(n *Node) {
	p := n.parent
	left, right, sepIdx := pickSibling(p, n)

	left.keys = append(left.keys, p.keys[sepIdx])
	left.keys = append(left.keys, right.keys...)
	for _, c := range right.children {
		c.parent = left
	}
	left.children = append(left.children, right.children...)

	t.dropSeparator(p, sepIdx, left)
}

// dropSeparator removes the separator key and the absorbed child slot
// from p after a merge whose survivor is left, then applies the
// root-collapse rule or recurses on a now-underflowing parent.
func (t *Tree) dropSeparator(p *Node, sepIdx int, left *Node) {
	p.keys = slices.Delete(p.keys, sepIdx, sepIdx+1)
	p.children = slices.Delete(p.children, sepIdx+1, sepIdx+2)

	if p == t.root {
		if len(p.keys) == 0 {
			t.collapseRoot(left)
		}
		return
	}
	if len(p.keys) < t.minKeys {
		t.mergeInternal(p)
	}
}

// collapseRoot replaces a keyless root with its sole remaining child,
// or with a fresh empty leaf if nothing remains.
func (t *Tree) collapseRoot(survivor *Node) {
	if survivor == nil {
		t.root = newLeaf()
		return
	}
	survivor.parent = nil
	t.root = survivor
}
