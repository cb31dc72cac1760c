package btree

import "slices"

// Insert stores value under a freshly assigned key and returns that
// key. Keys come from the tree's counter, so every new key exceeds all
// keys currently present.
func (t *Tree) Insert(value int) int {
	key := t.nextKey
	t.nextKey++

	leaf := t.locateLeaf(key)
	leaf.insertPair(key, value)
	if len(leaf.keys) > t.maxKeys {
		t.splitLeaf(leaf)
	}
	return key
}

// AddRandom inserts a value drawn uniformly from [1, 100].
func (t *Tree) AddRandom() int {
	return t.Insert(t.rng.Intn(100) + 1)
}

// splitLeaf splits an overflowing leaf at mid = floor(n/2). The right
// half's first key is copied up as the separator and stays in the
// leaf, and the new right leaf is spliced into the chain.
func (t *Tree) splitLeaf(leaf *Node) {
	mid := len(leaf.keys) / 2

	right := newLeaf()
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.values = append(right.values, leaf.values[mid:]...)
	right.next = leaf.next

	leaf.keys = leaf.keys[:mid]
	leaf.values = leaf.values[:mid]
	leaf.next = right

	t.promote(leaf, right.keys[0], right)
}

// splitInternal splits an overflowing internal node. Unlike a leaf
// split the separator at mid is pushed up: it is removed from the node
// and lives only in the parent afterwards.
func (t *Tree) splitInternal(n *Node) {
	mid := len(n.keys) / 2
	sep := n.keys[mid]

	right := newInternal()
	right.keys = append(right.keys, n.keys[mid+1:]...)
	right.children = append(right.children, n.children[mid+1:]...)
	for _, c := range right.children {
		c.parent = right
	}

	n.keys = n.keys[:mid]
	n.children = n.children[:mid+1]

	t.promote(n, sep, right)
}

// promote installs sep and the new right node in left's parent,
// creating a new root when left was the root, and keeps splitting
// upward while the parent overflows.
func (t *Tree) promote(left *Node, sep int, right *Node) {
	p := left.parent
	if p == nil {
		root := newInternal()
		root.keys = []int{sep}
		root.children = []*Node{left, right}
		left.parent = root
		right.parent = root
		t.root = root
		return
	}

	i, _ := slices.BinarySearch(p.keys, sep)
	p.keys = slices.Insert(p.keys, i, sep)
	p.children = slices.Insert(p.children, i+1, right)
	right.parent = p

	if len(p.keys) > t.internalMax() {
		t.splitInternal(p)
	}
}

// internalMax is the key capacity of internal nodes. At maxKeys == 1 a
// push-up split of a two-key node cannot leave a key on both sides, so
// that configuration grants internal nodes one extra key; leaves keep
// the configured bound.
func (t *Tree) internalMax() int {
	if t.maxKeys == 1 {
		return 2
	}
	return t.maxKeys
}
