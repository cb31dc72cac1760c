package btree

import "slices"

// Pair is one key/value entry as emitted by Range.
type Pair struct {
	Key   int `json:"key"`
	Value int `json:"value"`
}

// locateLeaf descends from the root to the leaf whose key range covers
// key. A key equal to a separator routes to the right child. Always
// returns a leaf, even in an empty tree.
func (t *Tree) locateLeaf(key int) *Node {
	n := t.root
	for !n.leaf {
		i := 0
		for i < len(n.keys) && key >= n.keys[i] {
			i++
		}
		n = n.children[i]
	}
	return n
}

// Search returns the value stored under key. The second result is
// false when the key is absent; an absent key is not an error.
func (t *Tree) Search(key int) (int, bool) {
	leaf := t.locateLeaf(key)
	i, ok := slices.BinarySearch(leaf.keys, key)
	if !ok {
		return 0, false
	}
	return leaf.values[i], true
}

// Range returns every pair with start <= key <= end in ascending key
// order, walking the leaf chain from the leaf that would hold start.
// start > end yields an empty result.
func (t *Tree) Range(start, end int) []Pair {
	var out []Pair
	for it := t.Scan(start, end); it.Next(); {
		out = append(out, Pair{Key: it.Key(), Value: it.Value()})
	}
	return out
}
