package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkStructure walks the whole tree and fails the test on any broken
// structural property: parent linkage, child counts, per-node key
// order, separator routing and leaf-chain coverage. Non-root leaves
// must hold at least minKeys keys; internal nodes get the weaker
// floor(maxKeys/2) bound, because a push-up split hands the separator
// to the parent and leaves the right node one key short of minKeys
// whenever maxKeys is odd. The maxKeys upper bound is checked only
// when strictMax is set: merge-only deletion lets a survivor absorb a
// full sibling, so after removals the upper bound no longer holds.
func checkStructure(t *testing.T, tr *Tree, strictMax bool) {
	t.Helper()

	root := tr.Root()
	require.NotNil(t, root)
	assert.Nil(t, root.parent, "root must have no parent")

	var leaves []*Node
	var walk func(n *Node, lo, hi int, hasLo, hasHi bool)
	walk = func(n *Node, lo, hi int, hasLo, hasHi bool) {
		// Key order and bounds inside the node.
		for i, k := range n.keys {
			if i > 0 {
				assert.Less(t, n.keys[i-1], k, "keys must be strictly ascending")
			}
			if hasLo {
				assert.GreaterOrEqual(t, k, lo, "key below the routing range")
			}
			if hasHi {
				assert.Less(t, k, hi, "key at or above the routing range")
			}
		}

		// Fan-out bounds for non-root nodes.
		if n != root {
			lower := tr.MinKeys()
			if !n.leaf {
				lower = tr.MaxKeys() / 2
				if lower < 1 {
					lower = 1
				}
			}
			assert.GreaterOrEqual(t, len(n.keys), lower, "underflowing node")
		}
		if strictMax {
			assert.LessOrEqual(t, len(n.keys), tr.MaxKeys(), "overflowing node")
		}

		if n.leaf {
			assert.Len(t, n.values, len(n.keys), "leaf keys/values must stay parallel")
			assert.Nil(t, n.children, "leaf must not carry children")
			leaves = append(leaves, n)
			return
		}

		assert.Nil(t, n.values, "internal node must not carry values")
		assert.Nil(t, n.next, "internal node must not be chained")
		require.Len(t, n.children, len(n.keys)+1, "children must be keys+1")

		for i, c := range n.children {
			require.NotNil(t, c)
			assert.Same(t, n, c.parent, "child must point back to its parent")
			clo, chasLo := lo, hasLo
			chi, chasHi := hi, hasHi
			if i > 0 {
				clo, chasLo = n.keys[i-1], true
			}
			if i < len(n.keys) {
				chi, chasHi = n.keys[i], true
			}
			walk(c, clo, chi, chasLo, chasHi)
		}
	}
	walk(root, 0, 0, false, false)

	// The chain from the leftmost leaf must visit exactly the leaves
	// found by descent, in order, with ascending keys across the seam.
	chain := tr.firstLeaf()
	for i, leaf := range leaves {
		require.Same(t, leaf, chain, "leaf chain out of step at %d", i)
		if i > 0 && len(leaves[i-1].keys) > 0 && len(leaf.keys) > 0 {
			prev := leaves[i-1].keys[len(leaves[i-1].keys)-1]
			assert.Less(t, prev, leaf.keys[0], "chain must ascend across leaves")
		}
		chain = chain.next
	}
	assert.Nil(t, chain, "chain must end at the rightmost leaf")
}

// collectKeys returns every key in the tree via the leaf chain.
func collectKeys(tr *Tree) []int {
	var keys []int
	for leaf := tr.firstLeaf(); leaf != nil; leaf = leaf.next {
		keys = append(keys, leaf.keys...)
	}
	return keys
}
