package btree

import (
	"math/rand"
	"time"
)

// Tree is the index engine. It owns the root, the fan-out bounds and
// the key counter. A tree is single-threaded: callers that share one
// instance across goroutines must serialize access themselves.
type Tree struct {
	root    *Node
	maxKeys int // fixed at construction, >= 1
	minKeys int // ceil(maxKeys/2), lower bound for non-root nodes
	nextKey int
	rng     *rand.Rand
}

// Option adjusts tree construction.
type Option func(*Tree)

// WithSeed fixes the seed of the source behind AddRandom, for
// reproducible sessions.
func WithSeed(seed int64) Option {
	return func(t *Tree) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates an empty tree that allows at most maxKeys keys per node.
// maxKeys must be at least 1; maxKeys == 1 is the degenerate bound
// where every non-root node holds exactly one key.
func New(maxKeys int, opts ...Option) *Tree {
	if maxKeys < 1 {
		maxKeys = 1
	}
	t := &Tree{
		root:    newLeaf(),
		maxKeys: maxKeys,
		minKeys: (maxKeys + 1) / 2,
		nextKey: 1,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the current root node. Never nil: an empty tree has a
// single empty leaf.
func (t *Tree) Root() *Node { return t.root }

// MaxKeys returns the per-node upper key bound.
func (t *Tree) MaxKeys() int { return t.maxKeys }

// MinKeys returns the lower key bound for non-root nodes.
func (t *Tree) MinKeys() int { return t.minKeys }

// Len returns the number of keys currently in the tree, counted along
// the leaf chain.
func (t *Tree) Len() int {
	n := 0
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		n += len(leaf.keys)
	}
	return n
}

// Reset discards the whole structure: fresh empty leaf as root, key
// counter back to 1. The old nodes become unreachable in bulk.
func (t *Tree) Reset() {
	t.root = newLeaf()
	t.nextKey = 1
}

// firstLeaf returns the leftmost leaf, the head of the chain.
func (t *Tree) firstLeaf() *Node {
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}
	return n
}
