package btree

// Iterator walks the leaf chain lazily, bounded by an inclusive end
// key. The ascending-chain invariant makes the stop condition safe:
// once a key exceeds end, no later leaf can hold a smaller one.
type Iterator struct {
	node       *Node
	i          int
	start, end int
	key, value int
}

// Scan positions an iterator at the leaf that would hold start.
// The iterator is single-use and must not outlive a mutation.
func (t *Tree) Scan(start, end int) *Iterator {
	return &Iterator{
		node:  t.locateLeaf(start),
		start: start,
		end:   end,
	}
}

// Next advances to the next pair inside the bounds, reporting whether
// one exists. Key and Value are valid only after Next returns true.
func (it *Iterator) Next() bool {
	for it.node != nil {
		for it.i < len(it.node.keys) {
			k := it.node.keys[it.i]
			if k > it.end {
				return false
			}
			if k >= it.start {
				it.key = k
				it.value = it.node.values[it.i]
				it.i++
				return true
			}
			it.i++
		}
		it.node = it.node.next
		it.i = 0
	}
	return false
}

// Key returns the key of the current pair.
func (it *Iterator) Key() int { return it.key }

// Value returns the value of the current pair.
func (it *Iterator) Value() int { return it.value }
