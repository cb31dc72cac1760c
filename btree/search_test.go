package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchEmptyTree looks up keys in a tree that has never seen an
// insert; the sole empty leaf must simply report absence.
func TestSearchEmptyTree(t *testing.T) {
	tr := New(3)

	_, ok := tr.Search(1)
	assert.False(t, ok)
	_, ok = tr.Search(-10)
	assert.False(t, ok)
}

// TestSearchAcrossSplits inserts enough values to force several
// splits and checks every key on every tree shape along the way.
func TestSearchAcrossSplits(t *testing.T) {
	tr := New(3)
	for i := 1; i <= 50; i++ {
		tr.Insert(i * 3)
		for k := 1; k <= i; k++ {
			v, ok := tr.Search(k)
			require.True(t, ok, "key %d lost after %d inserts", k, i)
			assert.Equal(t, k*3, v)
		}
		_, ok := tr.Search(i + 1)
		assert.False(t, ok, "unassigned key must stay absent")
	}
}

// TestRangeFullAndPartial checks inclusive bounds on both ends and
// windows that start or end between keys.
func TestRangeFullAndPartial(t *testing.T) {
	tr := New(3)
	for i := 1; i <= 9; i++ {
		tr.Insert(i * 10) // keys 1..9, values 10..90
	}

	// Whole key space, bounds wider than the contents.
	all := tr.Range(-100, 100)
	require.Len(t, all, 9)
	for i, p := range all {
		assert.Equal(t, i+1, p.Key)
		assert.Equal(t, (i+1)*10, p.Value)
	}

	// Inclusive on both ends.
	assert.Equal(t, []Pair{{3, 30}, {4, 40}, {5, 50}}, tr.Range(3, 5))

	// Single-key window.
	assert.Equal(t, []Pair{{7, 70}}, tr.Range(7, 7))

	// Window beyond the largest key.
	assert.Empty(t, tr.Range(10, 20))
}

// TestRangeInvertedBoundsIsEmpty verifies that start > end produces an
// empty result, not an error.
func TestRangeInvertedBoundsIsEmpty(t *testing.T) {
	tr := New(3)
	for i := 0; i < 5; i++ {
		tr.Insert(i)
	}
	assert.Empty(t, tr.Range(4, 2))
	assert.Empty(t, New(3).Range(1, 10))
}

// TestRangeSpansLeafChain builds a deep tree and takes a window that
// crosses several leaves, expecting a gapless ascending sequence.
func TestRangeSpansLeafChain(t *testing.T) {
	tr := New(2)
	for i := 1; i <= 100; i++ {
		tr.Insert(i)
	}

	got := tr.Range(25, 75)
	require.Len(t, got, 51)
	for i, p := range got {
		assert.Equal(t, 25+i, p.Key)
		assert.Equal(t, 25+i, p.Value)
	}
}

// TestScanIsLazyAndBounded drives the iterator by hand and checks the
// stop condition at the end bound.
func TestScanIsLazyAndBounded(t *testing.T) {
	tr := New(3)
	for i := 1; i <= 10; i++ {
		tr.Insert(i * 2)
	}

	it := tr.Scan(4, 6)
	require.True(t, it.Next())
	assert.Equal(t, 4, it.Key())
	assert.Equal(t, 8, it.Value())
	require.True(t, it.Next())
	assert.Equal(t, 5, it.Key())
	require.True(t, it.Next())
	assert.Equal(t, 6, it.Key())
	assert.False(t, it.Next(), "iterator must stop past the end bound")
	assert.False(t, it.Next(), "exhausted iterator must stay exhausted")
}

// TestAscendingChainMatchesRange walks leaves directly and compares
// with an unbounded Range, covering the chain-coverage property.
func TestAscendingChainMatchesRange(t *testing.T) {
	tr := New(2)
	for i := 0; i < 64; i++ {
		tr.Insert(i)
	}
	tr.Remove(10)
	tr.Remove(11)
	tr.Remove(40)

	var chained []int
	for leaf := tr.firstLeaf(); leaf != nil; leaf = leaf.next {
		chained = append(chained, leaf.keys...)
	}

	ranged := tr.Range(1, 64)
	require.Len(t, ranged, len(chained))
	for i, p := range ranged {
		assert.Equal(t, chained[i], p.Key)
		if i > 0 {
			assert.Less(t, ranged[i-1].Key, p.Key, "keys must strictly ascend")
		}
	}
}
