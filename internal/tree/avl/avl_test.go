//go:build unit

package avl

import (
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

func newTestTree(t *testing.T, keys ...int) *Tree[int, string] {
	tree, err := NewTree[int, string](variant.Default)
	require.NoError(t, err, "create tree")
	for _, k := range keys {
		require.NoError(t, tree.Insert(entry.New(k, "v")), "insert key %d", k)
	}
	return tree
}

// dump - Returns the subtree at n in pre order with key and stored height of every node, a dot for every nil link
func dump(n *node[int, string]) string {
	if n == nil {
		return "."
	}
	return "(" + strconv.Itoa(n.entry.Key) + "h" + strconv.Itoa(n.height) + " " + dump(n.left) + dump(n.right) + ")"
}

type TestCaseRotation struct {
	name     string
	keys     []int
	rootKey  int
	expected []int
}

func TestNewTree(t *testing.T) {
	t.Run("creates an empty tree", func(t *testing.T) {
		// Execute
		tree, err := NewTree[string, int](variant.KeepExisting)

		// Check
		assert.NoError(t, err, "create tree")
		assert.Equal(t, 0, tree.Len(), "empty")
		assert.Equal(t, 0, tree.Height(), "no height")
	})

	t.Run("rejects the shadow policy", func(t *testing.T) {
		// Execute
		_, err := NewTree[int, string](variant.Shadow)

		// Check
		assert.ErrorIs(t, err, variant.UnsupportedPolicy{}, "shadow not supported")
	})
}

func TestTree_Insert(t *testing.T) {
	t.Run("ascending keys 1 to 7 give a perfect tree", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t)

		// Execute
		for i := 1; i <= 7; i++ {
			_ = tree.Insert(entry.New(i, "v"))
		}

		// Check
		assert.Equal(t, 3, tree.Height(), "height of perfect tree")
		assert.Equal(t, 4, tree.root.entry.Key, "middle key at root")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})

	t.Run("rotates for all four imbalance cases", func(t *testing.T) {
		// Prepare
		tests := []TestCaseRotation{
			{name: "LL", keys: []int{3, 2, 1}, rootKey: 2, expected: []int{1, 2, 3}},
			{name: "RR", keys: []int{1, 2, 3}, rootKey: 2, expected: []int{1, 2, 3}},
			{name: "LR", keys: []int{3, 1, 2}, rootKey: 2, expected: []int{1, 2, 3}},
			{name: "RL", keys: []int{1, 3, 2}, rootKey: 2, expected: []int{1, 2, 3}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				// Execute
				tree := newTestTree(t, test.keys...)

				// Check
				assert.Equal(t, test.rootKey, tree.root.entry.Key, "root after rotation")
				assert.Equal(t, 2, tree.Height(), "balanced height")
				assert.Equal(t, test.expected, tree.Keys(), "keys in order")
				assert.NoError(t, tree.Verify(), "tree is valid")
			})
		}
	})

	t.Run("duplicate key overwrites value", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 1, 2, 3)

		// Execute
		_ = tree.Insert(entry.New(2, "new"))

		// Check
		assert.Equal(t, 3, tree.Len(), "no new entry")
		assert.Equal(t, "new", tree.Find(2).Value, "value replaced")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})

	t.Run("height stays logarithmic", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t)

		// Execute
		for i := 0; i < 1<<12; i++ {
			_ = tree.Insert(entry.New(i, "v"))
		}

		// Check
		assert.LessOrEqual(t, tree.Height(), 18, "within 1.44 log2(n)")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})
}

func TestTree_Remove(t *testing.T) {
	t.Run("removal rebalances with a single rotation", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 2, 1, 3, 4)

		// Execute
		removed := tree.Remove(1)

		// Check
		assert.True(t, removed, "removed")
		assert.Equal(t, 3, tree.root.entry.Key, "rotated left")
		assert.Equal(t, []int{2, 3, 4}, tree.Keys(), "keys in order")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})

	t.Run("removal rebalances with a double rotation", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 2, 1, 4, 3)

		// Execute
		removed := tree.Remove(1)

		// Check
		assert.True(t, removed, "removed")
		assert.Equal(t, 3, tree.root.entry.Key, "double rotated")
		assert.Equal(t, 2, tree.Height(), "height lowered")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})

	t.Run("removes node with two children through its successor", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 1, 2, 3, 4, 5, 6, 7)

		// Execute
		removed := tree.Remove(4)

		// Check
		assert.True(t, removed, "removed")
		assert.Equal(t, 5, tree.root.entry.Key, "successor at root")
		assert.Nil(t, tree.Find(4), "key gone")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})

	t.Run("removing an absent key is a no-op", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 1, 2, 3)

		// Execute
		removed := tree.Remove(10)

		// Check
		assert.False(t, removed, "nothing removed")
		assert.Equal(t, 3, tree.Len(), "size unchanged")
	})

	t.Run("removing an absent key keeps structure and heights", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 0, 2, 4, 6, 8, 10, 12, 14, 16, 18)
		before := dump(tree.root)

		for _, k := range []int{7, -1, 19, 11} {
			// Execute
			removed := tree.Remove(k)

			// Check
			assert.Falsef(t, removed, "key %d not removed", k)
			assert.Equalf(t, before, dump(tree.root), "tree unchanged after removing absent key %d", k)
		}
	})

	t.Run("random removals keep the tree balanced", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		keys := rnd.Perm(2000)
		tree := newTestTree(t, keys...)
		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

		// Execute & Check
		for i, k := range keys[:1500] {
			require.Truef(t, tree.Remove(k), "remove key %d", k)
			if i%50 == 0 {
				require.NoErrorf(t, tree.Verify(), "valid after removing key %d", k)
			}
		}

		left := append([]int(nil), keys[1500:]...)
		sort.Ints(left)
		assert.Equal(t, left, tree.Keys(), "remaining keys")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})
}

func TestTree_Clear(t *testing.T) {
	t.Run("clears all entries", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 1, 2, 3, 4, 5)

		// Execute
		tree.Clear()

		// Check
		assert.Equal(t, 0, tree.Len(), "empty")
		assert.Nil(t, tree.Find(3), "nothing to find")
		assert.NoError(t, tree.Insert(entry.New(1, "again")), "usable after clear")
	})
}

func TestTree_Verify(t *testing.T) {
	t.Run("detects a stale height", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 2, 1, 3)
		tree.root.height = 5

		// Execute
		err := tree.Verify()

		// Check
		assert.Error(t, err, "height violation detected")
	})

	t.Run("detects an unbalanced node", func(t *testing.T) {
		// Prepare
		tree := newTestTree(t, 1)
		tree.root.right = &node[int, string]{entry: entry.New(2, "v"), height: 2}
		tree.root.right.right = &node[int, string]{entry: entry.New(3, "v"), height: 1}
		tree.root.height = 3
		tree.n = 3

		// Execute
		err := tree.Verify()

		// Check
		assert.Error(t, err, "balance violation detected")
	})
}
