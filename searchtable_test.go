//go:build unit

package searchtable

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/hashfunc"
	"github.com/gostonefire/searchtable/variant"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type verifier interface {
	Verify() error
}

type TestCaseNew struct {
	kind     int
	conf     Conf[int]
	hasError bool
	errType  error
}

func TestNew(t *testing.T) {
	t.Run("creates every variant", func(t *testing.T) {
		for _, kind := range variant.All {
			t.Run(variant.Name(kind), func(t *testing.T) {
				// Execute
				table, err := New[int, string](kind, Conf[int]{})

				// Check
				assert.NoError(t, err, "create table")
				assert.NotNil(t, table, "table returned")
				assert.Equal(t, 0, table.Len(), "empty")

				_, isOrdered := table.(OrderedTable[int, string])
				_, isHash := table.(HashTable[int, string])
				assert.Equal(t, variant.IsOrdered(kind), isOrdered, "ordered interface")
				assert.Equal(t, !variant.IsOrdered(kind), isHash, "hash interface")
			})
		}
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		// Prepare
		tests := []TestCaseNew{
			{kind: 0, conf: Conf[int]{}, hasError: true, errType: UnknownVariant{}},
			{kind: 99, conf: Conf[int]{}, hasError: true, errType: UnknownVariant{}},
			{kind: variant.AVLTree, conf: Conf[int]{DuplicatePolicy: variant.Shadow}, hasError: true, errType: variant.UnsupportedPolicy{}},
			{kind: variant.ClosedHashTable, conf: Conf[int]{DuplicatePolicy: variant.Shadow}, hasError: true, errType: variant.UnsupportedPolicy{}},
			{kind: variant.OpenHashTable, conf: Conf[int]{Capacity: -1}, hasError: true},
			{kind: variant.OpenHashTable, conf: Conf[int]{DuplicatePolicy: variant.DuplicatePolicy(42)}, hasError: true, errType: variant.UnsupportedPolicy{}},
		}

		for i, test := range tests {
			t.Run(fmt.Sprintf("case #%d", i), func(t *testing.T) {
				// Execute
				table, err := New[int, string](test.kind, test.conf)

				// Check
				assert.Error(t, err, "configuration rejected")
				assert.Nil(t, table, "no table")
				if test.errType != nil {
					assert.ErrorIs(t, err, test.errType, "error type")
				}
			})
		}
	})

	t.Run("float keys need a hash function for hash tables", func(t *testing.T) {
		// Execute
		_, errNoHash := New[float64, string](variant.ClosedHashTable, Conf[float64]{})
		tree, errTree := New[float64, string](variant.RedBlackTree, Conf[float64]{})

		// Check
		assert.Error(t, errNoHash, "no default hash for floats")
		assert.NoError(t, errTree, "trees only need ordering")
		assert.NotNil(t, tree, "tree created")
	})

	t.Run("passes every hash field of the configuration on", func(t *testing.T) {
		// Prepare
		conf := Conf[int]{Capacity: 7, HashFunc: func(int) uint64 { return 3 }, DuplicatePolicy: variant.KeepExisting}

		for _, kind := range []int{variant.ClosedHashTable, variant.OpenHashTable} {
			// Execute
			table, err := New[int, string](kind, conf)
			require.NoErrorf(t, err, "create %s", variant.Name(kind))
			_ = table.Insert(entry.New(1, "first"))
			_ = table.Insert(entry.New(1, "second"))
			_ = table.Insert(entry.New(2, "other"))
			stat := table.(HashTable[int, string]).Stat(true)

			// Check
			assert.Equalf(t, 7, stat.Capacity, "capacity of %s", variant.Name(kind))
			assert.Equalf(t, 2, stat.BucketDistribution[3], "both keys hash to 3 in %s", variant.Name(kind))
			assert.Equalf(t, "first", table.Find(1).Value, "existing value kept in %s", variant.Name(kind))
		}
	})
}

func TestScenarios(t *testing.T) {
	t.Run("red black tree with three entries", func(t *testing.T) {
		// Prepare
		tree, err := NewRedBlackTree[int, string](TreeConf{})
		require.NoError(t, err, "create tree")

		// Execute
		_ = tree.Insert(entry.New(5, "a"))
		_ = tree.Insert(entry.New(3, "b"))
		_ = tree.Insert(entry.New(8, "c"))
		found := tree.Find(3)
		removed := tree.Remove(5)

		// Check
		require.NotNil(t, found, "key 3 found")
		assert.Equal(t, "b", found.Value, "value of key 3")
		assert.True(t, removed, "key 5 removed")
		assert.Nil(t, tree.Find(5), "key 5 gone")
		assert.Equal(t, []int{3, 8}, tree.Keys(), "keys in order")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})

	t.Run("avl tree with ascending keys", func(t *testing.T) {
		// Prepare
		tree, err := NewAVLTree[int, string](TreeConf{})
		require.NoError(t, err, "create tree")

		// Execute
		for i := 1; i <= 7; i++ {
			_ = tree.Insert(entry.New(i, "v"))
		}

		// Check
		assert.Equal(t, 3, tree.Height(), "perfect tree")
		assert.NoError(t, tree.Verify(), "tree is valid")
	})

	t.Run("open hash table with colliding duplicates", func(t *testing.T) {
		// Prepare
		table, err := NewOpenHashTable[int, string](HashConf[int]{Capacity: 1, HashFunc: func(int) uint64 { return 0 }})
		require.NoError(t, err, "create table")

		// Execute
		_ = table.Insert(entry.New(1, "x"))
		_ = table.Insert(entry.New(1, "y"))

		// Check
		assert.Equal(t, "y", table.Find(1).Value, "most recent duplicate wins")
		assert.True(t, table.Remove(1), "removed once")
		assert.Equal(t, "x", table.Find(1).Value, "older duplicate remains")
	})

	t.Run("closed hash table runs full", func(t *testing.T) {
		// Prepare
		table, err := NewClosedHashTable[string, int](HashConf[string]{Capacity: 2, HashFunc: hashfunc.CRC32String})
		require.NoError(t, err, "create table")
		_ = table.Insert(entry.New("a", 1))
		_ = table.Insert(entry.New("b", 2))

		// Execute
		err = table.Insert(entry.New("c", 3))

		// Check
		assert.True(t, errors.Is(err, variant.TableFull{}), "table full")
		assert.Equal(t, 2, table.Stat(false).Records, "two records")
	})

	t.Run("value can be changed through find", func(t *testing.T) {
		for _, kind := range variant.All {
			t.Run(variant.Name(kind), func(t *testing.T) {
				// Prepare
				table, _ := New[string, int](kind, Conf[string]{})
				_ = table.Insert(entry.New("k", 1))

				// Execute
				table.Find("k").Value = 2

				// Check
				assert.Equal(t, 2, table.Find("k").Value, "value changed in place")
			})
		}
	})
}

// runOps - Applies ops to table and to a map, a non-negative op inserts that key and a negative op removes key
// -op-1. It returns an error as soon as the table disagrees with the map or breaks an invariant.
func runOps(table Table[int, int], capacity int, ops []int) error {
	oracle := make(map[int]int)

	for i, op := range ops {
		if op >= 0 {
			err := table.Insert(entry.New(op, i))
			if errors.Is(err, variant.TableFull{}) {
				if _, ok := oracle[op]; ok || len(oracle) < capacity {
					return errors.Newf("unexpected table full at op #%d", i)
				}
				continue
			}
			if err != nil {
				return err
			}
			oracle[op] = i
		} else {
			key := -op - 1
			_, ok := oracle[key]
			if table.Remove(key) != ok {
				return errors.Newf("remove of key %d at op #%d disagrees with map", key, i)
			}
			delete(oracle, key)
		}

		if err := table.(verifier).Verify(); err != nil {
			return err
		}
		if table.Len() != len(oracle) {
			return errors.Newf("size %d differs from map size %d at op #%d", table.Len(), len(oracle), i)
		}
	}

	for k, v := range oracle {
		e := table.Find(k)
		if e == nil || e.Value != v {
			return errors.Newf("key %d not found with value %d", k, v)
		}
	}

	return nil
}

func TestTables_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	for _, kind := range variant.All {
		kind := kind
		t.Run(variant.Name(kind), func(t *testing.T) {
			properties := gopter.NewProperties(parameters)

			properties.Property("agrees with a map and keeps its invariants", prop.ForAll(
				func(ops []int) bool {
					conf := Conf[int]{Capacity: 16, DuplicatePolicy: variant.Overwrite}
					table, err := New[int, int](kind, conf)
					if err != nil {
						return false
					}
					if err = runOps(table, conf.Capacity, ops); err != nil {
						t.Log(err)
						return false
					}
					return true
				},
				gen.SliceOf(gen.IntRange(-40, 39)),
			))

			properties.Property("clear leaves an empty usable table", prop.ForAll(
				func(keys []int) bool {
					table, err := New[int, int](kind, Conf[int]{Capacity: 64})
					if err != nil {
						return false
					}
					for _, k := range keys {
						_ = table.Insert(entry.New(k, k))
					}
					table.Clear()
					if table.Len() != 0 || table.(verifier).Verify() != nil {
						return false
					}
					for _, k := range keys {
						if table.Find(k) != nil {
							return false
						}
					}
					return table.Insert(entry.New(1, 1)) == nil && table.Find(1) != nil
				},
				gen.SliceOf(gen.IntRange(0, 63)),
			))

			properties.TestingRun(t)
		})
	}
}
