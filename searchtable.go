package searchtable

import (
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/hashfunc"
	"github.com/gostonefire/searchtable/internal/hashtable/closed"
	"github.com/gostonefire/searchtable/internal/hashtable/open"
	"github.com/gostonefire/searchtable/internal/model"
	"github.com/gostonefire/searchtable/internal/tree/aa"
	"github.com/gostonefire/searchtable/internal/tree/avl"
	"github.com/gostonefire/searchtable/internal/tree/bst"
	"github.com/gostonefire/searchtable/internal/tree/redblack"
	"github.com/gostonefire/searchtable/variant"
	"golang.org/x/exp/constraints"
)

// Table - Interface shared by every search table variant.
// Tables are not safe for concurrent use, and an entry returned by Find is only valid until the next
// Insert, Remove or Clear on the same table.
type Table[K any, V any] interface {
	// Find - Returns a pointer to the entry with the given key, or nil if there is none. The value may be
	// changed through the pointer, the key must not.
	Find(key K) (e *entry.Entry[K, V])
	// Insert - Adds the entry. If the key is already present the table's duplicate policy decides what happens.
	// Only a ClosedHashTable can fail, with an error of type variant.TableFull.
	Insert(e entry.Entry[K, V]) (err error)
	// Remove - Removes the entry with the given key and returns true, or returns false if there is none.
	Remove(key K) (removed bool)
	// Len - Returns the number of entries
	Len() int
	// Clear - Removes all entries
	Clear()
}

// OrderedTable - Interface of the search trees
type OrderedTable[K any, V any] interface {
	Table[K, V]
	// Keys - Returns all keys in ascending order
	Keys() []K
	// Height - Returns the number of nodes on the longest path from the root, 0 for an empty tree
	Height() int
	// Verify - Returns an error describing the first broken invariant found, or nil
	Verify() error
}

// HashTable - Interface of the hash tables
type HashTable[K any, V any] interface {
	Table[K, V]
	// Stat - Returns usage statistics, with the number of entries per slot or bucket if includeDistribution is true
	Stat(includeDistribution bool) TableStat
	// Verify - Returns an error describing the first broken invariant found, or nil
	Verify() error
}

// TableStat - Statistics on the overall usage and distribution over slots or buckets of a hash table
type TableStat = model.TableStat

// TreeConf - Configuration of a search tree
//   - DuplicatePolicy is what Insert does with an existing key, variant.Default means variant.Overwrite
type TreeConf struct {
	DuplicatePolicy variant.DuplicatePolicy
}

// HashConf - Configuration of a hash table
//   - Capacity is the fixed number of slots or buckets, zero gives 101
//   - HashFunc is the hash function, nil picks the default for integer and string keys
//   - DuplicatePolicy is what Insert does with an existing key, variant.Default means variant.Overwrite for a
//     ClosedHashTable and variant.Shadow for an OpenHashTable
type HashConf[K any] struct {
	Capacity        int
	HashFunc        hashfunc.HashFunc[K]
	DuplicatePolicy variant.DuplicatePolicy
}

// Conf - Configuration for New, the same fields as HashConf. The tree variants only look at DuplicatePolicy.
type Conf[K any] HashConf[K]

var (
	_ OrderedTable[int, int] = (*bst.Tree[int, int])(nil)
	_ OrderedTable[int, int] = (*avl.Tree[int, int])(nil)
	_ OrderedTable[int, int] = (*redblack.Tree[int, int])(nil)
	_ OrderedTable[int, int] = (*aa.Tree[int, int])(nil)
	_ HashTable[int, int]    = (*closed.Table[int, int])(nil)
	_ HashTable[int, int]    = (*open.Table[int, int])(nil)
)

// NewBinarySearchTree - Returns a new empty binary search tree without any rebalancing
func NewBinarySearchTree[K constraints.Ordered, V any](conf TreeConf) (table OrderedTable[K, V], err error) {
	t, err := bst.NewTree[K, V](conf.DuplicatePolicy)
	if err != nil {
		return
	}

	table = t

	return
}

// NewAVLTree - Returns a new empty height balanced tree
func NewAVLTree[K constraints.Ordered, V any](conf TreeConf) (table OrderedTable[K, V], err error) {
	t, err := avl.NewTree[K, V](conf.DuplicatePolicy)
	if err != nil {
		return
	}

	table = t

	return
}

// NewRedBlackTree - Returns a new empty red black tree
func NewRedBlackTree[K constraints.Ordered, V any](conf TreeConf) (table OrderedTable[K, V], err error) {
	t, err := redblack.NewTree[K, V](conf.DuplicatePolicy)
	if err != nil {
		return
	}

	table = t

	return
}

// NewAATree - Returns a new empty AA tree
func NewAATree[K constraints.Ordered, V any](conf TreeConf) (table OrderedTable[K, V], err error) {
	t, err := aa.NewTree[K, V](conf.DuplicatePolicy)
	if err != nil {
		return
	}

	table = t

	return
}

// NewClosedHashTable - Returns a new empty hash table with a fixed number of slots, using linear probing.
// Once every slot holds an entry, inserting a new key fails with an error of type variant.TableFull.
func NewClosedHashTable[K comparable, V any](conf HashConf[K]) (table HashTable[K, V], err error) {
	t, err := closed.NewTable[K, V](conf.Capacity, conf.HashFunc, conf.DuplicatePolicy)
	if err != nil {
		return
	}

	table = t

	return
}

// NewOpenHashTable - Returns a new empty hash table with a fixed number of buckets each holding a chain of
// entries, so it never runs full.
func NewOpenHashTable[K comparable, V any](conf HashConf[K]) (table HashTable[K, V], err error) {
	t, err := open.NewTable[K, V](conf.Capacity, conf.HashFunc, conf.DuplicatePolicy)
	if err != nil {
		return
	}

	table = t

	return
}

// New - Returns a new empty search table of the given variant.
//   - kind is one of the variants defined in the variant package
//   - conf is the configuration, Capacity and HashFunc are only used by the hash tables
//
// It returns:
//   - table which is the created search table
//   - err which is of type UnknownVariant, variant.UnsupportedPolicy or a standard error if the configuration is invalid
func New[K constraints.Ordered, V any](kind int, conf Conf[K]) (table Table[K, V], err error) {
	treeConf := TreeConf{DuplicatePolicy: conf.DuplicatePolicy}
	hashConf := HashConf[K](conf)

	switch kind {
	case variant.BinarySearchTree:
		table, err = NewBinarySearchTree[K, V](treeConf)
	case variant.AVLTree:
		table, err = NewAVLTree[K, V](treeConf)
	case variant.RedBlackTree:
		table, err = NewRedBlackTree[K, V](treeConf)
	case variant.AATree:
		table, err = NewAATree[K, V](treeConf)
	case variant.ClosedHashTable:
		table, err = NewClosedHashTable[K, V](hashConf)
	case variant.OpenHashTable:
		table, err = NewOpenHashTable[K, V](hashConf)
	default:
		err = UnknownVariant{}
	}

	return
}
