package open

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/hashfunc"
	"github.com/gostonefire/searchtable/internal/conf"
	"github.com/gostonefire/searchtable/internal/hash"
	"github.com/gostonefire/searchtable/internal/model"
	"github.com/gostonefire/searchtable/internal/overflow"
	"github.com/gostonefire/searchtable/variant"
)

// Table - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// It uses one fixed size array of buckets where each bucket is a singly linked chain of nodes. New nodes are
// always put at the head of the chain.
type Table[K comparable, V any] struct {
	buckets  []*overflow.Node[K, V]
	chaining *hash.SeparateChaining
	hashFunc hashfunc.HashFunc[K]
	policy   variant.DuplicatePolicy
	n        int
}

// NewTable - Returns a pointer to a new open hash table.
//   - capacity is the fixed number of buckets, zero gives conf.DefaultCapacity
//   - hashFunc is the hash function to use, nil gives hashfunc.Default for the key type
//   - policy is the duplicate policy, variant.Default gives variant.Shadow
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is either of type variant.UnsupportedPolicy or a standard error if the configuration is invalid
func NewTable[K comparable, V any](capacity int, hashFunc hashfunc.HashFunc[K], policy variant.DuplicatePolicy) (table *Table[K, V], err error) {
	if capacity < 0 {
		err = errors.Newf("capacity must be a positive value, got %d", capacity)
		return
	}
	if capacity == 0 {
		capacity = conf.DefaultCapacity
	}

	policy, err = variant.Resolve(variant.OpenHashTable, policy)
	if err != nil {
		return
	}

	// If no hash function was given then use the default for the key type
	if hashFunc == nil {
		hashFunc, err = hashfunc.Default[K]()
		if err != nil {
			return
		}
	}

	table = &Table[K, V]{
		buckets:  make([]*overflow.Node[K, V], capacity),
		chaining: hash.NewSeparateChaining(capacity),
		hashFunc: hashFunc,
		policy:   policy,
	}

	return
}

// Find - Returns a pointer to the first entry with the given key found head to tail in its bucket, with the
// Shadow policy that is the most recently inserted one. It returns nil if there is none.
func (O *Table[K, V]) Find(key K) (e *entry.Entry[K, V]) {
	iter := overflow.NewRecords(O.buckets[O.bucketNo(key)])
	for iter.HasNext() {
		node := iter.Next()
		if node.Entry.Key == key {
			e = &node.Entry
			return
		}
	}

	return
}

// Insert - Puts the entry at the head of its bucket. With the Overwrite and KeepExisting policies an existing
// entry with the same key is looked for first and the policy applied to it instead.
// It never fails, the returned error is always nil.
func (O *Table[K, V]) Insert(e entry.Entry[K, V]) (err error) {
	bucketNo := O.bucketNo(e.Key)

	if O.policy != variant.Shadow {
		if existing := O.Find(e.Key); existing != nil {
			if O.policy == variant.Overwrite {
				existing.Value = e.Value
			}
			return
		}
	}

	O.buckets[bucketNo] = &overflow.Node[K, V]{Entry: e, Next: O.buckets[bucketNo]}
	O.n++

	return
}

// Remove - Unlinks the first node with the given key found head to tail, any older entry with the same key is
// left untouched. It returns true if an entry was removed.
func (O *Table[K, V]) Remove(key K) (removed bool) {
	for link := &O.buckets[O.bucketNo(key)]; *link != nil; link = &(*link).Next {
		if (*link).Entry.Key == key {
			node := *link
			*link = node.Next
			node.Next = nil
			O.n--
			removed = true
			return
		}
	}

	return
}

// Len - Returns the number of entries, stacked duplicates included
func (O *Table[K, V]) Len() int {
	return O.n
}

// Capacity - Returns the fixed number of buckets
func (O *Table[K, V]) Capacity() int {
	return len(O.buckets)
}

// Clear - Releases every chain node by node, the number of buckets stays the same
func (O *Table[K, V]) Clear() {
	for i := range O.buckets {
		node := O.buckets[i]
		for node != nil {
			next := node.Next
			node.Next = nil
			node = next
		}
		O.buckets[i] = nil
	}
	O.n = 0
}

// Stat - Walks through all buckets and produce a model.TableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket,
//     false will set TableStat.BucketDistribution to nil.
func (O *Table[K, V]) Stat(includeDistribution bool) (stat model.TableStat) {
	stat.Capacity = len(O.buckets)
	if includeDistribution {
		stat.BucketDistribution = make([]int, len(O.buckets))
	}

	for i, head := range O.buckets {
		chainLength := overflow.Len(head)
		if chainLength == 0 {
			continue
		}

		stat.Records += chainLength
		stat.UsedBuckets++
		if chainLength > stat.LongestRun {
			stat.LongestRun = chainLength
		}
		if includeDistribution {
			stat.BucketDistribution[i] = chainLength
		}
	}

	return
}

// Verify - Checks that every entry sits in the bucket its key hashes to, that the entry counter matches the
// chains and, unless the Shadow policy is used, that no key occurs twice.
func (O *Table[K, V]) Verify() (err error) {
	var n int
	for i, head := range O.buckets {
		seen := make(map[K]struct{})
		iter := overflow.NewRecords(head)
		for iter.HasNext() {
			node := iter.Next()
			n++
			if bucketNo := O.bucketNo(node.Entry.Key); bucketNo != i {
				return errors.AssertionFailedf("key %v stored in bucket %d but hashes to bucket %d", node.Entry.Key, i, bucketNo)
			}
			if _, ok := seen[node.Entry.Key]; ok && O.policy != variant.Shadow {
				return errors.AssertionFailedf("key %v occurs more than once in bucket %d", node.Entry.Key, i)
			}
			seen[node.Entry.Key] = struct{}{}
		}
	}

	if n != O.n {
		return errors.AssertionFailedf("entry counter %d differs from %d chained entries", O.n, n)
	}

	return
}

// bucketNo - Returns which bucket the given key belongs to
func (O *Table[K, V]) bucketNo(key K) int {
	return O.chaining.BucketIndex(O.hashFunc(key))
}
