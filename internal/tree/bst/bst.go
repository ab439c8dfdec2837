package bst

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/internal/tree/walk"
	"github.com/gostonefire/searchtable/variant"
	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	entry       entry.Entry[K, V]
	left, right *node[K, V]
}

func (n *node[K, V]) children() (left, right *node[K, V]) {
	return n.left, n.right
}

// Tree - Plain binary search tree without any rebalancing, a worst case insertion order gives a tree of
// depth n. Descents are done iteratively on links so a degenerate tree doesn't grow the call stack.
type Tree[K constraints.Ordered, V any] struct {
	root   *node[K, V]
	policy variant.DuplicatePolicy
	n      int
}

// NewTree - Returns a pointer to a new empty binary search tree
//   - policy is the duplicate policy, variant.Shadow is not supported
func NewTree[K constraints.Ordered, V any](policy variant.DuplicatePolicy) (tree *Tree[K, V], err error) {
	policy, err = variant.Resolve(variant.BinarySearchTree, policy)
	if err != nil {
		return
	}

	tree = &Tree[K, V]{policy: policy}

	return
}

// Find - Returns a pointer to the entry with the given key, or nil if there is none
func (B *Tree[K, V]) Find(key K) (e *entry.Entry[K, V]) {
	t := B.root
	for t != nil {
		switch {
		case key < t.entry.Key:
			t = t.left
		case t.entry.Key < key:
			t = t.right
		default:
			e = &t.entry
			return
		}
	}

	return
}

// Insert - Descends by key comparison and attaches a new node at the nil link reached.
// If the key is found on the way the duplicate policy decides. It never fails.
func (B *Tree[K, V]) Insert(e entry.Entry[K, V]) (err error) {
	link := B.search(e.Key)
	if *link != nil {
		if B.policy == variant.Overwrite {
			(*link).entry.Value = e.Value
		}
		return
	}

	*link = &node[K, V]{entry: e}
	B.n++

	return
}

// Remove - Removes the entry with the given key. A node with two children gets the entry of its in order
// successor and the successor's node is spliced out instead. It returns true if an entry was removed.
func (B *Tree[K, V]) Remove(key K) (removed bool) {
	link := B.search(key)
	t := *link
	if t == nil {
		return
	}

	if t.left != nil && t.right != nil {
		succLink := &t.right
		for (*succLink).left != nil {
			succLink = &(*succLink).left
		}
		t.entry = (*succLink).entry
		link = succLink
		t = *link
	}

	// t has at most one child here
	if t.left != nil {
		*link = t.left
	} else {
		*link = t.right
	}
	t.left, t.right = nil, nil
	B.n--
	removed = true

	return
}

// Len - Returns the number of entries
func (B *Tree[K, V]) Len() int {
	return B.n
}

// Clear - Releases all nodes in post order
func (B *Tree[K, V]) Clear() {
	walk.PostOrder(B.root, (*node[K, V]).children, func(n *node[K, V]) {
		n.left, n.right = nil, nil
	})
	B.root = nil
	B.n = 0
}

// Height - Returns the number of nodes on the longest path from the root, 0 for an empty tree
func (B *Tree[K, V]) Height() int {
	return walk.Height(B.root, (*node[K, V]).children)
}

// Keys - Returns all keys in order
func (B *Tree[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, B.n)
	walk.InOrder(B.root, (*node[K, V]).children, func(n *node[K, V]) bool {
		keys = append(keys, n.entry.Key)
		return true
	})

	return
}

// Verify - Checks that an in order walk gives strictly ascending keys and that the entry counter is right
func (B *Tree[K, V]) Verify() (err error) {
	var prev *node[K, V]
	var count int
	walk.InOrder(B.root, (*node[K, V]).children, func(n *node[K, V]) bool {
		if prev != nil && !(prev.entry.Key < n.entry.Key) {
			err = errors.AssertionFailedf("keys out of order: %v followed by %v", prev.entry.Key, n.entry.Key)
			return false
		}
		prev = n
		count++
		return true
	})
	if err != nil {
		return
	}

	if count != B.n {
		err = errors.AssertionFailedf("entry counter %d differs from %d nodes", B.n, count)
	}

	return
}

// search - Returns the link that points at the node with the key, or the nil link where it would be attached
func (B *Tree[K, V]) search(key K) (link **node[K, V]) {
	link = &B.root
	for *link != nil {
		switch {
		case key < (*link).entry.Key:
			link = &(*link).left
		case (*link).entry.Key < key:
			link = &(*link).right
		default:
			return
		}
	}

	return
}
