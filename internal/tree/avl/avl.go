package avl

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/internal/conf"
	"github.com/gostonefire/searchtable/internal/tree/walk"
	"github.com/gostonefire/searchtable/internal/utils"
	"github.com/gostonefire/searchtable/variant"
	"golang.org/x/exp/constraints"
)

type side int

const (
	leftSide side = iota
	rightSide
)

type node[K constraints.Ordered, V any] struct {
	entry       entry.Entry[K, V]
	left, right *node[K, V]
	height      int
}

func (n *node[K, V]) children() (left, right *node[K, V]) {
	return n.left, n.right
}

func height[K constraints.Ordered, V any](t *node[K, V]) int {
	if t == nil {
		return 0
	}
	return t.height
}

func (n *node[K, V]) updateHeight() {
	n.height = utils.Max(height(n.left), height(n.right)) + 1
}

// Tree - Height balanced binary search tree. For every node the heights of its two subtrees differ by at
// most one, which keeps the depth logarithmic in the number of entries.
type Tree[K constraints.Ordered, V any] struct {
	root   *node[K, V]
	policy variant.DuplicatePolicy
	n      int
}

// NewTree - Returns a pointer to a new empty AVL tree
//   - policy is the duplicate policy, variant.Shadow is not supported
func NewTree[K constraints.Ordered, V any](policy variant.DuplicatePolicy) (tree *Tree[K, V], err error) {
	policy, err = variant.Resolve(variant.AVLTree, policy)
	if err != nil {
		return
	}

	tree = &Tree[K, V]{policy: policy}

	return
}

// Find - Returns a pointer to the entry with the given key, or nil if there is none
func (A *Tree[K, V]) Find(key K) (e *entry.Entry[K, V]) {
	t := A.root
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

// Insert - Adds the entry and rebalances on the way back up. It never fails.
func (A *Tree[K, V]) Insert(e entry.Entry[K, V]) (err error) {
	A.root = A.insert(e, A.root)
	return
}

// Remove - Removes the entry with the given key and rebalances on the way back up as long as subtrees got
// shorter. It returns true if an entry was removed.
func (A *Tree[K, V]) Remove(key K) (removed bool) {
	n := A.n
	A.root, _ = A.remove(key, A.root)
	removed = A.n < n

	return
}

// Len - Returns the number of entries
func (A *Tree[K, V]) Len() int {
	return A.n
}

// Clear - Releases all nodes in post order
func (A *Tree[K, V]) Clear() {
	walk.PostOrder(A.root, (*node[K, V]).children, func(n *node[K, V]) {
		n.left, n.right = nil, nil
	})
	A.root = nil
	A.n = 0
}

// Height - Returns the height of the tree, 0 for an empty tree
func (A *Tree[K, V]) Height() int {
	return height(A.root)
}

// Keys - Returns all keys in order
func (A *Tree[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, A.n)
	walk.InOrder(A.root, (*node[K, V]).children, func(n *node[K, V]) bool {
		keys = append(keys, n.entry.Key)
		return true
	})

	return
}

// Verify - Checks ordering, stored heights, the balance condition and the entry counter
func (A *Tree[K, V]) Verify() (err error) {
	var prev *node[K, V]
	var count int
	walk.InOrder(A.root, (*node[K, V]).children, func(n *node[K, V]) bool {
		if prev != nil && !(prev.entry.Key < n.entry.Key) {
			err = errors.AssertionFailedf("keys out of order: %v followed by %v", prev.entry.Key, n.entry.Key)
			return false
		}
		hl, hr := height(n.left), height(n.right)
		if n.height != utils.Max(hl, hr)+1 {
			err = errors.AssertionFailedf("node %v has height %d, children give %d", n.entry.Key, n.height, utils.Max(hl, hr)+1)
			return false
		}
		if utils.Abs(hl-hr) > 1 {
			err = errors.AssertionFailedf("node %v is out of balance, left height %d right height %d", n.entry.Key, hl, hr)
			return false
		}
		prev = n
		count++
		return true
	})
	if err != nil {
		return
	}

	if count != A.n {
		err = errors.AssertionFailedf("entry counter %d differs from %d nodes", A.n, count)
	}

	return
}

// insert - Inserts into the subtree t and returns its new root
func (A *Tree[K, V]) insert(e entry.Entry[K, V], t *node[K, V]) *node[K, V] {
	if t == nil {
		A.n++
		return &node[K, V]{entry: e, height: conf.LeafHeight}
	}

	switch {
	case e.Key < t.entry.Key:
		t.left = A.insert(e, t.left)
		if height(t.left)-height(t.right) == 2 {
			if e.Key < t.left.entry.Key {
				t = rotateLL(t)
			} else {
				t = rotateLR(t)
			}
		}
	case t.entry.Key < e.Key:
		t.right = A.insert(e, t.right)
		if height(t.right)-height(t.left) == 2 {
			if t.right.entry.Key < e.Key {
				t = rotateRR(t)
			} else {
				t = rotateRL(t)
			}
		}
	default:
		if A.policy == variant.Overwrite {
			t.entry.Value = e.Value
		}
		return t
	}

	t.updateHeight()

	return t
}

// remove - Removes key from the subtree t and returns its new root and whether it got shorter
func (A *Tree[K, V]) remove(key K, t *node[K, V]) (root *node[K, V], shorter bool) {
	if t == nil {
		return nil, false
	}

	switch {
	case key < t.entry.Key:
		if t.left, shorter = A.remove(key, t.left); !shorter {
			return t, false
		}
		return adjust(t, leftSide)

	case t.entry.Key < key:
		if t.right, shorter = A.remove(key, t.right); !shorter {
			return t, false
		}
		return adjust(t, rightSide)
	}

	// Leaf or only one child, splice it out
	if t.left == nil || t.right == nil {
		child := t.left
		if child == nil {
			child = t.right
		}
		t.left, t.right = nil, nil
		A.n--
		return child, true
	}

	// Two children, take over the successor's entry and remove the successor from the right subtree
	succ := t.right
	for succ.left != nil {
		succ = succ.left
	}
	t.entry = succ.entry
	if t.right, shorter = A.remove(succ.entry.Key, t.right); !shorter {
		return t, false
	}

	return adjust(t, rightSide)
}

// adjust - Rebalances t after the subtree on the given side got one shorter.
// It returns the new root of the subtree and whether t's subtree as a whole got shorter.
func adjust[K constraints.Ordered, V any](t *node[K, V], shortened side) (root *node[K, V], shorter bool) {
	oldHeight := t.height
	hl, hr := height(t.left), height(t.right)

	if shortened == rightSide {
		switch hl - hr {
		case 1:
			// The sibling was already taller, nothing changes above
			return t, false
		case 0:
			t.height--
			return t, true
		}

		if height(t.left.right) > height(t.left.left) {
			t = rotateLR(t)
		} else {
			t = rotateLL(t)
		}
	} else {
		switch hr - hl {
		case 1:
			return t, false
		case 0:
			t.height--
			return t, true
		}

		if height(t.right.left) > height(t.right.right) {
			t = rotateRL(t)
		} else {
			t = rotateRR(t)
		}
	}

	// A single rotation over equally high grandchildren keeps the height, every other rotation lowers it
	return t, t.height < oldHeight
}

// rotateLL - Single right rotation for a left-left imbalance
func rotateLL[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	t1 := t.left
	t.left = t1.right
	t1.right = t
	t.updateHeight()
	t1.updateHeight()

	return t1
}

// rotateRR - Single left rotation for a right-right imbalance
func rotateRR[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	t1 := t.right
	t.right = t1.left
	t1.left = t
	t.updateHeight()
	t1.updateHeight()

	return t1
}

// rotateLR - Double rotation for a left-right imbalance
func rotateLR[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	t.left = rotateRR(t.left)
	return rotateLL(t)
}

// rotateRL - Double rotation for a right-left imbalance
func rotateRL[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	t.right = rotateLL(t.right)
	return rotateRR(t)
}
