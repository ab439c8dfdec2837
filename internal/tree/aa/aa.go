package aa

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/internal/conf"
	"github.com/gostonefire/searchtable/internal/tree/walk"
	"github.com/gostonefire/searchtable/internal/utils"
	"github.com/gostonefire/searchtable/variant"
	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	entry       entry.Entry[K, V]
	left, right *node[K, V]
	level       int
}

func (n *node[K, V]) children() (left, right *node[K, V]) {
	return n.left, n.right
}

// levelOf - Level of n where a nil link counts as level 0
func levelOf[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.level
}

// Tree - AA tree, a balanced binary search tree where balance is expressed by a level per node.
// Horizontal links only go to the right, which leaves two restructuring primitives: skew and split.
type Tree[K constraints.Ordered, V any] struct {
	root   *node[K, V]
	policy variant.DuplicatePolicy
	n      int
}

// NewTree - Returns a pointer to a new empty AA tree
//   - policy is the duplicate policy, variant.Shadow is not supported
func NewTree[K constraints.Ordered, V any](policy variant.DuplicatePolicy) (tree *Tree[K, V], err error) {
	policy, err = variant.Resolve(variant.AATree, policy)
	if err != nil {
		return
	}

	tree = &Tree[K, V]{policy: policy}

	return
}

// Find - Returns a pointer to the entry with the given key, or nil if there is none
func (T *Tree[K, V]) Find(key K) (e *entry.Entry[K, V]) {
	t := T.root
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

// Insert - Adds the entry as a level 1 leaf and applies skew then split on every node on the way back up.
// It never fails.
func (T *Tree[K, V]) Insert(e entry.Entry[K, V]) (err error) {
	T.root = T.insert(e, T.root)
	return
}

// Remove - Removes the entry with the given key. On the way back up every node gets its level lowered to
// fit its children, and skew and split are applied along the right spine of the subtree.
// It returns true if an entry was removed.
func (T *Tree[K, V]) Remove(key K) (removed bool) {
	n := T.n
	T.root = T.remove(key, T.root)
	removed = T.n < n

	return
}

// Len - Returns the number of entries
func (T *Tree[K, V]) Len() int {
	return T.n
}

// Clear - Releases all nodes in post order
func (T *Tree[K, V]) Clear() {
	walk.PostOrder(T.root, (*node[K, V]).children, func(n *node[K, V]) {
		n.left, n.right = nil, nil
	})
	T.root = nil
	T.n = 0
}

// Height - Returns the number of nodes on the longest path from the root, 0 for an empty tree
func (T *Tree[K, V]) Height() int {
	return walk.Height(T.root, (*node[K, V]).children)
}

// Level - Returns the level of the root, 0 for an empty tree
func (T *Tree[K, V]) Level() int {
	return levelOf(T.root)
}

// Keys - Returns all keys in order
func (T *Tree[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, T.n)
	walk.InOrder(T.root, (*node[K, V]).children, func(n *node[K, V]) bool {
		keys = append(keys, n.entry.Key)
		return true
	})

	return
}

// Verify - Checks ordering, the level rules and the entry counter.
// The level rules are: leaves are at level 1, a left child is at a lower level than its parent, a right child
// is at most at its parent's level, a right grandchild is at a lower level than its grandparent and every node
// above level 1 has two children.
func (T *Tree[K, V]) Verify() (err error) {
	var prev *node[K, V]
	var count int
	walk.InOrder(T.root, (*node[K, V]).children, func(n *node[K, V]) bool {
		if prev != nil && !(prev.entry.Key < n.entry.Key) {
			err = errors.AssertionFailedf("keys out of order: %v followed by %v", prev.entry.Key, n.entry.Key)
			return false
		}
		prev = n
		count++

		err = checkLevels(n)
		return err == nil
	})
	if err != nil {
		return
	}

	if count != T.n {
		err = errors.AssertionFailedf("entry counter %d differs from %d nodes", T.n, count)
	}

	return
}

// checkLevels - Checks the level rules local to n
func checkLevels[K constraints.Ordered, V any](n *node[K, V]) error {
	switch {
	case n.left == nil && n.right == nil && n.level != conf.RootLevel:
		return errors.AssertionFailedf("leaf %v at level %d", n.entry.Key, n.level)
	case levelOf(n.left) >= n.level:
		return errors.AssertionFailedf("left child of %v not below level %d", n.entry.Key, n.level)
	case levelOf(n.right) > n.level:
		return errors.AssertionFailedf("right child of %v above level %d", n.entry.Key, n.level)
	case n.right != nil && levelOf(n.right.right) >= n.level:
		return errors.AssertionFailedf("right grandchild of %v not below level %d", n.entry.Key, n.level)
	case n.level > conf.RootLevel && (n.left == nil || n.right == nil):
		return errors.AssertionFailedf("node %v at level %d lacks a child", n.entry.Key, n.level)
	}

	return nil
}

// insert - Inserts into the subtree t and returns its new root
func (T *Tree[K, V]) insert(e entry.Entry[K, V], t *node[K, V]) *node[K, V] {
	switch {
	case t == nil:
		T.n++
		return &node[K, V]{entry: e, level: conf.RootLevel}
	case e.Key < t.entry.Key:
		t.left = T.insert(e, t.left)
	case t.entry.Key < e.Key:
		t.right = T.insert(e, t.right)
	default:
		if T.policy == variant.Overwrite {
			t.entry.Value = e.Value
		}
		return t
	}

	return split(skew(t))
}

// remove - Removes key from the subtree t and returns its new root
func (T *Tree[K, V]) remove(key K, t *node[K, V]) *node[K, V] {
	if t == nil {
		return nil
	}

	switch {
	case key < t.entry.Key:
		t.left = T.remove(key, t.left)
	case t.entry.Key < key:
		t.right = T.remove(key, t.right)
	case t.left != nil && t.right != nil:
		succ := t.right
		for succ.left != nil {
			succ = succ.left
		}
		t.entry = succ.entry
		t.right = T.remove(succ.entry.Key, t.right)
	default:
		child := t.left
		if child == nil {
			child = t.right
		}
		t.left, t.right = nil, nil
		T.n--
		return child
	}

	// Lower the level to what the children support and cap the right child at the same level
	if t.left == nil || t.right == nil {
		t.level = conf.RootLevel
	} else {
		t.level = utils.Min(t.left.level, t.right.level) + 1
	}
	if t.right != nil && t.right.level > t.level {
		t.right.level = t.level
	}

	t = skew(t)
	if t.right != nil {
		t.right = skew(t.right)
		if t.right.right != nil {
			t.right.right = skew(t.right.right)
		}
	}
	t = split(t)
	if t.right != nil {
		t.right = split(t.right)
	}

	return t
}

// skew - Removes a left horizontal link by a right rotation
func skew[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	if t == nil || t.left == nil || t.left.level != t.level {
		return t
	}

	l := t.left
	t.left = l.right
	l.right = t

	return l
}

// split - Removes two consecutive right horizontal links by a left rotation, raising the middle node a level
func split[K constraints.Ordered, V any](t *node[K, V]) *node[K, V] {
	if t == nil || t.right == nil || t.right.right == nil || t.right.right.level != t.level {
		return t
	}

	r := t.right
	t.right = r.left
	r.left = t
	r.level++

	return r
}
