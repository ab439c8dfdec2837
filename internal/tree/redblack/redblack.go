package redblack

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/internal/tree/walk"
	"github.com/gostonefire/searchtable/variant"
	"golang.org/x/exp/constraints"
)

type color uint8

const (
	black color = iota
	red
)

const (
	left  = 0
	right = 1
)

type node[K constraints.Ordered, V any] struct {
	entry entry.Entry[K, V]
	link  [2]*node[K, V]
	color color
}

func (n *node[K, V]) children() (l, r *node[K, V]) {
	return n.link[left], n.link[right]
}

func isRed[K constraints.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

// side - Returns which link of p holds c
func side[K constraints.Ordered, V any](p, c *node[K, V]) int {
	if p.link[right] == c {
		return right
	}
	return left
}

// Tree - Red black tree where both insert and remove restore balance in a single pass from the root
// towards the leaves, so no path back up is needed. Equal keys are never routed into a subtree.
type Tree[K constraints.Ordered, V any] struct {
	root   *node[K, V]
	policy variant.DuplicatePolicy
	n      int
}

// NewTree - Returns a pointer to a new empty red black tree
//   - policy is the duplicate policy, variant.Shadow is not supported
func NewTree[K constraints.Ordered, V any](policy variant.DuplicatePolicy) (tree *Tree[K, V], err error) {
	policy, err = variant.Resolve(variant.RedBlackTree, policy)
	if err != nil {
		return
	}

	tree = &Tree[K, V]{policy: policy}

	return
}

// Find - Returns a pointer to the entry with the given key, or nil if there is none
func (R *Tree[K, V]) Find(key K) (e *entry.Entry[K, V]) {
	t := R.root
	for t != nil {
		switch {
		case key < t.entry.Key:
			t = t.link[left]
		case t.entry.Key < key:
			t = t.link[right]
		default:
			e = &t.entry
			return
		}
	}

	return
}

// Insert - Descends from the root and flips the colour of every black node with two red children on the way.
// A red node below a red parent is fixed at once by rotating at the grandparent. The new node is attached
// red at the bottom and the root is always left black. It never fails.
func (R *Tree[K, V]) Insert(e entry.Entry[K, V]) (err error) {
	if R.root == nil {
		R.root = &node[K, V]{entry: e, color: black}
		R.n++
		return
	}

	// The root hangs on the right link of a temporary head so that rotations at the root need no special case
	head := &node[K, V]{color: black}
	head.link[right] = R.root

	var great, grand *node[K, V]
	parent, dir := head, right
	q := R.root

	for {
		inserted := false
		if q == nil {
			q = &node[K, V]{entry: e, color: red}
			parent.link[dir] = q
			R.n++
			inserted = true
		} else if isRed(q.link[left]) && isRed(q.link[right]) {
			q.color = red
			q.link[left].color = black
			q.link[right].color = black
		}

		if isRed(q) && isRed(parent) {
			q = fixRedRed(great, grand, parent, q)
			parent, grand, great = great, nil, nil
		}
		head.link[right].color = black

		if inserted {
			break
		}
		if q.entry.Key == e.Key {
			if R.policy == variant.Overwrite {
				q.entry.Value = e.Value
			}
			break
		}

		great, grand, parent = grand, parent, q
		dir = right
		if e.Key < q.entry.Key {
			dir = left
		}
		q = q.link[dir]
	}

	R.root = head.link[right]
	R.root.color = black

	return
}

// Remove - Descends from the root pushing a red node down along the search path, so that the node finally
// spliced out is red and the black height is kept. A node with two children gets the entry of its in order
// successor, which is removed instead. It returns true if an entry was removed.
// Removing an absent key leaves the tree untouched, colours included.
func (R *Tree[K, V]) Remove(key K) (removed bool) {
	if R.Find(key) == nil {
		return
	}

	head := &node[K, V]{color: black}
	head.link[right] = R.root

	var grand, parent, found *node[K, V]
	q := head
	dir := right

	for q.link[dir] != nil {
		last := dir
		grand, parent = parent, q
		q = q.link[dir]

		// Equal keys continue to the right to end up at the successor
		dir = right
		if key < q.entry.Key {
			dir = left
		}
		if q.entry.Key == key {
			found = q
		}

		if isRed(q) || isRed(q.link[dir]) {
			continue
		}

		if isRed(q.link[1-dir]) {
			parent.link[last] = rotate(q, dir)
			parent = parent.link[last]
			continue
		}

		sibling := parent.link[1-last]
		if sibling == nil {
			continue
		}

		if !isRed(sibling.link[left]) && !isRed(sibling.link[right]) {
			parent.color = black
			sibling.color = red
			q.color = red
		} else {
			dir2 := side(grand, parent)
			if isRed(sibling.link[last]) {
				grand.link[dir2] = rotateDouble(parent, last)
			} else {
				grand.link[dir2] = rotate(parent, last)
			}

			r := grand.link[dir2]
			q.color = red
			r.color = red
			r.link[left].color = black
			r.link[right].color = black
		}
	}

	if found != nil {
		found.entry = q.entry
		child := q.link[left]
		if child == nil {
			child = q.link[right]
		}
		parent.link[side(parent, q)] = child
		q.link[left], q.link[right] = nil, nil
		R.n--
		removed = true
	}

	R.root = head.link[right]
	if R.root != nil {
		R.root.color = black
	}

	return
}

// Len - Returns the number of entries
func (R *Tree[K, V]) Len() int {
	return R.n
}

// Clear - Releases all nodes in post order
func (R *Tree[K, V]) Clear() {
	walk.PostOrder(R.root, (*node[K, V]).children, func(n *node[K, V]) {
		n.link[left], n.link[right] = nil, nil
	})
	R.root = nil
	R.n = 0
}

// Height - Returns the number of nodes on the longest path from the root, 0 for an empty tree
func (R *Tree[K, V]) Height() int {
	return walk.Height(R.root, (*node[K, V]).children)
}

// Keys - Returns all keys in order
func (R *Tree[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, R.n)
	walk.InOrder(R.root, (*node[K, V]).children, func(n *node[K, V]) bool {
		keys = append(keys, n.entry.Key)
		return true
	})

	return
}

// IsRootBlack - Returns true if the tree is empty or its root is black
func (R *Tree[K, V]) IsRootBlack() bool {
	return !isRed(R.root)
}

// Verify - Checks ordering, a black root, that no red node has a red child, that all paths from the root to
// a nil link pass the same number of black nodes and that the entry counter is right
func (R *Tree[K, V]) Verify() (err error) {
	if isRed(R.root) {
		return errors.AssertionFailedf("root %v is red", R.root.entry.Key)
	}

	var prev *node[K, V]
	var count int
	walk.InOrder(R.root, (*node[K, V]).children, func(n *node[K, V]) bool {
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

	if count != R.n {
		return errors.AssertionFailedf("entry counter %d differs from %d nodes", R.n, count)
	}

	_, err = blackHeight(R.root)

	return
}

// blackHeight - Returns the number of black nodes on every path from n down to a nil link
func blackHeight[K constraints.Ordered, V any](n *node[K, V]) (height int, err error) {
	if n == nil {
		return 1, nil
	}

	if isRed(n) && (isRed(n.link[left]) || isRed(n.link[right])) {
		return 0, errors.AssertionFailedf("red node %v has a red child", n.entry.Key)
	}

	lh, err := blackHeight(n.link[left])
	if err != nil {
		return
	}
	rh, err := blackHeight(n.link[right])
	if err != nil {
		return
	}
	if lh != rh {
		return 0, errors.AssertionFailedf("node %v has black height %d on the left and %d on the right", n.entry.Key, lh, rh)
	}

	height = lh
	if n.color == black {
		height++
	}

	return
}

// fixRedRed - Repairs a red q below a red parent by a single or double rotation at the black grandparent.
// It returns the new black root of the rotated subtree, which is linked into great.
func fixRedRed[K constraints.Ordered, V any](great, grand, parent, q *node[K, V]) (r *node[K, V]) {
	gDir := side(grand, parent)
	if gDir == side(parent, q) {
		r = rotate(grand, 1-gDir)
	} else {
		r = rotateDouble(grand, 1-gDir)
	}
	great.link[side(great, grand)] = r

	return
}

// rotate - Rotates t towards dir so that its child on the other side becomes the subtree root.
// The new root is coloured black and t red.
func rotate[K constraints.Ordered, V any](t *node[K, V], dir int) *node[K, V] {
	save := t.link[1-dir]
	t.link[1-dir] = save.link[dir]
	save.link[dir] = t
	t.color = red
	save.color = black

	return save
}

// rotateDouble - Rotates the child of t on the other side away from dir, then t towards dir
func rotateDouble[K constraints.Ordered, V any](t *node[K, V], dir int) *node[K, V] {
	t.link[1-dir] = rotate(t.link[1-dir], 1-dir)
	return rotate(t, dir)
}
