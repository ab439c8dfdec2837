package variant

import "fmt"

// BinarySearchTree - Unbalanced binary search tree
const BinarySearchTree int = 1

// AVLTree - Height balanced binary search tree
const AVLTree int = 2

// RedBlackTree - Colour balanced binary search tree using top-down insertion and deletion
const RedBlackTree int = 3

// AATree - Level balanced binary search tree using skew and split
const AATree int = 4

// ClosedHashTable - Fixed capacity hash table resolving collisions by linear probing
const ClosedHashTable int = 5

// OpenHashTable - Fixed capacity hash table resolving collisions by chaining in buckets
const OpenHashTable int = 6

// All - Every variant in the order they are usually presented
var All = []int{BinarySearchTree, AVLTree, RedBlackTree, AATree, ClosedHashTable, OpenHashTable}

var names = map[int]string{
	BinarySearchTree: "BinarySearchTree",
	AVLTree:          "AVLTree",
	RedBlackTree:     "RedBlackTree",
	AATree:           "AATree",
	ClosedHashTable:  "ClosedHashTable",
	OpenHashTable:    "OpenHashTable",
}

// Name - Returns the name of a variant, or "Unknown(n)" for anything not defined
func Name(kind int) string {
	if name, ok := names[kind]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", kind)
}

// FromName - Returns the variant given its name
func FromName(name string) (kind int, ok bool) {
	for k, n := range names {
		if n == name {
			return k, true
		}
	}
	return
}

// IsOrdered - Returns true if the variant is one of the search trees
func IsOrdered(kind int) bool {
	return kind >= BinarySearchTree && kind <= AATree
}
