package overflow

import "github.com/gostonefire/searchtable/entry"

// Node - One link in a bucket chain, it owns its entry and the rest of the chain
type Node[K any, V any] struct {
	Entry entry.Entry[K, V]
	Next  *Node[K, V]
}

// Records - Is used to iterate over the nodes of a bucket chain one by one, head to tail.
type Records[K any, V any] struct {
	next *Node[K, V]
}

// NewRecords - Returns a pointer to a new Records struct starting at head
func NewRecords[K any, V any](head *Node[K, V]) *Records[K, V] {
	return &Records[K, V]{next: head}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (O *Records[K, V]) HasNext() bool {
	return O.next != nil
}

// Next - Returns the next node in the chain, or nil if the chain is exhausted.
func (O *Records[K, V]) Next() (node *Node[K, V]) {
	node = O.next
	if node != nil {
		O.next = node.Next
	}

	return
}

// Len - Returns the number of nodes in a chain
func Len[K any, V any](head *Node[K, V]) (n int) {
	for ; head != nil; head = head.Next {
		n++
	}

	return
}
