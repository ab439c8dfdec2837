package walk

// Children - Returns the left and right child of a node, the zero value of N is the nil link
type Children[N comparable] func(n N) (left, right N)

// InOrder - Visits all nodes of the tree rooted at root in ascending order without recursion.
// The walk stops early if visit returns false.
func InOrder[N comparable](root N, children Children[N], visit func(n N) bool) {
	var nilNode N
	var stack []N

	n := root
	for n != nilNode || len(stack) > 0 {
		for n != nilNode {
			stack = append(stack, n)
			n, _ = children(n)
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		_, n = children(n)
	}
}

// PostOrder - Visits all nodes of the tree rooted at root, children before their parent, without recursion.
// visit may unlink the children of the node it is given since they have already been visited.
func PostOrder[N comparable](root N, children Children[N], visit func(n N)) {
	var nilNode, last N
	var stack []N

	n := root
	for n != nilNode || len(stack) > 0 {
		if n != nilNode {
			stack = append(stack, n)
			n, _ = children(n)
			continue
		}

		top := stack[len(stack)-1]
		if _, right := children(top); right != nilNode && right != last {
			n = right
			continue
		}

		visit(top)
		last = top
		stack = stack[:len(stack)-1]
	}
}

// Height - Returns the number of nodes on the longest path from root to a nil link, computed level by level.
// An empty tree has height 0.
func Height[N comparable](root N, children Children[N]) (height int) {
	var nilNode N
	if root == nilNode {
		return
	}

	level := []N{root}
	for len(level) > 0 {
		height++
		var next []N
		for _, n := range level {
			left, right := children(n)
			if left != nilNode {
				next = append(next, left)
			}
			if right != nilNode {
				next = append(next, right)
			}
		}
		level = next
	}

	return
}
