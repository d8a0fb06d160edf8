package store

// Left-leaning red-black tree (Sedgewick LLRB, 2-3 variant). Red links lean
// left, no node has two red links, and every root-to-nil path crosses the
// same number of black links, which bounds lookups at O(log n).

const (
	red   = true
	black = false
)

type rbtNode struct {
	key         string
	value       string
	left, right *rbtNode
	color       bool // color of the link from the parent
}

// RBTree is a Store backed by a left-leaning red-black tree.
type RBTree struct {
	root *rbtNode
	size int
}

// NewRBTree creates an empty red-black tree store.
func NewRBTree() *RBTree {
	return &RBTree{}
}

func (t *RBTree) Get(token string) (string, bool) {
	n := t.root
	for n != nil {
		switch {
		case token < n.key:
			n = n.left
		case token > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	return "", false
}

func (t *RBTree) Put(token, value string) {
	t.root = t.insert(t.root, token, value)
	t.root.color = black
}

func (t *RBTree) Len() int {
	return t.size
}

func (t *RBTree) insert(n *rbtNode, key, value string) *rbtNode {
	if n == nil {
		t.size++
		return &rbtNode{key: key, value: value, color: red}
	}

	switch {
	case key < n.key:
		n.left = t.insert(n.left, key, value)
	case key > n.key:
		n.right = t.insert(n.right, key, value)
	default:
		n.value = value
	}

	// Restore the left-leaning invariants on the way back up.
	if isRed(n.right) && !isRed(n.left) {
		n = rotateLeft(n)
	}
	if isRed(n.left) && isRed(n.left.left) {
		n = rotateRight(n)
	}
	if isRed(n.left) && isRed(n.right) {
		flipColors(n)
	}
	return n
}

func isRed(n *rbtNode) bool {
	return n != nil && n.color == red
}

func rotateLeft(n *rbtNode) *rbtNode {
	x := n.right
	n.right = x.left
	x.left = n
	x.color = n.color
	n.color = red
	return x
}

func rotateRight(n *rbtNode) *rbtNode {
	x := n.left
	n.left = x.right
	x.right = n
	x.color = n.color
	n.color = red
	return x
}

func flipColors(n *rbtNode) {
	n.color = red
	n.left.color = black
	n.right.color = black
}
