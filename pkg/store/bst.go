package store

// bstNode is a node in an unbalanced binary search tree keyed by token.
type bstNode struct {
	key         string
	value       string
	left, right *bstNode
}

// BSTree is a Store backed by an unbalanced binary search tree. Lookups are
// O(log n) on random insertion order and O(n) in the worst case; it exists as
// the simplest ordered backend and as a baseline for the red-black tree.
type BSTree struct {
	root *bstNode
	size int
}

// NewBSTree creates an empty binary search tree store.
func NewBSTree() *BSTree {
	return &BSTree{}
}

func (t *BSTree) Get(token string) (string, bool) {
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

func (t *BSTree) Put(token, value string) {
	// Iterative insert: walk down holding the link to rewrite.
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case token < n.key:
			link = &n.left
		case token > n.key:
			link = &n.right
		default:
			n.value = value
			return
		}
	}
	*link = &bstNode{key: token, value: value}
	t.size++
}

func (t *BSTree) Len() int {
	return t.size
}
