package store

import (
	"gitlab.com/tozd/go/errors"
)

// Backend names accepted by New. Matching is case-sensitive: "BST" is not a
// valid selector.
const (
	BackendBST  = "bst"
	BackendRBT  = "rbt"
	BackendHash = "hash"
)

// Store is a mutable token -> replacement mapping. Implementations are not
// safe for concurrent use; callers that share a Store across goroutines must
// serialize access themselves.
type Store interface {
	// Get returns the replacement stored for token, and whether one exists.
	Get(token string) (string, bool)

	// Put stores value as the replacement for token, overwriting any
	// previous entry.
	Put(token, value string)

	// Len returns the number of stored entries.
	Len() int
}

// UnknownBackendError is returned by New for a selector that does not name a
// supported backend.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return "unknown store backend " + e.Name
}

// New creates an empty Store backed by the named data structure.
func New(backend string) (Store, error) {
	switch backend {
	case BackendBST:
		return NewBSTree(), nil
	case BackendRBT:
		return NewRBTree(), nil
	case BackendHash:
		return NewHashMap(), nil
	default:
		return nil, errors.WithStack(&UnknownBackendError{Name: backend})
	}
}
