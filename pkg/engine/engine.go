package engine

import (
	"github.com/walteh/wordsub/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// Engine owns the replacement graph: a set of directed edges key -> value in
// which every node has at most one outgoing edge. The graph is kept acyclic
// by checking each edge before it is inserted, so resolution is a walk along
// a finite chain and always terminates.
type Engine struct {
	store store.Store
}

// New creates an Engine over the given store. The Engine takes ownership of
// the store's entries: Resolve rewrites them during path compression.
func New(s store.Store) *Engine {
	return &Engine{store: s}
}

// Len returns the number of replacement rules currently stored.
func (e *Engine) Len() int {
	return e.store.Len()
}

// AddRule inserts the edge key -> value. It returns a *CycleError without
// modifying the store if the edge would close a cycle. Inserting the same key
// twice overwrites the earlier edge.
func (e *Engine) AddRule(key, value string) error {
	if e.wouldCreateCycle(key, value) {
		return errors.WithStack(&CycleError{Key: key, Value: value})
	}
	e.store.Put(key, value)
	return nil
}

// wouldCreateCycle reports whether inserting key -> value closes a loop.
// Every node has out-degree <= 1, so the chain starting at value is a simple
// list: follow it until it ends or reaches key. A self-loop (key == value) is
// caught on the first comparison.
func (e *Engine) wouldCreateCycle(key, value string) bool {
	current := value
	for {
		if current == key {
			return true
		}
		next, ok := e.store.Get(current)
		if !ok {
			return false
		}
		current = next
	}
}

// Resolve follows the replacement chain from token to its terminal, the first
// token with no outgoing edge, and returns that terminal. A token with no
// rule resolves to itself.
//
// As a side effect every intermediate node on the walked chain is rewritten
// to point directly at the terminal (path compression), so repeated lookups
// over the same or overlapping chains amortize to near O(1). Compression
// never changes what any token resolves to.
func (e *Engine) Resolve(token string) string {
	// Pass 1: find the terminal.
	terminal := token
	for {
		next, ok := e.store.Get(terminal)
		if !ok {
			break
		}
		terminal = next
	}

	// Pass 2: re-walk the original chain, pointing each node at the
	// terminal. Advance along the old target, not the rewritten one, and
	// stop as soon as a node already points at the terminal.
	current := token
	for {
		next, ok := e.store.Get(current)
		if !ok || next == terminal {
			break
		}
		e.store.Put(current, terminal)
		current = next
	}

	return terminal
}
