package tdk

import "fmt"

// Engine is a decision-diagram engine instantiated over a variable
// domain V, a lattice of variable values L, and a result semiring R. The
// zero Engine is not ready for use; construct one with New.
//
// An Engine is not safe for concurrent use. Operations that mutate its
// node store (Const, MkBranch, Atom, MapR, Restrict, Sum, Prod,
// ClearCache) must be serialized with respect to all other operations,
// including reads such as Peek and Fold. The recommended usage pattern
// is one Engine per goroutine, with no sharing across goroutines.
type Engine[V, L, R any] struct {
	vars Variable[V]
	lat  Lattice[L]
	sr   Semiring[R]

	store      *nodeStore[V, L, R]
	applyCache map[applyKey]NodeID
}

// New returns a new Engine instantiated with the given Variable,
// Lattice, and Semiring contract instances. This is the engine's
// "functor" instantiation point: vars, lat, and sr are stateless
// (or, if they do carry state, caller-owned) descriptions of V, L, and
// R, passed as plain arguments rather than through a config struct,
// following the teacher corpus's anyunique.New / anyhash.NewMap
// convention for this shape of constructor.
func New[V, L, R any](vars Variable[V], lat Lattice[L], sr Semiring[R]) *Engine[V, L, R] {
	return &Engine[V, L, R]{
		vars:       vars,
		lat:        lat,
		sr:         sr,
		store:      newNodeStore[V, L, R](vars, lat, sr),
		applyCache: make(map[applyKey]NodeID),
	}
}

// ClearCache drops all interned nodes and the Sum/Prod memoization
// table, resetting the engine to its just-constructed state. NodeIDs
// obtained before the call must not be used afterward; the engine does
// not detect such use.
func (e *Engine[V, L, R]) ClearCache() {
	e.store.clear()
	e.applyCache = make(map[applyKey]NodeID)
}

// Equal reports whether x and y denote the same diagram. Because
// NodeIDs are canonical (hash-consed), this is plain integer equality.
func (e *Engine[V, L, R]) Equal(x, y NodeID) bool {
	return x == y
}

// mustGet looks up id in the node store, panicking if id is unknown to
// this Engine (a stale id from before a ClearCache, or one produced by
// a different Engine). Every exported operation that dereferences a
// caller-supplied NodeID funnels through here, since none of them
// return an error in their own signature.
func (e *Engine[V, L, R]) mustGet(id NodeID) node[V, L, R] {
	n, err := e.store.get(id)
	if err != nil {
		panic(err)
	}
	return n
}

// internalErrorf reports a violation of a contract the caller's V, L,
// or R was required to satisfy (an unreachable case in the Sum/Prod
// case analysis). It is not recoverable.
func internalErrorf(format string, args ...any) {
	panic(fmt.Sprintf("tdk: internal error: "+format, args...))
}
