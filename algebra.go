package tdk

// Const returns the diagram that is the constant function returning r.
// It is the elementary building block; diagrams are always built
// bottom-up starting from Const and Atom.
func (e *Engine[V, L, R]) Const(r R) NodeID {
	return e.MkLeaf(r)
}

// MkLeaf is an alias for Const.
func (e *Engine[V, L, R]) MkLeaf(r R) NodeID {
	return e.store.mkLeaf(r)
}

// MkBranch returns the diagram "if the assignment to v satisfies l,
// take t, else f", reusing t unchanged when t == f (the reduction
// rule) rather than interning a redundant branch.
func (e *Engine[V, L, R]) MkBranch(v V, l L, t, f NodeID) NodeID {
	return e.store.mkBranch(v, l, t, f)
}

// Atom returns the elementary diagram "if v satisfies l then tr else
// fr".
func (e *Engine[V, L, R]) Atom(v V, l L, tr, fr R) NodeID {
	return e.MkBranch(v, l, e.MkLeaf(tr), e.MkLeaf(fr))
}

// Peek returns (r, true) when u is a leaf with value r, and (zero, false)
// otherwise.
func (e *Engine[V, L, R]) Peek(u NodeID) (R, bool) {
	n := e.mustGet(u)
	if n.kind == leafKind {
		return n.r, true
	}
	var zero R
	return zero, false
}

// Fold is the catamorphism over the diagram rooted at u: g is applied
// at leaves and h at branches, combining the already-folded true and
// false subresults. h receives the branch's variable and lattice
// element alongside the two subresults, in that order.
//
// Fold is a package-level function, not a method on *Engine[V,L,R],
// because it introduces its own type parameter A in addition to the
// Engine's V, L, R, and Go does not allow a method to add type
// parameters beyond those of its receiver.
//
// Fold memoizes by NodeID for the duration of a single call (nodes are
// immutable, so this is always safe), so a diagram with m distinct
// reachable nodes is folded in O(m) applications of g and h regardless
// of how much sharing the DAG contains.
func Fold[V, L, R, A any](e *Engine[V, L, R], g func(R) A, h func(v V, l L, t, f A) A, u NodeID) A {
	memo := make(map[NodeID]A)
	var rec func(NodeID) A
	rec = func(id NodeID) A {
		if a, ok := memo[id]; ok {
			return a
		}
		n := e.mustGet(id)
		var a A
		if n.kind == leafKind {
			a = g(n.r)
		} else {
			a = h(n.v, n.l, rec(n.t), rec(n.f))
		}
		memo[id] = a
		return a
	}
	return rec(u)
}

// MapR rewrites only the leaf values of the diagram rooted at u by
// applying g, leaving its branch structure untouched.
func (e *Engine[V, L, R]) MapR(g func(R) R, u NodeID) NodeID {
	return Fold(e,
		func(r R) NodeID { return e.Const(g(r)) },
		func(v V, l L, t, f NodeID) NodeID { return e.MkBranch(v, l, t, f) },
		u)
}
