package tdk

import "slices"

// Assignment pairs a variable with a lattice constraint on it: a single
// entry in the partial assignment passed to Restrict.
type Assignment[V, L any] struct {
	Var V
	Val L
}

// Restrict specializes the diagram rooted at u by the partial
// assignment given in assignments. For any total assignment σ
// consistent with every (v, l) pair in assignments (that is, with
// σ(v) satisfying l in the Lattice's SubsetEq sense for each listed v),
// the restricted diagram and u agree.
//
// assignments need not be sorted; Restrict sorts a copy by Variable
// order before traversing.
func (e *Engine[V, L, R]) Restrict(assignments []Assignment[V, L], u NodeID) NodeID {
	if len(assignments) == 0 {
		return u
	}
	sorted := slices.Clone(assignments)
	slices.SortFunc(sorted, func(a, b Assignment[V, L]) int {
		return e.vars.Compare(a.Var, b.Var)
	})
	return e.restrict(sorted, u)
}

// restrictOne is the single-assignment case used internally by Sum/Prod
// (§4.3.2's tie-break step); a one-element slice is trivially sorted.
func (e *Engine[V, L, R]) restrictOne(v V, l L, u NodeID) NodeID {
	return e.restrict([]Assignment[V, L]{{Var: v, Val: l}}, u)
}

// restrict is the lockstep traversal of §4.3.1, assuming assignments is
// already sorted by Variable order.
func (e *Engine[V, L, R]) restrict(assignments []Assignment[V, L], u NodeID) NodeID {
	if len(assignments) == 0 {
		return u
	}
	n := e.mustGet(u)
	if n.kind == leafKind {
		return u
	}
	head := assignments[0]
	switch c := e.vars.Compare(head.Var, n.v); {
	case c < 0:
		// head's variable doesn't occur at or below n; drop it.
		return e.restrict(assignments[1:], u)
	case c > 0:
		// n's variable isn't constrained by head; rebuild, keeping
		// the whole assignment list for both children.
		t := e.restrict(assignments, n.t)
		f := e.restrict(assignments, n.f)
		return e.MkBranch(n.v, n.l, t, f)
	default:
		if e.lat.SubsetEq(head.Val, n.l) {
			// head forces the true branch; it's been consumed.
			return e.restrict(assignments[1:], n.t)
		}
		// head forces the false branch; it may still apply to a
		// deeper occurrence of the same variable.
		return e.restrict(assignments, n.f)
	}
}
