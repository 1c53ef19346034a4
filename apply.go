package tdk

// applyOp identifies which of the two binary apply-style operations
// (§4.3.2) is in progress, so that the shared skeleton in applyUncached
// and applySameVar can dispatch to the right lattice combinator and the
// right absorbing/identity rule without duplicating the recursion.
type applyOp uint8

const (
	sumOp applyOp = iota
	prodOp
)

// applyKey memoizes Sum/Prod results on the unordered pair of operand
// ids, per §4.3.3: both operations are commutative, so the pair is
// normalized (smaller id first) before lookup.
type applyKey struct {
	op   applyOp
	x, y NodeID
}

// Sum returns the diagram computing, for every assignment σ,
// R.Sum(⟦x⟧σ, ⟦y⟧σ).
func (e *Engine[V, L, R]) Sum(x, y NodeID) NodeID {
	return e.apply(sumOp, x, y)
}

// Prod returns the diagram computing, for every assignment σ,
// R.Prod(⟦x⟧σ, ⟦y⟧σ).
func (e *Engine[V, L, R]) Prod(x, y NodeID) NodeID {
	return e.apply(prodOp, x, y)
}

func (e *Engine[V, L, R]) apply(op applyOp, x, y NodeID) NodeID {
	key := applyKey{op: op, x: x, y: y}
	if key.x > key.y {
		key.x, key.y = key.y, key.x
	}
	if r, ok := e.applyCache[key]; ok {
		return r
	}
	r := e.applyUncached(op, x, y)
	e.applyCache[key] = r
	return r
}

func (e *Engine[V, L, R]) applyUncached(op applyOp, x, y NodeID) NodeID {
	if rx, ok := e.Peek(x); ok {
		return e.applyLeaf(op, rx, x, y)
	}
	if ry, ok := e.Peek(y); ok {
		return e.applyLeaf(op, ry, y, x)
	}
	return e.applyBranches(op, x, y)
}

// applyLeaf handles the case where the node at id leafID is a leaf with
// value r, and other is the (possibly also leaf) other operand. Because
// Sum and Prod are required to be commutative, the same logic serves
// both the "Leaf, _" and the symmetric "_, Leaf" rows of §4.3.2's table:
// the caller simply passes other in the position the non-leaf operand
// occupied.
func (e *Engine[V, L, R]) applyLeaf(op applyOp, r R, leafID, other NodeID) NodeID {
	switch op {
	case prodOp:
		switch {
		case e.sr.Compare(r, e.sr.Zero()) == 0:
			return leafID // absorbing
		case e.sr.Compare(r, e.sr.One()) == 0:
			return other // identity
		default:
			return e.MapR(func(s R) R { return e.sr.Prod(r, s) }, other)
		}
	case sumOp:
		if e.sr.Compare(r, e.sr.Zero()) == 0 {
			return other // identity
		}
		return e.MapR(func(s R) R { return e.sr.Sum(r, s) }, other)
	default:
		internalErrorf("apply: unknown op %d", op)
		panic("unreachable")
	}
}

func (e *Engine[V, L, R]) applyBranches(op applyOp, x, y NodeID) NodeID {
	nx := e.mustGet(x)
	ny := e.mustGet(y)
	switch c := e.vars.Compare(nx.v, ny.v); {
	case c < 0:
		return e.MkBranch(nx.v, nx.l, e.apply(op, nx.t, y), e.apply(op, nx.f, y))
	case c > 0:
		return e.MkBranch(ny.v, ny.l, e.apply(op, x, ny.t), e.apply(op, x, ny.f))
	default:
		return e.applySameVar(op, x, nx, y, ny)
	}
}

// applySameVar handles two branches sharing a variable: the delicate
// case from §4.3.2 where the two lattice atoms may overlap but not be
// equal.
func (e *Engine[V, L, R]) applySameVar(op applyOp, x NodeID, nx node[V, L, R], y NodeID, ny node[V, L, R]) NodeID {
	var combined L
	var ok bool
	switch op {
	case prodOp:
		combined, ok = e.lat.Meet(nx.l, ny.l, true)
	case sumOp:
		combined, ok = e.lat.Join(nx.l, ny.l, true)
	}
	if ok {
		return e.MkBranch(nx.v, combined, e.apply(op, nx.t, ny.t), e.apply(op, nx.f, ny.f))
	}

	// The combiner couldn't name the overlap as a single lattice
	// element (or the atoms are disjoint): split on the smaller atom,
	// restricting the other operand by it.
	switch c := e.lat.Compare(nx.l, ny.l); {
	case c < 0:
		yr := e.restrictOne(nx.v, nx.l, y)
		return e.MkBranch(nx.v, nx.l, e.apply(op, nx.t, yr), e.apply(op, nx.f, y))
	case c > 0:
		xr := e.restrictOne(ny.v, ny.l, x)
		return e.MkBranch(ny.v, ny.l, e.apply(op, xr, ny.t), e.apply(op, x, ny.f))
	default:
		// Equal atoms but the combiner reported ok == false: the
		// lattice claimed a representable equal meet/join isn't
		// tight. A contract violation in L.
		internalErrorf("apply: lattice combiner not tight for equal atoms on variable hash %d", e.vars.Hash(nx.v))
		panic("unreachable")
	}
}
