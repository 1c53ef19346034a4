package tdk

import "hash/maphash"

// NodeID is a non-owning, caller-visible witness to a node interned in
// an Engine's node store. Structural equality of diagrams is integer
// equality of NodeIDs: two NodeIDs obtained from the same Engine denote
// the same function if and only if they are equal.
//
// A NodeID is only meaningful with respect to the Engine that produced
// it, and only until that Engine's next ClearCache call.
type NodeID int64

type nodeKind uint8

const (
	leafKind nodeKind = iota
	branchKind
)

// node is the tagged Leaf/Branch variant described in the data model. A
// concrete struct with a kind discriminant is used rather than an
// interface-based sum type: the variant count is fixed at two, and a
// struct lets nodeHasher treat hashing and equality uniformly without a
// type switch over dynamic types.
type node[V, L, R any] struct {
	kind nodeKind

	// valid when kind == leafKind
	r R

	// valid when kind == branchKind
	v    V
	l    L
	t, f NodeID
}

// nodeHasher adapts the engine's Variable/Lattice/Semiring contracts
// into an intern.Hasher for node[V,L,R], so the node store can be built
// directly on top of intern.Interner.
type nodeHasher[V, L, R any] struct {
	vars Variable[V]
	lat  Lattice[L]
	sr   Semiring[R]
}

// Hash implements intern.Hasher. It follows the (v, l, t, f) mixing
// formula from the data model, writing a single combined uint64 via
// maphash.WriteComparable to avoid re-hashing the already-canonical
// child ids and lattice/semiring values.
func (nh nodeHasher[V, L, R]) Hash(h *maphash.Hash, n node[V, L, R]) {
	var hv uint64
	switch n.kind {
	case leafKind:
		hv = nh.sr.Hash(n.r) << 1
	case branchKind:
		hv = (1021*nh.vars.Hash(n.v) + 1031*nh.lat.Hash(n.l) + 1033*uint64(n.t) + 1039*uint64(n.f)) | 1
	}
	maphash.WriteComparable(h, hv)
}

// Equal implements intern.Hasher. Branch equality compares variable and
// lattice element by Compare (not Hash, and not a separate Equal for
// V: the contract only requires a total order there), and children by
// plain NodeID equality: since children are already canonicalized,
// structural equality of subtrees reduces to id equality.
func (nh nodeHasher[V, L, R]) Equal(a, b node[V, L, R]) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == leafKind {
		return nh.sr.Compare(a.r, b.r) == 0
	}
	return nh.vars.Compare(a.v, b.v) == 0 &&
		nh.lat.Compare(a.l, b.l) == 0 &&
		a.t == b.t && a.f == b.f
}
